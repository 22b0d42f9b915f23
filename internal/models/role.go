package models

// Role is an assignable staff role record (distinct from the fixed
// UserRole enum on User, which controls dashboard permissions).
type Role struct {
	Base

	Name string `json:"name" gorm:"type:text;not null" binding:"required"`
}
