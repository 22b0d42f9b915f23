package models

// Category is a complaint category managed from the admin dashboard.
type Category struct {
	Base

	Name string `json:"name" gorm:"type:text;not null" binding:"required"`
}
