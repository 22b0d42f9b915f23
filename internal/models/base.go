package models

import (
	"time"

	"gorm.io/gorm"
)

// Base holds the fields shared by every stored record. The id is assigned
// by the database on create; DeletedAt makes delete terminal for reads
// while keeping the row for audit.
type Base struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
}

// PrimaryKey returns the record id. Entities embedding Base satisfy the
// controller's Entity constraint through this method.
func (b Base) PrimaryKey() uint {
	return b.ID
}
