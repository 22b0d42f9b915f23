package models

import (
	"encoding/json"
	"strings"

	"github.com/lib/pq" // required for pq.Int64Array
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserRole is the dashboard permission level of a staff user.
type UserRole string

const (
	RoleAdmin             UserRole = "ADMIN"
	RoleComplaintRecorder UserRole = "COMPLAINT_RECORDER"
	RoleComplaintResolver UserRole = "COMPLAINT_RESOLVER"
)

// Valid reports whether r is one of the known roles.
func (r UserRole) Valid() bool {
	switch r {
	case RoleAdmin, RoleComplaintRecorder, RoleComplaintResolver:
		return true
	}
	return false
}

// User is a staff member who works complaints through the dashboard.
// RoleID is a weak reference to a Role record; CategoryIDs lists the
// category ids the user handles.
type User struct {
	Base

	FirstName   string        `json:"first_name" gorm:"type:text;not null" binding:"required"`
	LastName    string        `json:"last_name" gorm:"type:text"`
	Email       string        `json:"email" gorm:"type:text;uniqueIndex" binding:"required,email"`
	Password    string        `json:"password,omitempty" gorm:"type:text"`
	Phone       string        `json:"phone" gorm:"type:text"`
	RoleID      *uint         `json:"role_id" gorm:"index"`
	Roles       UserRole      `json:"roles" gorm:"type:text;not null" binding:"required,oneof=ADMIN COMPLAINT_RECORDER COMPLAINT_RESOLVER"`
	CategoryIDs pq.Int64Array `json:"category_id" gorm:"type:integer[]"`
}

// MarshalJSON renders the user without the credential hash. Password is
// write-only: accepted on input, never serialized back.
func (u User) MarshalJSON() ([]byte, error) {
	type user User
	out := user(u)
	out.Password = ""
	return json.Marshal(out)
}

// BeforeSave hashes the password unless it is empty or already a bcrypt
// hash (updates that round-trip the stored value must not double-hash).
func (u *User) BeforeSave(tx *gorm.DB) error {
	if u.Password == "" || strings.HasPrefix(u.Password, "$2") {
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hash)
	return nil
}

// CheckPassword compares a clear-text password against the stored hash.
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) == nil
}
