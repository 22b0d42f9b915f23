package models

import (
	"encoding/json"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Complainer is the party who filed a complaint. It is a separate record
// from User: complainers are not staff and never log into the dashboard.
type Complainer struct {
	Base

	FirstName string `json:"first_name" gorm:"type:text;not null" binding:"required"`
	LastName  string `json:"last_name" gorm:"type:text"`
	Email     string `json:"email" gorm:"type:text;index"`
	Password  string `json:"password,omitempty" gorm:"type:text"`
	Phone     string `json:"phone" gorm:"type:text"`
}

// MarshalJSON keeps the password write-only, as on User.
func (c Complainer) MarshalJSON() ([]byte, error) {
	type complainer Complainer
	out := complainer(c)
	out.Password = ""
	return json.Marshal(out)
}

// BeforeSave hashes the optional password with the same rules as User.
func (c *Complainer) BeforeSave(tx *gorm.DB) error {
	if c.Password == "" || strings.HasPrefix(c.Password, "$2") {
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(c.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	c.Password = string(hash)
	return nil
}
