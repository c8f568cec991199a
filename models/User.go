package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents a registered account; it is the ownership anchor for cats
type User struct {
	ID        string `gorm:"type:uuid;primaryKey" json:"id"`
	Username  string `gorm:"type:varchar(64);unique;not null" json:"username"`
	Password  string `gorm:"type:varchar(255);not null" json:"-"`
	Ownership []*Cat `gorm:"foreignKey:OwnerID" json:"ownership"`
}

// BeforeCreate assigns the primary key so the same models work on every
// driver, including the sqlite one used in tests
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
