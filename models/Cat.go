package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Cat represents a catalogued cat. Only the owner may update or delete it.
// The breed relation is RESTRICT so a breed cannot vanish under its cats.
type Cat struct {
	ID          string    `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(64);not null" json:"name"`
	Age         int       `gorm:"type:integer;not null" json:"age"` // in months
	Color       string    `gorm:"type:varchar(64);not null" json:"color"`
	Description string    `gorm:"type:varchar(255);not null;default:''" json:"description"`
	BreedID     string    `gorm:"type:uuid;not null;column:breed_id" json:"breed_id"`
	OwnerID     string    `gorm:"type:uuid;not null;column:owner_id" json:"owner_id"`
	Breed       *Breed    `gorm:"foreignKey:BreedID;constraint:OnDelete:RESTRICT" json:"breed"`
	Owner       *User     `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE" json:"-"`
	Ratings     []*Rating `gorm:"foreignKey:CatID" json:"-"`
}

func (c *Cat) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
