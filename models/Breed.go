package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Breed represents a named cat breed, deduplicated by its lowercased name.
// Breeds are created implicitly the first time a cat references the name.
type Breed struct {
	ID   string `gorm:"type:uuid;primaryKey" json:"id"`
	Name string `gorm:"type:varchar(64);unique;not null" json:"name"`
	Cats []*Cat `gorm:"foreignKey:BreedID" json:"-"`
}

func (b *Breed) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}
