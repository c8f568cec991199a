package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/kayotadakota/cat-exhibition/models"

	"gorm.io/gorm"
)

// ResolveBreed returns the breed with the given name, creating it first if it
// does not exist yet. Names are lowercased before lookup and creation, so
// "Siamese" and "siamese" resolve to the same record. The unique constraint
// on breeds.name closes the race between concurrent first-time resolutions:
// the loser of the race re-reads the row the winner created.
func ResolveBreed(db *gorm.DB, name string) (models.Breed, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	if normalized == "" {
		return models.Breed{}, &ValidationError{Field: "breed", Message: "breed name must not be empty"}
	}

	var breed models.Breed
	err := db.Where("name = ?", normalized).First(&breed).Error
	if err == nil {
		return breed, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Breed{}, fmt.Errorf("failed to look up breed: %w", err)
	}

	breed = models.Breed{Name: normalized}
	if err := db.Create(&breed).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// A concurrent request created the breed between our lookup and
			// insert; the constraint already deduplicated it for us.
			if err := db.Where("name = ?", normalized).First(&breed).Error; err != nil {
				return models.Breed{}, fmt.Errorf("failed to fetch concurrently created breed: %w", err)
			}
			return breed, nil
		}
		return models.Breed{}, fmt.Errorf("failed to create breed: %w", err)
	}

	return breed, nil
}

// ListBreeds returns every known breed
func ListBreeds(db *gorm.DB) ([]models.Breed, error) {
	var breeds []models.Breed
	if err := db.Order("name").Find(&breeds).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch breeds: %w", err)
	}
	return breeds, nil
}
