package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/kayotadakota/cat-exhibition/models"

	"gorm.io/gorm"
)

const (
	MinAgeMonths = 1
	MaxAgeMonths = 240
)

// CatUpdate carries a partial update for a cat; nil fields keep their prior
// values. A non-nil Breed is re-resolved through the breed registry.
type CatUpdate struct {
	Name        *string
	Age         *int
	Color       *string
	Description *string
	Breed       *string
}

func validateAge(age int) error {
	if age < MinAgeMonths || age > MaxAgeMonths {
		return &ValidationError{
			Field:   "age",
			Message: fmt.Sprintf("age must be between %d and %d months", MinAgeMonths, MaxAgeMonths),
		}
	}
	return nil
}

// normalizeCatName substitutes "unknown" for blank or whitespace-only names
func normalizeCatName(name string) string {
	if strings.TrimSpace(name) == "" {
		return "unknown"
	}
	return name
}

// CreateCat validates the fields, resolves the breed and persists the cat in
// a single transaction so the breed-resolve-then-write sequence is atomic.
// The caller becomes the owner.
func CreateCat(db *gorm.DB, owner models.User, name string, age int, color, breedName, description string) (models.Cat, error) {
	if err := validateAge(age); err != nil {
		return models.Cat{}, err
	}

	var cat models.Cat
	err := db.Transaction(func(tx *gorm.DB) error {
		breed, err := ResolveBreed(tx, breedName)
		if err != nil {
			return err
		}

		cat = models.Cat{
			Name:        normalizeCatName(name),
			Age:         age,
			Color:       color,
			Description: description,
			BreedID:     breed.ID,
			OwnerID:     owner.ID,
		}
		if err := tx.Create(&cat).Error; err != nil {
			return fmt.Errorf("failed to create cat: %w", err)
		}

		return tx.Preload("Breed").Preload("Owner").First(&cat, "id = ?", cat.ID).Error
	})
	if err != nil {
		return models.Cat{}, err
	}

	return cat, nil
}

// ListCats returns every cat with its breed and owner loaded
func ListCats(db *gorm.DB) ([]models.Cat, error) {
	var cats []models.Cat
	if err := db.Preload("Breed").Preload("Owner").Find(&cats).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch cats: %w", err)
	}
	return cats, nil
}

// ListCatsByBreed returns the cats of one breed. An unknown breed id is
// ErrNotFound; a known breed with no cats is an empty slice.
func ListCatsByBreed(db *gorm.DB, breedID string) ([]models.Cat, error) {
	var breed models.Breed
	if err := db.First(&breed, "id = ?", breedID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to look up breed: %w", err)
	}

	var cats []models.Cat
	if err := db.Preload("Breed").Preload("Owner").Where("breed_id = ?", breed.ID).Find(&cats).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch cats by breed: %w", err)
	}
	return cats, nil
}

// GetCat returns the cat with the given id or ErrNotFound
func GetCat(db *gorm.DB, id string) (models.Cat, error) {
	var cat models.Cat
	if err := db.Preload("Breed").Preload("Owner").First(&cat, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Cat{}, ErrNotFound
		}
		return models.Cat{}, fmt.Errorf("failed to fetch cat: %w", err)
	}
	return cat, nil
}

// UpdateCat applies a partial update to a cat owned by the caller. Supplied
// fields are validated the same way as on create; a supplied breed name runs
// through the registry again. Non-owners get ErrForbidden and the record is
// left untouched.
func UpdateCat(db *gorm.DB, id string, caller models.User, update CatUpdate) (models.Cat, error) {
	if update.Age != nil {
		if err := validateAge(*update.Age); err != nil {
			return models.Cat{}, err
		}
	}

	var cat models.Cat
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&cat, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("failed to fetch cat: %w", err)
		}

		if !CanWrite(caller, cat) {
			return ErrForbidden
		}

		if update.Breed != nil {
			breed, err := ResolveBreed(tx, *update.Breed)
			if err != nil {
				return err
			}
			cat.BreedID = breed.ID
		}
		if update.Name != nil {
			cat.Name = normalizeCatName(*update.Name)
		}
		if update.Age != nil {
			cat.Age = *update.Age
		}
		if update.Color != nil {
			cat.Color = *update.Color
		}
		if update.Description != nil {
			cat.Description = *update.Description
		}

		if err := tx.Save(&cat).Error; err != nil {
			return fmt.Errorf("failed to update cat: %w", err)
		}

		return tx.Preload("Breed").Preload("Owner").First(&cat, "id = ?", cat.ID).Error
	})
	if err != nil {
		return models.Cat{}, err
	}

	return cat, nil
}

// DeleteCat removes a cat owned by the caller together with its ratings.
// Both deletes run in one transaction so the ledger never references a cat
// that no longer exists.
func DeleteCat(db *gorm.DB, id string, caller models.User) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var cat models.Cat
		if err := tx.First(&cat, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("failed to fetch cat: %w", err)
		}

		if !CanWrite(caller, cat) {
			return ErrForbidden
		}

		if err := tx.Where("cat_id = ?", cat.ID).Delete(&models.Rating{}).Error; err != nil {
			return fmt.Errorf("failed to delete ratings of cat: %w", err)
		}
		if err := tx.Delete(&cat).Error; err != nil {
			return fmt.Errorf("failed to delete cat: %w", err)
		}
		return nil
	})
}
