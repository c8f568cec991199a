package services

import (
	"database/sql"
	"errors"
	"fmt"
	"math"

	"github.com/kayotadakota/cat-exhibition/models"

	"gorm.io/gorm"
)

const (
	MinRatingValue = 1.0
	MaxRatingValue = 10.0
)

// SubmitRating records one user's rating for a cat. Any authenticated user
// may rate any cat, including their own. A second rating for the same
// (user, cat) pair fails with ErrDuplicateRating; the duplicate is detected
// through the unique-constraint violation, not a pre-check, so concurrent
// identical submissions succeed exactly once.
func SubmitRating(db *gorm.DB, user models.User, catID string, value float64) (models.Rating, error) {
	if value < MinRatingValue || value > MaxRatingValue {
		return models.Rating{}, &ValidationError{
			Field:   "value",
			Message: fmt.Sprintf("the rating value must be between %.1f and %.1f", MinRatingValue, MaxRatingValue),
		}
	}

	var rating models.Rating
	err := db.Transaction(func(tx *gorm.DB) error {
		var cat models.Cat
		if err := tx.First(&cat, "id = ?", catID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("failed to fetch cat: %w", err)
		}

		rating = models.Rating{UserID: user.ID, CatID: cat.ID, Value: value}
		if err := tx.Create(&rating).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrDuplicateRating
			}
			return fmt.Errorf("failed to create rating: %w", err)
		}
		return nil
	})
	if err != nil {
		return models.Rating{}, err
	}

	return rating, nil
}

// AverageRating computes the mean rating of a cat at read time, rounded to
// one decimal place. A cat without ratings averages 0.0. The value is never
// stored, so it is always consistent with the ledger.
func AverageRating(db *gorm.DB, catID string) (float64, error) {
	var avg sql.NullFloat64
	err := db.Model(&models.Rating{}).Where("cat_id = ?", catID).Select("AVG(value)").Scan(&avg).Error
	if err != nil {
		return 0, fmt.Errorf("failed to compute average rating: %w", err)
	}
	if !avg.Valid {
		return 0, nil
	}
	return roundToOneDecimal(avg.Float64), nil
}

// AverageRatings computes the averages for many cats in one grouped query;
// cats without ratings are simply absent from the result map.
func AverageRatings(db *gorm.DB, catIDs []string) (map[string]float64, error) {
	averages := make(map[string]float64, len(catIDs))
	if len(catIDs) == 0 {
		return averages, nil
	}

	rows, err := db.Model(&models.Rating{}).
		Select("cat_id, AVG(value) as avg_value").
		Where("cat_id IN ?", catIDs).
		Group("cat_id").
		Rows()
	if err != nil {
		return nil, fmt.Errorf("failed to compute average ratings: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var catID string
		var avg float64
		if err := rows.Scan(&catID, &avg); err != nil {
			return nil, fmt.Errorf("failed to scan average rating: %w", err)
		}
		averages[catID] = roundToOneDecimal(avg)
	}
	return averages, rows.Err()
}

func roundToOneDecimal(value float64) float64 {
	return math.Round(value*10) / 10
}
