package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Rating represents one user's rating of one cat. The composite unique index
// is what enforces the at-most-one-rating-per-(user,cat) invariant; the
// service layer only translates its violation into a business error.
type Rating struct {
	ID     string  `gorm:"type:uuid;primaryKey" json:"id"`
	UserID string  `gorm:"type:uuid;not null;uniqueIndex:idx_rating_user_cat;column:user_id" json:"user_id"`
	CatID  string  `gorm:"type:uuid;not null;uniqueIndex:idx_rating_user_cat;column:cat_id" json:"cat_id"`
	Value  float64 `gorm:"type:numeric(4,2);not null" json:"value"`
	User   *User   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Cat    *Cat    `gorm:"foreignKey:CatID;constraint:OnDelete:CASCADE" json:"-"`
}

func (r *Rating) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
