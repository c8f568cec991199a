package cats

import (
	"errors"
	"log"
	"net/http"

	"github.com/kayotadakota/cat-exhibition/models"
	"github.com/kayotadakota/cat-exhibition/services"
	"github.com/kayotadakota/cat-exhibition/utils/response"

	"github.com/gin-gonic/gin"
)

// Constants for error messages
const (
	ErrCatNotFound        = "Cat with specified ID has not been found."
	ErrBreedNotFound      = "Cats with specified breed Id have not been found."
	ErrNotOwner           = "Only the owner may modify this cat."
	ErrAlreadyRated       = "You've already rated this cat."
	ErrFailedFetchCats    = "Failed to fetch cats"
	ErrFailedFetchBreeds  = "Failed to fetch breeds"
	ErrFailedCreateCat    = "Failed to create cat"
	ErrFailedUpdateCat    = "Failed to update cat"
	ErrFailedDeleteCat    = "Failed to delete cat"
	ErrFailedSubmitRating = "Failed to submit rating"
)

// CreateCatRequest model for adding a cat. Name may be blank: blank names are
// stored as "unknown".
type CreateCatRequest struct {
	Name        string `json:"name"`
	Age         int    `json:"age" binding:"required"`
	Color       string `json:"color" binding:"required"`
	Breed       string `json:"breed" binding:"required"`
	Description string `json:"description"`
}

// UpdateCatRequest model for partial updates; omitted fields keep their
// prior values
type UpdateCatRequest struct {
	Name        *string `json:"name"`
	Age         *int    `json:"age"`
	Color       *string `json:"color"`
	Description *string `json:"description"`
	Breed       *string `json:"breed"`
}

// RateCatRequest model for rating submissions
type RateCatRequest struct {
	Cat   string  `json:"cat" binding:"required"`
	Value float64 `json:"value" binding:"required"`
}

// RatingResponse echoes an accepted rating submission
type RatingResponse struct {
	Cat   string  `json:"cat"`
	Value float64 `json:"value"`
}

// CatResponse is the public representation of a cat: breed and owner are
// flattened to names and the average rating is computed at read time
type CatResponse struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Age           int     `json:"age"`
	Color         string  `json:"color"`
	Description   string  `json:"description"`
	Breed         string  `json:"breed"`
	Owner         string  `json:"owner"`
	AverageRating float64 `json:"average_rating"`
}

// NewCatResponse builds the public representation of one cat
func NewCatResponse(cat models.Cat, averageRating float64) CatResponse {
	resp := CatResponse{
		ID:            cat.ID,
		Name:          cat.Name,
		Age:           cat.Age,
		Color:         cat.Color,
		Description:   cat.Description,
		AverageRating: averageRating,
	}
	if cat.Breed != nil {
		resp.Breed = cat.Breed.Name
	}
	if cat.Owner != nil {
		resp.Owner = cat.Owner.Username
	}
	return resp
}

// NewCatResponses builds the representations for a list of cats, taking the
// averages from a batch-computed map
func NewCatResponses(cats []models.Cat, averages map[string]float64) []CatResponse {
	responses := make([]CatResponse, 0, len(cats))
	for _, cat := range cats {
		responses = append(responses, NewCatResponse(cat, averages[cat.ID]))
	}
	return responses
}

// handleServiceError maps service-layer errors to HTTP responses; anything
// unexpected is logged and reported as the given generic message
func handleServiceError(c *gin.Context, err error, fallback string) {
	var validationErr *services.ValidationError
	switch {
	case errors.As(err, &validationErr):
		response.Error(c, http.StatusBadRequest, validationErr.Message)
	case errors.Is(err, services.ErrDuplicateRating):
		response.Error(c, http.StatusBadRequest, ErrAlreadyRated)
	case errors.Is(err, services.ErrForbidden):
		response.Error(c, http.StatusForbidden, ErrNotOwner)
	case errors.Is(err, services.ErrNotFound):
		response.Error(c, http.StatusNotFound, ErrCatNotFound)
	default:
		log.Printf("%s: %v", fallback, err)
		response.Error(c, http.StatusInternalServerError, fallback)
	}
}
