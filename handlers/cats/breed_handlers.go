package cats

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/kayotadakota/cat-exhibition/database"
	"github.com/kayotadakota/cat-exhibition/metrics"
	"github.com/kayotadakota/cat-exhibition/models"
	"github.com/kayotadakota/cat-exhibition/services"

	"github.com/gin-gonic/gin"
)

const (
	DatabaseTimeout     = 5 * time.Second
	BreedsCacheKey      = "breeds:all"
	BreedsCacheDuration = 5 * time.Minute
)

// BreedResponse is the public representation of a breed
type BreedResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// GetAllBreeds lists every known breed
// @Summary Breed list
// @Description Returns the list of all existing breeds.
// @Tags Breeds
// @Produce json
// @Success 200 {array} BreedResponse
// @Failure 500 {object} map[string]string
// @Router /breeds [get]
func GetAllBreeds(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), DatabaseTimeout)
	defer cancel()

	// Try the cache first when redis is configured
	if database.REDIS != nil {
		cached, err := database.REDIS.Get(ctx, BreedsCacheKey).Result()
		if err == nil && cached != "" {
			var breeds []BreedResponse
			if err := json.Unmarshal([]byte(cached), &breeds); err == nil {
				metrics.CacheHits.Inc()
				c.JSON(http.StatusOK, breeds)
				return
			}
		}
		metrics.CacheMisses.Inc()
	}

	all, err := services.ListBreeds(database.DB.WithContext(ctx))
	if err != nil {
		handleServiceError(c, err, ErrFailedFetchBreeds)
		return
	}
	breeds := newBreedResponses(all)

	if database.REDIS != nil {
		if payload, err := json.Marshal(breeds); err == nil {
			if err := database.REDIS.Set(ctx, BreedsCacheKey, string(payload), BreedsCacheDuration).Err(); err != nil {
				// The cache is best effort, never fail the request for it
				log.Printf("Failed to cache breeds: %v", err)
			}
		}
	}

	c.JSON(http.StatusOK, breeds)
}

// InvalidateBreedsCache drops the cached breed list after a new breed is
// created through a cat write
func InvalidateBreedsCache(ctx context.Context) {
	if database.REDIS == nil {
		return
	}
	if err := database.REDIS.Del(ctx, BreedsCacheKey).Err(); err != nil {
		log.Printf("Failed to invalidate breeds cache: %v", err)
	}
}

func newBreedResponses(breeds []models.Breed) []BreedResponse {
	responses := make([]BreedResponse, 0, len(breeds))
	for _, breed := range breeds {
		responses = append(responses, BreedResponse{ID: breed.ID, Name: breed.Name})
	}
	return responses
}
