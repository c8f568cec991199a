package cats

import (
	"net/http"

	"github.com/kayotadakota/cat-exhibition/database"
	"github.com/kayotadakota/cat-exhibition/metrics"
	"github.com/kayotadakota/cat-exhibition/middleware"
	"github.com/kayotadakota/cat-exhibition/realtime"
	"github.com/kayotadakota/cat-exhibition/services"
	"github.com/kayotadakota/cat-exhibition/utils/response"

	"github.com/gin-gonic/gin"
)

// RateCat submits the authenticated user's rating for a cat. Each user may
// rate a given cat exactly once; owners may rate their own cats.
// @Summary Rate a cat
// @Description Submits a rating between 1.0 and 10.0 for the cat with the given ID. A user can rate each cat only once.
// @Tags Ratings
// @Accept json
// @Produce json
// @Param request body RateCatRequest true "Cat ID and rating value"
// @Success 202 {object} RatingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /cat/rate [post]
// @Security Bearer
func RateCat(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return // Error already handled by middleware
	}

	var req RateCatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	rating, err := services.SubmitRating(database.DB, user, req.Cat, req.Value)
	if err != nil {
		handleServiceError(c, err, ErrFailedSubmitRating)
		return
	}

	metrics.RatingsSubmitted.Inc()
	realtime.BroadcastEvent(realtime.FeedEvent{
		Type:    realtime.EventRatingSubmitted,
		CatID:   rating.CatID,
		Payload: RatingResponse{Cat: rating.CatID, Value: rating.Value},
	})

	c.JSON(http.StatusAccepted, RatingResponse{Cat: rating.CatID, Value: rating.Value})
}
