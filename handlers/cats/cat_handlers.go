package cats

import (
	"errors"
	"net/http"
	"time"

	"github.com/kayotadakota/cat-exhibition/database"
	"github.com/kayotadakota/cat-exhibition/metrics"
	"github.com/kayotadakota/cat-exhibition/middleware"
	"github.com/kayotadakota/cat-exhibition/models"
	"github.com/kayotadakota/cat-exhibition/realtime"
	"github.com/kayotadakota/cat-exhibition/services"
	"github.com/kayotadakota/cat-exhibition/utils/response"

	"github.com/gin-gonic/gin"
)

// GetAllCats lists every cat in the exhibition
// @Summary Cat list
// @Description Returns the list of all existing cats. An exhibition without cats is an empty list.
// @Tags Cats
// @Produce json
// @Success 200 {array} CatResponse
// @Failure 500 {object} map[string]string
// @Router /cats [get]
func GetAllCats(c *gin.Context) {
	start := time.Now()
	all, err := services.ListCats(database.DB)
	if err != nil {
		handleServiceError(c, err, ErrFailedFetchCats)
		return
	}
	metrics.RecordDBOperation("select", "cats", start)

	averages, err := services.AverageRatings(database.DB, catIDs(all))
	if err != nil {
		handleServiceError(c, err, ErrFailedFetchCats)
		return
	}

	c.JSON(http.StatusOK, NewCatResponses(all, averages))
}

// GetCatsByBreed lists the cats of one breed
// @Summary Cat list by breed
// @Description Returns the list of all cats with specified breed ID.
// @Tags Cats
// @Produce json
// @Param breed_id path string true "Breed ID"
// @Success 200 {array} CatResponse
// @Failure 404 {object} map[string]string
// @Router /cats/breed/{breed_id} [get]
func GetCatsByBreed(c *gin.Context) {
	filtered, err := services.ListCatsByBreed(database.DB, c.Param("breed_id"))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			response.Error(c, http.StatusNotFound, ErrBreedNotFound)
			return
		}
		handleServiceError(c, err, ErrFailedFetchCats)
		return
	}

	averages, err := services.AverageRatings(database.DB, catIDs(filtered))
	if err != nil {
		handleServiceError(c, err, ErrFailedFetchCats)
		return
	}

	c.JSON(http.StatusOK, NewCatResponses(filtered, averages))
}

// GetCatDetails returns one cat with its computed average rating
// @Summary Get details
// @Description Returns the details of the cat with specified ID.
// @Tags Cats
// @Produce json
// @Param id path string true "Cat ID"
// @Success 200 {object} CatResponse
// @Failure 404 {object} map[string]string
// @Router /cat/details/{id} [get]
func GetCatDetails(c *gin.Context) {
	cat, err := services.GetCat(database.DB, c.Param("id"))
	if err != nil {
		handleServiceError(c, err, ErrFailedFetchCats)
		return
	}

	average, err := services.AverageRating(database.DB, cat.ID)
	if err != nil {
		handleServiceError(c, err, ErrFailedFetchCats)
		return
	}

	c.JSON(http.StatusOK, NewCatResponse(cat, average))
}

// AddCat creates a cat owned by the authenticated user
// @Summary Create a cat
// @Description Creates a cat. To add a cat you need to pass name[str], age[int (in months)], color[str], breed[str], description[str] (optional).
// @Tags Cats
// @Accept json
// @Produce json
// @Param request body CreateCatRequest true "Cat fields"
// @Success 201 {object} CatResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /cat/add [post]
// @Security Bearer
func AddCat(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return // Error already handled by middleware
	}

	var req CreateCatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	cat, err := services.CreateCat(database.DB, user, req.Name, req.Age, req.Color, req.Breed, req.Description)
	if err != nil {
		handleServiceError(c, err, ErrFailedCreateCat)
		return
	}

	metrics.CatsCreated.Inc()
	// The write may have auto-created a breed
	InvalidateBreedsCache(c.Request.Context())
	realtime.BroadcastEvent(realtime.FeedEvent{Type: realtime.EventCatCreated, CatID: cat.ID})

	c.JSON(http.StatusCreated, NewCatResponse(cat, 0.0))
}

// UpdateCat applies a partial update to a cat owned by the caller
// @Summary Update details
// @Description Changes the details of the cat with specified ID. Only the owner may update a cat.
// @Tags Cats
// @Accept json
// @Produce json
// @Param id path string true "Cat ID"
// @Param request body UpdateCatRequest true "Fields to change"
// @Success 200 {object} CatResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /cat/details/{id} [put]
// @Security Bearer
func UpdateCat(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return // Error already handled by middleware
	}

	var req UpdateCatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	cat, err := services.UpdateCat(database.DB, c.Param("id"), user, services.CatUpdate{
		Name:        req.Name,
		Age:         req.Age,
		Color:       req.Color,
		Description: req.Description,
		Breed:       req.Breed,
	})
	if err != nil {
		handleServiceError(c, err, ErrFailedUpdateCat)
		return
	}

	average, err := services.AverageRating(database.DB, cat.ID)
	if err != nil {
		handleServiceError(c, err, ErrFailedUpdateCat)
		return
	}

	if req.Breed != nil {
		InvalidateBreedsCache(c.Request.Context())
	}
	realtime.BroadcastEvent(realtime.FeedEvent{Type: realtime.EventCatUpdated, CatID: cat.ID})

	c.JSON(http.StatusOK, NewCatResponse(cat, average))
}

// DeleteCat removes a cat owned by the caller together with its ratings
// @Summary Delete a cat
// @Description Removes the cat with specified ID from the database. Only the owner may delete a cat.
// @Tags Cats
// @Param id path string true "Cat ID"
// @Success 204
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /cat/details/{id} [delete]
// @Security Bearer
func DeleteCat(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return // Error already handled by middleware
	}

	catID := c.Param("id")
	if err := services.DeleteCat(database.DB, catID, user); err != nil {
		handleServiceError(c, err, ErrFailedDeleteCat)
		return
	}

	realtime.BroadcastEvent(realtime.FeedEvent{Type: realtime.EventCatDeleted, CatID: catID})

	c.Status(http.StatusNoContent)
}

func catIDs(cats []models.Cat) []string {
	ids := make([]string, len(cats))
	for i, cat := range cats {
		ids[i] = cat.ID
	}
	return ids
}
