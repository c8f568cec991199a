package users

import (
	"log"
	"net/http"

	"github.com/kayotadakota/cat-exhibition/database"
	"github.com/kayotadakota/cat-exhibition/handlers/cats"
	"github.com/kayotadakota/cat-exhibition/models"
	"github.com/kayotadakota/cat-exhibition/services"
	"github.com/kayotadakota/cat-exhibition/utils/response"

	"github.com/gin-gonic/gin"
)

// GetUsers lists every user together with their owned cats
// @Summary User list
// @Description Returns the list of all existing users. Each user carries the list of owned cats.
// @Tags Users
// @Produce json
// @Success 200 {array} UserResponse
// @Failure 500 {object} map[string]string
// @Router /users [get]
func GetUsers(c *gin.Context) {
	all, err := services.ListUsers(database.DB)
	if err != nil {
		log.Printf("Failed to fetch users: %v", err)
		response.Error(c, http.StatusInternalServerError, ErrFailedToGetUsers)
		return
	}

	averages, err := services.AverageRatings(database.DB, ownedCatIDs(all))
	if err != nil {
		log.Printf("Failed to compute rating averages: %v", err)
		response.Error(c, http.StatusInternalServerError, ErrFailedToGetUsers)
		return
	}

	responses := make([]UserResponse, 0, len(all))
	for _, user := range all {
		ownership := make([]cats.CatResponse, 0, len(user.Ownership))
		for _, cat := range user.Ownership {
			ownership = append(ownership, cats.NewCatResponse(*cat, averages[cat.ID]))
		}
		responses = append(responses, UserResponse{
			ID:        user.ID,
			Username:  user.Username,
			Ownership: ownership,
		})
	}

	c.JSON(http.StatusOK, responses)
}

func ownedCatIDs(users []models.User) []string {
	var ids []string
	for _, user := range users {
		for _, cat := range user.Ownership {
			ids = append(ids, cat.ID)
		}
	}
	return ids
}
