package cats

import (
	"github.com/kayotadakota/cat-exhibition/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes related to cats, breeds and ratings.
// Reads are public; create, update, delete and rate require authentication.
// r: the RouterGroup to which the routes are added
func RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/breeds", GetAllBreeds)
	r.GET("/cats", GetAllCats)
	r.GET("/cats/breed/:breed_id", GetCatsByBreed)

	cat := r.Group("/cat")
	{
		cat.GET("/details/:id", GetCatDetails)
		cat.POST("/add", middleware.AuthMiddleware(), AddCat)
		cat.PUT("/details/:id", middleware.AuthMiddleware(), UpdateCat)
		cat.DELETE("/details/:id", middleware.AuthMiddleware(), DeleteCat)
		cat.POST("/rate", middleware.AuthMiddleware(), RateCat)
	}

	r.GET("/ws/feed", FeedWebSocket)
}
