package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/kayotadakota/cat-exhibition/database"
	"github.com/kayotadakota/cat-exhibition/models"
	"github.com/kayotadakota/cat-exhibition/utils"
	"github.com/kayotadakota/cat-exhibition/utils/response"

	"github.com/gin-gonic/gin"
)

const currentUserKey = "currentUser"

const (
	ErrAuthRequired = "Authentication required"
	ErrInvalidToken = "Invalid or expired token"
)

// AuthMiddleware validates the Bearer token and stores the authenticated
// user in the request context
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": ErrAuthRequired})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		userID, err := utils.ParseToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": ErrInvalidToken})
			return
		}

		var user models.User
		if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": ErrInvalidToken})
			return
		}

		c.Set(currentUserKey, user)
		c.Next()
	}
}

// GetUserFromRequest returns the authenticated user stored by AuthMiddleware.
// When no user is present it writes the 401 response itself; callers just
// return on error.
func GetUserFromRequest(c *gin.Context) (models.User, error) {
	value, exists := c.Get(currentUserKey)
	if !exists {
		response.Error(c, http.StatusUnauthorized, ErrAuthRequired)
		return models.User{}, errors.New("no authenticated user in context")
	}

	user, ok := value.(models.User)
	if !ok {
		response.Error(c, http.StatusUnauthorized, ErrAuthRequired)
		return models.User{}, errors.New("unexpected user type in context")
	}

	return user, nil
}
