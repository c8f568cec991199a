package auth

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes related to registration and login
// r: the RouterGroup to which routes are added
func RegisterRoutes(r *gin.RouterGroup) {

	user := r.Group("/user")
	{
		user.POST("/register", RegisterUser)
		user.POST("/login", Login)
	}
}
