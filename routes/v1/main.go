package v1

import (
	"github.com/kayotadakota/cat-exhibition/config"
	"github.com/kayotadakota/cat-exhibition/handlers/auth"
	"github.com/kayotadakota/cat-exhibition/handlers/cats"
	"github.com/kayotadakota/cat-exhibition/handlers/users"
	"github.com/kayotadakota/cat-exhibition/middleware"

	"github.com/gin-gonic/gin"
)

// Register the endpoints for the v1 API
func Register(r *gin.Engine) {
	v1 := r.Group("/api/v1")

	// Add metrics middleware to all routes
	v1.Use(middleware.MetricsMiddleware())

	rateLimiter := middleware.NewRateLimiter(config.DefaultRateLimitConfig.RequestsPerMinute, config.DefaultRateLimitConfig.Burst)
	v1.Use(middleware.RateLimiterMiddleware(rateLimiter))

	RegisterPingRoutes(v1)
	auth.RegisterRoutes(v1)
	users.RegisterRoutes(v1)
	cats.RegisterRoutes(v1)

	// Register metrics and swagger endpoints
	RegisterMetricsRoutes(v1)
	RegisterSwaggerRoutes(r)
}
