package main

import (
	"log"

	"github.com/kayotadakota/cat-exhibition/config"
	"github.com/kayotadakota/cat-exhibition/database"
	_ "github.com/kayotadakota/cat-exhibition/docs"
	"github.com/kayotadakota/cat-exhibition/middleware"
	v1 "github.com/kayotadakota/cat-exhibition/routes/v1"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// @title Cat Exhibition API
// @version 1.0
// @description Record-management service for a cat cataloguing application: users, breeds, cats and ratings.
// @BasePath /api/v1
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
func main() {
	config.LoadConfig()
	database.InitDB()
	database.InitRedis()

	r := gin.Default()
	r.Use(cors.Default())

	v1.Register(r)
	middleware.UpdateSystemMetrics()

	log.Printf("Starting cat-exhibition API on port %s", config.APIPort)
	if err := r.Run(":" + config.APIPort); err != nil {
		log.Fatal("failed to start server: ", err)
	}
}
