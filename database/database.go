package database

import (
	"fmt"
	"log"

	"github.com/kayotadakota/cat-exhibition/config"
	"github.com/kayotadakota/cat-exhibition/models"

	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// REDIS stays nil when no redis address is configured; callers must treat the
// cache as optional
var REDIS *redis.Client

// InitDB initializes the database connection and migrates the models.
// TranslateError is required: the breed registry and the rating ledger rely
// on gorm.ErrDuplicatedKey to detect unique-constraint violations.
func InitDB() {
	dsn := fmt.Sprintf("host=%s port=%s user=%s dbname=%s password=%s sslmode=disable",
		config.PostgresHost, config.PostgresPort, config.PostgresUser, config.PostgresDB, config.PostgresPassword)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal("failed to connect database: ", err)
	}

	err = DB.AutoMigrate(
		&models.User{},
		&models.Breed{},
		&models.Cat{},
		&models.Rating{},
	)
	if err != nil {
		log.Fatal("failed to migrate database: ", err)
	}
}

// InitRedis connects the optional redis cache used for the breed list
func InitRedis() {
	if config.RedisAddress == "" {
		log.Println("REDIS_ADDRESS is not set, breed list caching is disabled")
		return
	}

	REDIS = redis.NewClient(&redis.Options{Addr: config.RedisAddress})
}
