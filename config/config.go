package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	APIPort          string
	PostgresHost     string
	PostgresPort     string
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	RedisAddress     string
	JWTSecret        string
)

// LoadConfig loads the environment variables from the .env file if present,
// then fills the package-level configuration values
func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, falling back to environment variables")
	}

	APIPort = getEnv("API_PORT", "8080")
	PostgresHost = getEnv("POSTGRES_HOST", "localhost")
	PostgresPort = getEnv("POSTGRES_PORT", "5432")
	PostgresUser = getEnv("POSTGRES_USER", "postgres")
	PostgresPassword = getEnv("POSTGRES_PASSWORD", "postgres")
	PostgresDB = getEnv("POSTGRES_DB", "cat_exhibition")
	RedisAddress = getEnv("REDIS_ADDRESS", "")
	JWTSecret = getEnv("JWT_SECRET", "")

	if JWTSecret == "" {
		log.Println("JWT_SECRET is not set, authenticated endpoints will reject every token")
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
