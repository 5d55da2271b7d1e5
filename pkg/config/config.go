package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration for the API
type Config struct {
	MongoURI    string
	MongoDB     string
	Port        string
	Environment string
	LogLevel    string
}

// Load reads configuration from the environment, optionally seeded from a
// .env file when present
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		MongoURI:    GetEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:     GetEnv("MONGO_DB", "stayup"),
		Port:        GetEnv("PORT", "8080"),
		Environment: GetEnv("APP_ENV", "development"),
		LogLevel:    GetEnv("LOG_LEVEL", "info"),
	}
}

// GetEnv returns the value of an environment variable or a fallback
func GetEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// GetEnvInt returns an integer environment variable or a fallback
func GetEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}
