package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type Config struct {
	Port         string
	DatabasePath string
	JWTSecret    string
	LogLevel     string
}

func LoadConfig() (*Config, error) {
	godotenv.Load()

	return &Config{
		Port:         os.Getenv("PORT"),
		DatabasePath: getEnvOrDefault("DATABASE_PATH", "katalika.db"),
		JWTSecret:    getEnvOrDefault("JWT_SECRET", "katalika-dev-secret"),
		LogLevel:     getEnvOrDefault("LOG_LEVEL", "info"),
	}, nil
}

func InitDB(cfg *Config) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(cfg.DatabasePath), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
