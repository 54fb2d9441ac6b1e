package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	// Server configuration
	ServerHost string
	ServerPort string

	// Storage backend: "sqlite", "postgres" or "redis"
	StorageDriver string

	// SQLite configuration
	SQLitePath string

	// Postgres configuration
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Redis configuration
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	RedisURL      string

	// External API base URLs, overridable for tests
	TelegramBaseURL string
	GeminiBaseURL   string

	// Optional S3 mirror for enhanced images
	S3Bucket  string
	AWSRegion string
}

// Load creates a Config from environment variables. A .env file is loaded
// first when present outside production.
func Load() (*Config, error) {
	if !IsProduction() {
		_ = godotenv.Load()
	}

	cfg := &Config{
		ServerHost:    getenv("SERVER_HOST", "0.0.0.0"),
		ServerPort:    getenv("SERVER_PORT", "8080"),
		StorageDriver: getenv("STORAGE_DRIVER", "sqlite"),
		SQLitePath:    getenv("SQLITE_PATH", "fitfood.db"),

		DBHost:     getenv("DB_HOST", "localhost"),
		DBPort:     getenv("DB_PORT", "5432"),
		DBUser:     getenv("DB_USER", "postgres"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     getenv("DB_NAME", "fitfood"),
		DBSSLMode:  getenv("DB_SSL_MODE", "disable"),

		RedisHost:     getenv("REDIS_HOST", "localhost"),
		RedisPort:     getenv("REDIS_PORT", "6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisURL:      os.Getenv("REDIS_URL"),

		TelegramBaseURL: getenv("TELEGRAM_API_BASE_URL", "https://api.telegram.org"),
		GeminiBaseURL:   getenv("GEMINI_API_BASE_URL", "https://generativelanguage.googleapis.com"),

		S3Bucket:  os.Getenv("S3_BUCKET_NAME"),
		AWSRegion: os.Getenv("AWS_REGION"),
	}

	if dbStr := os.Getenv("REDIS_DB"); dbStr != "" {
		db, err := strconv.Atoi(dbStr)
		if err != nil {
			return nil, fmt.Errorf("invalid REDIS_DB value %q: %w", dbStr, err)
		}
		cfg.RedisDB = db
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// PostgresDSN builds the DSN for the postgres storage backend.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode)
}

func getenv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
