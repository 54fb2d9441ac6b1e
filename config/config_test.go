package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.ServerHost)
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "sqlite", cfg.StorageDriver)
	assert.Equal(t, "https://api.telegram.org", cfg.TelegramBaseURL)
	assert.Equal(t, "https://generativelanguage.googleapis.com", cfg.GeminiBaseURL)
}

func TestLoadRespectsEnvironment(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "redis")
	t.Setenv("REDIS_HOST", "cache")
	t.Setenv("REDIS_DB", "3")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "redis", cfg.StorageDriver)
	assert.Equal(t, "cache", cfg.RedisHost)
	assert.Equal(t, 3, cfg.RedisDB)
}

func TestLoadRejectsUnknownDriver(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "csv")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadRejectsBadRedisDB(t *testing.T) {
	t.Setenv("REDIS_DB", "not-a-number")

	_, err := Load()
	assert.Error(t, err)
}

func TestValidateRequiresRegionWithBucket(t *testing.T) {
	t.Setenv("S3_BUCKET_NAME", "fitfood-images")

	_, err := Load()
	assert.Error(t, err)

	t.Setenv("AWS_REGION", "eu-central-1")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "fitfood-images", cfg.S3Bucket)
}

func TestPostgresDSN(t *testing.T) {
	cfg := &Config{
		DBHost: "db", DBPort: "5432", DBUser: "postgres",
		DBPassword: "pass", DBName: "fitfood", DBSSLMode: "disable",
	}
	assert.Equal(t,
		"host=db port=5432 user=postgres password=pass dbname=fitfood sslmode=disable",
		cfg.PostgresDSN())
}
