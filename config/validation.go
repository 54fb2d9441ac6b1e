package config

import (
	"fmt"
	"strconv"
	"strings"
)

// driverRequirements lists the fields each storage backend cannot run without.
var driverRequirements = map[string][]string{
	"sqlite":   {"SQLITE_PATH"},
	"postgres": {"DB_HOST", "DB_PORT", "DB_USER", "DB_NAME"},
	"redis":    {"REDIS_HOST", "REDIS_PORT"},
}

// Validate checks that the configuration is complete for the selected
// storage backend and that the server settings are usable.
func Validate(cfg *Config) error {
	var errs []string

	if _, ok := driverRequirements[cfg.StorageDriver]; !ok {
		errs = append(errs, fmt.Sprintf("unknown STORAGE_DRIVER %q (want sqlite, postgres or redis)", cfg.StorageDriver))
	}

	if _, err := strconv.Atoi(cfg.ServerPort); err != nil {
		errs = append(errs, fmt.Sprintf("SERVER_PORT %q is not a number", cfg.ServerPort))
	}

	switch cfg.StorageDriver {
	case "sqlite":
		if cfg.SQLitePath == "" {
			errs = append(errs, "SQLITE_PATH is required for the sqlite backend")
		}
	case "postgres":
		if cfg.DBHost == "" || cfg.DBPort == "" || cfg.DBUser == "" || cfg.DBName == "" {
			errs = append(errs, "DB_HOST, DB_PORT, DB_USER and DB_NAME are required for the postgres backend")
		}
	case "redis":
		if cfg.RedisURL == "" && (cfg.RedisHost == "" || cfg.RedisPort == "") {
			errs = append(errs, "REDIS_URL or REDIS_HOST/REDIS_PORT are required for the redis backend")
		}
	}

	// The S3 mirror is optional but needs a region once a bucket is set.
	if cfg.S3Bucket != "" && cfg.AWSRegion == "" {
		errs = append(errs, "AWS_REGION is required when S3_BUCKET_NAME is set")
	}

	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}
