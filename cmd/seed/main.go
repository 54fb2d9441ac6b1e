package main

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/fitfood-app/backend/config"
	"github.com/fitfood-app/backend/internal/logger"
	"github.com/fitfood-app/backend/internal/models"
	"github.com/fitfood-app/backend/internal/storage"
)

// Seeds the weekly menus and default admin settings into the configured
// storage backend. Existing records are left alone.
func main() {
	logger.Init()
	defer logger.Sync()
	log := logger.L()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("failed to load configuration", zap.Error(err))
	}

	store, err := openStore(cfg)
	if err != nil {
		log.Fatal("failed to open storage backend", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	var menus models.DailyMenus
	if store.Read(ctx, storage.KeyDailyMenus, &menus) && len(menus) > 0 {
		log.Info("daily menus already present, skipping")
	} else {
		store.Write(ctx, storage.KeyDailyMenus, models.SeedMenus())
		log.Info("seeded daily menus")
	}

	var settings models.AdminSettings
	if store.Read(ctx, storage.KeyAdminSettings, &settings) {
		log.Info("admin settings already present, skipping")
	} else {
		store.Write(ctx, storage.KeyAdminSettings, models.DefaultAdminSettings())
		log.Info("seeded default admin settings")
	}

	log.Info("seeding complete", zap.String("storage", cfg.StorageDriver))
}

func openStore(cfg *config.Config) (storage.Store, error) {
	switch cfg.StorageDriver {
	case "sqlite", "postgres":
		db, err := storage.OpenGorm(cfg)
		if err != nil {
			return nil, err
		}
		return storage.NewGormStore(db)
	case "redis":
		client, err := storage.OpenRedis(cfg)
		if err != nil {
			return nil, err
		}
		return storage.NewRedisStore(client), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}
