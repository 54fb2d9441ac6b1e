package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/fitfood-app/backend/config"
	"github.com/fitfood-app/backend/internal/logger"
	"github.com/fitfood-app/backend/internal/middleware"
	"github.com/fitfood-app/backend/internal/router"
	"github.com/fitfood-app/backend/internal/server"
	"github.com/fitfood-app/backend/internal/service"
	"github.com/fitfood-app/backend/internal/storage"
)

func main() {
	logger.Init()
	defer logger.Sync()
	log := logger.L()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("failed to load configuration", zap.Error(err))
	}

	ctx := context.Background()

	store, aiLimiter, err := openStore(cfg)
	if err != nil {
		log.Fatal("failed to open storage backend", zap.Error(err))
	}

	s3cfg, err := config.NewS3Config(ctx, cfg)
	if err != nil {
		log.Fatal("failed to initialize S3", zap.Error(err))
	}

	app := service.NewApp(ctx, store, service.NewTelegramNotifier(cfg.TelegramBaseURL))
	planner := service.NewPlannerService(cfg.GeminiBaseURL)
	photoLab := service.NewPhotoLabService(cfg.GeminiBaseURL, s3cfg)

	engine := router.Setup(app, planner, photoLab, aiLimiter)
	srv := server.New(cfg, engine)

	errChan := make(chan error, 1)
	go func() {
		log.Info("starting server",
			zap.String("addr", cfg.ServerHost+":"+cfg.ServerPort),
			zap.String("storage", cfg.StorageDriver))
		errChan <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			log.Fatal("server error", zap.Error(err))
		}
	case sig := <-quit:
		log.Info("received signal", zap.String("signal", sig.String()))
	}

	log.Info("shutting down server")
	if err := srv.Shutdown(context.Background()); err != nil {
		log.Fatal("server shutdown error", zap.Error(err))
	}
	log.Info("server stopped")
}

// openStore builds the configured storage backend. The redis driver also
// yields a rate limiter for the AI endpoints.
func openStore(cfg *config.Config) (storage.Store, *middleware.RateLimiter, error) {
	switch cfg.StorageDriver {
	case "sqlite", "postgres":
		db, err := storage.OpenGorm(cfg)
		if err != nil {
			return nil, nil, err
		}
		store, err := storage.NewGormStore(db)
		if err != nil {
			return nil, nil, err
		}
		return store, nil, nil
	case "redis":
		client, err := storage.OpenRedis(cfg)
		if err != nil {
			return nil, nil, err
		}
		limiter := middleware.NewRateLimiter(client, middleware.RateLimitConfig{
			Window:    time.Minute,
			Limit:     10,
			KeyPrefix: "ai_rate",
		})
		return storage.NewRedisStore(client), limiter, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}
