package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/fitfood-app/backend/config"
	"github.com/fitfood-app/backend/internal/logger"
)

// RedisStore persists each key as a plain redis string holding JSON.
type RedisStore struct {
	client *redis.Client
	log    *zap.Logger
}

// NewRedisStore wraps an existing redis client.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client, log: logger.L()}
}

// OpenRedis creates and pings a redis client from the config. REDIS_URL
// takes precedence over host/port when set.
func OpenRedis(cfg *config.Config) (*redis.Client, error) {
	opts := &redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.RedisHost, cfg.RedisPort),
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	}

	if cfg.RedisURL != "" {
		parsed, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
		}
		opts = parsed
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logger.L().Info("[Storage] connected to Redis", zap.String("addr", opts.Addr))
	return client, nil
}

func (s *RedisStore) Read(ctx context.Context, key string, dest any) bool {
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.log.Error("[Storage] read failed", zap.String("key", key), zap.Error(err))
		}
		return false
	}

	if err := json.Unmarshal(data, dest); err != nil {
		s.log.Error("[Storage] stored value is not valid JSON", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

func (s *RedisStore) Write(ctx context.Context, key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		s.log.Error("[Storage] marshal failed", zap.String("key", key), zap.Error(err))
		return
	}

	if err := s.client.Set(ctx, key, data, 0).Err(); err != nil {
		s.log.Error("[Storage] write failed", zap.String("key", key), zap.Error(err))
	}
}
