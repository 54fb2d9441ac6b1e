package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"

	"github.com/fitfood-app/backend/config"
	"github.com/fitfood-app/backend/internal/logger"
)

// kvEntry is one persisted key with its JSON document.
type kvEntry struct {
	Key   string `gorm:"primaryKey;column:key"`
	Value string `gorm:"column:value;type:text"`
}

func (kvEntry) TableName() string { return "kv_entries" }

// GormStore persists keys in a single table through gorm, backed by either
// sqlite or postgres.
type GormStore struct {
	db  *gorm.DB
	log *zap.Logger
}

// NewGormStore wraps an open gorm connection and ensures the table exists.
func NewGormStore(db *gorm.DB) (*GormStore, error) {
	if err := db.AutoMigrate(&kvEntry{}); err != nil {
		return nil, fmt.Errorf("failed to migrate kv table: %w", err)
	}
	return &GormStore{db: db, log: logger.L()}, nil
}

// OpenGorm opens the sqlite or postgres connection selected by the config.
func OpenGorm(cfg *config.Config) (*gorm.DB, error) {
	opts := &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)}

	switch cfg.StorageDriver {
	case "sqlite":
		return gorm.Open(sqlite.Open(cfg.SQLitePath), opts)
	case "postgres":
		return gorm.Open(postgres.Open(cfg.PostgresDSN()), opts)
	default:
		return nil, fmt.Errorf("storage driver %q is not gorm-backed", cfg.StorageDriver)
	}
}

func (s *GormStore) Read(ctx context.Context, key string, dest any) bool {
	var entry kvEntry
	err := s.db.WithContext(ctx).First(&entry, "key = ?", key).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.log.Error("[Storage] read failed", zap.String("key", key), zap.Error(err))
		}
		return false
	}

	if err := json.Unmarshal([]byte(entry.Value), dest); err != nil {
		s.log.Error("[Storage] stored value is not valid JSON", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

func (s *GormStore) Write(ctx context.Context, key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		s.log.Error("[Storage] marshal failed", zap.String("key", key), zap.Error(err))
		return
	}

	entry := kvEntry{Key: key, Value: string(data)}
	err = s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value"}),
		}).
		Create(&entry).Error
	if err != nil {
		s.log.Error("[Storage] write failed", zap.String("key", key), zap.Error(err))
	}
}
