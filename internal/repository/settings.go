package repository

import (
	"context"

	"github.com/fitfood-app/backend/internal/models"
	"github.com/fitfood-app/backend/internal/storage"
)

// SettingsRepository persists the singleton admin settings record.
type SettingsRepository struct {
	store storage.Store
}

func NewSettingsRepository(store storage.Store) *SettingsRepository {
	return &SettingsRepository{store: store}
}

// Get returns the stored settings, or the documented defaults when none
// have been saved yet.
func (r *SettingsRepository) Get(ctx context.Context) models.AdminSettings {
	settings := models.DefaultAdminSettings()
	r.store.Read(ctx, storage.KeyAdminSettings, &settings)
	return settings
}

// Save overwrites the settings record wholesale.
func (r *SettingsRepository) Save(ctx context.Context, settings models.AdminSettings) {
	r.store.Write(ctx, storage.KeyAdminSettings, settings)
}
