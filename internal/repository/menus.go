package repository

import (
	"context"
	"fmt"

	"github.com/fitfood-app/backend/internal/models"
	"github.com/fitfood-app/backend/internal/storage"
)

// MenuRepository persists the weekly menu map. Absence of the key yields
// the seed menu, so all seven weekday keys are always populated.
type MenuRepository struct {
	store storage.Store
}

func NewMenuRepository(store storage.Store) *MenuRepository {
	return &MenuRepository{store: store}
}

// All returns the stored weekly menus, falling back to the seed menu.
func (r *MenuRepository) All(ctx context.Context) models.DailyMenus {
	var menus models.DailyMenus
	if !r.store.Read(ctx, storage.KeyDailyMenus, &menus) || menus == nil {
		return models.SeedMenus()
	}
	return menus
}

// Day returns one weekday's menu.
func (r *MenuRepository) Day(ctx context.Context, day models.DayKey) []models.FoodItem {
	return r.All(ctx)[day]
}

// ReplaceDay overwrites a single weekday's menu wholesale.
func (r *MenuRepository) ReplaceDay(ctx context.Context, day models.DayKey, items []models.FoodItem) error {
	if !day.Valid() {
		return fmt.Errorf("unknown weekday %q", day)
	}
	menus := r.All(ctx)
	menus[day] = items
	r.store.Write(ctx, storage.KeyDailyMenus, menus)
	return nil
}
