// Package repository binds typed collections to fixed storage keys. Every
// operation reloads the full collection from the store, mutates it and
// writes it back; concurrent writers are last-write-wins by design.
package repository

import (
	"context"

	"github.com/fitfood-app/backend/internal/storage"
)

// Collection is a typed list persisted wholesale under one storage key.
type Collection[T any] struct {
	store storage.Store
	key   string
}

// NewCollection binds a collection of T to the given storage key.
func NewCollection[T any](store storage.Store, key string) *Collection[T] {
	return &Collection[T]{store: store, key: key}
}

// List returns the full collection in insertion order, or an empty slice
// when the key is absent or unreadable.
func (c *Collection[T]) List(ctx context.Context) []T {
	var items []T
	c.store.Read(ctx, c.key, &items)
	return items
}

// Append reloads the collection, appends item and writes the result back.
func (c *Collection[T]) Append(ctx context.Context, item T) {
	items := c.List(ctx)
	c.store.Write(ctx, c.key, append(items, item))
}

// Find returns the first element matching pred.
func (c *Collection[T]) Find(ctx context.Context, pred func(T) bool) (T, bool) {
	for _, item := range c.List(ctx) {
		if pred(item) {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Update replaces the first element matching pred with item and reports
// whether a match was found. No match leaves the collection untouched.
func (c *Collection[T]) Update(ctx context.Context, pred func(T) bool, item T) bool {
	items := c.List(ctx)
	for i := range items {
		if pred(items[i]) {
			items[i] = item
			c.store.Write(ctx, c.key, items)
			return true
		}
	}
	return false
}

// Replace overwrites the whole collection.
func (c *Collection[T]) Replace(ctx context.Context, items []T) {
	c.store.Write(ctx, c.key, items)
}
