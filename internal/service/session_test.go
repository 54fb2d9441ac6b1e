package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fitfood-app/backend/internal/models"
	"github.com/fitfood-app/backend/internal/storage"
)

func TestSessionHydratesFromStore(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemStore()
	store.Write(ctx, storage.KeyCurrentUser, models.User{Email: "saved@example.com"})
	store.Write(ctx, storage.KeyAdminFlag, true)
	store.Write(ctx, storage.KeyCart, []models.CartItem{
		{FoodItem: models.FoodItem{ID: 7, Name: "کباب کوبیده", Price: 120000}, Quantity: 3},
	})

	session := NewSession(ctx, store)

	user := session.User()
	require.NotNil(t, user)
	assert.Equal(t, "saved@example.com", user.Email)
	assert.True(t, session.IsAdmin())

	cart := session.Cart()
	require.Len(t, cart, 1)
	assert.Equal(t, 3, cart[0].Quantity)
}

func TestSessionStartsEmptyOnCorruptState(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemStore()
	store.Corrupt(storage.KeyCurrentUser)
	store.Corrupt(storage.KeyCart)

	session := NewSession(ctx, store)
	assert.Nil(t, session.User())
	assert.False(t, session.IsAdmin())
	assert.Empty(t, session.Cart())
}

func TestSessionMirrorsMutationsToStore(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemStore()
	session := NewSession(ctx, store)

	session.setUser(ctx, &models.User{Email: "user@example.com"})
	session.setAdmin(ctx, true)
	session.setCart(ctx, []models.CartItem{
		{FoodItem: models.FoodItem{ID: 1, Name: "قرمه سبزی", Price: 95000}, Quantity: 1},
	})

	var user *models.User
	require.True(t, store.Read(ctx, storage.KeyCurrentUser, &user))
	assert.Equal(t, "user@example.com", user.Email)

	var isAdmin bool
	require.True(t, store.Read(ctx, storage.KeyAdminFlag, &isAdmin))
	assert.True(t, isAdmin)

	var cart []models.CartItem
	require.True(t, store.Read(ctx, storage.KeyCart, &cart))
	require.Len(t, cart, 1)
}

func TestSessionNotifiesSubscribersOnEveryChange(t *testing.T) {
	ctx := context.Background()
	session := NewSession(ctx, storage.NewMemStore())

	var snapshots []Snapshot
	session.Subscribe(func(snap Snapshot) {
		snapshots = append(snapshots, snap)
	})

	session.setUser(ctx, &models.User{Email: "user@example.com"})
	session.setCart(ctx, []models.CartItem{
		{FoodItem: models.FoodItem{ID: 1, Name: "قرمه سبزی", Price: 95000}, Quantity: 2},
	})
	session.setAdmin(ctx, true)

	require.Len(t, snapshots, 3)
	require.NotNil(t, snapshots[0].User)
	assert.Equal(t, "user@example.com", snapshots[0].User.Email)
	assert.Len(t, snapshots[1].Cart, 1)
	assert.True(t, snapshots[2].IsAdmin)
}

func TestSessionReturnsCopies(t *testing.T) {
	ctx := context.Background()
	session := NewSession(ctx, storage.NewMemStore())
	session.setCart(ctx, []models.CartItem{
		{FoodItem: models.FoodItem{ID: 1, Name: "قرمه سبزی", Price: 95000}, Quantity: 1},
	})

	cart := session.Cart()
	cart[0].Quantity = 99
	assert.Equal(t, 1, session.Cart()[0].Quantity)

	session.setUser(ctx, &models.User{Email: "user@example.com"})
	user := session.User()
	user.Email = "tampered@example.com"
	assert.Equal(t, "user@example.com", session.User().Email)
}
