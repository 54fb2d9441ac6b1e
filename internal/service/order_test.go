package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fitfood-app/backend/internal/models"
	"github.com/fitfood-app/backend/internal/storage"
)

func TestCreateOrderRequiresUser(t *testing.T) {
	app, _ := newTestApp(t)

	order, err := app.CreateOrder(context.Background(), OrderDraft{})
	assert.ErrorIs(t, err, ErrNotAuthenticated)
	assert.Nil(t, order)
}

func TestCreateOrderTotalsAndClearsCart(t *testing.T) {
	app, store := newTestApp(t)
	ctx := context.Background()

	_, err := app.Login(ctx, "user@example.com", "secret")
	require.NoError(t, err)

	discount := int64(120000)
	app.AddToCart(ctx, models.FoodItem{ID: 1, Name: "کباب کوبیده", Price: 150000, DiscountPrice: &discount})
	app.AddToCart(ctx, models.FoodItem{ID: 1, Name: "کباب کوبیده", Price: 150000, DiscountPrice: &discount})
	app.AddToCart(ctx, models.FoodItem{ID: 2, Name: "قرمه سبزی", Price: 100000})

	order, err := app.CreateOrder(ctx, OrderDraft{
		Drinks: []models.OrderDrink{
			{Drink: models.Drink{ID: "d1", Name: "نوشابه", Price: 20000}, Quantity: 2},
		},
		PaymentMethod:  models.PaymentCashOnDelivery,
		DeliveryMethod: models.DeliveryCourier,
		Address:        "تهران، خیابان ولیعصر",
		DeliveryTime:   "13:00",
	})
	require.NoError(t, err)
	require.NotNil(t, order)

	// 2 x 120000 discounted + 1 x 100000 + 2 x 20000 drinks.
	assert.Equal(t, int64(380000), order.TotalPrice)
	assert.Contains(t, order.ID, "order_")
	assert.Equal(t, "user@example.com", order.UserID)
	assert.Equal(t, models.OrderPending, order.Status)
	assert.Len(t, order.Items, 2)

	assert.Empty(t, app.Cart(), "cart is cleared after checkout")

	var stored []models.Order
	require.True(t, store.Read(ctx, storage.KeyOrders, &stored))
	require.Len(t, stored, 1)
	assert.Equal(t, order.ID, stored[0].ID)
}

func TestCreateOrderReceiptOnlyForCardToCard(t *testing.T) {
	app, _ := newTestApp(t)
	ctx := context.Background()

	_, err := app.Login(ctx, "user@example.com", "secret")
	require.NoError(t, err)

	app.AddToCart(ctx, models.FoodItem{ID: 1, Name: "کباب کوبیده", Price: 120000})
	order, err := app.CreateOrder(ctx, OrderDraft{
		PaymentMethod: models.PaymentCashOnDelivery,
		ReceiptImage:  "base64data",
	})
	require.NoError(t, err)
	assert.Empty(t, order.ReceiptImage)

	app.AddToCart(ctx, models.FoodItem{ID: 1, Name: "کباب کوبیده", Price: 120000})
	order, err = app.CreateOrder(ctx, OrderDraft{
		PaymentMethod: models.PaymentCardToCard,
		ReceiptImage:  "base64data",
	})
	require.NoError(t, err)
	assert.Equal(t, "base64data", order.ReceiptImage)
}

func TestCreateOrderNotificationFailureDoesNotFailOrder(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"ok":false,"description":"chat not found"}`))
	}))
	defer server.Close()

	ctx := context.Background()
	store := storage.NewMemStore()
	app := NewApp(ctx, store, NewTelegramNotifier(server.URL))

	settings := app.AdminSettings(ctx)
	settings.TelegramToken = "token"
	settings.TelegramChatID = "42"
	app.SaveAdminSettings(ctx, settings)

	_, err := app.Login(ctx, "user@example.com", "secret")
	require.NoError(t, err)
	app.AddToCart(ctx, models.FoodItem{ID: 1, Name: "کباب کوبیده", Price: 120000})

	order, err := app.CreateOrder(ctx, OrderDraft{PaymentMethod: models.PaymentGateway})
	require.NoError(t, err)
	require.NotNil(t, order)
	assert.Len(t, app.AllOrders(ctx), 1)
}
