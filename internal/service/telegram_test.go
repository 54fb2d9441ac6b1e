package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fitfood-app/backend/internal/models"
)

func testSettings() models.AdminSettings {
	s := models.DefaultAdminSettings()
	s.TelegramToken = "test-token"
	s.TelegramChatID = "12345"
	return s
}

func TestTelegramSendPostsToBotEndpoint(t *testing.T) {
	var gotPath string
	var gotPayload map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotPayload))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	order := models.Order{
		ID:             "order_1",
		Items:          []models.OrderItem{{FoodItem: models.FoodItem{Name: "کباب کوبیده", Price: 120000}, Quantity: 2}},
		Drinks:         []models.OrderDrink{{Drink: models.Drink{Name: "نوشابه", Price: 20000}, Quantity: 1}},
		TotalPrice:     260000,
		PaymentMethod:  models.PaymentCashOnDelivery,
		DeliveryMethod: models.DeliveryCourier,
		Address:        "تهران",
		DeliveryTime:   "13:00",
	}
	user := models.User{Email: "user@example.com", FullName: "سارا محمدی", Phone: "09123456789"}

	notifier := NewTelegramNotifier(server.URL)
	require.NoError(t, notifier.Send(context.Background(), order, user, testSettings()))

	assert.Equal(t, "/bottest-token/sendMessage", gotPath)
	assert.Equal(t, "12345", gotPayload["chat_id"])
	assert.Equal(t, "Markdown", gotPayload["parse_mode"])
	assert.Contains(t, gotPayload["text"], "سفارش جدید دریافت شد")
	assert.Contains(t, gotPayload["text"], "سارا محمدی")
	assert.Contains(t, gotPayload["text"], "کباب کوبیده (x2)")
	assert.Contains(t, gotPayload["text"], "260,000 تومان")
}

func TestTelegramSendReportsAPIRejection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"ok":false,"description":"chat not found"}`))
	}))
	defer server.Close()

	notifier := NewTelegramNotifier(server.URL)
	err := notifier.Send(context.Background(), models.Order{ID: "order_1"}, models.User{Email: "u@example.com"}, testSettings())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "chat not found")
}

func TestTelegramSendSkipsWhenUnconfigured(t *testing.T) {
	notifier := NewTelegramNotifier("http://127.0.0.1:1")
	err := notifier.Send(context.Background(), models.Order{}, models.User{}, models.DefaultAdminSettings())
	assert.NoError(t, err)
}

func TestFormatOrderMessageFallbacks(t *testing.T) {
	msg := formatOrderMessage(
		models.Order{PaymentMethod: models.PaymentCardToCard, ReceiptImage: "data"},
		models.User{Email: "user@example.com"},
	)
	assert.Contains(t, msg, "user@example.com")
	assert.Contains(t, msg, "ثبت نشده")
	assert.Contains(t, msg, "رسید آپلود شد")
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "0", formatPrice(0))
	assert.Equal(t, "950", formatPrice(950))
	assert.Equal(t, "120,000", formatPrice(120000))
	assert.Equal(t, "1,250,000", formatPrice(1250000))
}
