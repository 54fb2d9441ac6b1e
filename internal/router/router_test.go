package router

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fitfood-app/backend/internal/models"
	"github.com/fitfood-app/backend/internal/service"
	"github.com/fitfood-app/backend/internal/storage"
)

func newTestRouter(t *testing.T, geminiURL string) (*gin.Engine, *service.App) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	app := service.NewApp(context.Background(), storage.NewMemStore(), nil)
	planner := service.NewPlannerService(geminiURL)
	photoLab := service.NewPhotoLabService(geminiURL, nil)
	return Setup(app, planner, photoLab, nil), app
}

func doJSON(t *testing.T, engine *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func login(t *testing.T, engine *gin.Engine) {
	t.Helper()
	w := doJSON(t, engine, http.MethodPost, "/api/v1/auth/login", gin.H{
		"email":    "user@example.com",
		"password": "secret",
	})
	require.Equal(t, http.StatusOK, w.Code)
}

func adminLogin(t *testing.T, engine *gin.Engine) {
	t.Helper()
	w := doJSON(t, engine, http.MethodPost, "/api/v1/auth/admin/login", gin.H{
		"password": "f26560291b",
	})
	require.Equal(t, http.StatusOK, w.Code)
}

func TestHealthEndpoint(t *testing.T) {
	engine, _ := newTestRouter(t, "http://127.0.0.1:1")
	w := doJSON(t, engine, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"ok"`)
}

func TestLoginAndSessionView(t *testing.T) {
	engine, _ := newTestRouter(t, "http://127.0.0.1:1")

	w := doJSON(t, engine, http.MethodPost, "/api/v1/auth/login", gin.H{
		"email":    "user@example.com",
		"password": "secret",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, engine, http.MethodGet, "/api/v1/auth/me", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var view struct {
		User    *models.User `json:"user"`
		IsAdmin bool         `json:"isAdmin"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	require.NotNil(t, view.User)
	assert.Equal(t, "user@example.com", view.User.Email)
	assert.False(t, view.IsAdmin)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	engine, _ := newTestRouter(t, "http://127.0.0.1:1")
	login(t, engine)
	doJSON(t, engine, http.MethodPost, "/api/v1/auth/logout", nil)

	w := doJSON(t, engine, http.MethodPost, "/api/v1/auth/login", gin.H{
		"email":    "user@example.com",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProfileRequiresLogin(t *testing.T) {
	engine, _ := newTestRouter(t, "http://127.0.0.1:1")

	w := doJSON(t, engine, http.MethodPut, "/api/v1/profile", gin.H{"fullName": "x"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminRoutesRequireAdminSession(t *testing.T) {
	engine, _ := newTestRouter(t, "http://127.0.0.1:1")
	login(t, engine)

	w := doJSON(t, engine, http.MethodGet, "/api/v1/orders", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	adminLogin(t, engine)
	w = doJSON(t, engine, http.MethodGet, "/api/v1/orders", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCartFlow(t *testing.T) {
	engine, _ := newTestRouter(t, "http://127.0.0.1:1")

	w := doJSON(t, engine, http.MethodPost, "/api/v1/cart/items", gin.H{
		"item": gin.H{"id": 101, "name": "کباب کوبیده", "price": 120000},
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, engine, http.MethodPost, "/api/v1/cart/items", gin.H{
		"item": gin.H{"id": 101, "name": "کباب کوبیده", "price": 120000},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var cart []models.CartItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cart))
	require.Len(t, cart, 1)
	assert.Equal(t, 2, cart[0].Quantity)

	w = doJSON(t, engine, http.MethodPut, "/api/v1/cart/items", gin.H{
		"itemId": 101, "quantity": 0,
	})
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cart))
	assert.Empty(t, cart)
}

func TestOrderPlacement(t *testing.T) {
	engine, app := newTestRouter(t, "http://127.0.0.1:1")
	login(t, engine)

	w := doJSON(t, engine, http.MethodPost, "/api/v1/cart/items", gin.H{
		"item": gin.H{"id": 101, "name": "کباب کوبیده", "price": 120000},
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, engine, http.MethodPost, "/api/v1/orders", gin.H{
		"paymentMethod":  "پرداخت درب منزل",
		"deliveryMethod": "ارسال با پیک",
		"address":        "تهران",
		"deliveryTime":   "13:00",
		"drinks": []gin.H{
			{"id": "d1", "name": "نوشابه", "price": 20000, "quantity": 1},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var order models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &order))
	assert.Equal(t, int64(140000), order.TotalPrice)
	assert.Empty(t, app.Cart())
}

func TestOrderRejectsUnknownPaymentMethod(t *testing.T) {
	engine, _ := newTestRouter(t, "http://127.0.0.1:1")
	login(t, engine)
	doJSON(t, engine, http.MethodPost, "/api/v1/cart/items", gin.H{
		"item": gin.H{"id": 101, "name": "کباب کوبیده", "price": 120000},
	})

	w := doJSON(t, engine, http.MethodPost, "/api/v1/orders", gin.H{
		"paymentMethod":  "bitcoin",
		"deliveryMethod": "ارسال با پیک",
		"deliveryTime":   "13:00",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestOrderRejectsEmptyCart(t *testing.T) {
	engine, _ := newTestRouter(t, "http://127.0.0.1:1")
	login(t, engine)

	w := doJSON(t, engine, http.MethodPost, "/api/v1/orders", gin.H{
		"paymentMethod":  "پرداخت درب منزل",
		"deliveryMethod": "ارسال با پیک",
		"deliveryTime":   "13:00",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMenusAndDrinks(t *testing.T) {
	engine, _ := newTestRouter(t, "http://127.0.0.1:1")

	w := doJSON(t, engine, http.MethodGet, "/api/v1/menus", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var menus models.DailyMenus
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &menus))
	assert.Len(t, menus, 7)

	w = doJSON(t, engine, http.MethodGet, "/api/v1/menus/tomorrow", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"dayName"`)

	w = doJSON(t, engine, http.MethodGet, "/api/v1/menus/drinks", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var drinks []models.Drink
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &drinks))
	assert.Len(t, drinks, 3)
}

func TestMenuUpdateRequiresAdmin(t *testing.T) {
	engine, _ := newTestRouter(t, "http://127.0.0.1:1")

	payload := gin.H{"items": []gin.H{{"id": 1, "name": "سالاد سزار", "price": 80000}}}

	w := doJSON(t, engine, http.MethodPut, "/api/v1/menus/monday", payload)
	assert.Equal(t, http.StatusForbidden, w.Code)

	adminLogin(t, engine)
	w = doJSON(t, engine, http.MethodPut, "/api/v1/menus/monday", payload)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, engine, http.MethodPut, "/api/v1/menus/caturday", payload)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestContactExposesOnlyPublicSettings(t *testing.T) {
	engine, _ := newTestRouter(t, "http://127.0.0.1:1")

	w := doJSON(t, engine, http.MethodGet, "/api/v1/contact", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body, "contactPhone")
	assert.NotContains(t, body, "telegramToken")
	assert.NotContains(t, body, "plannerApiKey")
}

func TestPlannerUnconfiguredReturnsServiceUnavailable(t *testing.T) {
	engine, _ := newTestRouter(t, "http://127.0.0.1:1")

	w := doJSON(t, engine, http.MethodPost, "/api/v1/planner/generate", gin.H{
		"age": 30, "gender": "مرد", "weight": 82, "height": 178,
		"activityLevel": "متوسط", "goal": "کاهش وزن",
	})
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestPhotoLabEnforcesDailyQuota(t *testing.T) {
	gemini := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if strings.HasSuffix(r.URL.Path, ":predict") {
			_, _ = w.Write([]byte(`{"predictions": [{"bytesBase64Encoded": "ZW5oYW5jZWQ="}]}`))
			return
		}
		_, _ = w.Write([]byte(`{"candidates": [{"content": {"parts": [{"text": "a dish"}]}}]}`))
	}))
	defer gemini.Close()

	engine, app := newTestRouter(t, gemini.URL)
	login(t, engine)

	settings := app.AdminSettings(context.Background())
	settings.PhotoLabAPIKey = "test-key"
	app.SaveAdminSettings(context.Background(), settings)

	payload := gin.H{"image": "aW1hZ2U="}
	for i := 0; i < 2; i++ {
		w := doJSON(t, engine, http.MethodPost, "/api/v1/photolab/enhance", payload)
		require.Equal(t, http.StatusOK, w.Code, "request %d", i+1)
	}

	w := doJSON(t, engine, http.MethodPost, "/api/v1/photolab/enhance", payload)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	assert.Len(t, app.AllEnhancedImages(context.Background()), 2)
}
