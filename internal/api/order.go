package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fitfood-app/backend/internal/middleware"
	"github.com/fitfood-app/backend/internal/service"
)

// OrderHandler serves checkout and the admin order list.
type OrderHandler struct {
	app *service.App
}

func NewOrderHandler(app *service.App) *OrderHandler {
	return &OrderHandler{app: app}
}

func (h *OrderHandler) RegisterRoutes(router *gin.RouterGroup) {
	orders := router.Group("/orders")
	{
		orders.POST("", middleware.RequireUser(h.app), h.Create)
		orders.GET("", middleware.RequireAdmin(h.app), h.List)
	}
}

func (h *OrderHandler) Create(c *gin.Context) {
	var req OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if len(h.app.Cart()) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cart is empty"})
		return
	}

	order, err := h.app.CreateOrder(c.Request.Context(), service.OrderDraft{
		Drinks:         req.Drinks,
		PaymentMethod:  req.PaymentMethod,
		DeliveryMethod: req.DeliveryMethod,
		Address:        req.Address,
		DeliveryTime:   req.DeliveryTime,
		ReceiptImage:   req.ReceiptImage,
	})
	if err != nil {
		if errors.Is(err, service.ErrNotAuthenticated) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "login required"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to place order"})
		return
	}

	c.JSON(http.StatusCreated, order)
}

func (h *OrderHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.app.AllOrders(c.Request.Context()))
}
