package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/fitfood-app/backend/internal/service"
)

// CartHandler serves cart reads and mutations. The cart belongs to the
// session, so none of these routes require a login.
type CartHandler struct {
	app *service.App
}

func NewCartHandler(app *service.App) *CartHandler {
	return &CartHandler{app: app}
}

func (h *CartHandler) RegisterRoutes(router *gin.RouterGroup) {
	cart := router.Group("/cart")
	{
		cart.GET("", h.Get)
		cart.POST("/items", h.Add)
		cart.PUT("/items", h.SetQuantity)
		cart.DELETE("/items/:id", h.Remove)
		cart.DELETE("", h.Clear)
	}
}

func (h *CartHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, h.app.Cart())
}

func (h *CartHandler) Add(c *gin.Context) {
	var req CartAddRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	h.app.AddToCart(c.Request.Context(), req.Item)
	c.JSON(http.StatusOK, h.app.Cart())
}

func (h *CartHandler) SetQuantity(c *gin.Context) {
	var req CartQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	h.app.UpdateQuantity(c.Request.Context(), req.ItemID, req.Quantity)
	c.JSON(http.StatusOK, h.app.Cart())
}

func (h *CartHandler) Remove(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item id"})
		return
	}

	h.app.RemoveFromCart(c.Request.Context(), id)
	c.JSON(http.StatusOK, h.app.Cart())
}

func (h *CartHandler) Clear(c *gin.Context) {
	h.app.ClearCart(c.Request.Context())
	c.Status(http.StatusNoContent)
}
