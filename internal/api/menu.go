package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fitfood-app/backend/internal/middleware"
	"github.com/fitfood-app/backend/internal/models"
	"github.com/fitfood-app/backend/internal/service"
)

// MenuHandler serves the weekly menus and the fixed drinks catalog.
type MenuHandler struct {
	app *service.App
}

func NewMenuHandler(app *service.App) *MenuHandler {
	return &MenuHandler{app: app}
}

func (h *MenuHandler) RegisterRoutes(router *gin.RouterGroup) {
	menus := router.Group("/menus")
	{
		menus.GET("", h.List)
		menus.GET("/tomorrow", h.Tomorrow)
		menus.GET("/drinks", h.Drinks)
		menus.PUT("/:day", middleware.RequireAdmin(h.app), h.UpdateDay)
	}
}

func (h *MenuHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.app.DailyMenus(c.Request.Context()))
}

// Tomorrow returns the menu customers order from: tomorrow's dishes plus
// the customer-facing day name.
func (h *MenuHandler) Tomorrow(c *gin.Context) {
	items, dayName := h.app.TomorrowsMenu(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{
		"dayName": dayName,
		"items":   items,
	})
}

func (h *MenuHandler) Drinks(c *gin.Context) {
	c.JSON(http.StatusOK, models.DrinksMenu)
}

func (h *MenuHandler) UpdateDay(c *gin.Context) {
	var req MenuUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	day := models.DayKey(c.Param("day"))
	if err := h.app.UpdateDailyMenu(c.Request.Context(), day, req.Items); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown day"})
		return
	}
	c.JSON(http.StatusOK, h.app.DailyMenus(c.Request.Context()))
}
