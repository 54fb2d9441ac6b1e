package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fitfood-app/backend/internal/middleware"
	"github.com/fitfood-app/backend/internal/models"
	"github.com/fitfood-app/backend/internal/service"
)

// SettingsHandler serves the admin settings record and the public
// contact details derived from it.
type SettingsHandler struct {
	app *service.App
}

func NewSettingsHandler(app *service.App) *SettingsHandler {
	return &SettingsHandler{app: app}
}

func (h *SettingsHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/contact", h.Contact)

	settings := router.Group("/admin/settings", middleware.RequireAdmin(h.app))
	{
		settings.GET("", h.Get)
		settings.PUT("", h.Save)
	}

	admin := router.Group("/admin", middleware.RequireAdmin(h.app))
	{
		admin.GET("/users", h.Users)
		admin.GET("/gallery", h.Gallery)
	}
}

// Contact exposes only the customer-facing subset of the settings.
// API keys and the Telegram credentials never leave the admin surface.
func (h *SettingsHandler) Contact(c *gin.Context) {
	settings := h.app.AdminSettings(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{
		"contactAddress":   settings.ContactAddress,
		"contactPhone":     settings.ContactPhone,
		"contactInstagram": settings.ContactInstagram,
		"siteUrl":          settings.SiteURL,
	})
}

func (h *SettingsHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, h.app.AdminSettings(c.Request.Context()))
}

func (h *SettingsHandler) Save(c *gin.Context) {
	var settings models.AdminSettings
	if err := c.ShouldBindJSON(&settings); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	h.app.SaveAdminSettings(c.Request.Context(), settings)
	c.JSON(http.StatusOK, settings)
}

func (h *SettingsHandler) Users(c *gin.Context) {
	c.JSON(http.StatusOK, h.app.AllUsers(c.Request.Context()))
}

func (h *SettingsHandler) Gallery(c *gin.Context) {
	c.JSON(http.StatusOK, h.app.AllEnhancedImages(c.Request.Context()))
}
