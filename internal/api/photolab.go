package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fitfood-app/backend/internal/middleware"
	"github.com/fitfood-app/backend/internal/service"
)

// PhotoLabHandler serves the photo reimagining flow. Usage is capped per
// user per day; the quota is consumed before the AI call and not
// refunded on failure.
type PhotoLabHandler struct {
	app *service.App
	lab *service.PhotoLabService
}

func NewPhotoLabHandler(app *service.App, lab *service.PhotoLabService) *PhotoLabHandler {
	return &PhotoLabHandler{app: app, lab: lab}
}

func (h *PhotoLabHandler) RegisterRoutes(router *gin.RouterGroup, extra ...gin.HandlerFunc) {
	handlers := append([]gin.HandlerFunc{middleware.RequireUser(h.app)}, extra...)
	router.POST("/photolab/enhance", append(handlers, h.Enhance)...)
}

func (h *PhotoLabHandler) Enhance(c *gin.Context) {
	var req EnhanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	ctx := c.Request.Context()
	if !h.app.CheckAndIncrementEnhancementUsage(ctx) {
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "daily enhancement limit reached"})
		return
	}

	settings := h.app.AdminSettings(ctx)
	enhanced, err := h.lab.EnhancePhoto(ctx, req.Image, settings.PhotoLabAPIKey, settings.PhotoLabPrompt)
	if err != nil {
		if errors.Is(err, service.ErrConfigurationMissing) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "photo lab is not configured"})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "photo enhancement failed"})
		return
	}

	record := h.app.SaveEnhancedImage(ctx, req.Image, enhanced)
	c.JSON(http.StatusOK, record)
}
