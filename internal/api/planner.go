package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fitfood-app/backend/internal/models"
	"github.com/fitfood-app/backend/internal/service"
)

// PlannerHandler serves the diet and exercise plan generator.
type PlannerHandler struct {
	app     *service.App
	planner *service.PlannerService
}

func NewPlannerHandler(app *service.App, planner *service.PlannerService) *PlannerHandler {
	return &PlannerHandler{app: app, planner: planner}
}

func (h *PlannerHandler) RegisterRoutes(router *gin.RouterGroup, extra ...gin.HandlerFunc) {
	handlers := append(extra, h.Generate)
	router.POST("/planner/generate", handlers...)
}

func (h *PlannerHandler) Generate(c *gin.Context) {
	var req PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	settings := h.app.AdminSettings(c.Request.Context())
	plan, err := h.planner.GeneratePlan(c.Request.Context(), models.UserInfo{
		Age:                 req.Age,
		Gender:              req.Gender,
		Weight:              req.Weight,
		Height:              req.Height,
		ActivityLevel:       req.ActivityLevel,
		Goal:                req.Goal,
		DietaryRestrictions: req.DietaryRestrictions,
		VulnerableBodyParts: req.VulnerableBodyParts,
	}, settings.PlannerAPIKey, settings.PlannerPrompt)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrConfigurationMissing):
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "planner is not configured"})
		case errors.Is(err, service.ErrSchemaMismatch):
			c.JSON(http.StatusBadGateway, gin.H{"error": "planner returned an unusable response"})
		default:
			c.JSON(http.StatusBadGateway, gin.H{"error": "plan generation failed"})
		}
		return
	}

	c.JSON(http.StatusOK, plan)
}
