package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fitfood-app/backend/internal/middleware"
	"github.com/fitfood-app/backend/internal/models"
	"github.com/fitfood-app/backend/internal/service"
)

// ProfileHandler serves the current user's profile and address book.
type ProfileHandler struct {
	app *service.App
}

func NewProfileHandler(app *service.App) *ProfileHandler {
	return &ProfileHandler{app: app}
}

func (h *ProfileHandler) RegisterRoutes(router *gin.RouterGroup) {
	profile := router.Group("/profile", middleware.RequireUser(h.app))
	{
		profile.PUT("", h.Update)
		profile.POST("/addresses", h.AddAddress)
		profile.PUT("/addresses/:id", h.UpdateAddress)
		profile.DELETE("/addresses/:id", h.DeleteAddress)
	}
}

func (h *ProfileHandler) Update(c *gin.Context) {
	var req ProfileUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	h.app.UpdateUser(c.Request.Context(), service.UserUpdate{
		FullName: req.FullName,
		Phone:    req.Phone,
	})
	c.JSON(http.StatusOK, h.app.CurrentUser())
}

func (h *ProfileHandler) AddAddress(c *gin.Context) {
	var req AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	h.app.AddAddress(c.Request.Context(), req.Alias, req.FullAddress)
	c.JSON(http.StatusCreated, h.app.CurrentUser().Addresses)
}

func (h *ProfileHandler) UpdateAddress(c *gin.Context) {
	var req AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	h.app.UpdateAddress(c.Request.Context(), models.Address{
		ID:          c.Param("id"),
		Alias:       req.Alias,
		FullAddress: req.FullAddress,
	})
	c.JSON(http.StatusOK, h.app.CurrentUser().Addresses)
}

func (h *ProfileHandler) DeleteAddress(c *gin.Context) {
	h.app.DeleteAddress(c.Request.Context(), c.Param("id"))
	c.JSON(http.StatusOK, h.app.CurrentUser().Addresses)
}
