package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fitfood-app/backend/internal/service"
)

// AuthHandler serves customer and admin session endpoints.
type AuthHandler struct {
	app *service.App
}

func NewAuthHandler(app *service.App) *AuthHandler {
	return &AuthHandler{app: app}
}

func (h *AuthHandler) RegisterRoutes(router *gin.RouterGroup) {
	auth := router.Group("/auth")
	{
		auth.POST("/login", h.Login)
		auth.POST("/logout", h.Logout)
		auth.GET("/me", h.Me)
		auth.POST("/admin/login", h.AdminLogin)
		auth.POST("/admin/logout", h.AdminLogout)
	}
}

// Login signs in an existing customer or registers a new one on the spot.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	user, err := h.app.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	h.app.Logout(c.Request.Context())
	c.Status(http.StatusNoContent)
}

// Me returns the current session view: user, admin flag and cart.
func (h *AuthHandler) Me(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"user":    h.app.CurrentUser(),
		"isAdmin": h.app.IsAdmin(),
		"cart":    h.app.Cart(),
	})
}

func (h *AuthHandler) AdminLogin(c *gin.Context) {
	var req AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if !h.app.AdminLogin(c.Request.Context(), req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid admin password"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"isAdmin": true})
}

func (h *AuthHandler) AdminLogout(c *gin.Context) {
	h.app.AdminLogout(c.Request.Context())
	c.Status(http.StatusNoContent)
}
