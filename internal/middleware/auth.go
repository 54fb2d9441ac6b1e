package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fitfood-app/backend/internal/service"
)

// RequireUser rejects requests while nobody is logged in.
func RequireUser(app *service.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		if app.CurrentUser() == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "login required"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAdmin rejects requests while no admin session is active.
func RequireAdmin(app *service.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !app.IsAdmin() {
			c.JSON(http.StatusForbidden, gin.H{"error": "admin access required"})
			c.Abort()
			return
		}
		c.Next()
	}
}
