package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/fitfood-app/backend/internal/api"
	"github.com/fitfood-app/backend/internal/middleware"
	"github.com/fitfood-app/backend/internal/service"
)

// Setup configures the application routes. aiLimiter is optional; when
// present it throttles the AI endpoints only.
func Setup(
	app *service.App,
	planner *service.PlannerService,
	photoLab *service.PhotoLabService,
	aiLimiter *middleware.RateLimiter,
) *gin.Engine {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := api.RegisterValidations(v); err != nil {
			panic("failed to register validations: " + err.Error())
		}
	}

	router := gin.Default()
	router.Use(middleware.CORS())
	router.Use(middleware.RequestID())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	api.NewAuthHandler(app).RegisterRoutes(v1)
	api.NewProfileHandler(app).RegisterRoutes(v1)
	api.NewCartHandler(app).RegisterRoutes(v1)
	api.NewMenuHandler(app).RegisterRoutes(v1)
	api.NewOrderHandler(app).RegisterRoutes(v1)
	api.NewSettingsHandler(app).RegisterRoutes(v1)

	var aiGuards []gin.HandlerFunc
	if aiLimiter != nil {
		aiGuards = append(aiGuards, aiLimiter.Middleware())
	}
	api.NewPlannerHandler(app, planner).RegisterRoutes(v1, aiGuards...)
	api.NewPhotoLabHandler(app, photoLab).RegisterRoutes(v1, aiGuards...)

	return router
}
