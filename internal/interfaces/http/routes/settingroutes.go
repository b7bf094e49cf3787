package routes

import (
	"github.com/gin-gonic/gin"

	"helpdesk/internal/interfaces/http/handlers"
	"helpdesk/internal/interfaces/http/middleware"
)

// SettingRouteConfig holds dependencies for settings routes.
type SettingRouteConfig struct {
	SettingHandler *handlers.SettingHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupSettingRoutes configures the settings singleton routes. The
// usecases restrict both operations to superusers.
func SetupSettingRoutes(engine *gin.Engine, cfg *SettingRouteConfig) {
	settings := engine.Group("/settings")
	settings.Use(cfg.AuthMiddleware.RequireAuth())
	{
		settings.GET("", cfg.SettingHandler.Get)
		settings.PUT("", cfg.SettingHandler.Update)
	}
}
