package routes

import (
	"github.com/gin-gonic/gin"

	"helpdesk/internal/interfaces/http/handlers"
	"helpdesk/internal/interfaces/http/middleware"
	"helpdesk/internal/shared/constants"
)

// UserRouteConfig holds dependencies for user routes.
type UserRouteConfig struct {
	UserHandler          *handlers.UserHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

// SetupUserRoutes configures user management routes.
func SetupUserRoutes(engine *gin.Engine, cfg *UserRouteConfig) {
	users := engine.Group("/users")
	users.Use(cfg.AuthMiddleware.RequireAuth())
	{
		// Specific paths before the parameterized one.
		users.GET("/me", cfg.UserHandler.Me)
		users.GET("/search", cfg.UserHandler.Search)

		users.GET("", cfg.PermissionMiddleware.RequirePermission(constants.ResourceUser, constants.ActionView), cfg.UserHandler.List)
		users.POST("", cfg.UserHandler.Create)
		users.GET("/:id", cfg.UserHandler.Get)
		users.PATCH("/:id", cfg.UserHandler.Update)
		users.DELETE("/:id", cfg.UserHandler.Delete)
	}
}
