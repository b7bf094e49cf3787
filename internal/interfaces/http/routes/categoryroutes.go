package routes

import (
	"github.com/gin-gonic/gin"

	"helpdesk/internal/interfaces/http/handlers"
	"helpdesk/internal/interfaces/http/middleware"
	"helpdesk/internal/shared/constants"
)

// CategoryRouteConfig holds dependencies for category routes.
type CategoryRouteConfig struct {
	CategoryHandler      *handlers.CategoryHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

// SetupCategoryRoutes configures category routes. Reads are open to any
// authenticated user since the ticket form needs the list; writes
// require category permissions.
func SetupCategoryRoutes(engine *gin.Engine, cfg *CategoryRouteConfig) {
	categories := engine.Group("/categories")
	categories.Use(cfg.AuthMiddleware.RequireAuth())
	{
		categories.GET("", cfg.CategoryHandler.List)
		categories.GET("/:id", cfg.CategoryHandler.Get)

		categories.POST("", cfg.PermissionMiddleware.RequirePermission(constants.ResourceCategory, constants.ActionCreate), cfg.CategoryHandler.Create)
		categories.PATCH("/:id", cfg.PermissionMiddleware.RequirePermission(constants.ResourceCategory, constants.ActionUpdate), cfg.CategoryHandler.Update)
		categories.DELETE("/:id", cfg.PermissionMiddleware.RequirePermission(constants.ResourceCategory, constants.ActionDelete), cfg.CategoryHandler.Delete)
	}
}
