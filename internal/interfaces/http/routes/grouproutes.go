package routes

import (
	"github.com/gin-gonic/gin"

	"helpdesk/internal/interfaces/http/handlers"
	"helpdesk/internal/interfaces/http/middleware"
	"helpdesk/internal/shared/constants"
)

// GroupRouteConfig holds dependencies for group routes.
type GroupRouteConfig struct {
	GroupHandler         *handlers.GroupHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

// SetupGroupRoutes configures group and permission administration
// routes. The group usecases carry no actor, so access is enforced
// entirely by the permission middleware.
func SetupGroupRoutes(engine *gin.Engine, cfg *GroupRouteConfig) {
	groups := engine.Group("/groups")
	groups.Use(cfg.AuthMiddleware.RequireAuth())
	{
		groups.GET("", cfg.PermissionMiddleware.RequirePermission(constants.ResourceGroup, constants.ActionView), cfg.GroupHandler.List)
		groups.POST("", cfg.PermissionMiddleware.RequirePermission(constants.ResourceGroup, constants.ActionCreate), cfg.GroupHandler.Create)
		groups.GET("/:id", cfg.PermissionMiddleware.RequirePermission(constants.ResourceGroup, constants.ActionView), cfg.GroupHandler.Get)
		groups.PATCH("/:id", cfg.PermissionMiddleware.RequirePermission(constants.ResourceGroup, constants.ActionUpdate), cfg.GroupHandler.Update)
		groups.DELETE("/:id", cfg.PermissionMiddleware.RequirePermission(constants.ResourceGroup, constants.ActionDelete), cfg.GroupHandler.Delete)
	}

	permissions := engine.Group("/permissions")
	permissions.Use(cfg.AuthMiddleware.RequireAuth())
	{
		permissions.GET("", cfg.PermissionMiddleware.RequirePermission(constants.ResourceGroup, constants.ActionView), cfg.GroupHandler.ListPermissions)
	}
}
