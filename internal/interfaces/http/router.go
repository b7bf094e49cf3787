package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/interfaces/http/middleware"
	"helpdesk/internal/interfaces/http/routes"
	appErrors "helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/utils"
)

// buildEngine assembles the Gin engine: global middleware, terminal
// handlers for unmatched routes, and every route group.
func (c *Container) buildEngine() *gin.Engine {
	engine := gin.New()
	engine.HandleMethodNotAllowed = true

	engine.Use(middleware.Recovery())
	engine.Use(middleware.CustomLogger(c.log))
	engine.Use(middleware.CORS(c.cfg.Server.AllowedOrigins))
	engine.Use(middleware.SecurityHeaders())

	engine.NoMethod(func(ctx *gin.Context) {
		utils.ErrorResponseWithError(ctx, appErrors.NewMethodNotAllowedError("method not allowed"))
	})
	engine.NoRoute(func(ctx *gin.Context) {
		utils.ErrorResponse(ctx, http.StatusNotFound, "route not found")
	})

	engine.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.SetupAuthRoutes(engine, &routes.AuthRouteConfig{
		AuthHandler:    c.authHandler,
		AuthMiddleware: c.authMiddleware,
		LoginRateLimit: c.loginRateLimit,
	})
	routes.SetupUserRoutes(engine, &routes.UserRouteConfig{
		UserHandler:          c.userHandler,
		AuthMiddleware:       c.authMiddleware,
		PermissionMiddleware: c.permissionMiddleware,
	})
	routes.SetupGroupRoutes(engine, &routes.GroupRouteConfig{
		GroupHandler:         c.groupHandler,
		AuthMiddleware:       c.authMiddleware,
		PermissionMiddleware: c.permissionMiddleware,
	})
	routes.SetupCategoryRoutes(engine, &routes.CategoryRouteConfig{
		CategoryHandler:      c.categoryHandler,
		AuthMiddleware:       c.authMiddleware,
		PermissionMiddleware: c.permissionMiddleware,
	})
	routes.SetupTicketRoutes(engine, &routes.TicketRouteConfig{
		TicketHandler:  c.ticketHandler,
		AuthMiddleware: c.authMiddleware,
	})
	routes.SetupAttachmentRoutes(engine, &routes.AttachmentRouteConfig{
		AttachmentHandler: c.attachmentHandler,
		AuthMiddleware:    c.authMiddleware,
	})
	routes.SetupSettingRoutes(engine, &routes.SettingRouteConfig{
		SettingHandler: c.settingHandler,
		AuthMiddleware: c.authMiddleware,
	})

	return engine
}
