package routes

import (
	"github.com/gin-gonic/gin"

	"helpdesk/internal/interfaces/http/handlers"
	"helpdesk/internal/interfaces/http/middleware"
)

// AttachmentRouteConfig holds dependencies for attachment routes.
type AttachmentRouteConfig struct {
	AttachmentHandler *handlers.AttachmentHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// SetupAttachmentRoutes configures attachment routes. The :name suffix
// variant serves the same bytes under a human-readable URL so saved
// files keep their original filename.
func SetupAttachmentRoutes(engine *gin.Engine, cfg *AttachmentRouteConfig) {
	attachments := engine.Group("/attachments")
	attachments.Use(cfg.AuthMiddleware.RequireAuth())
	{
		attachments.POST("", cfg.AttachmentHandler.Upload)
		attachments.GET("/:id", cfg.AttachmentHandler.Get)
		attachments.GET("/:id/:name", cfg.AttachmentHandler.Get)
		attachments.DELETE("/:id", cfg.AttachmentHandler.Delete)
	}
}
