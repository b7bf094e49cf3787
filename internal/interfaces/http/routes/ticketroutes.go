package routes

import (
	"github.com/gin-gonic/gin"

	"helpdesk/internal/interfaces/http/handlers"
	"helpdesk/internal/interfaces/http/middleware"
)

// TicketRouteConfig holds dependencies for ticket routes.
type TicketRouteConfig struct {
	TicketHandler  *handlers.TicketHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupTicketRoutes configures ticket and comment routes. Authorization
// decisions live in the usecases, which know about ownership and
// membership; the routes only require an authenticated user.
func SetupTicketRoutes(engine *gin.Engine, cfg *TicketRouteConfig) {
	tickets := engine.Group("/tickets")
	tickets.Use(cfg.AuthMiddleware.RequireAuth())
	{
		tickets.POST("", cfg.TicketHandler.Create)
		tickets.GET("", cfg.TicketHandler.List)

		// Specific paths before the parameterized one.
		tickets.PATCH("/comments/:id", cfg.TicketHandler.EditComment)

		tickets.GET("/:id", cfg.TicketHandler.Get)
		tickets.PATCH("/:id/info", cfg.TicketHandler.UpdateInfo)
		tickets.PUT("/:id/description", cfg.TicketHandler.UpdateDescription)
		tickets.PATCH("/:id/status", cfg.TicketHandler.ChangeStatus)
		tickets.POST("/:id/hide", cfg.TicketHandler.Hide)
		tickets.POST("/:id/unhide", cfg.TicketHandler.Unhide)
		tickets.DELETE("/:id", cfg.TicketHandler.Delete)

		tickets.POST("/:id/participants", cfg.TicketHandler.AddParticipant)
		tickets.POST("/:id/moderators", cfg.TicketHandler.AddModerator)
		tickets.POST("/:id/comments", cfg.TicketHandler.AddComment)
	}
}
