package routes

import (
	"github.com/gin-gonic/gin"

	"helpdesk/internal/interfaces/http/handlers"
	"helpdesk/internal/interfaces/http/middleware"
)

// AuthRouteConfig holds dependencies for authentication routes.
type AuthRouteConfig struct {
	AuthHandler    *handlers.AuthHandler
	AuthMiddleware *middleware.AuthMiddleware

	// LoginRateLimit guards the credential and reset endpoints; nil
	// disables rate limiting (tests, local development without Redis).
	LoginRateLimit gin.HandlerFunc
}

// SetupAuthRoutes configures authentication routes.
func SetupAuthRoutes(engine *gin.Engine, cfg *AuthRouteConfig) {
	limited := func(handler gin.HandlerFunc) []gin.HandlerFunc {
		if cfg.LoginRateLimit == nil {
			return []gin.HandlerFunc{handler}
		}
		return []gin.HandlerFunc{cfg.LoginRateLimit, handler}
	}

	auth := engine.Group("/auth")
	{
		auth.POST("/register", limited(cfg.AuthHandler.Register)...)
		auth.POST("/login", limited(cfg.AuthHandler.Login)...)
		auth.POST("/logout", cfg.AuthHandler.Logout)
		auth.POST("/refresh", cfg.AuthHandler.Refresh)
		auth.POST("/activate", cfg.AuthHandler.Activate)
		auth.POST("/password-reset/request", limited(cfg.AuthHandler.RequestPasswordReset)...)
		auth.POST("/password-reset/confirm", cfg.AuthHandler.ConfirmPasswordReset)
	}
}
