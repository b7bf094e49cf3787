package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/infrastructure/ratelimit"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

// RateLimit enforces the given limits per client IP, keyed by name so
// different endpoint groups track independent counters.
func RateLimit(limiter ratelimit.RateLimiter, log logger.Interface, name string, config ratelimit.RateLimitConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("%s:%s", name, c.ClientIP())

		allowed, err := limiter.Allow(key, config)
		if err != nil {
			// If Redis is unavailable, allow the request to avoid blocking all traffic
			log.Warnw("rate limiter unavailable", "key", key, "error", err)
			c.Next()
			return
		}

		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "rate limit exceeded, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
