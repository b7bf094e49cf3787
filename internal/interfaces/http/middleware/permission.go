package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/application/authz"
	"helpdesk/internal/shared/constants"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

type PermissionMiddleware struct {
	evaluator *authz.Evaluator
	logger    logger.Interface
}

func NewPermissionMiddleware(evaluator *authz.Evaluator, logger logger.Interface) *PermissionMiddleware {
	return &PermissionMiddleware{
		evaluator: evaluator,
		logger:    logger,
	}
}

func (m *PermissionMiddleware) RequirePermission(resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get(constants.ContextKeyUserID)
		if !exists {
			utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
			c.Abort()
			return
		}

		actor := authz.Actor{ID: userID.(uint)}
		if superuser, ok := c.Get(constants.ContextKeySuperuser); ok {
			actor.Superuser, _ = superuser.(bool)
		}

		if !m.evaluator.HasPermission(actor, resource, action) {
			m.logger.Warnw("permission denied", "user_id", actor.ID, "resource", resource, "action", action)
			utils.ErrorResponse(c, http.StatusForbidden, "insufficient permissions")
			c.Abort()
			return
		}

		c.Next()
	}
}
