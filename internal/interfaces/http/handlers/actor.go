package handlers

import (
	"github.com/gin-gonic/gin"

	"helpdesk/internal/application/authz"
	"helpdesk/internal/shared/constants"
)

// currentActor rebuilds the authorization actor from the context keys
// the auth middleware set. The second return is false when the request
// carries no authenticated user.
func currentActor(c *gin.Context) (authz.Actor, bool) {
	userID, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return authz.Actor{}, false
	}

	actor := authz.Actor{ID: userID.(uint)}
	if superuser, ok := c.Get(constants.ContextKeySuperuser); ok {
		actor.Superuser, _ = superuser.(bool)
	}
	return actor, true
}
