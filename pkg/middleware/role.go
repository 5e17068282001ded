package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fitcore/pkg/authz"
	"fitcore/pkg/utils"
)

// RequireCapability gates a route on the permission table. The caller's role
// must be in the capability's allow-list; there is no hierarchy between roles.
func RequireCapability(cap authz.Capability) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(CtxRole)
		if !authz.Allowed(cap, authz.Role(role)) {
			utils.RespondError(c, http.StatusForbidden, "Forbidden: insufficient permissions")
			c.Abort()
			return
		}
		c.Next()
	}
}
