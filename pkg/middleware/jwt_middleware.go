package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"fitcore/pkg/authz"
	"fitcore/pkg/utils"
)

// Identity is the resolved caller attached to the request context.
type Identity struct {
	ID    uuid.UUID
	Role  authz.Role
	Name  string
	Email string
}

// IdentityResolver loads the account behind a verified token. Returning
// (nil, nil) means the account no longer exists; the request is rejected
// with 401 even though the token itself still verifies.
type IdentityResolver interface {
	Resolve(ctx context.Context, userID string) (*Identity, error)
}

const (
	CtxUserID   = "user_id"
	CtxRole     = "role"
	CtxIdentity = "identity"
)

func JWTAuthMiddleware(resolver IdentityResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondError(c, http.StatusUnauthorized, "Authorization header missing or invalid")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := utils.ValidateToken(tokenString)
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		identity, err := resolver.Resolve(c.Request.Context(), claims.UserID)
		if err != nil {
			utils.RespondError(c, http.StatusInternalServerError, "Internal server error")
			c.Abort()
			return
		}
		if identity == nil {
			utils.RespondError(c, http.StatusUnauthorized, "Account no longer exists")
			c.Abort()
			return
		}

		c.Set(CtxUserID, identity.ID.String())
		c.Set(CtxRole, string(identity.Role))
		c.Set(CtxIdentity, identity)
		c.Next()
	}
}

// IdentityFrom returns the resolved caller, or nil outside the auth chain.
func IdentityFrom(c *gin.Context) *Identity {
	if v, ok := c.Get(CtxIdentity); ok {
		if id, ok := v.(*Identity); ok {
			return id
		}
	}
	return nil
}
