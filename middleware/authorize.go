package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"convo-backend/config"
	"convo-backend/pkg/apperrors"
)

// AuthorizeOption adjusts how a route's capability requirement is checked.
type AuthorizeOption func(*authorizeOptions)

type authorizeOptions struct {
	selfParam string
}

// AllowSelfParam lets a caller through without the capability when the
// named path parameter equals the caller's own user id. This is the
// route-level half of the self-service exception; checks that depend on a
// resource's owner happen after the resource is loaded.
func AllowSelfParam(param string) AuthorizeOption {
	return func(o *authorizeOptions) { o.selfParam = param }
}

// Authorize checks the capability bound to the route against the caller's
// role. The injected capability map is the single source of truth; roles
// are never compared directly anywhere else.
func Authorize(roles config.RoleCapabilities, capability config.Capability, opts ...AuthorizeOption) gin.HandlerFunc {
	var o authorizeOptions
	for _, opt := range opts {
		opt(&o)
	}

	return func(c *gin.Context) {
		identity, ok := IdentityFrom(c)
		if !ok {
			abortWithError(c, apperrors.Unauthenticated("request is not authenticated"))
			return
		}

		if o.selfParam != "" {
			if target, err := strconv.ParseInt(c.Param(o.selfParam), 10, 64); err == nil && target == identity.UserID {
				c.Next()
				return
			}
		}

		if !roles.Allows(identity.Role, capability) {
			abortWithError(c, apperrors.Forbidden("insufficient permissions"))
			return
		}
		c.Next()
	}
}
