package middleware

import (
	"strings"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"

	"convo-backend/config"
	"convo-backend/pkg/apperrors"
)

const identityKey = "identity"

// Identity is the resolved caller attached to the request context after
// authentication.
type Identity struct {
	UserID int64
	Role   config.Role
}

// GenerateToken issues a signed bearer token for the user.
func GenerateToken(secret string, expiry time.Duration, userID int64, role config.Role) (string, error) {
	claims := jwt.MapClaims{
		"sub":  userID,
		"role": string(role),
		"exp":  time.Now().Add(expiry).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Auth verifies the bearer credential in the Authorization header and
// attaches the resolved identity to the request context. Verification
// depends only on the signing key and the token's own expiry claim.
func Auth(secret string, roles config.RoleCapabilities) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			abortWithError(c, apperrors.Unauthenticated("missing authorization header"))
			return
		}
		tokenStr, ok := strings.CutPrefix(header, "Bearer ")
		if !ok {
			abortWithError(c, apperrors.Unauthenticated("authorization header must be a bearer token"))
			return
		}

		token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			abortWithError(c, apperrors.Unauthenticated("invalid or expired token"))
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			abortWithError(c, apperrors.Unauthenticated("invalid token claims"))
			return
		}
		sub, ok := claims["sub"].(float64)
		if !ok {
			abortWithError(c, apperrors.Unauthenticated("token has no subject"))
			return
		}
		roleStr, _ := claims["role"].(string)
		role := config.Role(roleStr)
		if !roles.ValidRole(role) {
			abortWithError(c, apperrors.Unauthenticated("token has an unknown role"))
			return
		}

		c.Set(identityKey, Identity{UserID: int64(sub), Role: role})
		c.Next()
	}
}

// IdentityFrom extracts the authenticated identity from the context.
func IdentityFrom(c *gin.Context) (Identity, bool) {
	v, exists := c.Get(identityKey)
	if !exists {
		return Identity{}, false
	}
	id, ok := v.(Identity)
	return id, ok
}

func abortWithError(c *gin.Context, err error) {
	app := apperrors.From(err)
	c.AbortWithStatusJSON(apperrors.HTTPStatus(app.Code), app)
}
