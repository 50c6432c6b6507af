package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"convo-backend/config"
)

func authorizeTestRouter(identity *Identity, capability config.Capability, opts ...AuthorizeOption) *gin.Engine {
	gin.SetMode(gin.TestMode)
	roles := config.DefaultRoleCapabilities()

	r := gin.New()
	r.GET("/things/:userId", func(c *gin.Context) {
		if identity != nil {
			c.Set(identityKey, *identity)
		}
		c.Next()
	}, Authorize(roles, capability, opts...), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func TestAuthorize(t *testing.T) {
	t.Run("admin holds manage capability", func(t *testing.T) {
		r := authorizeTestRouter(&Identity{UserID: 1, Role: config.RoleAdmin}, config.CapManageConversations)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/things/9", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("user lacks manage capability", func(t *testing.T) {
		r := authorizeTestRouter(&Identity{UserID: 1, Role: config.RoleUser}, config.CapManageConversations)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/things/9", nil))
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "FORBIDDEN")
	})

	t.Run("user holds read capability", func(t *testing.T) {
		r := authorizeTestRouter(&Identity{UserID: 1, Role: config.RoleUser}, config.CapGetMessages)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/things/9", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("self param bypasses missing capability", func(t *testing.T) {
		r := authorizeTestRouter(&Identity{UserID: 9, Role: config.RoleUser}, config.CapGetUsers, AllowSelfParam("userId"))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/things/9", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("self param does not cover other users", func(t *testing.T) {
		r := authorizeTestRouter(&Identity{UserID: 9, Role: config.RoleUser}, config.CapGetUsers, AllowSelfParam("userId"))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/things/10", nil))
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("unauthenticated request is rejected", func(t *testing.T) {
		r := authorizeTestRouter(nil, config.CapGetMessages)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/things/9", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
