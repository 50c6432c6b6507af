package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"convo-backend/config"
	"convo-backend/controller"
	"convo-backend/dao"
	"convo-backend/logic"
	"convo-backend/middleware"
	"convo-backend/models"
)

type testEnv struct {
	router     *gin.Engine
	db         *gorm.DB
	admin      *models.User
	user       *models.User
	adminToken string
	userToken  string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Conversation{}, &models.Message{}))

	cfg := &config.Config{}
	cfg.JWT.Secret = "e2e-secret"
	cfg.JWT.ExpiryMinutes = 60

	admin := &models.User{Email: "admin@example.com", Name: "Admin", Password: "admin-pass", Role: config.RoleAdmin}
	require.NoError(t, admin.HashPassword())
	require.NoError(t, db.Create(admin).Error)

	user := &models.User{Email: "user@example.com", Name: "User", Password: "user-pass", Role: config.RoleUser}
	require.NoError(t, user.HashPassword())
	require.NoError(t, db.Create(user).Error)

	userDAO := dao.NewUserDAO(db)
	convoDAO := dao.NewConversationDAO(db)
	messageDAO := dao.NewMessageDAO(db)

	userLogic := logic.NewUserLogic(userDAO)
	convoLogic := logic.NewConversationLogic(userDAO, convoDAO)
	messageLogic := logic.NewMessageLogic(userDAO, convoDAO, messageDAO)

	roles := config.DefaultRoleCapabilities()
	router := NewRouter(cfg, roles, Controllers{
		Auth:         controller.NewAuthController(userLogic, cfg),
		User:         controller.NewUserController(userLogic),
		Conversation: controller.NewConversationController(convoLogic, messageLogic),
		Message:      controller.NewMessageController(messageLogic),
	})

	adminToken, err := middleware.GenerateToken(cfg.JWT.Secret, time.Hour, admin.ID, config.RoleAdmin)
	require.NoError(t, err)
	userToken, err := middleware.GenerateToken(cfg.JWT.Secret, time.Hour, user.ID, config.RoleUser)
	require.NoError(t, err)

	return &testEnv{
		router:     router,
		db:         db,
		admin:      admin,
		user:       user,
		adminToken: adminToken,
		userToken:  userToken,
	}
}

func (e *testEnv) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestLogin(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/v1/auth/login", "", gin.H{
		"email":    "admin@example.com",
		"password": "admin-pass",
	})
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.NotEmpty(t, body["token"])

	userInfo, ok := body["user"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "admin@example.com", userInfo["email"])
	assert.NotContains(t, userInfo, "password")

	w = env.do(t, http.MethodPost, "/v1/auth/login", "", gin.H{
		"email":    "admin@example.com",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestConversationLifecycle(t *testing.T) {
	env := newTestEnv(t)

	// Create a conversation for user 1.
	w := env.do(t, http.MethodPost, "/v1/conversations", env.adminToken, gin.H{"userId": env.admin.ID})
	require.Equal(t, http.StatusCreated, w.Code)
	created := decodeBody(t, w)
	convoID := int64(created["id"].(float64))
	assert.Equal(t, float64(env.admin.ID), created["userId"])
	assert.Contains(t, created, "createdAt")
	assert.Contains(t, created, "updatedAt")
	assert.Len(t, created, 4) // default projection, nothing more

	// Post a message into it.
	w = env.do(t, http.MethodPost, "/v1/messages", env.adminToken, gin.H{
		"conversationId": convoID,
		"userId":         env.admin.ID,
		"messageText":    "hi",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	msg := decodeBody(t, w)
	assert.Equal(t, "hi", msg["messageText"])

	// Messages are listed under the conversation, oldest first.
	w = env.do(t, http.MethodGet, fmt.Sprintf("/v1/conversations/%d/messages", convoID), env.userToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var messages []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &messages))
	require.Len(t, messages, 1)
	assert.Equal(t, "hi", messages[0]["messageText"])

	// Delete cascades and leaves nothing behind.
	w = env.do(t, http.MethodDelete, fmt.Sprintf("/v1/conversations/%d", convoID), env.adminToken, nil)
	require.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.Bytes())

	w = env.do(t, http.MethodGet, fmt.Sprintf("/v1/conversations/%d", convoID), env.adminToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "NOT_FOUND", decodeBody(t, w)["code"])

	var orphans int64
	require.NoError(t, env.db.Model(&models.Message{}).Where("conversation_id = ?", convoID).Count(&orphans).Error)
	assert.Zero(t, orphans)

	// Second delete is not a silent success.
	w = env.do(t, http.MethodDelete, fmt.Sprintf("/v1/conversations/%d", convoID), env.adminToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCapabilityEnforcement(t *testing.T) {
	env := newTestEnv(t)

	// USER lacks manageConversations.
	w := env.do(t, http.MethodPost, "/v1/conversations", env.userToken, gin.H{"userId": env.user.ID})
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "FORBIDDEN", decodeBody(t, w)["code"])

	// ADMIN holds it, same payload succeeds.
	w = env.do(t, http.MethodPost, "/v1/conversations", env.adminToken, gin.H{"userId": env.user.ID})
	assert.Equal(t, http.StatusCreated, w.Code)

	// No credential at all.
	w = env.do(t, http.MethodGet, "/v1/conversations", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSelfServiceException(t *testing.T) {
	env := newTestEnv(t)

	// USER lacks getUsers but may read their own record.
	w := env.do(t, http.MethodGet, fmt.Sprintf("/v1/users/%d", env.user.ID), env.userToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "user@example.com", decodeBody(t, w)["email"])

	// Another user's record stays forbidden.
	w = env.do(t, http.MethodGet, fmt.Sprintf("/v1/users/%d", env.admin.ID), env.userToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// The list endpoint has no self exception.
	w = env.do(t, http.MethodGet, "/v1/users", env.userToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// ADMIN reads anyone.
	w = env.do(t, http.MethodGet, fmt.Sprintf("/v1/users/%d", env.user.ID), env.adminToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestValidationFailures(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/v1/conversations", env.adminToken, gin.H{"userId": env.admin.ID})
	require.Equal(t, http.StatusCreated, w.Code)
	convoID := int64(decodeBody(t, w)["id"].(float64))

	t.Run("create without required fields", func(t *testing.T) {
		w := env.do(t, http.MethodPost, "/v1/messages", env.adminToken, gin.H{})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "VALIDATION_ERROR", decodeBody(t, w)["code"])
	})

	t.Run("empty update bodies", func(t *testing.T) {
		w := env.do(t, http.MethodPatch, fmt.Sprintf("/v1/conversations/%d", convoID), env.adminToken, gin.H{})
		assert.Equal(t, http.StatusBadRequest, w.Code)

		wMsg := env.do(t, http.MethodPost, "/v1/messages", env.adminToken, gin.H{
			"conversationId": convoID, "userId": env.admin.ID, "messageText": "x",
		})
		require.Equal(t, http.StatusCreated, wMsg.Code)
		msgID := int64(decodeBody(t, wMsg)["id"].(float64))

		w = env.do(t, http.MethodPatch, fmt.Sprintf("/v1/messages/%d", msgID), env.adminToken, gin.H{})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("non-integer id parameter", func(t *testing.T) {
		w := env.do(t, http.MethodGet, "/v1/conversations/abc", env.adminToken, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("missing referenced parent is 400 not 404", func(t *testing.T) {
		w := env.do(t, http.MethodPost, "/v1/messages", env.adminToken, gin.H{
			"conversationId": 99999, "userId": env.admin.ID, "messageText": "x",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "REFERENCE_NOT_FOUND", decodeBody(t, w)["code"])
	})

	t.Run("bad sort field", func(t *testing.T) {
		w := env.do(t, http.MethodGet, "/v1/messages?sortBy=password", env.adminToken, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestSanitizerScrubsBody(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/v1/conversations", env.adminToken, gin.H{"userId": env.admin.ID})
	require.Equal(t, http.StatusCreated, w.Code)
	convoID := int64(decodeBody(t, w)["id"].(float64))

	w = env.do(t, http.MethodPost, "/v1/messages", env.adminToken, gin.H{
		"conversationId": convoID,
		"userId":         env.admin.ID,
		"messageText":    "<script>alert(1)</script>hello",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	stored, _ := decodeBody(t, w)["messageText"].(string)
	assert.NotContains(t, stored, "<script>")
	assert.Contains(t, stored, "hello")
}
