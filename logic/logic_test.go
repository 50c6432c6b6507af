package logic

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"convo-backend/config"
	"convo-backend/models"
)

var userSeq atomic.Int64

type testFixture struct {
	db   *gorm.DB
	user *models.User
}

// newTestDB opens an in-memory sqlite database. The pool is capped at one
// connection because each :memory: connection is its own database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Conversation{}, &models.Message{}))
	return db
}

func mustUser(t *testing.T, db *gorm.DB, role config.Role) *models.User {
	t.Helper()

	user := &models.User{
		Email:    fmt.Sprintf("user%d@example.com", userSeq.Add(1)),
		Name:     "Test User",
		Password: "plaintext",
		Role:     role,
	}
	require.NoError(t, user.HashPassword())
	require.NoError(t, db.Create(user).Error)
	return user
}
