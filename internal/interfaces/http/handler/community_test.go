package handler

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	appcommunity "github.com/Mutombwa/kimberly-signature-scents/internal/application/community"
	domaincommunity "github.com/Mutombwa/kimberly-signature-scents/internal/domain/community"
	domainidentity "github.com/Mutombwa/kimberly-signature-scents/internal/domain/identity"
	"github.com/Mutombwa/kimberly-signature-scents/internal/infrastructure/config"
	"github.com/Mutombwa/kimberly-signature-scents/internal/infrastructure/persistence"
	"github.com/Mutombwa/kimberly-signature-scents/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// newHandlerTestDatabase opens a fresh in-memory SQLite store on a
// single connection so every query sees the same database.
func newHandlerTestDatabase(t *testing.T) *persistence.Database {
	t.Helper()

	db, err := persistence.NewDatabase(&config.DatabaseConfig{
		Driver:          "sqlite",
		Path:            ":memory:",
		MaxOpenConns:    1,
		MaxIdleConns:    1,
		ConnMaxLifetime: 60,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, db.AutoMigrate())
	return db
}

func TestToggleLikeResponseKeys(t *testing.T) {
	db := newHandlerTestDatabase(t)
	ctx := context.Background()

	user, err := domainidentity.NewUser("Jane", "jane@example.com", "secret123")
	require.NoError(t, err)
	require.NoError(t, persistence.NewGormUserRepository(db.DB).Create(ctx, user))

	post, err := domaincommunity.NewPost(user.ID, "first post", "hello", "General Discussion")
	require.NoError(t, err)
	require.NoError(t, persistence.NewGormPostRepository(db.DB).Create(ctx, post))

	svc := appcommunity.NewCommunityService(
		persistence.NewGormPostRepository(db.DB),
		persistence.NewGormCategoryRepository(db.DB),
		zap.NewNop(),
	)
	h := NewCommunityHandler(svc)

	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.POST("/api/community/posts/:id/like", func(c *gin.Context) {
		c.Set(middleware.ContextUserID, user.ID)
	}, h.ToggleLike)

	path := fmt.Sprintf("/api/community/posts/%d/like", post.ID)

	w := performJSON(engine, http.MethodPost, path, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"liked":true`)
	assert.Contains(t, w.Body.String(), `"likesCount":1`)
	assert.Contains(t, w.Body.String(), "Post liked")

	w = performJSON(engine, http.MethodPost, path, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"liked":false`)
	assert.Contains(t, w.Body.String(), `"likesCount":0`)
	assert.Contains(t, w.Body.String(), "Post unliked")
}
