package community

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPost(t *testing.T) {
	t.Run("creates post with trimmed fields", func(t *testing.T) {
		post, err := NewPost(7, "  My first sale  ", "  it went well  ", "Success Stories")
		require.NoError(t, err)

		assert.Equal(t, int64(7), post.UserID)
		assert.Equal(t, "My first sale", post.Title)
		assert.Equal(t, "it went well", post.Content)
		assert.Equal(t, "Success Stories", post.Category)
		assert.Zero(t, post.LikesCount)
		assert.Zero(t, post.CommentsCount)
		assert.False(t, post.IsPinned)
	})

	t.Run("requires title content and category", func(t *testing.T) {
		_, err := NewPost(7, "", "content", "General Discussion")
		require.Error(t, err)

		_, err = NewPost(7, "title", "  ", "General Discussion")
		require.Error(t, err)

		_, err = NewPost(7, "title", "content", "")
		require.Error(t, err)
	})

	t.Run("caps title length", func(t *testing.T) {
		_, err := NewPost(7, strings.Repeat("x", MaxTitleLength+1), "content", "General Discussion")
		require.Error(t, err)
		assert.Equal(t, "Title cannot exceed 200 characters", err.Error())

		_, err = NewPost(7, strings.Repeat("x", MaxTitleLength), "content", "General Discussion")
		require.NoError(t, err)
	})
}

func TestPostEdit(t *testing.T) {
	post, err := NewPost(7, "title", "content", "Questions")
	require.NoError(t, err)

	require.NoError(t, post.Edit("new title", "new content", "Product Reviews"))
	assert.Equal(t, "new title", post.Title)
	assert.Equal(t, "Product Reviews", post.Category)

	require.Error(t, post.Edit("", "new content", "Product Reviews"))
}

func TestPostOwnership(t *testing.T) {
	post, err := NewPost(7, "title", "content", "Questions")
	require.NoError(t, err)

	assert.True(t, post.IsOwnedBy(7))
	assert.False(t, post.IsOwnedBy(8))
}

func TestNewComment(t *testing.T) {
	comment, err := NewComment(3, 7, "  nice post  ")
	require.NoError(t, err)
	assert.Equal(t, int64(3), comment.PostID)
	assert.Equal(t, int64(7), comment.UserID)
	assert.Equal(t, "nice post", comment.Content)
	assert.False(t, comment.CreatedAt.IsZero())

	_, err = NewComment(3, 7, "   ")
	require.Error(t, err)
	assert.Equal(t, "Comment content is required", err.Error())
}

func TestDefaultCategories(t *testing.T) {
	categories := DefaultCategories()
	require.Len(t, categories, 6)

	names := make(map[string]bool, len(categories))
	for _, c := range categories {
		names[c.Name] = true
		assert.NotEmpty(t, c.Icon)
	}
	assert.True(t, names["Success Stories"])
	assert.True(t, names["General Discussion"])
}

func TestPostFilter(t *testing.T) {
	assert.Equal(t, 20, PostFilter{}.PageSize())
	assert.Equal(t, 0, PostFilter{}.Offset())
	assert.Equal(t, 10, PostFilter{Page: 3, Limit: 5}.Offset())
	assert.Equal(t, 0, PostFilter{Page: -1, Limit: 5}.Offset())
}
