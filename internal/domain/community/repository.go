package community

import "context"

// PostFilter holds paging options for post listings
type PostFilter struct {
	Page  int
	Limit int
}

// Offset returns the row offset for the filter
func (f PostFilter) Offset() int {
	page := f.Page
	if page < 1 {
		page = 1
	}
	return (page - 1) * f.PageSize()
}

// PageSize returns the effective page size
func (f PostFilter) PageSize() int {
	if f.Limit < 1 {
		return 20
	}
	return f.Limit
}

// ToggleResult reports the outcome of a like toggle
type ToggleResult struct {
	Liked      bool
	LikesCount int64
}

// PostRepository defines persistence operations for posts, comments and likes.
//
// UpdateOwned and DeleteOwned match on both post ID and owner ID so that
// "missing" and "not yours" are indistinguishable to callers; both return
// shared.ErrNotFound when zero rows are affected.
type PostRepository interface {
	Create(ctx context.Context, post *Post) error
	FindByID(ctx context.Context, id int64) (*Post, error)
	FindAll(ctx context.Context, filter PostFilter) ([]*Post, error)
	FindByCategory(ctx context.Context, category string) ([]*Post, error)
	UpdateOwned(ctx context.Context, post *Post, ownerID int64) error
	DeleteOwned(ctx context.Context, id, ownerID int64) error

	AddComment(ctx context.Context, comment *Comment) error
	FindCommentsByPostID(ctx context.Context, postID int64) ([]*Comment, error)
	DeleteOwnedComment(ctx context.Context, id, authorID int64) error

	// ToggleLike flips like membership for (postID, userID) and recomputes
	// the post's stored like count inside the same transaction.
	ToggleLike(ctx context.Context, postID, userID int64) (*ToggleResult, error)
}

// CategoryRepository defines persistence operations for post categories
type CategoryRepository interface {
	FindAll(ctx context.Context) ([]Category, error)
	Seed(ctx context.Context, categories []Category) error
}
