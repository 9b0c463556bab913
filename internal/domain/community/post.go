package community

import (
	"strings"

	"github.com/Mutombwa/kimberly-signature-scents/internal/domain/shared"
)

// Maximum title length accepted for a post
const MaxTitleLength = 200

// Post is community content owned by exactly one user. Only the owner
// may edit or delete it; any authenticated user may comment or like.
// The like and comment counters are denormalized and always recomputed
// from the underlying rows, never incremented blindly.
type Post struct {
	shared.BaseEntity
	UserID        int64
	Title         string
	Content       string
	Category      string
	LikesCount    int64
	CommentsCount int64
	IsPinned      bool

	// Joined author fields, populated on reads
	AuthorName  string
	AuthorImage string
	AuthorBio   string
	Comments    []*Comment
}

// NewPost creates a post owned by the given user
func NewPost(userID int64, title, content, category string) (*Post, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Title is required")
	}
	if len(title) > MaxTitleLength {
		return nil, shared.NewValidationError("Title cannot exceed %d characters", MaxTitleLength)
	}

	content = strings.TrimSpace(content)
	if content == "" {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Content is required")
	}

	if strings.TrimSpace(category) == "" {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Category is required")
	}

	return &Post{
		BaseEntity: shared.NewBaseEntity(),
		UserID:     userID,
		Title:      title,
		Content:    content,
		Category:   category,
	}, nil
}

// Edit validates and applies new title/content/category
func (p *Post) Edit(title, content, category string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return shared.NewDomainError("VALIDATION_ERROR", "Title is required")
	}
	if len(title) > MaxTitleLength {
		return shared.NewValidationError("Title cannot exceed %d characters", MaxTitleLength)
	}

	content = strings.TrimSpace(content)
	if content == "" {
		return shared.NewDomainError("VALIDATION_ERROR", "Content is required")
	}

	if strings.TrimSpace(category) == "" {
		return shared.NewDomainError("VALIDATION_ERROR", "Category is required")
	}

	p.Title = title
	p.Content = content
	p.Category = category
	p.Touch()

	return nil
}

// IsOwnedBy reports whether the post belongs to the given user
func (p *Post) IsOwnedBy(userID int64) bool {
	return p.UserID == userID
}
