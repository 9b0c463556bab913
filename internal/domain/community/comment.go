package community

import (
	"strings"
	"time"

	"github.com/Mutombwa/kimberly-signature-scents/internal/domain/shared"
)

// Comment belongs to one post and one user. Comments are append-only
// and deletable only by their author.
type Comment struct {
	ID        int64
	PostID    int64
	UserID    int64
	Content   string
	CreatedAt time.Time

	// Joined author fields, populated on reads
	AuthorName  string
	AuthorImage string
}

// NewComment creates a comment on the given post
func NewComment(postID, userID int64, content string) (*Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Comment content is required")
	}

	return &Comment{
		PostID:    postID,
		UserID:    userID,
		Content:   content,
		CreatedAt: time.Now(),
	}, nil
}
