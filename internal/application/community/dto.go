package community

import (
	"time"

	"github.com/Mutombwa/kimberly-signature-scents/internal/domain/community"
)

// CreatePostCommand carries the fields of a new post request
type CreatePostCommand struct {
	Title    string
	Content  string
	Category string
}

// UpdatePostCommand carries the fields of a post edit request
type UpdatePostCommand struct {
	Title    string
	Content  string
	Category string
}

// PostDTO is the API view of a forum post
type PostDTO struct {
	ID            int64        `json:"id"`
	UserID        int64        `json:"user_id"`
	Title         string       `json:"title"`
	Content       string       `json:"content"`
	Category      string       `json:"category"`
	LikesCount    int64        `json:"likes_count"`
	CommentsCount int64        `json:"comments_count"`
	IsPinned      bool         `json:"is_pinned"`
	AuthorName    string       `json:"author_name"`
	AuthorImage   string       `json:"author_image,omitempty"`
	AuthorBio     string       `json:"author_bio,omitempty"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
	Comments      []CommentDTO `json:"comments,omitempty"`
}

// CommentDTO is the API view of a comment
type CommentDTO struct {
	ID          int64     `json:"id"`
	PostID      int64     `json:"post_id"`
	UserID      int64     `json:"user_id"`
	Content     string    `json:"content"`
	AuthorName  string    `json:"author_name"`
	AuthorImage string    `json:"author_image,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// LikeResultDTO reports the post-toggle like state
type LikeResultDTO struct {
	Liked      bool  `json:"liked"`
	LikesCount int64 `json:"likesCount"`
}

// ToPostDTO converts a domain Post to its DTO
func ToPostDTO(p *community.Post) PostDTO {
	dto := PostDTO{
		ID:            p.ID,
		UserID:        p.UserID,
		Title:         p.Title,
		Content:       p.Content,
		Category:      p.Category,
		LikesCount:    p.LikesCount,
		CommentsCount: p.CommentsCount,
		IsPinned:      p.IsPinned,
		AuthorName:    p.AuthorName,
		AuthorImage:   p.AuthorImage,
		AuthorBio:     p.AuthorBio,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
	for _, c := range p.Comments {
		dto.Comments = append(dto.Comments, ToCommentDTO(c))
	}
	return dto
}

// ToCommentDTO converts a domain Comment to its DTO
func ToCommentDTO(c *community.Comment) CommentDTO {
	return CommentDTO{
		ID:          c.ID,
		PostID:      c.PostID,
		UserID:      c.UserID,
		Content:     c.Content,
		AuthorName:  c.AuthorName,
		AuthorImage: c.AuthorImage,
		CreatedAt:   c.CreatedAt,
	}
}
