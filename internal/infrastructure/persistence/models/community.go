package models

import (
	"time"

	"github.com/Mutombwa/kimberly-signature-scents/internal/domain/community"
)

// PostModel is the persistence model for the Post domain entity.
type PostModel struct {
	BaseModel
	UserID        int64  `gorm:"not null;index"`
	Title         string `gorm:"type:varchar(200);not null"`
	Content       string `gorm:"type:text;not null"`
	Category      string `gorm:"type:varchar(100);not null;index"`
	LikesCount    int64  `gorm:"not null;default:0"`
	CommentsCount int64  `gorm:"not null;default:0"`
	IsPinned      bool   `gorm:"not null;default:false"`

	User     *UserModel      `gorm:"foreignKey:UserID"`
	Comments []*CommentModel `gorm:"foreignKey:PostID"`
}

// TableName returns the table name for GORM
func (PostModel) TableName() string {
	return "community_posts"
}

// ToDomain converts the persistence model to a domain Post entity.
func (m *PostModel) ToDomain() *community.Post {
	p := &community.Post{
		BaseEntity:    m.BaseModel.ToDomain(),
		UserID:        m.UserID,
		Title:         m.Title,
		Content:       m.Content,
		Category:      m.Category,
		LikesCount:    m.LikesCount,
		CommentsCount: m.CommentsCount,
		IsPinned:      m.IsPinned,
	}
	if m.User != nil {
		p.AuthorName = m.User.FullName
		p.AuthorImage = m.User.ProfileImage
		p.AuthorBio = m.User.Bio
	}
	for _, c := range m.Comments {
		p.Comments = append(p.Comments, c.ToDomain())
	}
	return p
}

// FromDomain populates the persistence model from a domain Post entity.
func (m *PostModel) FromDomain(p *community.Post) {
	m.FromDomainBaseEntity(p.BaseEntity)
	m.UserID = p.UserID
	m.Title = p.Title
	m.Content = p.Content
	m.Category = p.Category
	m.LikesCount = p.LikesCount
	m.CommentsCount = p.CommentsCount
	m.IsPinned = p.IsPinned
}

// PostModelFromDomain creates a new persistence model from a domain Post entity.
func PostModelFromDomain(p *community.Post) *PostModel {
	m := &PostModel{}
	m.FromDomain(p)
	return m
}

// CommentModel is the persistence model for the Comment domain entity.
type CommentModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	PostID    int64     `gorm:"not null;index"`
	UserID    int64     `gorm:"not null;index"`
	Content   string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"not null"`

	User *UserModel `gorm:"foreignKey:UserID"`
}

// TableName returns the table name for GORM
func (CommentModel) TableName() string {
	return "comments"
}

// ToDomain converts the persistence model to a domain Comment entity.
func (m *CommentModel) ToDomain() *community.Comment {
	c := &community.Comment{
		ID:        m.ID,
		PostID:    m.PostID,
		UserID:    m.UserID,
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
	}
	if m.User != nil {
		c.AuthorName = m.User.FullName
		c.AuthorImage = m.User.ProfileImage
	}
	return c
}

// CommentModelFromDomain creates a new persistence model from a domain Comment entity.
func CommentModelFromDomain(c *community.Comment) *CommentModel {
	return &CommentModel{
		ID:        c.ID,
		PostID:    c.PostID,
		UserID:    c.UserID,
		Content:   c.Content,
		CreatedAt: c.CreatedAt,
	}
}

// LikeModel is the persistence model for post likes. The composite
// unique index makes like membership idempotent at the store level.
type LikeModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	PostID    int64     `gorm:"not null;uniqueIndex:idx_post_user"`
	UserID    int64     `gorm:"not null;uniqueIndex:idx_post_user"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (LikeModel) TableName() string {
	return "post_likes"
}

// ToDomain converts the persistence model to a domain Like entity.
func (m *LikeModel) ToDomain() *community.Like {
	return &community.Like{
		ID:        m.ID,
		PostID:    m.PostID,
		UserID:    m.UserID,
		CreatedAt: m.CreatedAt,
	}
}

// CategoryModel is the persistence model for forum categories.
type CategoryModel struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	Name        string `gorm:"type:varchar(100);not null;uniqueIndex"`
	Description string `gorm:"type:text"`
	Icon        string `gorm:"type:varchar(100)"`
}

// TableName returns the table name for GORM
func (CategoryModel) TableName() string {
	return "categories"
}

// ToDomain converts the persistence model to a domain Category.
func (m *CategoryModel) ToDomain() *community.Category {
	return &community.Category{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Icon:        m.Icon,
	}
}

// CategoryModelFromDomain creates a new persistence model from a domain Category.
func CategoryModelFromDomain(c *community.Category) *CategoryModel {
	return &CategoryModel{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Icon:        c.Icon,
	}
}
