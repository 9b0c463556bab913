package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Mutombwa/kimberly-signature-scents/internal/domain/community"
	"github.com/Mutombwa/kimberly-signature-scents/internal/domain/shared"
	"github.com/Mutombwa/kimberly-signature-scents/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormPostRepository implements community.PostRepository using GORM
type GormPostRepository struct {
	db *gorm.DB
}

// NewGormPostRepository creates a new GORM-based post repository
func NewGormPostRepository(db *gorm.DB) *GormPostRepository {
	return &GormPostRepository{db: db}
}

// Create persists a new post
func (r *GormPostRepository) Create(ctx context.Context, post *community.Post) error {
	model := models.PostModelFromDomain(post)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create post: %w", err)
	}
	post.ID = model.ID
	return nil
}

// FindByID retrieves a post with its author and comments
func (r *GormPostRepository) FindByID(ctx context.Context, id int64) (*community.Post, error) {
	var model models.PostModel
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("comments.created_at ASC")
		}).
		Preload("Comments.User").
		First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find post: %w", err)
	}
	return model.ToDomain(), nil
}

// FindAll retrieves posts, pinned first then newest, with paging
func (r *GormPostRepository) FindAll(ctx context.Context, filter community.PostFilter) ([]*community.Post, error) {
	var postModels []models.PostModel
	err := r.db.WithContext(ctx).
		Preload("User").
		Order("is_pinned DESC").
		Order("created_at DESC").
		Offset(filter.Offset()).
		Limit(filter.PageSize()).
		Find(&postModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	return toDomainPosts(postModels), nil
}

// FindByCategory retrieves posts in a category, pinned first then newest
func (r *GormPostRepository) FindByCategory(ctx context.Context, category string) ([]*community.Post, error) {
	var postModels []models.PostModel
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("category = ?", category).
		Order("is_pinned DESC").
		Order("created_at DESC").
		Find(&postModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list posts by category: %w", err)
	}
	return toDomainPosts(postModels), nil
}

// UpdateOwned updates a post only if it belongs to ownerID. A miss on
// either condition yields shared.ErrNotFound.
func (r *GormPostRepository) UpdateOwned(ctx context.Context, post *community.Post, ownerID int64) error {
	result := r.db.WithContext(ctx).Model(&models.PostModel{}).
		Where("id = ? AND user_id = ?", post.ID, ownerID).
		Updates(map[string]interface{}{
			"title":      post.Title,
			"content":    post.Content,
			"category":   post.Category,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update post: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// DeleteOwned deletes a post only if it belongs to ownerID, cascading
// to its comments and likes in the same transaction.
func (r *GormPostRepository) DeleteOwned(ctx context.Context, id, ownerID int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id = ? AND user_id = ?", id, ownerID).Delete(&models.PostModel{})
		if result.Error != nil {
			return fmt.Errorf("failed to delete post: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		if err := tx.Where("post_id = ?", id).Delete(&models.CommentModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete post comments: %w", err)
		}
		if err := tx.Where("post_id = ?", id).Delete(&models.LikeModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete post likes: %w", err)
		}
		return nil
	})
}

// AddComment persists a comment and refreshes the post's stored comment
// count in the same transaction.
func (r *GormPostRepository) AddComment(ctx context.Context, comment *community.Comment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var exists int64
		if err := tx.Model(&models.PostModel{}).Where("id = ?", comment.PostID).Count(&exists).Error; err != nil {
			return fmt.Errorf("failed to check post existence: %w", err)
		}
		if exists == 0 {
			return shared.ErrNotFound
		}

		model := models.CommentModelFromDomain(comment)
		if err := tx.Create(model).Error; err != nil {
			return fmt.Errorf("failed to create comment: %w", err)
		}
		comment.ID = model.ID

		if err := refreshCommentCount(tx, comment.PostID); err != nil {
			return err
		}

		var withAuthor models.CommentModel
		if err := tx.Preload("User").First(&withAuthor, model.ID).Error; err == nil {
			*comment = *withAuthor.ToDomain()
		}
		return nil
	})
}

// FindCommentsByPostID retrieves a post's comments oldest first
func (r *GormPostRepository) FindCommentsByPostID(ctx context.Context, postID int64) ([]*community.Comment, error) {
	var commentModels []models.CommentModel
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("post_id = ?", postID).
		Order("created_at ASC").
		Find(&commentModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	comments := make([]*community.Comment, len(commentModels))
	for i := range commentModels {
		comments[i] = commentModels[i].ToDomain()
	}
	return comments, nil
}

// DeleteOwnedComment deletes a comment only if it belongs to authorID
// and refreshes the post's stored comment count.
func (r *GormPostRepository) DeleteOwnedComment(ctx context.Context, id, authorID int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var model models.CommentModel
		if err := tx.Where("id = ? AND user_id = ?", id, authorID).First(&model).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return shared.ErrNotFound
			}
			return fmt.Errorf("failed to find comment: %w", err)
		}

		result := tx.Where("id = ? AND user_id = ?", id, authorID).Delete(&models.CommentModel{})
		if result.Error != nil {
			return fmt.Errorf("failed to delete comment: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return refreshCommentCount(tx, model.PostID)
	})
}

// ToggleLike flips like membership for (postID, userID) and recomputes
// the post's stored like count inside one transaction. The composite
// unique index on post_likes absorbs concurrent double-inserts.
func (r *GormPostRepository) ToggleLike(ctx context.Context, postID, userID int64) (*community.ToggleResult, error) {
	var res community.ToggleResult
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var exists int64
		if err := tx.Model(&models.PostModel{}).Where("id = ?", postID).Count(&exists).Error; err != nil {
			return fmt.Errorf("failed to check post existence: %w", err)
		}
		if exists == 0 {
			return shared.ErrNotFound
		}

		result := tx.Where("post_id = ? AND user_id = ?", postID, userID).Delete(&models.LikeModel{})
		if result.Error != nil {
			return fmt.Errorf("failed to remove like: %w", result.Error)
		}

		if result.RowsAffected == 0 {
			like := &models.LikeModel{PostID: postID, UserID: userID, CreatedAt: time.Now()}
			if err := tx.Create(like).Error; err != nil {
				if errors.Is(err, gorm.ErrDuplicatedKey) {
					return shared.ErrAlreadyExists
				}
				return fmt.Errorf("failed to create like: %w", err)
			}
			res.Liked = true
		}

		var count int64
		if err := tx.Model(&models.LikeModel{}).Where("post_id = ?", postID).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to count likes: %w", err)
		}
		res.LikesCount = count

		return tx.Model(&models.PostModel{}).
			Where("id = ?", postID).
			UpdateColumn("likes_count", count).Error
	})
	if errors.Is(err, shared.ErrAlreadyExists) {
		// Lost the insert race to a concurrent toggle. The like row is
		// present, so settle on liked and refresh the stored count in a
		// fresh transaction (the first one rolled back on the conflict).
		count, cerr := r.recountLikes(ctx, postID)
		if cerr != nil {
			return nil, cerr
		}
		return &community.ToggleResult{Liked: true, LikesCount: count}, nil
	}
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *GormPostRepository) recountLikes(ctx context.Context, postID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.LikeModel{}).Where("post_id = ?", postID).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to count likes: %w", err)
		}
		return tx.Model(&models.PostModel{}).
			Where("id = ?", postID).
			UpdateColumn("likes_count", count).Error
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

func refreshCommentCount(tx *gorm.DB, postID int64) error {
	var count int64
	if err := tx.Model(&models.CommentModel{}).Where("post_id = ?", postID).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count comments: %w", err)
	}
	return tx.Model(&models.PostModel{}).
		Where("id = ?", postID).
		UpdateColumn("comments_count", count).Error
}

func toDomainPosts(postModels []models.PostModel) []*community.Post {
	posts := make([]*community.Post, len(postModels))
	for i := range postModels {
		posts[i] = postModels[i].ToDomain()
	}
	return posts
}
