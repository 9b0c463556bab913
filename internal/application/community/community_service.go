package community

import (
	"context"
	"errors"

	"github.com/Mutombwa/kimberly-signature-scents/internal/domain/community"
	"github.com/Mutombwa/kimberly-signature-scents/internal/domain/shared"
	"go.uber.org/zap"
)

// Ownership failures are reported with the same message as a missing
// row so callers cannot probe which posts exist.
var (
	errPostNotEditable     = shared.NewDomainError("NOT_FOUND", "Post not found or you do not have permission to edit it")
	errPostNotDeletable    = shared.NewDomainError("NOT_FOUND", "Post not found or you do not have permission to delete it")
	errCommentNotDeletable = shared.NewDomainError("NOT_FOUND", "Comment not found or you do not have permission to delete it")
)

// CommunityService handles forum posts, comments, likes and categories
type CommunityService struct {
	posts      community.PostRepository
	categories community.CategoryRepository
	logger     *zap.Logger
}

// NewCommunityService creates a new community service
func NewCommunityService(posts community.PostRepository, categories community.CategoryRepository, logger *zap.Logger) *CommunityService {
	return &CommunityService{
		posts:      posts,
		categories: categories,
		logger:     logger,
	}
}

// CreatePost creates a post owned by userID
func (s *CommunityService) CreatePost(ctx context.Context, userID int64, cmd CreatePostCommand) (*PostDTO, error) {
	post, err := community.NewPost(userID, cmd.Title, cmd.Content, cmd.Category)
	if err != nil {
		return nil, err
	}

	if err := s.posts.Create(ctx, post); err != nil {
		s.logger.Error("Failed to create post", zap.Error(err), zap.Int64("user_id", userID))
		return nil, shared.ErrInternal
	}

	created, err := s.posts.FindByID(ctx, post.ID)
	if err != nil {
		s.logger.Error("Failed to reload post", zap.Error(err), zap.Int64("post_id", post.ID))
		return nil, shared.ErrInternal
	}

	s.logger.Info("Post created", zap.Int64("post_id", post.ID), zap.Int64("user_id", userID))
	dto := ToPostDTO(created)
	return &dto, nil
}

// ListPosts returns a page of posts, pinned first then newest
func (s *CommunityService) ListPosts(ctx context.Context, page, limit int) ([]PostDTO, error) {
	posts, err := s.posts.FindAll(ctx, community.PostFilter{Page: page, Limit: limit})
	if err != nil {
		s.logger.Error("Failed to list posts", zap.Error(err))
		return nil, shared.ErrInternal
	}
	return toPostDTOs(posts), nil
}

// ListPostsByCategory returns all posts in a category
func (s *CommunityService) ListPostsByCategory(ctx context.Context, category string) ([]PostDTO, error) {
	posts, err := s.posts.FindByCategory(ctx, category)
	if err != nil {
		s.logger.Error("Failed to list posts by category", zap.Error(err), zap.String("category", category))
		return nil, shared.ErrInternal
	}
	return toPostDTOs(posts), nil
}

// GetPost returns one post with its comments
func (s *CommunityService) GetPost(ctx context.Context, id int64) (*PostDTO, error) {
	post, err := s.posts.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "Post not found")
		}
		s.logger.Error("Failed to find post", zap.Error(err), zap.Int64("post_id", id))
		return nil, shared.ErrInternal
	}
	dto := ToPostDTO(post)
	return &dto, nil
}

// UpdatePost edits a post if and only if userID owns it
func (s *CommunityService) UpdatePost(ctx context.Context, userID, postID int64, cmd UpdatePostCommand) (*PostDTO, error) {
	post, err := community.NewPost(userID, cmd.Title, cmd.Content, cmd.Category)
	if err != nil {
		return nil, err
	}
	post.ID = postID

	if err := s.posts.UpdateOwned(ctx, post, userID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, errPostNotEditable
		}
		s.logger.Error("Failed to update post", zap.Error(err), zap.Int64("post_id", postID))
		return nil, shared.ErrInternal
	}

	updated, err := s.posts.FindByID(ctx, postID)
	if err != nil {
		s.logger.Error("Failed to reload post", zap.Error(err), zap.Int64("post_id", postID))
		return nil, shared.ErrInternal
	}
	dto := ToPostDTO(updated)
	return &dto, nil
}

// DeletePost removes a post if and only if userID owns it
func (s *CommunityService) DeletePost(ctx context.Context, userID, postID int64) error {
	if err := s.posts.DeleteOwned(ctx, postID, userID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return errPostNotDeletable
		}
		s.logger.Error("Failed to delete post", zap.Error(err), zap.Int64("post_id", postID))
		return shared.ErrInternal
	}
	s.logger.Info("Post deleted", zap.Int64("post_id", postID), zap.Int64("user_id", userID))
	return nil
}

// AddComment appends a comment to a post
func (s *CommunityService) AddComment(ctx context.Context, userID, postID int64, content string) (*CommentDTO, error) {
	comment, err := community.NewComment(postID, userID, content)
	if err != nil {
		return nil, err
	}

	if err := s.posts.AddComment(ctx, comment); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "Post not found")
		}
		s.logger.Error("Failed to add comment", zap.Error(err), zap.Int64("post_id", postID))
		return nil, shared.ErrInternal
	}

	dto := ToCommentDTO(comment)
	return &dto, nil
}

// ListComments returns a post's comments oldest first
func (s *CommunityService) ListComments(ctx context.Context, postID int64) ([]CommentDTO, error) {
	comments, err := s.posts.FindCommentsByPostID(ctx, postID)
	if err != nil {
		s.logger.Error("Failed to list comments", zap.Error(err), zap.Int64("post_id", postID))
		return nil, shared.ErrInternal
	}
	dtos := make([]CommentDTO, len(comments))
	for i, c := range comments {
		dtos[i] = ToCommentDTO(c)
	}
	return dtos, nil
}

// DeleteComment removes a comment if and only if userID authored it
func (s *CommunityService) DeleteComment(ctx context.Context, userID, commentID int64) error {
	if err := s.posts.DeleteOwnedComment(ctx, commentID, userID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return errCommentNotDeletable
		}
		s.logger.Error("Failed to delete comment", zap.Error(err), zap.Int64("comment_id", commentID))
		return shared.ErrInternal
	}
	return nil
}

// ToggleLike flips userID's like on a post and returns the new state
func (s *CommunityService) ToggleLike(ctx context.Context, userID, postID int64) (*LikeResultDTO, error) {
	result, err := s.posts.ToggleLike(ctx, postID, userID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "Post not found")
		}
		if errors.Is(err, shared.ErrAlreadyExists) {
			// A concurrent toggle inserted the like first. The row
			// exists either way, so report liked with the fresh count.
			post, ferr := s.posts.FindByID(ctx, postID)
			if ferr != nil {
				s.logger.Error("Failed to reload post after like conflict", zap.Error(ferr), zap.Int64("post_id", postID))
				return nil, shared.ErrInternal
			}
			return &LikeResultDTO{Liked: true, LikesCount: post.LikesCount}, nil
		}
		s.logger.Error("Failed to toggle like", zap.Error(err), zap.Int64("post_id", postID))
		return nil, shared.ErrInternal
	}
	return &LikeResultDTO{Liked: result.Liked, LikesCount: result.LikesCount}, nil
}

// ListCategories returns the forum categories
func (s *CommunityService) ListCategories(ctx context.Context) ([]community.Category, error) {
	categories, err := s.categories.FindAll(ctx)
	if err != nil {
		s.logger.Error("Failed to list categories", zap.Error(err))
		return nil, shared.ErrInternal
	}
	return categories, nil
}

func toPostDTOs(posts []*community.Post) []PostDTO {
	dtos := make([]PostDTO, len(posts))
	for i, p := range posts {
		dtos[i] = ToPostDTO(p)
	}
	return dtos
}
