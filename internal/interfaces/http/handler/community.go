package handler

import (
	"net/http"

	appcommunity "github.com/Mutombwa/kimberly-signature-scents/internal/application/community"
	"github.com/Mutombwa/kimberly-signature-scents/internal/interfaces/http/dto"
	"github.com/Mutombwa/kimberly-signature-scents/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
)

// CommunityHandler serves the forum: posts, comments, likes and categories
type CommunityHandler struct {
	community *appcommunity.CommunityService
}

// NewCommunityHandler creates a new community handler
func NewCommunityHandler(community *appcommunity.CommunityService) *CommunityHandler {
	return &CommunityHandler{community: community}
}

// ListPosts handles GET /api/community/posts
func (h *CommunityHandler) ListPosts(c *gin.Context) {
	var query dto.ListPostsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondBindingError(c, err)
		return
	}

	posts, err := h.community.ListPosts(c.Request.Context(), query.Page, query.Limit)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "", gin.H{"posts": posts})
}

// ListPostsByCategory handles GET /api/community/posts/category/:category
func (h *CommunityHandler) ListPostsByCategory(c *gin.Context) {
	posts, err := h.community.ListPostsByCategory(c.Request.Context(), c.Param("category"))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "", gin.H{"posts": posts})
}

// GetPost handles GET /api/community/posts/:id
func (h *CommunityHandler) GetPost(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	post, err := h.community.GetPost(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "", gin.H{"post": post})
}

// CreatePost handles POST /api/community/posts
func (h *CommunityHandler) CreatePost(c *gin.Context) {
	var req dto.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	post, err := h.community.CreatePost(c.Request.Context(), middleware.UserID(c), appcommunity.CreatePostCommand{
		Title:    req.Title,
		Content:  req.Content,
		Category: req.Category,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, "Post created successfully", gin.H{"post": post})
}

// UpdatePost handles PUT /api/community/posts/:id
func (h *CommunityHandler) UpdatePost(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	post, err := h.community.UpdatePost(c.Request.Context(), middleware.UserID(c), id, appcommunity.UpdatePostCommand{
		Title:    req.Title,
		Content:  req.Content,
		Category: req.Category,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Post updated successfully", gin.H{"post": post})
}

// DeletePost handles DELETE /api/community/posts/:id
func (h *CommunityHandler) DeletePost(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.community.DeletePost(c.Request.Context(), middleware.UserID(c), id); err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Post deleted successfully", nil)
}

// AddComment handles POST /api/community/posts/:id/comments
func (h *CommunityHandler) AddComment(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	comment, err := h.community.AddComment(c.Request.Context(), middleware.UserID(c), id, req.Content)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, "Comment added successfully", gin.H{"comment": comment})
}

// ListComments handles GET /api/community/posts/:id/comments
func (h *CommunityHandler) ListComments(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	comments, err := h.community.ListComments(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "", gin.H{"comments": comments})
}

// DeleteComment handles DELETE /api/community/comments/:id
func (h *CommunityHandler) DeleteComment(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.community.DeleteComment(c.Request.Context(), middleware.UserID(c), id); err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Comment deleted successfully", nil)
}

// ToggleLike handles POST /api/community/posts/:id/like
func (h *CommunityHandler) ToggleLike(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	result, err := h.community.ToggleLike(c.Request.Context(), middleware.UserID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}

	message := "Post unliked"
	if result.Liked {
		message = "Post liked"
	}
	respond(c, http.StatusOK, message, gin.H{
		"liked":       result.Liked,
		"likesCount": result.LikesCount,
	})
}

// ListCategories handles GET /api/community/categories
func (h *CommunityHandler) ListCategories(c *gin.Context) {
	categories, err := h.community.ListCategories(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "", gin.H{"categories": categories})
}
