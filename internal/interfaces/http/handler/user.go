package handler

import (
	"net/http"

	appidentity "github.com/Mutombwa/kimberly-signature-scents/internal/application/identity"
	"github.com/Mutombwa/kimberly-signature-scents/internal/interfaces/http/dto"
	"github.com/Mutombwa/kimberly-signature-scents/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
)

// UserHandler serves public profiles, profile edits, the admin user
// list and the public stats counters.
type UserHandler struct {
	auth *appidentity.AuthService
}

// NewUserHandler creates a new user handler
func NewUserHandler(auth *appidentity.AuthService) *UserHandler {
	return &UserHandler{auth: auth}
}

// Profile handles GET /api/users/profile/:id
func (h *UserHandler) Profile(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	profile, err := h.auth.Profile(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "", gin.H{"profile": profile})
}

// UpdateProfile handles PUT /api/users/profile
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	user, err := h.auth.UpdateProfile(c.Request.Context(), middleware.UserID(c), appidentity.UpdateProfileCommand{
		FullName:     req.FullName,
		Phone:        req.Phone,
		Bio:          req.Bio,
		ProfileImage: req.ProfileImage,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Profile updated successfully", gin.H{"user": user})
}

// List handles GET /api/users (admin only)
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.auth.ListUsers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "", gin.H{"users": users})
}

// Stats handles GET /api/users/stats
func (h *UserHandler) Stats(c *gin.Context) {
	stats, err := h.auth.Stats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "", gin.H{"stats": stats})
}
