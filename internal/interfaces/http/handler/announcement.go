package handler

import (
	"net/http"

	appcatalog "github.com/Mutombwa/kimberly-signature-scents/internal/application/catalog"
	"github.com/Mutombwa/kimberly-signature-scents/internal/interfaces/http/dto"
	"github.com/Mutombwa/kimberly-signature-scents/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
)

// AnnouncementHandler serves announcement reads and the admin CRUD
type AnnouncementHandler struct {
	announcements *appcatalog.AnnouncementService
}

// NewAnnouncementHandler creates a new announcement handler
func NewAnnouncementHandler(announcements *appcatalog.AnnouncementService) *AnnouncementHandler {
	return &AnnouncementHandler{announcements: announcements}
}

// List handles GET /api/announcements
func (h *AnnouncementHandler) List(c *gin.Context) {
	announcements, err := h.announcements.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "", gin.H{"announcements": announcements})
}

// Get handles GET /api/announcements/:id
func (h *AnnouncementHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	announcement, err := h.announcements.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "", gin.H{"announcement": announcement})
}

// Create handles POST /api/announcements (admin only)
func (h *AnnouncementHandler) Create(c *gin.Context) {
	var req dto.AnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	announcement, err := h.announcements.Create(c.Request.Context(), middleware.UserID(c), appcatalog.AnnouncementCommand{
		Title:    req.Title,
		Category: req.Category,
		Content:  req.Content,
		Image:    req.Image,
		IsPinned: req.IsPinned,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, "Announcement created successfully", gin.H{"announcement": announcement})
}

// Update handles PUT /api/announcements/:id (admin only)
func (h *AnnouncementHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.AnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	announcement, err := h.announcements.Update(c.Request.Context(), id, appcatalog.AnnouncementCommand{
		Title:    req.Title,
		Category: req.Category,
		Content:  req.Content,
		Image:    req.Image,
		IsPinned: req.IsPinned,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Announcement updated successfully", gin.H{"announcement": announcement})
}

// Delete handles DELETE /api/announcements/:id (admin only)
func (h *AnnouncementHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.announcements.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Announcement deleted successfully", nil)
}
