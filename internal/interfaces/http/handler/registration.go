package handler

import (
	"net/http"

	appregistration "github.com/Mutombwa/kimberly-signature-scents/internal/application/registration"
	"github.com/Mutombwa/kimberly-signature-scents/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// RegistrationHandler serves the public intake form and the admin
// registration pipeline.
type RegistrationHandler struct {
	registrations *appregistration.RegistrationService
}

// NewRegistrationHandler creates a new registration handler
func NewRegistrationHandler(registrations *appregistration.RegistrationService) *RegistrationHandler {
	return &RegistrationHandler{registrations: registrations}
}

// Submit handles POST /api/registrations/submit
func (h *RegistrationHandler) Submit(c *gin.Context) {
	var req dto.SubmitRegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	reg, err := h.registrations.Submit(c.Request.Context(), appregistration.SubmitCommand{
		FullName:    req.FullName,
		Email:       req.Email,
		Phone:       req.Phone,
		DateOfBirth: req.DateOfBirth,
		Address:     req.Address,
		KitChoice:   req.KitChoice,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusCreated,
		"Registration submitted successfully! We will contact you shortly with payment instructions.",
		gin.H{"registrationId": reg.ID},
	)
}

// List handles GET /api/registrations (admin only)
func (h *RegistrationHandler) List(c *gin.Context) {
	regs, err := h.registrations.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "", gin.H{"registrations": regs})
}

// Get handles GET /api/registrations/:id (admin only)
func (h *RegistrationHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	reg, err := h.registrations.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "", gin.H{"registration": reg})
}

// UpdateStatus handles PATCH /api/registrations/:id/status (admin only)
func (h *RegistrationHandler) UpdateStatus(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateRegistrationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	reg, err := h.registrations.UpdateStatus(c.Request.Context(), id, appregistration.UpdateStatusCommand{
		Status:           req.Status,
		PaymentConfirmed: req.PaymentConfirmed,
		Notes:            req.Notes,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Registration status updated successfully", gin.H{"registration": reg})
}
