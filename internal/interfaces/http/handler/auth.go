package handler

import (
	"net/http"

	appidentity "github.com/Mutombwa/kimberly-signature-scents/internal/application/identity"
	"github.com/Mutombwa/kimberly-signature-scents/internal/interfaces/http/dto"
	"github.com/Mutombwa/kimberly-signature-scents/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
)

// AuthHandler serves signup, login and the current-user endpoint
type AuthHandler struct {
	auth *appidentity.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(auth *appidentity.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Register handles POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	result, err := h.auth.Register(c.Request.Context(), appidentity.RegisterCommand{
		FullName:    req.FullName,
		Email:       req.Email,
		Password:    req.Password,
		Phone:       req.Phone,
		DateOfBirth: req.DateOfBirth,
		Address:     req.Address,
		KitChoice:   req.KitChoice,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusCreated, "Account created successfully", gin.H{
		"token": result.Token,
		"user":  result.User,
	})
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	result, err := h.auth.Login(c.Request.Context(), appidentity.LoginCommand{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "Login successful", gin.H{
		"token": result.Token,
		"user":  result.User,
	})
}

// Me handles GET /api/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.auth.CurrentUser(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "", gin.H{"user": user})
}
