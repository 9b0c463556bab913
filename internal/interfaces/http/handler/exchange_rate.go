package handler

import (
	"net/http"
	"strconv"

	appcatalog "github.com/Mutombwa/kimberly-signature-scents/internal/application/catalog"
	"github.com/Mutombwa/kimberly-signature-scents/internal/interfaces/http/dto"
	"github.com/Mutombwa/kimberly-signature-scents/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
)

const defaultRateHistoryLimit = 30

// ExchangeRateHandler serves the public rate reads and the admin update
type ExchangeRateHandler struct {
	rates *appcatalog.ExchangeRateService
}

// NewExchangeRateHandler creates a new exchange rate handler
func NewExchangeRateHandler(rates *appcatalog.ExchangeRateService) *ExchangeRateHandler {
	return &ExchangeRateHandler{rates: rates}
}

// Current handles GET /api/exchange-rates/current
func (h *ExchangeRateHandler) Current(c *gin.Context) {
	rate, err := h.rates.Current(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "", gin.H{"rate": rate})
}

// History handles GET /api/exchange-rates/history
func (h *ExchangeRateHandler) History(c *gin.Context) {
	limit := defaultRateHistoryLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": "Invalid limit",
			})
			return
		}
		limit = parsed
	}

	history, err := h.rates.History(c.Request.Context(), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "", gin.H{"history": history})
}

// Update handles POST /api/exchange-rates/update (admin only)
func (h *ExchangeRateHandler) Update(c *gin.Context) {
	var req dto.UpdateExchangeRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	rate, err := h.rates.Update(c.Request.Context(), middleware.UserID(c), req.Rate)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Exchange rate updated successfully", gin.H{"rate": rate})
}
