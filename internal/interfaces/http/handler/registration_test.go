package handler

import (
	"net/http"
	"testing"

	appregistration "github.com/Mutombwa/kimberly-signature-scents/internal/application/registration"
	"github.com/Mutombwa/kimberly-signature-scents/internal/infrastructure/persistence"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestSubmitRegistrationResponseKey(t *testing.T) {
	db := newHandlerTestDatabase(t)

	svc := appregistration.NewRegistrationService(persistence.NewGormRegistrationRepository(db.DB), zap.NewNop())
	h := NewRegistrationHandler(svc)

	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.POST("/api/registrations/submit", h.Submit)

	body := `{"full_name":"Jane Doe","email":"jane@example.com","phone":"+263771234567","date_of_birth":"1990-01-01","address":"12 Rose St","kit_choice":"starter"}`
	w := performJSON(engine, http.MethodPost, "/api/registrations/submit", body)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"registrationId":1`)
	assert.Contains(t, w.Body.String(), "Registration submitted successfully")
}
