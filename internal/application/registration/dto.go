package registration

import (
	"time"

	"github.com/Mutombwa/kimberly-signature-scents/internal/domain/registration"
)

// SubmitCommand carries the fields of a public intake submission
type SubmitCommand struct {
	FullName    string
	Email       string
	Phone       string
	DateOfBirth string
	Address     string
	KitChoice   string
}

// UpdateStatusCommand carries an admin status change
type UpdateStatusCommand struct {
	Status           string
	PaymentConfirmed bool
	Notes            string
}

// RegistrationDTO is the API view of an intake record
type RegistrationDTO struct {
	ID               int64     `json:"id"`
	FullName         string    `json:"full_name"`
	Email            string    `json:"email"`
	Phone            string    `json:"phone"`
	DateOfBirth      string    `json:"date_of_birth"`
	Address          string    `json:"address"`
	KitChoice        string    `json:"kit_choice"`
	Status           string    `json:"status"`
	PaymentConfirmed bool      `json:"payment_confirmed"`
	SubmittedDate    time.Time `json:"submitted_date"`
	Notes            string    `json:"notes,omitempty"`
}

// ToRegistrationDTO converts a domain Registration to its DTO
func ToRegistrationDTO(r *registration.Registration) RegistrationDTO {
	return RegistrationDTO{
		ID:               r.ID,
		FullName:         r.FullName,
		Email:            r.Email,
		Phone:            r.Phone,
		DateOfBirth:      r.DateOfBirth,
		Address:          r.Address,
		KitChoice:        r.KitChoice,
		Status:           string(r.Status),
		PaymentConfirmed: r.PaymentConfirmed,
		SubmittedDate:    r.SubmittedDate,
		Notes:            r.Notes,
	}
}
