package registration

import (
	"strings"
	"time"

	"github.com/Mutombwa/kimberly-signature-scents/internal/domain/identity"
	"github.com/Mutombwa/kimberly-signature-scents/internal/domain/shared"
)

// Status is a flat enum, not an ordered workflow: admins may move a
// registration between any two listed values, including backwards.
type Status string

const (
	StatusPending   Status = "pending"
	StatusContacted Status = "contacted"
	StatusPaid      Status = "paid"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// ValidStatuses is the allow-list for admin status updates
var ValidStatuses = []Status{StatusPending, StatusContacted, StatusPaid, StatusCompleted, StatusCancelled}

// IsValidStatus reports whether s is in the allow-list
func IsValidStatus(s string) bool {
	for _, v := range ValidStatuses {
		if string(v) == s {
			return true
		}
	}
	return false
}

// Registration is a prospective customer's intake form. It is created by a
// public submission and mutated only by admin status updates afterwards.
type Registration struct {
	ID               int64
	FullName         string
	Email            string
	Phone            string
	DateOfBirth      string
	Address          string
	KitChoice        string
	Status           Status
	PaymentConfirmed bool
	SubmittedDate    time.Time
	Notes            string
}

// New creates a pending registration from a public form submission
func New(fullName, email, phone, dateOfBirth, address, kitChoice string) (*Registration, error) {
	fullName = strings.TrimSpace(fullName)
	if fullName == "" {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Full name is required")
	}

	email, err := identity.NormalizeEmail(email)
	if err != nil {
		return nil, err
	}

	phone = strings.TrimSpace(phone)
	if phone == "" {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Phone number is required")
	}
	if dateOfBirth == "" {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Date of birth is required")
	}
	address = strings.TrimSpace(address)
	if address == "" {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Address is required")
	}
	if kitChoice == "" {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Kit choice is required")
	}

	return &Registration{
		FullName:      fullName,
		Email:         email,
		Phone:         phone,
		DateOfBirth:   dateOfBirth,
		Address:       address,
		KitChoice:     kitChoice,
		Status:        StatusPending,
		SubmittedDate: time.Now(),
	}, nil
}

// UpdateStatus applies an admin status change
func (r *Registration) UpdateStatus(status string, paymentConfirmed bool, notes string) error {
	if !IsValidStatus(status) {
		return shared.NewDomainError("VALIDATION_ERROR", "Invalid status")
	}

	r.Status = Status(status)
	r.PaymentConfirmed = paymentConfirmed
	r.Notes = notes

	return nil
}
