package models

import (
	"time"

	"github.com/Mutombwa/kimberly-signature-scents/internal/domain/registration"
)

// RegistrationModel is the persistence model for the Registration domain entity.
type RegistrationModel struct {
	ID               int64               `gorm:"primaryKey;autoIncrement"`
	FullName         string              `gorm:"type:varchar(255);not null"`
	Email            string              `gorm:"type:varchar(255);not null;index"`
	Phone            string              `gorm:"type:varchar(50);not null"`
	DateOfBirth      string              `gorm:"type:varchar(20);not null"`
	Address          string              `gorm:"type:text;not null"`
	KitChoice        string              `gorm:"type:varchar(100);not null"`
	Status           registration.Status `gorm:"type:varchar(20);not null;default:'pending';index"`
	PaymentConfirmed bool                `gorm:"not null;default:false"`
	SubmittedDate    time.Time           `gorm:"not null"`
	Notes            string              `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (RegistrationModel) TableName() string {
	return "registrations"
}

// ToDomain converts the persistence model to a domain Registration entity.
func (m *RegistrationModel) ToDomain() *registration.Registration {
	return &registration.Registration{
		ID:               m.ID,
		FullName:         m.FullName,
		Email:            m.Email,
		Phone:            m.Phone,
		DateOfBirth:      m.DateOfBirth,
		Address:          m.Address,
		KitChoice:        m.KitChoice,
		Status:           m.Status,
		PaymentConfirmed: m.PaymentConfirmed,
		SubmittedDate:    m.SubmittedDate,
		Notes:            m.Notes,
	}
}

// FromDomain populates the persistence model from a domain Registration entity.
func (m *RegistrationModel) FromDomain(r *registration.Registration) {
	m.ID = r.ID
	m.FullName = r.FullName
	m.Email = r.Email
	m.Phone = r.Phone
	m.DateOfBirth = r.DateOfBirth
	m.Address = r.Address
	m.KitChoice = r.KitChoice
	m.Status = r.Status
	m.PaymentConfirmed = r.PaymentConfirmed
	m.SubmittedDate = r.SubmittedDate
	m.Notes = r.Notes
}

// RegistrationModelFromDomain creates a new persistence model from a domain Registration entity.
func RegistrationModelFromDomain(r *registration.Registration) *RegistrationModel {
	m := &RegistrationModel{}
	m.FromDomain(r)
	return m
}
