package registration

import (
	"context"
	"errors"

	"github.com/Mutombwa/kimberly-signature-scents/internal/domain/registration"
	"github.com/Mutombwa/kimberly-signature-scents/internal/domain/shared"
	"go.uber.org/zap"
)

// RegistrationService handles the public intake form and the admin
// pipeline over submitted registrations.
type RegistrationService struct {
	registrations registration.Repository
	logger        *zap.Logger
}

// NewRegistrationService creates a new registration service
func NewRegistrationService(registrations registration.Repository, logger *zap.Logger) *RegistrationService {
	return &RegistrationService{
		registrations: registrations,
		logger:        logger,
	}
}

// Submit records a public intake submission in the pending state.
// Duplicate emails are accepted; each submission is its own record.
func (s *RegistrationService) Submit(ctx context.Context, cmd SubmitCommand) (*RegistrationDTO, error) {
	reg, err := registration.New(cmd.FullName, cmd.Email, cmd.Phone, cmd.DateOfBirth, cmd.Address, cmd.KitChoice)
	if err != nil {
		return nil, err
	}

	if err := s.registrations.Create(ctx, reg); err != nil {
		s.logger.Error("Failed to create registration", zap.Error(err))
		return nil, shared.ErrInternal
	}

	s.logger.Info("Registration submitted", zap.Int64("registration_id", reg.ID))
	dto := ToRegistrationDTO(reg)
	return &dto, nil
}

// List returns all registrations, newest first
func (s *RegistrationService) List(ctx context.Context) ([]RegistrationDTO, error) {
	regs, err := s.registrations.FindAll(ctx)
	if err != nil {
		s.logger.Error("Failed to list registrations", zap.Error(err))
		return nil, shared.ErrInternal
	}
	dtos := make([]RegistrationDTO, len(regs))
	for i, r := range regs {
		dtos[i] = ToRegistrationDTO(r)
	}
	return dtos, nil
}

// Get returns one registration by ID
func (s *RegistrationService) Get(ctx context.Context, id int64) (*RegistrationDTO, error) {
	reg, err := s.registrations.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "Registration not found")
		}
		s.logger.Error("Failed to find registration", zap.Error(err), zap.Int64("registration_id", id))
		return nil, shared.ErrInternal
	}
	dto := ToRegistrationDTO(reg)
	return &dto, nil
}

// UpdateStatus applies an admin status change to a registration
func (s *RegistrationService) UpdateStatus(ctx context.Context, id int64, cmd UpdateStatusCommand) (*RegistrationDTO, error) {
	reg, err := s.registrations.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "Registration not found")
		}
		s.logger.Error("Failed to find registration", zap.Error(err), zap.Int64("registration_id", id))
		return nil, shared.ErrInternal
	}

	if err := reg.UpdateStatus(cmd.Status, cmd.PaymentConfirmed, cmd.Notes); err != nil {
		return nil, err
	}

	if err := s.registrations.Update(ctx, reg); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "Registration not found")
		}
		s.logger.Error("Failed to update registration", zap.Error(err), zap.Int64("registration_id", id))
		return nil, shared.ErrInternal
	}

	s.logger.Info("Registration status updated",
		zap.Int64("registration_id", id),
		zap.String("status", cmd.Status),
	)
	dto := ToRegistrationDTO(reg)
	return &dto, nil
}
