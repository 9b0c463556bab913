package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/Mutombwa/kimberly-signature-scents/internal/domain/registration"
	"github.com/Mutombwa/kimberly-signature-scents/internal/domain/shared"
	"github.com/Mutombwa/kimberly-signature-scents/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormRegistrationRepository implements registration.Repository using GORM
type GormRegistrationRepository struct {
	db *gorm.DB
}

// NewGormRegistrationRepository creates a new GORM-based registration repository
func NewGormRegistrationRepository(db *gorm.DB) *GormRegistrationRepository {
	return &GormRegistrationRepository{db: db}
}

// Create persists a new registration
func (r *GormRegistrationRepository) Create(ctx context.Context, reg *registration.Registration) error {
	model := models.RegistrationModelFromDomain(reg)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create registration: %w", err)
	}
	reg.ID = model.ID
	return nil
}

// FindByID retrieves a registration by ID
func (r *GormRegistrationRepository) FindByID(ctx context.Context, id int64) (*registration.Registration, error) {
	var model models.RegistrationModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find registration: %w", err)
	}
	return model.ToDomain(), nil
}

// FindAll retrieves all registrations, newest first
func (r *GormRegistrationRepository) FindAll(ctx context.Context) ([]*registration.Registration, error) {
	var regModels []models.RegistrationModel
	if err := r.db.WithContext(ctx).Order("submitted_date DESC").Find(&regModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list registrations: %w", err)
	}
	regs := make([]*registration.Registration, len(regModels))
	for i := range regModels {
		regs[i] = regModels[i].ToDomain()
	}
	return regs, nil
}

// Update persists changes to an existing registration
func (r *GormRegistrationRepository) Update(ctx context.Context, reg *registration.Registration) error {
	model := models.RegistrationModelFromDomain(reg)
	result := r.db.WithContext(ctx).Model(&models.RegistrationModel{}).
		Where("id = ?", model.ID).
		Select("status", "payment_confirmed", "notes").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update registration: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}
