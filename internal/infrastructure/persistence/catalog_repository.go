package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Mutombwa/kimberly-signature-scents/internal/domain/catalog"
	"github.com/Mutombwa/kimberly-signature-scents/internal/domain/shared"
	"github.com/Mutombwa/kimberly-signature-scents/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormAnnouncementRepository implements catalog.AnnouncementRepository using GORM
type GormAnnouncementRepository struct {
	db *gorm.DB
}

// NewGormAnnouncementRepository creates a new GORM-based announcement repository
func NewGormAnnouncementRepository(db *gorm.DB) *GormAnnouncementRepository {
	return &GormAnnouncementRepository{db: db}
}

// Create persists a new announcement
func (r *GormAnnouncementRepository) Create(ctx context.Context, a *catalog.Announcement) error {
	model := models.AnnouncementModelFromDomain(a)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create announcement: %w", err)
	}
	a.ID = model.ID
	return nil
}

// Update persists changes to an existing announcement
func (r *GormAnnouncementRepository) Update(ctx context.Context, a *catalog.Announcement) error {
	result := r.db.WithContext(ctx).Model(&models.AnnouncementModel{}).
		Where("id = ?", a.ID).
		Updates(map[string]interface{}{
			"title":      a.Title,
			"category":   a.Category,
			"content":    a.Content,
			"image":      a.Image,
			"is_pinned":  a.IsPinned,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update announcement: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Delete removes an announcement by ID
func (r *GormAnnouncementRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.AnnouncementModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete announcement: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindByID retrieves an announcement by ID
func (r *GormAnnouncementRepository) FindByID(ctx context.Context, id int64) (*catalog.Announcement, error) {
	var model models.AnnouncementModel
	if err := r.db.WithContext(ctx).Preload("Author").First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find announcement: %w", err)
	}
	return model.ToDomain(), nil
}

// FindAll retrieves all announcements, pinned first then newest
func (r *GormAnnouncementRepository) FindAll(ctx context.Context) ([]*catalog.Announcement, error) {
	var announcementModels []models.AnnouncementModel
	err := r.db.WithContext(ctx).
		Preload("Author").
		Order("is_pinned DESC").
		Order("created_at DESC").
		Find(&announcementModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list announcements: %w", err)
	}
	announcements := make([]*catalog.Announcement, len(announcementModels))
	for i := range announcementModels {
		announcements[i] = announcementModels[i].ToDomain()
	}
	return announcements, nil
}

// GormExchangeRateRepository implements catalog.ExchangeRateRepository using GORM
type GormExchangeRateRepository struct {
	db *gorm.DB
}

// NewGormExchangeRateRepository creates a new GORM-based exchange rate repository
func NewGormExchangeRateRepository(db *gorm.DB) *GormExchangeRateRepository {
	return &GormExchangeRateRepository{db: db}
}

// Append adds a new row to the rate series
func (r *GormExchangeRateRepository) Append(ctx context.Context, rate *catalog.ExchangeRate) error {
	model := models.ExchangeRateModelFromDomain(rate)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to append exchange rate: %w", err)
	}
	rate.ID = model.ID
	return nil
}

// Current returns the most recent rate, or shared.ErrNotFound when the
// series is empty.
func (r *GormExchangeRateRepository) Current(ctx context.Context) (*catalog.ExchangeRate, error) {
	var model models.ExchangeRateModel
	err := r.db.WithContext(ctx).
		Preload("Updater").
		Order("created_at DESC").
		Order("id DESC").
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find current exchange rate: %w", err)
	}
	return model.ToDomain(), nil
}

// History returns the most recent rate rows, newest first
func (r *GormExchangeRateRepository) History(ctx context.Context, limit int) ([]*catalog.ExchangeRate, error) {
	if limit < 1 {
		limit = 30
	}
	var rateModels []models.ExchangeRateModel
	err := r.db.WithContext(ctx).
		Preload("Updater").
		Order("created_at DESC").
		Order("id DESC").
		Limit(limit).
		Find(&rateModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list exchange rates: %w", err)
	}
	rates := make([]*catalog.ExchangeRate, len(rateModels))
	for i := range rateModels {
		rates[i] = rateModels[i].ToDomain()
	}
	return rates, nil
}

// GormProductRepository implements catalog.ProductRepository using GORM
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GORM-based product repository
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// Create persists a new product
func (r *GormProductRepository) Create(ctx context.Context, p *catalog.Product) error {
	model := models.ProductModelFromDomain(p)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	p.ID = model.ID
	return nil
}

// Delete removes a product by ID
func (r *GormProductRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.ProductModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete product: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindAll retrieves all products, newest first
func (r *GormProductRepository) FindAll(ctx context.Context) ([]*catalog.Product, error) {
	var productModels []models.ProductModel
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&productModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	products := make([]*catalog.Product, len(productModels))
	for i := range productModels {
		products[i] = productModels[i].ToDomain()
	}
	return products, nil
}
