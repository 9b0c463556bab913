package persistence

import (
	"context"
	"fmt"

	"github.com/Mutombwa/kimberly-signature-scents/internal/domain/community"
	"github.com/Mutombwa/kimberly-signature-scents/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCategoryRepository implements community.CategoryRepository using GORM
type GormCategoryRepository struct {
	db *gorm.DB
}

// NewGormCategoryRepository creates a new GORM-based category repository
func NewGormCategoryRepository(db *gorm.DB) *GormCategoryRepository {
	return &GormCategoryRepository{db: db}
}

// FindAll retrieves all forum categories ordered by name
func (r *GormCategoryRepository) FindAll(ctx context.Context) ([]community.Category, error) {
	var categoryModels []models.CategoryModel
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&categoryModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	categories := make([]community.Category, len(categoryModels))
	for i := range categoryModels {
		categories[i] = *categoryModels[i].ToDomain()
	}
	return categories, nil
}

// Seed inserts the given categories, skipping ones that already exist
func (r *GormCategoryRepository) Seed(ctx context.Context, categories []community.Category) error {
	for i := range categories {
		model := models.CategoryModelFromDomain(&categories[i])
		model.ID = 0
		err := r.db.WithContext(ctx).
			Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "name"}},
				DoNothing: true,
			}).
			Create(model).Error
		if err != nil {
			return fmt.Errorf("failed to seed category %q: %w", categories[i].Name, err)
		}
	}
	return nil
}
