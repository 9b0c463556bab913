package persistence

import (
	"context"
	"fmt"

	"github.com/Mutombwa/kimberly-signature-scents/internal/domain/community"
	"github.com/Mutombwa/kimberly-signature-scents/internal/infrastructure/persistence/models"
)

// AutoMigrate creates or updates the schema for all persistence models
func (d *Database) AutoMigrate() error {
	err := d.DB.AutoMigrate(
		&models.UserModel{},
		&models.RegistrationModel{},
		&models.PostModel{},
		&models.CommentModel{},
		&models.LikeModel{},
		&models.CategoryModel{},
		&models.AnnouncementModel{},
		&models.ExchangeRateModel{},
		&models.ProductModel{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

// SeedCategories inserts the default forum categories if missing
func (d *Database) SeedCategories(ctx context.Context) error {
	repo := NewGormCategoryRepository(d.DB)
	return repo.Seed(ctx, community.DefaultCategories())
}
