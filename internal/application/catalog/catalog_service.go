package catalog

import (
	"context"
	"errors"
	"time"

	"github.com/Mutombwa/kimberly-signature-scents/internal/domain/catalog"
	"github.com/Mutombwa/kimberly-signature-scents/internal/domain/shared"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// AnnouncementService handles admin-authored announcements
type AnnouncementService struct {
	announcements catalog.AnnouncementRepository
	logger        *zap.Logger
}

// NewAnnouncementService creates a new announcement service
func NewAnnouncementService(announcements catalog.AnnouncementRepository, logger *zap.Logger) *AnnouncementService {
	return &AnnouncementService{announcements: announcements, logger: logger}
}

// Create publishes a new announcement authored by authorID
func (s *AnnouncementService) Create(ctx context.Context, authorID int64, cmd AnnouncementCommand) (*AnnouncementDTO, error) {
	a, err := catalog.NewAnnouncement(authorID, cmd.Title, cmd.Category, cmd.Content, cmd.Image, cmd.IsPinned)
	if err != nil {
		return nil, err
	}

	if err := s.announcements.Create(ctx, a); err != nil {
		s.logger.Error("Failed to create announcement", zap.Error(err))
		return nil, shared.ErrInternal
	}

	s.logger.Info("Announcement created", zap.Int64("announcement_id", a.ID))
	dto := ToAnnouncementDTO(a)
	return &dto, nil
}

// Get returns a single announcement by id
func (s *AnnouncementService) Get(ctx context.Context, id int64) (*AnnouncementDTO, error) {
	a, err := s.announcements.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "Announcement not found")
		}
		s.logger.Error("Failed to find announcement", zap.Error(err), zap.Int64("announcement_id", id))
		return nil, shared.ErrInternal
	}
	dto := ToAnnouncementDTO(a)
	return &dto, nil
}

// List returns all announcements, pinned first then newest
func (s *AnnouncementService) List(ctx context.Context) ([]AnnouncementDTO, error) {
	announcements, err := s.announcements.FindAll(ctx)
	if err != nil {
		s.logger.Error("Failed to list announcements", zap.Error(err))
		return nil, shared.ErrInternal
	}
	dtos := make([]AnnouncementDTO, len(announcements))
	for i, a := range announcements {
		dtos[i] = ToAnnouncementDTO(a)
	}
	return dtos, nil
}

// Update replaces an announcement's content fields
func (s *AnnouncementService) Update(ctx context.Context, id int64, cmd AnnouncementCommand) (*AnnouncementDTO, error) {
	a, err := s.announcements.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "Announcement not found")
		}
		s.logger.Error("Failed to find announcement", zap.Error(err), zap.Int64("announcement_id", id))
		return nil, shared.ErrInternal
	}

	if err := a.Edit(cmd.Title, cmd.Category, cmd.Content, cmd.Image, cmd.IsPinned); err != nil {
		return nil, err
	}

	if err := s.announcements.Update(ctx, a); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "Announcement not found")
		}
		s.logger.Error("Failed to update announcement", zap.Error(err), zap.Int64("announcement_id", id))
		return nil, shared.ErrInternal
	}

	dto := ToAnnouncementDTO(a)
	return &dto, nil
}

// Delete removes an announcement
func (s *AnnouncementService) Delete(ctx context.Context, id int64) error {
	if err := s.announcements.Delete(ctx, id); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.NewDomainError("NOT_FOUND", "Announcement not found")
		}
		s.logger.Error("Failed to delete announcement", zap.Error(err), zap.Int64("announcement_id", id))
		return shared.ErrInternal
	}
	return nil
}

// ExchangeRateService handles the append-only exchange rate series
type ExchangeRateService struct {
	rates  catalog.ExchangeRateRepository
	logger *zap.Logger
}

// NewExchangeRateService creates a new exchange rate service
func NewExchangeRateService(rates catalog.ExchangeRateRepository, logger *zap.Logger) *ExchangeRateService {
	return &ExchangeRateService{rates: rates, logger: logger}
}

// Current returns the most recent rate. An empty series yields the
// built-in default so the public endpoint never errors.
func (s *ExchangeRateService) Current(ctx context.Context) (*ExchangeRateDTO, error) {
	rate, err := s.rates.Current(ctx)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return &ExchangeRateDTO{Rate: catalog.DefaultRate, CreatedAt: time.Now()}, nil
		}
		s.logger.Error("Failed to load current exchange rate", zap.Error(err))
		return nil, shared.ErrInternal
	}
	dto := ToExchangeRateDTO(rate)
	return &dto, nil
}

// History returns the most recent rate entries, newest first
func (s *ExchangeRateService) History(ctx context.Context, limit int) ([]ExchangeRateDTO, error) {
	rates, err := s.rates.History(ctx, limit)
	if err != nil {
		s.logger.Error("Failed to load exchange rate history", zap.Error(err))
		return nil, shared.ErrInternal
	}
	dtos := make([]ExchangeRateDTO, len(rates))
	for i, r := range rates {
		dtos[i] = ToExchangeRateDTO(r)
	}
	return dtos, nil
}

// Update appends a new rate entry recorded by updatedBy
func (s *ExchangeRateService) Update(ctx context.Context, updatedBy int64, rate decimal.Decimal) (*ExchangeRateDTO, error) {
	entry, err := catalog.NewExchangeRate(rate, updatedBy)
	if err != nil {
		return nil, err
	}

	if err := s.rates.Append(ctx, entry); err != nil {
		s.logger.Error("Failed to append exchange rate", zap.Error(err))
		return nil, shared.ErrInternal
	}

	s.logger.Info("Exchange rate updated",
		zap.String("rate", entry.Rate.String()),
		zap.Int64("updated_by", updatedBy),
	)
	dto := ToExchangeRateDTO(entry)
	return &dto, nil
}

// ProductService handles the product catalogue
type ProductService struct {
	products catalog.ProductRepository
	logger   *zap.Logger
}

// NewProductService creates a new product service
func NewProductService(products catalog.ProductRepository, logger *zap.Logger) *ProductService {
	return &ProductService{products: products, logger: logger}
}

// Create adds a product to the catalogue
func (s *ProductService) Create(ctx context.Context, createdBy int64, cmd ProductCommand) (*ProductDTO, error) {
	p, err := catalog.NewProduct(createdBy, cmd.Name, cmd.Description, cmd.ImageURLs)
	if err != nil {
		return nil, err
	}

	if err := s.products.Create(ctx, p); err != nil {
		s.logger.Error("Failed to create product", zap.Error(err))
		return nil, shared.ErrInternal
	}

	s.logger.Info("Product created", zap.Int64("product_id", p.ID))
	dto := ToProductDTO(p)
	return &dto, nil
}

// List returns all products, newest first
func (s *ProductService) List(ctx context.Context) ([]ProductDTO, error) {
	products, err := s.products.FindAll(ctx)
	if err != nil {
		s.logger.Error("Failed to list products", zap.Error(err))
		return nil, shared.ErrInternal
	}
	dtos := make([]ProductDTO, len(products))
	for i, p := range products {
		dtos[i] = ToProductDTO(p)
	}
	return dtos, nil
}

// Delete removes a product from the catalogue
func (s *ProductService) Delete(ctx context.Context, id int64) error {
	if err := s.products.Delete(ctx, id); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.NewDomainError("NOT_FOUND", "Product not found")
		}
		s.logger.Error("Failed to delete product", zap.Error(err), zap.Int64("product_id", id))
		return shared.ErrInternal
	}
	return nil
}
