package catalog

import (
	"time"

	"github.com/Mutombwa/kimberly-signature-scents/internal/domain/catalog"
	"github.com/shopspring/decimal"
)

// AnnouncementCommand carries the fields of an announcement create or update
type AnnouncementCommand struct {
	Title    string
	Category string
	Content  string
	Image    string
	IsPinned bool
}

// ProductCommand carries the fields of a product create
type ProductCommand struct {
	Name        string
	Description string
	ImageURLs   []string
}

// AnnouncementDTO is the API view of an announcement
type AnnouncementDTO struct {
	ID         int64     `json:"id"`
	Title      string    `json:"title"`
	Category   string    `json:"category"`
	Content    string    `json:"content"`
	Image      string    `json:"image,omitempty"`
	IsPinned   bool      `json:"is_pinned"`
	AuthorID   int64     `json:"author_id"`
	AuthorName string    `json:"author_name,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ExchangeRateDTO is the API view of one rate entry
type ExchangeRateDTO struct {
	ID            int64           `json:"id"`
	Rate          decimal.Decimal `json:"rate"`
	UpdatedBy     int64           `json:"updated_by,omitempty"`
	UpdatedByName string          `json:"updated_by_name,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

// ProductDTO is the API view of a catalogue product
type ProductDTO struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	ImageURLs   []string  `json:"image_urls"`
	CreatedBy   int64     `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
}

// ToAnnouncementDTO converts a domain Announcement to its DTO
func ToAnnouncementDTO(a *catalog.Announcement) AnnouncementDTO {
	return AnnouncementDTO{
		ID:         a.ID,
		Title:      a.Title,
		Category:   a.Category,
		Content:    a.Content,
		Image:      a.Image,
		IsPinned:   a.IsPinned,
		AuthorID:   a.AuthorID,
		AuthorName: a.AuthorName,
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.UpdatedAt,
	}
}

// ToExchangeRateDTO converts a domain ExchangeRate to its DTO
func ToExchangeRateDTO(r *catalog.ExchangeRate) ExchangeRateDTO {
	return ExchangeRateDTO{
		ID:            r.ID,
		Rate:          r.Rate,
		UpdatedBy:     r.UpdatedBy,
		UpdatedByName: r.UpdatedByName,
		CreatedAt:     r.CreatedAt,
	}
}

// ToProductDTO converts a domain Product to its DTO
func ToProductDTO(p *catalog.Product) ProductDTO {
	urls := p.ImageURLs
	if urls == nil {
		urls = []string{}
	}
	return ProductDTO{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		ImageURLs:   urls,
		CreatedBy:   p.CreatedBy,
		CreatedAt:   p.CreatedAt,
	}
}
