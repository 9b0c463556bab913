package models

import (
	"time"

	"github.com/Mutombwa/kimberly-signature-scents/internal/domain/catalog"
	"github.com/shopspring/decimal"
)

// AnnouncementModel is the persistence model for the Announcement domain entity.
type AnnouncementModel struct {
	BaseModel
	Title    string `gorm:"type:varchar(255);not null"`
	Category string `gorm:"type:varchar(100);not null"`
	Content  string `gorm:"type:text;not null"`
	Image    string `gorm:"type:text"`
	IsPinned bool   `gorm:"not null;default:false"`
	AuthorID int64  `gorm:"not null;index"`

	Author *UserModel `gorm:"foreignKey:AuthorID"`
}

// TableName returns the table name for GORM
func (AnnouncementModel) TableName() string {
	return "announcements"
}

// ToDomain converts the persistence model to a domain Announcement entity.
func (m *AnnouncementModel) ToDomain() *catalog.Announcement {
	a := &catalog.Announcement{
		BaseEntity: m.BaseModel.ToDomain(),
		Title:      m.Title,
		Category:   m.Category,
		Content:    m.Content,
		Image:      m.Image,
		IsPinned:   m.IsPinned,
		AuthorID:   m.AuthorID,
	}
	if m.Author != nil {
		a.AuthorName = m.Author.FullName
	}
	return a
}

// FromDomain populates the persistence model from a domain Announcement entity.
func (m *AnnouncementModel) FromDomain(a *catalog.Announcement) {
	m.FromDomainBaseEntity(a.BaseEntity)
	m.Title = a.Title
	m.Category = a.Category
	m.Content = a.Content
	m.Image = a.Image
	m.IsPinned = a.IsPinned
	m.AuthorID = a.AuthorID
}

// AnnouncementModelFromDomain creates a new persistence model from a domain Announcement entity.
func AnnouncementModelFromDomain(a *catalog.Announcement) *AnnouncementModel {
	m := &AnnouncementModel{}
	m.FromDomain(a)
	return m
}

// ExchangeRateModel is the persistence model for exchange rate history.
// Rows are append-only; the newest row is the current rate.
type ExchangeRateModel struct {
	ID        int64           `gorm:"primaryKey;autoIncrement"`
	Rate      decimal.Decimal `gorm:"type:decimal(10,4);not null"`
	UpdatedBy int64           `gorm:"not null"`
	CreatedAt time.Time       `gorm:"not null;index"`

	Updater *UserModel `gorm:"foreignKey:UpdatedBy"`
}

// TableName returns the table name for GORM
func (ExchangeRateModel) TableName() string {
	return "exchange_rates"
}

// ToDomain converts the persistence model to a domain ExchangeRate entity.
func (m *ExchangeRateModel) ToDomain() *catalog.ExchangeRate {
	r := &catalog.ExchangeRate{
		ID:        m.ID,
		Rate:      m.Rate,
		UpdatedBy: m.UpdatedBy,
		CreatedAt: m.CreatedAt,
	}
	if m.Updater != nil {
		r.UpdatedByName = m.Updater.FullName
	}
	return r
}

// ExchangeRateModelFromDomain creates a new persistence model from a domain ExchangeRate entity.
func ExchangeRateModelFromDomain(r *catalog.ExchangeRate) *ExchangeRateModel {
	return &ExchangeRateModel{
		ID:        r.ID,
		Rate:      r.Rate,
		UpdatedBy: r.UpdatedBy,
		CreatedAt: r.CreatedAt,
	}
}

// ProductModel is the persistence model for the Product domain entity.
// Image URLs are stored JSON-encoded so the model works on both drivers.
type ProductModel struct {
	BaseModel
	Name        string   `gorm:"type:varchar(255);not null"`
	Description string   `gorm:"type:text"`
	ImageURLs   []string `gorm:"serializer:json;type:text"`
	CreatedBy   int64    `gorm:"not null"`
}

// TableName returns the table name for GORM
func (ProductModel) TableName() string {
	return "products"
}

// ToDomain converts the persistence model to a domain Product entity.
func (m *ProductModel) ToDomain() *catalog.Product {
	return &catalog.Product{
		BaseEntity:  m.BaseModel.ToDomain(),
		Name:        m.Name,
		Description: m.Description,
		ImageURLs:   m.ImageURLs,
		CreatedBy:   m.CreatedBy,
	}
}

// ProductModelFromDomain creates a new persistence model from a domain Product entity.
func ProductModelFromDomain(p *catalog.Product) *ProductModel {
	m := &ProductModel{}
	m.FromDomainBaseEntity(p.BaseEntity)
	m.Name = p.Name
	m.Description = p.Description
	m.ImageURLs = p.ImageURLs
	m.CreatedBy = p.CreatedBy
	return m
}
