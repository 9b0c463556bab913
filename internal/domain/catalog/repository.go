package catalog

import "context"

// AnnouncementRepository defines persistence operations for announcements
type AnnouncementRepository interface {
	Create(ctx context.Context, a *Announcement) error
	Update(ctx context.Context, a *Announcement) error
	Delete(ctx context.Context, id int64) error
	FindByID(ctx context.Context, id int64) (*Announcement, error)
	FindAll(ctx context.Context) ([]*Announcement, error)
}

// ExchangeRateRepository defines persistence operations for the
// append-only exchange rate series
type ExchangeRateRepository interface {
	Append(ctx context.Context, rate *ExchangeRate) error
	Current(ctx context.Context) (*ExchangeRate, error)
	History(ctx context.Context, limit int) ([]*ExchangeRate, error)
}

// ProductRepository defines persistence operations for products
type ProductRepository interface {
	Create(ctx context.Context, p *Product) error
	Delete(ctx context.Context, id int64) error
	FindAll(ctx context.Context) ([]*Product, error)
}
