package catalog

import (
	"time"

	"github.com/Mutombwa/kimberly-signature-scents/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// DefaultRate is returned when no rate has ever been recorded
var DefaultRate = decimal.NewFromFloat(17.00)

// ExchangeRate is one entry in an append-only time series. "Updating" the
// rate inserts a new row; history is never mutated. The current rate is
// the most recent row.
type ExchangeRate struct {
	ID        int64
	Rate      decimal.Decimal
	UpdatedBy int64
	CreatedAt time.Time

	// Joined updater field, populated on history reads
	UpdatedByName string
}

// NewExchangeRate creates a rate entry recorded by the given admin
func NewExchangeRate(rate decimal.Decimal, updatedBy int64) (*ExchangeRate, error) {
	if rate.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Valid exchange rate is required")
	}

	return &ExchangeRate{
		Rate:      rate,
		UpdatedBy: updatedBy,
		CreatedAt: time.Now(),
	}, nil
}
