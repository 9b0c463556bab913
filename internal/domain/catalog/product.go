package catalog

import (
	"strings"

	"github.com/Mutombwa/kimberly-signature-scents/internal/domain/shared"
)

// Product is a catalogue item shown on the marketing site. Listing is
// public; create and delete require the admin role.
type Product struct {
	shared.BaseEntity
	Name        string
	Description string
	ImageURLs   []string
	CreatedBy   int64
}

// NewProduct creates a product added by the given admin
func NewProduct(createdBy int64, name, description string, imageURLs []string) (*Product, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "Product name is required")
	}

	return &Product{
		BaseEntity:  shared.NewBaseEntity(),
		Name:        name,
		Description: description,
		ImageURLs:   imageURLs,
		CreatedBy:   createdBy,
	}, nil
}
