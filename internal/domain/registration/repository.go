package registration

import "context"

// Repository defines persistence operations for registrations
type Repository interface {
	Create(ctx context.Context, reg *Registration) error
	FindByID(ctx context.Context, id int64) (*Registration, error)
	FindAll(ctx context.Context) ([]*Registration, error)
	Update(ctx context.Context, reg *Registration) error
}
