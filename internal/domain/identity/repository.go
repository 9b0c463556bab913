package identity

import "context"

// Stats holds the public aggregate counters shown on the marketing site
type Stats struct {
	TotalUsers         int64 `json:"total_users"`
	TotalRegistrations int64 `json:"total_registrations"`
	TotalPosts         int64 `json:"total_posts"`
	TotalComments      int64 `json:"total_comments"`
}

// UserRepository defines persistence operations for users
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	Update(ctx context.Context, user *User) error
	FindByID(ctx context.Context, id int64) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	FindAll(ctx context.Context) ([]*User, error)
	Stats(ctx context.Context) (*Stats, error)
}
