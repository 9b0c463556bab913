package community

import "time"

// Like is a (post, user) membership pair. The store enforces uniqueness
// on the pair, so a user can like a post at most once; toggling adds or
// removes the row.
type Like struct {
	ID        int64
	PostID    int64
	UserID    int64
	CreatedAt time.Time
}

// Category groups posts. The fixed set is seeded at startup.
type Category struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// DefaultCategories are seeded into an empty store
func DefaultCategories() []Category {
	return []Category{
		{Name: "Success Stories", Description: "Share your achievements and milestones", Icon: "fa-trophy"},
		{Name: "Product Reviews", Description: "Your thoughts on our fragrances", Icon: "fa-star"},
		{Name: "Business Tips", Description: "Tips and strategies for growing your business", Icon: "fa-lightbulb"},
		{Name: "Questions", Description: "Ask the community anything", Icon: "fa-question-circle"},
		{Name: "Announcements", Description: "Official updates and news", Icon: "fa-bullhorn"},
		{Name: "General Discussion", Description: "Anything and everything", Icon: "fa-comments"},
	}
}
