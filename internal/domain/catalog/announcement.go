package catalog

import (
	"strings"

	"github.com/Mutombwa/kimberly-signature-scents/internal/domain/shared"
)

// Announcement is admin-authored broadcast content. Reads are public;
// create, update and delete require the admin role.
type Announcement struct {
	shared.BaseEntity
	Title    string
	Category string
	Content  string
	Image    string
	IsPinned bool
	AuthorID int64

	// Joined author field, populated on reads
	AuthorName string
}

// NewAnnouncement creates an announcement authored by the given admin
func NewAnnouncement(authorID int64, title, category, content, image string, isPinned bool) (*Announcement, error) {
	if err := validateAnnouncement(title, category, content); err != nil {
		return nil, err
	}

	return &Announcement{
		BaseEntity: shared.NewBaseEntity(),
		Title:      strings.TrimSpace(title),
		Category:   category,
		Content:    content,
		Image:      image,
		IsPinned:   isPinned,
		AuthorID:   authorID,
	}, nil
}

// Edit replaces the announcement's content fields
func (a *Announcement) Edit(title, category, content, image string, isPinned bool) error {
	if err := validateAnnouncement(title, category, content); err != nil {
		return err
	}

	a.Title = strings.TrimSpace(title)
	a.Category = category
	a.Content = content
	a.Image = image
	a.IsPinned = isPinned
	a.Touch()

	return nil
}

func validateAnnouncement(title, category, content string) error {
	if strings.TrimSpace(title) == "" || strings.TrimSpace(category) == "" || strings.TrimSpace(content) == "" {
		return shared.NewDomainError("VALIDATION_ERROR", "Title, category, and content are required")
	}
	return nil
}
