package domain

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

const projectNameMaxLength = 100

// ExtractedItem is an item image isolated from a project's room photos.
type ExtractedItem struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Project groups a user's room photos and the items extracted from them.
type Project struct {
	ID             uuid.UUID
	OwnerUserID    string
	Name           string
	PhotoURLs      []string
	ExtractedItems []ExtractedItem
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NormalizeProjectName trims the name and validates its length.
func NormalizeProjectName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", NewValidationErr("project name is required")
	}
	if utf8.RuneCountInString(name) > projectNameMaxLength {
		return "", NewValidationErr("project name must be at most 100 characters")
	}
	return name, nil
}

// Validate checks the invariants of the project.
func (p Project) Validate() error {
	if p.ID == uuid.Nil {
		return NewValidationErr("project id is required")
	}
	if p.OwnerUserID == "" {
		return NewValidationErr("project owner is required")
	}
	if _, err := NormalizeProjectName(p.Name); err != nil {
		return err
	}
	return nil
}

// OwnedBy reports whether the project belongs to the user.
func (p Project) OwnedBy(userID string) bool {
	return p.OwnerUserID == userID
}

// AddPhotos appends photo URLs in order and advances UpdatedAt.
func (p *Project) AddPhotos(urls []string, now time.Time) {
	if len(urls) == 0 {
		return
	}
	p.PhotoURLs = append(p.PhotoURLs, urls...)
	p.touch(now)
}

// AddExtractedItem appends an extracted item and advances UpdatedAt.
func (p *Project) AddExtractedItem(item ExtractedItem, now time.Time) {
	p.ExtractedItems = append(p.ExtractedItems, item)
	p.touch(now)
}

func (p *Project) touch(now time.Time) {
	if now.After(p.UpdatedAt) {
		p.UpdatedAt = now
	}
}

// ProjectRepository persists project aggregates.
type ProjectRepository interface {
	// CreateProject inserts a new project.
	CreateProject(ctx context.Context, project Project) error
	// GetProject returns the project owned by ownerUserID, if any.
	GetProject(ctx context.Context, id uuid.UUID, ownerUserID string) (Project, bool, error)
	// ListProjects returns the projects owned by ownerUserID, newest first.
	ListProjects(ctx context.Context, ownerUserID string) ([]Project, error)
	// UpdateProject saves photo URLs, extracted items and UpdatedAt.
	UpdateProject(ctx context.Context, project Project) error
	// ProjectNameExists reports whether the owner already has a project with the name.
	ProjectNameExists(ctx context.Context, ownerUserID, name string) (bool, error)
}
