package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	// EventType_CATALOG_ITEM_INDEXED is emitted when a catalog image is stored, embedded and indexed.
	EventType_CATALOG_ITEM_INDEXED EventType = "CATALOG_ITEM.INDEXED"
	// EventType_PROJECT_ITEM_EXTRACTED is emitted when an extracted item is added to a project.
	EventType_PROJECT_ITEM_EXTRACTED EventType = "PROJECT_ITEM.EXTRACTED"
	// EventType_BLOB_ORPHANED is emitted when a stored blob is left without an index entry.
	EventType_BLOB_ORPHANED EventType = "BLOB.ORPHANED"
	// EventType_BLOB_DISCARDED is emitted when a temporary blob is no longer needed.
	EventType_BLOB_DISCARDED EventType = "BLOB.DISCARDED"
)

// CatalogItemEvent represents a change of the catalog index.
type CatalogItemEvent struct {
	Type      EventType `json:"type"`
	ItemID    string    `json:"item_id"`
	ImageURL  string    `json:"image_url"`
	Category  string    `json:"category,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ProjectItemEvent represents a change of a project's extracted items.
type ProjectItemEvent struct {
	Type      EventType `json:"type"`
	ProjectID uuid.UUID `json:"project_id"`
	Name      string    `json:"name"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"created_at"`
}

// BlobEvent asks for a stored blob to be removed.
type BlobEvent struct {
	Type      EventType `json:"type"`
	URL       string    `json:"url"`
	Reason    string    `json:"reason"`
	CreatedAt time.Time `json:"created_at"`
}

// EventPublisher defines the interface for publishing events.
type EventPublisher interface {
	PublishEvent(ctx context.Context, event OutboxEvent) error
}
