package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// OutboxStatus represents the processing lifecycle status of an outbox event.
type OutboxStatus string

const (
	// OutboxStatus_Pending indicates the event is ready to be processed.
	OutboxStatus_Pending OutboxStatus = "PENDING"
	// OutboxStatus_Failed indicates the event exceeded retries and stopped processing.
	OutboxStatus_Failed OutboxStatus = "FAILED"
)

// OutboxEntityType identifies the domain aggregate represented by an outbox event.
type OutboxEntityType string

const (
	OutboxEntityType_CatalogItem OutboxEntityType = "CatalogItem"
	OutboxEntityType_Project     OutboxEntityType = "Project"
	OutboxEntityType_Blob        OutboxEntityType = "Blob"
)

// OutboxTopic identifies the broker topic used for publishing outbox events.
type OutboxTopic string

const (
	OutboxTopic_Catalog  OutboxTopic = "Catalog"
	OutboxTopic_Projects OutboxTopic = "Projects"
	OutboxTopic_Blobs    OutboxTopic = "Blobs"
)

// OutboxEvent represents an event stored in the outbox.
type OutboxEvent struct {
	ID         uuid.UUID
	EntityType OutboxEntityType
	EntityID   string
	Topic      OutboxTopic
	EventType  EventType
	Payload    []byte
	Status     OutboxStatus
	RetryCount int
	MaxRetries int
	LastError  *string
	CreatedAt  time.Time
}

// OutboxRepository defines the interface for managing outbox events.
type OutboxRepository interface {
	// CreateCatalogEvent records a catalog event in the outbox.
	CreateCatalogEvent(ctx context.Context, event CatalogItemEvent) error
	// CreateProjectEvent records a project event in the outbox.
	CreateProjectEvent(ctx context.Context, event ProjectItemEvent) error
	// CreateBlobEvent records a blob cleanup event in the outbox.
	CreateBlobEvent(ctx context.Context, event BlobEvent) error
	// FetchPendingEvents retrieves a batch of pending outbox events.
	FetchPendingEvents(ctx context.Context, limit int) ([]OutboxEvent, error)
	// UpdateEvent updates the status, retry count, and last error of an outbox event.
	UpdateEvent(ctx context.Context, eventID uuid.UUID, status OutboxStatus, retryCount int, lastError string) error
	// DeleteEvent deletes an event from the outbox.
	DeleteEvent(ctx context.Context, eventID uuid.UUID) error
}
