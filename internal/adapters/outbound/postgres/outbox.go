package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/visionffe/visionffe-api/internal/domain"
	"github.com/visionffe/visionffe-api/internal/telemetry"
)

const defaultOutboxMaxRetries = 5

var (
	outboxEventFields = []string{
		"id",
		"entity_type",
		"entity_id",
		"topic",
		"event_type",
		"payload",
		"retry_count",
		"max_retries",
		"last_error",
		"created_at",
	}
)

// OutboxRepository implements the domain.OutboxRepository interface using PostgreSQL.
type OutboxRepository struct {
	sb squirrel.StatementBuilderType
}

// NewOutboxRepository creates a new instance of OutboxRepository.
func NewOutboxRepository(br squirrel.BaseRunner) OutboxRepository {
	return OutboxRepository{
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).RunWith(br),
	}
}

// CreateCatalogEvent records a catalog event in the outbox.
func (op OutboxRepository) CreateCatalogEvent(ctx context.Context, event domain.CatalogItemEvent) error {
	return op.createEvent(ctx, outboxRecord{
		entityType: domain.OutboxEntityType_CatalogItem,
		entityID:   event.ItemID,
		topic:      domain.OutboxTopic_Catalog,
		eventType:  event.Type,
		payload:    event,
		createdAt:  event.CreatedAt,
	})
}

// CreateProjectEvent records a project event in the outbox.
func (op OutboxRepository) CreateProjectEvent(ctx context.Context, event domain.ProjectItemEvent) error {
	return op.createEvent(ctx, outboxRecord{
		entityType: domain.OutboxEntityType_Project,
		entityID:   event.ProjectID.String(),
		topic:      domain.OutboxTopic_Projects,
		eventType:  event.Type,
		payload:    event,
		createdAt:  event.CreatedAt,
	})
}

// CreateBlobEvent records a blob cleanup event in the outbox.
func (op OutboxRepository) CreateBlobEvent(ctx context.Context, event domain.BlobEvent) error {
	return op.createEvent(ctx, outboxRecord{
		entityType: domain.OutboxEntityType_Blob,
		entityID:   event.URL,
		topic:      domain.OutboxTopic_Blobs,
		eventType:  event.Type,
		payload:    event,
		createdAt:  event.CreatedAt,
	})
}

type outboxRecord struct {
	entityType domain.OutboxEntityType
	entityID   string
	topic      domain.OutboxTopic
	eventType  domain.EventType
	payload    any
	createdAt  time.Time
}

func (op OutboxRepository) createEvent(ctx context.Context, record outboxRecord) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	payloadJSON, err := json.Marshal(record.payload)
	if telemetry.RecordErrorAndStatus(span, err) {
		return fmt.Errorf("failed to marshal event payload: %w", err)
	}

	_, err = op.sb.Insert("outbox_events").
		Columns(
			outboxEventFields...,
		).
		Values(
			uuid.New(),
			string(record.entityType),
			record.entityID,
			string(record.topic),
			string(record.eventType),
			payloadJSON,
			0,
			defaultOutboxMaxRetries,
			nil,
			record.createdAt,
		).
		ExecContext(spanCtx)

	if telemetry.RecordErrorAndStatus(span, err) {
		return fmt.Errorf("failed to insert outbox event: %w", err)
	}

	return nil
}

// FetchPendingEvents retrieves a batch of pending outbox events from the database.
func (op OutboxRepository) FetchPendingEvents(ctx context.Context, limit int) ([]domain.OutboxEvent, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	rows, err := op.sb.
		Select(
			outboxEventFields...,
		).
		From("outbox_events").
		Where(squirrel.Eq{"status": string(domain.OutboxStatus_Pending)}).
		OrderBy("created_at ASC").
		Limit(uint64(limit)).
		Suffix("FOR UPDATE SKIP LOCKED").
		QueryContext(spanCtx)

	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	var events []domain.OutboxEvent
	for rows.Next() {
		var oe domain.OutboxEvent
		err := rows.Scan(
			&oe.ID,
			&oe.EntityType,
			&oe.EntityID,
			&oe.Topic,
			&oe.EventType,
			&oe.Payload,
			&oe.RetryCount,
			&oe.MaxRetries,
			&oe.LastError,
			&oe.CreatedAt,
		)
		if telemetry.RecordErrorAndStatus(span, err) {
			return nil, err
		}
		oe.Status = domain.OutboxStatus_Pending

		events = append(events, oe)
	}

	if err := rows.Err(); telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	return events, nil
}

// UpdateEvent updates the status, retry count, and last error of an outbox event.
func (op OutboxRepository) UpdateEvent(ctx context.Context, eventID uuid.UUID, status domain.OutboxStatus, retryCount int, lastError string) error {
	_, err := op.sb.
		Update("outbox_events").
		Set("status", string(status)).
		Set("retry_count", retryCount).
		Set("last_error", lastError).
		Where(squirrel.Eq{"id": eventID}).
		ExecContext(ctx)

	return err
}

// DeleteEvent deletes an outbox event from the database.
func (op OutboxRepository) DeleteEvent(ctx context.Context, eventID uuid.UUID) error {
	_, err := op.sb.
		Delete("outbox_events").
		Where(squirrel.Eq{"id": eventID}).
		ExecContext(ctx)

	return err
}
