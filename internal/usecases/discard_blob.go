package usecases

import (
	"context"
	"log"
	"strings"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/visionffe/visionffe-api/internal/domain"
	"github.com/visionffe/visionffe-api/internal/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// DiscardBlob defines the interface for the DiscardBlob use case.
type DiscardBlob interface {
	Execute(ctx context.Context, event domain.BlobEvent) error
}

// DiscardBlobImpl deletes blobs that are no longer referenced.
type DiscardBlobImpl struct {
	store  domain.ObjectStore
	logger *log.Logger
}

// NewDiscardBlobImpl creates a new instance of DiscardBlobImpl.
func NewDiscardBlobImpl(store domain.ObjectStore, logger *log.Logger) DiscardBlobImpl {
	return DiscardBlobImpl{store: store, logger: logger}
}

// Execute deletes the blob named by the event. A blob that is already gone is not an error.
func (db DiscardBlobImpl) Execute(ctx context.Context, event domain.BlobEvent) error {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("blob.url", event.URL),
		attribute.String("blob.event", string(event.Type)),
	))
	defer span.End()

	if strings.TrimSpace(event.URL) == "" {
		err := domain.NewValidationErr("blob url is required")
		telemetry.RecordErrorAndStatus(span, err)
		return err
	}

	deleted, err := db.store.Delete(spanCtx, event.URL)
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}

	if deleted {
		db.logger.Printf("DiscardBlob: deleted %s (%s)", event.URL, event.Reason)
	}
	return nil
}

// InitDiscardBlob initializes the DiscardBlob use case and registers it in the dependency container.
type InitDiscardBlob struct {
	Store  domain.ObjectStore `resolve:""`
	Logger *log.Logger        `resolve:""`
}

// Initialize registers the DiscardBlob use case.
func (idb InitDiscardBlob) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[DiscardBlob](NewDiscardBlobImpl(idb.Store, idb.Logger))
	return ctx, nil
}
