package usecases

import (
	"context"
	"log"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/visionffe/visionffe-api/internal/domain"
	"github.com/visionffe/visionffe-api/internal/telemetry"
)

// relayBatchSize is the maximum number of events relayed per run.
const relayBatchSize = 100

// RelayOutbox defines the interface for relaying outbox events.
type RelayOutbox interface {
	// Execute publishes pending outbox events and removes the delivered ones.
	Execute(ctx context.Context) error
}

// RelayOutboxImpl moves outbox events to the message broker.
type RelayOutboxImpl struct {
	uow       domain.UnitOfWork
	publisher domain.EventPublisher
	logger    *log.Logger
}

// NewRelayOutboxImpl creates a new instance of RelayOutboxImpl.
func NewRelayOutboxImpl(uow domain.UnitOfWork, publisher domain.EventPublisher, logger *log.Logger) RelayOutboxImpl {
	return RelayOutboxImpl{uow: uow, publisher: publisher, logger: logger}
}

// Execute publishes up to relayBatchSize pending events inside one transaction.
func (r RelayOutboxImpl) Execute(ctx context.Context) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	err := r.uow.Execute(spanCtx, func(uow domain.UnitOfWork) error {
		events, err := uow.Outbox().FetchPendingEvents(spanCtx, relayBatchSize)
		if err != nil {
			return err
		}

		for _, event := range events {
			if err := r.relayEvent(spanCtx, uow, event); err != nil {
				r.logger.Printf("RelayOutbox: relay failed for %s event %s: %v", event.EventType, event.ID, err)
			}
		}
		return nil
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	return nil
}

// relayEvent publishes one event. Delivered events are deleted; failed ones are retried
// until MaxRetries and then parked as FAILED.
func (r RelayOutboxImpl) relayEvent(ctx context.Context, uow domain.UnitOfWork, event domain.OutboxEvent) error {
	if err := r.publisher.PublishEvent(ctx, event); err != nil {
		retries := event.RetryCount + 1
		status := domain.OutboxStatus_Pending
		if retries >= event.MaxRetries {
			status = domain.OutboxStatus_Failed
		}
		if updErr := uow.Outbox().UpdateEvent(ctx, event.ID, status, retries, err.Error()); updErr != nil {
			return updErr
		}
		return err
	}
	return uow.Outbox().DeleteEvent(ctx, event.ID)
}

// InitRelayOutbox initializes the RelayOutbox use case and registers it in the dependency container.
type InitRelayOutbox struct {
	Uow       domain.UnitOfWork     `resolve:""`
	Logger    *log.Logger           `resolve:""`
	Publisher domain.EventPublisher `resolve:""`
}

// Initialize registers the RelayOutbox use case.
func (iro InitRelayOutbox) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[RelayOutbox](NewRelayOutboxImpl(iro.Uow, iro.Publisher, iro.Logger))
	return ctx, nil
}
