package workers

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"cloud.google.com/go/pubsub/v2"
	"github.com/visionffe/visionffe-api/internal/domain"
	"github.com/visionffe/visionffe-api/internal/usecases"
)

// BlobJanitor consumes orphaned and discarded blob events from Pub/Sub
// and deletes the blobs from object storage.
type BlobJanitor struct {
	Logger              *log.Logger          `resolve:""`
	Client              *pubsub.Client       `resolve:""`
	DiscardBlob         usecases.DiscardBlob `resolve:""`
	SubscriptionID      string               `config:"BLOB_JANITOR_SUBSCRIPTION_ID" default:"blob-janitor"`
	workerExecutionChan chan struct{}
}

// Run receives blob events until the context is cancelled.
func (j BlobJanitor) Run(ctx context.Context) error {
	j.Logger.Println("BlobJanitor: running...")

	err := j.Client.Subscriber(j.SubscriptionID).Receive(ctx, func(ctx context.Context, msg *pubsub.Message) {
		if err := j.process(ctx, msg.Data); err != nil {
			j.Logger.Printf("BlobJanitor: failed to process message %s: %v", msg.ID, err)
			msg.Nack()
		} else {
			msg.Ack()
		}
		if j.workerExecutionChan != nil {
			j.workerExecutionChan <- struct{}{}
		}
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	j.Logger.Println("BlobJanitor: stopping...")
	return nil
}

// process returns an error only when the message should be redelivered.
// Undecodable or invalid events are dropped.
func (j BlobJanitor) process(ctx context.Context, data []byte) error {
	var event domain.BlobEvent
	if err := json.Unmarshal(data, &event); err != nil {
		j.Logger.Printf("BlobJanitor: dropping undecodable event: %v", err)
		return nil
	}

	err := j.DiscardBlob.Execute(ctx, event)
	var validationErr *domain.ValidationErr
	if errors.As(err, &validationErr) {
		j.Logger.Printf("BlobJanitor: dropping invalid %s event: %v", event.Type, err)
		return nil
	}
	return err
}
