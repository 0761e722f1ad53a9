package workers

import (
	"context"
	"log"
	"time"

	"github.com/visionffe/visionffe-api/internal/usecases"
)

// MessageRelay is a runnable that drains the outbox into Pub/Sub: catalog and project
// events for downstream consumers, blob events for the BlobJanitor.
type MessageRelay struct {
	RelayOutbox         usecases.RelayOutbox `resolve:""`
	Logger              *log.Logger          `resolve:""`
	Interval            time.Duration        `config:"OUTBOX_RELAY_INTERVAL" default:"500ms"`
	FlushTimeout        time.Duration        `config:"OUTBOX_RELAY_FLUSH_TIMEOUT" default:"2s"`
	workerExecutionChan chan struct{}
}

// Run relays a batch on every tick. A failing relay is logged once per failure streak.
// On shutdown one last batch is relayed so blobs queued for removal by in-flight requests
// are not left until the next start.
func (mr MessageRelay) Run(ctx context.Context) error {
	mr.Logger.Println("MessageRelay: running...")
	ticker := time.NewTicker(mr.Interval)
	defer ticker.Stop()

	failing := false
	for {
		select {
		case <-ticker.C:
			err := mr.RelayOutbox.Execute(ctx)
			switch {
			case err != nil && !failing:
				mr.Logger.Printf("MessageRelay: error relaying outbox batch: %v", err)
				failing = true
			case err == nil && failing:
				mr.Logger.Println("MessageRelay: outbox relay recovered")
				failing = false
			}
			if mr.workerExecutionChan != nil {
				mr.workerExecutionChan <- struct{}{}
			}
		case <-ctx.Done():
			mr.flush(ctx)
			mr.Logger.Println("MessageRelay: stopping...")
			return nil
		}
	}
}

func (mr MessageRelay) flush(ctx context.Context) {
	if mr.FlushTimeout <= 0 {
		return
	}
	flushCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), mr.FlushTimeout)
	defer cancel()

	if err := mr.RelayOutbox.Execute(flushCtx); err != nil {
		mr.Logger.Printf("MessageRelay: error flushing outbox on shutdown: %v", err)
	}
}
