package pubsub

import (
	"context"
	"fmt"
	"log"

	pubsubV2 "cloud.google.com/go/pubsub/v2"
	"github.com/cleitonmarx/symbiont/depend"
)

// InitClient creates the Pub/Sub client used by the outbox relay and the blob janitor.
type InitClient struct {
	Logger       *log.Logger `resolve:""`
	ProjectID    string      `config:"PUBSUB_PROJECT_ID"`
	EmulatorHost string      `config:"PUBSUB_EMULATOR_HOST" default:"-"`
	client       *pubsubV2.Client
}

// Initialize creates the client, unless one was injected, and registers it in the dependency container.
func (i *InitClient) Initialize(ctx context.Context) (context.Context, error) {
	if i.client == nil {
		client, err := pubsubV2.NewClient(ctx, i.ProjectID)
		if err != nil {
			return ctx, fmt.Errorf("failed to create pubsub client: %w", err)
		}
		i.client = client
		if i.EmulatorHost != "-" {
			i.Logger.Printf("InitClient: using pubsub emulator at %s for project %s", i.EmulatorHost, i.ProjectID)
		}
	}

	depend.Register(i.client)

	return ctx, nil
}

// Close closes the client.
func (i *InitClient) Close() {
	if i.client == nil {
		return
	}
	if err := i.client.Close(); err != nil {
		i.Logger.Printf("InitClient: failed to close pubsub client: %v", err)
	}
}
