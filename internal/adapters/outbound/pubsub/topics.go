package pubsub

import (
	"context"
	"fmt"
	"log"
	"strconv"

	pubsubV2 "cloud.google.com/go/pubsub/v2"
	"cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/visionffe/visionffe-api/internal/domain"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// BlobJanitorSubscription is the subscription consumed by the blob janitor worker.
const BlobJanitorSubscription = "blob-janitor"

// InitTopics creates the outbox topics and the blob janitor subscription when they are missing.
// It is meant for the emulator and local environments; in production they are provisioned up front.
type InitTopics struct {
	Logger     *log.Logger      `resolve:""`
	Client     *pubsubV2.Client `resolve:""`
	ProjectID  string           `config:"PUBSUB_PROJECT_ID"`
	AutoCreate string           `config:"PUBSUB_AUTO_CREATE_TOPICS" default:"false"`
}

// Initialize provisions the topics and subscriptions.
func (it InitTopics) Initialize(ctx context.Context) (context.Context, error) {
	enabled, err := strconv.ParseBool(it.AutoCreate)
	if err != nil {
		return ctx, fmt.Errorf("invalid PUBSUB_AUTO_CREATE_TOPICS value %q: %w", it.AutoCreate, err)
	}
	if !enabled {
		return ctx, nil
	}

	for _, topic := range []domain.OutboxTopic{
		domain.OutboxTopic_Catalog,
		domain.OutboxTopic_Projects,
		domain.OutboxTopic_Blobs,
	} {
		_, err := it.Client.TopicAdminClient.CreateTopic(ctx, &pubsubpb.Topic{
			Name: it.topicName(topic),
		})
		if err != nil && status.Code(err) != codes.AlreadyExists {
			return ctx, fmt.Errorf("failed to create topic %s: %w", topic, err)
		}
	}

	_, err = it.Client.SubscriptionAdminClient.CreateSubscription(ctx, &pubsubpb.Subscription{
		Name:  fmt.Sprintf("projects/%s/subscriptions/%s", it.ProjectID, BlobJanitorSubscription),
		Topic: it.topicName(domain.OutboxTopic_Blobs),
	})
	if err != nil && status.Code(err) != codes.AlreadyExists {
		return ctx, fmt.Errorf("failed to create subscription %s: %w", BlobJanitorSubscription, err)
	}

	it.Logger.Printf("InitTopics: outbox topics ready in project %s", it.ProjectID)
	return ctx, nil
}

func (it InitTopics) topicName(topic domain.OutboxTopic) string {
	return fmt.Sprintf("projects/%s/topics/%s", it.ProjectID, topic)
}
