package eventbus

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"sync"

	"lazarus_guide/internal/usecase/interfaces"

	"cloud.google.com/go/pubsub"
	"google.golang.org/api/option"
)

// PubSubPublisher publishes guide notifications to Google Cloud Pub/Sub.
// Topic handles are cached per topic name. Delivery is at-most-once from the
// service's point of view: callers treat a failed publish as a logged no-op.
type PubSubPublisher struct {
	client *pubsub.Client

	mu     sync.Mutex
	topics map[string]*pubsub.Topic
}

var _ interfaces.IEventPublisher = (*PubSubPublisher)(nil)

// NewPubSubPublisher builds a publisher using Application Default Credentials
// unless PUBSUB_CREDENTIALS_JSON is provided. The project is resolved from
// PUBSUB_PROJECT_ID, then GOOGLE_CLOUD_PROJECT.
func NewPubSubPublisher(ctx context.Context) (*PubSubPublisher, error) {
	projectID := os.Getenv("PUBSUB_PROJECT_ID")
	if projectID == "" {
		projectID = os.Getenv("GOOGLE_CLOUD_PROJECT")
	}
	if projectID == "" {
		return nil, errors.New("PUBSUB_PROJECT_ID/GOOGLE_CLOUD_PROJECT not set")
	}

	var (
		client *pubsub.Client
		err    error
	)
	if credJSON := os.Getenv("PUBSUB_CREDENTIALS_JSON"); credJSON != "" {
		client, err = pubsub.NewClient(ctx, projectID, option.WithCredentialsJSON([]byte(credJSON)))
	} else {
		client, err = pubsub.NewClient(ctx, projectID)
	}
	if err != nil {
		return nil, err
	}

	return &PubSubPublisher{
		client: client,
		topics: map[string]*pubsub.Topic{},
	}, nil
}

func (p *PubSubPublisher) topic(name string) *pubsub.Topic {
	p.mu.Lock()
	defer p.mu.Unlock()
	t, ok := p.topics[name]
	if !ok {
		t = p.client.Topic(name)
		p.topics[name] = t
	}
	return t
}

func (p *PubSubPublisher) Publish(ctx context.Context, topic string, payload any) error {
	if topic == "" {
		return errors.New("topic is required")
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	result := p.topic(topic).Publish(ctx, &pubsub.Message{Data: data})
	_, err = result.Get(ctx)
	return err
}

func (p *PubSubPublisher) Close() error {
	p.mu.Lock()
	for _, t := range p.topics {
		t.Stop()
	}
	p.mu.Unlock()
	return p.client.Close()
}
