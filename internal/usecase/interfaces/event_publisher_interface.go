package interfaces

import "context"

//go:generate mockgen -source=event_publisher_interface.go -destination=mocks/event_publisher_mock.go -package=mock_interfaces

// IEventPublisher publishes domain notifications to a named topic.
// Publication is best-effort and at-most-once: callers log failures and never
// retry or surface them.
type IEventPublisher interface {
	Publish(ctx context.Context, topic string, payload any) error
}
