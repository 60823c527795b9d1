package ports

import "context"

// EventPublisher delivers staged outbox messages to the message broker.
type EventPublisher interface {
	// Publish sends a single message and returns once the broker
	// acknowledged it.
	Publish(ctx context.Context, message *OutboxMessage) error
}
