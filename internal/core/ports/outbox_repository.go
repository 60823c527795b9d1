package ports

import (
	"context"
	"time"
)

// OutboxMessage is a serialized domain event staged for publication. It is
// written in the same transaction as the aggregate change and relayed to the
// broker asynchronously, so an event is published if and only if the state
// change committed.
type OutboxMessage struct {
	// ID is assigned by storage; insertion order gives relay order.
	ID int64

	// EventID uniquely identifies the event for consumer deduplication.
	EventID string

	// EventType routes the message to a broker topic.
	EventType string

	// Key is the partitioning key, the order identifier.
	Key string

	// Payload is the JSON-encoded event body.
	Payload []byte

	CreatedAt time.Time

	// SentAt is nil until the relay publishes the message.
	SentAt *time.Time
}

// OutboxRepository defines the persistence contract for staged events.
type OutboxRepository interface {
	// Add stages a message inside the current transaction.
	Add(ctx context.Context, message *OutboxMessage) error

	// FetchPending returns up to limit unsent messages in insertion order.
	FetchPending(ctx context.Context, limit int) ([]*OutboxMessage, error)

	// MarkSent records the publication time of a message.
	MarkSent(ctx context.Context, id int64, sentAt time.Time) error
}
