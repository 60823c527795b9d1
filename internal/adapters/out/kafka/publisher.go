// Package kafka implements the outbound event publisher on top of
// franz-go. Staged outbox messages are routed to the saga topics by event
// type and produced with all-ISR acknowledgement.
package kafka

import (
	"context"
	"fmt"
	"time"

	"github.com/twmb/franz-go/pkg/kgo"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"
)

// KafkaEventPublisher implements ports.EventPublisher. Payment-leg events
// (created, cancelling, cancelled) go to the payment request topic;
// approval-leg events (paid) go to the restaurant approval request topic.
type KafkaEventPublisher struct {
	client        *kgo.Client
	paymentTopic  string
	approvalTopic string
}

// NewKafkaEventPublisher creates a publisher connected to the given
// brokers. Records are acknowledged by all in-sync replicas before Publish
// returns, so a relayed outbox message is never lost by the broker.
func NewKafkaEventPublisher(
	brokers []string,
	paymentTopic, approvalTopic string,
) (*KafkaEventPublisher, error) {
	client, err := kgo.NewClient(
		kgo.SeedBrokers(brokers...),
		kgo.RequiredAcks(kgo.AllISRAcks()),
		kgo.ProducerLinger(10*time.Millisecond),
		kgo.ProducerBatchCompression(kgo.SnappyCompression()),
		kgo.ProduceRequestTimeout(10*time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("create kafka client: %w", err)
	}

	return &KafkaEventPublisher{
		client:        client,
		paymentTopic:  paymentTopic,
		approvalTopic: approvalTopic,
	}, nil
}

// Publish sends a single outbox message and returns once the broker
// acknowledged it. The message key keeps all events of one order on one
// partition, preserving their relative order for consumers.
func (p *KafkaEventPublisher) Publish(ctx context.Context, message *ports.OutboxMessage) error {
	topic, err := p.topicFor(message.EventType)
	if err != nil {
		return err
	}

	record := &kgo.Record{
		Topic: topic,
		Key:   []byte(message.Key),
		Value: message.Payload,
		Headers: []kgo.RecordHeader{
			{Key: "event_id", Value: []byte(message.EventID)},
			{Key: "event_type", Value: []byte(message.EventType)},
		},
	}

	if err = p.client.ProduceSync(ctx, record).FirstErr(); err != nil {
		return fmt.Errorf("produce %s to %s: %w", message.EventType, topic, err)
	}

	return nil
}

// Close flushes buffered records and closes the underlying client.
func (p *KafkaEventPublisher) Close() {
	p.client.Close()
}

func (p *KafkaEventPublisher) topicFor(eventType string) (string, error) {
	switch order.EventType(eventType) {
	case order.EventTypeCreated, order.EventTypeCancelling, order.EventTypeCancelled:
		return p.paymentTopic, nil
	case order.EventTypePaid:
		return p.approvalTopic, nil
	default:
		return "", fmt.Errorf("no topic mapped for event type %q", eventType)
	}
}
