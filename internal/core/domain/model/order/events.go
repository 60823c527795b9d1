package order

import "time"

// EventType identifies the kind of a domain event on the wire and in the
// outbox table.
type EventType string

const (
	// EventTypeCreated is emitted when an order passes validation and is
	// initialized. It starts the payment leg of the saga.
	EventTypeCreated EventType = "order.created"

	// EventTypePaid is emitted when a pending order is marked paid. It
	// starts the restaurant-approval leg of the saga.
	EventTypePaid EventType = "order.paid"

	// EventTypeCancelling is emitted when a paid order is rejected and a
	// compensating refund must be requested from the payment service.
	EventTypeCancelling EventType = "order.cancelling"

	// EventTypeCancelled identifies the terminal cancellation event type.
	// It is routed by the publisher but the domain service does not emit
	// it; final cancellation completes without a follow-up message.
	EventTypeCancelled EventType = "order.cancelled"
)

// Event is a domain event produced by the order domain service. Events
// capture the aggregate at the moment of the state change together with the
// UTC time it occurred.
type Event interface {
	Order() *Order
	OccurredAt() time.Time
	Type() EventType
}

type event struct {
	order      *Order
	occurredAt time.Time
}

func (e event) Order() *Order         { return e.order }
func (e event) OccurredAt() time.Time { return e.occurredAt }

// CreatedEvent signals that an order was validated and initialized.
type CreatedEvent struct {
	event
}

// NewCreatedEvent creates a CreatedEvent for the given order.
func NewCreatedEvent(o *Order, occurredAt time.Time) CreatedEvent {
	return CreatedEvent{event{order: o, occurredAt: occurredAt}}
}

// Type returns EventTypeCreated.
func (e CreatedEvent) Type() EventType { return EventTypeCreated }

// PaidEvent signals that an order's payment was confirmed.
type PaidEvent struct {
	event
}

// NewPaidEvent creates a PaidEvent for the given order.
func NewPaidEvent(o *Order, occurredAt time.Time) PaidEvent {
	return PaidEvent{event{order: o, occurredAt: occurredAt}}
}

// Type returns EventTypePaid.
func (e PaidEvent) Type() EventType { return EventTypePaid }

// CancellingEvent signals that a paid order entered compensation and a
// refund must be requested.
type CancellingEvent struct {
	event
}

// NewCancellingEvent creates a CancellingEvent for the given order.
func NewCancellingEvent(o *Order, occurredAt time.Time) CancellingEvent {
	return CancellingEvent{event{order: o, occurredAt: occurredAt}}
}

// Type returns EventTypeCancelling.
func (e CancellingEvent) Type() EventType { return EventTypeCancelling }

// CancelledEvent signals that an order reached the terminal Canceled state.
type CancelledEvent struct {
	event
}

// NewCancelledEvent creates a CancelledEvent for the given order.
func NewCancelledEvent(o *Order, occurredAt time.Time) CancelledEvent {
	return CancelledEvent{event{order: o, occurredAt: occurredAt}}
}

// Type returns EventTypeCancelled.
func (e CancelledEvent) Type() EventType { return EventTypeCancelled }
