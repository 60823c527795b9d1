// Package ports defines the contracts between the ordering core and the
// infrastructure adapters: repositories, lookups, the outbox, and the unit
// of work. These interfaces keep the domain free of persistence and
// messaging concerns.
package ports

import (
	"context"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be initialized and not already exist.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns the complete order with its items and failure messages.
	Get(ctx context.Context, id kernel.OrderID) (*order.Order, error)

	// GetByTrackingID retrieves an order aggregate by its public tracking
	// handle.
	GetByTrackingID(ctx context.Context, trackingID kernel.TrackingID) (*order.Order, error)
}
