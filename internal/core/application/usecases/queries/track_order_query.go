// Package queries contains read-only operations in the CQRS architecture.
// Query handlers read the database directly and bypass the domain model.
package queries

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/guard"
)

var ErrTrackOrderQueryIsNotConstructed = errors.New(
	"TrackOrderQuery must be created via NewTrackOrderQuery constructor",
)

// TrackOrderQuery retrieves the current status of an order by its public
// tracking handle.
//
// Example:
//
//	query, err := NewTrackOrderQuery(trackingID)
//	if err != nil {
//	    return err
//	}
//
//	status, err := handler.Handle(ctx, query)
type TrackOrderQuery struct { //nolint:recvcheck //using for validation
	trackingID kernel.TrackingID

	guard guard.ConstructorGuard
}

// NewTrackOrderQuery creates a query for the given tracking identifier.
func NewTrackOrderQuery(trackingID kernel.TrackingID) (TrackOrderQuery, error) {
	query := TrackOrderQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setTrackingID(trackingID); err != nil {
		return TrackOrderQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q TrackOrderQuery) Validate() error {
	return q.guard.Validate(ErrTrackOrderQueryIsNotConstructed)
}

// TrackingID returns the tracking identifier being queried.
func (q TrackOrderQuery) TrackingID() kernel.TrackingID {
	return q.trackingID
}

func (q *TrackOrderQuery) setTrackingID(trackingID kernel.TrackingID) error {
	if err := trackingID.Validate(); err != nil {
		return err
	}

	q.trackingID = trackingID
	return nil
}

// TrackOrderQueryResponse is the public view of an order's progress: the
// tracking handle, the lifecycle status, and any cancellation reasons.
type TrackOrderQueryResponse struct {
	TrackingID      kernel.TrackingID
	Status          order.Status
	FailureMessages []string
}
