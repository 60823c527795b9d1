package queries

import (
	"context"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"
)

// TrackOrderQueryHandler answers tracking queries straight from the orders
// table, without loading the aggregate.
type TrackOrderQueryHandler struct {
	db *gorm.DB
}

// NewTrackOrderQueryHandler creates a handler for order tracking queries.
// Requires a GORM database connection for query execution.
func NewTrackOrderQueryHandler(db *gorm.DB) TrackOrderQueryHandler {
	return TrackOrderQueryHandler{db: db}
}

// Handle looks up the order by tracking identifier. Returns an
// *errs.ObjectNotFoundError when no order carries the handle.
func (h TrackOrderQueryHandler) Handle(
	ctx context.Context,
	query TrackOrderQuery,
) (TrackOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return TrackOrderQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			status,
			failure_messages
		FROM orders
		WHERE tracking_id = ?
	`, query.TrackingID().Bytes()).Rows()
	if err != nil {
		return TrackOrderQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return TrackOrderQueryResponse{}, err
		}
		return TrackOrderQueryResponse{}, errs.NewObjectNotFoundError("order", query.TrackingID())
	}

	var status int
	var failureMessages pq.StringArray
	if err = rows.Scan(&status, &failureMessages); err != nil {
		return TrackOrderQueryResponse{}, err
	}

	return TrackOrderQueryResponse{
		TrackingID:      query.TrackingID(),
		Status:          order.Status(status),
		FailureMessages: failureMessages,
	}, nil
}
