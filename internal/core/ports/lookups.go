package ports

import (
	"context"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/restaurant"
)

// RestaurantLookup loads the restaurant read model the domain service
// validates orders against.
type RestaurantLookup interface {
	// Get loads a restaurant with its menu filtered to the given products.
	// Returns an *errs.ObjectNotFoundError when the restaurant does not
	// exist; missing products simply do not appear in the result.
	Get(ctx context.Context, id kernel.RestaurantID, productIDs []kernel.ProductID) (*restaurant.Restaurant, error)
}

// CustomerLookup verifies customer existence before an order is accepted.
type CustomerLookup interface {
	// Exists returns nil when the customer is known and an
	// *errs.ObjectNotFoundError when it is not.
	Exists(ctx context.Context, id kernel.CustomerID) error
}
