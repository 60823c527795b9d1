package kernel

import (
	"fmt"

	"ordering/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrIDIsNotConstructed indicates that an identifier was not created through
// one of the constructor functions. It is returned when validating a
// zero-value ID.
var ErrIDIsNotConstructed = errs.NewValueIsRequiredError(
	"ID must be created via its New*ID, *IDFromString, or *IDFromBytes constructor",
)

// ID is a typed identifier value object. It wraps github.com/google/uuid and
// takes a tag type parameter so identifiers of different entities stay
// incompatible at compile time: an OrderID cannot be passed where a
// CustomerID is expected even though both are UUIDs underneath.
//
// The zero value is invalid and fails Validate; identifiers must be created
// through the typed constructors below.
type ID[T any] struct {
	id uuid.UUID
}

// Tag types distinguishing identifier families. They carry no data.
type (
	orderTag      struct{}
	customerTag   struct{}
	restaurantTag struct{}
	trackingTag   struct{}
	productTag    struct{}
)

// Typed identifiers for every entity family in the ordering domain.
type (
	// OrderID identifies an order aggregate. Assigned exactly once, when
	// the order is initialized.
	OrderID = ID[orderTag]

	// CustomerID identifies the customer who placed an order.
	CustomerID = ID[customerTag]

	// RestaurantID identifies the restaurant an order is placed with.
	RestaurantID = ID[restaurantTag]

	// TrackingID is the public handle customers use to query order status.
	// Assigned together with OrderID at initialization.
	TrackingID = ID[trackingTag]

	// ProductID identifies a restaurant product referenced by order items.
	ProductID = ID[productTag]
)

func newID[T any]() ID[T] {
	return ID[T]{id: uuid.New()}
}

func idFromString[T any](s string) (ID[T], error) {
	parsed, err := uuid.Parse(s)
	if err != nil {
		return ID[T]{}, fmt.Errorf("invalid ID format: %w", err)
	}
	return ID[T]{id: parsed}, nil
}

func idFromBytes[T any](b []byte) (ID[T], error) {
	parsed, err := uuid.FromBytes(b)
	if err != nil {
		return ID[T]{}, fmt.Errorf("invalid ID format: %w", err)
	}

	newID := ID[T]{id: parsed}
	if err = newID.Validate(); err != nil {
		return ID[T]{}, err
	}

	return newID, nil
}

// NewOrderID generates a fresh random order identifier.
func NewOrderID() OrderID { return newID[orderTag]() }

// NewCustomerID generates a fresh random customer identifier.
func NewCustomerID() CustomerID { return newID[customerTag]() }

// NewRestaurantID generates a fresh random restaurant identifier.
func NewRestaurantID() RestaurantID { return newID[restaurantTag]() }

// NewTrackingID generates a fresh random tracking identifier.
func NewTrackingID() TrackingID { return newID[trackingTag]() }

// NewProductID generates a fresh random product identifier.
func NewProductID() ProductID { return newID[productTag]() }

// OrderIDFromString parses an order identifier from its string form.
func OrderIDFromString(s string) (OrderID, error) { return idFromString[orderTag](s) }

// CustomerIDFromString parses a customer identifier from its string form.
func CustomerIDFromString(s string) (CustomerID, error) { return idFromString[customerTag](s) }

// RestaurantIDFromString parses a restaurant identifier from its string form.
func RestaurantIDFromString(s string) (RestaurantID, error) { return idFromString[restaurantTag](s) }

// TrackingIDFromString parses a tracking identifier from its string form.
func TrackingIDFromString(s string) (TrackingID, error) { return idFromString[trackingTag](s) }

// ProductIDFromString parses a product identifier from its string form.
func ProductIDFromString(s string) (ProductID, error) { return idFromString[productTag](s) }

// OrderIDFromBytes builds an order identifier from a 16-byte slice.
func OrderIDFromBytes(b []byte) (OrderID, error) { return idFromBytes[orderTag](b) }

// CustomerIDFromBytes builds a customer identifier from a 16-byte slice.
func CustomerIDFromBytes(b []byte) (CustomerID, error) { return idFromBytes[customerTag](b) }

// RestaurantIDFromBytes builds a restaurant identifier from a 16-byte slice.
func RestaurantIDFromBytes(b []byte) (RestaurantID, error) { return idFromBytes[restaurantTag](b) }

// TrackingIDFromBytes builds a tracking identifier from a 16-byte slice.
func TrackingIDFromBytes(b []byte) (TrackingID, error) { return idFromBytes[trackingTag](b) }

// ProductIDFromBytes builds a product identifier from a 16-byte slice.
func ProductIDFromBytes(b []byte) (ProductID, error) { return idFromBytes[productTag](b) }

// String returns the canonical textual form of the identifier.
func (i ID[T]) String() string {
	return i.id.String()
}

// Bytes returns the underlying uuid.UUID value for persistence mapping.
func (i ID[T]) Bytes() uuid.UUID {
	return i.id
}

// IsEqual compares two identifiers of the same family for equality.
func (i ID[T]) IsEqual(other ID[T]) bool {
	return i.id == other.id
}

// Validate reports whether the identifier was properly constructed.
// A zero-value identifier returns ErrIDIsNotConstructed.
func (i ID[T]) Validate() error {
	if i.id == uuid.Nil {
		return ErrIDIsNotConstructed
	}
	return nil
}
