package order

import (
	"errors"
	"fmt"
)

// Sentinel errors for the order domain taxonomy. Callers classify failures
// with errors.Is; the structured types below carry the details.
var (
	// ErrInvalidState is the class of failures where an operation is
	// attempted on an aggregate whose lifecycle has not reached (or has
	// passed) the required point, e.g. initializing twice.
	ErrInvalidState = errors.New("order state is invalid")

	// ErrInvalidStateTransition is the class of failures where a status
	// change is requested that the state machine does not allow.
	ErrInvalidStateTransition = errors.New("order status transition is not allowed")

	// ErrInvalidPrice is the class of price validation failures: a
	// non-positive total, an unconfirmed item price, or a total that does
	// not match the sum of item subtotals.
	ErrInvalidPrice = errors.New("order price is invalid")
)

// InvalidStateError reports an operation attempted outside its legal
// lifecycle window. The aggregate is left unmodified.
type InvalidStateError struct {
	Details string
}

// NewInvalidStateError creates an InvalidStateError with the given details.
func NewInvalidStateError(details string) *InvalidStateError {
	return &InvalidStateError{Details: details}
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("%s: %s", ErrInvalidState, e.Details)
}

func (e *InvalidStateError) Unwrap() error {
	return ErrInvalidState
}

// InvalidStateTransitionError reports a disallowed status transition. It
// names the attempted operation and the status the order was in, so callers
// can surface a precise, recoverable error.
type InvalidStateTransitionError struct {
	Operation string
	Status    Status
}

// NewInvalidStateTransitionError creates an InvalidStateTransitionError for
// the given operation and current status.
func NewInvalidStateTransitionError(operation string, status Status) *InvalidStateTransitionError {
	return &InvalidStateTransitionError{
		Operation: operation,
		Status:    status,
	}
}

func (e *InvalidStateTransitionError) Error() string {
	return fmt.Sprintf("%s: %s is not allowed for status %s",
		ErrInvalidStateTransition, e.Operation, e.Status)
}

func (e *InvalidStateTransitionError) Unwrap() error {
	return ErrInvalidStateTransition
}

// InvalidPriceError reports a price validation failure. The details always
// identify the offending amount or product.
type InvalidPriceError struct {
	Details string
}

// NewInvalidPriceError creates an InvalidPriceError with the given details.
func NewInvalidPriceError(details string) *InvalidPriceError {
	return &InvalidPriceError{Details: details}
}

func (e *InvalidPriceError) Error() string {
	return fmt.Sprintf("%s: %s", ErrInvalidPrice, e.Details)
}

func (e *InvalidPriceError) Unwrap() error {
	return ErrInvalidPrice
}
