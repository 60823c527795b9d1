package order

import (
	"fmt"

	"ordering/internal/pkg/errs"
)

// Status represents the lifecycle state of an order inside the payment and
// restaurant-approval saga. It implements a state machine with defined
// transitions; status only moves forward, never backward.
//
// State transitions:
//
//	Pending ──> Paid ──> Approved            (terminal success)
//	              │
//	              └──> Canceling ──> Canceled (terminal failure after payment)
//	Pending ─────────────────────> Canceled  (terminal failure before payment)
//
// No transition leaves Approved or Canceled.
type Status int

const (
	// Unknown represents an order that has not been initialized yet.
	// This value (0) is what a freshly constructed order carries before
	// Initialize assigns its identifiers.
	Unknown Status = iota

	// Pending is assigned at initialization; the order awaits payment.
	Pending

	// Paid means the payment service confirmed the charge; the order
	// awaits restaurant approval.
	Paid

	// Approved means the restaurant accepted the order. Terminal.
	Approved

	// Canceling means the restaurant rejected a paid order and a
	// compensating payment refund is in flight.
	Canceling

	// Canceled is the terminal failure state, reached either from
	// Canceling (refund path) or directly from Pending (payment failed).
	Canceled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		Paid:      "Paid",
		Approved:  "Approved",
		Canceling: "Canceling",
		Canceled:  "Canceled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "Pending",
		Paid:      "Paid",
		Approved:  "Approved",
		Canceling: "Canceling",
		Canceled:  "Canceled",
	}
}

// Validate checks that the Status value is one of the defined lifecycle
// states. Unknown (0) and out-of-range values are invalid; this is used when
// reconstructing orders from persistence or external input.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status. Safe to call on any
// value; unrecognized values render as "Unknown".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Pay transitions the status to Paid.
//
// Valid transitions:
//   - Pending -> Paid
//
// Returns (0, *InvalidStateTransitionError) from any other status.
func (s Status) Pay() (Status, error) {
	if s != Pending {
		return 0, NewInvalidStateTransitionError("pay", s)
	}
	return Paid, nil
}

// Approve transitions the status to Approved.
//
// Valid transitions:
//   - Paid -> Approved
//
// Returns (0, *InvalidStateTransitionError) from any other status.
// Approved is terminal; no further transition leaves it.
func (s Status) Approve() (Status, error) {
	if s != Paid {
		return 0, NewInvalidStateTransitionError("approve", s)
	}
	return Approved, nil
}

// InitCancel transitions the status to Canceling, the compensation state
// entered when a paid order is rejected by the restaurant.
//
// Valid transitions:
//   - Paid -> Canceling
//
// Returns (0, *InvalidStateTransitionError) from any other status.
func (s Status) InitCancel() (Status, error) {
	if s != Paid {
		return 0, NewInvalidStateTransitionError("initCancel", s)
	}
	return Canceling, nil
}

// Cancel transitions the status to Canceled.
//
// Valid transitions:
//   - Canceling -> Canceled (refund completed)
//   - Pending -> Canceled (payment failed before any charge)
//
// Returns (0, *InvalidStateTransitionError) from any other status.
// Canceled is terminal; no further transition leaves it.
func (s Status) Cancel() (Status, error) {
	if s != Canceling && s != Pending {
		return 0, NewInvalidStateTransitionError("cancel", s)
	}
	return Canceled, nil
}
