package commands

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/guard"
)

var ErrCancelOrderCommandIsNotConstructed = errors.New(
	"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
)

// CancelOrderCommand represents a final cancellation: either the refund for
// a rejected order completed, or the payment for a pending order failed.
type CancelOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.OrderID
	failureMessages []string

	guard guard.ConstructorGuard
}

// NewCancelOrderCommand creates a command to move an order to its terminal
// Canceled state. The failure messages may be empty.
func NewCancelOrderCommand(
	orderID kernel.OrderID,
	failureMessages []string,
) (CancelOrderCommand, error) {
	command := CancelOrderCommand{
		failureMessages: failureMessages,
		guard:           guard.NewConstructorGuard(),
	}

	if err := command.setOrderID(orderID); err != nil {
		return CancelOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to cancel.
func (c CancelOrderCommand) OrderID() kernel.OrderID {
	return c.orderID
}

// FailureMessages returns the cancellation reasons.
func (c CancelOrderCommand) FailureMessages() []string {
	return c.failureMessages
}

func (c *CancelOrderCommand) setOrderID(orderID kernel.OrderID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
