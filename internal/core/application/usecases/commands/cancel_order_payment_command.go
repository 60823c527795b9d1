package commands

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/guard"
)

var ErrCancelOrderPaymentCommandIsNotConstructed = errors.New(
	"CancelOrderPaymentCommand must be created via NewCancelOrderPaymentCommand constructor",
)

// CancelOrderPaymentCommand represents a restaurant rejection of a paid
// order. It starts the compensation leg of the saga: the order enters
// Canceling and a refund is requested.
type CancelOrderPaymentCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.OrderID
	failureMessages []string

	guard guard.ConstructorGuard
}

// NewCancelOrderPaymentCommand creates a command to start compensation for
// a paid order. The failure messages explain the rejection and may be
// empty.
func NewCancelOrderPaymentCommand(
	orderID kernel.OrderID,
	failureMessages []string,
) (CancelOrderPaymentCommand, error) {
	command := CancelOrderPaymentCommand{
		failureMessages: failureMessages,
		guard:           guard.NewConstructorGuard(),
	}

	if err := command.setOrderID(orderID); err != nil {
		return CancelOrderPaymentCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelOrderPaymentCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderPaymentCommandIsNotConstructed)
}

// OrderID returns the identifier of the rejected order.
func (c CancelOrderPaymentCommand) OrderID() kernel.OrderID {
	return c.orderID
}

// FailureMessages returns the rejection reasons.
func (c CancelOrderPaymentCommand) FailureMessages() []string {
	return c.failureMessages
}

func (c *CancelOrderPaymentCommand) setOrderID(orderID kernel.OrderID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
