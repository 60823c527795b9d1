package commands

import (
	"context"

	"ordering/internal/core/domain/services"
)

// CancelOrderPaymentCommandHandler handles restaurant rejections of paid
// orders: it moves the order to Canceling, records the failure messages,
// and stages the event that requests a refund from the payment service.
type CancelOrderPaymentCommandHandler struct {
	uowFactory   OrderUoWFactory
	orderService *services.OrderService
}

// NewCancelOrderPaymentCommandHandler creates a handler for starting order
// compensation.
func NewCancelOrderPaymentCommandHandler(
	uowFactory OrderUoWFactory,
	orderService *services.OrderService,
) CancelOrderPaymentCommandHandler {
	return CancelOrderPaymentCommandHandler{
		uowFactory:   uowFactory,
		orderService: orderService,
	}
}

// Handle loads the order, starts compensation, and persists the updated
// aggregate together with the staged refund request in one transaction.
func (h *CancelOrderPaymentCommandHandler) Handle(
	ctx context.Context,
	cmd CancelOrderPaymentCommand,
) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	ev, err := h.orderService.CancelOrderPayment(o, cmd.FailureMessages())
	if err != nil {
		return err
	}

	message, err := newOutboxMessage(ev)
	if err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	if err = uow.OutboxRepository().Add(ctx, message); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
