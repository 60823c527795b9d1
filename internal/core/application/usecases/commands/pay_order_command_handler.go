package commands

import (
	"context"

	"ordering/internal/core/domain/services"
)

// PayOrderCommandHandler handles payment confirmations: it moves the order
// to Paid and stages the payment event that asks the restaurant for
// approval.
type PayOrderCommandHandler struct {
	uowFactory   OrderUoWFactory
	orderService *services.OrderService
}

// NewPayOrderCommandHandler creates a handler for payment confirmations.
func NewPayOrderCommandHandler(
	uowFactory OrderUoWFactory,
	orderService *services.OrderService,
) PayOrderCommandHandler {
	return PayOrderCommandHandler{
		uowFactory:   uowFactory,
		orderService: orderService,
	}
}

// Handle loads the order, applies the payment transition, and persists the
// updated aggregate together with the staged event in one transaction.
func (h *PayOrderCommandHandler) Handle(ctx context.Context, cmd PayOrderCommand) error {
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

	ev, err := h.orderService.PayOrder(o)
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
