package commands

import (
	"context"

	"ordering/internal/core/domain/services"
)

// CancelOrderCommandHandler handles final cancellations: it moves the order
// to its terminal Canceled state and records the failure messages. The saga
// ends here, so no event is staged.
type CancelOrderCommandHandler struct {
	uowFactory   OrderUoWFactory
	orderService *services.OrderService
}

// NewCancelOrderCommandHandler creates a handler for final order
// cancellations.
func NewCancelOrderCommandHandler(
	uowFactory OrderUoWFactory,
	orderService *services.OrderService,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory:   uowFactory,
		orderService: orderService,
	}
}

// Handle loads the order, applies the cancellation, and persists the
// updated aggregate.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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

	if err = h.orderService.CancelOrder(o, cmd.FailureMessages()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
