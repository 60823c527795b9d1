package commands

import (
	"context"

	"ordering/internal/core/domain/services"
)

// ApproveOrderCommandHandler handles restaurant approvals: it moves the
// order to its terminal Approved state. The saga ends here, so no event is
// staged.
type ApproveOrderCommandHandler struct {
	uowFactory   OrderUoWFactory
	orderService *services.OrderService
}

// NewApproveOrderCommandHandler creates a handler for restaurant approvals.
func NewApproveOrderCommandHandler(
	uowFactory OrderUoWFactory,
	orderService *services.OrderService,
) ApproveOrderCommandHandler {
	return ApproveOrderCommandHandler{
		uowFactory:   uowFactory,
		orderService: orderService,
	}
}

// Handle loads the order, applies the approval transition, and persists the
// updated aggregate.
func (h *ApproveOrderCommandHandler) Handle(ctx context.Context, cmd ApproveOrderCommand) error {
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

	if err = h.orderService.ApproveOrder(o); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
