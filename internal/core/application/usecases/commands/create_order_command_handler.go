package commands

import (
	"context"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/services"
	"ordering/internal/core/ports"
)

// CreateOrderResult carries the identifiers assigned to a freshly created
// order back to the caller.
type CreateOrderResult struct {
	OrderID    kernel.OrderID
	TrackingID kernel.TrackingID
	Status     order.Status
}

// CreateOrderCommandHandler handles the business logic for order creation:
// verifying the customer, validating the order against the restaurant,
// initializing it, and persisting the aggregate together with the creation
// event in one transaction.
type CreateOrderCommandHandler struct {
	uowFactory       OrderUoWFactory
	restaurantLookup ports.RestaurantLookup
	customerLookup   ports.CustomerLookup
	orderService     *services.OrderService
}

// NewCreateOrderCommandHandler creates a handler for order creation
// operations.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	restaurantLookup ports.RestaurantLookup,
	customerLookup ports.CustomerLookup,
	orderService *services.OrderService,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory:       uowFactory,
		restaurantLookup: restaurantLookup,
		customerLookup:   customerLookup,
		orderService:     orderService,
	}
}

// Handle processes the order creation command. The order aggregate and its
// creation event commit together; on any failure nothing is persisted and
// nothing is staged for publication.
func (h *CreateOrderCommandHandler) Handle(
	ctx context.Context,
	cmd CreateOrderCommand,
) (CreateOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return CreateOrderResult{}, err
	}

	if err := h.customerLookup.Exists(ctx, cmd.CustomerID()); err != nil {
		return CreateOrderResult{}, err
	}

	o, err := newOrderFromCommand(cmd)
	if err != nil {
		return CreateOrderResult{}, err
	}

	productIDs := make([]kernel.ProductID, 0, len(cmd.Items()))
	for _, item := range cmd.Items() {
		productIDs = append(productIDs, item.ProductID)
	}

	r, err := h.restaurantLookup.Get(ctx, cmd.RestaurantID(), productIDs)
	if err != nil {
		return CreateOrderResult{}, err
	}

	ev, err := h.orderService.ValidateAndInitiateOrder(o, r)
	if err != nil {
		return CreateOrderResult{}, err
	}

	message, err := newOutboxMessage(ev)
	if err != nil {
		return CreateOrderResult{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return CreateOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return CreateOrderResult{}, err
	}

	if err = uow.OutboxRepository().Add(ctx, message); err != nil {
		return CreateOrderResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CreateOrderResult{}, err
	}

	return CreateOrderResult{
		OrderID:    o.ID(),
		TrackingID: o.TrackingID(),
		Status:     o.Status(),
	}, nil
}

func newOrderFromCommand(cmd CreateOrderCommand) (*order.Order, error) {
	address, err := order.NewAddress(cmd.Street(), cmd.City(), cmd.ZipCode())
	if err != nil {
		return nil, err
	}

	items := make([]*order.Item, 0, len(cmd.Items()))
	for _, commandItem := range cmd.Items() {
		item, err := order.NewItem(
			commandItem.ProductID,
			commandItem.Price,
			commandItem.Quantity,
			commandItem.SubTotal,
		)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return order.NewOrder(order.NewOrderParams{
		CustomerID:      cmd.CustomerID(),
		RestaurantID:    cmd.RestaurantID(),
		DeliveryAddress: address,
		Price:           cmd.Price(),
		Items:           items,
	})
}
