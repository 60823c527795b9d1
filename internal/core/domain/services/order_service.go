package services

import (
	"errors"
	"fmt"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/model/restaurant"
)

// ErrRestaurantInactive is the class of failures where an order targets a
// restaurant that does not currently accept orders.
var ErrRestaurantInactive = errors.New("restaurant is not active")

// RestaurantInactiveError reports the inactive restaurant by identifier.
type RestaurantInactiveError struct {
	RestaurantID kernel.RestaurantID
}

// NewRestaurantInactiveError creates a RestaurantInactiveError for the given
// restaurant.
func NewRestaurantInactiveError(restaurantID kernel.RestaurantID) *RestaurantInactiveError {
	return &RestaurantInactiveError{RestaurantID: restaurantID}
}

func (e *RestaurantInactiveError) Error() string {
	return fmt.Sprintf("%s: %s", ErrRestaurantInactive, e.RestaurantID)
}

func (e *RestaurantInactiveError) Unwrap() error {
	return ErrRestaurantInactive
}

// OrderService coordinates the order aggregate with the restaurant read
// model and decides which lifecycle transitions produce domain events. It is
// stateless; transactional concerns belong to the application layer.
//
// Event policy: only transitions that require a follow-up action from
// another saga participant produce an event. Creation starts the payment
// leg, payment starts the approval leg, and cancellation initiation requests
// a refund. Approval and final cancellation are terminal and stay silent.
type OrderService struct{}

// NewOrderService creates the order domain service.
func NewOrderService() *OrderService {
	return &OrderService{}
}

// ValidateAndInitiateOrder validates a new order against the restaurant,
// reconciles the order items with the restaurant's confirmed products,
// initializes the order, and returns the creation event.
//
// Failure modes, in check order:
//   - *RestaurantInactiveError when the restaurant does not accept orders
//   - *order.InvalidStateError when the order was already initialized
//   - *order.InvalidPriceError when an item price is unconfirmed or totals
//     do not add up
//
// On any failure the order is left unmodified.
func (s *OrderService) ValidateAndInitiateOrder(
	o *order.Order,
	r *restaurant.Restaurant,
) (order.CreatedEvent, error) {
	if err := o.Validate(); err != nil {
		return order.CreatedEvent{}, err
	}
	if err := r.Validate(); err != nil {
		return order.CreatedEvent{}, err
	}

	if !r.IsActive() {
		return order.CreatedEvent{}, NewRestaurantInactiveError(r.ID())
	}

	s.reconcileItems(o, r)

	if err := o.ValidateOrder(); err != nil {
		return order.CreatedEvent{}, err
	}
	if err := o.Initialize(); err != nil {
		return order.CreatedEvent{}, err
	}

	return order.NewCreatedEvent(o, time.Now().UTC()), nil
}

// PayOrder marks a pending order as paid and returns the payment event that
// starts the restaurant-approval leg of the saga.
func (s *OrderService) PayOrder(o *order.Order) (order.PaidEvent, error) {
	if err := o.Validate(); err != nil {
		return order.PaidEvent{}, err
	}

	if err := o.Pay(); err != nil {
		return order.PaidEvent{}, err
	}

	return order.NewPaidEvent(o, time.Now().UTC()), nil
}

// ApproveOrder moves a paid order to its terminal Approved state. The saga
// ends here, so no event is produced.
func (s *OrderService) ApproveOrder(o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}

	return o.Approve()
}

// CancelOrderPayment starts compensation for a paid order that the
// restaurant rejected. The order moves to Canceling, the failure messages
// are recorded, and the returned event requests a refund from the payment
// service.
func (s *OrderService) CancelOrderPayment(
	o *order.Order,
	failureMessages []string,
) (order.CancellingEvent, error) {
	if err := o.Validate(); err != nil {
		return order.CancellingEvent{}, err
	}

	if err := o.InitCancel(failureMessages); err != nil {
		return order.CancellingEvent{}, err
	}

	return order.NewCancellingEvent(o, time.Now().UTC()), nil
}

// CancelOrder moves an order to its terminal Canceled state, either from
// Canceling after the refund completed or directly from Pending when the
// payment failed. The saga ends here, so no event is produced.
func (s *OrderService) CancelOrder(o *order.Order, failureMessages []string) error {
	if err := o.Validate(); err != nil {
		return err
	}

	return o.Cancel(failureMessages)
}

// reconcileItems copies the restaurant's confirmed name and price onto every
// order item whose product the restaurant carries. Items without a matching
// available product stay unreconciled and fail the subsequent price
// validation.
func (s *OrderService) reconcileItems(o *order.Order, r *restaurant.Restaurant) {
	productsByID := make(map[kernel.ProductID]*restaurant.Product, len(r.Products()))
	for _, product := range r.Products() {
		if product.IsAvailable() {
			productsByID[product.ID()] = product
		}
	}

	for _, item := range o.Items() {
		if product, ok := productsByID[item.ProductID()]; ok {
			item.Reconcile(product.Name(), product.Price())
		}
	}
}
