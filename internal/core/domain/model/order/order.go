package order

import (
	"errors"
	"fmt"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder or RestoreOrder factory functions.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order is the aggregate root of the ordering domain and the unit of
// consistency for the payment/approval saga. It owns the item list, the
// total price, the lifecycle status, and the failure messages collected
// during cancellation.
//
// Order maintains these invariants:
//   - the total price equals the sum of all item subtotals
//   - every item subtotal equals its unit price times quantity
//   - OrderID and TrackingID are assigned exactly once, at initialization
//   - status only moves forward along the state machine in Status
//
// Every mutating operation is all-or-nothing: a failed precondition check
// returns before any field is touched.
type Order struct {
	// id is assigned by Initialize; zero value before that
	id kernel.OrderID

	// customerID references the customer who placed the order
	customerID kernel.CustomerID

	// restaurantID references the restaurant the order is placed with
	restaurantID kernel.RestaurantID

	// trackingID is the public query handle, assigned by Initialize
	trackingID kernel.TrackingID

	// deliveryAddress is the destination for the order
	deliveryAddress Address

	// price is the order total claimed by the request
	price kernel.Money

	// items are the order lines, in request order
	items []*Item

	// status is the current state in the saga lifecycle
	status Status

	// failureMessages collects cancellation reasons; nil until the first
	// cancellation-related call
	failureMessages []string

	// isConstructed ensures the order was created via a factory function
	isConstructed bool
}

// NewOrderParams carries the validated request data needed to construct an
// order that has not been initialized yet.
type NewOrderParams struct {
	CustomerID      kernel.CustomerID
	RestaurantID    kernel.RestaurantID
	DeliveryAddress Address
	Price           kernel.Money
	Items           []*Item
}

// NewOrder creates an order from raw command data. The order carries no
// OrderID or TrackingID and its status is Unknown until Initialize runs;
// ValidateOrder must pass first.
//
// Example:
//
//	item, _ := order.NewItem(productID, price, 2, price.MultiplyQty(2))
//	o, err := order.NewOrder(order.NewOrderParams{
//	    CustomerID:      customerID,
//	    RestaurantID:    restaurantID,
//	    DeliveryAddress: address,
//	    Price:           total,
//	    Items:           []*order.Item{item},
//	})
func NewOrder(params NewOrderParams) (*Order, error) {
	o := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		o.setCustomerID(params.CustomerID),
		o.setRestaurantID(params.RestaurantID),
		o.setDeliveryAddress(params.DeliveryAddress),
		o.setPrice(params.Price),
		o.setItems(params.Items),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrderParams carries the full persisted state of an order.
type RestoreOrderParams struct {
	ID              kernel.OrderID
	CustomerID      kernel.CustomerID
	RestaurantID    kernel.RestaurantID
	TrackingID      kernel.TrackingID
	DeliveryAddress Address
	Price           kernel.Money
	Items           []*Item
	Status          Status
	FailureMessages []string
}

// RestoreOrder reconstructs an initialized order from persistence. Unlike
// NewOrder it requires identifiers and a valid status, since only
// initialized orders are ever persisted.
func RestoreOrder(params RestoreOrderParams) (*Order, error) {
	o, err := NewOrder(NewOrderParams{
		CustomerID:      params.CustomerID,
		RestaurantID:    params.RestaurantID,
		DeliveryAddress: params.DeliveryAddress,
		Price:           params.Price,
		Items:           params.Items,
	})
	if err != nil {
		return nil, err
	}

	if err = errors.Join(
		params.ID.Validate(),
		params.TrackingID.Validate(),
		params.Status.Validate(),
	); err != nil {
		return nil, err
	}

	o.id = params.ID
	o.trackingID = params.TrackingID
	o.status = params.Status
	o.failureMessages = params.FailureMessages
	return o, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory function. Called when reconstructing orders from persistence.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's identifier. Zero value before Initialize.
func (o *Order) ID() kernel.OrderID {
	return o.id
}

// CustomerID returns the identifier of the ordering customer.
func (o *Order) CustomerID() kernel.CustomerID {
	return o.customerID
}

// RestaurantID returns the identifier of the restaurant.
func (o *Order) RestaurantID() kernel.RestaurantID {
	return o.restaurantID
}

// TrackingID returns the public tracking handle. Zero value before
// Initialize.
func (o *Order) TrackingID() kernel.TrackingID {
	return o.trackingID
}

// DeliveryAddress returns the delivery destination.
func (o *Order) DeliveryAddress() Address {
	return o.deliveryAddress
}

// Price returns the order total.
func (o *Order) Price() kernel.Money {
	return o.price
}

// Items returns the order lines in request order.
func (o *Order) Items() []*Item {
	return o.items
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// FailureMessages returns the cancellation reasons collected so far.
// Nil until the first cancellation-related call.
func (o *Order) FailureMessages() []string {
	return o.failureMessages
}

// Initialize assigns a fresh OrderID and TrackingID, moves the order to
// Pending, and gives every item its 1-based position. It fails with
// *InvalidStateError when the order already carries a status or identifier;
// identifiers are assigned exactly once.
func (o *Order) Initialize() error {
	if o.status != Unknown || o.id.Validate() == nil {
		return NewInvalidStateError("order already initialized")
	}

	o.id = kernel.NewOrderID()
	o.trackingID = kernel.NewTrackingID()
	o.status = Pending

	for idx, item := range o.items {
		item.initialize(o.id, ItemID(idx+1))
	}

	return nil
}

// ValidateOrder runs the pre-initialization validation sequence:
//
//  1. the order must not be initialized yet (*InvalidStateError otherwise)
//  2. the total price must be set and strictly greater than zero
//  3. every item's price must match the restaurant's confirmed price
//  4. the sum of item subtotals must exactly equal the total price
//
// Price failures return *InvalidPriceError naming the offending amount or
// product. The order is not modified.
func (o *Order) ValidateOrder() error {
	if err := o.validateInitialState(); err != nil {
		return err
	}
	if err := o.validateTotalPrice(); err != nil {
		return err
	}
	return o.validateItemsPrice()
}

// Pay moves the order from Pending to Paid.
// Fails with *InvalidStateTransitionError from any other status.
func (o *Order) Pay() error {
	newStatus, err := o.status.Pay()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Approve moves the order from Paid to Approved, the terminal success state.
// Fails with *InvalidStateTransitionError from any other status.
func (o *Order) Approve() error {
	newStatus, err := o.status.Approve()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// InitCancel moves a Paid order to Canceling and records the given failure
// messages. Fails with *InvalidStateTransitionError from any other status,
// in which case no message is recorded.
func (o *Order) InitCancel(failureMessages []string) error {
	newStatus, err := o.status.InitCancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.updateFailureMessages(failureMessages)
	return nil
}

// Cancel moves the order to Canceled, either from Canceling (refund
// completed) or directly from Pending (payment failed), and records the
// given failure messages. Fails with *InvalidStateTransitionError from any
// other status, in which case no message is recorded.
func (o *Order) Cancel(failureMessages []string) error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.updateFailureMessages(failureMessages)
	return nil
}

// updateFailureMessages merges new failure messages into the list. The very
// first assignment adopts the incoming slice verbatim, empty strings
// included; later calls append only non-empty messages.
func (o *Order) updateFailureMessages(failureMessages []string) {
	if o.failureMessages == nil {
		o.failureMessages = failureMessages
		return
	}

	for _, message := range failureMessages {
		if message != "" {
			o.failureMessages = append(o.failureMessages, message)
		}
	}
}

func (o *Order) validateInitialState() error {
	if o.status != Unknown || o.id.Validate() == nil {
		return NewInvalidStateError("order is not in a valid state for initialization")
	}
	return nil
}

func (o *Order) validateTotalPrice() error {
	if o.price.Validate() != nil || !o.price.IsGreaterThanZero() {
		return NewInvalidPriceError("total price must be greater than zero")
	}
	return nil
}

func (o *Order) validateItemsPrice() error {
	itemsTotal := kernel.ZeroMoney()
	for _, item := range o.items {
		if !item.IsPriceConfirmed() {
			return NewInvalidPriceError(fmt.Sprintf(
				"item price %s is not valid for product %s",
				item.Price(), item.ProductID(),
			))
		}
		itemsTotal = itemsTotal.Add(item.SubTotal())
	}

	if !o.price.IsEqual(itemsTotal) {
		return NewInvalidPriceError(fmt.Sprintf(
			"total price %s is not equal to order items total %s",
			o.price, itemsTotal,
		))
	}

	return nil
}

func (o *Order) setCustomerID(customerID kernel.CustomerID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setRestaurantID(restaurantID kernel.RestaurantID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}
	o.restaurantID = restaurantID
	return nil
}

func (o *Order) setDeliveryAddress(deliveryAddress Address) error {
	if err := deliveryAddress.Validate(); err != nil {
		return err
	}
	o.deliveryAddress = deliveryAddress
	return nil
}

func (o *Order) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	o.price = price
	return nil
}

func (o *Order) setItems(items []*Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	o.items = items
	return nil
}
