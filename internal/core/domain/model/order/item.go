package order

import (
	"errors"
	"fmt"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through the NewItem or RestoreItem factory functions.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// ItemID is the 1-based position of an item within its order, assigned when
// the order is initialized. Zero means not yet assigned.
type ItemID int

// Item is a line of an order: a product reference with a claimed unit price,
// a quantity, and a subtotal. The subtotal must equal price times quantity,
// enforced at construction.
//
// An item starts unreconciled. During order validation the restaurant's
// confirmed product name and price are copied onto it via Reconcile; items
// whose product the restaurant does not carry stay unreconciled and fail
// price validation.
type Item struct {
	// id is the position within the order, assigned at initialization
	id ItemID

	// orderID is the owning order, assigned at initialization
	orderID kernel.OrderID

	// productID references the restaurant product being ordered
	productID kernel.ProductID

	// productName is the confirmed product name, set by reconciliation
	productName string

	// price is the unit price claimed by the incoming order request
	price kernel.Money

	// quantity of units ordered (positive)
	quantity int

	// subTotal equals price multiplied by quantity
	subTotal kernel.Money

	// confirmedPrice is the restaurant's authoritative unit price
	confirmedPrice kernel.Money

	// reconciled is set once the restaurant confirmed name and price
	reconciled bool

	// isConstructed ensures the item was created via a factory function
	isConstructed bool
}

// NewItem creates an order item from raw request data. The item is not yet
// reconciled against the restaurant and carries no id until the order is
// initialized.
//
// Validation rules:
//   - productID must be valid
//   - price and subTotal must be constructed Money values
//   - quantity must be positive
//   - subTotal must equal price multiplied by quantity
func NewItem(productID kernel.ProductID, price kernel.Money, quantity int, subTotal kernel.Money) (*Item, error) {
	item := &Item{
		isConstructed: true,
	}

	if err := errors.Join(
		item.setProductID(productID),
		item.setPrice(price),
		item.setQuantity(quantity),
		item.setSubTotal(subTotal),
	); err != nil {
		return nil, err
	}

	if !item.subTotal.IsEqual(item.price.MultiplyQty(item.quantity)) {
		return nil, NewInvalidPriceError(fmt.Sprintf(
			"item subtotal %s is not equal to price %s multiplied by quantity %d",
			item.subTotal, item.price, item.quantity,
		))
	}

	return item, nil
}

// RestoreItem reconstructs an item from persistence. Persisted items passed
// price validation at creation time, so the stored price is taken as
// confirmed.
func RestoreItem(
	id ItemID,
	orderID kernel.OrderID,
	productID kernel.ProductID,
	productName string,
	price kernel.Money,
	quantity int,
	subTotal kernel.Money,
) (*Item, error) {
	item, err := NewItem(productID, price, quantity, subTotal)
	if err != nil {
		return nil, err
	}

	if id <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("item id", fmt.Errorf("%d is not greater than 0", id))
	}
	if err = orderID.Validate(); err != nil {
		return nil, err
	}

	item.id = id
	item.orderID = orderID
	item.Reconcile(productName, price)
	return item, nil
}

// ID returns the item's 1-based position within its order.
// Returns zero before the order is initialized.
func (i *Item) ID() ItemID {
	return i.id
}

// OrderID returns the owning order's identifier.
func (i *Item) OrderID() kernel.OrderID {
	return i.orderID
}

// ProductID returns the referenced product's identifier.
func (i *Item) ProductID() kernel.ProductID {
	return i.productID
}

// ProductName returns the confirmed product name.
// Empty until the item is reconciled.
func (i *Item) ProductName() string {
	return i.productName
}

// Price returns the claimed unit price.
func (i *Item) Price() kernel.Money {
	return i.price
}

// Quantity returns the number of units ordered.
func (i *Item) Quantity() int {
	return i.quantity
}

// SubTotal returns the line total (price times quantity).
func (i *Item) SubTotal() kernel.Money {
	return i.subTotal
}

// Reconcile copies the restaurant's confirmed product name and unit price
// onto the item. Called by the domain service while matching order items
// against the restaurant's product list.
func (i *Item) Reconcile(productName string, confirmedPrice kernel.Money) {
	i.productName = productName
	i.confirmedPrice = confirmedPrice
	i.reconciled = true
}

// IsPriceConfirmed reports whether the item was reconciled and its claimed
// price matches the restaurant's confirmed price.
func (i *Item) IsPriceConfirmed() bool {
	return i.reconciled && i.price.IsEqual(i.confirmedPrice)
}

// Validate ensures the item was created through a factory function.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// initialize assigns the owning order and the item's position.
// Called exactly once, from Order.Initialize.
func (i *Item) initialize(orderID kernel.OrderID, id ItemID) {
	i.orderID = orderID
	i.id = id
}

func (i *Item) setProductID(productID kernel.ProductID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	i.productID = productID
	return nil
}

func (i *Item) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	i.price = price
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setSubTotal(subTotal kernel.Money) error {
	if err := subTotal.Validate(); err != nil {
		return err
	}
	i.subTotal = subTotal
	return nil
}
