package commands

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommandItem is one requested order line: a product reference
// with the price the customer saw, the quantity, and the line subtotal.
type CreateOrderCommandItem struct {
	ProductID kernel.ProductID
	Price     kernel.Money
	Quantity  int
	SubTotal  kernel.Money
}

// CreateOrderCommand represents a request to place a new food order.
// Encapsulates the customer, the restaurant, the delivery address, the
// claimed total price, and the order lines.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(
//	    customerID, restaurantID,
//	    "Baker Street 221b", "London", "NW1 6XE",
//	    total, items,
//	)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	result, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customerID   kernel.CustomerID
	restaurantID kernel.RestaurantID
	street       string
	city         string
	zipCode      string
	price        kernel.Money
	items        []CreateOrderCommandItem

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order. Validates
// identifiers, address components, the total price, and that at least one
// item is present. Item-level consistency is checked by the domain when the
// order is built.
func NewCreateOrderCommand(
	customerID kernel.CustomerID,
	restaurantID kernel.RestaurantID,
	street, city, zipCode string,
	price kernel.Money,
	items []CreateOrderCommandItem,
) (CreateOrderCommand, error) {
	command := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCustomerID(customerID),
		command.setRestaurantID(restaurantID),
		command.setAddress(street, city, zipCode),
		command.setPrice(price),
		command.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// CustomerID returns the identifier of the ordering customer.
func (c CreateOrderCommand) CustomerID() kernel.CustomerID {
	return c.customerID
}

// RestaurantID returns the identifier of the target restaurant.
func (c CreateOrderCommand) RestaurantID() kernel.RestaurantID {
	return c.restaurantID
}

// Street returns the delivery street.
func (c CreateOrderCommand) Street() string {
	return c.street
}

// City returns the delivery city.
func (c CreateOrderCommand) City() string {
	return c.city
}

// ZipCode returns the delivery postal code.
func (c CreateOrderCommand) ZipCode() string {
	return c.zipCode
}

// Price returns the claimed order total.
func (c CreateOrderCommand) Price() kernel.Money {
	return c.price
}

// Items returns the requested order lines.
func (c CreateOrderCommand) Items() []CreateOrderCommandItem {
	return c.items
}

func (c *CreateOrderCommand) setCustomerID(customerID kernel.CustomerID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setRestaurantID(restaurantID kernel.RestaurantID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}

	c.restaurantID = restaurantID
	return nil
}

func (c *CreateOrderCommand) setAddress(street, city, zipCode string) error {
	if street == "" {
		return errs.NewValueIsRequiredError("street")
	}
	if city == "" {
		return errs.NewValueIsRequiredError("city")
	}
	if zipCode == "" {
		return errs.NewValueIsRequiredError("zip code")
	}

	c.street = street
	c.city = city
	c.zipCode = zipCode
	return nil
}

func (c *CreateOrderCommand) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}

	c.price = price
	return nil
}

func (c *CreateOrderCommand) setItems(items []CreateOrderCommandItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	c.items = items
	return nil
}
