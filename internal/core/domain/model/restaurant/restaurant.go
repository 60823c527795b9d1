package restaurant

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
)

// ErrRestaurantIsNotConstructed is returned when a Restaurant instance was
// not created through the NewRestaurant factory function.
var ErrRestaurantIsNotConstructed = errors.New("Restaurant must be created via NewRestaurant constructor")

// Restaurant is the read model the order domain service validates orders
// against: an activity flag plus the subset of menu products referenced by
// the incoming order. It is loaded per request and never mutated.
type Restaurant struct {
	id       kernel.RestaurantID
	products []*Product

	// active reports whether the restaurant accepts orders at all
	active bool

	isConstructed bool
}

// NewRestaurant creates a restaurant read model. The product list may be
// empty: a restaurant that carries none of the ordered products still
// exists, its orders just fail item reconciliation.
func NewRestaurant(id kernel.RestaurantID, products []*Product, active bool) (*Restaurant, error) {
	restaurant := &Restaurant{
		active:        active,
		isConstructed: true,
	}

	if err := restaurant.setID(id); err != nil {
		return nil, err
	}
	if err := restaurant.setProducts(products); err != nil {
		return nil, err
	}

	return restaurant, nil
}

// ID returns the restaurant identifier.
func (r *Restaurant) ID() kernel.RestaurantID {
	return r.id
}

// Products returns the loaded menu products.
func (r *Restaurant) Products() []*Product {
	return r.products
}

// IsActive reports whether the restaurant accepts orders.
func (r *Restaurant) IsActive() bool {
	return r.active
}

// Validate ensures the restaurant was created through the factory function.
func (r *Restaurant) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRestaurantIsNotConstructed
	}
	return nil
}

func (r *Restaurant) setID(id kernel.RestaurantID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Restaurant) setProducts(products []*Product) error {
	for _, product := range products {
		if err := product.Validate(); err != nil {
			return err
		}
	}
	r.products = products
	return nil
}
