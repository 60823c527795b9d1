package restaurant

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
)

// ErrProductIsNotConstructed is returned when a Product instance was not
// created through the NewProduct factory function.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

// Product is an entry of a restaurant's menu: the authoritative name and
// unit price that order items are reconciled against.
type Product struct {
	id    kernel.ProductID
	name  string
	price kernel.Money

	// available reports whether the product can currently be ordered
	available bool

	isConstructed bool
}

// NewProduct creates a menu product with its confirmed name and price.
func NewProduct(id kernel.ProductID, name string, price kernel.Money, available bool) (*Product, error) {
	product := &Product{
		available:     available,
		isConstructed: true,
	}

	if err := errors.Join(
		product.setID(id),
		product.setName(name),
		product.setPrice(price),
	); err != nil {
		return nil, err
	}

	return product, nil
}

// ID returns the product identifier.
func (p *Product) ID() kernel.ProductID {
	return p.id
}

// Name returns the confirmed product name.
func (p *Product) Name() string {
	return p.name
}

// Price returns the confirmed unit price.
func (p *Product) Price() kernel.Money {
	return p.price
}

// IsAvailable reports whether the product can currently be ordered.
func (p *Product) IsAvailable() bool {
	return p.available
}

// Validate ensures the product was created through the factory function.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

func (p *Product) setID(id kernel.ProductID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Product) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	p.price = price
	return nil
}
