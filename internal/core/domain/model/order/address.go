package order

import (
	"errors"

	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

// ErrAddressIsNotConstructed is returned when an Address was not created via
// the NewAddress constructor.
var ErrAddressIsNotConstructed = errors.New("Address must be created via NewAddress constructor")

// Address is the delivery destination of an order. It is an immutable value
// object; all fields are required.
type Address struct {
	street  string
	city    string
	zipCode string

	guard guard.ConstructorGuard
}

// NewAddress creates a validated delivery address. Every component must be
// non-empty.
func NewAddress(street, city, zipCode string) (Address, error) {
	address := Address{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		address.setStreet(street),
		address.setCity(city),
		address.setZipCode(zipCode),
	); err != nil {
		return Address{}, err
	}

	return address, nil
}

// Street returns the street component of the address.
func (a Address) Street() string {
	return a.street
}

// City returns the city component of the address.
func (a Address) City() string {
	return a.city
}

// ZipCode returns the postal code component of the address.
func (a Address) ZipCode() string {
	return a.zipCode
}

// IsEqual compares two addresses by value.
func (a Address) IsEqual(other Address) bool {
	return a.street == other.street && a.city == other.city && a.zipCode == other.zipCode
}

// Validate ensures the address was created through the constructor.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

func (a *Address) setStreet(street string) error {
	if street == "" {
		return errs.NewValueIsRequiredError("street")
	}
	a.street = street
	return nil
}

func (a *Address) setCity(city string) error {
	if city == "" {
		return errs.NewValueIsRequiredError("city")
	}
	a.city = city
	return nil
}

func (a *Address) setZipCode(zipCode string) error {
	if zipCode == "" {
		return errs.NewValueIsRequiredError("zip code")
	}
	a.zipCode = zipCode
	return nil
}
