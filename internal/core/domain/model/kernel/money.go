package kernel

import (
	"fmt"

	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrMoneyIsNotConstructed indicates that a Money value was not created
// through NewMoney, NewMoneyFromString, or ZeroMoney.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
	"Money must be created via NewMoney, NewMoneyFromString, or ZeroMoney",
)

// Money is a value object holding an exact decimal amount. All arithmetic
// and comparisons are exact; there is no floating point anywhere in the
// price path. Amounts are non-negative by construction.
//
// Example:
//
//	price, _ := kernel.NewMoneyFromString("12.50")
//	subTotal := price.MultiplyQty(3)
//	fmt.Println(subTotal) // "37.50"
type Money struct {
	amount decimal.Decimal

	guard guard.ConstructorGuard
}

// NewMoney creates a Money value from a decimal amount.
// Negative amounts are rejected.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"money amount",
			fmt.Errorf("%s is negative", amount),
		)
	}

	return Money{
		amount: amount,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// NewMoneyFromString parses a decimal string such as "25.00" into a Money
// value. Returns an error for malformed or negative input.
func NewMoneyFromString(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money amount", err)
	}
	return NewMoney(amount)
}

// ZeroMoney returns a valid Money of amount zero, the identity for Add.
func ZeroMoney() Money {
	return Money{
		amount: decimal.Zero,
		guard:  guard.NewConstructorGuard(),
	}
}

// Amount returns the underlying decimal value.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Add returns the sum of two Money values.
func (m Money) Add(other Money) Money {
	return Money{
		amount: m.amount.Add(other.amount),
		guard:  guard.NewConstructorGuard(),
	}
}

// MultiplyQty returns the amount multiplied by an integer quantity.
// Used to compute an order item subtotal from its unit price.
func (m Money) MultiplyQty(qty int) Money {
	return Money{
		amount: m.amount.Mul(decimal.NewFromInt(int64(qty))),
		guard:  guard.NewConstructorGuard(),
	}
}

// IsGreaterThanZero reports whether the amount is strictly positive.
func (m Money) IsGreaterThanZero() bool {
	return m.amount.IsPositive()
}

// IsGreaterThan reports whether the amount exceeds the other amount.
func (m Money) IsGreaterThan(other Money) bool {
	return m.amount.GreaterThan(other.amount)
}

// IsEqual reports exact value equality of the two amounts.
// 25.00 equals 25.0; there is no tolerance.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// String renders the amount with two decimal places, e.g. "25.00".
func (m Money) String() string {
	return m.amount.StringFixed(2)
}

// Validate reports whether the Money value was properly constructed.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}
