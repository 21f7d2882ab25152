package kernel

import (
	"fmt"

	"shop/internal/pkg/errs"
	"shop/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrMoneyIsNotConstructed indicates that a Money value was not created through
// one of the constructor functions. The zero value of Money is invalid.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
	"Money must be created via NewMoney, MoneyFromString, or MoneyFromCents",
)

// Money is a value object representing a non-negative monetary amount with
// cent precision. It wraps a decimal number so that totals and refunds are
// exact to the cent regardless of how many line items are summed.
//
// Money is immutable: arithmetic methods return new values. The zero value is
// invalid and must be constructed through NewMoney, MoneyFromString, or
// MoneyFromCents.
//
// Example usage:
//
//	price, _ := kernel.MoneyFromString("100.00")
//	total := price.MulInt(2).Add(kernel.MustMoneyFromString("10.00"))
//	fmt.Println(total.String()) // "210.00"
type Money struct {
	amount decimal.Decimal

	guard guard.ConstructorGuard
}

// NewMoney creates a Money value from a decimal amount.
// The amount must not be negative and is rounded to cent precision.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount",
			fmt.Errorf("%s is negative", amount.String()),
		)
	}

	return Money{
		amount: amount.Round(2),
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// MoneyFromString parses a Money value from its decimal string representation,
// e.g. "100.00". Returns an error for malformed or negative input.
func MoneyFromString(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	return NewMoney(amount)
}

// MoneyFromCents creates a Money value from an integer number of cents.
// Useful when amounts are persisted or transmitted as integers.
func MoneyFromCents(cents int64) (Money, error) {
	return NewMoney(decimal.New(cents, -2))
}

// MustMoneyFromString parses a Money value and panics on failure.
// Intended for constants and test fixtures only.
func MustMoneyFromString(s string) Money {
	m, err := MoneyFromString(s)
	if err != nil {
		panic(err)
	}
	return m
}

// Zero returns the zero monetary amount.
func Zero() Money {
	return Money{
		amount: decimal.Zero,
		guard:  guard.NewConstructorGuard(),
	}
}

// Validate ensures the Money value was properly constructed.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

// Amount returns the underlying decimal amount.
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

// MulInt returns the Money value multiplied by an integer quantity.
func (m Money) MulInt(qty int) Money {
	return Money{
		amount: m.amount.Mul(decimal.NewFromInt(int64(qty))),
		guard:  guard.NewConstructorGuard(),
	}
}

// IsEqual reports whether two Money values represent the same amount.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// String returns the amount formatted with two decimal places, e.g. "210.00".
func (m Money) String() string {
	return m.amount.StringFixed(2)
}
