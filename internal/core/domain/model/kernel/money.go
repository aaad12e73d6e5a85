package kernel

import (
	"fmt"

	"foodorder/internal/pkg/errs"
)

// Money is an immutable currency amount stored as a whole number of cents.
// Amounts are never negative: prices and order totals are validated at
// construction, and arithmetic on valid amounts cannot produce a negative
// result. The zero value is a valid zero amount.
type Money struct {
	cents int64
}

// NewMoney creates a Money amount from cents. Negative amounts are rejected
// with a ValueIsInvalidError.
func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%d cents is negative", cents))
	}
	return Money{cents: cents}, nil
}

// Cents returns the amount as a whole number of cents.
func (m Money) Cents() int64 {
	return m.cents
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

// MultiplyBy returns the amount scaled by a non-negative quantity.
// Used to compute a line item subtotal from its unit price.
func (m Money) MultiplyBy(quantity int) (Money, error) {
	if quantity < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is negative", quantity))
	}
	return Money{cents: m.cents * int64(quantity)}, nil
}

// IsEqual reports whether both amounts are the same.
func (m Money) IsEqual(other Money) bool {
	return m.cents == other.cents
}

// String formats the amount with two decimal places, e.g. "10.00".
func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.cents/100, m.cents%100)
}
