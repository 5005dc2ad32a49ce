package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// priceScale is the number of fractional digits every computed price carries.
const priceScale = 2

// Money represents a monetary value with precise decimal arithmetic.
// It wraps decimal.Decimal to avoid floating-point precision issues.
// Money is immutable - all operations return new instances.
type Money struct {
	amount decimal.Decimal
}

// NewMoney creates Money from a decimal value.
func NewMoney(amount decimal.Decimal) *Money {
	return &Money{amount: amount}
}

// NewMoneyFromString creates Money from a decimal string.
// For example: "19.99", "100.00", "0.01"
func NewMoneyFromString(s string) (*Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid decimal format: %s", s)
	}
	return &Money{amount: d}, nil
}

// NewMoneyFromCents creates Money from an integer amount of cents.
// For example: NewMoneyFromCents(1999) represents 19.99
func NewMoneyFromCents(cents int64) *Money {
	return &Money{amount: decimal.New(cents, -priceScale)}
}

// Zero returns 0.00.
func Zero() *Money {
	return &Money{amount: decimal.New(0, -priceScale)}
}

// Add returns a new Money that is the sum of m and other.
func (m *Money) Add(other *Money) *Money {
	return &Money{amount: m.amount.Add(other.amount)}
}

// Subtract returns a new Money that is the difference of m and other.
func (m *Money) Subtract(other *Money) *Money {
	return &Money{amount: m.amount.Sub(other.amount)}
}

// Percent returns pct percent of m without rounding.
func (m *Money) Percent(pct decimal.Decimal) *Money {
	return &Money{amount: m.amount.Mul(pct).Shift(-2)}
}

// Round2 rounds half away from zero to two fractional digits.
// The result always carries exactly two fractional digits, so 20 becomes 20.00.
func (m *Money) Round2() *Money {
	return &Money{amount: m.amount.Round(priceScale)}
}

// IsZero returns true if the money amount is zero.
func (m *Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsNegative returns true if the money amount is negative.
func (m *Money) IsNegative() bool {
	return m.amount.IsNegative()
}

// Equals compares amounts numerically, so 20 equals 20.00.
func (m *Money) Equals(other *Money) bool {
	if other == nil {
		return false
	}
	return m.amount.Equal(other.amount)
}

// Decimal returns the underlying value.
func (m *Money) Decimal() decimal.Decimal {
	return m.amount
}

// Scale returns the number of fractional digits the amount carries.
func (m *Money) Scale() int32 {
	if m.amount.Exponent() >= 0 {
		return 0
	}
	return -m.amount.Exponent()
}

// String formats the amount with two fractional digits.
func (m *Money) String() string {
	return m.amount.StringFixed(priceScale)
}
