package domain

import (
	"math"

	"github.com/shopspring/decimal"
)

const maxDiscountPercentage = 100

// Discount is a percentage taken off a base price.
// Values outside [0, 100] are clamped on construction so applying a discount
// never yields a price above the base or below zero.
type Discount struct {
	percentage decimal.Decimal
}

// NoDiscount is a 0% discount.
func NoDiscount() Discount {
	return Discount{percentage: decimal.Zero}
}

// NewDiscount creates a Discount from a percentage (0-100).
func NewDiscount(percentage float64) Discount {
	switch {
	case math.IsNaN(percentage), percentage <= 0:
		return NoDiscount()
	case percentage >= maxDiscountPercentage:
		return Discount{percentage: decimal.NewFromInt(maxDiscountPercentage)}
	}
	return Discount{percentage: decimal.NewFromFloat(percentage)}
}

// DiscountFromPointer treats a missing percentage as no discount.
func DiscountFromPointer(percentage *float64) Discount {
	if percentage == nil {
		return NoDiscount()
	}
	return NewDiscount(*percentage)
}

// Percentage returns the percentage as a decimal in [0, 100].
func (d Discount) Percentage() decimal.Decimal {
	return d.percentage
}

// IsZero reports whether applying the discount leaves the price unchanged.
func (d Discount) IsZero() bool {
	return d.percentage.IsZero()
}

// AmountOf returns the rounded amount taken off base.
func (d Discount) AmountOf(base *Money) *Money {
	if base == nil {
		return Zero()
	}
	return base.Percent(d.percentage).Round2()
}

// ApplyTo returns the final price: base minus the rounded discount amount,
// rounded again to two digits. A nil base yields 0.00.
func (d Discount) ApplyTo(base *Money) *Money {
	if base == nil {
		return Zero()
	}
	return base.Subtract(d.AmountOf(base)).Round2()
}
