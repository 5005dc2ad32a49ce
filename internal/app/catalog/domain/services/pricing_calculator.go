package services

import (
	"github.com/murkotick/bookstore-catalog-service/internal/app/catalog/domain"
)

// PricingCalculator is a domain service that handles pricing calculations.
// Domain services are used when business logic doesn't naturally fit within a single aggregate.
type PricingCalculator struct{}

// NewPricingCalculator creates a new PricingCalculator instance.
func NewPricingCalculator() *PricingCalculator {
	return &PricingCalculator{}
}

// FinalPrice returns base minus the discount amount, both rounded half up to
// two digits. A nil base yields 0.00.
func (pc *PricingCalculator) FinalPrice(basePrice *domain.Money, discount domain.Discount) *domain.Money {
	return discount.ApplyTo(basePrice)
}

// Savings returns the rounded amount the discount takes off the base price.
func (pc *PricingCalculator) Savings(basePrice *domain.Money, discount domain.Discount) *domain.Money {
	return discount.AmountOf(basePrice)
}

// FinalPriceOf prices a book from its current state.
func (pc *PricingCalculator) FinalPriceOf(b *domain.Book) *domain.Money {
	if b == nil {
		return domain.Zero()
	}
	return pc.FinalPrice(b.BasePrice(), b.Discount())
}
