package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/murkotick/bookstore-catalog-service/internal/app/catalog/domain"
)

func TestPricingCalculator_FinalPrice(t *testing.T) {
	pc := NewPricingCalculator()

	got := pc.FinalPrice(domain.NewMoneyFromCents(1999), domain.NewDiscount(10))
	assert.Equal(t, "17.99", got.String())

	assert.Equal(t, "0.00", pc.FinalPrice(nil, domain.NewDiscount(10)).String())
}

func TestPricingCalculator_OutOfRangeDiscountIsClamped(t *testing.T) {
	pc := NewPricingCalculator()
	base := domain.NewMoneyFromCents(1000)

	assert.Equal(t, "10.00", pc.FinalPrice(base, domain.NewDiscount(-20)).String())
	assert.Equal(t, "0.00", pc.FinalPrice(base, domain.NewDiscount(150)).String())
}

func TestPricingCalculator_Savings(t *testing.T) {
	pc := NewPricingCalculator()
	base := domain.NewMoneyFromCents(1999)
	d := domain.NewDiscount(10)

	savings := pc.Savings(base, d)
	assert.Equal(t, "2.00", savings.String())
	assert.True(t, base.Subtract(savings).Equals(pc.FinalPrice(base, d)))
}

func TestPricingCalculator_FinalPriceOfBookMatchesModel(t *testing.T) {
	pct := 33.0
	b, err := domain.NewBook(domain.BookAttrs{
		ISBN:               "9780000000001",
		BasePrice:          domain.NewMoneyFromCents(4599),
		DiscountPercentage: &pct,
	})
	require.NoError(t, err)

	pc := NewPricingCalculator()
	assert.Equal(t, b.Price().String(), pc.FinalPriceOf(b).String())
	assert.Equal(t, "0.00", pc.FinalPriceOf(nil).String())
}
