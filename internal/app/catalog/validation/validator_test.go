package validation

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/murkotick/bookstore-catalog-service/internal/app/catalog/domain"
	"github.com/murkotick/bookstore-catalog-service/internal/app/catalog/dto"
	"github.com/murkotick/bookstore-catalog-service/internal/pkg/clock"
)

var today = time.Date(2024, 5, 10, 15, 30, 0, 0, time.UTC)

func validBook() *dto.BookDTO {
	price := decimal.RequireFromString("19.99")
	discount := 10.0
	return &dto.BookDTO{
		ISBN:               "9780000000001",
		TitleEn:            "A Wizard of Earthsea",
		BasePrice:          &price,
		DiscountPercentage: &discount,
	}
}

func violations(t *testing.T, err error) *domain.ValidationError {
	t.Helper()
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)

	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	return verr
}

func TestValidate_ValidBook(t *testing.T) {
	v := New(clock.NewFake(today))
	assert.NoError(t, v.Validate(validBook()))
}

func TestValidate_ZeroValuesAreAccepted(t *testing.T) {
	v := New(clock.NewFake(today))
	b := validBook()
	zero := decimal.Zero
	noDiscount := 0.0
	b.BasePrice = &zero
	b.DiscountPercentage = &noDiscount

	assert.NoError(t, v.Validate(b))
}

func TestValidate_BookFieldRules(t *testing.T) {
	v := New(clock.NewFake(today))

	tests := []struct {
		name    string
		mutate  func(b *dto.BookDTO)
		field   string
		message string
	}{
		{"empty isbn", func(b *dto.BookDTO) { b.ISBN = "" }, "isbn", "isbn is required"},
		{"short isbn", func(b *dto.BookDTO) { b.ISBN = "123" }, "isbn", "isbn must be exactly 13 digits"},
		{"long isbn", func(b *dto.BookDTO) { b.ISBN = "97800000000012" }, "isbn", "isbn must be exactly 13 digits"},
		{"isbn with letters", func(b *dto.BookDTO) { b.ISBN = "97800000000ab" }, "isbn", "isbn must be exactly 13 digits"},
		{"missing price", func(b *dto.BookDTO) { b.BasePrice = nil }, "basePrice", "basePrice is required"},
		{"negative price", func(b *dto.BookDTO) {
			p := decimal.NewFromInt(-10)
			b.BasePrice = &p
		}, "basePrice", "basePrice must be at least 0"},
		{"missing discount", func(b *dto.BookDTO) { b.DiscountPercentage = nil }, "discountPercentage", "discountPercentage is required"},
		{"negative discount", func(b *dto.BookDTO) {
			d := -5.0
			b.DiscountPercentage = &d
		}, "discountPercentage", "discountPercentage must be at least 0"},
		{"discount above 100", func(b *dto.BookDTO) {
			d := 105.0
			b.DiscountPercentage = &d
		}, "discountPercentage", "discountPercentage must be at most 100"},
		{"future publication", func(b *dto.BookDTO) {
			d := today.AddDate(0, 0, 1)
			b.PublicationDate = &d
		}, "publicationDate", "publicationDate cannot be in the future"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := validBook()
			tt.mutate(b)

			verr := violations(t, v.Validate(b))
			require.Len(t, verr.Violations, 1)
			assert.Equal(t, tt.field, verr.Violations[0].Field)
			assert.Equal(t, tt.message, verr.Violations[0].Message)
		})
	}
}

func TestValidate_ReportsEveryViolation(t *testing.T) {
	v := New(clock.NewFake(today))

	verr := violations(t, v.Validate(&dto.BookDTO{}))
	assert.True(t, verr.HasField("isbn"))
	assert.True(t, verr.HasField("basePrice"))
	assert.True(t, verr.HasField("discountPercentage"))
	assert.Len(t, verr.Violations, 3)
}

func TestValidate_PublicationDateToday(t *testing.T) {
	clk := clock.NewFake(today)
	v := New(clk)

	b := validBook()
	sameDay := time.Date(2024, 5, 10, 23, 59, 0, 0, time.UTC)
	b.PublicationDate = &sameDay
	assert.NoError(t, v.Validate(b))

	clk.AdvanceDays(-1)
	assert.Error(t, v.Validate(b))
}

func TestValidate_NestedReferencesAreNotChecked(t *testing.T) {
	v := New(clock.NewFake(today))

	b := validBook()
	b.Publisher = &dto.PublisherDTO{ID: 1}
	b.Authors = []dto.AuthorDTO{{ID: 2, Slug: "Not A Slug"}}

	assert.NoError(t, v.Validate(b))
}

func TestValidate_Publisher(t *testing.T) {
	v := New(clock.NewFake(today))

	assert.NoError(t, v.Validate(&dto.PublisherDTO{ID: 1, Name: "Tor Books", Slug: "tor-books"}))
	assert.NoError(t, v.Validate(&dto.PublisherDTO{ID: 1, Name: "Tor Books"}))

	verr := violations(t, v.Validate(&dto.PublisherDTO{ID: 1, Slug: "Tor_Books"}))
	require.Len(t, verr.Violations, 2)
	assert.Equal(t, "name", verr.Violations[0].Field)
	assert.Equal(t, "slug", verr.Violations[1].Field)
	assert.Equal(t, "slug must be lowercase words joined by hyphens", verr.Violations[1].Message)
}

func TestValidate_AuthorSlugs(t *testing.T) {
	v := New(clock.NewFake(today))

	for _, slug := range []string{"ursula-k-le-guin", "borges", "a1-b2"} {
		assert.NoError(t, v.Validate(&dto.AuthorDTO{Name: "x", Slug: slug}), slug)
	}
	for _, slug := range []string{"-lead", "trail-", "double--dash", "Upper", "with space"} {
		verr := violations(t, v.Validate(&dto.AuthorDTO{Name: "x", Slug: slug}))
		assert.True(t, verr.HasField("slug"), slug)
	}
}
