package list_books

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/murkotick/bookstore-catalog-service/internal/app/catalog/contracts/mocks"
	"github.com/murkotick/bookstore-catalog-service/internal/app/catalog/domain"
	"github.com/murkotick/bookstore-catalog-service/internal/models/m_book"
)

func entity(id int64, isbn, price string) m_book.Entity {
	p := decimal.RequireFromString(price)
	discount := 50.0
	return m_book.Entity{ID: id, ISBN: isbn, BasePrice: &p, DiscountPercentage: &discount}
}

// TestExecute_SecondPage checks that page metadata comes from the store and
// prices are computed for every item.
func TestExecute_SecondPage(t *testing.T) {
	books := &mocks.BookStore{}
	stored, err := domain.NewPage([]m_book.Entity{
		entity(4, "9780000000004", "10.00"),
		entity(5, "9780000000005", "0.05"),
	}, 2, 3, 5)
	require.NoError(t, err)
	books.On("FindAll", mock.Anything, 2, 3).Return(stored, nil)

	out, err := NewHandler(books, nil).Execute(context.Background(), 2, 3)
	require.NoError(t, err)

	assert.Equal(t, 2, out.PageNumber)
	assert.Equal(t, 3, out.PageSize)
	assert.Equal(t, int64(5), out.TotalElements)
	assert.Equal(t, 2, out.TotalPages())
	require.Len(t, out.Items, 2)
	assert.Equal(t, "5.00", out.Items[0].Price.String())
	assert.Equal(t, "0.02", out.Items[1].Price.String())
}

func TestExecute_SkipsMalformedRecords(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))

	books := &mocks.BookStore{}
	stored, err := domain.NewPage([]m_book.Entity{
		entity(1, "9780000000001", "10.00"),
		entity(2, "9780000000002", "-3.00"),
	}, 1, 2, 2)
	require.NoError(t, err)
	books.On("FindAll", mock.Anything, 1, 2).Return(stored, nil)

	out, err := NewHandler(books, logger).Execute(context.Background(), 1, 2)
	require.NoError(t, err)

	require.Len(t, out.Items, 1)
	assert.Equal(t, int64(1), out.Items[0].ID)
	assert.Equal(t, int64(2), out.TotalElements)
	assert.Contains(t, logs.String(), "skipping malformed book record")
	assert.Contains(t, logs.String(), "9780000000002")
}

func TestExecute_RejectsBadPageRequest(t *testing.T) {
	books := &mocks.BookStore{}

	_, err := NewHandler(books, nil).Execute(context.Background(), 0, 10)
	assert.ErrorIs(t, err, domain.ErrInvalidPageRequest)
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = NewHandler(books, nil).Execute(context.Background(), 1, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidPageRequest)

	books.AssertNotCalled(t, "FindAll", mock.Anything, mock.Anything, mock.Anything)
}

func TestExecute_StoreFailure(t *testing.T) {
	books := &mocks.BookStore{}
	boom := errors.New("unavailable")
	books.On("FindAll", mock.Anything, 1, 10).Return(domain.Page[m_book.Entity]{}, boom)

	_, err := NewHandler(books, nil).Execute(context.Background(), 1, 10)
	assert.ErrorIs(t, err, boom)
}
