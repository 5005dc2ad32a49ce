package get_book

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	contracts "github.com/murkotick/bookstore-catalog-service/internal/app/catalog/contracts"
	"github.com/murkotick/bookstore-catalog-service/internal/app/catalog/domain"
	"github.com/murkotick/bookstore-catalog-service/internal/app/catalog/dto"
	"github.com/murkotick/bookstore-catalog-service/internal/app/catalog/mapper"
)

type Handler struct {
	books  contracts.BookStore
	logger *slog.Logger
}

func NewHandler(books contracts.BookStore, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{books: books, logger: logger}
}

// GetByISBN returns the book or an error wrapping domain.ErrBookNotFound.
func (h *Handler) GetByISBN(ctx context.Context, isbn string) (*dto.BookDTO, error) {
	out, found, err := h.FindByISBN(ctx, isbn)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("%w: book with isbn %s not found", domain.ErrBookNotFound, isbn)
	}
	return out, nil
}

// FindByISBN reports found=false for an unknown ISBN. A stored record that
// cannot be turned into a valid book counts as absent.
func (h *Handler) FindByISBN(ctx context.Context, isbn string) (*dto.BookDTO, bool, error) {
	e, err := h.books.FindByISBN(ctx, isbn)
	if err != nil {
		if errors.Is(err, contracts.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("lookup isbn %s: %w", isbn, err)
	}

	out, err := mapper.BookEntityToDTO(e)
	if err != nil {
		h.logger.WarnContext(ctx, "skipping malformed book record", slog.String("isbn", isbn), slog.Any("error", err))
		return nil, false, nil
	}
	return out, true, nil
}
