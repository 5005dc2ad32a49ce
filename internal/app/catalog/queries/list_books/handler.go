package list_books

import (
	"context"
	"fmt"
	"log/slog"

	contracts "github.com/murkotick/bookstore-catalog-service/internal/app/catalog/contracts"
	"github.com/murkotick/bookstore-catalog-service/internal/app/catalog/domain"
	"github.com/murkotick/bookstore-catalog-service/internal/app/catalog/dto"
	"github.com/murkotick/bookstore-catalog-service/internal/app/catalog/mapper"
	"github.com/murkotick/bookstore-catalog-service/internal/models/m_book"
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

// Execute returns one page of books with prices computed. Page metadata is
// the store's; records that fail model rules are logged and left out.
func (h *Handler) Execute(ctx context.Context, page, size int) (domain.Page[dto.BookDTO], error) {
	if err := domain.CheckPageRequest(page, size); err != nil {
		return domain.Page[dto.BookDTO]{}, err
	}

	stored, err := h.books.FindAll(ctx, page, size)
	if err != nil {
		return domain.Page[dto.BookDTO]{}, fmt.Errorf("list books page %d: %w", page, err)
	}

	return domain.MapPage(stored, func(e m_book.Entity) (dto.BookDTO, bool) {
		out, err := mapper.BookEntityToDTO(&e)
		if err != nil {
			h.logger.WarnContext(ctx, "skipping malformed book record",
				slog.Int64("book_id", e.ID), slog.String("isbn", e.ISBN), slog.Any("error", err))
			return dto.BookDTO{}, false
		}
		return *out, true
	}), nil
}
