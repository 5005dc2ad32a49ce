package delete_book

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	contracts "github.com/murkotick/bookstore-catalog-service/internal/app/catalog/contracts"
	"github.com/murkotick/bookstore-catalog-service/internal/app/catalog/domain"
	shared "github.com/murkotick/bookstore-catalog-service/internal/app/catalog/usecases/shared"
)

// Interactor implements the delete-book usecase. Authors and the publisher
// of the book are left in place.
type Interactor struct {
	Books  contracts.BookStore
	Logger *slog.Logger
}

func NewInteractor(books contracts.BookStore, logger *slog.Logger) *Interactor {
	return &Interactor{Books: books, Logger: shared.LoggerOrDefault(logger)}
}

// Execute deletes the book with the given ISBN. An unknown ISBN is a
// business-rule error, not a not-found error.
func (it *Interactor) Execute(ctx context.Context, isbn string) error {
	if _, err := it.Books.FindByISBN(ctx, isbn); err != nil {
		if errors.Is(err, contracts.ErrRecordNotFound) {
			return fmt.Errorf("%w: book with isbn %s does not exist", domain.ErrBookDoesNotExist, isbn)
		}
		return fmt.Errorf("lookup isbn %s: %w", isbn, err)
	}

	if err := it.Books.DeleteByISBN(ctx, isbn); err != nil {
		// lost a race with another delete
		if errors.Is(err, contracts.ErrRecordNotFound) {
			return fmt.Errorf("%w: book with isbn %s does not exist", domain.ErrBookDoesNotExist, isbn)
		}
		return fmt.Errorf("delete book %s: %w", isbn, err)
	}

	it.Logger.InfoContext(ctx, "book deleted", slog.String("isbn", isbn))
	return nil
}
