package update_book

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	contracts "github.com/murkotick/bookstore-catalog-service/internal/app/catalog/contracts"
	"github.com/murkotick/bookstore-catalog-service/internal/app/catalog/domain"
	"github.com/murkotick/bookstore-catalog-service/internal/app/catalog/dto"
	"github.com/murkotick/bookstore-catalog-service/internal/app/catalog/mapper"
	shared "github.com/murkotick/bookstore-catalog-service/internal/app/catalog/usecases/shared"
)

// Interactor implements the update-book usecase. Updates replace every
// field of the stored book, references included.
type Interactor struct {
	Books      contracts.BookStore
	Publishers contracts.PublisherStore
	Authors    contracts.AuthorStore
	Validator  contracts.Validator
	Logger     *slog.Logger
}

func NewInteractor(books contracts.BookStore, publishers contracts.PublisherStore, authors contracts.AuthorStore, v contracts.Validator, logger *slog.Logger) *Interactor {
	return &Interactor{
		Books:      books,
		Publishers: publishers,
		Authors:    authors,
		Validator:  v,
		Logger:     shared.LoggerOrDefault(logger),
	}
}

// Execute updates the book identified by in.ID. The ISBN may stay the same
// but may not move onto another book's ISBN.
func (it *Interactor) Execute(ctx context.Context, in *dto.BookDTO) (*dto.BookDTO, error) {
	if err := it.Validator.Validate(in); err != nil {
		return nil, err
	}

	if _, err := it.Books.FindByID(ctx, in.ID); err != nil {
		if errors.Is(err, contracts.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: book with id %d not found", domain.ErrBookNotFound, in.ID)
		}
		return nil, fmt.Errorf("load book %d: %w", in.ID, err)
	}

	other, err := it.Books.FindByISBN(ctx, in.ISBN)
	switch {
	case err == nil && other.ID != in.ID:
		return nil, fmt.Errorf("%w: another book with isbn %s already exists", domain.ErrIsbnTaken, in.ISBN)
	case err != nil && !errors.Is(err, contracts.ErrRecordNotFound):
		return nil, fmt.Errorf("lookup isbn %s: %w", in.ISBN, err)
	}

	publisher, authors, err := shared.ResolveReferences(ctx, it.Publishers, it.Authors, in)
	if err != nil {
		return nil, err
	}

	book, err := shared.BuildBook(in, in.ID, publisher, authors)
	if err != nil {
		return nil, err
	}

	saved, err := it.Books.Save(ctx, mapper.BookToEntity(book))
	if err != nil {
		if errors.Is(err, contracts.ErrDuplicateKey) {
			return nil, fmt.Errorf("%w: another book with isbn %s already exists", domain.ErrIsbnTaken, in.ISBN)
		}
		return nil, fmt.Errorf("save book %d: %w", in.ID, err)
	}

	out, err := mapper.BookEntityToDTO(saved)
	if err != nil {
		return nil, err
	}
	it.Logger.InfoContext(ctx, "book updated", slog.Int64("book_id", out.ID), slog.String("isbn", out.ISBN))
	return out, nil
}
