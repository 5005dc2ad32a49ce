package create_book

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

// Interactor implements the create-book usecase.
type Interactor struct {
	Books      contracts.BookStore
	Publishers contracts.PublisherStore
	Authors    contracts.AuthorStore
	Validator  contracts.Validator
	Logger     *slog.Logger
}

// NewInteractor constructs the interactor.
func NewInteractor(books contracts.BookStore, publishers contracts.PublisherStore, authors contracts.AuthorStore, v contracts.Validator, logger *slog.Logger) *Interactor {
	return &Interactor{
		Books:      books,
		Publishers: publishers,
		Authors:    authors,
		Validator:  v,
		Logger:     shared.LoggerOrDefault(logger),
	}
}

// Execute validates the book, checks its ISBN is free, resolves its
// references and saves it. Any id on the input is ignored. Nothing is
// written unless every check passes.
func (it *Interactor) Execute(ctx context.Context, in *dto.BookDTO) (*dto.BookDTO, error) {
	// 1. Field validation
	if err := it.Validator.Validate(in); err != nil {
		return nil, err
	}

	// 2. ISBN uniqueness
	_, err := it.Books.FindByISBN(ctx, in.ISBN)
	switch {
	case err == nil:
		return nil, fmt.Errorf("%w: book with isbn %s already exists", domain.ErrBookAlreadyExists, in.ISBN)
	case !errors.Is(err, contracts.ErrRecordNotFound):
		return nil, fmt.Errorf("lookup isbn %s: %w", in.ISBN, err)
	}

	// 3. Publisher and authors must exist
	publisher, authors, err := shared.ResolveReferences(ctx, it.Publishers, it.Authors, in)
	if err != nil {
		return nil, err
	}

	// 4. Build model
	book, err := shared.BuildBook(in, 0, publisher, authors)
	if err != nil {
		return nil, err
	}

	// 5. Persist
	saved, err := it.Books.Save(ctx, mapper.BookToEntity(book))
	if err != nil {
		if errors.Is(err, contracts.ErrDuplicateKey) {
			return nil, fmt.Errorf("%w: book with isbn %s already exists", domain.ErrBookAlreadyExists, in.ISBN)
		}
		return nil, fmt.Errorf("save book %s: %w", in.ISBN, err)
	}

	out, err := mapper.BookEntityToDTO(saved)
	if err != nil {
		return nil, err
	}
	it.Logger.InfoContext(ctx, "book created", slog.Int64("book_id", out.ID), slog.String("isbn", out.ISBN))
	return out, nil
}
