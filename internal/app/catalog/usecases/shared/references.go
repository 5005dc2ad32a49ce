package shared

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

// ResolveReferences loads the publisher and every author a book DTO points
// at. It returns on the first missing reference, before anything is written.
// A DTO without publisher yields a nil publisher.
func ResolveReferences(ctx context.Context, publishers contracts.PublisherStore, authors contracts.AuthorStore, in *dto.BookDTO) (*domain.Publisher, []*domain.Author, error) {
	var publisher *domain.Publisher
	if in.Publisher != nil {
		id := in.Publisher.ID
		e, err := publishers.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, contracts.ErrRecordNotFound) {
				return nil, nil, fmt.Errorf("%w: publisher with id %d does not exist", domain.ErrPublisherNotFound, id)
			}
			return nil, nil, fmt.Errorf("load publisher %d: %w", id, err)
		}
		publisher = mapper.PublisherFromEntity(e)
	}

	resolved := make([]*domain.Author, 0, len(in.Authors))
	for _, id := range in.AuthorIDs() {
		e, err := authors.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, contracts.ErrRecordNotFound) {
				return nil, nil, fmt.Errorf("%w: author with id %d does not exist", domain.ErrAuthorNotFound, id)
			}
			return nil, nil, fmt.Errorf("load author %d: %w", id, err)
		}
		resolved = append(resolved, mapper.AuthorFromEntity(e))
	}

	return publisher, resolved, nil
}

// BuildBook turns a DTO into a model whose references are the resolved
// stored rows instead of whatever the caller sent.
func BuildBook(in *dto.BookDTO, id int64, publisher *domain.Publisher, authors []*domain.Author) (*domain.Book, error) {
	scalar := *in
	scalar.ID = id
	scalar.Publisher = nil
	scalar.Authors = nil

	b, err := mapper.BookFromDTO(&scalar)
	if err != nil {
		return nil, err
	}
	b.SetPublisher(publisher)
	if err := b.SetAuthors(authors); err != nil {
		return nil, err
	}
	return b, nil
}

// LoggerOrDefault falls back to slog.Default for a nil logger.
func LoggerOrDefault(l *slog.Logger) *slog.Logger {
	if l == nil {
		return slog.Default()
	}
	return l
}
