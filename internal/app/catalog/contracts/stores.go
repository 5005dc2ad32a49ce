package contracts

import (
	"context"
	"errors"

	"github.com/murkotick/bookstore-catalog-service/internal/app/catalog/domain"
	"github.com/murkotick/bookstore-catalog-service/internal/models/m_author"
	"github.com/murkotick/bookstore-catalog-service/internal/models/m_book"
	"github.com/murkotick/bookstore-catalog-service/internal/models/m_publisher"
)

var (
	// ErrRecordNotFound is returned by Find* methods when no row matches.
	ErrRecordNotFound = errors.New("record not found")

	// ErrDuplicateKey is returned by Save when a unique column (isbn, slug)
	// collides with another row at commit time.
	ErrDuplicateKey = errors.New("duplicate key")
)

// BookStore persists books together with their publisher and author links.
// Save and DeleteByISBN each run as one unit of work.
type BookStore interface {
	FindAll(ctx context.Context, page, size int) (domain.Page[m_book.Entity], error)
	FindByISBN(ctx context.Context, isbn string) (*m_book.Entity, error)
	FindByID(ctx context.Context, id int64) (*m_book.Entity, error)

	// Save inserts when ID is 0 and fully replaces the stored book otherwise.
	// The returned entity carries the assigned ID.
	Save(ctx context.Context, e *m_book.Entity) (*m_book.Entity, error)

	DeleteByISBN(ctx context.Context, isbn string) error
}

type PublisherStore interface {
	FindByID(ctx context.Context, id int64) (*m_publisher.Entity, error)
	FindBySlug(ctx context.Context, slug string) (*m_publisher.Entity, error)
	Save(ctx context.Context, e *m_publisher.Entity) (*m_publisher.Entity, error)
}

type AuthorStore interface {
	FindByID(ctx context.Context, id int64) (*m_author.Entity, error)
	FindBySlug(ctx context.Context, slug string) (*m_author.Entity, error)
	Save(ctx context.Context, e *m_author.Entity) (*m_author.Entity, error)
}
