// Package bootstrap wires stores, validators and usecases from config.
package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"cloud.google.com/go/spanner"
	"github.com/jackc/pgx/v5/pgxpool"

	contracts "github.com/murkotick/bookstore-catalog-service/internal/app/catalog/contracts"
	"github.com/murkotick/bookstore-catalog-service/internal/app/catalog/queries/get_book"
	"github.com/murkotick/bookstore-catalog-service/internal/app/catalog/queries/get_publisher"
	"github.com/murkotick/bookstore-catalog-service/internal/app/catalog/queries/list_books"
	"github.com/murkotick/bookstore-catalog-service/internal/app/catalog/repo/pgstore"
	"github.com/murkotick/bookstore-catalog-service/internal/app/catalog/repo/spannerstore"
	"github.com/murkotick/bookstore-catalog-service/internal/app/catalog/usecases/create_book"
	"github.com/murkotick/bookstore-catalog-service/internal/app/catalog/usecases/delete_book"
	"github.com/murkotick/bookstore-catalog-service/internal/app/catalog/usecases/update_book"
	"github.com/murkotick/bookstore-catalog-service/internal/app/catalog/usecases/update_publisher"
	"github.com/murkotick/bookstore-catalog-service/internal/app/catalog/validation"
	"github.com/murkotick/bookstore-catalog-service/internal/config"
	"github.com/murkotick/bookstore-catalog-service/internal/pkg/clock"
	commitplan "github.com/murkotick/bookstore-catalog-service/internal/pkg/committer"
)

// Stores groups the three catalog stores of one backend.
type Stores struct {
	Books      contracts.BookStore
	Publishers contracts.PublisherStore
	Authors    contracts.AuthorStore
}

// Catalog exposes every catalog operation.
type Catalog struct {
	Stores

	CreateBook      *create_book.Interactor
	UpdateBook      *update_book.Interactor
	DeleteBook      *delete_book.Interactor
	UpdatePublisher *update_publisher.Interactor

	GetBook      *get_book.Handler
	ListBooks    *list_books.Handler
	GetPublisher *get_publisher.Handler

	close func()
}

// Close releases the backend connection.
func (c *Catalog) Close() {
	if c.close != nil {
		c.close()
	}
}

// NewCatalog opens the configured backend and wires the usecases on top.
func NewCatalog(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Catalog, error) {
	clk := clock.RealClock{}

	var (
		stores  Stores
		closeFn func()
	)
	switch cfg.Store.Driver {
	case config.StoreSpanner:
		client, err := spanner.NewClient(ctx, cfg.Spanner.Database)
		if err != nil {
			return nil, fmt.Errorf("spanner client: %w", err)
		}
		stores = SpannerStores(client, clk, logger)
		closeFn = client.Close
	case config.StorePostgres:
		pool, err := pgxpool.New(ctx, cfg.Postgres.DSN)
		if err != nil {
			return nil, fmt.Errorf("postgres pool: %w", err)
		}
		stores = PostgresStores(pool, cfg.Store, clk, logger)
		closeFn = pool.Close
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}

	c := Wire(stores, validation.New(clk), logger)
	c.close = closeFn
	return c, nil
}

func SpannerStores(client *spanner.Client, clk clock.Clock, logger *slog.Logger) Stores {
	deps := spannerstore.Deps{
		Client:    client,
		Committer: commitplan.NewAdapter(client),
		Clock:     clk,
		Logger:    logger,
	}
	return Stores{
		Books:      spannerstore.NewBookStore(deps),
		Publishers: spannerstore.NewPublisherStore(deps),
		Authors:    spannerstore.NewAuthorStore(deps),
	}
}

func PostgresStores(pool *pgxpool.Pool, cfg config.Store, clk clock.Clock, logger *slog.Logger) Stores {
	deps := pgstore.Deps{
		Pool:    pool,
		Clock:   clk,
		Logger:  logger,
		Timeout: cfg.Timeout,
	}
	return Stores{
		Books:      pgstore.NewBookStore(deps),
		Publishers: pgstore.NewPublisherStore(deps),
		Authors:    pgstore.NewAuthorStore(deps),
	}
}

// Wire builds the usecases and queries over any store implementation.
func Wire(s Stores, v contracts.Validator, logger *slog.Logger) *Catalog {
	return &Catalog{
		Stores:          s,
		CreateBook:      create_book.NewInteractor(s.Books, s.Publishers, s.Authors, v, logger),
		UpdateBook:      update_book.NewInteractor(s.Books, s.Publishers, s.Authors, v, logger),
		DeleteBook:      delete_book.NewInteractor(s.Books, logger),
		UpdatePublisher: update_publisher.NewInteractor(s.Publishers, v, logger),
		GetBook:         get_book.NewHandler(s.Books, logger),
		ListBooks:       list_books.NewHandler(s.Books, logger),
		GetPublisher:    get_publisher.NewHandler(s.Publishers),
	}
}
