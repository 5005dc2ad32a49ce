package seed

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	contracts "github.com/murkotick/bookstore-catalog-service/internal/app/catalog/contracts"
	"github.com/murkotick/bookstore-catalog-service/internal/app/catalog/contracts/mocks"
	"github.com/murkotick/bookstore-catalog-service/internal/app/catalog/dto"
	"github.com/murkotick/bookstore-catalog-service/internal/app/catalog/validation"
	"github.com/murkotick/bookstore-catalog-service/internal/bootstrap"
	"github.com/murkotick/bookstore-catalog-service/internal/models/m_author"
	"github.com/murkotick/bookstore-catalog-service/internal/models/m_book"
	"github.com/murkotick/bookstore-catalog-service/internal/models/m_publisher"
	"github.com/murkotick/bookstore-catalog-service/internal/pkg/clock"
)

const fixtureJSON = `{
  "publishers": [{"name": "Tor Books", "slug": "tor-books"}],
  "authors": [
    {"name": "Brandon Sanderson", "slug": "brandon-sanderson"},
    {"name": "N.K. Jemisin", "slug": "nk-jemisin"}
  ],
  "books": [
    {"isbn": "9780765326355", "basePrice": "27.99", "discountPercentage": 0,
     "publisherSlug": "tor-books", "authorSlugs": ["brandon-sanderson"]},
    {"isbn": "9780316229296", "basePrice": "16.99", "discountPercentage": 15,
     "authorSlugs": ["nk-jemisin"]}
  ]
}`

type stores struct {
	books      *mocks.BookStore
	publishers *mocks.PublisherStore
	authors    *mocks.AuthorStore
}

func newCatalog() (*bootstrap.Catalog, *stores, *validation.Validator) {
	s := &stores{books: &mocks.BookStore{}, publishers: &mocks.PublisherStore{}, authors: &mocks.AuthorStore{}}
	v := validation.New(clock.NewFake(time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)))
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	c := bootstrap.Wire(bootstrap.Stores{Books: s.books, Publishers: s.publishers, Authors: s.authors}, v, logger)
	return c, s, v
}

func TestDecode_RepoFixture(t *testing.T) {
	f, err := os.Open(filepath.Join("..", "..", "testdata", "seed.json"))
	require.NoError(t, err)
	defer f.Close()

	fx, err := Decode(f)
	require.NoError(t, err)
	assert.NotEmpty(t, fx.Publishers)
	assert.NotEmpty(t, fx.Authors)
	require.NotEmpty(t, fx.Books)
	assert.NotNil(t, fx.Books[0].BasePrice)
	assert.NotEmpty(t, fx.Books[0].AuthorSlugs)
}

func TestDecode_UnknownField(t *testing.T) {
	_, err := Decode(strings.NewReader(`{"publishers": [], "magazines": []}`))
	assert.Error(t, err)
}

func TestRun_SavesEverythingBySlug(t *testing.T) {
	c, s, v := newCatalog()
	fx, err := Decode(strings.NewReader(fixtureJSON))
	require.NoError(t, err)

	s.publishers.On("FindBySlug", mock.Anything, "tor-books").Return(nil, contracts.ErrRecordNotFound)
	s.publishers.On("Save", mock.Anything, mock.MatchedBy(func(e *m_publisher.Entity) bool { return e.ID == 0 })).
		Return(&m_publisher.Entity{ID: 10, Name: "Tor Books", Slug: "tor-books"}, nil)
	s.publishers.On("FindByID", mock.Anything, int64(10)).
		Return(&m_publisher.Entity{ID: 10, Name: "Tor Books", Slug: "tor-books"}, nil)

	s.authors.On("FindBySlug", mock.Anything, "brandon-sanderson").Return(nil, contracts.ErrRecordNotFound)
	// already seeded on an earlier run
	s.authors.On("FindBySlug", mock.Anything, "nk-jemisin").Return(&m_author.Entity{ID: 21, Name: "N.K. Jemisin", Slug: "nk-jemisin"}, nil)
	s.authors.On("Save", mock.Anything, mock.Anything).Return(&m_author.Entity{ID: 20, Name: "Brandon Sanderson", Slug: "brandon-sanderson"}, nil).Once()
	s.authors.On("FindByID", mock.Anything, int64(20)).Return(&m_author.Entity{ID: 20, Name: "Brandon Sanderson"}, nil)

	s.books.On("FindByISBN", mock.Anything, "9780765326355").Return(nil, contracts.ErrRecordNotFound)
	s.books.On("FindByISBN", mock.Anything, "9780316229296").Return(&m_book.Entity{ID: 99, ISBN: "9780316229296"}, nil)

	var saved *m_book.Entity
	s.books.On("Save", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { saved = args.Get(1).(*m_book.Entity) }).
		Return(&m_book.Entity{ID: 30, ISBN: "9780765326355"}, nil).Once()

	res, err := Run(context.Background(), c, v, fx, nil)
	require.NoError(t, err)

	assert.Equal(t, Result{Publishers: 1, Authors: 1, Books: 1, SkippedBooks: 1}, res)
	require.NotNil(t, saved)
	assert.Equal(t, int64(10), saved.PublisherID())
	assert.Equal(t, []int64{20}, saved.AuthorIDs())

	s.books.AssertExpectations(t)
	s.authors.AssertExpectations(t)
}

func TestRun_UnknownAuthorSlug(t *testing.T) {
	c, s, v := newCatalog()
	fx := &Fixture{Books: []Book{{AuthorSlugs: []string{"ghost"}}}}
	fx.Books[0].ISBN = "9780765326355"

	_, err := Run(context.Background(), c, v, fx, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown author slug "ghost"`)
	s.books.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestRun_InvalidPublisher(t *testing.T) {
	c, s, v := newCatalog()
	fx := &Fixture{Publishers: []dto.PublisherDTO{{Slug: "Not Valid"}}}

	_, err := Run(context.Background(), c, v, fx, nil)
	assert.Error(t, err)
	s.publishers.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}
