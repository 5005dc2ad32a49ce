package update_publisher

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	contracts "github.com/murkotick/bookstore-catalog-service/internal/app/catalog/contracts"
	"github.com/murkotick/bookstore-catalog-service/internal/app/catalog/contracts/mocks"
	"github.com/murkotick/bookstore-catalog-service/internal/app/catalog/domain"
	"github.com/murkotick/bookstore-catalog-service/internal/app/catalog/dto"
	"github.com/murkotick/bookstore-catalog-service/internal/app/catalog/validation"
	"github.com/murkotick/bookstore-catalog-service/internal/models/m_publisher"
	"github.com/murkotick/bookstore-catalog-service/internal/pkg/clock"
)

func newInteractor() (*Interactor, *mocks.PublisherStore) {
	pubs := &mocks.PublisherStore{}
	v := validation.New(clock.RealClock{})
	return NewInteractor(pubs, v, slog.New(slog.NewTextHandler(io.Discard, nil))), pubs
}

func TestExecute_RenamesPublisher(t *testing.T) {
	it, pubs := newInteractor()
	pubs.On("FindByID", mock.Anything, int64(3)).Return(&m_publisher.Entity{ID: 3, Name: "Tor", Slug: "tor"}, nil)
	pubs.On("Save", mock.Anything, &m_publisher.Entity{ID: 3, Name: "Tor Books", Slug: "tor-books"}).
		Return(&m_publisher.Entity{ID: 3, Name: "Tor Books", Slug: "tor-books"}, nil).Once()

	out, err := it.Execute(context.Background(), &dto.PublisherDTO{ID: 3, Name: "Tor Books", Slug: "tor-books"})
	require.NoError(t, err)
	assert.Equal(t, &dto.PublisherDTO{ID: 3, Name: "Tor Books", Slug: "tor-books"}, out)
	pubs.AssertExpectations(t)
}

func TestExecute_PublisherNotFound(t *testing.T) {
	it, pubs := newInteractor()
	pubs.On("FindByID", mock.Anything, int64(3)).Return(nil, contracts.ErrRecordNotFound)

	_, err := it.Execute(context.Background(), &dto.PublisherDTO{ID: 3, Name: "Tor Books"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPublisherNotFound)
	assert.Contains(t, err.Error(), "publisher with id 3 not found")
	pubs.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestExecute_InvalidPublisher(t *testing.T) {
	it, pubs := newInteractor()

	_, err := it.Execute(context.Background(), &dto.PublisherDTO{ID: 3, Slug: "Bad Slug"})
	assert.ErrorIs(t, err, domain.ErrValidation)
	pubs.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestExecute_SlugTaken(t *testing.T) {
	it, pubs := newInteractor()
	pubs.On("FindByID", mock.Anything, int64(3)).Return(&m_publisher.Entity{ID: 3, Name: "Tor", Slug: "tor"}, nil)
	pubs.On("Save", mock.Anything, mock.Anything).Return(nil, contracts.ErrDuplicateKey)

	_, err := it.Execute(context.Background(), &dto.PublisherDTO{ID: 3, Name: "Orbit", Slug: "orbit"})
	assert.ErrorIs(t, err, domain.ErrSlugTaken)
}
