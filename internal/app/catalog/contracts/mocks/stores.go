// Package mocks provides testify mocks for the catalog store contracts.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/murkotick/bookstore-catalog-service/internal/app/catalog/domain"
	"github.com/murkotick/bookstore-catalog-service/internal/models/m_author"
	"github.com/murkotick/bookstore-catalog-service/internal/models/m_book"
	"github.com/murkotick/bookstore-catalog-service/internal/models/m_publisher"
)

type BookStore struct {
	mock.Mock
}

func (m *BookStore) FindAll(ctx context.Context, page, size int) (domain.Page[m_book.Entity], error) {
	args := m.Called(ctx, page, size)
	return args.Get(0).(domain.Page[m_book.Entity]), args.Error(1)
}

func (m *BookStore) FindByISBN(ctx context.Context, isbn string) (*m_book.Entity, error) {
	args := m.Called(ctx, isbn)
	e, _ := args.Get(0).(*m_book.Entity)
	return e, args.Error(1)
}

func (m *BookStore) FindByID(ctx context.Context, id int64) (*m_book.Entity, error) {
	args := m.Called(ctx, id)
	e, _ := args.Get(0).(*m_book.Entity)
	return e, args.Error(1)
}

func (m *BookStore) Save(ctx context.Context, e *m_book.Entity) (*m_book.Entity, error) {
	args := m.Called(ctx, e)
	out, _ := args.Get(0).(*m_book.Entity)
	return out, args.Error(1)
}

func (m *BookStore) DeleteByISBN(ctx context.Context, isbn string) error {
	return m.Called(ctx, isbn).Error(0)
}

type PublisherStore struct {
	mock.Mock
}

func (m *PublisherStore) FindByID(ctx context.Context, id int64) (*m_publisher.Entity, error) {
	args := m.Called(ctx, id)
	e, _ := args.Get(0).(*m_publisher.Entity)
	return e, args.Error(1)
}

func (m *PublisherStore) FindBySlug(ctx context.Context, slug string) (*m_publisher.Entity, error) {
	args := m.Called(ctx, slug)
	e, _ := args.Get(0).(*m_publisher.Entity)
	return e, args.Error(1)
}

func (m *PublisherStore) Save(ctx context.Context, e *m_publisher.Entity) (*m_publisher.Entity, error) {
	args := m.Called(ctx, e)
	out, _ := args.Get(0).(*m_publisher.Entity)
	return out, args.Error(1)
}

type AuthorStore struct {
	mock.Mock
}

func (m *AuthorStore) FindByID(ctx context.Context, id int64) (*m_author.Entity, error) {
	args := m.Called(ctx, id)
	e, _ := args.Get(0).(*m_author.Entity)
	return e, args.Error(1)
}

func (m *AuthorStore) FindBySlug(ctx context.Context, slug string) (*m_author.Entity, error) {
	args := m.Called(ctx, slug)
	e, _ := args.Get(0).(*m_author.Entity)
	return e, args.Error(1)
}

func (m *AuthorStore) Save(ctx context.Context, e *m_author.Entity) (*m_author.Entity, error) {
	args := m.Called(ctx, e)
	out, _ := args.Get(0).(*m_author.Entity)
	return out, args.Error(1)
}
