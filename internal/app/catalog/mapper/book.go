// Package mapper converts between persisted entities, domain models and DTOs.
// Every function is pure; nil in gives nil out.
package mapper

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/murkotick/bookstore-catalog-service/internal/app/catalog/domain"
	"github.com/murkotick/bookstore-catalog-service/internal/app/catalog/dto"
	"github.com/murkotick/bookstore-catalog-service/internal/models/m_author"
	"github.com/murkotick/bookstore-catalog-service/internal/models/m_book"
)

// BookFromEntity builds the domain model and computes the final price.
// It fails for records that break model rules, such as a negative stored
// price or a repeated author.
func BookFromEntity(e *m_book.Entity) (*domain.Book, error) {
	if e == nil {
		return nil, nil
	}

	authors := make([]*domain.Author, 0, len(e.Authors))
	for i := range e.Authors {
		authors = append(authors, AuthorFromEntity(&e.Authors[i]))
	}

	b, err := domain.NewBook(domain.BookAttrs{
		ID:                 e.ID,
		ISBN:               e.ISBN,
		TitleEs:            e.TitleEs,
		TitleEn:            e.TitleEn,
		SynopsisEs:         e.SynopsisEs,
		SynopsisEn:         e.SynopsisEn,
		BasePrice:          moneyFrom(e.BasePrice),
		DiscountPercentage: e.DiscountPercentage,
		Cover:              e.Cover,
		PublicationDate:    e.PublicationDate,
		Publisher:          PublisherFromEntity(e.Publisher),
		Authors:            authors,
	})
	if err != nil {
		return nil, fmt.Errorf("book %d (isbn %s): %w", e.ID, e.ISBN, err)
	}
	return b, nil
}

// BookToEntity drops the derived price.
func BookToEntity(b *domain.Book) *m_book.Entity {
	if b == nil {
		return nil
	}

	authors := make([]m_author.Entity, 0, len(b.Authors()))
	for _, a := range b.Authors() {
		authors = append(authors, *AuthorToEntity(a))
	}

	return &m_book.Entity{
		ID:                 b.ID(),
		ISBN:               b.ISBN(),
		TitleEs:            b.TitleEs(),
		TitleEn:            b.TitleEn(),
		SynopsisEs:         b.SynopsisEs(),
		SynopsisEn:         b.SynopsisEn(),
		BasePrice:          decimalFrom(b.BasePrice()),
		DiscountPercentage: b.DiscountPercentage(),
		Cover:              b.Cover(),
		PublicationDate:    b.PublicationDate(),
		Publisher:          PublisherToEntity(b.Publisher()),
		Authors:            authors,
	}
}

// BookFromDTO ignores the DTO price; the model derives its own.
func BookFromDTO(d *dto.BookDTO) (*domain.Book, error) {
	if d == nil {
		return nil, nil
	}

	authors := make([]*domain.Author, 0, len(d.Authors))
	for i := range d.Authors {
		authors = append(authors, AuthorFromDTO(&d.Authors[i]))
	}

	return domain.NewBook(domain.BookAttrs{
		ID:                 d.ID,
		ISBN:               d.ISBN,
		TitleEs:            d.TitleEs,
		TitleEn:            d.TitleEn,
		SynopsisEs:         d.SynopsisEs,
		SynopsisEn:         d.SynopsisEn,
		BasePrice:          moneyFrom(d.BasePrice),
		DiscountPercentage: d.DiscountPercentage,
		Cover:              d.Cover,
		PublicationDate:    d.PublicationDate,
		Publisher:          PublisherFromDTO(d.Publisher),
		Authors:            authors,
	})
}

// BookToDTO fills Price from the freshly computed final price.
func BookToDTO(b *domain.Book) *dto.BookDTO {
	if b == nil {
		return nil
	}

	authors := make([]dto.AuthorDTO, 0, len(b.Authors()))
	for _, a := range b.Authors() {
		authors = append(authors, *AuthorToDTO(a))
	}

	return &dto.BookDTO{
		ID:                 b.ID(),
		ISBN:               b.ISBN(),
		TitleEs:            b.TitleEs(),
		TitleEn:            b.TitleEn(),
		SynopsisEs:         b.SynopsisEs(),
		SynopsisEn:         b.SynopsisEn(),
		BasePrice:          decimalFrom(b.BasePrice()),
		DiscountPercentage: b.DiscountPercentage(),
		Price:              decimalFrom(b.CalculateFinalPrice()),
		Cover:              b.Cover(),
		PublicationDate:    b.PublicationDate(),
		Publisher:          PublisherToDTO(b.Publisher()),
		Authors:            authors,
	}
}

// BookEntityToDTO goes entity -> model -> DTO so the price is recomputed.
func BookEntityToDTO(e *m_book.Entity) (*dto.BookDTO, error) {
	b, err := BookFromEntity(e)
	if err != nil {
		return nil, err
	}
	return BookToDTO(b), nil
}

func moneyFrom(d *decimal.Decimal) *domain.Money {
	if d == nil {
		return nil
	}
	return domain.NewMoney(*d)
}

func decimalFrom(m *domain.Money) *decimal.Decimal {
	if m == nil {
		return nil
	}
	d := m.Decimal()
	return &d
}
