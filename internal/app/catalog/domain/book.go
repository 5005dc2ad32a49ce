package domain

import (
	"fmt"
	"time"
)

// Book is the catalog aggregate root.
// The final price is derived from base price and discount when the book is
// built, and again on demand through CalculateFinalPrice.
type Book struct {
	id                 int64
	isbn               string
	titleEs            string
	titleEn            string
	synopsisEs         string
	synopsisEn         string
	basePrice          *Money
	discountPercentage *float64
	price              *Money
	cover              *string
	publicationDate    *time.Time
	publisher          *Publisher
	authors            []*Author
}

// BookAttrs carries the fields needed to build a Book.
type BookAttrs struct {
	ID                 int64
	ISBN               string
	TitleEs            string
	TitleEn            string
	SynopsisEs         string
	SynopsisEn         string
	BasePrice          *Money
	DiscountPercentage *float64
	Cover              *string
	PublicationDate    *time.Time
	Publisher          *Publisher
	Authors            []*Author
}

// NewBook builds a Book and computes its final price.
// It fails when the base price is negative or an author appears twice.
func NewBook(a BookAttrs) (*Book, error) {
	if a.BasePrice != nil && a.BasePrice.IsNegative() {
		return nil, fmt.Errorf("%w: %s", ErrNegativePrice, a.BasePrice)
	}

	b := &Book{
		id:                 a.ID,
		isbn:               a.ISBN,
		titleEs:            a.TitleEs,
		titleEn:            a.TitleEn,
		synopsisEs:         a.SynopsisEs,
		synopsisEn:         a.SynopsisEn,
		basePrice:          a.BasePrice,
		discountPercentage: copyFloat(a.DiscountPercentage),
		cover:              copyString(a.Cover),
		publisher:          a.Publisher,
	}
	if a.PublicationDate != nil {
		d := *a.PublicationDate
		b.publicationDate = &d
	}
	if err := b.SetAuthors(a.Authors); err != nil {
		return nil, err
	}

	b.price = b.CalculateFinalPrice()
	return b, nil
}

// Getters

func (b *Book) ID() int64 { return b.id }
func (b *Book) ISBN() string { return b.isbn }
func (b *Book) TitleEs() string { return b.titleEs }
func (b *Book) TitleEn() string { return b.titleEn }
func (b *Book) SynopsisEs() string { return b.synopsisEs }
func (b *Book) SynopsisEn() string { return b.synopsisEn }
func (b *Book) BasePrice() *Money { return b.basePrice }
func (b *Book) Cover() *string { return copyString(b.cover) }
func (b *Book) Publisher() *Publisher { return b.publisher }
func (b *Book) DiscountPercentage() *float64 {
	return copyFloat(b.discountPercentage)
}

func (b *Book) PublicationDate() *time.Time {
	if b.publicationDate == nil {
		return nil
	}
	d := *b.publicationDate
	return &d
}

// Authors returns a copy of the ordered author list.
func (b *Book) Authors() []*Author {
	out := make([]*Author, len(b.authors))
	copy(out, b.authors)
	return out
}

// Discount returns the discount with a missing percentage treated as 0.
func (b *Book) Discount() Discount {
	return DiscountFromPointer(b.discountPercentage)
}

// Price returns the final price computed when the book was built.
func (b *Book) Price() *Money {
	return b.price
}

// CalculateFinalPrice derives the final price from the current base price
// and discount. A missing base price yields 0.00.
func (b *Book) CalculateFinalPrice() *Money {
	return b.Discount().ApplyTo(b.basePrice)
}

// SetPublisher replaces the publisher reference.
func (b *Book) SetPublisher(p *Publisher) {
	b.publisher = p
}

// SetAuthors replaces the author list. The list is left untouched when it
// contains the same author twice.
func (b *Book) SetAuthors(authors []*Author) error {
	seen := make(map[int64]struct{}, len(authors))
	out := make([]*Author, 0, len(authors))
	for _, a := range authors {
		if a == nil {
			continue
		}
		if _, dup := seen[a.ID()]; dup {
			return fmt.Errorf("%w: id %d", ErrDuplicateAuthor, a.ID())
		}
		seen[a.ID()] = struct{}{}
		out = append(out, a)
	}
	b.authors = out
	return nil
}

// AddAuthor appends an author, rejecting one already attached.
func (b *Book) AddAuthor(a *Author) error {
	if a == nil {
		return nil
	}
	for _, existing := range b.authors {
		if existing.ID() == a.ID() {
			return fmt.Errorf("%w: id %d", ErrDuplicateAuthor, a.ID())
		}
	}
	b.authors = append(b.authors, a)
	return nil
}

func copyFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func copyString(v *string) *string {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
