package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// BookDTO is the transport shape of a book. ID 0 means not yet saved.
// Price is output only and is recomputed on every conversion.
// Nested publisher and authors are references and are not validated here.
type BookDTO struct {
	ID                 int64            `json:"id"`
	ISBN               string           `json:"isbn" validate:"required,isbn_digits"`
	TitleEs            string           `json:"titleEs"`
	TitleEn            string           `json:"titleEn"`
	SynopsisEs         string           `json:"synopsisEs"`
	SynopsisEn         string           `json:"synopsisEn"`
	BasePrice          *decimal.Decimal `json:"basePrice" validate:"required,gte=0"`
	DiscountPercentage *float64         `json:"discountPercentage" validate:"required,gte=0,lte=100"`
	Price              *decimal.Decimal `json:"price" validate:"-"`
	Cover              *string          `json:"cover,omitempty"`
	PublicationDate    *time.Time       `json:"publicationDate,omitempty" validate:"omitempty,not_future"`
	Publisher          *PublisherDTO    `json:"publisher,omitempty" validate:"-"`
	Authors            []AuthorDTO      `json:"authors" validate:"-"`
}

// PublisherID returns the referenced publisher id, or 0 when none is set.
func (b *BookDTO) PublisherID() int64 {
	if b.Publisher == nil {
		return 0
	}
	return b.Publisher.ID
}

// AuthorIDs returns the referenced author ids in order.
func (b *BookDTO) AuthorIDs() []int64 {
	ids := make([]int64, 0, len(b.Authors))
	for _, a := range b.Authors {
		ids = append(ids, a.ID)
	}
	return ids
}

type AuthorDTO struct {
	ID          int64  `json:"id"`
	Name        string `json:"name" validate:"required"`
	Nationality string `json:"nationality"`
	BiographyEs string `json:"biographyEs"`
	BiographyEn string `json:"biographyEn"`
	BirthYear   *int   `json:"birthYear,omitempty"`
	DeathYear   *int   `json:"deathYear,omitempty"`
	Slug        string `json:"slug" validate:"omitempty,slug"`
}

type PublisherDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name" validate:"required"`
	Slug string `json:"slug" validate:"omitempty,slug"`
}
