package m_book

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/murkotick/bookstore-catalog-service/internal/models/m_author"
	"github.com/murkotick/bookstore-catalog-service/internal/models/m_publisher"
)

// Entity is the persisted shape of a book. ID 0 means not yet saved.
// The final price is never stored.
type Entity struct {
	ID                 int64
	ISBN               string
	TitleEs            string
	TitleEn            string
	SynopsisEs         string
	SynopsisEn         string
	BasePrice          *decimal.Decimal
	DiscountPercentage *float64
	Cover              *string
	PublicationDate    *time.Time
	Publisher          *m_publisher.Entity
	Authors            []m_author.Entity
}

// PublisherID returns the referenced publisher id, or 0 when unset.
func (e *Entity) PublisherID() int64 {
	if e.Publisher == nil {
		return 0
	}
	return e.Publisher.ID
}

// AuthorIDs returns the referenced author ids in order.
func (e *Entity) AuthorIDs() []int64 {
	ids := make([]int64, 0, len(e.Authors))
	for _, a := range e.Authors {
		ids = append(ids, a.ID)
	}
	return ids
}
