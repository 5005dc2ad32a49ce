package m_outbox

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/murkotick/bookstore-catalog-service/internal/models/m_author"
	"github.com/murkotick/bookstore-catalog-service/internal/models/m_book"
	"github.com/murkotick/bookstore-catalog-service/internal/models/m_publisher"
)

func TestNewRecord_BookPayload(t *testing.T) {
	price := decimal.RequireFromString("19.99")
	discount := 10.0
	published := time.Date(1968, 11, 1, 0, 0, 0, 0, time.UTC)
	book := &m_book.Entity{
		ID:                 42,
		ISBN:               "9780000000001",
		TitleEn:            "A Wizard of Earthsea",
		BasePrice:          &price,
		DiscountPercentage: &discount,
		PublicationDate:    &published,
		Publisher:          &m_publisher.Entity{ID: 3},
		Authors:            []m_author.Entity{{ID: 7}, {ID: 8}},
	}
	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.FixedZone("CEST", 2*3600))

	rec, err := NewRecord(EventBookCreated, AggregateBook, book.ID, BookPayload(book), now)
	require.NoError(t, err)

	_, err = uuid.Parse(rec.EventID)
	assert.NoError(t, err)
	assert.Equal(t, "42", rec.AggregateID)
	assert.Equal(t, StatusPending, rec.Status)
	assert.Equal(t, time.UTC, rec.CreatedAt.Location())
	assert.True(t, now.Equal(rec.CreatedAt))

	fields, err := DecodePayload(rec.Payload)
	require.NoError(t, err)
	assert.Equal(t, "42", fields["book_id"])
	assert.Equal(t, "19.99", fields["base_price"])
	assert.Equal(t, 10.0, fields["discount_percentage"])
	assert.Equal(t, "3", fields["publisher_id"])
	assert.Equal(t, "1968-11-01", fields["publication_date"])
	assert.Equal(t, []interface{}{"7", "8"}, fields["author_ids"])
}

func TestNewRecord_OmitsMissingOptionalFields(t *testing.T) {
	rec, err := NewRecord(EventBookDeleted, AggregateBook, 1, BookPayload(&m_book.Entity{ID: 1, ISBN: "9780000000001"}), time.Now())
	require.NoError(t, err)

	fields, err := DecodePayload(rec.Payload)
	require.NoError(t, err)
	assert.NotContains(t, fields, "base_price")
	assert.NotContains(t, fields, "publisher_id")
	assert.Equal(t, []interface{}{}, fields["author_ids"])
}

func TestNewRecord_UnsupportedValue(t *testing.T) {
	_, err := NewRecord(EventAuthorCreated, AggregateAuthor, 1, map[string]interface{}{"bad": struct{}{}}, time.Now())
	assert.Error(t, err)
}

func TestPublisherAndAuthorPayloads(t *testing.T) {
	assert.Equal(t, map[string]interface{}{"publisher_id": "3", "name": "Tor", "slug": "tor"},
		PublisherPayload(&m_publisher.Entity{ID: 3, Name: "Tor", Slug: "tor"}))
	assert.Equal(t, map[string]interface{}{"author_id": "7", "name": "N.K. Jemisin", "slug": "nk-jemisin"},
		AuthorPayload(&m_author.Entity{ID: 7, Name: "N.K. Jemisin", Slug: "nk-jemisin"}))
}

func TestBuildInsertMap_Pending(t *testing.T) {
	rec := &Record{EventID: "e1", EventType: EventPublisherUpdated, Status: StatusPending}
	m := BuildInsertMap(rec)
	assert.Equal(t, "e1", m[ColEventID])
	assert.Equal(t, StatusPending, m[ColStatus])
	assert.Nil(t, m[ColProcessedAt])
	assert.NotNil(t, InsertMutation(rec))
}
