package m_outbox

import (
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/murkotick/bookstore-catalog-service/internal/models/m_author"
	"github.com/murkotick/bookstore-catalog-service/internal/models/m_book"
	"github.com/murkotick/bookstore-catalog-service/internal/models/m_publisher"
)

// Record is one outbox row. Payload is protojson-encoded structpb.Struct.
type Record struct {
	EventID       string
	EventType     string
	AggregateType string
	AggregateID   string
	Payload       string
	Status        string
	CreatedAt     time.Time
}

// NewRecord builds a pending outbox record for an aggregate change.
func NewRecord(eventType, aggregateType string, aggregateID int64, fields map[string]interface{}, now time.Time) (*Record, error) {
	payload, err := encodePayload(fields)
	if err != nil {
		return nil, fmt.Errorf("outbox payload for %s: %w", eventType, err)
	}
	return &Record{
		EventID:       uuid.New().String(),
		EventType:     eventType,
		AggregateType: aggregateType,
		AggregateID:   strconv.FormatInt(aggregateID, 10),
		Payload:       payload,
		Status:        StatusPending,
		CreatedAt:     now.UTC(),
	}, nil
}

// DecodePayload parses a stored payload back into plain Go values.
func DecodePayload(payload string) (map[string]interface{}, error) {
	var s structpb.Struct
	if err := protojson.Unmarshal([]byte(payload), &s); err != nil {
		return nil, err
	}
	return s.AsMap(), nil
}

func encodePayload(fields map[string]interface{}) (string, error) {
	if fields == nil {
		fields = map[string]interface{}{}
	}
	s, err := structpb.NewStruct(fields)
	if err != nil {
		return "", err
	}
	b, err := protojson.Marshal(s)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// BookPayload extracts primitives from a book. Prices travel as strings to
// keep them exact.
func BookPayload(e *m_book.Entity) map[string]interface{} {
	authorIDs := make([]interface{}, 0, len(e.Authors))
	for _, id := range e.AuthorIDs() {
		authorIDs = append(authorIDs, strconv.FormatInt(id, 10))
	}
	p := map[string]interface{}{
		"book_id":    strconv.FormatInt(e.ID, 10),
		"isbn":       e.ISBN,
		"title_es":   e.TitleEs,
		"title_en":   e.TitleEn,
		"author_ids": authorIDs,
	}
	if e.BasePrice != nil {
		p["base_price"] = e.BasePrice.String()
	}
	if e.DiscountPercentage != nil {
		p["discount_percentage"] = *e.DiscountPercentage
	}
	if e.Publisher != nil {
		p["publisher_id"] = strconv.FormatInt(e.Publisher.ID, 10)
	}
	if e.PublicationDate != nil {
		p["publication_date"] = e.PublicationDate.Format(time.DateOnly)
	}
	return p
}

func AuthorPayload(e *m_author.Entity) map[string]interface{} {
	return map[string]interface{}{
		"author_id": strconv.FormatInt(e.ID, 10),
		"name":      e.Name,
		"slug":      e.Slug,
	}
}

func PublisherPayload(e *m_publisher.Entity) map[string]interface{} {
	return map[string]interface{}{
		"publisher_id": strconv.FormatInt(e.ID, 10),
		"name":         e.Name,
		"slug":         e.Slug,
	}
}
