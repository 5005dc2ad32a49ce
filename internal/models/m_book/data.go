package m_book

import (
	"math/big"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"cloud.google.com/go/spanner"
	"github.com/shopspring/decimal"
)

// spannerNumericScale is the fractional precision of a Spanner NUMERIC column.
const spannerNumericScale = 9

// BuildValues maps the entity onto the books columns, primary key included.
// References become a nullable publisher_id; authors live in book_authors.
func BuildValues(e *Entity) map[string]interface{} {
	m := map[string]interface{}{
		ColBookID:     e.ID,
		ColISBN:       e.ISBN,
		ColTitleEs:    e.TitleEs,
		ColTitleEn:    e.TitleEn,
		ColSynopsisEs: e.SynopsisEs,
		ColSynopsisEn: e.SynopsisEn,
		ColUpdatedAt:  spanner.CommitTimestamp,
	}

	if e.BasePrice != nil {
		m[ColBasePrice] = spanner.NullNumeric{Numeric: *e.BasePrice.Rat(), Valid: true}
	} else {
		m[ColBasePrice] = spanner.NullNumeric{}
	}

	if e.DiscountPercentage != nil {
		m[ColDiscountPercentage] = spanner.NullFloat64{Float64: *e.DiscountPercentage, Valid: true}
	} else {
		m[ColDiscountPercentage] = spanner.NullFloat64{}
	}

	if e.Cover != nil {
		m[ColCover] = spanner.NullString{StringVal: *e.Cover, Valid: true}
	} else {
		m[ColCover] = spanner.NullString{}
	}

	if e.PublicationDate != nil {
		m[ColPublicationDate] = spanner.NullDate{Date: civil.DateOf(*e.PublicationDate), Valid: true}
	} else {
		m[ColPublicationDate] = spanner.NullDate{}
	}

	if e.Publisher != nil {
		m[ColPublisherID] = spanner.NullInt64{Int64: e.Publisher.ID, Valid: true}
	} else {
		m[ColPublisherID] = spanner.NullInt64{}
	}

	return m
}

// InsertMutation builds a spanner.Insert mutation for a new book.
func InsertMutation(values map[string]interface{}) *spanner.Mutation {
	cols, vals := split(values)
	return spanner.Insert(TableName, cols, vals)
}

// UpdateMutation builds a spanner.Update mutation replacing every book column.
func UpdateMutation(values map[string]interface{}) *spanner.Mutation {
	cols, vals := split(values)
	return spanner.Update(TableName, cols, vals)
}

// DeleteMutation removes a book. book_authors rows go with it through the
// interleave cascade.
func DeleteMutation(bookID int64) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.Key{bookID})
}

// ReplaceAuthorsMutations clears the book's link rows and writes one row
// per author, keeping order in position.
func ReplaceAuthorsMutations(bookID int64, authorIDs []int64) []*spanner.Mutation {
	muts := make([]*spanner.Mutation, 0, len(authorIDs)+1)
	muts = append(muts, spanner.Delete(LinkTableName, spanner.Key{bookID}.AsPrefix()))
	for pos, authorID := range authorIDs {
		muts = append(muts, spanner.InsertOrUpdate(LinkTableName,
			[]string{ColLinkBookID, ColLinkPosition, ColLinkAuthorID},
			[]interface{}{bookID, int64(pos), authorID},
		))
	}
	return muts
}

// Columns lists the books columns read back by FromRow, in scan order.
func Columns() []string {
	return []string{
		ColBookID, ColISBN, ColTitleEs, ColTitleEn, ColSynopsisEs, ColSynopsisEn,
		ColBasePrice, ColDiscountPercentage, ColCover, ColPublicationDate, ColPublisherID,
	}
}

// FromRow decodes a row selected with Columns. The returned publisher id is
// 0 when the column is NULL; references are resolved by the caller.
func FromRow(row *spanner.Row) (*Entity, int64, error) {
	var (
		e                      Entity
		titleEs, titleEn       spanner.NullString
		synopsisEs, synopsisEn spanner.NullString
		basePrice              spanner.NullNumeric
		discount               spanner.NullFloat64
		cover                  spanner.NullString
		publicationDate        spanner.NullDate
		publisherID            spanner.NullInt64
	)
	if err := row.Columns(&e.ID, &e.ISBN, &titleEs, &titleEn, &synopsisEs, &synopsisEn,
		&basePrice, &discount, &cover, &publicationDate, &publisherID); err != nil {
		return nil, 0, err
	}

	e.TitleEs = titleEs.StringVal
	e.TitleEn = titleEn.StringVal
	e.SynopsisEs = synopsisEs.StringVal
	e.SynopsisEn = synopsisEn.StringVal

	if basePrice.Valid {
		d := decimalFromRat(&basePrice.Numeric)
		e.BasePrice = &d
	}
	if discount.Valid {
		v := discount.Float64
		e.DiscountPercentage = &v
	}
	if cover.Valid {
		c := cover.StringVal
		e.Cover = &c
	}
	if publicationDate.Valid {
		t := publicationDate.Date.In(time.UTC)
		e.PublicationDate = &t
	}

	var pubID int64
	if publisherID.Valid {
		pubID = publisherID.Int64
	}
	return &e, pubID, nil
}

// decimalFromRat keeps only the significant fractional digits of a NUMERIC,
// so 19.99 reads back as 19.99 rather than 19.990000000.
func decimalFromRat(r *big.Rat) decimal.Decimal {
	s := r.FloatString(spannerNumericScale)
	s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
	return decimal.RequireFromString(s)
}

func split(values map[string]interface{}) ([]string, []interface{}) {
	cols := make([]string, 0, len(values))
	vals := make([]interface{}, 0, len(values))
	for c, v := range values {
		cols = append(cols, c)
		vals = append(vals, v)
	}
	return cols, vals
}
