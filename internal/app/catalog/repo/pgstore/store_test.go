package pgstore

import (
	"errors"
	"testing"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	contracts "github.com/murkotick/bookstore-catalog-service/internal/app/catalog/contracts"
	"github.com/murkotick/bookstore-catalog-service/internal/models/m_book"
	"github.com/murkotick/bookstore-catalog-service/internal/models/m_publisher"
)

func TestSelectBooks_JoinsPublisherAndCastsPrice(t *testing.T) {
	sqlQuery, args, err := toSQL(selectBooks().
		Where(goqu.Ex{aliasBook + "." + m_book.ColISBN: "9780000000001"}).
		Prepared(true))
	require.NoError(t, err)

	assert.Contains(t, sqlQuery, `FROM "books" AS "b"`)
	assert.Contains(t, sqlQuery, `LEFT JOIN "publishers" AS "p" ON ("p"."publisher_id" = "b"."publisher_id")`)
	assert.Contains(t, sqlQuery, `b.base_price::text`)
	assert.Contains(t, sqlQuery, `WHERE ("b"."isbn" = $1)`)
	assert.Equal(t, []interface{}{"9780000000001"}, args)
}

func TestSelectBooks_Paging(t *testing.T) {
	sqlQuery, args, err := toSQL(selectBooks().
		Order(col(aliasBook, m_book.ColBookID).Asc()).
		Limit(3).
		Offset(3).
		Prepared(true))
	require.NoError(t, err)

	assert.Contains(t, sqlQuery, `ORDER BY "b"."book_id" ASC LIMIT $1 OFFSET $2`)
	assert.Len(t, args, 2)
}

func TestBookRecord_NullsAndCasts(t *testing.T) {
	r := bookRecord(&m_book.Entity{ISBN: "9780000000001"})
	assert.Nil(t, r[m_book.ColBasePrice])
	assert.Nil(t, r[m_book.ColDiscountPercentage])
	assert.Nil(t, r[m_book.ColCover])
	assert.Nil(t, r[m_book.ColPublicationDate])
	assert.Nil(t, r[m_book.ColPublisherID])
	assert.NotContains(t, r, m_book.ColBookID)

	price := decimal.RequireFromString("19.99")
	discount := 10.0
	published := time.Date(2001, 3, 4, 0, 0, 0, 0, time.UTC)
	r = bookRecord(&m_book.Entity{
		ISBN:               "9780000000001",
		BasePrice:          &price,
		DiscountPercentage: &discount,
		PublicationDate:    &published,
		Publisher:          &m_publisher.Entity{ID: 3},
	})
	assert.Equal(t, 10.0, r[m_book.ColDiscountPercentage])
	assert.Equal(t, published, r[m_book.ColPublicationDate])
	assert.Equal(t, int64(3), r[m_book.ColPublisherID])

	sqlQuery, args, err := toSQL(builder.Insert(m_book.TableName).Rows(r).Prepared(true))
	require.NoError(t, err)
	assert.Contains(t, sqlQuery, "::text::numeric")
	assert.Contains(t, args, "19.99")
}

func TestTranslate(t *testing.T) {
	assert.NoError(t, translate("op", nil))
	assert.ErrorIs(t, translate("find book", pgx.ErrNoRows), contracts.ErrRecordNotFound)

	dup := translate("save book", &pgconn.PgError{Code: codeUniqueViolation, ConstraintName: "books_isbn_key"})
	assert.ErrorIs(t, dup, contracts.ErrDuplicateKey)
	assert.Contains(t, dup.Error(), "books_isbn_key")

	fk := &pgconn.PgError{Code: "23503"}
	err := translate("save book", fk)
	assert.NotErrorIs(t, err, contracts.ErrDuplicateKey)
	var pgErr *pgconn.PgError
	assert.True(t, errors.As(err, &pgErr))
}

func TestNullable(t *testing.T) {
	assert.Nil(t, nullable[string](nil))
	s := "x"
	assert.Equal(t, "x", nullable(&s))
}

func TestDepsDefaults(t *testing.T) {
	d := Deps{}.withDefaults()
	assert.NotNil(t, d.Clock)
	assert.NotNil(t, d.Logger)
	assert.Equal(t, defaultTimeout, d.Timeout)
}
