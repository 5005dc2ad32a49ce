package pgstore

import (
	"context"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	contracts "github.com/murkotick/bookstore-catalog-service/internal/app/catalog/contracts"
	"github.com/murkotick/bookstore-catalog-service/internal/app/catalog/domain"
	"github.com/murkotick/bookstore-catalog-service/internal/models/m_author"
	"github.com/murkotick/bookstore-catalog-service/internal/models/m_book"
	"github.com/murkotick/bookstore-catalog-service/internal/models/m_outbox"
	"github.com/murkotick/bookstore-catalog-service/internal/models/m_publisher"
)

const (
	aliasBook      = "b"
	aliasPublisher = "p"
	aliasLink      = "ba"
	aliasAuthor    = "a"
)

func col(alias, name string) exp.IdentifierExpression {
	return goqu.I(alias + "." + name)
}

type BookStore struct {
	Deps
}

func NewBookStore(d Deps) *BookStore {
	return &BookStore{Deps: d.withDefaults()}
}

// selectBooks reads books with their publisher joined in. base_price is cast
// to text so it decodes into a decimal without float rounding.
func selectBooks() *goqu.SelectDataset {
	return builder.From(goqu.T(m_book.TableName).As(aliasBook)).
		LeftJoin(goqu.T(m_publisher.TableName).As(aliasPublisher),
			goqu.On(col(aliasPublisher, m_publisher.ColPublisherID).Eq(col(aliasBook, m_book.ColPublisherID)))).
		Select(
			col(aliasBook, m_book.ColBookID),
			col(aliasBook, m_book.ColISBN),
			col(aliasBook, m_book.ColTitleEs),
			col(aliasBook, m_book.ColTitleEn),
			col(aliasBook, m_book.ColSynopsisEs),
			col(aliasBook, m_book.ColSynopsisEn),
			goqu.L(aliasBook+"."+m_book.ColBasePrice+"::text"),
			col(aliasBook, m_book.ColDiscountPercentage),
			col(aliasBook, m_book.ColCover),
			col(aliasBook, m_book.ColPublicationDate),
			col(aliasPublisher, m_publisher.ColPublisherID),
			col(aliasPublisher, m_publisher.ColName),
			col(aliasPublisher, m_publisher.ColSlug),
		)
}

func (s *BookStore) FindAll(ctx context.Context, page, size int) (domain.Page[m_book.Entity], error) {
	if err := domain.CheckPageRequest(page, size); err != nil {
		return domain.Page[m_book.Entity]{}, err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var (
		total int64
		items []m_book.Entity
	)
	// repeatable read keeps the count and the page consistent
	err := pgx.BeginTxFunc(ctx, s.Pool, pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly}, func(tx pgx.Tx) error {
		countSQL, countArgs, err := toSQL(builder.From(m_book.TableName).Select(goqu.COUNT("*")).Prepared(true))
		if err != nil {
			return err
		}
		if err := tx.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
			return err
		}

		books, err := queryBooks(ctx, tx, selectBooks().
			Order(col(aliasBook, m_book.ColBookID).Asc()).
			Limit(uint(size)).
			Offset(uint((page - 1) * size)))
		if err != nil {
			return err
		}
		if err := attachAuthors(ctx, tx, books); err != nil {
			return err
		}
		items = make([]m_book.Entity, 0, len(books))
		for _, b := range books {
			items = append(items, *b)
		}
		return nil
	})
	if err != nil {
		return domain.Page[m_book.Entity]{}, translate("list books", err)
	}
	return domain.NewPage(items, page, size, total)
}

func (s *BookStore) FindByISBN(ctx context.Context, isbn string) (*m_book.Entity, error) {
	return s.findOne(ctx, goqu.Ex{aliasBook + "." + m_book.ColISBN: isbn})
}

func (s *BookStore) FindByID(ctx context.Context, id int64) (*m_book.Entity, error) {
	return s.findOne(ctx, goqu.Ex{aliasBook + "." + m_book.ColBookID: id})
}

func (s *BookStore) findOne(ctx context.Context, where goqu.Ex) (*m_book.Entity, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	books, err := queryBooks(ctx, s.Pool, selectBooks().Where(where))
	if err != nil {
		return nil, translate("find book", err)
	}
	if len(books) == 0 {
		return nil, contracts.ErrRecordNotFound
	}
	if err := attachAuthors(ctx, s.Pool, books); err != nil {
		return nil, translate("find book authors", err)
	}
	return books[0], nil
}

// Save upserts the book row, rewrites its author links and writes an outbox
// event in one transaction.
func (s *BookStore) Save(ctx context.Context, e *m_book.Entity) (*m_book.Entity, error) {
	out := *e
	out.Authors = append([]m_author.Entity(nil), e.Authors...)

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	err := pgx.BeginFunc(ctx, s.Pool, func(tx pgx.Tx) error {
		event := m_outbox.EventBookUpdated
		record := bookRecord(&out)

		var sb sqlBuilder
		if out.ID == 0 {
			event = m_outbox.EventBookCreated
			sb = builder.Insert(m_book.TableName).Rows(record).
				Returning(m_book.ColBookID).Prepared(true)
		} else {
			sb = builder.Update(m_book.TableName).Set(record).
				Where(goqu.Ex{m_book.ColBookID: out.ID}).
				Returning(m_book.ColBookID).Prepared(true)
		}
		sqlQuery, args, err := toSQL(sb)
		if err != nil {
			return err
		}
		if err := tx.QueryRow(ctx, sqlQuery, args...).Scan(&out.ID); err != nil {
			return err
		}

		if err := replaceLinks(ctx, tx, out.ID, out.AuthorIDs()); err != nil {
			return err
		}

		rec, err := m_outbox.NewRecord(event, m_outbox.AggregateBook, out.ID, m_outbox.BookPayload(&out), s.Clock.Now())
		if err != nil {
			return err
		}
		return insertOutbox(ctx, tx, rec)
	})
	if err != nil {
		return nil, translate("save book", err)
	}

	s.Logger.DebugContext(ctx, "book saved", "book_id", out.ID, "authors", len(out.Authors))
	return &out, nil
}

// DeleteByISBN removes the book; book_authors rows cascade.
func (s *BookStore) DeleteByISBN(ctx context.Context, isbn string) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	err := pgx.BeginFunc(ctx, s.Pool, func(tx pgx.Tx) error {
		sqlQuery, args, err := toSQL(builder.Delete(m_book.TableName).
			Where(goqu.Ex{m_book.ColISBN: isbn}).
			Returning(m_book.ColBookID).Prepared(true))
		if err != nil {
			return err
		}
		var id int64
		if err := tx.QueryRow(ctx, sqlQuery, args...).Scan(&id); err != nil {
			return err
		}

		rec, err := m_outbox.NewRecord(m_outbox.EventBookDeleted, m_outbox.AggregateBook, id,
			map[string]interface{}{"isbn": isbn}, s.Clock.Now())
		if err != nil {
			return err
		}
		return insertOutbox(ctx, tx, rec)
	})
	if err != nil {
		return translate("delete book", err)
	}

	s.Logger.DebugContext(ctx, "book deleted", "isbn", isbn)
	return nil
}

func bookRecord(e *m_book.Entity) goqu.Record {
	r := goqu.Record{
		m_book.ColISBN:               e.ISBN,
		m_book.ColTitleEs:            e.TitleEs,
		m_book.ColTitleEn:            e.TitleEn,
		m_book.ColSynopsisEs:         e.SynopsisEs,
		m_book.ColSynopsisEn:         e.SynopsisEn,
		m_book.ColBasePrice:          nil,
		m_book.ColDiscountPercentage: nullable(e.DiscountPercentage),
		m_book.ColCover:              nullable(e.Cover),
		m_book.ColPublicationDate:    nullable(e.PublicationDate),
		m_book.ColPublisherID:        nil,
		m_book.ColUpdatedAt:          goqu.L("now()"),
	}
	if e.BasePrice != nil {
		r[m_book.ColBasePrice] = goqu.L(castNumeric, e.BasePrice.String())
	}
	if e.Publisher != nil {
		r[m_book.ColPublisherID] = e.Publisher.ID
	}
	return r
}

func replaceLinks(ctx context.Context, q querier, bookID int64, authorIDs []int64) error {
	sqlQuery, args, err := toSQL(builder.Delete(m_book.LinkTableName).
		Where(goqu.Ex{m_book.ColLinkBookID: bookID}).Prepared(true))
	if err != nil {
		return err
	}
	if _, err := q.Exec(ctx, sqlQuery, args...); err != nil {
		return err
	}
	if len(authorIDs) == 0 {
		return nil
	}

	rows := make([]interface{}, 0, len(authorIDs))
	for pos, id := range authorIDs {
		rows = append(rows, goqu.Record{
			m_book.ColLinkBookID:   bookID,
			m_book.ColLinkPosition: pos,
			m_book.ColLinkAuthorID: id,
		})
	}
	sqlQuery, args, err = toSQL(builder.Insert(m_book.LinkTableName).Rows(rows...).Prepared(true))
	if err != nil {
		return err
	}
	_, err = q.Exec(ctx, sqlQuery, args...)
	return err
}

func queryBooks(ctx context.Context, q querier, ds *goqu.SelectDataset) ([]*m_book.Entity, error) {
	sqlQuery, args, err := toSQL(ds.Prepared(true))
	if err != nil {
		return nil, err
	}
	rows, err := q.Query(ctx, sqlQuery, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var books []*m_book.Entity
	for rows.Next() {
		e, err := scanBook(rows)
		if err != nil {
			return nil, err
		}
		books = append(books, e)
	}
	return books, rows.Err()
}

func scanBook(row pgx.Row) (*m_book.Entity, error) {
	var (
		e               m_book.Entity
		basePrice       *string
		publicationDate *time.Time
		pubID           *int64
		pubName         *string
		pubSlug         *string
	)
	if err := row.Scan(&e.ID, &e.ISBN, &e.TitleEs, &e.TitleEn, &e.SynopsisEs, &e.SynopsisEn,
		&basePrice, &e.DiscountPercentage, &e.Cover, &publicationDate,
		&pubID, &pubName, &pubSlug); err != nil {
		return nil, err
	}

	if basePrice != nil {
		d, err := decimal.NewFromString(*basePrice)
		if err != nil {
			return nil, err
		}
		e.BasePrice = &d
	}
	if publicationDate != nil {
		t := publicationDate.UTC()
		e.PublicationDate = &t
	}
	if pubID != nil {
		e.Publisher = &m_publisher.Entity{ID: *pubID, Name: deref(pubName), Slug: deref(pubSlug)}
	}
	return &e, nil
}

// attachAuthors loads the ordered author list of every book with one query.
func attachAuthors(ctx context.Context, q querier, books []*m_book.Entity) error {
	if len(books) == 0 {
		return nil
	}
	byID := make(map[int64]*m_book.Entity, len(books))
	ids := make([]int64, 0, len(books))
	for _, b := range books {
		b.Authors = []m_author.Entity{}
		byID[b.ID] = b
		ids = append(ids, b.ID)
	}

	selectCols := []interface{}{col(aliasLink, m_book.ColLinkBookID)}
	for _, c := range authorColumns {
		selectCols = append(selectCols, col(aliasAuthor, c.(string)))
	}

	sqlQuery, args, err := toSQL(builder.From(goqu.T(m_book.LinkTableName).As(aliasLink)).
		Join(goqu.T(m_author.TableName).As(aliasAuthor),
			goqu.On(col(aliasAuthor, m_author.ColAuthorID).Eq(col(aliasLink, m_book.ColLinkAuthorID)))).
		Select(selectCols...).
		Where(col(aliasLink, m_book.ColLinkBookID).In(ids)).
		Order(col(aliasLink, m_book.ColLinkBookID).Asc(), col(aliasLink, m_book.ColLinkPosition).Asc()).
		Prepared(true))
	if err != nil {
		return err
	}

	rows, err := q.Query(ctx, sqlQuery, args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			bookID               int64
			a                    m_author.Entity
			nationality          *string
			bioEs, bioEn         *string
			birthYear, deathYear *int32
		)
		if err := rows.Scan(&bookID, &a.ID, &a.Name, &nationality, &bioEs, &bioEn, &birthYear, &deathYear, &a.Slug); err != nil {
			return err
		}
		a.Nationality = deref(nationality)
		a.BiographyEs = deref(bioEs)
		a.BiographyEn = deref(bioEn)
		a.BirthYear = intPtr(birthYear)
		a.DeathYear = intPtr(deathYear)
		if b, ok := byID[bookID]; ok {
			b.Authors = append(b.Authors, a)
		}
	}
	return rows.Err()
}
