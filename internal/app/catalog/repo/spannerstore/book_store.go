package spannerstore

import (
	"context"
	"strings"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	contracts "github.com/murkotick/bookstore-catalog-service/internal/app/catalog/contracts"
	"github.com/murkotick/bookstore-catalog-service/internal/app/catalog/domain"
	"github.com/murkotick/bookstore-catalog-service/internal/models/m_author"
	"github.com/murkotick/bookstore-catalog-service/internal/models/m_book"
	"github.com/murkotick/bookstore-catalog-service/internal/models/m_outbox"
	"github.com/murkotick/bookstore-catalog-service/internal/models/m_publisher"
	commitplan "github.com/murkotick/bookstore-catalog-service/internal/pkg/committer"
)

var bookSelect = "SELECT " + strings.Join(m_book.Columns(), ", ") + " FROM " + m_book.TableName

type BookStore struct {
	Deps
}

func NewBookStore(d Deps) *BookStore {
	return &BookStore{Deps: d.withDefaults()}
}

// FindAll pages books ordered by id. All reads of one call share a
// read-only snapshot.
func (s *BookStore) FindAll(ctx context.Context, page, size int) (domain.Page[m_book.Entity], error) {
	if err := domain.CheckPageRequest(page, size); err != nil {
		return domain.Page[m_book.Entity]{}, err
	}

	ro := s.Client.ReadOnlyTransaction()
	defer ro.Close()

	var total int64
	countIter := ro.Query(ctx, spanner.Statement{SQL: "SELECT COUNT(*) FROM " + m_book.TableName})
	err := countIter.Do(func(r *spanner.Row) error {
		return r.Column(0, &total)
	})
	if err != nil {
		return domain.Page[m_book.Entity]{}, translate("count books", err)
	}

	books, pubIDs, err := queryBooks(ctx, ro, spanner.Statement{
		SQL: bookSelect + " ORDER BY " + m_book.ColBookID + " LIMIT @limit OFFSET @offset",
		Params: map[string]interface{}{
			"limit":  int64(size),
			"offset": int64((page - 1) * size),
		},
	})
	if err != nil {
		return domain.Page[m_book.Entity]{}, err
	}
	if err := hydrate(ctx, ro, books, pubIDs); err != nil {
		return domain.Page[m_book.Entity]{}, err
	}

	items := make([]m_book.Entity, 0, len(books))
	for _, b := range books {
		items = append(items, *b)
	}
	return domain.NewPage(items, page, size, total)
}

func (s *BookStore) FindByISBN(ctx context.Context, isbn string) (*m_book.Entity, error) {
	return s.findOne(ctx, spanner.Statement{
		SQL:    bookSelect + " WHERE " + m_book.ColISBN + " = @isbn",
		Params: map[string]interface{}{"isbn": isbn},
	})
}

func (s *BookStore) FindByID(ctx context.Context, id int64) (*m_book.Entity, error) {
	return s.findOne(ctx, spanner.Statement{
		SQL:    bookSelect + " WHERE " + m_book.ColBookID + " = @id",
		Params: map[string]interface{}{"id": id},
	})
}

func (s *BookStore) findOne(ctx context.Context, stmt spanner.Statement) (*m_book.Entity, error) {
	ro := s.Client.ReadOnlyTransaction()
	defer ro.Close()

	books, pubIDs, err := queryBooks(ctx, ro, stmt)
	if err != nil {
		return nil, err
	}
	if len(books) == 0 {
		return nil, contracts.ErrRecordNotFound
	}
	if err := hydrate(ctx, ro, books[:1], pubIDs[:1]); err != nil {
		return nil, err
	}
	return books[0], nil
}

// Save writes the book row, replaces its author links and records an
// outbox event, all in one commit.
func (s *BookStore) Save(ctx context.Context, e *m_book.Entity) (*m_book.Entity, error) {
	out := *e
	out.Authors = append([]m_author.Entity(nil), e.Authors...)

	plan, err := s.savePlan(&out)
	if err != nil {
		return nil, err
	}
	if err := s.Committer.Apply(ctx, plan); err != nil {
		return nil, translate("save book", err)
	}
	s.Logger.DebugContext(ctx, "book saved", "book_id", out.ID, "mutations", plan.Len())
	return &out, nil
}

// savePlan assigns an id to new books and collects the mutations of one save:
// the book row, the author links and the outbox event.
func (s *BookStore) savePlan(e *m_book.Entity) (*commitplan.Plan, error) {
	plan := commitplan.NewPlan()
	event := m_outbox.EventBookUpdated
	if e.ID == 0 {
		e.ID = s.IDs.NewID()
		event = m_outbox.EventBookCreated
		plan.Add(m_book.InsertMutation(m_book.BuildValues(e)))
	} else {
		plan.Add(m_book.UpdateMutation(m_book.BuildValues(e)))
	}
	plan.Add(m_book.ReplaceAuthorsMutations(e.ID, e.AuthorIDs())...)

	rec, err := m_outbox.NewRecord(event, m_outbox.AggregateBook, e.ID, m_outbox.BookPayload(e), s.Clock.Now())
	if err != nil {
		return nil, err
	}
	plan.Add(m_outbox.InsertMutation(rec))
	return plan, nil
}

func (s *BookStore) DeleteByISBN(ctx context.Context, isbn string) error {
	e, err := s.FindByISBN(ctx, isbn)
	if err != nil {
		return err
	}

	plan := commitplan.NewPlan()
	plan.Add(m_book.DeleteMutation(e.ID))
	rec, err := m_outbox.NewRecord(m_outbox.EventBookDeleted, m_outbox.AggregateBook, e.ID,
		map[string]interface{}{"isbn": isbn}, s.Clock.Now())
	if err != nil {
		return err
	}
	plan.Add(m_outbox.InsertMutation(rec))

	if err := s.Committer.Apply(ctx, plan); err != nil {
		return translate("delete book", err)
	}
	s.Logger.DebugContext(ctx, "book deleted", "book_id", e.ID)
	return nil
}

func queryBooks(ctx context.Context, ro *spanner.ReadOnlyTransaction, stmt spanner.Statement) ([]*m_book.Entity, []int64, error) {
	iter := ro.Query(ctx, stmt)
	defer iter.Stop()

	var (
		books  []*m_book.Entity
		pubIDs []int64
	)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, nil, translate("query books", err)
		}
		e, pubID, err := m_book.FromRow(row)
		if err != nil {
			return nil, nil, translate("decode book", err)
		}
		books = append(books, e)
		pubIDs = append(pubIDs, pubID)
	}
	return books, pubIDs, nil
}

// hydrate attaches publishers and ordered authors to books. pubIDs[i] is the
// publisher id of books[i], 0 for none.
func hydrate(ctx context.Context, ro *spanner.ReadOnlyTransaction, books []*m_book.Entity, pubIDs []int64) error {
	if len(books) == 0 {
		return nil
	}

	publishers, err := loadPublishers(ctx, ro, pubIDs)
	if err != nil {
		return err
	}
	for i, b := range books {
		if p, ok := publishers[pubIDs[i]]; ok {
			pub := p
			b.Publisher = &pub
		}
	}

	bookIDs := make([]int64, 0, len(books))
	for _, b := range books {
		bookIDs = append(bookIDs, b.ID)
	}
	links, authorIDs, err := loadLinks(ctx, ro, bookIDs)
	if err != nil {
		return err
	}
	authors, err := loadAuthors(ctx, ro, authorIDs)
	if err != nil {
		return err
	}
	for _, b := range books {
		b.Authors = make([]m_author.Entity, 0, len(links[b.ID]))
		for _, id := range links[b.ID] {
			if a, ok := authors[id]; ok {
				b.Authors = append(b.Authors, a)
			}
		}
	}
	return nil
}

func loadPublishers(ctx context.Context, ro *spanner.ReadOnlyTransaction, ids []int64) (map[int64]m_publisher.Entity, error) {
	out := map[int64]m_publisher.Entity{}
	wanted := nonZero(ids)
	if len(wanted) == 0 {
		return out, nil
	}

	iter := ro.Query(ctx, spanner.Statement{
		SQL: "SELECT " + strings.Join(m_publisher.Columns(), ", ") + " FROM " + m_publisher.TableName +
			" WHERE " + m_publisher.ColPublisherID + " IN UNNEST(@ids)",
		Params: map[string]interface{}{"ids": wanted},
	})
	err := iter.Do(func(r *spanner.Row) error {
		p, err := m_publisher.FromRow(r)
		if err != nil {
			return err
		}
		out[p.ID] = *p
		return nil
	})
	if err != nil {
		return nil, translate("load publishers", err)
	}
	return out, nil
}

// loadLinks returns author ids per book in position order, plus the distinct
// author ids across all books.
func loadLinks(ctx context.Context, ro *spanner.ReadOnlyTransaction, bookIDs []int64) (map[int64][]int64, []int64, error) {
	links := map[int64][]int64{}
	seen := map[int64]struct{}{}
	var authorIDs []int64

	iter := ro.Query(ctx, spanner.Statement{
		SQL: "SELECT " + m_book.ColLinkBookID + ", " + m_book.ColLinkAuthorID + " FROM " + m_book.LinkTableName +
			" WHERE " + m_book.ColLinkBookID + " IN UNNEST(@ids) ORDER BY " +
			m_book.ColLinkBookID + ", " + m_book.ColLinkPosition,
		Params: map[string]interface{}{"ids": bookIDs},
	})
	err := iter.Do(func(r *spanner.Row) error {
		var bookID, authorID int64
		if err := r.Columns(&bookID, &authorID); err != nil {
			return err
		}
		links[bookID] = append(links[bookID], authorID)
		if _, ok := seen[authorID]; !ok {
			seen[authorID] = struct{}{}
			authorIDs = append(authorIDs, authorID)
		}
		return nil
	})
	if err != nil {
		return nil, nil, translate("load book authors", err)
	}
	return links, authorIDs, nil
}

func loadAuthors(ctx context.Context, ro *spanner.ReadOnlyTransaction, ids []int64) (map[int64]m_author.Entity, error) {
	out := map[int64]m_author.Entity{}
	if len(ids) == 0 {
		return out, nil
	}

	iter := ro.Query(ctx, spanner.Statement{
		SQL: "SELECT " + strings.Join(m_author.Columns(), ", ") + " FROM " + m_author.TableName +
			" WHERE " + m_author.ColAuthorID + " IN UNNEST(@ids)",
		Params: map[string]interface{}{"ids": ids},
	})
	err := iter.Do(func(r *spanner.Row) error {
		a, err := m_author.FromRow(r)
		if err != nil {
			return err
		}
		out[a.ID] = *a
		return nil
	})
	if err != nil {
		return nil, translate("load authors", err)
	}
	return out, nil
}

func nonZero(ids []int64) []int64 {
	out := make([]int64, 0, len(ids))
	seen := map[int64]struct{}{}
	for _, id := range ids {
		if id == 0 {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
