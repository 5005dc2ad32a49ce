package spannerstore

import (
	"context"
	"strings"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	contracts "github.com/murkotick/bookstore-catalog-service/internal/app/catalog/contracts"
	"github.com/murkotick/bookstore-catalog-service/internal/models/m_author"
	"github.com/murkotick/bookstore-catalog-service/internal/models/m_outbox"
	commitplan "github.com/murkotick/bookstore-catalog-service/internal/pkg/committer"
)

type AuthorStore struct {
	Deps
}

func NewAuthorStore(d Deps) *AuthorStore {
	return &AuthorStore{Deps: d.withDefaults()}
}

func (s *AuthorStore) FindByID(ctx context.Context, id int64) (*m_author.Entity, error) {
	row, err := s.Client.Single().ReadRow(ctx, m_author.TableName, spanner.Key{id}, m_author.Columns())
	if err != nil {
		return nil, translate("read author", err)
	}
	return m_author.FromRow(row)
}

func (s *AuthorStore) FindBySlug(ctx context.Context, slug string) (*m_author.Entity, error) {
	iter := s.Client.Single().Query(ctx, spanner.Statement{
		SQL: "SELECT " + strings.Join(m_author.Columns(), ", ") +
			" FROM " + m_author.TableName +
			" WHERE " + m_author.ColSlug + " = @slug",
		Params: map[string]interface{}{"slug": slug},
	})
	defer iter.Stop()

	row, err := iter.Next()
	if err == iterator.Done {
		return nil, contracts.ErrRecordNotFound
	}
	if err != nil {
		return nil, translate("query author by slug", err)
	}
	return m_author.FromRow(row)
}

func (s *AuthorStore) Save(ctx context.Context, e *m_author.Entity) (*m_author.Entity, error) {
	out := *e
	plan, err := s.savePlan(&out)
	if err != nil {
		return nil, err
	}
	if err := s.Committer.Apply(ctx, plan); err != nil {
		return nil, translate("save author", err)
	}
	s.Logger.DebugContext(ctx, "author saved", "author_id", out.ID, "mutations", plan.Len())
	return &out, nil
}

func (s *AuthorStore) savePlan(e *m_author.Entity) (*commitplan.Plan, error) {
	plan := commitplan.NewPlan()
	event := m_outbox.EventAuthorUpdated
	if e.ID == 0 {
		e.ID = s.IDs.NewID()
		event = m_outbox.EventAuthorCreated
		plan.Add(m_author.InsertMutation(m_author.BuildValues(e)))
	} else {
		plan.Add(m_author.UpdateMutation(m_author.BuildValues(e)))
	}

	rec, err := m_outbox.NewRecord(event, m_outbox.AggregateAuthor, e.ID, m_outbox.AuthorPayload(e), s.Clock.Now())
	if err != nil {
		return nil, err
	}
	plan.Add(m_outbox.InsertMutation(rec))
	return plan, nil
}
