package spannerstore

import (
	"context"
	"strings"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	contracts "github.com/murkotick/bookstore-catalog-service/internal/app/catalog/contracts"
	"github.com/murkotick/bookstore-catalog-service/internal/models/m_outbox"
	"github.com/murkotick/bookstore-catalog-service/internal/models/m_publisher"
	commitplan "github.com/murkotick/bookstore-catalog-service/internal/pkg/committer"
)

type PublisherStore struct {
	Deps
}

func NewPublisherStore(d Deps) *PublisherStore {
	return &PublisherStore{Deps: d.withDefaults()}
}

func (s *PublisherStore) FindByID(ctx context.Context, id int64) (*m_publisher.Entity, error) {
	row, err := s.Client.Single().ReadRow(ctx, m_publisher.TableName, spanner.Key{id}, m_publisher.Columns())
	if err != nil {
		return nil, translate("read publisher", err)
	}
	return m_publisher.FromRow(row)
}

func (s *PublisherStore) FindBySlug(ctx context.Context, slug string) (*m_publisher.Entity, error) {
	stmt := spanner.Statement{
		SQL: "SELECT " + strings.Join(m_publisher.Columns(), ", ") +
			" FROM " + m_publisher.TableName + " WHERE " + m_publisher.ColSlug + " = @slug",
		Params: map[string]interface{}{"slug": slug},
	}

	iter := s.Client.Single().Query(ctx, stmt)
	defer iter.Stop()

	row, err := iter.Next()
	if err == iterator.Done {
		return nil, contracts.ErrRecordNotFound
	}
	if err != nil {
		return nil, translate("query publisher by slug", err)
	}
	return m_publisher.FromRow(row)
}

// Save inserts a publisher with a fresh id when e.ID is 0, otherwise it
// replaces name and slug of the stored row.
func (s *PublisherStore) Save(ctx context.Context, e *m_publisher.Entity) (*m_publisher.Entity, error) {
	out := *e
	plan, err := s.savePlan(&out)
	if err != nil {
		return nil, err
	}
	if err := s.Committer.Apply(ctx, plan); err != nil {
		return nil, translate("save publisher", err)
	}
	s.Logger.DebugContext(ctx, "publisher saved", "publisher_id", out.ID, "mutations", plan.Len())
	return &out, nil
}

func (s *PublisherStore) savePlan(e *m_publisher.Entity) (*commitplan.Plan, error) {
	plan := commitplan.NewPlan()
	event := m_outbox.EventPublisherUpdated
	if e.ID == 0 {
		e.ID = s.IDs.NewID()
		event = m_outbox.EventPublisherCreated
		plan.Add(m_publisher.InsertMutation(m_publisher.BuildValues(e)))
	} else {
		plan.Add(m_publisher.UpdateMutation(m_publisher.BuildValues(e)))
	}

	rec, err := m_outbox.NewRecord(event, m_outbox.AggregatePublisher, e.ID, m_outbox.PublisherPayload(e), s.Clock.Now())
	if err != nil {
		return nil, err
	}
	plan.Add(m_outbox.InsertMutation(rec))
	return plan, nil
}
