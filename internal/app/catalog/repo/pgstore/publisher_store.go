package pgstore

import (
	"context"

	"github.com/doug-martin/goqu/v9"
	"github.com/jackc/pgx/v5"

	"github.com/murkotick/bookstore-catalog-service/internal/models/m_outbox"
	"github.com/murkotick/bookstore-catalog-service/internal/models/m_publisher"
)

type PublisherStore struct {
	Deps
}

func NewPublisherStore(d Deps) *PublisherStore {
	return &PublisherStore{Deps: d.withDefaults()}
}

func (s *PublisherStore) FindByID(ctx context.Context, id int64) (*m_publisher.Entity, error) {
	return s.findOne(ctx, goqu.Ex{m_publisher.ColPublisherID: id})
}

func (s *PublisherStore) FindBySlug(ctx context.Context, slug string) (*m_publisher.Entity, error) {
	return s.findOne(ctx, goqu.Ex{m_publisher.ColSlug: slug})
}

func (s *PublisherStore) findOne(ctx context.Context, where goqu.Ex) (*m_publisher.Entity, error) {
	sqlQuery, args, err := toSQL(builder.From(m_publisher.TableName).
		Select(m_publisher.ColPublisherID, m_publisher.ColName, m_publisher.ColSlug).
		Where(where).
		Prepared(true))
	if err != nil {
		return nil, err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var e m_publisher.Entity
	if err := s.Pool.QueryRow(ctx, sqlQuery, args...).Scan(&e.ID, &e.Name, &e.Slug); err != nil {
		return nil, translate("find publisher", err)
	}
	return &e, nil
}

// Save inserts when e.ID is 0 and lets the database assign the id;
// otherwise it replaces name and slug.
func (s *PublisherStore) Save(ctx context.Context, e *m_publisher.Entity) (*m_publisher.Entity, error) {
	out := *e

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	err := pgx.BeginFunc(ctx, s.Pool, func(tx pgx.Tx) error {
		event := m_outbox.EventPublisherUpdated
		record := goqu.Record{
			m_publisher.ColName:      out.Name,
			m_publisher.ColSlug:      out.Slug,
			m_publisher.ColUpdatedAt: goqu.L("now()"),
		}

		if out.ID == 0 {
			event = m_outbox.EventPublisherCreated
			sqlQuery, args, err := toSQL(builder.Insert(m_publisher.TableName).Rows(record).
				Returning(m_publisher.ColPublisherID).Prepared(true))
			if err != nil {
				return err
			}
			if err := tx.QueryRow(ctx, sqlQuery, args...).Scan(&out.ID); err != nil {
				return err
			}
		} else {
			sqlQuery, args, err := toSQL(builder.Update(m_publisher.TableName).Set(record).
				Where(goqu.Ex{m_publisher.ColPublisherID: out.ID}).
				Returning(m_publisher.ColPublisherID).Prepared(true))
			if err != nil {
				return err
			}
			if err := tx.QueryRow(ctx, sqlQuery, args...).Scan(&out.ID); err != nil {
				return err
			}
		}

		rec, err := m_outbox.NewRecord(event, m_outbox.AggregatePublisher, out.ID, m_outbox.PublisherPayload(&out), s.Clock.Now())
		if err != nil {
			return err
		}
		return insertOutbox(ctx, tx, rec)
	})
	if err != nil {
		return nil, translate("save publisher", err)
	}

	s.Logger.DebugContext(ctx, "publisher saved", "publisher_id", out.ID)
	return &out, nil
}
