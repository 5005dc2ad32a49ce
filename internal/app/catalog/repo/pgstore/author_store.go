package pgstore

import (
	"context"

	"github.com/doug-martin/goqu/v9"
	"github.com/jackc/pgx/v5"

	"github.com/murkotick/bookstore-catalog-service/internal/models/m_author"
	"github.com/murkotick/bookstore-catalog-service/internal/models/m_outbox"
)

var authorColumns = []interface{}{
	m_author.ColAuthorID, m_author.ColName, m_author.ColNationality,
	m_author.ColBiographyEs, m_author.ColBiographyEn,
	m_author.ColBirthYear, m_author.ColDeathYear, m_author.ColSlug,
}

type AuthorStore struct {
	Deps
}

func NewAuthorStore(d Deps) *AuthorStore {
	return &AuthorStore{Deps: d.withDefaults()}
}

func (s *AuthorStore) FindByID(ctx context.Context, id int64) (*m_author.Entity, error) {
	return s.findOne(ctx, goqu.Ex{m_author.ColAuthorID: id})
}

func (s *AuthorStore) FindBySlug(ctx context.Context, slug string) (*m_author.Entity, error) {
	return s.findOne(ctx, goqu.Ex{m_author.ColSlug: slug})
}

func (s *AuthorStore) findOne(ctx context.Context, where goqu.Ex) (*m_author.Entity, error) {
	sqlQuery, args, err := toSQL(builder.From(m_author.TableName).
		Select(authorColumns...).
		Where(where).
		Prepared(true))
	if err != nil {
		return nil, err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	e, err := scanAuthor(s.Pool.QueryRow(ctx, sqlQuery, args...))
	if err != nil {
		return nil, translate("find author", err)
	}
	return e, nil
}

func (s *AuthorStore) Save(ctx context.Context, e *m_author.Entity) (*m_author.Entity, error) {
	out := *e

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	err := pgx.BeginFunc(ctx, s.Pool, func(tx pgx.Tx) error {
		event := m_outbox.EventAuthorUpdated
		record := goqu.Record{
			m_author.ColName:        out.Name,
			m_author.ColNationality: out.Nationality,
			m_author.ColBiographyEs: out.BiographyEs,
			m_author.ColBiographyEn: out.BiographyEn,
			m_author.ColBirthYear:   nullable(out.BirthYear),
			m_author.ColDeathYear:   nullable(out.DeathYear),
			m_author.ColSlug:        out.Slug,
			m_author.ColUpdatedAt:   goqu.L("now()"),
		}

		var sb sqlBuilder
		if out.ID == 0 {
			event = m_outbox.EventAuthorCreated
			sb = builder.Insert(m_author.TableName).Rows(record).
				Returning(m_author.ColAuthorID).Prepared(true)
		} else {
			sb = builder.Update(m_author.TableName).Set(record).
				Where(goqu.Ex{m_author.ColAuthorID: out.ID}).
				Returning(m_author.ColAuthorID).Prepared(true)
		}
		sqlQuery, args, err := toSQL(sb)
		if err != nil {
			return err
		}
		if err := tx.QueryRow(ctx, sqlQuery, args...).Scan(&out.ID); err != nil {
			return err
		}

		rec, err := m_outbox.NewRecord(event, m_outbox.AggregateAuthor, out.ID, m_outbox.AuthorPayload(&out), s.Clock.Now())
		if err != nil {
			return err
		}
		return insertOutbox(ctx, tx, rec)
	})
	if err != nil {
		return nil, translate("save author", err)
	}

	s.Logger.DebugContext(ctx, "author saved", "author_id", out.ID)
	return &out, nil
}

func scanAuthor(row pgx.Row) (*m_author.Entity, error) {
	var (
		e                    m_author.Entity
		nationality          *string
		bioEs, bioEn         *string
		birthYear, deathYear *int32
	)
	if err := row.Scan(&e.ID, &e.Name, &nationality, &bioEs, &bioEn, &birthYear, &deathYear, &e.Slug); err != nil {
		return nil, err
	}
	e.Nationality = deref(nationality)
	e.BiographyEs = deref(bioEs)
	e.BiographyEn = deref(bioEn)
	e.BirthYear = intPtr(birthYear)
	e.DeathYear = intPtr(deathYear)
	return &e, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func intPtr(v *int32) *int {
	if v == nil {
		return nil
	}
	i := int(*v)
	return &i
}
