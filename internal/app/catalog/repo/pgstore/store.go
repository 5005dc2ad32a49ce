// Package pgstore implements the catalog stores on PostgreSQL with pgx.
// SQL is built with goqu; every write runs in one transaction together with
// its outbox row.
package pgstore

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect registration
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	contracts "github.com/murkotick/bookstore-catalog-service/internal/app/catalog/contracts"
	"github.com/murkotick/bookstore-catalog-service/internal/models/m_outbox"
	"github.com/murkotick/bookstore-catalog-service/internal/pkg/clock"
)

const (
	dialectPostgres     = "postgres"
	codeUniqueViolation = "23505"
	castNumeric         = "?::text::numeric"
	castJsonb           = "?::jsonb"
	defaultTimeout      = 5 * time.Second
)

var builder = goqu.Dialect(dialectPostgres)

// Deps are shared by every Postgres store.
type Deps struct {
	Pool    *pgxpool.Pool
	Clock   clock.Clock
	Logger  *slog.Logger
	Timeout time.Duration
}

func (d Deps) withDefaults() Deps {
	if d.Clock == nil {
		d.Clock = clock.RealClock{}
	}
	if d.Logger == nil {
		d.Logger = slog.Default()
	}
	if d.Timeout <= 0 {
		d.Timeout = defaultTimeout
	}
	return d
}

func (d Deps) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, d.Timeout)
}

// querier is satisfied by both the pool and a transaction.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type sqlBuilder interface {
	ToSQL() (string, []interface{}, error)
}

func toSQL(b sqlBuilder) (string, []interface{}, error) {
	sqlQuery, args, err := b.ToSQL()
	if err != nil {
		return "", nil, fmt.Errorf("build sql: %w", err)
	}
	return sqlQuery, args, nil
}

// insertOutbox writes the outbox row inside the caller's transaction.
func insertOutbox(ctx context.Context, q querier, rec *m_outbox.Record) error {
	sqlQuery, args, err := toSQL(builder.Insert(m_outbox.TableName).Rows(goqu.Record{
		m_outbox.ColEventID:       rec.EventID,
		m_outbox.ColEventType:     rec.EventType,
		m_outbox.ColAggregateType: rec.AggregateType,
		m_outbox.ColAggregateID:   rec.AggregateID,
		m_outbox.ColPayload:       goqu.L(castJsonb, rec.Payload),
		m_outbox.ColStatus:        rec.Status,
		m_outbox.ColCreatedAt:     rec.CreatedAt,
	}).Prepared(true))
	if err != nil {
		return err
	}
	if _, err := q.Exec(ctx, sqlQuery, args...); err != nil {
		return fmt.Errorf("insert outbox event: %w", err)
	}
	return nil
}

// translate maps pgx errors onto store errors.
func translate(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, contracts.ErrRecordNotFound)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == codeUniqueViolation {
		return fmt.Errorf("%s: %s: %w", op, pgErr.ConstraintName, contracts.ErrDuplicateKey)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// nullable turns a nil pointer into an untyped nil so goqu renders NULL.
func nullable[T any](p *T) interface{} {
	if p == nil {
		return nil
	}
	return *p
}
