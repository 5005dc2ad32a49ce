// Package spannerstore implements the catalog stores on Cloud Spanner.
// Writes are collected into a commit plan together with their outbox row
// and applied through the committer in one transaction.
package spannerstore

import (
	"log/slog"

	"cloud.google.com/go/spanner"

	contracts "github.com/murkotick/bookstore-catalog-service/internal/app/catalog/contracts"
	"github.com/murkotick/bookstore-catalog-service/internal/pkg/clock"
	"github.com/murkotick/bookstore-catalog-service/internal/pkg/idgen"
)

// Deps are shared by every Spanner store.
type Deps struct {
	Client    *spanner.Client
	Committer contracts.Committer
	IDs       idgen.Generator
	Clock     clock.Clock
	Logger    *slog.Logger
}

func (d Deps) withDefaults() Deps {
	if d.IDs == nil {
		d.IDs = idgen.UUIDGenerator{}
	}
	if d.Clock == nil {
		d.Clock = clock.RealClock{}
	}
	if d.Logger == nil {
		d.Logger = slog.Default()
	}
	return d
}
