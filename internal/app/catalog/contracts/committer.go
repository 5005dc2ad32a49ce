package contracts

import (
	"context"

	commitplan "github.com/murkotick/bookstore-catalog-service/internal/pkg/committer"
)

// Committer applies a plan of Spanner mutations atomically. Stores build
// plans; the committer owns the transaction.
type Committer interface {
	Apply(ctx context.Context, plan *commitplan.Plan) error
}
