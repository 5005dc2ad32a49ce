package committer

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/spanner"
)

// Adapter applies plans in a Spanner read-write transaction.
type Adapter struct {
	client *spanner.Client
}

func NewAdapter(client *spanner.Client) *Adapter {
	return &Adapter{client: client}
}

// Apply commits every mutation of the plan or none of them.
func (a *Adapter) Apply(ctx context.Context, plan *Plan) error {
	_, err := a.ApplyAt(ctx, plan)
	return err
}

// ApplyAt is Apply that also returns the commit timestamp. An empty plan
// commits nothing and returns the zero time.
func (a *Adapter) ApplyAt(ctx context.Context, plan *Plan) (time.Time, error) {
	if plan == nil || plan.IsEmpty() {
		return time.Time{}, nil
	}

	if a.client == nil {
		return time.Time{}, fmt.Errorf("committer: spanner client is nil")
	}

	return a.client.ReadWriteTransaction(ctx, func(ctx context.Context, tx *spanner.ReadWriteTransaction) error {
		return tx.BufferWrite(plan.Mutations())
	})
}
