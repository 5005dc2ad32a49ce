package spannerstore

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	contracts "github.com/murkotick/bookstore-catalog-service/internal/app/catalog/contracts"
	"github.com/murkotick/bookstore-catalog-service/internal/models/m_author"
	"github.com/murkotick/bookstore-catalog-service/internal/models/m_book"
	"github.com/murkotick/bookstore-catalog-service/internal/models/m_publisher"
	"github.com/murkotick/bookstore-catalog-service/internal/pkg/clock"
	commitplan "github.com/murkotick/bookstore-catalog-service/internal/pkg/committer"
	"github.com/murkotick/bookstore-catalog-service/internal/pkg/idgen"
)

// recordingCommitter keeps every applied plan instead of talking to Spanner.
type recordingCommitter struct {
	plans []*commitplan.Plan
	err   error
}

func (c *recordingCommitter) Apply(_ context.Context, plan *commitplan.Plan) error {
	c.plans = append(c.plans, plan)
	return c.err
}

func testDeps(c contracts.Committer) Deps {
	return Deps{
		Committer: c,
		IDs:       idgen.NewSequence(1000),
		Clock:     clock.NewFake(time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)),
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestBookSavePlan_NewBook(t *testing.T) {
	s := NewBookStore(testDeps(&recordingCommitter{}))
	e := &m_book.Entity{
		ISBN:    "9780000000001",
		Authors: []m_author.Entity{{ID: 7}, {ID: 8}},
	}

	plan, err := s.savePlan(e)
	require.NoError(t, err)

	assert.Equal(t, int64(1000), e.ID)
	// book insert + link clear + 2 links + outbox
	assert.Equal(t, 5, plan.Len())
}

func TestBookSavePlan_ExistingBookKeepsID(t *testing.T) {
	s := NewBookStore(testDeps(&recordingCommitter{}))
	e := &m_book.Entity{ID: 42, ISBN: "9780000000001"}

	plan, err := s.savePlan(e)
	require.NoError(t, err)

	assert.Equal(t, int64(42), e.ID)
	assert.Equal(t, 3, plan.Len())
}

func TestBookSave_DoesNotMutateInput(t *testing.T) {
	c := &recordingCommitter{}
	s := NewBookStore(testDeps(c))
	in := &m_book.Entity{ISBN: "9780000000001", Publisher: &m_publisher.Entity{ID: 3}}

	out, err := s.Save(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, int64(0), in.ID)
	assert.Equal(t, int64(1000), out.ID)
	require.Len(t, c.plans, 1)
}

func TestBookSave_TranslatesCommitErrors(t *testing.T) {
	c := &recordingCommitter{err: spanner.ToSpannerError(status.Error(codes.AlreadyExists, "books_by_isbn"))}
	s := NewBookStore(testDeps(c))

	_, err := s.Save(context.Background(), &m_book.Entity{ISBN: "9780000000001"})
	assert.ErrorIs(t, err, contracts.ErrDuplicateKey)
}

func TestPublisherSavePlan(t *testing.T) {
	s := NewPublisherStore(testDeps(&recordingCommitter{}))

	e := &m_publisher.Entity{Name: "Tor", Slug: "tor"}
	plan, err := s.savePlan(e)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), e.ID)
	assert.Equal(t, 2, plan.Len())

	e2 := &m_publisher.Entity{ID: 5, Name: "Orbit", Slug: "orbit"}
	plan, err = s.savePlan(e2)
	require.NoError(t, err)
	assert.Equal(t, int64(5), e2.ID)
	assert.Equal(t, 2, plan.Len())
}

func TestAuthorSave_AssignsID(t *testing.T) {
	c := &recordingCommitter{}
	s := NewAuthorStore(testDeps(c))

	out, err := s.Save(context.Background(), &m_author.Entity{Name: "N.K. Jemisin", Slug: "nk-jemisin"})
	require.NoError(t, err)
	assert.Equal(t, int64(1000), out.ID)
	require.Len(t, c.plans, 1)
	assert.Equal(t, 2, c.plans[0].Len())
}

func TestTranslate(t *testing.T) {
	assert.NoError(t, translate("op", nil))
	assert.ErrorIs(t, translate("op", spanner.ErrRowNotFound), contracts.ErrRecordNotFound)
	assert.ErrorIs(t, translate("op", spanner.ToSpannerError(status.Error(codes.NotFound, "row"))), contracts.ErrRecordNotFound)
	assert.ErrorIs(t, translate("op", spanner.ToSpannerError(status.Error(codes.AlreadyExists, "dup"))), contracts.ErrDuplicateKey)

	boom := errors.New("boom")
	err := translate("read book", boom)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "read book")
}

func TestNonZero(t *testing.T) {
	assert.Equal(t, []int64{3, 5}, nonZero([]int64{0, 3, 3, 0, 5}))
	assert.Empty(t, nonZero(nil))
}
