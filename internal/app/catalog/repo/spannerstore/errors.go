package spannerstore

import (
	"errors"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/grpc/codes"

	contracts "github.com/murkotick/bookstore-catalog-service/internal/app/catalog/contracts"
)

// translate maps Spanner status codes onto store errors. AlreadyExists comes
// from a unique index (isbn, slug) and NotFound from an Update of a missing row.
func translate(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, spanner.ErrRowNotFound) {
		return fmt.Errorf("%s: %w", op, contracts.ErrRecordNotFound)
	}
	switch spanner.ErrCode(err) {
	case codes.AlreadyExists:
		return fmt.Errorf("%s: %w", op, contracts.ErrDuplicateKey)
	case codes.NotFound:
		return fmt.Errorf("%s: %w", op, contracts.ErrRecordNotFound)
	}
	return fmt.Errorf("%s: %w", op, err)
}
