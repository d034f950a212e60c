package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/x/mongo/driver/topology"

	"github.com/heartmarshall/facts-mng/internal/domain"
)

// MapError converts driver errors to domain errors.
// mongo.ErrNoDocuments is NOT mapped; repositories turn it into an empty result.
func MapError(err error, entity string, id string) error {
	if err == nil {
		return nil
	}

	if IsTimeout(err) {
		return fmt.Errorf("%s %s: %w: %w", entity, id, domain.ErrStoreTimeout, err)
	}

	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrAlreadyExists)
	}

	return fmt.Errorf("%s %s: %w", entity, id, err)
}

// IsTimeout reports whether err leaves the outcome of a store call unknown:
// a context deadline, a network timeout or a failed server selection.
func IsTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || mongo.IsTimeout(err) {
		return true
	}
	var sel topology.ServerSelectionError
	return errors.As(err, &sel)
}
