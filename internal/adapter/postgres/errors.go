package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/facts-mng/internal/domain"
)

// mapError converts pgx/pgconn errors to domain errors.
// context.DeadlineExceeded is reported as domain.ErrStoreTimeout; context.Canceled passes through.
func mapError(err error, entity string, id string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s %s: %w: %w", entity, id, domain.ErrStoreTimeout, err)
	}
	if errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %s: %w", entity, id, err)
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrAlreadyExists)
		case "23514": // check_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrValidation)
		case "57014": // query_canceled (statement_timeout)
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrStoreTimeout)
		}
	}

	return fmt.Errorf("%s %s: %w", entity, id, err)
}

// MapError is mapError for sub-packages.
func MapError(err error, entity string, id string) error {
	return mapError(err, entity, id)
}
