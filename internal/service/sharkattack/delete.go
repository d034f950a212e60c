package sharkattack

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/facts-mng/internal/domain"
)

// Delete removes every id. One DELETE event is emitted per id whether or not
// it existed, and the deletion marker is published once.
func (s *Service) Delete(ctx context.Context, input DeleteInput) (*domain.CommandResult, error) {
	caller, err := s.authorize(ctx, OpDelete)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var (
		g       errgroup.Group
		deleted bool
	)
	g.Go(func() error {
		ok, err := s.attacks.DeleteMany(ctx, input.IDs)
		if err != nil {
			return fmt.Errorf("delete shark attacks: %w", err)
		}
		deleted = ok
		return nil
	})

	var events errgroup.Group
	events.SetLimit(s.maxInFlight)
	for _, id := range input.IDs {
		events.Go(func() error {
			_, err := s.emitter.Emit(ctx, domain.NewModifiedEvent(domain.ModDelete, id, caller.Username, nil, ""))
			return err
		})
	}

	storeErr := g.Wait()
	emitErr := events.Wait()
	if storeErr != nil {
		return nil, storeErr
	}

	result := deleteResult(input.IDs, deleted)
	s.publish(ctx, domain.DeletedMarker())

	if emitErr != nil {
		return result, emissionError(fmt.Sprint(input.IDs), result, emitErr)
	}

	s.log.InfoContext(ctx, "shark attacks deleted",
		slog.Int("count", len(input.IDs)),
		slog.Bool("deleted", deleted),
		slog.String("user", caller.Username),
	)

	return result, nil
}

func deleteResult(ids []string, deleted bool) *domain.CommandResult {
	quoted, _ := json.Marshal(ids)
	if deleted {
		return &domain.CommandResult{
			Code:    http.StatusOK,
			Message: fmt.Sprintf("SharkAttack with id:s %s has been deleted", quoted),
		}
	}
	return &domain.CommandResult{
		Code:    http.StatusBadRequest,
		Message: fmt.Sprintf("SharkAttack with id:s %s not found for deletion", quoted),
	}
}
