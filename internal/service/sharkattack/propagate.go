package sharkattack

import (
	"context"
	"errors"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/facts-mng/internal/domain"
)

// propagate emits e and publishes note concurrently and waits for both.
// A failed publish is only logged. A failed emission is returned as an
// EmissionError carrying result, the already committed outcome.
func (s *Service) propagate(ctx context.Context, e domain.Event, note map[string]any, result any) error {
	var g errgroup.Group

	g.Go(func() error {
		_, err := s.emitter.Emit(ctx, e)
		return err
	})
	if note != nil {
		g.Go(func() error {
			s.publish(ctx, note)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return emissionError(e.AggregateID, result, err)
	}
	return nil
}

func (s *Service) publish(ctx context.Context, note map[string]any) {
	if err := s.notifier.Publish(ctx, note); err != nil {
		s.log.WarnContext(ctx, "notification publish failed",
			slog.String("id", noteID(note)),
			slog.String("error", err.Error()),
		)
	}
}

func emissionError(aggregateID string, result any, err error) error {
	var ee *domain.EmissionError
	if errors.As(err, &ee) {
		return &domain.EmissionError{AggregateID: ee.AggregateID, Result: result, Err: ee.Err}
	}
	return &domain.EmissionError{AggregateID: aggregateID, Result: result, Err: err}
}

func noteID(note map[string]any) string {
	id, _ := note[domain.FieldID].(string)
	return id
}
