package recovery

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/facts-mng/internal/domain"
)

// DefaultCheckpoint is the checkpoint name used by the server and cmd/replay.
const DefaultCheckpoint = "facts-mng-recovery"

// DefaultHoldBack is how long a sequence gap is assumed to be an append that
// has not committed yet.
const DefaultHoldBack = 5 * time.Second

type eventLog interface {
	ListAfter(ctx context.Context, aggregateType string, afterSeq int64, limit int) ([]domain.Event, error)
	GetCheckpoint(ctx context.Context, name string) (int64, error)
	SaveCheckpoint(ctx context.Context, name string, seq int64) error
	ResetCheckpoint(ctx context.Context, name string) error
}

// Syncer replays the durable event log onto the materialized view.
type Syncer struct {
	handler    *Handler
	events     eventLog
	checkpoint string
	batch      int
	holdBack   time.Duration
	now        func() time.Time
	log        *slog.Logger
}

// NewSyncer creates a syncer that tracks its progress under checkpoint.
// Sequences are assigned when an append starts, so a younger event behind a
// gap is left for a later run until holdBack has passed.
func NewSyncer(log *slog.Logger, handler *Handler, events eventLog, checkpoint string, batch int, holdBack time.Duration) *Syncer {
	if batch <= 0 {
		batch = 500
	}
	if holdBack < 0 {
		holdBack = 0
	}
	if checkpoint == "" {
		checkpoint = DefaultCheckpoint
	}
	return &Syncer{
		handler:    handler,
		events:     events,
		checkpoint: checkpoint,
		batch:      batch,
		holdBack:   holdBack,
		now:        time.Now,
		log:        log.With("service", "recovery-sync"),
	}
}

// Sync applies every SharkAttack event after the checkpoint in sequence order
// and returns how many were applied. The checkpoint advances after each batch
// and stops short of a gap that may still be filled.
// Events with an unsupported payload version are logged and skipped.
func (s *Syncer) Sync(ctx context.Context) (int, error) {
	after, err := s.events.GetCheckpoint(ctx, s.checkpoint)
	if err != nil {
		return 0, fmt.Errorf("sync: load checkpoint: %w", err)
	}
	s.log.InfoContext(ctx, "sync started", slog.Int64("after_seq", after))

	applied := 0
	for {
		batch, err := s.events.ListAfter(ctx, domain.AggregateSharkAttack, after, s.batch)
		if err != nil {
			return applied, fmt.Errorf("sync: list events: %w", err)
		}
		if len(batch) == 0 {
			break
		}

		held := false
		for _, e := range batch {
			if s.pendingGap(after, e) {
				s.log.InfoContext(ctx, "sync held at sequence gap",
					slog.Int64("after_seq", after),
					slog.Int64("next_seq", e.Sequence),
				)
				held = true
				break
			}
			if err := s.handler.Handle(ctx, e); err != nil {
				if !errors.Is(err, domain.ErrUnsupportedSchemaVersion) {
					if saveErr := s.save(ctx, after); saveErr != nil {
						s.log.ErrorContext(ctx, "save checkpoint", slog.String("error", saveErr.Error()))
					}
					return applied, fmt.Errorf("sync: seq %d: %w", e.Sequence, err)
				}
				s.log.ErrorContext(ctx, "event skipped", slog.Int64("seq", e.Sequence), slog.String("error", err.Error()))
			} else {
				applied++
			}
			after = e.Sequence
		}

		if err := s.save(ctx, after); err != nil {
			return applied, err
		}
		if held || len(batch) < s.batch {
			break
		}
	}

	s.log.InfoContext(ctx, "sync finished", slog.Int("applied", applied), slog.Int64("checkpoint", after))
	return applied, nil
}

// Reset discards the checkpoint so the next Sync replays from the beginning.
func (s *Syncer) Reset(ctx context.Context) error {
	if err := s.events.ResetCheckpoint(ctx, s.checkpoint); err != nil {
		return fmt.Errorf("sync: reset checkpoint: %w", err)
	}
	return nil
}

// pendingGap reports whether e follows a missing sequence and is recent
// enough that the missing append may still commit.
func (s *Syncer) pendingGap(after int64, e domain.Event) bool {
	if e.Sequence <= after+1 {
		return false
	}
	return s.now().Sub(time.UnixMilli(e.Timestamp)) < s.holdBack
}

func (s *Syncer) save(ctx context.Context, seq int64) error {
	if err := s.events.SaveCheckpoint(ctx, s.checkpoint, seq); err != nil {
		return fmt.Errorf("sync: save checkpoint: %w", err)
	}
	return nil
}
