package recovery

import (
	"context"
	"errors"
	"log/slog"
	"time"

	redisadapter "github.com/heartmarshall/facts-mng/internal/adapter/redis"
	"github.com/heartmarshall/facts-mng/internal/domain"
)

const readRetryDelay = time.Second

type eventStream interface {
	EnsureGroup(ctx context.Context) error
	Read(ctx context.Context, count int64) ([]redisadapter.StreamMessage, error)
	Ack(ctx context.Context, ids ...string) error
}

type deduper interface {
	MarkProcessed(ctx context.Context, seq int64) (bool, error)
	Forget(ctx context.Context, seq int64) error
}

// Consumer applies events from the live stream.
type Consumer struct {
	handler *Handler
	stream  eventStream
	dedupe  deduper
	ackKey  string
	batch   int64
	log     *slog.Logger
}

// NewConsumer creates a live consumer. Events carrying ackKey were emitted by
// this process and are skipped.
func NewConsumer(log *slog.Logger, handler *Handler, stream eventStream, dedupe deduper, ackKey string, batch int) *Consumer {
	if batch <= 0 {
		batch = 1
	}
	return &Consumer{
		handler: handler,
		stream:  stream,
		dedupe:  dedupe,
		ackKey:  ackKey,
		batch:   int64(batch),
		log:     log.With("service", "recovery-consumer"),
	}
}

// Run reads the stream until ctx is cancelled.
func (c *Consumer) Run(ctx context.Context) error {
	if err := c.stream.EnsureGroup(ctx); err != nil {
		return err
	}
	c.log.InfoContext(ctx, "recovery consumer started")

	for {
		if ctx.Err() != nil {
			c.log.InfoContext(ctx, "recovery consumer stopped")
			return nil
		}

		msgs, err := c.stream.Read(ctx, c.batch)
		if err != nil {
			if ctx.Err() != nil {
				continue
			}
			c.log.ErrorContext(ctx, "read event stream", slog.String("error", err.Error()))
			select {
			case <-ctx.Done():
			case <-time.After(readRetryDelay):
			}
			continue
		}

		for _, m := range msgs {
			c.process(ctx, m)
		}
	}
}

// process handles one stream entry and acknowledges it. Entries that fail to
// apply are acknowledged too; the next Sync replays them from the event log.
func (c *Consumer) process(ctx context.Context, m redisadapter.StreamMessage) {
	defer func() {
		if err := c.stream.Ack(ctx, m.ID); err != nil {
			c.log.WarnContext(ctx, "ack stream entry", slog.String("entry", m.ID), slog.String("error", err.Error()))
		}
	}()

	if m.Err != nil {
		c.log.WarnContext(ctx, "malformed stream entry", slog.String("entry", m.ID), slog.String("error", m.Err.Error()))
		return
	}

	e := m.Event
	if e.AckKey == c.ackKey || !c.handler.LiveEligible(e) {
		return
	}

	if e.Sequence > 0 {
		fresh, err := c.dedupe.MarkProcessed(ctx, e.Sequence)
		if err != nil {
			c.log.WarnContext(ctx, "dedupe check", slog.Int64("seq", e.Sequence), slog.String("error", err.Error()))
		} else if !fresh {
			c.log.DebugContext(ctx, "duplicate delivery skipped", slog.Int64("seq", e.Sequence))
			return
		}
	}

	err := c.handler.Handle(ctx, e)
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrUnsupportedSchemaVersion):
		c.log.ErrorContext(ctx, "event dropped", slog.Int64("seq", e.Sequence), slog.String("error", err.Error()))
	default:
		c.log.ErrorContext(ctx, "apply event", slog.Int64("seq", e.Sequence), slog.String("error", err.Error()))
		if e.Sequence > 0 {
			_ = c.dedupe.Forget(ctx, e.Sequence)
		}
	}
}
