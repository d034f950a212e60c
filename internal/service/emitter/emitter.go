// Package emitter records domain events durably and publishes them on the
// event stream.
package emitter

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/facts-mng/internal/domain"
)

type eventLog interface {
	Append(ctx context.Context, e domain.Event) (domain.Event, error)
}

type eventStream interface {
	Publish(ctx context.Context, e domain.Event) error
}

// Emitter appends events to the log, which assigns their aggregate version
// and sequence, and then publishes them to the stream.
type Emitter struct {
	events eventLog
	stream eventStream
	ackKey string
	now    func() time.Time
	log    *slog.Logger
}

// New creates an Emitter that tags every event with ackKey.
func New(log *slog.Logger, events eventLog, stream eventStream, ackKey string) *Emitter {
	return &Emitter{
		events: events,
		stream: stream,
		ackKey: ackKey,
		now:    time.Now,
		log:    log.With("service", "emitter"),
	}
}

// Emit stamps e with the ack key and the current time, stores it and
// publishes it. Any failure is returned as a *domain.EmissionError.
func (m *Emitter) Emit(ctx context.Context, e domain.Event) (domain.Event, error) {
	e.AckKey = m.ackKey
	e.Timestamp = m.now().UnixMilli()

	stored, err := m.events.Append(ctx, e)
	if err != nil {
		return e, &domain.EmissionError{AggregateID: e.AggregateID, Err: err}
	}

	if err := m.stream.Publish(ctx, stored); err != nil {
		// The event is durable at this point; Sync will still replay it.
		return stored, &domain.EmissionError{AggregateID: e.AggregateID, Err: err}
	}

	m.log.DebugContext(ctx, "event emitted",
		slog.String("event_type", stored.EventType),
		slog.String("aggregate_id", stored.AggregateID),
		slog.Int64("av", stored.AggregateVersion),
		slog.Int64("seq", stored.Sequence),
		slog.String("mod_type", string(stored.ModKind())),
	)

	return stored, nil
}
