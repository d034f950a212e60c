// Package recovery applies domain events back onto the materialized view,
// either live from the event stream or by replaying the durable event log.
package recovery

import (
	"context"
	"fmt"
	"log/slog"
	"maps"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/facts-mng/internal/adapter/relay"
	"github.com/heartmarshall/facts-mng/internal/domain"
)

type attackStore interface {
	Delete(ctx context.Context, id string) error
	InsertIfAbsent(ctx context.Context, id string, props domain.Properties) (bool, error)
	ApplyRecovered(ctx context.Context, id string, props domain.Properties) error
	ReplaceRecovered(ctx context.Context, id string, props domain.Properties) error
}

type relaySink interface {
	Send(ctx context.Context, msg relay.Message) error
}

type processor struct {
	// processOnlyOnSync events are applied during Sync but skipped by the
	// live consumer.
	processOnlyOnSync bool
}

var processors = map[string]processor{
	domain.EventSharkAttackModified: {processOnlyOnSync: true},
	domain.EventSharkAttackReported: {processOnlyOnSync: false},
}

// Handler applies a single event to the materialized view and forwards it
// to the relay sink.
type Handler struct {
	store attackStore
	relay relaySink
	log   *slog.Logger
}

// NewHandler creates a new recovery handler.
func NewHandler(log *slog.Logger, store attackStore, sink relaySink) *Handler {
	return &Handler{
		store: store,
		relay: sink,
		log:   log.With("service", "recovery"),
	}
}

// handles reports whether e is a SharkAttack event with a registered processor.
func (h *Handler) handles(e domain.Event) (processor, bool) {
	if e.AggregateType != domain.AggregateSharkAttack {
		return processor{}, false
	}
	p, ok := processors[e.EventType]
	return p, ok
}

// LiveEligible reports whether the live consumer should apply e.
func (h *Handler) LiveEligible(e domain.Event) bool {
	p, ok := h.handles(e)
	return ok && !p.processOnlyOnSync
}

// Handle applies e. Unknown aggregate and event types are ignored. A payload
// version without a mapper fails with domain.ErrUnsupportedSchemaVersion and
// nothing is written. Relay failures are logged only.
func (h *Handler) Handle(ctx context.Context, e domain.Event) error {
	if _, ok := h.handles(e); !ok {
		h.log.DebugContext(ctx, "event ignored",
			slog.String("aggregate_type", e.AggregateType),
			slog.String("event_type", e.EventType),
		)
		return nil
	}

	data, err := mapPayload(e)
	if err != nil {
		return err
	}
	kind := e.ModKind()

	var g errgroup.Group
	g.Go(func() error {
		return h.apply(ctx, kind, e.AggregateID, domain.PropertiesFromPayload(data))
	})
	g.Go(func() error {
		msg := relay.Message{AggregateID: e.AggregateID, EventType: e.EventType, ModType: string(kind), Data: data}
		if err := h.relay.Send(ctx, msg); err != nil {
			h.log.WarnContext(ctx, "relay send failed",
				slog.String("id", e.AggregateID),
				slog.String("error", err.Error()),
			)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("recover %s %s: %w", e.EventType, e.AggregateID, err)
	}
	return nil
}

func (h *Handler) apply(ctx context.Context, kind domain.ModKind, id string, props domain.Properties) error {
	switch kind {
	case domain.ModDelete:
		return h.store.Delete(ctx, id)
	case domain.ModCreate:
		inserted, err := h.store.InsertIfAbsent(ctx, id, props)
		if err != nil {
			return err
		}
		if !inserted {
			h.log.DebugContext(ctx, "create replay skipped, already present", slog.String("id", id))
		}
		return nil
	case domain.ModUpdateReplace:
		return h.store.ReplaceRecovered(ctx, id, props)
	default:
		return h.store.ApplyRecovered(ctx, id, props)
	}
}

// mapPayload converts the stored payload to the current shape.
func mapPayload(e domain.Event) (map[string]any, error) {
	switch e.EventTypeVersion {
	case 1:
		data := maps.Clone(e.Data)
		if data == nil {
			data = map[string]any{}
		}
		delete(data, domain.ModTypeField)
		return data, nil
	default:
		return nil, fmt.Errorf("%w: %s v%d", domain.ErrUnsupportedSchemaVersion, e.EventType, e.EventTypeVersion)
	}
}
