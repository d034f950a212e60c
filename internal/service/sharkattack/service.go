// Package sharkattack implements the SharkAttack commands and queries: every
// write goes to the materialized view first and is then propagated as a
// domain event and a live notification.
package sharkattack

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/facts-mng/internal/adapter/feed"
	"github.com/heartmarshall/facts-mng/internal/domain"
)

type attackRepo interface {
	Get(ctx context.Context, id, organizationID string) (*domain.SharkAttack, error)
	List(ctx context.Context, f domain.SharkAttackFilter, p domain.Pagination, s domain.Sort) ([]domain.SharkAttack, error)
	Count(ctx context.Context, f domain.SharkAttackFilter) (int64, error)
	Create(ctx context.Context, id string, props domain.Properties, actor string) (*domain.SharkAttack, error)
	Upsert(ctx context.Context, id string, props domain.Properties, actor string) (*domain.SharkAttack, error)
	Update(ctx context.Context, id string, props domain.Properties, actor string) (*domain.SharkAttack, error)
	Replace(ctx context.Context, id string, props domain.Properties) (*domain.SharkAttack, error)
	DeleteMany(ctx context.Context, ids []string) (bool, error)
	AggregateStats(ctx context.Context, limit int) domain.Stats
}

type eventEmitter interface {
	Emit(ctx context.Context, e domain.Event) (domain.Event, error)
}

type notifier interface {
	Publish(ctx context.Context, payload map[string]any) error
}

type feedClient interface {
	FetchRecords(ctx context.Context) ([]feed.Record, error)
	ByCountry(ctx context.Context, country string) ([]feed.Record, error)
}

// Service provides the SharkAttack operations.
type Service struct {
	attacks     attackRepo
	emitter     eventEmitter
	notifier    notifier
	feed        feedClient
	maxInFlight int
	newID       func() string
	log         *slog.Logger
}

// NewService creates a new SharkAttack service. maxInFlight bounds the
// concurrent sub-operations of bulk commands.
func NewService(
	log *slog.Logger,
	attacks attackRepo,
	emitter eventEmitter,
	notifier notifier,
	feed feedClient,
	maxInFlight int,
) *Service {
	if maxInFlight <= 0 {
		maxInFlight = 1
	}
	return &Service{
		attacks:     attacks,
		emitter:     emitter,
		notifier:    notifier,
		feed:        feed,
		maxInFlight: maxInFlight,
		newID:       uuid.NewString,
		log:         log.With("service", "sharkattack"),
	}
}
