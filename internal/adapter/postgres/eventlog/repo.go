// Package eventlog implements the durable domain event log using PostgreSQL.
// It assigns per-aggregate versions and a global sequence on append and
// serves ordered replays for recovery.
package eventlog

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	postgres "github.com/heartmarshall/facts-mng/internal/adapter/postgres"
	"github.com/heartmarshall/facts-mng/internal/domain"
)

const (
	eventsTable      = "domain_events"
	checkpointsTable = "event_checkpoints"
)

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

var eventColumns = []string{
	"seq", "event_type", "event_type_version", "aggregate_type", "aggregate_id",
	"aggregate_version", "data", "user_name", "ts", "ack_key",
}

// Repo provides event log persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
	tx *postgres.TxManager
}

// New creates a new event log repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db, tx: postgres.NewTxManager(db)}
}

type eventRow struct {
	Seq              int64  `db:"seq"`
	EventType        string `db:"event_type"`
	EventTypeVersion int    `db:"event_type_version"`
	AggregateType    string `db:"aggregate_type"`
	AggregateID      string `db:"aggregate_id"`
	AggregateVersion int64  `db:"aggregate_version"`
	Data             []byte `db:"data"`
	User             string `db:"user_name"`
	Timestamp        int64  `db:"ts"`
	AckKey           string `db:"ack_key"`
}

func (r eventRow) toDomain() (domain.Event, error) {
	e := domain.Event{
		Sequence:         r.Seq,
		EventType:        r.EventType,
		EventTypeVersion: r.EventTypeVersion,
		AggregateType:    r.AggregateType,
		AggregateID:      r.AggregateID,
		AggregateVersion: r.AggregateVersion,
		User:             r.User,
		Timestamp:        r.Timestamp,
		AckKey:           r.AckKey,
	}
	if len(r.Data) > 0 {
		if err := json.Unmarshal(r.Data, &e.Data); err != nil {
			return domain.Event{}, fmt.Errorf("decode event %d payload: %w", r.Seq, err)
		}
	}
	return e, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Append stores e and returns it with AggregateVersion and Sequence assigned.
// Appends for the same aggregate are serialized with a transaction-scoped
// advisory lock, so versions are gap-free and strictly increasing.
func (r *Repo) Append(ctx context.Context, e domain.Event) (domain.Event, error) {
	data, err := json.Marshal(e.Data)
	if err != nil {
		return domain.Event{}, fmt.Errorf("encode event payload: %w", err)
	}

	err = r.tx.RunInTx(ctx, func(ctx context.Context) error {
		q := postgres.QuerierFromCtx(ctx, r.db)

		if _, err := q.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, e.AggregateID); err != nil {
			return fmt.Errorf("lock aggregate: %w", err)
		}

		sql, args, err := psql.
			Select("COALESCE(MAX(aggregate_version), 0)").
			From(eventsTable).
			Where(squirrel.Eq{"aggregate_id": e.AggregateID}).
			ToSql()
		if err != nil {
			return fmt.Errorf("build version query: %w", err)
		}

		var current int64
		if err := q.QueryRow(ctx, sql, args...).Scan(&current); err != nil {
			return fmt.Errorf("read aggregate version: %w", err)
		}
		e.AggregateVersion = current + 1

		sql, args, err = psql.
			Insert(eventsTable).
			Columns(eventColumns[1:]...).
			Values(e.EventType, e.EventTypeVersion, e.AggregateType, e.AggregateID,
				e.AggregateVersion, data, e.User, e.Timestamp, e.AckKey).
			Suffix("RETURNING seq").
			ToSql()
		if err != nil {
			return fmt.Errorf("build insert: %w", err)
		}

		return q.QueryRow(ctx, sql, args...).Scan(&e.Sequence)
	})
	if err != nil {
		return domain.Event{}, postgres.MapError(err, "event", e.AggregateID)
	}

	return e, nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// ListAfter returns up to limit events of aggregateType with seq > afterSeq,
// ordered by seq ascending.
func (r *Repo) ListAfter(ctx context.Context, aggregateType string, afterSeq int64, limit int) ([]domain.Event, error) {
	sql, args, err := psql.
		Select(eventColumns...).
		From(eventsTable).
		Where(squirrel.Eq{"aggregate_type": aggregateType}).
		Where(squirrel.Gt{"seq": afterSeq}).
		OrderBy("seq ASC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}

	var rows []eventRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "events after", fmt.Sprint(afterSeq))
	}

	events := make([]domain.Event, 0, len(rows))
	for _, row := range rows {
		e, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, nil
}

// ---------------------------------------------------------------------------
// Checkpoints
// ---------------------------------------------------------------------------

// GetCheckpoint returns the last applied sequence for name, or 0 if none was saved.
func (r *Repo) GetCheckpoint(ctx context.Context, name string) (int64, error) {
	sql, args, err := psql.
		Select("seq").
		From(checkpointsTable).
		Where(squirrel.Eq{"name": name}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build checkpoint query: %w", err)
	}

	var seqs []int64
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &seqs, sql, args...); err != nil {
		return 0, postgres.MapError(err, "checkpoint", name)
	}
	if len(seqs) == 0 {
		return 0, nil
	}
	return seqs[0], nil
}

// SaveCheckpoint records seq as the last applied sequence for name.
func (r *Repo) SaveCheckpoint(ctx context.Context, name string, seq int64) error {
	sql, args, err := psql.
		Insert(checkpointsTable).
		Columns("name", "seq").
		Values(name, seq).
		Suffix("ON CONFLICT (name) DO UPDATE SET seq = EXCLUDED.seq, updated_at = now()").
		ToSql()
	if err != nil {
		return fmt.Errorf("build checkpoint upsert: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "checkpoint", name)
	}
	return nil
}

// ResetCheckpoint removes the checkpoint for name so the next sync replays from the start.
func (r *Repo) ResetCheckpoint(ctx context.Context, name string) error {
	sql, args, err := psql.Delete(checkpointsTable).Where(squirrel.Eq{"name": name}).ToSql()
	if err != nil {
		return fmt.Errorf("build checkpoint delete: %w", err)
	}
	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "checkpoint", name)
	}
	return nil
}
