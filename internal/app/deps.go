package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/heartmarshall/facts-mng/internal/adapter/feed"
	mongoadapter "github.com/heartmarshall/facts-mng/internal/adapter/mongo"
	mongostore "github.com/heartmarshall/facts-mng/internal/adapter/mongo/sharkattack"
	"github.com/heartmarshall/facts-mng/internal/adapter/postgres"
	"github.com/heartmarshall/facts-mng/internal/adapter/postgres/eventlog"
	redisadapter "github.com/heartmarshall/facts-mng/internal/adapter/redis"
	"github.com/heartmarshall/facts-mng/internal/adapter/relay"
	"github.com/heartmarshall/facts-mng/internal/config"
	"github.com/heartmarshall/facts-mng/internal/service/emitter"
	"github.com/heartmarshall/facts-mng/internal/service/recovery"
)

const (
	connectTimeout    = 15 * time.Second
	disconnectTimeout = 5 * time.Second
)

// Deps holds the connected infrastructure shared by the server and the
// maintenance commands.
type Deps struct {
	cfg *config.Config

	Mongo    *mongo.Client
	Pool     *pgxpool.Pool
	Redis    *goredis.Client
	Attacks  *mongostore.Repo
	Events   *eventlog.Repo
	Stream   *redisadapter.EventStream
	Notifier *redisadapter.Notifier
	Deduper  *redisadapter.Deduper
	Feed     *feed.Client
}

// Recovery bundles the live consumer and the catch-up syncer.
type Recovery struct {
	Handler  *recovery.Handler
	Consumer *recovery.Consumer
	Syncer   *recovery.Syncer
}

// Open connects MongoDB, PostgreSQL and Redis. Whatever was opened before a
// failure is closed again.
func Open(ctx context.Context, cfg *config.Config, logger *slog.Logger) (_ *Deps, err error) {
	d := &Deps{cfg: cfg}
	defer func() {
		if err != nil {
			d.Close()
		}
	}()

	connCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	if d.Mongo, err = mongoadapter.NewClient(connCtx, cfg.Mongo); err != nil {
		return nil, err
	}
	logger.Info("connected to mongo", slog.String("database", cfg.Mongo.Database))

	d.Attacks = mongostore.New(d.Mongo.Database(cfg.Mongo.Database).Collection(cfg.Mongo.Collection), logger)
	if err = d.Attacks.EnsureIndexes(connCtx); err != nil {
		return nil, fmt.Errorf("ensure indexes: %w", err)
	}

	if d.Pool, err = postgres.NewPool(connCtx, cfg.Database); err != nil {
		return nil, err
	}
	logger.Info("connected to postgres")
	d.Events = eventlog.New(d.Pool)

	if d.Redis, err = redisadapter.NewClient(connCtx, cfg.Redis); err != nil {
		return nil, err
	}
	logger.Info("connected to redis", slog.String("addr", cfg.Redis.Addr))

	d.Stream = redisadapter.NewEventStream(
		d.Redis,
		cfg.Events.Stream,
		cfg.Events.ConsumerGroup,
		consumerName(cfg.Events.AckKey),
		cfg.Events.BlockTimeout,
	)
	d.Notifier = redisadapter.NewNotifier(d.Redis, logger)
	d.Deduper = redisadapter.NewDeduper(d.Redis, cfg.Events.DedupeTTL)
	d.Feed = feed.NewClient(cfg.Feed, logger)

	return d, nil
}

// Emitter returns the event emitter bound to the durable log and the stream.
func (d *Deps) Emitter(logger *slog.Logger) *emitter.Emitter {
	return emitter.New(logger, d.Events, d.Stream, d.cfg.Events.AckKey)
}

// Recovery builds the recovery pipeline with the configured relay sink.
func (d *Deps) Recovery(logger *slog.Logger) (*Recovery, error) {
	sink, err := relay.New(d.cfg.Relay, d.Redis)
	if err != nil {
		return nil, err
	}

	h := recovery.NewHandler(logger, d.Attacks, sink)
	return &Recovery{
		Handler:  h,
		Consumer: recovery.NewConsumer(logger, h, d.Stream, d.Deduper, d.cfg.Events.AckKey, d.cfg.Events.MaxInFlight),
		Syncer:   recovery.NewSyncer(logger, h, d.Events, recovery.DefaultCheckpoint, d.cfg.Events.SyncBatchSize, d.cfg.Events.SyncHoldBack),
	}, nil
}

// Close releases every opened connection.
func (d *Deps) Close() {
	if d.Redis != nil {
		_ = d.Redis.Close()
	}
	if d.Pool != nil {
		d.Pool.Close()
	}
	if d.Mongo != nil {
		ctx, cancel := context.WithTimeout(context.Background(), disconnectTimeout)
		defer cancel()
		_ = d.Mongo.Disconnect(ctx)
	}
}
