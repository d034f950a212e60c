package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	mongoadapter "github.com/heartmarshall/facts-mng/internal/adapter/mongo"
	redisadapter "github.com/heartmarshall/facts-mng/internal/adapter/redis"
	"github.com/heartmarshall/facts-mng/internal/auth"
	"github.com/heartmarshall/facts-mng/internal/config"
	"github.com/heartmarshall/facts-mng/internal/service/sharkattack"
	"github.com/heartmarshall/facts-mng/internal/transport/middleware"
	"github.com/heartmarshall/facts-mng/internal/transport/rest"
)

const rateLimitCleanup = time.Minute

// Run is the server entry point. It connects the stores and the broker,
// reconciles the materialized view from the event log, then serves HTTP and
// consumes the event stream until ctx is cancelled or SIGINT/SIGTERM arrives.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log, "facts-mng")
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	deps, err := Open(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer deps.Close()

	recov, err := deps.Recovery(logger)
	if err != nil {
		return err
	}

	if cfg.Events.SyncOnStart {
		n, err := recov.Syncer.Sync(ctx)
		if err != nil {
			return fmt.Errorf("initial sync: %w", err)
		}
		logger.Info("materialized view reconciled", slog.Int("events", n))
	}

	svc := sharkattack.NewService(
		logger,
		deps.Attacks,
		deps.Emitter(logger),
		deps.Notifier,
		deps.Feed,
		cfg.Events.MaxInFlight,
	)

	jwt := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	limiter := middleware.NewRateLimiter(rateLimitCleanup)
	defer limiter.Stop()

	router := rest.NewRouter(rest.RouterDeps{
		Health: rest.NewHealthHandler(BuildVersion(),
			rest.Check{Name: "mongo", Pinger: mongoadapter.Pinger{Client: deps.Mongo}},
			rest.Check{Name: "postgres", Pinger: deps.Pool},
			rest.Check{Name: "redis", Pinger: redisadapter.Pinger{Client: deps.Redis}},
		),
		SharkAttacks: rest.NewSharkAttackHandler(svc, logger),
		Subscription: rest.NewSubscriptionHandler(deps.Notifier, logger),
		API: middleware.Chain(
			middleware.Auth(jwt),
			limiter.Limit(cfg.Server.RateLimit),
		),
		Global: middleware.Chain(
			middleware.RequestID(),
			middleware.Recovery(logger),
			middleware.Logger(logger),
			middleware.CORS(cfg.CORS),
		),
	})

	server := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		return recov.Consumer.Run(gctx)
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	logger.Info("stopped")
	return nil
}

// consumerName identifies this replica inside the consumer group.
func consumerName(ackKey string) string {
	host, err := os.Hostname()
	if err != nil || host == "" {
		return ackKey
	}
	return host + "-" + ackKey
}
