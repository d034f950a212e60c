// Command migrate applies the event log migrations with goose.
//
// Usage:
//
//	migrate [up|down|status]   (default: up)
package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql
	"github.com/pressly/goose/v3"

	"github.com/heartmarshall/facts-mng/internal/app"
	"github.com/heartmarshall/facts-mng/internal/config"
	"github.com/heartmarshall/facts-mng/migrations"
)

func main() {
	command := "up"
	if len(os.Args) > 1 {
		command = os.Args[1]
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log, "facts-mng-migrate")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if err := run(ctx, cfg.Database.DSN, command, logger); err != nil {
		logger.Error("migrate", slog.String("command", command), slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context, dsn, command string, logger *slog.Logger) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return err
	}

	switch command {
	case "up":
		results, err := provider.Up(ctx)
		for _, r := range results {
			logger.Info("applied", slog.String("source", r.Source.Path), slog.Duration("duration", r.Duration))
		}
		return err
	case "down":
		r, err := provider.Down(ctx)
		if r != nil {
			logger.Info("rolled back", slog.String("source", r.Source.Path))
		}
		return err
	case "status":
		statuses, err := provider.Status(ctx)
		if err != nil {
			return err
		}
		for _, s := range statuses {
			logger.Info("migration",
				slog.Int64("version", s.Source.Version),
				slog.String("state", string(s.State)),
				slog.Time("applied_at", s.AppliedAt),
			)
		}
		return nil
	default:
		return fmt.Errorf("unknown command %q, expected up, down or status", command)
	}
}
