// Command replay reconciles the materialized view from the durable event
// log without starting the HTTP server.
//
// Flags:
//
//	--from-scratch  reset the recovery checkpoint and replay every event
//	--timeout       overall deadline (default 30m)
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/facts-mng/internal/app"
	"github.com/heartmarshall/facts-mng/internal/config"
)

func main() {
	fromScratch := flag.Bool("from-scratch", false, "reset the checkpoint and replay the whole log")
	timeout := flag.Duration("timeout", 30*time.Minute, "overall deadline")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log, "facts-mng-replay")

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	deps, err := app.Open(ctx, cfg, logger)
	if err != nil {
		logger.Error("connect", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer deps.Close()

	recov, err := deps.Recovery(logger)
	if err != nil {
		logger.Error("build recovery", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if *fromScratch {
		if err := recov.Syncer.Reset(ctx); err != nil {
			logger.Error("reset checkpoint", slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("checkpoint reset")
	}

	n, err := recov.Syncer.Sync(ctx)
	if err != nil {
		logger.Error("replay failed", slog.Int("applied", n), slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("replay completed", slog.Int("applied", n))
}
