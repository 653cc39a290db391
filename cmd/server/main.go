// Package main is the entry point for the Monkey Intelligence API server.
//
// main only reads configuration, builds the logger, error reporting and the
// store, and hands them to internal/server. Everything else lives in
// internal packages.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/sakif/monkey-intelligence/internal/config"
	"github.com/sakif/monkey-intelligence/internal/observability"
	"github.com/sakif/monkey-intelligence/internal/repository"
	"github.com/sakif/monkey-intelligence/internal/repository/memory"
	"github.com/sakif/monkey-intelligence/internal/repository/sqlite"
	"github.com/sakif/monkey-intelligence/internal/server"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server exited", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run() error {
	// === 1. CONFIGURATION ===
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// === 2. LOGGING ===
	logger := config.NewLogger(os.Stdout, cfg)
	slog.SetDefault(logger)

	// === 3. ERROR REPORTING ===
	flush, err := observability.InitSentry(cfg.SentryDSN, cfg.Env, cfg.Release)
	if err != nil {
		logger.Warn("sentry disabled", slog.String("error", err.Error()))
	}
	defer flush()

	// === 4. STORE ===
	store, err := newStore(cfg)
	if err != nil {
		return err
	}

	// === 5. SERVER ===
	srv, err := server.New(cfg, logger, store)
	if err != nil {
		store.Close()
		return fmt.Errorf("creating server: %w", err)
	}

	// Start blocks until SIGINT/SIGTERM and closes the store on the way out.
	return srv.Start()
}

func newStore(cfg config.Config) (repository.Store, error) {
	opts := repository.Options{AssignProgressIDs: cfg.AssignProgressIDs}

	switch cfg.StoreDriver {
	case config.StoreSQLite:
		db, err := sqlite.New(opts)
		if err != nil {
			return nil, fmt.Errorf("opening sqlite store: %w", err)
		}
		return db, nil
	default:
		return memory.New(opts), nil
	}
}
