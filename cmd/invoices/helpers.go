package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/viper"

	"github.com/Veraticus/stellar-invoices/internal/config"
	"github.com/Veraticus/stellar-invoices/internal/demo"
	"github.com/Veraticus/stellar-invoices/internal/service"
	"github.com/Veraticus/stellar-invoices/internal/storage"
)

// loadConfig decodes and validates the global viper configuration.
func loadConfig() (*config.Config, error) {
	return config.Load(viper.GetViper())
}

// initStorage opens the configured database and brings its schema up to date.
func initStorage(ctx context.Context, cfg *config.Config) (service.Storage, error) {
	store, err := storage.NewSQLiteStorage(cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// demoSource returns generated invoices that never touch the database.
func demoSource(cfg *config.Config, count int, now time.Time) service.InvoiceSource {
	opts := demo.DefaultOptions(count)
	opts.Now = now
	opts.Seed = cfg.Seed.Seed
	slog.Debug("Using demo invoices", "count", count, "seed", opts.Seed)
	return service.StaticSource(demo.Generate(opts))
}

// openSource picks the demo generator or the database. The returned close
// function is always safe to call.
func openSource(ctx context.Context, cfg *config.Config, useDemo bool, demoCount int) (service.InvoiceSource, func(), error) {
	if useDemo {
		return demoSource(cfg, demoCount, time.Now()), func() {}, nil
	}

	store, err := initStorage(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	return store, func() {
		if closeErr := store.Close(); closeErr != nil {
			slog.Warn("Failed to close database", "error", closeErr)
		}
	}, nil
}
