package main

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/Veraticus/stellar-invoices/internal/cli"
	"github.com/Veraticus/stellar-invoices/internal/demo"
	"github.com/Veraticus/stellar-invoices/internal/service"
	"github.com/Veraticus/stellar-invoices/internal/storage"
)

func seedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed [count]",
		Short: "Fill the database with generated invoices",
		Long: `Generate realistic invoices and store them in the database.

The count defaults to seed.count from the configuration. Setting seed.seed
makes the generated data repeatable. With --reset the database is backed up
next to itself before the existing invoices are removed.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runSeed,
	}

	cmd.Flags().Bool("reset", false, "Delete existing invoices first")
	cmd.Flags().Bool("no-backup", false, "Skip the backup taken before --reset")

	return cmd
}

func runSeed(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	count := cfg.Seed.Count
	if len(args) == 1 {
		count, err = strconv.Atoi(args[0])
		if err != nil || count < 1 {
			return fmt.Errorf("count must be a positive number, got %q", args[0])
		}
	}
	reset, _ := cmd.Flags().GetBool("reset")
	noBackup, _ := cmd.Flags().GetBool("no-backup")

	store, err := initStorage(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := store.Close(); closeErr != nil {
			slog.Warn("Failed to close database", "error", closeErr)
		}
	}()

	now := time.Now()
	opts := seedOptions{Count: count, Seed: cfg.Seed.Seed, Reset: reset, Now: now}
	if reset && !noBackup && cfg.Database.Path != ":memory:" {
		opts.BackupPath = storage.BackupPath(cfg.Database.Path, now)
	}

	added, err := seedInvoices(ctx, store, opts)
	if err != nil {
		return err
	}

	total, err := store.CountInvoices(ctx)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(
		fmt.Sprintf("Seeded %d invoices (%d in database)", added, total)))
	return nil
}

// seedOptions describes one seed run.
type seedOptions struct {
	Now        time.Time
	BackupPath string
	Seed       uint64
	Count      int
	Reset      bool
}

// seedInvoices stores opts.Count generated invoices and returns how many were
// new. With Reset the existing invoices are removed first, after a backup to
// BackupPath when one is set.
func seedInvoices(ctx context.Context, store service.Storage, opts seedOptions) (int, error) {
	if opts.Reset {
		if opts.BackupPath != "" {
			if err := store.Backup(ctx, opts.BackupPath); err != nil {
				return 0, err
			}
		}
		if err := store.DeleteAllInvoices(ctx); err != nil {
			return 0, err
		}
		slog.Info("Removed existing invoices")
	}

	gen := demo.DefaultOptions(opts.Count)
	gen.Now = opts.Now
	gen.Seed = opts.Seed

	return importInvoices(ctx, store, demo.Generate(gen), defaultImportBatch, nil)
}
