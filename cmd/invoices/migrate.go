package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/Veraticus/stellar-invoices/internal/cli"
	"github.com/Veraticus/stellar-invoices/internal/storage"
)

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Bring the database schema up to date",
		RunE:  runMigrate,
	}

	cmd.Flags().Bool("status", false, "Only show the schema version")

	return cmd
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	statusOnly, _ := cmd.Flags().GetBool("status")

	store, err := storage.NewSQLiteStorage(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if closeErr := store.Close(); closeErr != nil {
			slog.Warn("Failed to close database", "error", closeErr)
		}
	}()

	before, err := store.SchemaVersion(ctx)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if statusOnly {
		_, _ = fmt.Fprintf(out, "Database: %s\nSchema version: %d (latest %d)\n",
			store.Path(), before, storage.ExpectedSchemaVersion)
		return nil
	}

	if err := store.Migrate(ctx); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	after, err := store.SchemaVersion(ctx)
	if err != nil {
		return err
	}

	if after == before {
		_, _ = fmt.Fprintln(out, cli.FormatInfo(fmt.Sprintf("Schema already at version %d", after)))
		return nil
	}
	_, _ = fmt.Fprintln(out, cli.FormatSuccess(fmt.Sprintf("Migrated schema from version %d to %d", before, after)))
	return nil
}
