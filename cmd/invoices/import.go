package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Veraticus/stellar-invoices/internal/cli"
	"github.com/Veraticus/stellar-invoices/internal/common"
	"github.com/Veraticus/stellar-invoices/internal/model"
	"github.com/Veraticus/stellar-invoices/internal/service"
	"github.com/Veraticus/stellar-invoices/internal/storage"
)

const defaultImportBatch = 100

func importCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file.json>",
		Short: "Import invoices from a JSON file",
		Long: `Import invoices from a JSON array of records:

  [{"id": "INV-001", "client": "Acme", "issueDate": "2024-01-05",
    "dueDate": "2024-02-05", "amount": "$120.00 XLM", "status": "Pending"}]

Every record is validated before anything is written. Invoices whose id
already exists are skipped, so an interrupted import can simply be re-run.`,
		Args: cobra.ExactArgs(1),
		RunE: runImport,
	}

	cmd.Flags().Int("batch-size", defaultImportBatch, "Invoices written per transaction")
	cmd.Flags().Bool("no-progress", false, "Hide the progress bar")

	return cmd
}

func runImport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	batchSize, _ := cmd.Flags().GetInt("batch-size")
	noProgress, _ := cmd.Flags().GetBool("no-progress")

	if ext := strings.ToLower(filepath.Ext(args[0])); ext != ".json" {
		return common.NewUserError("Only .json invoice files can be imported",
			fmt.Errorf("%w: %q", common.ErrUnsupportedFmt, ext))
	}

	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", args[0], err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			slog.Warn("Failed to close import file", "error", closeErr)
		}
	}()

	invoices, err := readInvoices(f)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}

	interrupts := cli.NewInterruptHandler(cmd.ErrOrStderr())
	ctx, stop := interrupts.HandleInterrupts(cmd.Context(), true)
	defer stop()

	store, err := initStorage(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := store.Close(); closeErr != nil {
			slog.Warn("Failed to close database", "error", closeErr)
		}
	}()

	var progress io.Writer
	if !noProgress {
		progress = cmd.ErrOrStderr()
	}

	added, err := importInvoices(ctx, store, invoices, batchSize, progress)
	if err != nil {
		if interrupts.WasInterrupted() {
			slog.Info("Import stopped early", "added", added)
			return nil
		}
		common.LogError(err, "Import failed", common.Fields{"file": args[0], "added": added})
		return common.NewUserError(fmt.Sprintf("Import failed after %d new invoices", added),
			fmt.Errorf("%w: %w", common.ErrImportFailed, err))
	}

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(fmt.Sprintf(
		"Imported %d of %d invoices (%d already present)", added, len(invoices), len(invoices)-added)))
	return nil
}

// readInvoices decodes a JSON array of invoices and validates the whole batch.
func readInvoices(r io.Reader) ([]model.Invoice, error) {
	var invoices []model.Invoice
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&invoices); err != nil {
		return nil, fmt.Errorf("invalid invoice JSON: %w", err)
	}
	if err := storage.ValidateInvoices(invoices); err != nil {
		return nil, err
	}
	return invoices, nil
}

// importInvoices writes invoices in batches and returns how many were new.
// A nil progress writer disables the progress bar. Batches written before an
// error or cancellation stay in the database.
func importInvoices(ctx context.Context, store service.Storage, invoices []model.Invoice, batchSize int, progress io.Writer) (int, error) {
	if batchSize <= 0 {
		batchSize = defaultImportBatch
	}

	var report func(int)
	if progress != nil {
		bar := cli.NewProgressBar(progress, len(invoices), "Importing invoices")
		defer func() { _ = bar.Finish() }()
		report = func(n int) { _ = bar.Add(n) }
	}

	added := 0
	for start := 0; start < len(invoices); start += batchSize {
		if err := ctx.Err(); err != nil {
			return added, err
		}

		end := min(start+batchSize, len(invoices))
		n, err := store.SaveInvoices(ctx, invoices[start:end])
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return added, err
			}
			return added, fmt.Errorf("failed to save invoices %d-%d: %w", start+1, end, err)
		}
		added += n

		if report != nil {
			report(end - start)
		}
	}

	common.LogDebug("Import finished", common.Fields{"total": len(invoices), "added": added})
	return added, nil
}
