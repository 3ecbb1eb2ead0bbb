package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Veraticus/stellar-invoices/internal/common"
	"github.com/Veraticus/stellar-invoices/internal/tui"
	"github.com/Veraticus/stellar-invoices/internal/tui/themes"
)

func browseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse invoices interactively",
		Long: `Open the interactive invoice browser.

Use Tab to switch status, / to search clients, 1-6 to sort columns,
f to add a date or amount filter and ←/→ to change page.`,
		RunE: runBrowse,
	}

	cmd.Flags().Bool("demo", false, "Browse generated invoices instead of the database")
	cmd.Flags().Int("demo-count", 0, "Number of generated invoices (default: seed.count)")
	cmd.Flags().String("theme", "", "Color theme (default, light)")
	cmd.Flags().String("debug-log", "", "Write debug logs to this file while the browser runs")

	_ = viper.BindPFlag("tui.theme", cmd.Flags().Lookup("theme"))

	return cmd
}

func runBrowse(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	useDemo, _ := cmd.Flags().GetBool("demo")
	demoCount, _ := cmd.Flags().GetInt("demo-count")
	if demoCount <= 0 {
		demoCount = cfg.Seed.Count
	}

	logger, closeLog, err := browserLogger(cmd)
	if err != nil {
		return err
	}
	defer closeLog()

	source, closeSource, err := openSource(ctx, cfg, useDemo, demoCount)
	if err != nil {
		return err
	}
	defer closeSource()

	return tui.Run(ctx,
		tui.WithSource(source),
		tui.WithTheme(themes.GetTheme(cfg.TUI.Theme)),
		tui.WithSize(cfg.TUI.Width, cfg.TUI.Height),
		tui.WithLogger(logger),
	)
}

// browserLogger keeps log output off the terminal the browser draws on.
func browserLogger(cmd *cobra.Command) (*slog.Logger, func(), error) {
	path, _ := cmd.Flags().GetString("debug-log")
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}

	f, err := os.OpenFile(filepath.Clean(path), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open debug log: %w", err)
	}

	logger, err := common.NewLogger(f, slog.LevelDebug, "json")
	if err != nil {
		_ = f.Close()
		return nil, nil, err
	}
	return logger, func() { _ = f.Close() }, nil
}
