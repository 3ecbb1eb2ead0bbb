package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/Veraticus/stellar-invoices/internal/cli"
	"github.com/Veraticus/stellar-invoices/internal/common"
	"github.com/Veraticus/stellar-invoices/internal/model"
	"github.com/Veraticus/stellar-invoices/internal/session"
)

// listOptions are the query flags of the list command.
type listOptions struct {
	Now     time.Time
	Status  string
	Search  string
	Output  string
	Filters []string
	Sorts   []string
	Page    int
}

func listCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print one page of invoices",
		Long: `Print one page of invoices after applying the given query.

Filters may be repeated and are combined with AND:
  --filter amount>=75       amount comparisons: > >= = <= <
  --filter after:2024-01-01 issued on or after a date
  --filter before:2024-02-01
  --filter preset:last7days today, yesterday, last7days, last30days, thisMonth, lastMonth

Each --sort toggles the column like a header click, so
"--sort amount --sort amount" sorts by amount descending.`,
		Example: `  invoices list --status Pending --filter amount>100
  invoices list --search acme --sort dueDate --page 2`,
		RunE: runList,
	}

	cmd.Flags().String("status", string(model.TabAll), "Status tab (All, Paid, Pending, Overdue)")
	cmd.Flags().String("search", "", "Case-insensitive client search")
	cmd.Flags().StringArray("filter", nil, "Filter expression (repeatable)")
	cmd.Flags().StringArray("sort", nil, "Sort column: id, client, issueDate, dueDate, amount, status (repeatable)")
	cmd.Flags().Int("page", 1, "Page to print")
	cmd.Flags().StringP("output", "o", "table", "Output format (table, json)")
	cmd.Flags().Bool("demo", false, "List generated invoices instead of the database")
	cmd.Flags().Int("demo-count", 0, "Number of generated invoices (default: seed.count)")

	return cmd
}

func runList(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	opts := listOptions{Now: time.Now()}
	opts.Status, _ = cmd.Flags().GetString("status")
	opts.Search, _ = cmd.Flags().GetString("search")
	opts.Filters, _ = cmd.Flags().GetStringArray("filter")
	opts.Sorts, _ = cmd.Flags().GetStringArray("sort")
	opts.Page, _ = cmd.Flags().GetInt("page")
	opts.Output, _ = cmd.Flags().GetString("output")

	useDemo, _ := cmd.Flags().GetBool("demo")
	demoCount, _ := cmd.Flags().GetInt("demo-count")
	if demoCount <= 0 {
		demoCount = cfg.Seed.Count
	}

	source, closeSource, err := openSource(ctx, cfg, useDemo, demoCount)
	if err != nil {
		return err
	}
	defer closeSource()

	invoices, err := source.ListInvoices(ctx)
	if err != nil {
		return fmt.Errorf("failed to load invoices: %w", err)
	}
	if len(invoices) == 0 {
		return common.NewUserError("No invoices yet. Run `invoices seed` or `invoices import <file.json>` first.", common.ErrNoInvoices)
	}

	return listInvoices(cmd.OutOrStdout(), invoices, opts)
}

// listInvoices runs the query described by opts over invoices and writes the
// requested page to w.
func listInvoices(w io.Writer, invoices []model.Invoice, opts listOptions) error {
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}
	s := session.New(invoices,
		session.WithClock(func() time.Time { return now }),
		session.WithLogger(slog.Default()),
	)

	if opts.Status != "" {
		tab, err := model.ParseStatusTab(opts.Status)
		if err != nil {
			return err
		}
		if err := s.SetStatusTab(tab); err != nil {
			return err
		}
	}

	s.SetSearchText(opts.Search)

	for _, expr := range opts.Filters {
		parsed, err := cli.ParseFilterExpr(expr)
		if err != nil {
			return err
		}
		if _, err := parsed.Apply(s); err != nil {
			return fmt.Errorf("failed to apply filter %q: %w", expr, err)
		}
	}

	for _, name := range opts.Sorts {
		key, err := model.ParseSortKey(name)
		if err != nil {
			return err
		}
		if err := s.ToggleSort(key); err != nil {
			return err
		}
	}

	for page := 1; page < opts.Page; page++ {
		if !s.GoToPage(1) {
			return fmt.Errorf("page %d out of range (1-%d)", opts.Page, max(s.Page().TotalPages, 1))
		}
	}

	snap := s.Snapshot()
	switch opts.Output {
	case "json":
		return writeJSONPage(w, snap)
	case "table", "":
		return cli.RenderPage(w, snap)
	default:
		return fmt.Errorf("unknown output format %q", opts.Output)
	}
}

type jsonPage struct {
	Filters    []model.Filter  `json:"filters"`
	Items      []model.Invoice `json:"items"`
	Page       int             `json:"page"`
	TotalPages int             `json:"totalPages"`
	Total      int             `json:"total"`
	StartEntry int             `json:"startEntry"`
	EndEntry   int             `json:"endEntry"`
}

func writeJSONPage(w io.Writer, snap session.Snapshot) error {
	page := jsonPage{
		Filters:    snap.Filters,
		Items:      snap.Items,
		Page:       snap.CurrentPage,
		TotalPages: snap.TotalPages,
		Total:      snap.TotalInvoices,
		StartEntry: snap.StartEntry,
		EndEntry:   snap.EndEntry,
	}
	if page.Filters == nil {
		page.Filters = []model.Filter{}
	}
	if page.Items == nil {
		page.Items = []model.Invoice{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(page)
}
