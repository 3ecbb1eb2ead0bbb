package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/Veraticus/stellar-invoices/internal/model"
	"github.com/Veraticus/stellar-invoices/internal/session"
)

// SortArrow returns the indicator shown next to a column header.
func SortArrow(col session.ColumnSort) string {
	if !col.Active {
		return ""
	}
	if col.Order == model.SortDescending {
		return " ↓"
	}
	return " ↑"
}

// PaginationSummary returns the "Showing x to y of z" line.
func PaginationSummary(snap session.Snapshot) string {
	if snap.TotalInvoices == 0 {
		return "No invoices match"
	}
	return fmt.Sprintf("Showing %d to %d of %d invoices · page %d of %d",
		snap.StartEntry, snap.EndEntry, snap.TotalInvoices, snap.CurrentPage, snap.TotalPages)
}

// RenderPage writes the current page, the applied filters and the pagination
// footer of snap to w.
func RenderPage(w io.Writer, snap session.Snapshot) error {
	headers := make([]string, 0, len(snap.Columns))
	for _, col := range snap.Columns {
		headers = append(headers, col.Key.Title()+SortArrow(col))
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(SubtleStyle).
		Headers(headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return TableHeaderStyle
			}
			return TableCellStyle
		})

	for _, inv := range snap.Items {
		row := make([]string, 0, len(model.SortKeys))
		for _, key := range model.SortKeys {
			row = append(row, inv.Field(key))
		}
		t.Row(row...)
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Status: %s", snap.StatusTab))
	if snap.SearchText != "" {
		b.WriteString(fmt.Sprintf(" · Search: %q", snap.SearchText))
	}
	b.WriteString("\n")

	if len(snap.Filters) > 0 {
		pills := make([]string, 0, len(snap.Filters))
		for _, f := range snap.Filters {
			pills = append(pills, PillStyle.Render(f.Display))
		}
		b.WriteString("Filters: " + strings.Join(pills, " ") + "\n")
	}

	b.WriteString(t.Render())
	b.WriteString("\n")
	b.WriteString(SubtleStyle.Render(PaginationSummary(snap)))
	b.WriteString("\n")

	_, err := io.WriteString(w, b.String())
	return err
}
