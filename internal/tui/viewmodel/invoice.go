package viewmodel

import (
	"fmt"

	"github.com/Veraticus/stellar-invoices/internal/model"
	"github.com/Veraticus/stellar-invoices/internal/session"
)

// Sort indicators.
const (
	IndicatorAscending  = "↑"
	IndicatorDescending = "↓"
	IndicatorUnsorted   = "↕"
)

// InvoiceTableView is the display data for the invoice browser.
type InvoiceTableView struct {
	SearchText      string
	Tabs            []TabView
	Columns         []ColumnView
	Rows            []RowView
	Pills           []PillView
	Pagination      PaginationView
	CanClearFilters bool
}

// TabView is one status tab.
type TabView struct {
	Label  string
	Tab    model.StatusTab
	Active bool
}

// ColumnView is one sortable column header.
type ColumnView struct {
	Key       model.SortKey
	Title     string
	Indicator string
	Shortcut  string
	Active    bool
}

// Header returns the header text including the sort indicator.
func (c ColumnView) Header() string {
	return c.Title + " " + c.Indicator
}

// RowView is one invoice row.
type RowView struct {
	ID        string
	Client    string
	IssueDate string
	DueDate   string
	Amount    string
	Status    model.Status
}

// Cells returns the row values in column order.
func (r RowView) Cells() []string {
	return []string{r.ID, r.Client, r.IssueDate, r.DueDate, r.Amount, string(r.Status)}
}

// PillView is one applied filter.
type PillView struct {
	ID       string
	Label    string
	Selected bool
}

// PaginationView describes the footer.
type PaginationView struct {
	Summary     string
	CurrentPage int
	TotalPages  int
	HasPrevious bool
	HasNext     bool
}

// NewInvoiceTableView builds the view from a snapshot. selectedPill is the
// index of the highlighted filter pill, or -1 for none.
func NewInvoiceTableView(snap session.Snapshot, selectedPill int) InvoiceTableView {
	view := InvoiceTableView{
		SearchText:      snap.SearchText,
		CanClearFilters: snap.CanClearFilters,
		Pagination: PaginationView{
			Summary:     PaginationSummary(snap.StartEntry, snap.EndEntry, snap.TotalInvoices),
			CurrentPage: snap.CurrentPage,
			TotalPages:  snap.TotalPages,
			HasPrevious: snap.HasPrevious,
			HasNext:     snap.HasNext,
		},
	}

	for _, tab := range model.StatusTabs {
		view.Tabs = append(view.Tabs, TabView{
			Label:  string(tab),
			Tab:    tab,
			Active: tab == snap.StatusTab,
		})
	}

	for i, col := range snap.Columns {
		view.Columns = append(view.Columns, ColumnView{
			Key:       col.Key,
			Title:     col.Key.Title(),
			Indicator: SortIndicator(col),
			Shortcut:  fmt.Sprintf("%d", i+1),
			Active:    col.Active,
		})
	}

	for _, inv := range snap.Items {
		view.Rows = append(view.Rows, RowView{
			ID:        inv.ID,
			Client:    inv.Client,
			IssueDate: inv.IssueDate,
			DueDate:   inv.DueDate,
			Amount:    inv.Amount,
			Status:    inv.Status,
		})
	}

	for i, f := range snap.Filters {
		view.Pills = append(view.Pills, PillView{
			ID:       f.ID,
			Label:    f.Display,
			Selected: i == selectedPill,
		})
	}

	return view
}

// SortIndicator returns the arrow for a column header.
func SortIndicator(col session.ColumnSort) string {
	switch {
	case !col.Active:
		return IndicatorUnsorted
	case col.Order == model.SortDescending:
		return IndicatorDescending
	default:
		return IndicatorAscending
	}
}

// PaginationSummary returns the "Showing x to y of z" footer text.
func PaginationSummary(start, end, total int) string {
	if total == 0 {
		return "No invoices found"
	}
	return fmt.Sprintf("Showing %d to %d of %d invoices", start, end, total)
}

// IsEmpty returns true if the current page has no rows.
func (v InvoiceTableView) IsEmpty() bool {
	return len(v.Rows) == 0
}

// SelectedPill returns the highlighted pill, if any.
func (v InvoiceTableView) SelectedPill() (PillView, bool) {
	for _, p := range v.Pills {
		if p.Selected {
			return p, true
		}
	}
	return PillView{}, false
}
