package viewmodel

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/stellar-invoices/internal/filter"
	"github.com/Veraticus/stellar-invoices/internal/model"
	"github.com/Veraticus/stellar-invoices/internal/session"
)

func testInvoices(n int) []model.Invoice {
	out := make([]model.Invoice, n)
	for i := range out {
		out[i] = model.Invoice{
			ID:        fmt.Sprintf("INV-%03d", i+1),
			Client:    "Acme",
			IssueDate: "2024-01-01",
			DueDate:   "2024-01-31",
			Amount:    fmt.Sprintf("$%d.00 XLM", (i+1)*10),
			Status:    model.StatusPaid,
		}
	}
	return out
}

func TestNewInvoiceTableView(t *testing.T) {
	s := session.New(testInvoices(10), session.WithIDGenerator(filter.NewSequenceGenerator("f")))
	require.NoError(t, s.ToggleSort(model.SortByClient))
	require.NoError(t, s.ToggleSort(model.SortByClient))

	s.OpenFilterBuilder()
	s.SetFilterType(model.FilterAmount)
	s.SetAmountValue("5")
	_, err := s.CommitFilter()
	require.NoError(t, err)

	view := NewInvoiceTableView(s.Snapshot(), 0)

	require.Len(t, view.Tabs, 4)
	assert.True(t, view.Tabs[0].Active)
	assert.Equal(t, "All", view.Tabs[0].Label)

	require.Len(t, view.Columns, 6)
	assert.Equal(t, "Client ↓", view.Columns[1].Header())
	assert.Equal(t, "2", view.Columns[1].Shortcut)
	assert.Equal(t, "Invoice ↕", view.Columns[0].Header())

	assert.Len(t, view.Rows, 7)
	assert.Equal(t, "Showing 1 to 7 of 10 invoices", view.Pagination.Summary)
	assert.True(t, view.Pagination.HasNext)
	assert.False(t, view.Pagination.HasPrevious)

	require.Len(t, view.Pills, 1)
	assert.Equal(t, "Amount > 5 XLM", view.Pills[0].Label)
	pill, ok := view.SelectedPill()
	assert.True(t, ok)
	assert.Equal(t, "f-1", pill.ID)
	assert.True(t, view.CanClearFilters)
}

func TestNewInvoiceTableView_Empty(t *testing.T) {
	view := NewInvoiceTableView(session.New(nil).Snapshot(), -1)

	assert.True(t, view.IsEmpty())
	assert.Empty(t, view.Pills)
	assert.False(t, view.CanClearFilters)
	assert.Equal(t, "No invoices found", view.Pagination.Summary)
	_, ok := view.SelectedPill()
	assert.False(t, ok)
}

func TestSortIndicator(t *testing.T) {
	tests := []struct {
		name     string
		col      session.ColumnSort
		expected string
	}{
		{name: "unsorted", col: session.ColumnSort{}, expected: IndicatorUnsorted},
		{name: "ascending", col: session.ColumnSort{Active: true, Order: model.SortAscending}, expected: IndicatorAscending},
		{name: "descending", col: session.ColumnSort{Active: true, Order: model.SortDescending}, expected: IndicatorDescending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SortIndicator(tt.col))
		})
	}
}

func TestRowView_Cells(t *testing.T) {
	row := RowView{ID: "INV-1", Client: "Acme", IssueDate: "a", DueDate: "b", Amount: "$1.00 XLM", Status: model.StatusOverdue}
	assert.Equal(t, []string{"INV-1", "Acme", "a", "b", "$1.00 XLM", "Overdue"}, row.Cells())
}
