package session

import (
	"time"

	"github.com/Veraticus/stellar-invoices/internal/filter"
	"github.com/Veraticus/stellar-invoices/internal/model"
	"github.com/Veraticus/stellar-invoices/internal/preset"
)

// ColumnSort is the sort indicator of one column.
type ColumnSort struct {
	Key    model.SortKey
	Order  model.SortOrder
	Active bool
}

// BuilderSnapshot describes the pending filter for the filter dialog.
type BuilderSnapshot struct {
	Type           model.FilterType
	DateTab        filter.DateTab
	Preset         preset.Preset
	DateOperator   model.Operator
	DateValue      string
	AmountOperator model.Operator
	AmountValue    string
	PreviewLabel   string
	Step           filter.Step
	Open           bool
	CanCommit      bool
}

// Snapshot is everything a renderer needs for one frame.
type Snapshot struct {
	StatusTab       model.StatusTab
	SearchText      string
	Items           []model.Invoice
	Filters         []model.Filter
	Columns         []ColumnSort
	Builder         BuilderSnapshot
	CurrentPage     int
	StartEntry      int
	EndEntry        int
	TotalInvoices   int
	TotalPages      int
	HasPrevious     bool
	HasNext         bool
	CanClearFilters bool
}

// Snapshot returns the derived view for the current state.
func (s *Session) Snapshot() Snapshot {
	columns := make([]ColumnSort, 0, len(model.SortKeys))
	for _, key := range model.SortKeys {
		col := ColumnSort{Key: key}
		if key == s.state.SortKey {
			col.Active = true
			col.Order = s.state.SortOrder
		}
		columns = append(columns, col)
	}

	filters := s.store.Filters()
	items := make([]model.Invoice, len(s.page.Items))
	copy(items, s.page.Items)

	return Snapshot{
		StatusTab:       s.state.StatusTab,
		SearchText:      s.state.SearchText,
		Items:           items,
		Filters:         filters,
		Columns:         columns,
		Builder:         s.builderSnapshot(s.clock()),
		CurrentPage:     s.state.CurrentPage,
		StartEntry:      s.page.StartEntry,
		EndEntry:        s.page.EndEntry,
		TotalInvoices:   s.page.TotalItems,
		TotalPages:      s.page.TotalPages,
		HasPrevious:     s.page.HasPrevious,
		HasNext:         s.page.HasNext,
		CanClearFilters: len(filters) > 0,
	}
}

func (s *Session) builderSnapshot(now time.Time) BuilderSnapshot {
	b := s.builder
	return BuilderSnapshot{
		Type:           b.Type(),
		DateTab:        b.DateTab(),
		Preset:         b.Preset(),
		DateOperator:   b.DateOperator(),
		DateValue:      b.DateValue(),
		AmountOperator: b.AmountOperator(),
		AmountValue:    b.AmountValue(),
		PreviewLabel:   b.PreviewLabel(now),
		Step:           b.Step(),
		Open:           b.IsOpen(),
		CanCommit:      b.CanCommit(),
	}
}
