// Package session owns the query state of one interactive invoice browser and
// recomputes the visible page after every command.
package session

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/Veraticus/stellar-invoices/internal/filter"
	"github.com/Veraticus/stellar-invoices/internal/model"
	"github.com/Veraticus/stellar-invoices/internal/preset"
	"github.com/Veraticus/stellar-invoices/internal/query"
)

// ErrUnknownStatusTab is returned when a tab outside All/Paid/Pending/Overdue is selected.
var ErrUnknownStatusTab = errors.New("unknown status tab")

// ErrUnknownSortKey is returned when a column that cannot be sorted is toggled.
var ErrUnknownSortKey = errors.New("unknown sort key")

// Clock returns the current instant.
type Clock func() time.Time

// State is the mutable query state of a session.
type State struct {
	StatusTab   model.StatusTab
	SearchText  string
	SortKey     model.SortKey
	SortOrder   model.SortOrder
	CurrentPage int
}

// Session holds the invoices, the query state, the committed filters and the
// filter builder. Commands mutate state, apply the page reset rule when the
// visible set changed, and recompute the derived view before returning.
// A Session is not safe for concurrent use.
type Session struct {
	clock    Clock
	logger   *slog.Logger
	store    *filter.Store
	builder  *filter.Builder
	invoices []model.Invoice
	filtered []model.Invoice
	page     query.Page
	state    State
}

// Option configures a Session.
type Option func(*Session)

// WithClock sets the clock used to resolve date presets.
func WithClock(clock Clock) Option {
	return func(s *Session) {
		s.clock = clock
	}
}

// WithIDGenerator sets the generator for committed filter ids.
func WithIDGenerator(ids filter.IDGenerator) Option {
	return func(s *Session) {
		s.builder = filter.NewBuilder(ids)
	}
}

// WithLogger sets the logger for state changes.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// New starts a session over invoices with the default state: All tab, no
// search, no sort, page 1 and no filters. The invoices are copied.
func New(invoices []model.Invoice, opts ...Option) *Session {
	s := &Session{
		clock:    time.Now,
		logger:   slog.Default(),
		store:    filter.NewStore(),
		invoices: slices.Clone(invoices),
		state: State{
			StatusTab:   model.TabAll,
			SortKey:     model.SortNone,
			SortOrder:   model.SortAscending,
			CurrentPage: 1,
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.builder == nil {
		s.builder = filter.NewBuilder(filter.UUIDGenerator{})
	}

	s.recompute()
	return s
}

// State returns a copy of the query state.
func (s *Session) State() State {
	return s.state
}

// Builder exposes the pending filter for read access by renderers.
func (s *Session) Builder() *filter.Builder {
	return s.builder
}

// Filters returns the applied filters in insertion order.
func (s *Session) Filters() []model.Filter {
	return s.store.Filters()
}

// Results returns the full filtered and sorted list.
func (s *Session) Results() []model.Invoice {
	return slices.Clone(s.filtered)
}

// Page returns the current page.
func (s *Session) Page() query.Page {
	return s.page
}

// SetStatusTab selects which statuses are visible.
func (s *Session) SetStatusTab(tab model.StatusTab) error {
	if !tab.IsValid() {
		return fmt.Errorf("%w: %q", ErrUnknownStatusTab, tab)
	}
	if tab == s.state.StatusTab {
		return nil
	}
	s.state.StatusTab = tab
	s.resetPage("status tab")
	s.recompute()
	return nil
}

// SetSearchText sets the client search string.
func (s *Session) SetSearchText(text string) {
	if text == s.state.SearchText {
		return
	}
	s.state.SearchText = text
	s.resetPage("search")
	s.recompute()
}

// ToggleSort sorts by key, flipping the direction if key is already active.
// The current page is kept.
func (s *Session) ToggleSort(key model.SortKey) error {
	if !key.IsValid() {
		return fmt.Errorf("%w: %q", ErrUnknownSortKey, key)
	}
	s.state.SortKey, s.state.SortOrder = query.ToggleSort(s.state.SortKey, s.state.SortOrder, key)
	s.recompute()
	return nil
}

// GoToPage moves one page back (delta < 0) or forward (delta > 0). Moves past
// either end are ignored. It reports whether the page changed.
func (s *Session) GoToPage(delta int) bool {
	switch {
	case delta < 0 && s.page.HasPrevious:
		s.state.CurrentPage--
	case delta > 0 && s.page.HasNext:
		s.state.CurrentPage++
	default:
		return false
	}
	s.recompute()
	return true
}

// OpenFilterBuilder starts editing a new filter.
func (s *Session) OpenFilterBuilder() {
	s.builder.Open()
}

// CloseFilterBuilder abandons the pending filter.
func (s *Session) CloseFilterBuilder() {
	s.builder.Close()
}

// SetFilterType picks the pending filter's family.
func (s *Session) SetFilterType(t model.FilterType) { s.builder.SetType(t) }

// ConfirmFilterType accepts the highlighted family and keeps the operator and
// date tab chosen for the previous filter.
func (s *Session) ConfirmFilterType() { s.builder.ConfirmType() }

// SetDateTab switches between preset and custom dates.
func (s *Session) SetDateTab(tab filter.DateTab) { s.builder.SetDateTab(tab) }

// SetDatePreset selects the date preset.
func (s *Session) SetDatePreset(p preset.Preset) { s.builder.SetPreset(p) }

// SetDateOperator selects after or before.
func (s *Session) SetDateOperator(op model.Operator) { s.builder.SetDateOperator(op) }

// SetDateValue stores the custom date.
func (s *Session) SetDateValue(v string) { s.builder.SetDateValue(v) }

// SetAmountOperator selects the amount comparison.
func (s *Session) SetAmountOperator(op model.Operator) { s.builder.SetAmountOperator(op) }

// SetAmountValue stores the amount.
func (s *Session) SetAmountValue(v string) { s.builder.SetAmountValue(v) }

// CommitFilter turns the pending filter into an applied one. While the builder
// guard rejects the input nothing changes and filter.ErrCommitBlocked is returned.
func (s *Session) CommitFilter() (model.Filter, error) {
	f, err := s.builder.Commit(s.clock())
	if err != nil {
		return model.Filter{}, err
	}
	if err := s.store.Add(f); err != nil {
		return model.Filter{}, fmt.Errorf("failed to apply filter: %w", err)
	}

	s.logger.Debug("filter committed", "id", f.ID, "type", f.Type, "operator", f.Operator, "value", f.Value)
	s.resetPage("filter added")
	s.recompute()
	return f, nil
}

// RemoveFilter drops the applied filter with id. Unknown ids are ignored.
func (s *Session) RemoveFilter(id string) bool {
	if !s.store.Remove(id) {
		return false
	}
	s.logger.Debug("filter removed", "id", id)
	s.resetPage("filter removed")
	s.recompute()
	return true
}

// ClearAllFilters drops every applied filter.
func (s *Session) ClearAllFilters() {
	if !s.store.Clear() {
		return
	}
	s.logger.Debug("filters cleared")
	s.resetPage("filters cleared")
	s.recompute()
}

func (s *Session) resetPage(reason string) {
	if s.state.CurrentPage != 1 {
		s.logger.Debug("page reset", "reason", reason, "from", s.state.CurrentPage)
	}
	s.state.CurrentPage = 1
}

// recompute rebuilds the filtered list and the current page from scratch.
func (s *Session) recompute() {
	s.filtered = query.Evaluate(s.invoices, query.Params{
		StatusTab:  s.state.StatusTab,
		SearchText: s.state.SearchText,
		SortKey:    s.state.SortKey,
		SortOrder:  s.state.SortOrder,
		Filters:    s.store.Filters(),
	})
	s.page = query.Paginate(s.filtered, s.state.CurrentPage)
}
