// Package tui implements the interactive invoice browser.
package tui

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Veraticus/stellar-invoices/internal/model"
	"github.com/Veraticus/stellar-invoices/internal/session"
	"github.com/Veraticus/stellar-invoices/internal/tui/components"
	"github.com/Veraticus/stellar-invoices/internal/tui/themes"
	"github.com/Veraticus/stellar-invoices/internal/tui/viewmodel"
)

// Mode is what the keyboard currently drives.
type Mode int

const (
	ModeLoading Mode = iota
	ModeBrowse
	ModeSearch
	ModeFilter
	ModeHelp
)

// String returns a string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeLoading:
		return "Loading"
	case ModeBrowse:
		return "Browse"
	case ModeSearch:
		return "Search"
	case ModeFilter:
		return "Filter"
	case ModeHelp:
		return "Help"
	default:
		return fmt.Sprintf("Unknown(%d)", m)
	}
}

// Model holds the main TUI state.
type Model struct {
	theme        themes.Theme
	logger       *slog.Logger
	session      *session.Session
	loadErr      error
	help         help.Model
	status       string
	config       Config
	keymap       KeyMap
	search       textinput.Model
	dialog       components.FilterDialogModel
	table        components.InvoiceTableModel
	selectedPill int
	width        int
	height       int
	mode         Mode
	quitting     bool
}

// newModel creates a new model with the given configuration.
func newModel(cfg Config) Model {
	search := textinput.New()
	search.Placeholder = "Search clients..."
	search.Prompt = ""
	search.CharLimit = 64

	m := Model{
		theme:        cfg.Theme,
		logger:       cfg.Logger,
		config:       cfg,
		keymap:       DefaultKeyMap(),
		help:         help.New(),
		search:       search,
		table:        components.NewInvoiceTable(cfg.Theme),
		selectedPill: -1,
		width:        cfg.Width,
		height:       cfg.Height,
		mode:         ModeLoading,
	}
	m.resize()
	return m
}

// Init starts loading the invoices.
func (m Model) Init() tea.Cmd {
	return m.loadInvoices()
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		m.refresh()
		return m, nil

	case invoicesLoadedMsg:
		return m.handleLoaded(msg), nil

	case components.FilterCommittedMsg:
		m.status = "Added filter: " + msg.Filter.Display
		return m, nil

	case components.FilterCanceledMsg:
		m.status = ""
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keymap.ForceQuit) {
			m.quitting = true
			return m, tea.Quit
		}
		return m.handleKey(msg)
	}

	return m, nil
}

// View renders the UI.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	switch {
	case m.loadErr != nil:
		return m.renderError()
	case m.mode == ModeLoading:
		return m.renderLoading()
	case m.mode == ModeHelp:
		return m.renderHelp()
	default:
		return m.renderBrowser()
	}
}

// Session returns the browsing session, or nil while loading.
func (m Model) Session() *session.Session {
	return m.session
}

// Mode returns what the keyboard currently drives.
func (m Model) Mode() Mode {
	return m.mode
}

func (m Model) handleLoaded(msg invoicesLoadedMsg) Model {
	if msg.err != nil {
		m.loadErr = msg.err
		m.logger.Error("failed to load invoices", "error", msg.err)
		return m
	}

	m.session = session.New(msg.invoices, m.config.sessionOptions()...)
	m.dialog = components.NewFilterDialog(m.session, m.theme)
	m.mode = ModeBrowse
	m.resize()
	m.refresh()
	m.logger.Debug("invoices loaded", "count", len(msg.invoices))
	return m
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.loadErr != nil || m.mode == ModeLoading {
		if key.Matches(msg, m.keymap.Quit) || msg.String() == "esc" {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	switch m.mode {
	case ModeSearch:
		return m.handleSearchKey(msg)
	case ModeFilter:
		return m.handleFilterKey(msg)
	case ModeHelp:
		if key.Matches(msg, m.keymap.Help) || msg.String() == "esc" {
			m.mode = ModeBrowse
		}
		return m, nil
	default:
		return m.handleBrowseKey(msg)
	}
}

func (m Model) handleBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	before := m.session.State().CurrentPage
	m.status = ""

	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Help):
		m.mode = ModeHelp
		return m, nil

	case key.Matches(msg, m.keymap.NextTab), key.Matches(msg, m.keymap.PrevTab):
		delta := 1
		if key.Matches(msg, m.keymap.PrevTab) {
			delta = -1
		}
		current := slices.Index(model.StatusTabs, m.session.State().StatusTab)
		next := model.StatusTabs[viewmodel.Cycle(current, delta, len(model.StatusTabs))]
		if err := m.session.SetStatusTab(next); err != nil {
			m.status = err.Error()
		}

	case key.Matches(msg, m.keymap.Search):
		m.mode = ModeSearch
		m.search.SetValue(m.session.State().SearchText)
		m.search.CursorEnd()
		cmd := m.search.Focus()
		return m, cmd

	case key.Matches(msg, m.keymap.Sort):
		sortKey := model.SortKeys[int(msg.String()[0]-'1')]
		if err := m.session.ToggleSort(sortKey); err != nil {
			m.status = err.Error()
			break
		}
		state := m.session.State()
		m.status = fmt.Sprintf("Sorted by %s (%s)", state.SortKey.Title(), state.SortOrder)

	case key.Matches(msg, m.keymap.AddFilter):
		m.session.OpenFilterBuilder()
		m.dialog.Reset()
		m.mode = ModeFilter
		return m, nil

	case key.Matches(msg, m.keymap.NextPill), key.Matches(msg, m.keymap.PrevPill):
		n := len(m.session.Filters())
		if n == 0 {
			return m, nil
		}
		if m.selectedPill < 0 {
			m.selectedPill = 0
		} else if key.Matches(msg, m.keymap.NextPill) {
			m.selectedPill = viewmodel.Cycle(m.selectedPill, 1, n)
		} else {
			m.selectedPill = viewmodel.Cycle(m.selectedPill, -1, n)
		}

	case key.Matches(msg, m.keymap.RemovePill):
		filters := m.session.Filters()
		if m.selectedPill < 0 || m.selectedPill >= len(filters) {
			m.status = "Select a filter with [ or ] first"
			return m, nil
		}
		removed := filters[m.selectedPill]
		if m.session.RemoveFilter(removed.ID) {
			m.status = "Removed filter: " + removed.Display
		}

	case key.Matches(msg, m.keymap.ClearFilters):
		if len(m.session.Filters()) == 0 {
			return m, nil
		}
		m.session.ClearAllFilters()
		m.status = "Cleared all filters"

	case key.Matches(msg, m.keymap.PrevPage):
		m.session.GoToPage(-1)

	case key.Matches(msg, m.keymap.NextPage):
		m.session.GoToPage(1)

	default:
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}

	m.refresh()
	if m.session.State().CurrentPage != before {
		m.table.ResetCursor()
	}
	return m, nil
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.search.Blur()
		m.mode = ModeBrowse
		return m, nil
	case "esc":
		m.search.Blur()
		m.search.SetValue("")
		m.session.SetSearchText("")
		m.mode = ModeBrowse
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.session.SetSearchText(m.search.Value())
	m.refresh()
	return m, cmd
}

func (m Model) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.dialog, cmd = m.dialog.Update(msg)
	if !m.session.Builder().IsOpen() {
		m.mode = ModeBrowse
	}
	m.refresh()
	return m, cmd
}

// refresh pushes the current snapshot into the table.
func (m *Model) refresh() {
	if m.session == nil {
		return
	}
	n := len(m.session.Filters())
	if m.selectedPill >= n {
		m.selectedPill = n - 1
	}
	m.table.SetView(viewmodel.NewInvoiceTableView(m.session.Snapshot(), m.selectedPill))
}

// resize adjusts component sizes to the terminal.
func (m *Model) resize() {
	// header, tabs, search, pills, footer, status and help lines plus borders
	const chrome = 12
	m.table.Resize(max(m.width-4, 40), max(m.height-chrome, 4))
	m.dialog.Resize(min(max(m.width-8, 30), 64))
	m.help.Width = m.width
}
