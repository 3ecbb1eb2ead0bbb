package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Veraticus/stellar-invoices/internal/tui/viewmodel"
)

// renderLoading renders the loading screen.
func (m Model) renderLoading() string {
	content := lipgloss.JoinVertical(
		lipgloss.Center,
		m.theme.Title.Render("Stellar Invoices"),
		"",
		lipgloss.NewStyle().Foreground(m.theme.Muted).Render("Loading invoices..."),
	)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// renderError renders a load failure.
func (m Model) renderError() string {
	content := lipgloss.JoinVertical(
		lipgloss.Left,
		m.theme.StatusError.Render("Could not load invoices"),
		"",
		m.theme.Normal.Render(m.loadErr.Error()),
		"",
		lipgloss.NewStyle().Foreground(m.theme.Muted).Render("Press q to quit"),
	)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
		m.theme.BorderedBox.Render(content))
}

// renderBrowser renders tabs, search, filters, the table and the footer.
func (m Model) renderBrowser() string {
	view := viewmodel.NewInvoiceTableView(m.session.Snapshot(), m.selectedPill)

	sections := []string{
		m.renderHeader(),
		m.renderTabs(view),
		m.renderSearch(view),
		m.renderPills(view),
		"",
	}

	switch {
	case m.mode == ModeFilter:
		sections = append(sections, m.dialog.View())
	case view.IsEmpty():
		sections = append(sections, lipgloss.NewStyle().
			Foreground(m.theme.Muted).
			Padding(1, 2).
			Render("No invoices match the current filters."))
	default:
		sections = append(sections, m.table.View())
	}

	sections = append(sections,
		"",
		m.renderPagination(view.Pagination),
		m.renderStatus(),
		m.help.View(m.keymap),
	)

	return lipgloss.NewStyle().Padding(0, 1).Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m Model) renderHeader() string {
	title := m.theme.Title.Render("Invoices")
	mode := m.theme.Subtitle.Render(" · " + m.mode.String())
	return title + mode
}

func (m Model) renderTabs(view viewmodel.InvoiceTableView) string {
	tabs := make([]string, 0, len(view.Tabs))
	for _, tab := range view.Tabs {
		if tab.Active {
			tabs = append(tabs, m.theme.TabActive.Render(tab.Label))
		} else {
			tabs = append(tabs, m.theme.TabInactive.Render(tab.Label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) renderSearch(view viewmodel.InvoiceTableView) string {
	label := m.theme.Subtitle.Render("Search: ")
	switch {
	case m.mode == ModeSearch:
		return label + m.search.View()
	case view.SearchText != "":
		return label + m.theme.Normal.Render(view.SearchText)
	default:
		return lipgloss.NewStyle().Foreground(m.theme.Muted).Render("Press / to search by client")
	}
}

func (m Model) renderPills(view viewmodel.InvoiceTableView) string {
	muted := lipgloss.NewStyle().Foreground(m.theme.Muted)
	if len(view.Pills) == 0 {
		return muted.Render("No filters · press f to add one")
	}

	pills := make([]string, 0, len(view.Pills))
	for _, p := range view.Pills {
		if p.Selected {
			pills = append(pills, m.theme.PillSelected.Render(p.Label+" ×"))
		} else {
			pills = append(pills, m.theme.Pill.Render(p.Label))
		}
	}

	line := m.theme.Subtitle.Render("Filters: ") + strings.Join(pills, " ")
	if view.CanClearFilters {
		line += muted.Render("  C clear all")
	}
	return line
}

func (m Model) renderPagination(p viewmodel.PaginationView) string {
	muted := lipgloss.NewStyle().Foreground(m.theme.Muted)
	active := lipgloss.NewStyle().Foreground(m.theme.Primary)

	prev := muted.Render("‹ Prev")
	if p.HasPrevious {
		prev = active.Render("‹ Prev")
	}
	next := muted.Render("Next ›")
	if p.HasNext {
		next = active.Render("Next ›")
	}

	pages := ""
	if p.TotalPages > 0 {
		pages = fmt.Sprintf("Page %d of %d", p.CurrentPage, p.TotalPages)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		m.theme.Normal.Render(p.Summary),
		"   ",
		prev,
		"  ",
		m.theme.Subtitle.Render(pages),
		"  ",
		next,
	)
}

func (m Model) renderStatus() string {
	if m.status == "" {
		return ""
	}
	return m.theme.Subtitle.Render(m.status)
}

// renderHelp renders the help screen.
func (m Model) renderHelp() string {
	h := m.help
	h.ShowAll = true

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		m.theme.Title.Render("Stellar Invoices - Help"),
		"",
		h.View(m.keymap),
		"",
		lipgloss.NewStyle().Foreground(m.theme.Muted).Render("Press ? or Esc to close help"),
	)

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
		m.theme.BorderedBox.Render(content))
}
