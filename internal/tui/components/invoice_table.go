package components

import (
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Veraticus/stellar-invoices/internal/query"
	"github.com/Veraticus/stellar-invoices/internal/tui/themes"
	"github.com/Veraticus/stellar-invoices/internal/tui/viewmodel"
)

// Fixed column widths. The client column takes whatever is left.
const (
	idWidth        = 10
	dateWidth      = 12
	amountWidth    = 18
	statusWidth    = 10
	minClientWidth = 12
	cellPadding    = 2
)

// InvoiceTableModel renders one page of invoices.
type InvoiceTableModel struct {
	theme  themes.Theme
	table  table.Model
	width  int
	height int
}

// NewInvoiceTable creates an empty invoice table.
func NewInvoiceTable(theme themes.Theme) InvoiceTableModel {
	t := table.New(
		table.WithFocused(true),
		table.WithHeight(query.PageSize+1),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Border).
		BorderBottom(true).
		Bold(true)
	s.Selected = theme.Selected
	t.SetStyles(s)

	return InvoiceTableModel{
		theme:  theme,
		table:  t,
		width:  80,
		height: query.PageSize + 1,
	}
}

// SetView replaces the columns and rows with the given view.
func (m *InvoiceTableModel) SetView(view viewmodel.InvoiceTableView) {
	widths := m.columnWidths()
	columns := make([]table.Column, 0, len(view.Columns))
	for i, col := range view.Columns {
		w := minClientWidth
		if i < len(widths) {
			w = widths[i]
		}
		columns = append(columns, table.Column{Title: col.Header(), Width: w})
	}

	rows := make([]table.Row, 0, len(view.Rows))
	for _, r := range view.Rows {
		rows = append(rows, table.Row(r.Cells()))
	}

	m.table.SetRows(nil)
	m.table.SetColumns(columns)
	m.table.SetRows(rows)

	if m.table.Cursor() >= len(rows) {
		m.table.SetCursor(max(len(rows)-1, 0))
	}
}

// Resize sets the available width and height.
func (m *InvoiceTableModel) Resize(width, height int) {
	m.width = width
	m.height = max(height, 2)
	m.table.SetWidth(width)
	m.table.SetHeight(m.height)
}

// Update forwards navigation keys to the table.
func (m InvoiceTableModel) Update(msg tea.Msg) (InvoiceTableModel, tea.Cmd) {
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the table.
func (m InvoiceTableModel) View() string {
	return m.table.View()
}

// Cursor returns the highlighted row on the current page.
func (m InvoiceTableModel) Cursor() int {
	return m.table.Cursor()
}

// ResetCursor moves the highlight to the first row.
func (m *InvoiceTableModel) ResetCursor() {
	m.table.SetCursor(0)
}

func (m InvoiceTableModel) columnWidths() []int {
	fixed := idWidth + 2*dateWidth + amountWidth + statusWidth + 6*cellPadding
	client := max(m.width-fixed, minClientWidth)
	return []int{idWidth, client, dateWidth, dateWidth, amountWidth, statusWidth}
}
