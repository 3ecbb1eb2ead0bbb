package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

var errNoSource = errors.New("invoice source not configured")

// loadInvoices loads the invoice list from the configured source.
func (m Model) loadInvoices() tea.Cmd {
	source := m.config.Source
	timeout := m.config.LoadTimeout
	return func() tea.Msg {
		if source == nil {
			return invoicesLoadedMsg{err: errNoSource}
		}

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		invoices, err := source.ListInvoices(ctx)
		if err != nil {
			return invoicesLoadedMsg{err: fmt.Errorf("failed to load invoices: %w", err)}
		}
		return invoicesLoadedMsg{invoices: invoices}
	}
}
