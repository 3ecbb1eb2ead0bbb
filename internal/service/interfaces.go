// Package service defines the interfaces shared by the commands and the TUI.
package service

import (
	"context"

	"github.com/Veraticus/stellar-invoices/internal/model"
)

// InvoiceSource supplies the read-only invoice list a session browses.
type InvoiceSource interface {
	ListInvoices(ctx context.Context) ([]model.Invoice, error)
}

// Storage defines the contract for our persistence layer.
type Storage interface {
	InvoiceSource
	SaveInvoices(ctx context.Context, invoices []model.Invoice) (int, error)
	CountInvoices(ctx context.Context) (int, error)
	DeleteAllInvoices(ctx context.Context) error
	Migrate(ctx context.Context) error
	Backup(ctx context.Context, destPath string) error
	Close() error
}

// StaticSource serves an in-memory list.
type StaticSource []model.Invoice

// ListInvoices returns a copy of the list.
func (s StaticSource) ListInvoices(_ context.Context) ([]model.Invoice, error) {
	out := make([]model.Invoice, len(s))
	copy(out, s)
	return out, nil
}
