// Package testutil provides test helpers shared by the command and storage tests.
package testutil

import (
	"context"
	"fmt"
	"testing"

	"github.com/Veraticus/stellar-invoices/internal/model"
	"github.com/Veraticus/stellar-invoices/internal/service"
	"github.com/Veraticus/stellar-invoices/internal/storage"
)

// TestDB represents a test database with associated test utilities.
type TestDB struct {
	Storage  service.Storage
	t        *testing.T
	Invoices []model.Invoice
}

// SetupTestDB creates a migrated in-memory database holding invoices.
// The database is closed when the test finishes.
//
// Example:
//
//	db := testutil.SetupTestDB(t, testutil.Invoices(10))
func SetupTestDB(t *testing.T, invoices []model.Invoice) *TestDB {
	t.Helper()
	return SetupTestDBWithOptions(t, TestDBOptions{Invoices: invoices})
}

// TestDBOptions provides configuration options for test database setup.
type TestDBOptions struct {
	CustomSetup    func(context.Context, service.Storage) error
	Invoices       []model.Invoice
	SkipMigrations bool
}

// SetupTestDBWithOptions creates a test database with custom options.
func SetupTestDBWithOptions(t *testing.T, opts TestDBOptions) *TestDB {
	t.Helper()

	store, err := storage.NewSQLiteStorage(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	ctx := context.Background()

	t.Cleanup(func() {
		if closeErr := store.Close(); closeErr != nil {
			t.Logf("failed to close test database: %v", closeErr)
		}
	})

	if !opts.SkipMigrations {
		if err := store.Migrate(ctx); err != nil {
			t.Fatalf("failed to run migrations: %v", err)
		}
	}

	if len(opts.Invoices) > 0 {
		if _, err := store.SaveInvoices(ctx, opts.Invoices); err != nil {
			t.Fatalf("failed to seed invoices: %v", err)
		}
	}

	if opts.CustomSetup != nil {
		if err := opts.CustomSetup(ctx, store); err != nil {
			t.Fatalf("custom setup failed: %v", err)
		}
	}

	return &TestDB{
		Storage:  store,
		Invoices: opts.Invoices,
		t:        t,
	}
}

// MustList returns every stored invoice or fails the test.
func (db *TestDB) MustList() []model.Invoice {
	db.t.Helper()
	invoices, err := db.Storage.ListInvoices(context.Background())
	if err != nil {
		db.t.Fatalf("failed to list invoices: %v", err)
	}
	return invoices
}

// Invoices returns n valid invoices with ids INV-001 onwards. Statuses cycle
// through Paid, Pending and Overdue and amounts grow by 10 XLM per invoice.
func Invoices(n int) []model.Invoice {
	out := make([]model.Invoice, n)
	for i := range out {
		out[i] = model.Invoice{
			ID:        fmt.Sprintf("INV-%03d", i+1),
			Client:    fmt.Sprintf("Client %c", 'A'+i%26),
			IssueDate: fmt.Sprintf("2024-01-%02d", i%28+1),
			DueDate:   fmt.Sprintf("2024-02-%02d", i%28+1),
			Amount:    fmt.Sprintf("$%d.00 XLM", (i+1)*10),
			Status:    model.Statuses[i%len(model.Statuses)],
		}
	}
	return out
}
