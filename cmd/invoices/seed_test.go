package main

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/stellar-invoices/internal/storage"
	"github.com/Veraticus/stellar-invoices/internal/testutil"
)

func TestSeedInvoices(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		existing  int
		reset     bool
		wantAdded int
		wantTotal int
	}{
		{name: "empty database", wantAdded: 12, wantTotal: 12},
		{name: "keeps existing invoices", existing: 3, wantAdded: 12, wantTotal: 15},
		{name: "reset replaces existing invoices", existing: 3, reset: true, wantAdded: 12, wantTotal: 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := testutil.SetupTestDB(t, testutil.Invoices(tt.existing))

			added, err := seedInvoices(ctx, db.Storage, seedOptions{Count: 12, Seed: 42, Reset: tt.reset, Now: now})
			require.NoError(t, err)
			assert.Equal(t, tt.wantAdded, added)

			total, err := db.Storage.CountInvoices(ctx)
			require.NoError(t, err)
			assert.Equal(t, tt.wantTotal, total)
		})
	}
}

func TestSeedInvoicesIsRepeatable(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	db := testutil.SetupTestDB(t, nil)

	_, err := seedInvoices(ctx, db.Storage, seedOptions{Count: 5, Seed: 7, Now: now})
	require.NoError(t, err)
	first := db.MustList()

	added, err := seedInvoices(ctx, db.Storage, seedOptions{Count: 5, Seed: 7, Now: now})
	require.NoError(t, err)
	assert.Equal(t, 0, added, "same ids are skipped")

	added, err = seedInvoices(ctx, db.Storage, seedOptions{Count: 5, Seed: 7, Reset: true, Now: now})
	require.NoError(t, err)
	assert.Equal(t, 5, added)
	assert.Equal(t, first, db.MustList())
}

func TestSeedInvoicesBacksUpBeforeReset(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	db := testutil.SetupTestDB(t, testutil.Invoices(4))

	backup := filepath.Join(t.TempDir(), "invoices.db.bak")
	added, err := seedInvoices(ctx, db.Storage, seedOptions{Count: 2, Seed: 1, Reset: true, Now: now, BackupPath: backup})
	require.NoError(t, err)
	assert.Equal(t, 2, added)

	saved, err := storage.NewSQLiteStorage(backup)
	require.NoError(t, err)
	defer func() { _ = saved.Close() }()

	count, err := saved.CountInvoices(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, count, "backup holds the invoices from before the reset")
}
