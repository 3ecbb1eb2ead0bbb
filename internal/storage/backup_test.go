package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBackupPath(t *testing.T) {
	now := time.Date(2024, 3, 15, 10, 4, 5, 0, time.UTC)
	assert.Equal(t, "/data/invoices.db.2024-03-15-100405.bak", BackupPath("/data/invoices.db", now))
}

func TestBackup(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	_, err := store.SaveInvoices(ctx, createTestInvoices("INV", 3))
	require.NoError(t, err)

	dest := filepath.Join(t.TempDir(), "backups", "invoices.bak")
	require.NoError(t, store.Backup(ctx, dest))

	info, err := os.Stat(dest)
	require.NoError(t, err)
	assert.Positive(t, info.Size())

	restored, err := NewSQLiteStorage(dest)
	require.NoError(t, err)
	defer func() { _ = restored.Close() }()

	invoices, err := restored.ListInvoices(ctx)
	require.NoError(t, err)
	require.Len(t, invoices, 3)
	assert.Equal(t, "INV-001", invoices[0].ID)

	version, err := restored.SchemaVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, ExpectedSchemaVersion, version)
}

func TestBackupErrors(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	dest := filepath.Join(t.TempDir(), "taken.bak")
	require.NoError(t, os.WriteFile(dest, []byte("x"), 0600))

	err := store.Backup(ctx, dest)
	require.ErrorIs(t, err, ErrBackupExists)

	err = store.Backup(ctx, "  ")
	require.ErrorIs(t, err, ErrEmptyString)
}
