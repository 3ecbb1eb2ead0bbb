package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

// ErrBackupExists is returned when the backup destination is already taken.
var ErrBackupExists = errors.New("backup already exists")

// BackupPath returns a timestamped backup location next to dbPath.
func BackupPath(dbPath string, now time.Time) string {
	return fmt.Sprintf("%s.%s.bak", dbPath, now.Format("2006-01-02-150405"))
}

// Backup writes a consistent copy of the database to destPath using
// VACUUM INTO. The destination must not exist.
func (s *SQLiteStorage) Backup(ctx context.Context, destPath string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(destPath, "destPath"); err != nil {
		return err
	}

	if _, err := os.Stat(destPath); err == nil {
		return fmt.Errorf("%w: %s", ErrBackupExists, destPath)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to check backup path: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(destPath), 0750); err != nil {
		return fmt.Errorf("failed to create backup directory: %w", err)
	}

	if _, err := s.db.ExecContext(ctx, "VACUUM INTO ?", destPath); err != nil {
		return fmt.Errorf("failed to backup database: %w", err)
	}

	slog.Info("Database backed up", "path", destPath)
	return nil
}
