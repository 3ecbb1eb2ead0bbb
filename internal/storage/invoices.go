package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Veraticus/stellar-invoices/internal/model"
)

// SaveInvoices appends invoices after the ones already stored, keeping their
// order. Invoices whose id already exists are skipped. It returns how many
// rows were inserted.
func (s *SQLiteStorage) SaveInvoices(ctx context.Context, invoices []model.Invoice) (int, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}
	if err := ValidateInvoices(invoices); err != nil {
		return 0, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var position int
	if err := tx.QueryRowContext(ctx, `SELECT COALESCE(MAX(position), 0) FROM invoices`).Scan(&position); err != nil {
		return 0, fmt.Errorf("failed to read last position: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT OR IGNORE INTO invoices (id, position, client, issue_date, due_date, amount, status)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	inserted := 0
	for _, inv := range invoices {
		position++
		res, err := stmt.ExecContext(ctx, inv.ID, position, inv.Client, inv.IssueDate, inv.DueDate, inv.Amount, string(inv.Status))
		if err != nil {
			return 0, fmt.Errorf("failed to insert invoice %s: %w", inv.ID, err)
		}
		if n, _ := res.RowsAffected(); n > 0 {
			inserted++
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit invoices: %w", err)
	}
	return inserted, nil
}

// ListInvoices returns every invoice in insertion order.
func (s *SQLiteStorage) ListInvoices(ctx context.Context) ([]model.Invoice, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, client, issue_date, due_date, amount, status
		FROM invoices
		ORDER BY position, rowid
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query invoices: %w", err)
	}
	defer func() { _ = rows.Close() }()

	return scanInvoices(rows)
}

// CountInvoices returns the number of stored invoices.
func (s *SQLiteStorage) CountInvoices(ctx context.Context) (int, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}

	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM invoices`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count invoices: %w", err)
	}
	return count, nil
}

// DeleteAllInvoices removes every stored invoice.
func (s *SQLiteStorage) DeleteAllInvoices(ctx context.Context) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if _, err := s.db.ExecContext(ctx, `DELETE FROM invoices`); err != nil {
		return fmt.Errorf("failed to delete invoices: %w", err)
	}
	return nil
}

func scanInvoices(rows *sql.Rows) ([]model.Invoice, error) {
	var invoices []model.Invoice
	for rows.Next() {
		var inv model.Invoice
		var status string
		if err := rows.Scan(&inv.ID, &inv.Client, &inv.IssueDate, &inv.DueDate, &inv.Amount, &status); err != nil {
			return nil, fmt.Errorf("failed to scan invoice: %w", err)
		}
		inv.Status = model.Status(status)
		invoices = append(invoices, inv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate invoices: %w", err)
	}
	return invoices, nil
}
