// Package sqlite provides a SQLite-backed implementation of the storage.Store interface.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/divvy-app/divvy/internal/models"
	"github.com/divvy-app/divvy/internal/storage"
)

// Ensure SQLiteStore implements storage.Store
var _ storage.Store = (*SQLiteStore)(nil)

// SQLiteStore implements storage.Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// New creates a new SQLiteStore with the given database path.
// It creates the parent directories and runs migrations automatically.
func New(dbPath string) (*SQLiteStore, error) {
	// Create parent directory if it doesn't exist
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	// Open database with pure Go driver
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable foreign keys
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	// Run migrations
	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// AppendParticipant persists a participant name. Already-stored names are
// ignored so the call stays idempotent across restarts.
func (s *SQLiteStore) AppendParticipant(ctx context.Context, name string) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO participants (name) VALUES (?) ON CONFLICT(name) DO NOTHING",
		name,
	)
	if err != nil {
		return fmt.Errorf("failed to insert participant: %w", err)
	}
	return nil
}

// AppendExpense persists an expense and its splits in one transaction.
func (s *SQLiteStore) AppendExpense(ctx context.Context, exp models.Expense) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// Position the expense after everything already stored.
	var position int64
	if err := tx.QueryRowContext(ctx,
		"SELECT COALESCE(MAX(position), 0) + 1 FROM expenses",
	).Scan(&position); err != nil {
		return fmt.Errorf("failed to allocate position: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		"INSERT INTO expenses (id, position, description, amount, paid_by, created_at) VALUES (?, ?, ?, ?, ?, ?)",
		exp.ID, position, exp.Description, exp.Amount, exp.PaidBy, exp.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert expense: %w", err)
	}

	for i, split := range exp.Splits {
		_, err = tx.ExecContext(ctx,
			"INSERT INTO expense_splits (expense_id, seq, participant, share) VALUES (?, ?, ?, ?)",
			exp.ID, i, split.Participant, split.Share,
		)
		if err != nil {
			return fmt.Errorf("failed to insert split: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// LoadParticipants returns all stored names in registration order.
func (s *SQLiteStore) LoadParticipants(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT name FROM participants ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to load participants: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan participant: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate participants: %w", err)
	}
	return names, nil
}

// LoadExpenses returns all stored expenses in append order.
func (s *SQLiteStore) LoadExpenses(ctx context.Context) ([]models.Expense, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, description, amount, paid_by, created_at FROM expenses ORDER BY position",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load expenses: %w", err)
	}
	defer rows.Close()

	var expenses []models.Expense
	for rows.Next() {
		var exp models.Expense
		if err := rows.Scan(&exp.ID, &exp.Description, &exp.Amount, &exp.PaidBy, &exp.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		expenses = append(expenses, exp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expenses: %w", err)
	}

	for i := range expenses {
		splits, err := s.loadSplits(ctx, expenses[i].ID)
		if err != nil {
			return nil, err
		}
		expenses[i].Splits = splits
	}
	return expenses, nil
}

func (s *SQLiteStore) loadSplits(ctx context.Context, expenseID string) ([]models.Split, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT participant, share FROM expense_splits WHERE expense_id = ? ORDER BY seq",
		expenseID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load splits: %w", err)
	}
	defer rows.Close()

	var splits []models.Split
	for rows.Next() {
		var split models.Split
		if err := rows.Scan(&split.Participant, &split.Share); err != nil {
			return nil, fmt.Errorf("failed to scan split: %w", err)
		}
		splits = append(splits, split)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate splits: %w", err)
	}
	return splits, nil
}
