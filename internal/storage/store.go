// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"

	"github.com/divvy-app/divvy/internal/models"
)

// Store defines the load-on-start / append-on-write persistence hooks the
// tracker uses. The core never updates or deletes: participants and
// expenses are append-only, and load order must match append order.
//
// This abstraction allows swapping storage backends (SQLite, in-memory,
// PostgreSQL, etc.) without changing the service layer.
type Store interface {
	// AppendParticipant persists a newly registered participant name.
	// Appending a name that is already stored is a no-op.
	AppendParticipant(ctx context.Context, name string) error

	// AppendExpense persists a recorded expense with all its splits.
	AppendExpense(ctx context.Context, exp models.Expense) error

	// LoadParticipants returns all stored names in registration order.
	LoadParticipants(ctx context.Context) ([]string, error)

	// LoadExpenses returns all stored expenses in append order,
	// splits in their recorded order.
	LoadExpenses(ctx context.Context) ([]models.Expense, error)

	// Close releases any resources held by the store.
	Close() error
}
