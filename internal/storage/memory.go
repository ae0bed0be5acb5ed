package storage

import (
	"context"
	"sync"

	"github.com/divvy-app/divvy/internal/models"
)

// Ensure MemoryStore implements Store
var _ Store = (*MemoryStore)(nil)

// MemoryStore is an in-memory Store for tests and ephemeral runs.
// Data does not survive the process.
type MemoryStore struct {
	mu           sync.Mutex
	participants []string
	seen         map[string]bool
	expenses     []models.Expense
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{seen: make(map[string]bool)}
}

// AppendParticipant records a participant name, ignoring duplicates.
func (m *MemoryStore) AppendParticipant(_ context.Context, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.seen[name] {
		return nil
	}
	m.seen[name] = true
	m.participants = append(m.participants, name)
	return nil
}

// AppendExpense records an expense.
func (m *MemoryStore) AppendExpense(_ context.Context, exp models.Expense) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.expenses = append(m.expenses, exp)
	return nil
}

// LoadParticipants returns the stored names in registration order.
func (m *MemoryStore) LoadParticipants(_ context.Context) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.participants))
	copy(out, m.participants)
	return out, nil
}

// LoadExpenses returns the stored expenses in append order.
func (m *MemoryStore) LoadExpenses(_ context.Context) ([]models.Expense, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.Expense, len(m.expenses))
	copy(out, m.expenses)
	return out, nil
}

// Close is a no-op.
func (m *MemoryStore) Close() error {
	return nil
}
