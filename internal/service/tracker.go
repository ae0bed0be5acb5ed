// Package service wires the ledger core to a storage backend and exposes
// the six tracker operations behind a single coarse lock.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/divvy-app/divvy/internal/calculator"
	"github.com/divvy-app/divvy/internal/ledger"
	"github.com/divvy-app/divvy/internal/models"
	"github.com/divvy-app/divvy/internal/storage"
)

// Tracker is the synchronous API over the expense ledger. Mutations
// (RegisterParticipant, RecordExpense) serialize against each other and
// against reads under one RWMutex; the core itself assumes exclusive
// access during a call and performs no locking.
type Tracker struct {
	mu    sync.RWMutex
	led   *ledger.Ledger
	store storage.Store
}

// NewTracker loads the participant registry and expense ledger from the
// store and returns a ready tracker.
func NewTracker(ctx context.Context, store storage.Store) (*Tracker, error) {
	reg := ledger.NewRegistry()
	led := ledger.New(reg)

	names, err := store.LoadParticipants(ctx)
	if err != nil {
		return nil, fmt.Errorf("load participants: %w", err)
	}
	for _, name := range names {
		if _, _, err := reg.Register(name); err != nil {
			return nil, fmt.Errorf("restore participant %q: %w", name, err)
		}
	}

	expenses, err := store.LoadExpenses(ctx)
	if err != nil {
		return nil, fmt.Errorf("load expenses: %w", err)
	}
	for _, exp := range expenses {
		if err := led.Restore(exp); err != nil {
			return nil, fmt.Errorf("restore expense %s: %w", exp.ID, err)
		}
	}

	slog.Info("Tracker loaded", "participants", reg.Len(), "expenses", led.Len())
	return &Tracker{led: led, store: store}, nil
}

// RegisterParticipant adds a participant name. Registering an existing
// name returns the existing entry without duplication.
func (t *Tracker) RegisterParticipant(ctx context.Context, name string) (string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	registered, created, err := t.led.Registry().Register(name)
	if err != nil {
		return "", err
	}
	if created {
		if err := t.store.AppendParticipant(ctx, registered); err != nil {
			return "", fmt.Errorf("persist participant: %w", err)
		}
		slog.Info("Participant registered", "name", registered)
	}
	return registered, nil
}

// ListParticipants returns the registered names in registration order.
func (t *Tracker) ListParticipants(ctx context.Context) []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.led.Registry().List()
}

// RecordExpense validates, records, and persists a new expense. The payer
// and any split participant not yet registered are registered (and
// persisted) as a side effect.
func (t *Tracker) RecordExpense(ctx context.Context, description string, amount float64, paidBy string, spec models.SplitSpec) (models.Expense, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	exp, added, err := t.led.Record(description, amount, paidBy, spec)
	if err != nil {
		return models.Expense{}, err
	}

	for _, name := range added {
		if err := t.store.AppendParticipant(ctx, name); err != nil {
			return models.Expense{}, fmt.Errorf("persist participant: %w", err)
		}
	}
	if err := t.store.AppendExpense(ctx, exp); err != nil {
		return models.Expense{}, fmt.Errorf("persist expense: %w", err)
	}

	slog.Info("Expense recorded",
		"expense_id", exp.ID,
		"description", exp.Description,
		"amount", exp.Amount,
		"paid_by", exp.PaidBy,
		"splits", len(exp.Splits),
	)
	return exp, nil
}

// ListExpenses returns the recorded expenses in ledger order.
func (t *Tracker) ListExpenses(ctx context.Context) []models.Expense {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.led.List()
}

// ComputeBalances returns every participant's net balance, freshly derived
// from the ledger.
func (t *Tracker) ComputeBalances(ctx context.Context) map[string]float64 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return calculator.Balances(t.led.Registry().List(), t.led.List())
}

// PlanSettlement returns the transfers that settle all outstanding
// balances, freshly derived from the ledger.
func (t *Tracker) PlanSettlement(ctx context.Context) []models.Transfer {
	t.mu.RLock()
	defer t.mu.RUnlock()
	order := t.led.Registry().List()
	return calculator.Settlements(order, calculator.Balances(order, t.led.List()))
}
