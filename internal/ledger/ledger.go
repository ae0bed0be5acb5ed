// Package ledger implements the expense ledger core: the participant
// registry, expense recording with flexible split rules, and the
// validation that guards both.
//
// The package performs no locking and no I/O. Callers serialize access
// and persist state through their own storage hooks.
package ledger

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/divvy-app/divvy/internal/models"
)

// Ledger stores expenses in arrival order. Expenses are immutable once
// recorded; there is no update or delete.
type Ledger struct {
	reg      *Registry
	expenses []models.Expense
}

// New returns an empty ledger bound to the given registry.
func New(reg *Registry) *Ledger {
	return &Ledger{reg: reg}
}

// Registry returns the participant registry the ledger records against.
func (l *Ledger) Registry() *Registry {
	return l.reg
}

// Record validates and appends a new expense.
//
// The payer and any split participant not yet registered are registered as
// a side effect, but only after every validation passes: a failed call
// leaves both the registry and the ledger unchanged. The returned slice
// lists the names that were newly registered, so callers can persist them.
//
// Split resolution sees the registry as it stands at the call. In
// particular an equal-all split over an empty registry fails with
// ErrNoParticipants even when the payer's name is new.
func (l *Ledger) Record(description string, amount float64, paidBy string, spec models.SplitSpec) (models.Expense, []string, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return models.Expense{}, nil, ErrInvalidDescription
	}
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return models.Expense{}, nil, ErrInvalidAmount
	}
	payer := strings.TrimSpace(paidBy)
	if payer == "" {
		return models.Expense{}, nil, fmt.Errorf("payer: %w", ErrInvalidName)
	}

	splits, err := resolveSplits(l.reg, amount, spec)
	if err != nil {
		return models.Expense{}, nil, err
	}

	var added []string
	register := func(name string) error {
		_, created, err := l.reg.Register(name)
		if err != nil {
			return err
		}
		if created {
			added = append(added, name)
		}
		return nil
	}

	if err := register(payer); err != nil {
		return models.Expense{}, nil, err
	}
	for _, s := range splits {
		if err := register(s.Participant); err != nil {
			return models.Expense{}, added, err
		}
	}

	exp := models.Expense{
		ID:          uuid.New().String(),
		Description: description,
		Amount:      amount,
		PaidBy:      payer,
		Splits:      splits,
		CreatedAt:   time.Now().Unix(),
	}
	l.expenses = append(l.expenses, exp)
	return exp, added, nil
}

// Restore appends an already-persisted expense without re-validating it,
// registering any participant it references. Used when loading a ledger
// from storage.
func (l *Ledger) Restore(exp models.Expense) error {
	if _, _, err := l.reg.Register(exp.PaidBy); err != nil {
		return fmt.Errorf("restore payer: %w", err)
	}
	for _, s := range exp.Splits {
		if _, _, err := l.reg.Register(s.Participant); err != nil {
			return fmt.Errorf("restore split participant: %w", err)
		}
	}
	l.expenses = append(l.expenses, exp)
	return nil
}

// List returns the expenses in append order.
func (l *Ledger) List() []models.Expense {
	out := make([]models.Expense, len(l.expenses))
	copy(out, l.expenses)
	return out
}

// Len returns the number of recorded expenses.
func (l *Ledger) Len() int {
	return len(l.expenses)
}
