// Package calculator derives net balances and settlement plans from a
// recorded ledger. Everything here is a pure function over its inputs:
// results are fresh values computed on demand, never cached, so they
// always reflect the latest ledger state.
package calculator

import "github.com/divvy-app/divvy/internal/models"

// Balances computes each participant's net balance from the expense list.
//
// Every name in participants gets an entry, zero if they appear in no
// expense. For each expense the payer's balance gains the full amount and
// each split participant's balance loses their share. Positive means the
// group owes them; negative means they owe the group. The fold is
// commutative, so the result does not depend on expense order.
func Balances(participants []string, expenses []models.Expense) map[string]float64 {
	balances := make(map[string]float64, len(participants))
	for _, name := range participants {
		balances[name] = 0
	}

	for _, exp := range expenses {
		balances[exp.PaidBy] += exp.Amount
		for _, s := range exp.Splits {
			balances[s.Participant] -= s.Share
		}
	}
	return balances
}
