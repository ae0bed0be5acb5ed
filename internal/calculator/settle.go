package calculator

import (
	"math"
	"sort"

	"github.com/divvy-app/divvy/internal/models"
)

// tolerance below which a balance counts as settled: one cent.
const tolerance = 0.01

// Settlements produces a deterministic list of transfers that brings every
// balance to within a cent of zero.
//
// The plan is greedy largest-magnitude matching: repeatedly pay the
// largest creditor from the largest debtor with the smaller of the two
// magnitudes, dropping whichever side reaches zero. Ties on magnitude
// break by position in the order slice (registration order), so the plan
// is stable across calls. Greedy matching is not guaranteed to minimize
// the transfer count for every balance distribution, but it is the
// standard efficient approximation and conserves totals: the transfers
// sum to exactly the sum of positive balances.
//
// order must contain every name in balances; names within tolerance of
// zero are ignored.
func Settlements(order []string, balances map[string]float64) []models.Transfer {
	position := make(map[string]int, len(order))
	for i, name := range order {
		position[name] = i
	}

	type party struct {
		name    string
		balance float64 // always positive: magnitude of credit or debt
	}

	var creditors, debtors []party
	for _, name := range order {
		bal := balances[name]
		switch {
		case bal > tolerance:
			creditors = append(creditors, party{name, bal})
		case bal < -tolerance:
			debtors = append(debtors, party{name, -bal})
		}
	}

	byMagnitude := func(parties []party) {
		sort.SliceStable(parties, func(i, j int) bool {
			if parties[i].balance != parties[j].balance {
				return parties[i].balance > parties[j].balance
			}
			return position[parties[i].name] < position[parties[j].name]
		})
	}
	byMagnitude(creditors)
	byMagnitude(debtors)

	var transfers []models.Transfer
	i, j := 0, 0
	for i < len(debtors) && j < len(creditors) {
		debtor, creditor := &debtors[i], &creditors[j]

		amount := math.Min(debtor.balance, creditor.balance)
		// Round to the cent so plans stay presentable; the residue is
		// below tolerance by construction.
		amount = math.Round(amount*100) / 100

		transfers = append(transfers, models.Transfer{
			From:   debtor.name,
			To:     creditor.name,
			Amount: amount,
		})

		debtor.balance -= amount
		creditor.balance -= amount

		if debtor.balance < tolerance {
			i++
		}
		if creditor.balance < tolerance {
			j++
		}
	}
	return transfers
}
