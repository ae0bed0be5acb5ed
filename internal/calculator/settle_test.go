package calculator

import (
	"math"
	"testing"

	"github.com/divvy-app/divvy/internal/models"
)

func TestSettlements(t *testing.T) {
	tests := []struct {
		name         string
		order        []string
		balances     map[string]float64
		want         []models.Transfer
		validateFunc func(t *testing.T, transfers []models.Transfer)
	}{
		{
			name:     "everyone settled gives empty plan",
			order:    []string{"Alice", "Bob"},
			balances: map[string]float64{"Alice": 0, "Bob": 0},
			want:     nil,
		},
		{
			name:     "balances within tolerance are ignored",
			order:    []string{"Alice", "Bob"},
			balances: map[string]float64{"Alice": 0.005, "Bob": -0.005},
			want:     nil,
		},
		{
			name:     "single debtor pays single creditor",
			order:    []string{"Alice", "Bob"},
			balances: map[string]float64{"Alice": 15, "Bob": -15},
			want:     []models.Transfer{{From: "Bob", To: "Alice", Amount: 15}},
		},
		{
			name:     "two debtors pay one creditor",
			order:    []string{"Alice", "Bob", "Carol"},
			balances: map[string]float64{"Alice": 20, "Bob": -10, "Carol": -10},
			want: []models.Transfer{
				{From: "Bob", To: "Alice", Amount: 10},
				{From: "Carol", To: "Alice", Amount: 10},
			},
		},
		{
			name:     "largest magnitudes match first",
			order:    []string{"Alice", "Bob", "Carol", "Dave"},
			balances: map[string]float64{"Alice": 50, "Bob": 10, "Carol": -40, "Dave": -20},
			want: []models.Transfer{
				{From: "Carol", To: "Alice", Amount: 40},
				{From: "Dave", To: "Alice", Amount: 10},
				{From: "Dave", To: "Bob", Amount: 10},
			},
		},
		{
			name:     "equal balances tie-break by registration order",
			order:    []string{"Carol", "Alice", "Bob", "Dave"},
			balances: map[string]float64{"Carol": -10, "Alice": 10, "Bob": 10, "Dave": -10},
			want: []models.Transfer{
				{From: "Carol", To: "Alice", Amount: 10},
				{From: "Dave", To: "Bob", Amount: 10},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Settlements(tt.order, tt.balances)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d transfers %v, want %d %v", len(got), got, len(tt.want), tt.want)
			}
			for i, want := range tt.want {
				if got[i].From != want.From || got[i].To != want.To {
					t.Errorf("transfer %d = %s->%s, want %s->%s",
						i, got[i].From, got[i].To, want.From, want.To)
				}
				if math.Abs(got[i].Amount-want.Amount) > 0.01 {
					t.Errorf("transfer %d amount = %v, want %v", i, got[i].Amount, want.Amount)
				}
			}
			if tt.validateFunc != nil {
				tt.validateFunc(t, got)
			}
		})
	}
}

// applyTransfers plays a settlement plan back onto a copy of the balances.
func applyTransfers(balances map[string]float64, transfers []models.Transfer) map[string]float64 {
	after := make(map[string]float64, len(balances))
	for name, bal := range balances {
		after[name] = bal
	}
	for _, tr := range transfers {
		after[tr.From] += tr.Amount
		after[tr.To] -= tr.Amount
	}
	return after
}

func TestSettlementsZeroOutBalances(t *testing.T) {
	tests := []struct {
		name     string
		order    []string
		balances map[string]float64
	}{
		{
			name:     "simple",
			order:    []string{"Alice", "Bob", "Carol"},
			balances: map[string]float64{"Alice": 20, "Bob": -10, "Carol": -10},
		},
		{
			name:     "uneven cents",
			order:    []string{"Alice", "Bob", "Carol"},
			balances: map[string]float64{"Alice": 6.67, "Bob": -3.34, "Carol": -3.33},
		},
		{
			name:  "many parties",
			order: []string{"A", "B", "C", "D", "E", "F"},
			balances: map[string]float64{
				"A": 100.10, "B": -50.05, "C": 25.25, "D": -75.30, "E": 0, "F": 0,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			transfers := Settlements(tt.order, tt.balances)

			after := applyTransfers(tt.balances, transfers)
			for name, bal := range after {
				if math.Abs(bal) > tolerance {
					t.Errorf("%s still has balance %v after settlement", name, bal)
				}
			}

			// Conservation: transfers sum to the total positive balance.
			var transferred, positive float64
			for _, tr := range transfers {
				if tr.Amount <= 0 {
					t.Errorf("transfer %v has non-positive amount", tr)
				}
				transferred += tr.Amount
			}
			for _, bal := range tt.balances {
				if bal > 0 {
					positive += bal
				}
			}
			if math.Abs(transferred-positive) > tolerance {
				t.Errorf("transfers sum to %v, positive balances sum to %v", transferred, positive)
			}
		})
	}
}

func TestSettlementsDeterministic(t *testing.T) {
	order := []string{"Alice", "Bob", "Carol", "Dave"}
	balances := map[string]float64{"Alice": 25, "Bob": 25, "Carol": -25, "Dave": -25}

	first := Settlements(order, balances)
	for i := 0; i < 5; i++ {
		again := Settlements(order, balances)
		if len(again) != len(first) {
			t.Fatalf("plan length changed between calls: %d vs %d", len(again), len(first))
		}
		for j := range first {
			if first[j] != again[j] {
				t.Fatalf("plan changed between calls: %v vs %v", first[j], again[j])
			}
		}
	}
}
