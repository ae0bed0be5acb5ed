package ledger

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/divvy-app/divvy/internal/models"
)

// cents converts an amount to integer cents, rounding to the nearest cent.
// Equal splits are computed in cents so shares always sum exactly to the
// expense amount regardless of how the division rounds.
func cents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// fromCents converts integer cents back to a decimal amount.
func fromCents(c int64) float64 {
	return float64(c) / 100
}

// equalShares divides amount evenly across names, in order. When the amount
// does not divide evenly, the residual cents go to the first participants
// in the list so the shares sum exactly to amount.
func equalShares(amount float64, names []string) []models.Split {
	total := cents(amount)
	n := int64(len(names))
	base := total / n
	rem := total % n

	splits := make([]models.Split, len(names))
	for i, name := range names {
		share := base
		if int64(i) < rem {
			share++
		}
		splits[i] = models.Split{Participant: name, Share: fromCents(share)}
	}
	return splits
}

// resolveSplits turns a split spec into the final per-participant shares.
// It reads the registry but never mutates it; callers register any new
// names only after resolution succeeds.
func resolveSplits(reg *Registry, amount float64, spec models.SplitSpec) ([]models.Split, error) {
	switch spec.Mode {
	case models.SplitEqualAll:
		all := reg.List()
		if len(all) == 0 {
			return nil, ErrNoParticipants
		}
		return equalShares(amount, all), nil

	case models.SplitEqualSubset:
		if len(spec.Names) == 0 {
			return nil, ErrEmptySplitSet
		}
		names := make([]string, 0, len(spec.Names))
		seen := make(map[string]bool, len(spec.Names))
		for _, raw := range spec.Names {
			name := strings.TrimSpace(raw)
			if name == "" {
				return nil, fmt.Errorf("split participant: %w", ErrInvalidName)
			}
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
		return equalShares(amount, names), nil

	case models.SplitManual:
		if len(spec.Shares) == 0 {
			return nil, ErrEmptySplitSet
		}
		splits := make([]models.Split, 0, len(spec.Shares))
		var sum float64
		for raw, share := range spec.Shares {
			name := strings.TrimSpace(raw)
			if name == "" {
				return nil, fmt.Errorf("split participant: %w", ErrInvalidName)
			}
			if math.IsNaN(share) || math.IsInf(share, 0) || share <= 0 {
				return nil, fmt.Errorf("share for %q: %w", name, ErrInvalidAmount)
			}
			splits = append(splits, models.Split{Participant: name, Share: share})
			sum += share
		}
		if math.Abs(sum-amount) >= Tolerance {
			return nil, fmt.Errorf("shares sum to %.2f but the amount is %.2f: %w", sum, amount, ErrSplitMismatch)
		}
		// Map iteration order is random; sort for a stable split sequence.
		sort.Slice(splits, func(i, j int) bool { return splits[i].Participant < splits[j].Participant })
		return splits, nil

	default:
		return nil, fmt.Errorf("unknown split mode %q: %w", spec.Mode, ErrEmptySplitSet)
	}
}
