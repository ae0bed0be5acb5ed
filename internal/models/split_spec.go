package models

// SplitMode selects how an expense amount is divided among participants.
type SplitMode string

const (
	// SplitEqualAll divides the amount evenly across every registered participant.
	SplitEqualAll SplitMode = "all"

	// SplitEqualSubset divides the amount evenly across the named participants.
	SplitEqualSubset SplitMode = "subset"

	// SplitManual uses the caller-provided name to share-amount mapping.
	SplitManual SplitMode = "manual"
)

// SplitSpec is the caller's instruction for dividing an expense.
// Exactly one of Names or Shares is consulted, depending on Mode:
// SplitEqualAll uses neither, SplitEqualSubset uses Names, SplitManual uses Shares.
type SplitSpec struct {
	Mode   SplitMode          `json:"mode"`
	Names  []string           `json:"names,omitempty"`
	Shares map[string]float64 `json:"shares,omitempty"`
}

// EqualAll returns a spec that splits evenly across the whole registry.
func EqualAll() SplitSpec {
	return SplitSpec{Mode: SplitEqualAll}
}

// EqualSubset returns a spec that splits evenly across the given names.
func EqualSubset(names ...string) SplitSpec {
	return SplitSpec{Mode: SplitEqualSubset, Names: names}
}

// Manual returns a spec with explicit per-participant share amounts.
func Manual(shares map[string]float64) SplitSpec {
	return SplitSpec{Mode: SplitManual, Shares: shares}
}
