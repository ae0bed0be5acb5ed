package ledger

import "errors"

// Tolerance is the absolute epsilon used to treat floating-point-adjacent
// sums as equal: one cent. Manual splits whose shares differ from the
// expense amount by at least this much are rejected, and settlement
// planning treats balances within this of zero as settled.
const Tolerance = 0.01

// Validation failures. All are detected before any state mutation, so a
// failed call leaves the registry and ledger untouched.
var (
	ErrInvalidName        = errors.New("participant name cannot be empty")
	ErrInvalidAmount      = errors.New("amount must be a positive number")
	ErrInvalidDescription = errors.New("description cannot be empty")
	ErrNoParticipants     = errors.New("no participants registered to split the expense")
	ErrEmptySplitSet      = errors.New("split participant set cannot be empty")
	ErrSplitMismatch      = errors.New("sum of shares does not match the expense amount")
)
