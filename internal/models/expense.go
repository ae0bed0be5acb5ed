package models

// Split is one participant's share of an expense.
type Split struct {
	// Participant is the name of the person who owes this share.
	Participant string `json:"member"`

	// Share is the portion of the expense amount owed by the participant.
	Share float64 `json:"share"`
}

// Expense represents a single recorded expense.
// Expenses are immutable once recorded and the ledger preserves arrival order.
type Expense struct {
	// ID is the unique identifier for the expense (UUID format).
	ID string `json:"expense_id"`

	// Description is the human-readable label for the expense.
	Description string `json:"description"`

	// Amount is the total expense amount. The sum of all split shares
	// equals Amount to within a cent.
	Amount float64 `json:"amount"`

	// PaidBy is the name of the participant who paid the full amount.
	PaidBy string `json:"paid_by"`

	// Splits lists each participant's share, in registry or subset order.
	Splits []Split `json:"splits"`

	// CreatedAt is the Unix timestamp when the expense was recorded.
	CreatedAt int64 `json:"created_at"`
}
