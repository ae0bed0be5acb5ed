package models

// Transfer is a suggested payment that reduces outstanding balances.
type Transfer struct {
	// From is the debtor who should make the payment.
	From string `json:"from"`

	// To is the creditor who should receive it.
	To string `json:"to"`

	// Amount is the payment amount, always positive.
	Amount float64 `json:"amount"`
}

// MemberBalance pairs a participant with their net position.
// Positive means the group owes them, negative means they owe the group.
type MemberBalance struct {
	Name       string  `json:"name"`
	NetBalance float64 `json:"net_balance"`
}
