// Package models defines the core domain types for divvy.
//
// # Models
//
//   - Expense: an immutable recorded expense with its per-participant splits
//   - Split: one participant's share of an expense
//   - SplitSpec: the caller's instruction for dividing an expense
//     (equal across all, equal across a subset, or manual amounts)
//   - Transfer: a suggested settlement payment between two participants
//   - MemberBalance: a participant's derived net position
//
// Participants are identified by name strings. Names are case-sensitive
// and trimmed of surrounding whitespace on registration.
//
// # Design Principles
//
//  1. Balances and transfers are derived views, never stored
//  2. Expenses are append-only; there is no update or delete
//  3. Avoid circular references: splits carry participant names, not pointers
package models
