package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/govalues/decimal"
)

type EntryType string

const (
	// EntryCredit records credit taken by the account (outstanding grows).
	EntryCredit EntryType = "CREDIT"
	// EntryDebit records a payment received (outstanding shrinks).
	EntryDebit EntryType = "DEBIT"
)

// LedgerEntry is one immutable line of the account's audit trail.
// BalanceAfter snapshots the outstanding balance right after the entry
// was applied, so the trail replays without recomputation.
type LedgerEntry struct {
	ID                uuid.UUID
	AccountID         uint64
	Type              EntryType
	Amount            decimal.Decimal
	OrderNumber       *OrderNumber
	InstallmentNumber *int
	Description       string
	BalanceAfter      decimal.Decimal
	CreatedAt         time.Time
}

// CreditLimitSuggestion is an advisory row written by the analytics
// collaborator. Rows are append-only; the current suggestion is simply
// the most recent one by CreatedAt.
type CreditLimitSuggestion struct {
	ID             uuid.UUID
	AccountID      uint64
	SuggestedLimit decimal.Decimal
	Note           string
	CreatedAt      time.Time
}
