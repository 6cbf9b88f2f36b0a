package domain

import (
	"time"

	"github.com/govalues/decimal"
)

type RiskCategory string

const (
	RiskLow    RiskCategory = "low"
	RiskMedium RiskCategory = "medium"
	RiskHigh   RiskCategory = "high"
)

// Account is one credit-taking party (a shop owner in the Udhaar flow).
// Outstanding is owned by the account and mutated only together with a
// ledger append. Version guards the read-modify-write of the balance.
type Account struct {
	ID           uint64
	Name         string
	Phone        string
	Verified     bool
	CreditLimit  decimal.Decimal
	Outstanding  decimal.Decimal
	RiskCategory RiskCategory
	Version      uint64
	CreatedAt    time.Time
}

// AvailableCredit is CreditLimit - Outstanding, floored at zero. The
// floor matters when a limit was lowered after debt was already out.
func (a *Account) AvailableCredit() decimal.Decimal {
	available, err := a.CreditLimit.Sub(a.Outstanding)
	if err != nil || available.IsNeg() {
		return decimal.Zero
	}
	return available
}

// CheckCredit decides whether the account may draw amount more credit.
// Side-effect free, safe to call speculatively. The boundary is
// inclusive: amount equal to the available credit passes.
func (a *Account) CheckCredit(amount decimal.Decimal) error {
	if !a.Verified {
		return ErrAccountNotVerified
	}
	if amount.Cmp(a.AvailableCredit()) > 0 {
		return ErrInsufficientCredit
	}
	return nil
}

// Draw increases the outstanding balance by amount.
func (a *Account) Draw(amount decimal.Decimal) error {
	newOutstanding, err := a.Outstanding.Add(amount)
	if err != nil {
		return ErrInternal
	}
	a.Outstanding = newOutstanding
	return nil
}

// Repay decreases the outstanding balance by amount, clamped at zero so
// an over-payment never drives the balance negative.
func (a *Account) Repay(amount decimal.Decimal) error {
	newOutstanding, err := a.Outstanding.Sub(amount)
	if err != nil {
		return ErrInternal
	}
	if newOutstanding.IsNeg() {
		newOutstanding = decimal.Zero
	}
	a.Outstanding = newOutstanding
	return nil
}
