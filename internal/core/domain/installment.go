package domain

import (
	"time"

	"github.com/govalues/decimal"
)

// Installment is one scheduled EMI of an order. Created as a batch on
// approval, mutated only by payment recording, never deleted.
type Installment struct {
	OrderNumber OrderNumber
	Number      int
	Amount      decimal.Decimal
	DueDate     time.Time
	Paid        bool
	PaidDate    *time.Time
	AmountPaid  decimal.Decimal
	Late        bool
	Reference   string
}

// MarkPaid settles the installment with the amount actually received,
// which may be below or above the scheduled amount.
func (i *Installment) MarkPaid(amount decimal.Decimal, paidDate time.Time, reference string) error {
	if i.Paid {
		return ErrInstallmentPaid
	}
	i.Paid = true
	i.PaidDate = &paidDate
	i.AmountPaid = amount
	i.Late = paidDate.After(i.DueDate)
	i.Reference = reference
	return nil
}

func (i *Installment) IsOverdue(asOf time.Time) bool {
	return !i.Paid && i.DueDate.Before(asOf)
}

func (i *Installment) DaysOverdue(asOf time.Time) int {
	if !i.IsOverdue(asOf) {
		return 0
	}
	return int(asOf.Sub(i.DueDate) / (24 * time.Hour))
}
