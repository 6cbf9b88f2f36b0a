package domain

import (
	"time"

	"github.com/govalues/decimal"
)

// MaxInstallments bounds the EMI count of an order (1..12, default 4).
const MaxInstallments = 12

const DefaultInstallmentCount = 4

// PlanInstallments splits an order total into the EMI schedule.
//
// Due dates inside the 30-day window:
//   - 1 installment:  order date + 7 days
//   - 2 installments: order date + 15, + 30 days
//   - N installments: weekly, order date + 7*i days
//
// Amounts: every installment gets total/count rounded to the minor
// unit, except the last, which absorbs the rounding drift so the
// schedule sums exactly to the total.
//
// Pure and deterministic. Malformed input is a caller bug, reported as
// ErrPrecondition.
func PlanInstallments(total decimal.Decimal, count int, orderDate time.Time) ([]*Installment, error) {
	if count < 1 || count > MaxInstallments {
		return nil, ErrPrecondition
	}
	if total.IsNeg() {
		return nil, ErrPrecondition
	}

	countDec, err := decimal.New(int64(count), 0)
	if err != nil {
		return nil, ErrPrecondition
	}
	base, err := total.Quo(countDec)
	if err != nil {
		return nil, ErrPrecondition
	}
	base = base.Round(2)

	daysBetween := 7
	if count == 2 {
		daysBetween = 15
	}

	schedule := make([]*Installment, 0, count)
	for i := 1; i <= count; i++ {
		amount := base
		if i == count {
			// Last installment absorbs the rounding remainder.
			countMinusOne, err := decimal.New(int64(count-1), 0)
			if err != nil {
				return nil, ErrPrecondition
			}
			paidBefore, err := base.Mul(countMinusOne)
			if err != nil {
				return nil, ErrPrecondition
			}
			amount, err = total.Sub(paidBefore)
			if err != nil {
				return nil, ErrPrecondition
			}
		}

		schedule = append(schedule, &Installment{
			Number:     i,
			Amount:     amount,
			DueDate:    orderDate.AddDate(0, 0, daysBetween*i),
			AmountPaid: decimal.Zero,
		})
	}

	return schedule, nil
}
