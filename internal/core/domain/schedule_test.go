package domain_test

import (
	"testing"
	"time"

	"github.com/govalues/decimal"
	"github.com/shopcredit/creditledger/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestPlanInstallments_ThirtyDayPlan(t *testing.T) {
	orderDate := date(2026, time.January, 1)

	schedule, err := domain.PlanInstallments(decimal.MustParse("10000"), 4, orderDate)
	require.NoError(t, err)
	require.Len(t, schedule, 4)

	expDue := []time.Time{
		date(2026, time.January, 8),
		date(2026, time.January, 15),
		date(2026, time.January, 22),
		date(2026, time.January, 29),
	}
	for i, inst := range schedule {
		assert.Equal(t, i+1, inst.Number)
		assert.Equal(t, expDue[i], inst.DueDate)
		assert.Equal(t, 0, inst.Amount.Cmp(decimal.MustParse("2500")))
		assert.False(t, inst.Paid)
	}
}

func TestPlanInstallments_Spacing(t *testing.T) {
	orderDate := date(2026, time.March, 1)

	tests := []struct {
		name    string
		count   int
		expDays []int
	}{
		{name: "single installment", count: 1, expDays: []int{7}},
		{name: "two installments", count: 2, expDays: []int{15, 30}},
		{name: "three installments", count: 3, expDays: []int{7, 14, 21}},
		{name: "six installments", count: 6, expDays: []int{7, 14, 21, 28, 35, 42}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			schedule, err := domain.PlanInstallments(decimal.MustParse("1200"), test.count, orderDate)
			require.NoError(t, err)
			require.Len(t, schedule, test.count)
			for i, inst := range schedule {
				assert.Equal(t, orderDate.AddDate(0, 0, test.expDays[i]), inst.DueDate)
			}
		})
	}
}

func TestPlanInstallments_RoundingRemainder(t *testing.T) {
	schedule, err := domain.PlanInstallments(decimal.MustParse("999.99"), 4, date(2026, time.January, 1))
	require.NoError(t, err)
	require.Len(t, schedule, 4)

	expAmounts := []string{"250.00", "250.00", "250.00", "249.99"}
	for i, inst := range schedule {
		assert.Equal(t, 0, inst.Amount.Cmp(decimal.MustParse(expAmounts[i])),
			"installment %d: got %s", i+1, inst.Amount)
	}
}

func TestPlanInstallments_SumIsExact(t *testing.T) {
	totals := []string{"0.01", "1", "10.50", "99.99", "999.99", "1234.56", "10000", "33333.33"}
	orderDate := date(2026, time.June, 15)

	for _, total := range totals {
		totalAmount := decimal.MustParse(total)
		for count := 1; count <= domain.MaxInstallments; count++ {
			schedule, err := domain.PlanInstallments(totalAmount, count, orderDate)
			require.NoError(t, err)

			sum := decimal.Zero
			for _, inst := range schedule {
				sum, err = sum.Add(inst.Amount)
				require.NoError(t, err)
			}
			assert.Equal(t, 0, sum.Cmp(totalAmount),
				"total %s count %d: schedule sums to %s", total, count, sum)
		}
	}
}

func TestPlanInstallments_Deterministic(t *testing.T) {
	orderDate := date(2026, time.February, 10)
	first, err := domain.PlanInstallments(decimal.MustParse("777.77"), 5, orderDate)
	require.NoError(t, err)
	second, err := domain.PlanInstallments(decimal.MustParse("777.77"), 5, orderDate)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestPlanInstallments_Preconditions(t *testing.T) {
	orderDate := date(2026, time.January, 1)

	_, err := domain.PlanInstallments(decimal.MustParse("100"), 0, orderDate)
	assert.ErrorIs(t, err, domain.ErrPrecondition)

	_, err = domain.PlanInstallments(decimal.MustParse("100"), -1, orderDate)
	assert.ErrorIs(t, err, domain.ErrPrecondition)

	_, err = domain.PlanInstallments(decimal.MustParse("100"), domain.MaxInstallments+1, orderDate)
	assert.ErrorIs(t, err, domain.ErrPrecondition)

	negative, err := decimal.MustParse("10").Sub(decimal.MustParse("20"))
	assert.NoError(t, err)
	_, err = domain.PlanInstallments(negative, 4, orderDate)
	assert.ErrorIs(t, err, domain.ErrPrecondition)
}
