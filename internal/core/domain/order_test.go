package domain_test

import (
	"testing"
	"time"

	"github.com/govalues/decimal"
	"github.com/shopcredit/creditledger/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestOrderTransitions(t *testing.T) {
	allowed := []struct{ from, to domain.OrderStatus }{
		{domain.OrderStatusPending, domain.OrderStatusApproved},
		{domain.OrderStatusPending, domain.OrderStatusCancelled},
		{domain.OrderStatusApproved, domain.OrderStatusDispatched},
		{domain.OrderStatusApproved, domain.OrderStatusCancelled},
		{domain.OrderStatusApproved, domain.OrderStatusCompleted},
		{domain.OrderStatusDispatched, domain.OrderStatusDelivered},
		{domain.OrderStatusDispatched, domain.OrderStatusCompleted},
		{domain.OrderStatusDelivered, domain.OrderStatusCompleted},
	}
	for _, tr := range allowed {
		assert.True(t, domain.CanTransition(tr.from, tr.to), "%s -> %s should be allowed", tr.from, tr.to)
		assert.NoError(t, domain.ValidateTransition(tr.from, tr.to))
	}

	denied := []struct{ from, to domain.OrderStatus }{
		{domain.OrderStatusPending, domain.OrderStatusDispatched},
		{domain.OrderStatusPending, domain.OrderStatusCompleted},
		{domain.OrderStatusApproved, domain.OrderStatusApproved},
		{domain.OrderStatusDispatched, domain.OrderStatusCancelled},
		{domain.OrderStatusDelivered, domain.OrderStatusCancelled},
		{domain.OrderStatusCompleted, domain.OrderStatusPending},
		{domain.OrderStatusCompleted, domain.OrderStatusCancelled},
		{domain.OrderStatusCancelled, domain.OrderStatusApproved},
	}
	for _, tr := range denied {
		assert.False(t, domain.CanTransition(tr.from, tr.to), "%s -> %s should be denied", tr.from, tr.to)
		err := domain.ValidateTransition(tr.from, tr.to)
		assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	}
}

func TestInvalidTransitionErrorNamesStates(t *testing.T) {
	err := domain.ValidateTransition(domain.OrderStatusApproved, domain.OrderStatusApproved)
	assert.ErrorContains(t, err, string(domain.OrderStatusApproved))

	var transitionErr *domain.InvalidTransitionError
	assert.ErrorAs(t, err, &transitionErr)
	assert.Equal(t, domain.OrderStatusApproved, transitionErr.From)
	assert.Equal(t, domain.OrderStatusApproved, transitionErr.To)
}

func TestIsTerminal(t *testing.T) {
	assert.True(t, domain.IsTerminal(domain.OrderStatusCompleted))
	assert.True(t, domain.IsTerminal(domain.OrderStatusCancelled))
	assert.False(t, domain.IsTerminal(domain.OrderStatusPending))
	assert.False(t, domain.IsTerminal(domain.OrderStatusApproved))
	assert.False(t, domain.IsTerminal(domain.OrderStatusDispatched))
	assert.False(t, domain.IsTerminal(domain.OrderStatusDelivered))
}

func TestInstallment_MarkPaid(t *testing.T) {
	due := date(2026, time.January, 15)

	inst := domain.Installment{Number: 2, Amount: decimal.MustParse("2500"), DueDate: due}
	err := inst.MarkPaid(decimal.MustParse("2500"), date(2026, time.January, 20), "UPI-42")
	assert.NoError(t, err)
	assert.True(t, inst.Paid)
	assert.True(t, inst.Late)
	assert.Equal(t, "UPI-42", inst.Reference)

	// Already paid is a caller bug, never silently corrected.
	err = inst.MarkPaid(decimal.MustParse("2500"), date(2026, time.January, 21), "UPI-43")
	assert.ErrorIs(t, err, domain.ErrInstallmentPaid)

	onTime := domain.Installment{Number: 1, Amount: decimal.MustParse("2500"), DueDate: due}
	err = onTime.MarkPaid(decimal.MustParse("2500"), due, "")
	assert.NoError(t, err)
	assert.False(t, onTime.Late)
}

func TestInstallment_IsOverdue(t *testing.T) {
	inst := domain.Installment{Number: 1, DueDate: date(2026, time.January, 15)}

	assert.False(t, inst.IsOverdue(date(2026, time.January, 15)))
	assert.True(t, inst.IsOverdue(date(2026, time.January, 16)))
	assert.Equal(t, 5, inst.DaysOverdue(date(2026, time.January, 20)))

	paid := inst
	paidDate := date(2026, time.January, 10)
	paid.Paid = true
	paid.PaidDate = &paidDate
	assert.False(t, paid.IsOverdue(date(2026, time.February, 1)))
}

func TestOrder_InDefault(t *testing.T) {
	order := domain.Order{Number: "ORD-20260101-0001", Status: domain.OrderStatusApproved}
	installments := []*domain.Installment{
		{Number: 1, DueDate: date(2026, time.January, 8), Paid: true},
		{Number: 2, DueDate: date(2026, time.January, 15)},
	}

	// Overdue but inside the grace window.
	assert.False(t, order.InDefault(installments, date(2026, time.February, 1)))
	// Past due date plus grace.
	assert.True(t, order.InDefault(installments, date(2026, time.February, 20)))
	// Paid installments never count.
	assert.False(t, order.InDefault(installments[:1], date(2026, time.June, 1)))
}
