package domain

import (
	"time"

	"github.com/govalues/decimal"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "PENDING"
	OrderStatusApproved   OrderStatus = "APPROVED"
	OrderStatusDispatched OrderStatus = "DISPATCHED"
	OrderStatusDelivered  OrderStatus = "DELIVERED"
	OrderStatusCompleted  OrderStatus = "COMPLETED"
	OrderStatusCancelled  OrderStatus = "CANCELLED"
)

// OrderNumber has the form ORD-YYYYMMDD-NNNN, sequential per day.
type OrderNumber string

// DueDays is the fixed repayment window of an order, regardless of how
// many installments it is split into.
const DueDays = 30

// GraceDays past an installment due date before the order counts as in
// default. Advisory only, never stored as a status.
const GraceDays = 30

// Order is the credit-extension unit. It is never deleted, only moved
// to a terminal status.
type Order struct {
	Number           OrderNumber
	AccountID        uint64
	CounterpartyID   uint64
	TotalAmount      decimal.Decimal
	InstallmentCount int
	Status           OrderStatus
	OrderDate        time.Time
	DueDate          time.Time
	ApprovalDate     *time.Time
	DeliveryDate     *time.Time
	Items            []OrderItem
}

// OrderItem is one line of an order. Name and unit price are captured
// at order time, so later catalog changes do not rewrite history.
type OrderItem struct {
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
	Total       decimal.Decimal
}

// transitions is the closed set of allowed status changes. Anything not
// listed here is rejected with InvalidTransitionError.
var transitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:    {OrderStatusApproved, OrderStatusCancelled},
	OrderStatusApproved:   {OrderStatusDispatched, OrderStatusCompleted, OrderStatusCancelled},
	OrderStatusDispatched: {OrderStatusDelivered, OrderStatusCompleted},
	OrderStatusDelivered:  {OrderStatusCompleted},
	OrderStatusCompleted:  {},
	OrderStatusCancelled:  {},
}

// IsTerminal reports whether no transition leads out of the status.
func IsTerminal(status OrderStatus) bool {
	return len(transitions[status]) == 0
}

func CanTransition(from, to OrderStatus) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

func ValidateTransition(from, to OrderStatus) error {
	if !CanTransition(from, to) {
		return &InvalidTransitionError{From: from, To: to}
	}
	return nil
}

// InDefault reports whether the order has an unpaid installment more
// than GraceDays past due at the given date.
func (o *Order) InDefault(installments []*Installment, asOf time.Time) bool {
	for _, inst := range installments {
		if !inst.Paid && asOf.Sub(inst.DueDate) > GraceDays*24*time.Hour {
			return true
		}
	}
	return false
}
