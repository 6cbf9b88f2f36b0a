package port

import (
	"context"

	"github.com/govalues/decimal"
	"github.com/shopcredit/creditledger/internal/core/domain"
)

type Service interface {
	CreateAccount(ctx context.Context, account *domain.Account) (*domain.Account, error)
	GetAccount(ctx context.Context, accountID uint64) (*domain.Account, error)
	UpdateAccountProfile(ctx context.Context, account *domain.Account) (*domain.Account, error)
	AvailableCredit(ctx context.Context, accountID uint64) (decimal.Decimal, error)

	CreateOrder(ctx context.Context, accountID, counterpartyID uint64,
		items []domain.OrderItem, installmentCount int) (*domain.Order, error)
	ApproveOrder(ctx context.Context, number domain.OrderNumber) ([]*domain.Installment, error)
	DispatchOrder(ctx context.Context, number domain.OrderNumber) (*domain.Order, error)
	DeliverOrder(ctx context.Context, number domain.OrderNumber) (*domain.Order, error)
	CancelOrder(ctx context.Context, number domain.OrderNumber, privileged bool) error
	GetOrder(ctx context.Context, number domain.OrderNumber) (*domain.Order, error)
	ListOrdersByAccount(ctx context.Context, accountID uint64) ([]*domain.Order, error)
	ListOrdersByStatus(ctx context.Context, status domain.OrderStatus) ([]*domain.Order, error)

	RecordPayment(ctx context.Context, number domain.OrderNumber,
		installment int, amount decimal.Decimal, reference string) (*domain.LedgerEntry, error)

	PendingInstallments(ctx context.Context, number domain.OrderNumber) ([]*domain.Installment, error)
	OverdueInstallments(ctx context.Context, accountID uint64) ([]*domain.Installment, error)
	OrderInDefault(ctx context.Context, number domain.OrderNumber) (bool, error)
	AccountStatement(ctx context.Context, accountID uint64) ([]*domain.LedgerEntry, error)

	SuggestCreditLimit(ctx context.Context, accountID uint64,
		limit decimal.Decimal, note string) (*domain.CreditLimitSuggestion, error)
	CurrentCreditSuggestion(ctx context.Context, accountID uint64) (*domain.CreditLimitSuggestion, error)
}
