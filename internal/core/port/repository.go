package port

import (
	"context"

	"github.com/shopcredit/creditledger/internal/core/domain"
)

//go:generate mockgen -source=repository.go -destination=mock/repository.go -package=mock

type Repository interface {
	// Account
	CreateAccount(ctx context.Context, account *domain.Account) (*domain.Account, error)
	ReadAccount(ctx context.Context, accountID uint64) (*domain.Account, error)
	UpdateAccountProfile(ctx context.Context, account *domain.Account) (*domain.Account, error)

	// Order
	CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error)
	ReadOrder(ctx context.Context, number domain.OrderNumber) (*domain.Order, error)
	ListOrdersByAccount(ctx context.Context, accountID uint64) ([]*domain.Order, error)
	ListOrdersByStatus(ctx context.Context, status domain.OrderStatus) ([]*domain.Order, error)

	// Installment
	ListInstallmentsByOrder(ctx context.Context, number domain.OrderNumber) ([]*domain.Installment, error)
	ListUnpaidInstallmentsByAccount(ctx context.Context, accountID uint64) ([]*domain.Installment, error)

	// Ledger
	ListLedgerByAccount(ctx context.Context, accountID uint64) ([]*domain.LedgerEntry, error)

	// Credit-limit suggestions, append-only, most recent wins
	CreateCreditSuggestion(ctx context.Context, suggestion *domain.CreditLimitSuggestion) (*domain.CreditLimitSuggestion, error)
	LatestCreditSuggestion(ctx context.Context, accountID uint64) (*domain.CreditLimitSuggestion, error)

	// UpdateAccountByOrder loads the account, the order and its
	// installments inside one transaction, runs fn, and persists the
	// returned effects together with the mutated account balance, or
	// rolls everything back. A concurrent writer of the same account
	// surfaces as domain.ErrConcurrentModification.
	UpdateAccountByOrder(ctx context.Context,
		accountID uint64, number domain.OrderNumber, updateFn UpdateAccountFn) (*domain.Account, error)
}

// TransitionEffects is what a state transition wants persisted besides
// the account balance. Nil/empty fields are skipped.
type TransitionEffects struct {
	Order           *domain.Order
	NewInstallments []*domain.Installment
	PaidInstallment *domain.Installment
	Entry           *domain.LedgerEntry
}

type UpdateAccountFn func(account *domain.Account, order *domain.Order,
	installments []*domain.Installment) (*TransitionEffects, error)
