package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/govalues/decimal"
	"github.com/shopcredit/creditledger/internal/core/domain"
	"github.com/shopcredit/creditledger/internal/core/port"
	"go.uber.org/zap"
)

// Service is the credit/EMI lifecycle engine. Every balance-mutating
// transition runs through the repository as one atomic unit scoped to
// the affected account.
type Service struct {
	repo   port.Repository
	clock  port.Clock
	logger *zap.Logger
}

func NewService(repo port.Repository, clock port.Clock, logger *zap.Logger) (*Service, error) {
	return &Service{
		repo:   repo,
		clock:  clock,
		logger: logger,
	}, nil
}

// CreateAccount opens an account with a zero outstanding balance. All
// initialization happens here, in one explicit call — there is no
// implicit on-save hook.
func (s *Service) CreateAccount(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	if account.CreditLimit.IsNeg() {
		return nil, domain.ErrPrecondition
	}
	account.Outstanding = decimal.Zero
	if account.RiskCategory == "" {
		account.RiskCategory = domain.RiskMedium
	}
	account.CreatedAt = s.clock.Now()

	newAccount, err := s.repo.CreateAccount(ctx, account)
	if err != nil {
		if errors.Is(err, domain.ErrConflictingData) {
			return nil, err
		}
		s.logger.Error("Create account", zap.Error(err))
		return nil, domain.ErrInternal
	}

	return newAccount, nil
}

func (s *Service) GetAccount(ctx context.Context, accountID uint64) (*domain.Account, error) {
	account, err := s.repo.ReadAccount(ctx, accountID)
	if err != nil {
		if !errors.Is(err, domain.ErrDataNotFound) {
			s.logger.Error("Read account", zap.Error(err))
		}
		return nil, err
	}
	return account, nil
}

// UpdateAccountProfile writes the externally owned fields: verified
// flag, credit limit and risk category. Lowering a limit below the
// current outstanding is allowed; the target invariant is only enforced
// at credit-extension time.
func (s *Service) UpdateAccountProfile(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	if account.CreditLimit.IsNeg() {
		return nil, domain.ErrPrecondition
	}
	updated, err := s.repo.UpdateAccountProfile(ctx, account)
	if err != nil {
		if !errors.Is(err, domain.ErrDataNotFound) {
			s.logger.Error("Update account profile", zap.Error(err))
		}
		return nil, err
	}
	return updated, nil
}

func (s *Service) AvailableCredit(ctx context.Context, accountID uint64) (decimal.Decimal, error) {
	account, err := s.repo.ReadAccount(ctx, accountID)
	if err != nil {
		return decimal.Zero, err
	}
	return account.AvailableCredit(), nil
}

func (s *Service) GetOrder(ctx context.Context, number domain.OrderNumber) (*domain.Order, error) {
	return s.repo.ReadOrder(ctx, number)
}

func (s *Service) ListOrdersByAccount(ctx context.Context, accountID uint64) ([]*domain.Order, error) {
	list, err := s.repo.ListOrdersByAccount(ctx, accountID)
	if err != nil {
		s.logger.Error("List orders for account", zap.Error(err))
		return nil, err
	}
	return list, nil
}

func (s *Service) ListOrdersByStatus(ctx context.Context, status domain.OrderStatus) ([]*domain.Order, error) {
	list, err := s.repo.ListOrdersByStatus(ctx, status)
	if err != nil {
		s.logger.Error("List orders by status", zap.Error(err))
		return nil, err
	}
	return list, nil
}

// PendingInstallments lists the unpaid part of an order's schedule.
func (s *Service) PendingInstallments(ctx context.Context, number domain.OrderNumber) ([]*domain.Installment, error) {
	list, err := s.repo.ListInstallmentsByOrder(ctx, number)
	if err != nil {
		s.logger.Error("List installments", zap.Error(err))
		return nil, err
	}

	pending := make([]*domain.Installment, 0, len(list))
	for _, inst := range list {
		if !inst.Paid {
			pending = append(pending, inst)
		}
	}
	return pending, nil
}

func (s *Service) OverdueInstallments(ctx context.Context, accountID uint64) ([]*domain.Installment, error) {
	list, err := s.repo.ListUnpaidInstallmentsByAccount(ctx, accountID)
	if err != nil {
		s.logger.Error("List unpaid installments", zap.Error(err))
		return nil, err
	}

	today := s.clock.Today()
	overdue := make([]*domain.Installment, 0, len(list))
	for _, inst := range list {
		if inst.IsOverdue(today) {
			overdue = append(overdue, inst)
		}
	}
	return overdue, nil
}

// OrderInDefault reports the computed, advisory default condition: an
// unpaid installment past due date plus the grace window. Nothing is
// stored and further credit is not gated on it.
func (s *Service) OrderInDefault(ctx context.Context, number domain.OrderNumber) (bool, error) {
	order, err := s.repo.ReadOrder(ctx, number)
	if err != nil {
		return false, err
	}
	installments, err := s.repo.ListInstallmentsByOrder(ctx, number)
	if err != nil {
		return false, err
	}
	return order.InDefault(installments, s.clock.Today()), nil
}

func (s *Service) AccountStatement(ctx context.Context, accountID uint64) ([]*domain.LedgerEntry, error) {
	list, err := s.repo.ListLedgerByAccount(ctx, accountID)
	if err != nil {
		s.logger.Error("List ledger entries", zap.Error(err))
		return nil, err
	}
	return list, nil
}

// SuggestCreditLimit appends an advisory suggestion row. Suggestions
// are never updated in place; the current one is the latest by
// timestamp.
func (s *Service) SuggestCreditLimit(ctx context.Context, accountID uint64,
	limit decimal.Decimal, note string) (*domain.CreditLimitSuggestion, error) {
	if limit.IsNeg() {
		return nil, domain.ErrPrecondition
	}
	if _, err := s.repo.ReadAccount(ctx, accountID); err != nil {
		return nil, err
	}

	suggestion := &domain.CreditLimitSuggestion{
		ID:             uuid.New(),
		AccountID:      accountID,
		SuggestedLimit: limit,
		Note:           note,
		CreatedAt:      s.clock.Now(),
	}
	created, err := s.repo.CreateCreditSuggestion(ctx, suggestion)
	if err != nil {
		s.logger.Error("Create credit suggestion", zap.Error(err))
		return nil, domain.ErrInternal
	}
	return created, nil
}

func (s *Service) CurrentCreditSuggestion(ctx context.Context, accountID uint64) (*domain.CreditLimitSuggestion, error) {
	suggestion, err := s.repo.LatestCreditSuggestion(ctx, accountID)
	if err != nil {
		if !errors.Is(err, domain.ErrDataNotFound) {
			s.logger.Error("Read credit suggestion", zap.Error(err))
		}
		return nil, err
	}
	return suggestion, nil
}

func datePtr(t time.Time) *time.Time {
	return &t
}
