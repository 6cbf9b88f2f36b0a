package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/govalues/decimal"
	"github.com/shopcredit/creditledger/internal/core/domain"
	"github.com/shopcredit/creditledger/internal/core/port"
	"go.uber.org/zap"
)

// CreateOrder validates the credit request and persists a pending
// order. Credit is not drawn here — the ledger is untouched until
// approval. A rejected request never reaches the repository.
func (s *Service) CreateOrder(ctx context.Context, accountID, counterpartyID uint64,
	items []domain.OrderItem, installmentCount int) (*domain.Order, error) {
	if installmentCount == 0 {
		installmentCount = domain.DefaultInstallmentCount
	}
	if installmentCount < 1 || installmentCount > domain.MaxInstallments {
		return nil, domain.ErrPrecondition
	}
	if len(items) == 0 {
		return nil, domain.ErrEmptyOrder
	}

	total := decimal.Zero
	for i := range items {
		if items[i].Quantity < 1 || !items[i].UnitPrice.IsPos() {
			return nil, domain.ErrBadRequest
		}
		quantity, err := decimal.New(int64(items[i].Quantity), 0)
		if err != nil {
			return nil, domain.ErrBadRequest
		}
		lineTotal, err := items[i].UnitPrice.Mul(quantity)
		if err != nil {
			return nil, domain.ErrBadRequest
		}
		items[i].Total = lineTotal

		total, err = total.Add(lineTotal)
		if err != nil {
			return nil, domain.ErrBadRequest
		}
	}
	if !total.IsPos() {
		return nil, domain.ErrNonPositiveAmount
	}

	account, err := s.repo.ReadAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if _, err := s.repo.ReadAccount(ctx, counterpartyID); err != nil {
		return nil, err
	}

	if err := account.CheckCredit(total); err != nil {
		return nil, err
	}

	orderDate := s.clock.Today()
	order := &domain.Order{
		AccountID:        accountID,
		CounterpartyID:   counterpartyID,
		TotalAmount:      total,
		InstallmentCount: installmentCount,
		Status:           domain.OrderStatusPending,
		OrderDate:        orderDate,
		DueDate:          orderDate.AddDate(0, 0, domain.DueDays),
		Items:            items,
	}

	newOrder, err := s.repo.CreateOrder(ctx, order)
	if err != nil {
		s.logger.Error("Create order", zap.Error(err))
		return nil, err
	}

	return newOrder, nil
}

// ApproveOrder is the point credit is actually extended. Schedule
// generation, the ledger append and the balance update commit together
// or not at all.
func (s *Service) ApproveOrder(ctx context.Context, number domain.OrderNumber) ([]*domain.Installment, error) {
	order, err := s.repo.ReadOrder(ctx, number)
	if err != nil {
		return nil, err
	}

	var schedule []*domain.Installment
	_, err = s.repo.UpdateAccountByOrder(ctx, order.AccountID, number,
		func(account *domain.Account, o *domain.Order, _ []*domain.Installment) (*port.TransitionEffects, error) {
			if err := domain.ValidateTransition(o.Status, domain.OrderStatusApproved); err != nil {
				return nil, err
			}

			plan, err := domain.PlanInstallments(o.TotalAmount, o.InstallmentCount, o.OrderDate)
			if err != nil {
				return nil, err
			}
			for _, inst := range plan {
				inst.OrderNumber = o.Number
			}

			if err := account.Draw(o.TotalAmount); err != nil {
				return nil, err
			}

			o.Status = domain.OrderStatusApproved
			o.ApprovalDate = datePtr(s.clock.Today())

			entry := &domain.LedgerEntry{
				ID:           uuid.New(),
				AccountID:    account.ID,
				Type:         domain.EntryCredit,
				Amount:       o.TotalAmount,
				OrderNumber:  &o.Number,
				Description:  fmt.Sprintf("credit order %s approved", o.Number),
				BalanceAfter: account.Outstanding,
				CreatedAt:    s.clock.Now(),
			}

			schedule = plan
			return &port.TransitionEffects{
				Order:           o,
				NewInstallments: plan,
				Entry:           entry,
			}, nil
		})
	if err != nil {
		if errors.Is(err, domain.ErrConcurrentModification) {
			s.logger.Warn("Approve order lost update race", zap.String("order", string(number)))
		}
		return nil, err
	}

	return schedule, nil
}

// DispatchOrder and DeliverOrder are status-only transitions with no
// ledger effect.
func (s *Service) DispatchOrder(ctx context.Context, number domain.OrderNumber) (*domain.Order, error) {
	return s.transitionStatus(ctx, number, domain.OrderStatusDispatched)
}

func (s *Service) DeliverOrder(ctx context.Context, number domain.OrderNumber) (*domain.Order, error) {
	return s.transitionStatus(ctx, number, domain.OrderStatusDelivered)
}

func (s *Service) transitionStatus(ctx context.Context, number domain.OrderNumber,
	to domain.OrderStatus) (*domain.Order, error) {
	order, err := s.repo.ReadOrder(ctx, number)
	if err != nil {
		return nil, err
	}

	var updated *domain.Order
	_, err = s.repo.UpdateAccountByOrder(ctx, order.AccountID, number,
		func(_ *domain.Account, o *domain.Order, _ []*domain.Installment) (*port.TransitionEffects, error) {
			if err := domain.ValidateTransition(o.Status, to); err != nil {
				return nil, err
			}
			o.Status = to
			if to == domain.OrderStatusDelivered {
				o.DeliveryDate = datePtr(s.clock.Today())
			}
			updated = o
			return &port.TransitionEffects{Order: o}, nil
		})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// RecordPayment settles one installment with the amount actually
// received (partial and excess payments are accepted as-is), appends
// the debit ledger entry and shrinks the outstanding balance, floored
// at zero. When the last unpaid installment settles, the order
// completes automatically.
func (s *Service) RecordPayment(ctx context.Context, number domain.OrderNumber,
	installment int, amount decimal.Decimal, reference string) (*domain.LedgerEntry, error) {
	if !amount.IsPos() {
		return nil, domain.ErrNonPositiveAmount
	}

	order, err := s.repo.ReadOrder(ctx, number)
	if err != nil {
		return nil, err
	}

	var entry *domain.LedgerEntry
	_, err = s.repo.UpdateAccountByOrder(ctx, order.AccountID, number,
		func(account *domain.Account, o *domain.Order, installments []*domain.Installment) (*port.TransitionEffects, error) {
			if domain.IsTerminal(o.Status) {
				return nil, &domain.InvalidTransitionError{From: o.Status, To: domain.OrderStatusCompleted}
			}

			var target *domain.Installment
			for _, inst := range installments {
				if inst.Number == installment {
					target = inst
					break
				}
			}
			if target == nil {
				return nil, domain.ErrDataNotFound
			}

			if err := target.MarkPaid(amount, s.clock.Today(), reference); err != nil {
				return nil, err
			}

			if err := account.Repay(amount); err != nil {
				return nil, err
			}

			entry = &domain.LedgerEntry{
				ID:                uuid.New(),
				AccountID:         account.ID,
				Type:              domain.EntryDebit,
				Amount:            amount,
				OrderNumber:       &o.Number,
				InstallmentNumber: &target.Number,
				Description:       fmt.Sprintf("payment for order %s installment %d", o.Number, target.Number),
				BalanceAfter:      account.Outstanding,
				CreatedAt:         s.clock.Now(),
			}

			effects := &port.TransitionEffects{
				PaidInstallment: target,
				Entry:           entry,
			}

			unpaid := 0
			for _, inst := range installments {
				if !inst.Paid {
					unpaid++
				}
			}
			if unpaid == 0 {
				if err := domain.ValidateTransition(o.Status, domain.OrderStatusCompleted); err != nil {
					return nil, err
				}
				o.Status = domain.OrderStatusCompleted
				effects.Order = o
			}

			return effects, nil
		})
	if err != nil {
		if errors.Is(err, domain.ErrConcurrentModification) {
			s.logger.Warn("Record payment lost update race", zap.String("order", string(number)))
		}
		return nil, err
	}

	return entry, nil
}

// CancelOrder closes a pending order without ledger effect. Cancelling
// an approved order is privileged and reverses the credit extension
// with a compensating debit.
func (s *Service) CancelOrder(ctx context.Context, number domain.OrderNumber, privileged bool) error {
	order, err := s.repo.ReadOrder(ctx, number)
	if err != nil {
		return err
	}

	_, err = s.repo.UpdateAccountByOrder(ctx, order.AccountID, number,
		func(account *domain.Account, o *domain.Order, _ []*domain.Installment) (*port.TransitionEffects, error) {
			if err := domain.ValidateTransition(o.Status, domain.OrderStatusCancelled); err != nil {
				return nil, err
			}

			effects := &port.TransitionEffects{}
			if o.Status == domain.OrderStatusApproved {
				if !privileged {
					return nil, domain.ErrNotPrivileged
				}
				if err := account.Repay(o.TotalAmount); err != nil {
					return nil, err
				}
				effects.Entry = &domain.LedgerEntry{
					ID:           uuid.New(),
					AccountID:    account.ID,
					Type:         domain.EntryDebit,
					Amount:       o.TotalAmount,
					OrderNumber:  &o.Number,
					Description:  fmt.Sprintf("order %s cancelled, balance restored", o.Number),
					BalanceAfter: account.Outstanding,
					CreatedAt:    s.clock.Now(),
				}
			}

			o.Status = domain.OrderStatusCancelled
			effects.Order = o
			return effects, nil
		})
	return err
}
