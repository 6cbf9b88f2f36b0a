package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/govalues/decimal"
	"github.com/shopcredit/creditledger/internal/core/domain"
	"github.com/shopcredit/creditledger/internal/core/port"
	"github.com/shopcredit/creditledger/internal/core/port/mock"
	"github.com/shopcredit/creditledger/internal/core/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type prepareMocks func(repo *mock.MockRepository)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newTestService(t *testing.T, repo *mock.MockRepository, today time.Time) *service.Service {
	t.Helper()
	mockCtrl := gomock.NewController(t)

	clock := mock.NewMockClock(mockCtrl)
	clock.EXPECT().Today().Return(today).AnyTimes()
	clock.EXPECT().Now().Return(today.Add(12 * time.Hour)).AnyTimes()

	logger, _ := zap.NewProduction()
	s, err := service.NewService(repo, clock, logger)
	require.NoError(t, err)
	return s
}

func verifiedAccount(outstanding string) *domain.Account {
	return &domain.Account{
		ID:          1,
		Name:        "Sharma General Store",
		Verified:    true,
		CreditLimit: decimal.MustParse("10000"),
		Outstanding: decimal.MustParse(outstanding),
		Version:     3,
	}
}

func TestService_CreateOrder(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	today := date(2026, time.January, 1)

	items := []domain.OrderItem{
		{ProductName: "Rice 25kg", Quantity: 4, UnitPrice: decimal.MustParse("1500")},
		{ProductName: "Cooking Oil 5L", Quantity: 5, UnitPrice: decimal.MustParse("800")},
	}

	type createOrderTest struct {
		name      string
		items     []domain.OrderItem
		count     int
		mock      prepareMocks
		expError  error
		expNumber domain.OrderNumber
	}

	tests := []createOrderTest{
		{
			name:  "Create good order",
			items: items,
			count: 4,
			mock: func(repo *mock.MockRepository) {
				repo.EXPECT().ReadAccount(gomock.Any(), uint64(1)).
					Return(verifiedAccount("0"), nil)
				repo.EXPECT().ReadAccount(gomock.Any(), uint64(2)).
					Return(&domain.Account{ID: 2, Verified: true}, nil)
				repo.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, order *domain.Order) (*domain.Order, error) {
						assert.Equal(t, domain.OrderStatusPending, order.Status)
						assert.Equal(t, 0, order.TotalAmount.Cmp(decimal.MustParse("10000")))
						assert.Equal(t, today, order.OrderDate)
						assert.Equal(t, today.AddDate(0, 0, 30), order.DueDate)
						order.Number = "ORD-20260101-0001"
						return order, nil
					})
			},
			expError:  nil,
			expNumber: "ORD-20260101-0001",
		},
		{
			name:  "Insufficient credit",
			items: items,
			count: 4,
			mock: func(repo *mock.MockRepository) {
				// 10000 requested against 10000 limit with 4000 out.
				repo.EXPECT().ReadAccount(gomock.Any(), uint64(1)).
					Return(verifiedAccount("4000"), nil)
				repo.EXPECT().ReadAccount(gomock.Any(), uint64(2)).
					Return(&domain.Account{ID: 2, Verified: true}, nil)
			},
			expError: domain.ErrInsufficientCredit,
		},
		{
			name:  "Exactly the available credit is accepted",
			items: []domain.OrderItem{{ProductName: "Sugar 50kg", Quantity: 1, UnitPrice: decimal.MustParse("6000")}},
			count: 2,
			mock: func(repo *mock.MockRepository) {
				repo.EXPECT().ReadAccount(gomock.Any(), uint64(1)).
					Return(verifiedAccount("4000"), nil)
				repo.EXPECT().ReadAccount(gomock.Any(), uint64(2)).
					Return(&domain.Account{ID: 2, Verified: true}, nil)
				repo.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, order *domain.Order) (*domain.Order, error) {
						order.Number = "ORD-20260101-0002"
						return order, nil
					})
			},
			expError:  nil,
			expNumber: "ORD-20260101-0002",
		},
		{
			name:  "Unverified account",
			items: items,
			count: 4,
			mock: func(repo *mock.MockRepository) {
				account := verifiedAccount("0")
				account.Verified = false
				repo.EXPECT().ReadAccount(gomock.Any(), uint64(1)).Return(account, nil)
				repo.EXPECT().ReadAccount(gomock.Any(), uint64(2)).
					Return(&domain.Account{ID: 2, Verified: true}, nil)
			},
			expError: domain.ErrAccountNotVerified,
		},
		{
			name:     "No line items",
			items:    nil,
			count:    4,
			mock:     func(repo *mock.MockRepository) {},
			expError: domain.ErrEmptyOrder,
		},
		{
			name:     "Installment count out of range",
			items:    items,
			count:    13,
			mock:     func(repo *mock.MockRepository) {},
			expError: domain.ErrPrecondition,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			repo := mock.NewMockRepository(mockCtrl)
			test.mock(repo)

			s := newTestService(t, repo, today)

			order, err := s.CreateOrder(context.Background(), 1, 2, test.items, test.count)

			assert.Equal(t, test.expError, err)
			if test.expError == nil {
				require.NotNil(t, order)
				assert.Equal(t, test.expNumber, order.Number)
			} else {
				assert.Nil(t, order)
			}
		})
	}
}

func TestService_ApproveOrder(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	today := date(2026, time.January, 2)

	pendingOrder := func() *domain.Order {
		return &domain.Order{
			Number:           "ORD-20260101-0001",
			AccountID:        1,
			CounterpartyID:   2,
			TotalAmount:      decimal.MustParse("10000"),
			InstallmentCount: 4,
			Status:           domain.OrderStatusPending,
			OrderDate:        date(2026, time.January, 1),
			DueDate:          date(2026, time.January, 31),
		}
	}

	t.Run("Approve extends credit atomically", func(t *testing.T) {
		repo := mock.NewMockRepository(mockCtrl)
		account := verifiedAccount("0")
		order := pendingOrder()

		var effects *port.TransitionEffects
		repo.EXPECT().ReadOrder(gomock.Any(), order.Number).Return(order, nil)
		repo.EXPECT().UpdateAccountByOrder(gomock.Any(), uint64(1), order.Number, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uint64, _ domain.OrderNumber,
				fn port.UpdateAccountFn) (*domain.Account, error) {
				var err error
				effects, err = fn(account, order, nil)
				if err != nil {
					return nil, err
				}
				return account, nil
			})

		s := newTestService(t, repo, today)

		schedule, err := s.ApproveOrder(context.Background(), order.Number)
		require.NoError(t, err)
		require.Len(t, schedule, 4)

		assert.Equal(t, domain.OrderStatusApproved, order.Status)
		require.NotNil(t, order.ApprovalDate)
		assert.Equal(t, today, *order.ApprovalDate)
		assert.Equal(t, 0, account.Outstanding.Cmp(decimal.MustParse("10000")))

		require.NotNil(t, effects)
		assert.Len(t, effects.NewInstallments, 4)
		require.NotNil(t, effects.Entry)
		assert.Equal(t, domain.EntryCredit, effects.Entry.Type)
		assert.Equal(t, 0, effects.Entry.Amount.Cmp(decimal.MustParse("10000")))
		assert.Equal(t, 0, effects.Entry.BalanceAfter.Cmp(decimal.MustParse("10000")))

		for _, inst := range schedule {
			assert.Equal(t, order.Number, inst.OrderNumber)
		}
	})

	t.Run("Second approve is rejected without side effects", func(t *testing.T) {
		repo := mock.NewMockRepository(mockCtrl)
		account := verifiedAccount("10000")
		order := pendingOrder()
		order.Status = domain.OrderStatusApproved

		repo.EXPECT().ReadOrder(gomock.Any(), order.Number).Return(order, nil)
		repo.EXPECT().UpdateAccountByOrder(gomock.Any(), uint64(1), order.Number, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uint64, _ domain.OrderNumber,
				fn port.UpdateAccountFn) (*domain.Account, error) {
				effects, err := fn(account, order, nil)
				assert.Nil(t, effects)
				return nil, err
			})

		s := newTestService(t, repo, today)

		schedule, err := s.ApproveOrder(context.Background(), order.Number)
		assert.Nil(t, schedule)
		assert.ErrorIs(t, err, domain.ErrInvalidTransition)
		// Balance untouched by the rejected call.
		assert.Equal(t, 0, account.Outstanding.Cmp(decimal.MustParse("10000")))
	})

	t.Run("Lost update race surfaces as concurrent modification", func(t *testing.T) {
		repo := mock.NewMockRepository(mockCtrl)
		order := pendingOrder()

		repo.EXPECT().ReadOrder(gomock.Any(), order.Number).Return(order, nil)
		repo.EXPECT().UpdateAccountByOrder(gomock.Any(), uint64(1), order.Number, gomock.Any()).
			Return(nil, domain.ErrConcurrentModification)

		s := newTestService(t, repo, today)

		_, err := s.ApproveOrder(context.Background(), order.Number)
		assert.ErrorIs(t, err, domain.ErrConcurrentModification)
	})
}

func approvedOrder() *domain.Order {
	return &domain.Order{
		Number:           "ORD-20260101-0001",
		AccountID:        1,
		CounterpartyID:   2,
		TotalAmount:      decimal.MustParse("10000"),
		InstallmentCount: 4,
		Status:           domain.OrderStatusApproved,
		OrderDate:        date(2026, time.January, 1),
		DueDate:          date(2026, time.January, 31),
	}
}

func fourInstallments() []*domain.Installment {
	list := make([]*domain.Installment, 0, 4)
	for i := 1; i <= 4; i++ {
		list = append(list, &domain.Installment{
			OrderNumber: "ORD-20260101-0001",
			Number:      i,
			Amount:      decimal.MustParse("2500"),
			DueDate:     date(2026, time.January, 1).AddDate(0, 0, 7*i),
			AmountPaid:  decimal.Zero,
		})
	}
	return list
}

func expectUpdate(repo *mock.MockRepository, account *domain.Account,
	order *domain.Order, installments []*domain.Installment) {
	repo.EXPECT().ReadOrder(gomock.Any(), order.Number).Return(order, nil)
	repo.EXPECT().UpdateAccountByOrder(gomock.Any(), account.ID, order.Number, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uint64, _ domain.OrderNumber,
			fn port.UpdateAccountFn) (*domain.Account, error) {
			if _, err := fn(account, order, installments); err != nil {
				return nil, err
			}
			return account, nil
		})
}

func TestService_RecordPayment(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	t.Run("On-time payment shrinks outstanding", func(t *testing.T) {
		repo := mock.NewMockRepository(mockCtrl)
		account := verifiedAccount("10000")
		order := approvedOrder()
		installments := fourInstallments()

		expectUpdate(repo, account, order, installments)
		s := newTestService(t, repo, date(2026, time.January, 8))

		entry, err := s.RecordPayment(context.Background(), order.Number, 1, decimal.MustParse("2500"), "UPI-1001")
		require.NoError(t, err)

		assert.Equal(t, 0, account.Outstanding.Cmp(decimal.MustParse("7500")))
		assert.True(t, installments[0].Paid)
		assert.False(t, installments[0].Late)
		assert.Equal(t, "UPI-1001", installments[0].Reference)

		require.NotNil(t, entry)
		assert.Equal(t, domain.EntryDebit, entry.Type)
		assert.Equal(t, 0, entry.BalanceAfter.Cmp(decimal.MustParse("7500")))
		require.NotNil(t, entry.InstallmentNumber)
		assert.Equal(t, 1, *entry.InstallmentNumber)
		assert.Equal(t, domain.OrderStatusApproved, order.Status)
	})

	t.Run("Late payment sets the late flag", func(t *testing.T) {
		repo := mock.NewMockRepository(mockCtrl)
		account := verifiedAccount("7500")
		order := approvedOrder()
		installments := fourInstallments()
		installments[0].Paid = true

		expectUpdate(repo, account, order, installments)
		// Installment 2 is due Jan 15; paying on Jan 20 is late.
		s := newTestService(t, repo, date(2026, time.January, 20))

		_, err := s.RecordPayment(context.Background(), order.Number, 2, decimal.MustParse("2500"), "")
		require.NoError(t, err)
		assert.True(t, installments[1].Paid)
		assert.True(t, installments[1].Late)
	})

	t.Run("Last payment completes the order", func(t *testing.T) {
		repo := mock.NewMockRepository(mockCtrl)
		account := verifiedAccount("2500")
		order := approvedOrder()
		installments := fourInstallments()
		for _, inst := range installments[:3] {
			inst.Paid = true
		}

		expectUpdate(repo, account, order, installments)
		s := newTestService(t, repo, date(2026, time.January, 29))

		_, err := s.RecordPayment(context.Background(), order.Number, 4, decimal.MustParse("2500"), "")
		require.NoError(t, err)
		assert.Equal(t, domain.OrderStatusCompleted, order.Status)
		assert.Equal(t, 0, account.Outstanding.Cmp(decimal.Zero))
	})

	t.Run("Over-payment clamps the balance at zero", func(t *testing.T) {
		repo := mock.NewMockRepository(mockCtrl)
		account := verifiedAccount("1000")
		order := approvedOrder()
		installments := fourInstallments()

		expectUpdate(repo, account, order, installments)
		s := newTestService(t, repo, date(2026, time.January, 8))

		_, err := s.RecordPayment(context.Background(), order.Number, 1, decimal.MustParse("2500"), "")
		require.NoError(t, err)
		assert.Equal(t, 0, account.Outstanding.Cmp(decimal.Zero))
		assert.Equal(t, 0, installments[0].AmountPaid.Cmp(decimal.MustParse("2500")))
	})

	t.Run("Paying a paid installment fails", func(t *testing.T) {
		repo := mock.NewMockRepository(mockCtrl)
		account := verifiedAccount("7500")
		order := approvedOrder()
		installments := fourInstallments()
		installments[0].Paid = true

		expectUpdate(repo, account, order, installments)
		s := newTestService(t, repo, date(2026, time.January, 9))

		entry, err := s.RecordPayment(context.Background(), order.Number, 1, decimal.MustParse("2500"), "")
		assert.Nil(t, entry)
		assert.ErrorIs(t, err, domain.ErrInstallmentPaid)
	})

	t.Run("Payment on a terminal order fails", func(t *testing.T) {
		repo := mock.NewMockRepository(mockCtrl)
		account := verifiedAccount("0")
		order := approvedOrder()
		order.Status = domain.OrderStatusCancelled
		installments := fourInstallments()

		expectUpdate(repo, account, order, installments)
		s := newTestService(t, repo, date(2026, time.January, 9))

		_, err := s.RecordPayment(context.Background(), order.Number, 1, decimal.MustParse("2500"), "")
		assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	})

	t.Run("Non-positive amount is rejected upfront", func(t *testing.T) {
		repo := mock.NewMockRepository(mockCtrl)
		s := newTestService(t, repo, date(2026, time.January, 9))

		_, err := s.RecordPayment(context.Background(), "ORD-20260101-0001", 1, decimal.Zero, "")
		assert.ErrorIs(t, err, domain.ErrNonPositiveAmount)
	})
}

func TestService_CancelOrder(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	today := date(2026, time.January, 5)

	t.Run("Pending cancel has no ledger effect", func(t *testing.T) {
		repo := mock.NewMockRepository(mockCtrl)
		account := verifiedAccount("0")
		order := approvedOrder()
		order.Status = domain.OrderStatusPending

		repo.EXPECT().ReadOrder(gomock.Any(), order.Number).Return(order, nil)
		var effects *port.TransitionEffects
		repo.EXPECT().UpdateAccountByOrder(gomock.Any(), uint64(1), order.Number, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uint64, _ domain.OrderNumber,
				fn port.UpdateAccountFn) (*domain.Account, error) {
				var err error
				effects, err = fn(account, order, nil)
				if err != nil {
					return nil, err
				}
				return account, nil
			})

		s := newTestService(t, repo, today)

		require.NoError(t, s.CancelOrder(context.Background(), order.Number, false))
		assert.Equal(t, domain.OrderStatusCancelled, order.Status)
		require.NotNil(t, effects)
		assert.Nil(t, effects.Entry)
		assert.Equal(t, 0, account.Outstanding.Cmp(decimal.Zero))
	})

	t.Run("Approved cancel requires privilege", func(t *testing.T) {
		repo := mock.NewMockRepository(mockCtrl)
		account := verifiedAccount("10000")
		order := approvedOrder()

		expectUpdate(repo, account, order, nil)
		s := newTestService(t, repo, today)

		err := s.CancelOrder(context.Background(), order.Number, false)
		assert.ErrorIs(t, err, domain.ErrNotPrivileged)
		assert.Equal(t, domain.OrderStatusApproved, order.Status)
	})

	t.Run("Privileged cancel reverses the credit extension", func(t *testing.T) {
		repo := mock.NewMockRepository(mockCtrl)
		account := verifiedAccount("10000")
		order := approvedOrder()

		repo.EXPECT().ReadOrder(gomock.Any(), order.Number).Return(order, nil)
		var effects *port.TransitionEffects
		repo.EXPECT().UpdateAccountByOrder(gomock.Any(), uint64(1), order.Number, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uint64, _ domain.OrderNumber,
				fn port.UpdateAccountFn) (*domain.Account, error) {
				var err error
				effects, err = fn(account, order, nil)
				if err != nil {
					return nil, err
				}
				return account, nil
			})

		s := newTestService(t, repo, today)

		require.NoError(t, s.CancelOrder(context.Background(), order.Number, true))
		assert.Equal(t, domain.OrderStatusCancelled, order.Status)
		assert.Equal(t, 0, account.Outstanding.Cmp(decimal.Zero))
		require.NotNil(t, effects)
		require.NotNil(t, effects.Entry)
		assert.Equal(t, domain.EntryDebit, effects.Entry.Type)
		assert.Equal(t, 0, effects.Entry.Amount.Cmp(decimal.MustParse("10000")))
	})

	t.Run("Cancelling a completed order fails", func(t *testing.T) {
		repo := mock.NewMockRepository(mockCtrl)
		account := verifiedAccount("0")
		order := approvedOrder()
		order.Status = domain.OrderStatusCompleted

		expectUpdate(repo, account, order, nil)
		s := newTestService(t, repo, today)

		err := s.CancelOrder(context.Background(), order.Number, true)
		assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	})
}

func TestService_StatusOnlyTransitions(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	today := date(2026, time.January, 6)

	t.Run("Dispatch then deliver", func(t *testing.T) {
		repo := mock.NewMockRepository(mockCtrl)
		account := verifiedAccount("10000")
		order := approvedOrder()

		expectUpdate(repo, account, order, nil)
		s := newTestService(t, repo, today)

		dispatched, err := s.DispatchOrder(context.Background(), order.Number)
		require.NoError(t, err)
		assert.Equal(t, domain.OrderStatusDispatched, dispatched.Status)

		expectUpdate(repo, account, order, nil)
		delivered, err := s.DeliverOrder(context.Background(), order.Number)
		require.NoError(t, err)
		assert.Equal(t, domain.OrderStatusDelivered, delivered.Status)
		require.NotNil(t, delivered.DeliveryDate)
		assert.Equal(t, today, *delivered.DeliveryDate)
		// Status-only transitions never move the balance.
		assert.Equal(t, 0, account.Outstanding.Cmp(decimal.MustParse("10000")))
	})

	t.Run("Dispatching a pending order fails", func(t *testing.T) {
		repo := mock.NewMockRepository(mockCtrl)
		account := verifiedAccount("0")
		order := approvedOrder()
		order.Status = domain.OrderStatusPending

		expectUpdate(repo, account, order, nil)
		s := newTestService(t, repo, today)

		_, err := s.DispatchOrder(context.Background(), order.Number)
		assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	})
}

func TestService_Queries(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	today := date(2026, time.February, 20)

	t.Run("Pending installments filters paid", func(t *testing.T) {
		repo := mock.NewMockRepository(mockCtrl)
		installments := fourInstallments()
		installments[0].Paid = true
		repo.EXPECT().ListInstallmentsByOrder(gomock.Any(), domain.OrderNumber("ORD-20260101-0001")).
			Return(installments, nil)

		s := newTestService(t, repo, today)

		pending, err := s.PendingInstallments(context.Background(), "ORD-20260101-0001")
		require.NoError(t, err)
		require.Len(t, pending, 3)
		for _, inst := range pending {
			assert.False(t, inst.Paid)
		}
	})

	t.Run("Overdue installments honor the injected clock", func(t *testing.T) {
		repo := mock.NewMockRepository(mockCtrl)
		installments := fourInstallments()
		repo.EXPECT().ListUnpaidInstallmentsByAccount(gomock.Any(), uint64(1)).
			Return(installments, nil)

		// All four due dates are in January; asOf Feb 20 all overdue.
		s := newTestService(t, repo, today)

		overdue, err := s.OverdueInstallments(context.Background(), 1)
		require.NoError(t, err)
		assert.Len(t, overdue, 4)
	})

	t.Run("Order default is computed, not stored", func(t *testing.T) {
		repo := mock.NewMockRepository(mockCtrl)
		order := approvedOrder()
		installments := fourInstallments()

		repo.EXPECT().ReadOrder(gomock.Any(), order.Number).Return(order, nil)
		repo.EXPECT().ListInstallmentsByOrder(gomock.Any(), order.Number).Return(installments, nil)

		// Installment 1 due Jan 8 + 30 days grace < Feb 20.
		s := newTestService(t, repo, today)

		inDefault, err := s.OrderInDefault(context.Background(), order.Number)
		require.NoError(t, err)
		assert.True(t, inDefault)
	})

	t.Run("Available credit", func(t *testing.T) {
		repo := mock.NewMockRepository(mockCtrl)
		repo.EXPECT().ReadAccount(gomock.Any(), uint64(1)).
			Return(verifiedAccount("4000"), nil)

		s := newTestService(t, repo, today)

		available, err := s.AvailableCredit(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, 0, available.Cmp(decimal.MustParse("6000")))
	})
}

func TestService_CreditSuggestions(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	today := date(2026, time.March, 1)

	t.Run("Suggest and read back the latest", func(t *testing.T) {
		repo := mock.NewMockRepository(mockCtrl)
		repo.EXPECT().ReadAccount(gomock.Any(), uint64(1)).
			Return(verifiedAccount("0"), nil)
		repo.EXPECT().CreateCreditSuggestion(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, s *domain.CreditLimitSuggestion) (*domain.CreditLimitSuggestion, error) {
				assert.Equal(t, uint64(1), s.AccountID)
				assert.False(t, s.CreatedAt.IsZero())
				return s, nil
			})

		s := newTestService(t, repo, today)

		suggestion, err := s.SuggestCreditLimit(context.Background(), 1, decimal.MustParse("15000"), "strong repayment history")
		require.NoError(t, err)
		assert.Equal(t, 0, suggestion.SuggestedLimit.Cmp(decimal.MustParse("15000")))

		repo.EXPECT().LatestCreditSuggestion(gomock.Any(), uint64(1)).Return(suggestion, nil)
		latest, err := s.CurrentCreditSuggestion(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, suggestion, latest)
	})

	t.Run("Negative suggestion is a precondition violation", func(t *testing.T) {
		repo := mock.NewMockRepository(mockCtrl)
		s := newTestService(t, repo, today)

		negative, err := decimal.Zero.Sub(decimal.MustParse("1"))
		require.NoError(t, err)
		_, err = s.SuggestCreditLimit(context.Background(), 1, negative, "")
		assert.ErrorIs(t, err, domain.ErrPrecondition)
	})
}

func TestService_CreateAccount(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	today := date(2026, time.January, 1)

	t.Run("Opens with zero balance and default risk", func(t *testing.T) {
		repo := mock.NewMockRepository(mockCtrl)
		repo.EXPECT().CreateAccount(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, account *domain.Account) (*domain.Account, error) {
				assert.Equal(t, 0, account.Outstanding.Cmp(decimal.Zero))
				assert.Equal(t, domain.RiskMedium, account.RiskCategory)
				account.ID = 7
				return account, nil
			})

		s := newTestService(t, repo, today)

		account, err := s.CreateAccount(context.Background(), &domain.Account{
			Name:        "Gupta Kirana",
			CreditLimit: decimal.MustParse("5000"),
		})
		require.NoError(t, err)
		assert.Equal(t, uint64(7), account.ID)
	})
}
