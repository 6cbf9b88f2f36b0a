package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopcredit/creditledger/internal/adapter/storage"
	"github.com/shopcredit/creditledger/internal/core/domain"
	"github.com/shopcredit/creditledger/internal/core/port"
)

type Repository struct {
	db *storage.DB
}

func NewRepository(db *storage.DB) (*Repository, error) {
	return &Repository{db: db}, nil
}

// querier is satisfied by both the pool and a transaction, so the row
// readers below work inside and outside UpdateAccountByOrder.
type querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func isUniqueViolation(err error) bool {
	pgErr, ok := err.(*pgconn.PgError)
	return ok && pgErr.Code == pgerrcode.UniqueViolation
}

func (r *Repository) CreateAccount(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	statement := r.db.QueryBuilder.Insert("accounts").
		Columns("name", "phone", "verified", "credit_limit", "outstanding", "risk_category", "created_at").
		Values(account.Name, account.Phone, account.Verified,
			account.CreditLimit, account.Outstanding, account.RiskCategory, account.CreatedAt).
		Suffix("returning id")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&account.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrConflictingData
		}
		return nil, err
	}

	return account, nil
}

func (r *Repository) ReadAccount(ctx context.Context, accountID uint64) (*domain.Account, error) {
	return r.readAccount(ctx, r.db, accountID)
}

func (r *Repository) readAccount(ctx context.Context, q querier, accountID uint64) (*domain.Account, error) {
	statement := r.db.QueryBuilder.
		Select("id", "name", "phone", "verified", "credit_limit",
			"outstanding", "risk_category", "version", "created_at").
		From("accounts").
		Where(sq.Eq{"id": accountID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	account := domain.Account{}

	err = q.QueryRow(ctx, sql, args...).Scan(
		&account.ID,
		&account.Name,
		&account.Phone,
		&account.Verified,
		&account.CreditLimit,
		&account.Outstanding,
		&account.RiskCategory,
		&account.Version,
		&account.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}

	return &account, nil
}

// UpdateAccountProfile writes the externally owned account fields. The
// outstanding balance is deliberately not touched here.
func (r *Repository) UpdateAccountProfile(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	statement := r.db.QueryBuilder.Update("accounts").
		Set("name", account.Name).
		Set("phone", account.Phone).
		Set("verified", account.Verified).
		Set("credit_limit", account.CreditLimit).
		Set("risk_category", account.RiskCategory).
		Where(sq.Eq{"id": account.ID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, domain.ErrDataNotFound
	}

	return r.ReadAccount(ctx, account.ID)
}

// UpdateAccountByOrder is the transaction boundary of every state
// transition. The account row carries a version column; the balance
// write is a compare-and-swap on it, so two interleaved transitions on
// the same account cannot both commit.
func (r *Repository) UpdateAccountByOrder(ctx context.Context,
	accountID uint64, number domain.OrderNumber, updateFn port.UpdateAccountFn) (*domain.Account, error) {
	var account *domain.Account

	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		acc, err := r.readAccount(ctx, tx, accountID)
		if err != nil {
			return err
		}
		order, err := r.readOrder(ctx, tx, number)
		if err != nil {
			return err
		}
		installments, err := r.listInstallmentsByOrder(ctx, tx, number)
		if err != nil {
			return err
		}

		readVersion := acc.Version

		effects, err := updateFn(acc, order, installments)
		if err != nil {
			return err
		}

		statement := r.db.QueryBuilder.Update("accounts").
			Set("outstanding", acc.Outstanding).
			Set("version", readVersion+1).
			Where(sq.Eq{"id": acc.ID, "version": readVersion})

		sql, args, err := statement.ToSql()
		if err != nil {
			return err
		}
		tag, err := tx.Exec(ctx, sql, args...)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return domain.ErrConcurrentModification
		}
		acc.Version = readVersion + 1

		if effects.Order != nil {
			if err := r.updateOrder(ctx, tx, effects.Order); err != nil {
				return err
			}
		}
		if len(effects.NewInstallments) > 0 {
			if err := r.insertInstallments(ctx, tx, effects.NewInstallments); err != nil {
				return err
			}
		}
		if effects.PaidInstallment != nil {
			if err := r.updateInstallment(ctx, tx, effects.PaidInstallment); err != nil {
				return err
			}
		}
		if effects.Entry != nil {
			if err := r.insertLedgerEntry(ctx, tx, effects.Entry); err != nil {
				return err
			}
		}

		account = acc
		return nil
	})
	if err != nil {
		return nil, err
	}

	return account, nil
}
