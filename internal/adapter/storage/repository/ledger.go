package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/shopcredit/creditledger/internal/core/domain"
)

const installmentColumns = "order_number, number, amount, due_date, " +
	"paid, paid_date, amount_paid, late, reference"

func (r *Repository) ListInstallmentsByOrder(ctx context.Context, number domain.OrderNumber) ([]*domain.Installment, error) {
	return r.listInstallmentsByOrder(ctx, r.db, number)
}

func (r *Repository) listInstallmentsByOrder(ctx context.Context, q querier, number domain.OrderNumber) ([]*domain.Installment, error) {
	statement := r.db.QueryBuilder.
		Select(installmentColumns).
		From("installments").
		Where(sq.Eq{"order_number": number}).
		OrderBy("number")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}

	return scanInstallments(rows)
}

func (r *Repository) ListUnpaidInstallmentsByAccount(ctx context.Context, accountID uint64) ([]*domain.Installment, error) {
	statement := r.db.QueryBuilder.
		Select("i.order_number", "i.number", "i.amount", "i.due_date",
			"i.paid", "i.paid_date", "i.amount_paid", "i.late", "i.reference").
		From("installments i").
		Join("orders o ON o.number = i.order_number").
		Where(sq.Eq{"o.account_id": accountID, "i.paid": false}).
		OrderBy("i.due_date", "i.order_number", "i.number")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}

	return scanInstallments(rows)
}

func scanInstallments(rows pgx.Rows) ([]*domain.Installment, error) {
	list := make([]*domain.Installment, 0)
	for rows.Next() {
		inst := domain.Installment{}
		err := rows.Scan(
			&inst.OrderNumber,
			&inst.Number,
			&inst.Amount,
			&inst.DueDate,
			&inst.Paid,
			&inst.PaidDate,
			&inst.AmountPaid,
			&inst.Late,
			&inst.Reference,
		)
		if err != nil {
			return nil, err
		}
		list = append(list, &inst)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return list, nil
}

func (r *Repository) insertInstallments(ctx context.Context, q querier, installments []*domain.Installment) error {
	statement := r.db.QueryBuilder.Insert("installments").
		Columns("order_number", "number", "amount", "due_date", "amount_paid")
	for _, inst := range installments {
		statement = statement.Values(inst.OrderNumber, inst.Number, inst.Amount, inst.DueDate, inst.AmountPaid)
	}

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	_, err = q.Exec(ctx, sql, args...)
	return err
}

func (r *Repository) updateInstallment(ctx context.Context, q querier, inst *domain.Installment) error {
	statement := r.db.QueryBuilder.Update("installments").
		Set("paid", inst.Paid).
		Set("paid_date", inst.PaidDate).
		Set("amount_paid", inst.AmountPaid).
		Set("late", inst.Late).
		Set("reference", inst.Reference).
		Where(sq.Eq{"order_number": inst.OrderNumber, "number": inst.Number})

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNoUpdatedData
	}

	return nil
}

func (r *Repository) insertLedgerEntry(ctx context.Context, q querier, entry *domain.LedgerEntry) error {
	statement := r.db.QueryBuilder.Insert("ledger_entries").
		Columns("id", "account_id", "entry_type", "amount", "order_number",
			"installment_number", "description", "balance_after", "created_at").
		Values(entry.ID, entry.AccountID, entry.Type, entry.Amount, entry.OrderNumber,
			entry.InstallmentNumber, entry.Description, entry.BalanceAfter, entry.CreatedAt)

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	_, err = q.Exec(ctx, sql, args...)
	return err
}

func (r *Repository) ListLedgerByAccount(ctx context.Context, accountID uint64) ([]*domain.LedgerEntry, error) {
	statement := r.db.QueryBuilder.
		Select("id", "account_id", "entry_type", "amount", "order_number",
			"installment_number", "description", "balance_after", "created_at").
		From("ledger_entries").
		Where(sq.Eq{"account_id": accountID}).
		OrderBy("created_at")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}

	list := make([]*domain.LedgerEntry, 0)
	for rows.Next() {
		entry := domain.LedgerEntry{}
		err := rows.Scan(
			&entry.ID,
			&entry.AccountID,
			&entry.Type,
			&entry.Amount,
			&entry.OrderNumber,
			&entry.InstallmentNumber,
			&entry.Description,
			&entry.BalanceAfter,
			&entry.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		list = append(list, &entry)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return list, nil
}

func (r *Repository) CreateCreditSuggestion(ctx context.Context,
	suggestion *domain.CreditLimitSuggestion) (*domain.CreditLimitSuggestion, error) {
	statement := r.db.QueryBuilder.Insert("credit_suggestions").
		Columns("id", "account_id", "suggested_limit", "note", "created_at").
		Values(suggestion.ID, suggestion.AccountID, suggestion.SuggestedLimit,
			suggestion.Note, suggestion.CreatedAt)

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return nil, err
	}

	return suggestion, nil
}

// LatestCreditSuggestion returns the newest row for the account. There
// is no current-flag to flip; most recent wins.
func (r *Repository) LatestCreditSuggestion(ctx context.Context, accountID uint64) (*domain.CreditLimitSuggestion, error) {
	statement := r.db.QueryBuilder.
		Select("id", "account_id", "suggested_limit", "note", "created_at").
		From("credit_suggestions").
		Where(sq.Eq{"account_id": accountID}).
		OrderBy("created_at DESC").
		Limit(1)

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	suggestion := domain.CreditLimitSuggestion{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&suggestion.ID,
		&suggestion.AccountID,
		&suggestion.SuggestedLimit,
		&suggestion.Note,
		&suggestion.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}

	return &suggestion, nil
}
