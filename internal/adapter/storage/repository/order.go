package repository

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/shopcredit/creditledger/internal/core/domain"
)

const orderColumns = "number, account_id, counterparty_id, total_amount, " +
	"installment_count, status, order_date, due_date, approval_date, delivery_date"

// nextOrderNumber allocates the next ORD-YYYYMMDD-NNNN for the day.
// The read locks today's tail row; the very first order of a day races
// on the primary key instead and surfaces as ErrConflictingData, which
// the caller may retry.
func (r *Repository) nextOrderNumber(ctx context.Context, tx pgx.Tx, orderDate time.Time) (domain.OrderNumber, error) {
	prefix := fmt.Sprintf("ORD-%s-", orderDate.Format("20060102"))

	statement := r.db.QueryBuilder.
		Select("number").
		From("orders").
		Where(sq.Like{"number": prefix + "%"}).
		OrderBy("number DESC").
		Limit(1).
		Suffix("FOR UPDATE")

	sql, args, err := statement.ToSql()
	if err != nil {
		return "", err
	}

	seq := 1
	var last string
	err = tx.QueryRow(ctx, sql, args...).Scan(&last)
	if err == nil {
		parts := strings.Split(last, "-")
		lastSeq, err := strconv.Atoi(parts[len(parts)-1])
		if err != nil {
			return "", err
		}
		seq = lastSeq + 1
	} else if err != pgx.ErrNoRows {
		return "", err
	}

	return domain.OrderNumber(fmt.Sprintf("%s%04d", prefix, seq)), nil
}

func (r *Repository) CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		number, err := r.nextOrderNumber(ctx, tx, order.OrderDate)
		if err != nil {
			return err
		}
		order.Number = number

		statement := r.db.QueryBuilder.Insert("orders").
			Columns("number", "account_id", "counterparty_id", "total_amount",
				"installment_count", "status", "order_date", "due_date").
			Values(order.Number, order.AccountID, order.CounterpartyID, order.TotalAmount,
				order.InstallmentCount, order.Status, order.OrderDate, order.DueDate)

		sql, args, err := statement.ToSql()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, sql, args...); err != nil {
			return err
		}

		for _, item := range order.Items {
			statement := r.db.QueryBuilder.Insert("order_items").
				Columns("order_number", "product_name", "quantity", "unit_price", "total").
				Values(order.Number, item.ProductName, item.Quantity, item.UnitPrice, item.Total)

			sql, args, err := statement.ToSql()
			if err != nil {
				return err
			}
			if _, err := tx.Exec(ctx, sql, args...); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrConflictingData
		}
		return nil, err
	}

	return order, nil
}

func (r *Repository) ReadOrder(ctx context.Context, number domain.OrderNumber) (*domain.Order, error) {
	order, err := r.readOrder(ctx, r.db, number)
	if err != nil {
		return nil, err
	}

	items, err := r.listOrderItems(ctx, r.db, number)
	if err != nil {
		return nil, err
	}
	order.Items = items

	return order, nil
}

func (r *Repository) readOrder(ctx context.Context, q querier, number domain.OrderNumber) (*domain.Order, error) {
	statement := r.db.QueryBuilder.
		Select(orderColumns).
		From("orders").
		Where(sq.Eq{"number": number})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	order, err := scanOrder(q.QueryRow(ctx, sql, args...))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}

	return order, nil
}

func scanOrder(row pgx.Row) (*domain.Order, error) {
	order := domain.Order{}
	err := row.Scan(
		&order.Number,
		&order.AccountID,
		&order.CounterpartyID,
		&order.TotalAmount,
		&order.InstallmentCount,
		&order.Status,
		&order.OrderDate,
		&order.DueDate,
		&order.ApprovalDate,
		&order.DeliveryDate,
	)
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *Repository) listOrderItems(ctx context.Context, q querier, number domain.OrderNumber) ([]domain.OrderItem, error) {
	statement := r.db.QueryBuilder.
		Select("product_name", "quantity", "unit_price", "total").
		From("order_items").
		Where(sq.Eq{"order_number": number}).
		OrderBy("id")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}

	items := make([]domain.OrderItem, 0)
	for rows.Next() {
		item := domain.OrderItem{}
		err := rows.Scan(&item.ProductName, &item.Quantity, &item.UnitPrice, &item.Total)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

func (r *Repository) ListOrdersByAccount(ctx context.Context, accountID uint64) ([]*domain.Order, error) {
	return r.listOrders(ctx, sq.Eq{"account_id": accountID})
}

func (r *Repository) ListOrdersByStatus(ctx context.Context, status domain.OrderStatus) ([]*domain.Order, error) {
	return r.listOrders(ctx, sq.Eq{"status": status})
}

func (r *Repository) listOrders(ctx context.Context, where sq.Eq) ([]*domain.Order, error) {
	statement := r.db.QueryBuilder.
		Select(orderColumns).
		From("orders").
		Where(where).
		OrderBy("number")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}

	list := make([]*domain.Order, 0)
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, order)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return list, nil
}

func (r *Repository) updateOrder(ctx context.Context, q querier, order *domain.Order) error {
	statement := r.db.QueryBuilder.Update("orders").
		Set("status", order.Status).
		Set("approval_date", order.ApprovalDate).
		Set("delivery_date", order.DeliveryDate).
		Where(sq.Eq{"number": order.Number})

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
