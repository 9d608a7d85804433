package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/nmwangik/dukapay/internal/order"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

const selectOrderColumns = `
	o.id, o.customer_id, o.order_date, o.total_amount, o.paid_amount, o.remaining_amount,
	o.status, o.production_status, o.payment_status, o.version, o.created_at, o.updated_at
`

func scanOrder(s scanner) (*order.Order, error) {
	var o order.Order

	var status, productionStatus, paymentStatus string

	if err := s.Scan(
		&o.ID, &o.CustomerID, &o.Date, &o.TotalAmount, &o.PaidAmount, &o.RemainingAmount,
		&status, &productionStatus, &paymentStatus, &o.Version, &o.CreatedAt, &o.UpdatedAt,
	); err != nil {
		return nil, err
	}

	o.Status = order.Status(status)
	o.ProductionStatus = order.Status(productionStatus)
	o.PaymentStatus = order.PaymentStatus(paymentStatus)

	return &o, nil
}

// CreateOrder inserts the order and its items atomically. The order
// starts at version 1.
func (s *Store) CreateOrder(ctx context.Context, o *order.Order) error {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer dbTx.Rollback()

	orderQuery := `
		INSERT INTO orders (customer_id, order_date, total_amount, paid_amount, remaining_amount,
			status, production_status, payment_status, version, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, 1, NOW())
		RETURNING id, version, created_at
	`

	err = dbTx.QueryRowContext(ctx, orderQuery,
		o.CustomerID,
		o.Date,
		o.TotalAmount,
		o.PaidAmount,
		o.RemainingAmount,
		o.Status,
		o.ProductionStatus,
		o.PaymentStatus,
	).Scan(&o.ID, &o.Version, &o.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating order: %w", err)
	}

	itemQuery := `
		INSERT INTO order_items (order_id, product_id, product_name, quantity, price)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	for _, item := range o.Items {
		item.OrderID = o.ID

		if err := dbTx.QueryRowContext(ctx, itemQuery,
			item.OrderID, item.ProductID, item.ProductName, item.Quantity, item.Price,
		).Scan(&item.ID); err != nil {
			return fmt.Errorf("creating order item: %w", err)
		}
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("committing order: %w", err)
	}

	return nil
}

func (s *Store) GetOrder(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	query := `SELECT ` + selectOrderColumns + ` FROM orders o WHERE o.id = $1`

	o, err := scanOrder(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, order.ErrNotFound
		}

		return nil, fmt.Errorf("getting order: %w", err)
	}

	if err := s.loadItems(ctx, o); err != nil {
		return nil, err
	}

	return o, nil
}

func (s *Store) loadItems(ctx context.Context, o *order.Order) error {
	query := `
		SELECT id, order_id, product_id, product_name, quantity, price
		FROM order_items
		WHERE order_id = $1
		ORDER BY id
	`

	rows, err := s.db.QueryContext(ctx, query, o.ID)
	if err != nil {
		return fmt.Errorf("loading order items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item order.Item
		if err := rows.Scan(
			&item.ID, &item.OrderID, &item.ProductID, &item.ProductName, &item.Quantity, &item.Price,
		); err != nil {
			return fmt.Errorf("scanning order item: %w", err)
		}

		o.Items = append(o.Items, &item)
	}

	return rows.Err()
}

func (s *Store) ListOrders(ctx context.Context, filter order.ListFilter) ([]*order.Order, error) {
	query := `SELECT ` + selectOrderColumns + `
		FROM orders o
		JOIN customers c ON c.id = o.customer_id
		WHERE TRUE`

	var args []any

	argIdx := 1

	if filter.CustomerName != nil {
		query += fmt.Sprintf(" AND c.name ILIKE '%%' || $%d || '%%'", argIdx)

		args = append(args, *filter.CustomerName)
		argIdx++
	}

	if filter.Date != nil {
		query += fmt.Sprintf(" AND o.order_date = $%d", argIdx)

		args = append(args, *filter.Date)
		argIdx++
	}

	query += " ORDER BY o.order_date ASC, o.created_at ASC"

	return s.queryOrders(ctx, query, args...)
}

// ListUnmatchedByPaymentNumber returns orders with a positive remaining
// balance whose customer either uses the number as their primary phone
// or has it registered as a payment number.
func (s *Store) ListUnmatchedByPaymentNumber(ctx context.Context, paymentNumber string) ([]*order.Order, error) {
	query := `SELECT ` + selectOrderColumns + `
		FROM orders o
		JOIN customers c ON c.id = o.customer_id
		WHERE o.remaining_amount > 0
		  AND (c.number = $1 OR EXISTS (
			SELECT 1 FROM payment_details pd
			WHERE pd.customer_id = c.id AND pd.payment_number = $1
		  ))
		ORDER BY o.order_date ASC`

	return s.queryOrders(ctx, query, paymentNumber)
}

func (s *Store) queryOrders(ctx context.Context, query string, args ...any) ([]*order.Order, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing orders: %w", err)
	}
	defer rows.Close()

	var orders []*order.Order

	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning order: %w", err)
		}

		orders = append(orders, o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating orders: %w", err)
	}

	for _, o := range orders {
		if err := s.loadItems(ctx, o); err != nil {
			return nil, err
		}
	}

	return orders, nil
}

// UpdateOrder writes the order's scalar fields only if the stored
// version still matches o.Version, bumping the version on success.
// A concurrent writer winning the race surfaces as ErrVersionConflict.
func (s *Store) UpdateOrder(ctx context.Context, o *order.Order) error {
	query := `
		UPDATE orders
		SET total_amount = $1, paid_amount = $2, remaining_amount = $3,
			status = $4, production_status = $5, payment_status = $6,
			version = version + 1, updated_at = NOW()
		WHERE id = $7 AND version = $8
	`

	res, err := s.db.ExecContext(ctx, query,
		o.TotalAmount,
		o.PaidAmount,
		o.RemainingAmount,
		o.Status,
		o.ProductionStatus,
		o.PaymentStatus,
		o.ID,
		o.Version,
	)
	if err != nil {
		return fmt.Errorf("updating order: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating order: %w", err)
	}

	if affected == 0 {
		var exists bool
		if err := s.db.QueryRowContext(ctx,
			"SELECT EXISTS (SELECT 1 FROM orders WHERE id = $1)", o.ID,
		).Scan(&exists); err != nil {
			return fmt.Errorf("checking order existence: %w", err)
		}

		if !exists {
			return order.ErrNotFound
		}

		return order.ErrVersionConflict
	}

	o.Version++

	return nil
}
