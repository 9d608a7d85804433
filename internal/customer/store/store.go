package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/nmwangik/dukapay/internal/customer"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanCustomer(s scanner) (*customer.Customer, error) {
	var c customer.Customer

	if err := s.Scan(&c.ID, &c.Name, &c.Number, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}

	return &c, nil
}

func (s *Store) CreateCustomer(ctx context.Context, c *customer.Customer) error {
	query := `
		INSERT INTO customers (name, number, created_at)
		VALUES ($1, $2, NOW())
		RETURNING id, created_at
	`

	if err := s.db.QueryRowContext(ctx, query, c.Name, c.Number).Scan(&c.ID, &c.CreatedAt); err != nil {
		return fmt.Errorf("creating customer: %w", err)
	}

	return nil
}

// GetCustomer loads the customer together with their registered payment
// numbers.
func (s *Store) GetCustomer(ctx context.Context, id uuid.UUID) (*customer.Customer, error) {
	query := `SELECT id, name, number, created_at, updated_at FROM customers WHERE id = $1`

	c, err := scanCustomer(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, customer.ErrNotFound
		}

		return nil, fmt.Errorf("getting customer: %w", err)
	}

	if err := s.loadPaymentNumbers(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

func (s *Store) loadPaymentNumbers(ctx context.Context, c *customer.Customer) error {
	query := `
		SELECT id, customer_id, payment_number, COALESCE(mpesa_name, ''), created_at
		FROM payment_details
		WHERE customer_id = $1
		ORDER BY created_at DESC
	`

	rows, err := s.db.QueryContext(ctx, query, c.ID)
	if err != nil {
		return fmt.Errorf("loading payment details: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var pd customer.PaymentDetails
		if err := rows.Scan(&pd.ID, &pd.CustomerID, &pd.PaymentNumber, &pd.MpesaName, &pd.CreatedAt); err != nil {
			return fmt.Errorf("scanning payment details: %w", err)
		}

		c.PaymentNumbers = append(c.PaymentNumbers, &pd)
	}

	return rows.Err()
}

func (s *Store) ListCustomers(ctx context.Context) ([]*customer.Customer, error) {
	query := `SELECT id, name, number, created_at, updated_at FROM customers ORDER BY name ASC`

	return s.queryCustomers(ctx, query)
}

func (s *Store) SearchCustomersByName(ctx context.Context, name string) ([]*customer.Customer, error) {
	query := `
		SELECT id, name, number, created_at, updated_at
		FROM customers
		WHERE name ILIKE '%' || $1 || '%'
		ORDER BY name ASC
	`

	return s.queryCustomers(ctx, query, name)
}

func (s *Store) SearchCustomersByNumber(ctx context.Context, number string) ([]*customer.Customer, error) {
	query := `
		SELECT id, name, number, created_at, updated_at
		FROM customers
		WHERE number LIKE '%' || $1 || '%'
		ORDER BY name ASC
	`

	return s.queryCustomers(ctx, query, number)
}

func (s *Store) queryCustomers(ctx context.Context, query string, args ...any) ([]*customer.Customer, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing customers: %w", err)
	}
	defer rows.Close()

	var customers []*customer.Customer

	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning customer: %w", err)
		}

		customers = append(customers, c)
	}

	return customers, rows.Err()
}

func (s *Store) UpdateCustomer(ctx context.Context, c *customer.Customer) error {
	query := `
		UPDATE customers
		SET name = $1, number = $2, updated_at = NOW()
		WHERE id = $3
	`

	res, err := s.db.ExecContext(ctx, query, c.Name, c.Number, c.ID)
	if err != nil {
		return fmt.Errorf("updating customer: %w", err)
	}

	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return customer.ErrNotFound
	}

	return nil
}

// DeleteCustomer removes the customer; payment_details rows cascade.
func (s *Store) DeleteCustomer(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting customer: %w", err)
	}

	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return customer.ErrNotFound
	}

	return nil
}

func (s *Store) CustomerExists(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	if err := s.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM customers WHERE id = $1)`, id,
	).Scan(&exists); err != nil {
		return false, fmt.Errorf("checking customer existence: %w", err)
	}

	return exists, nil
}

func (s *Store) AddPaymentDetails(ctx context.Context, pd *customer.PaymentDetails) error {
	query := `
		INSERT INTO payment_details (customer_id, payment_number, mpesa_name, created_at)
		VALUES ($1, $2, NULLIF($3, ''), NOW())
		RETURNING id, created_at
	`

	if err := s.db.QueryRowContext(ctx, query,
		pd.CustomerID, pd.PaymentNumber, pd.MpesaName,
	).Scan(&pd.ID, &pd.CreatedAt); err != nil {
		return fmt.Errorf("adding payment details: %w", err)
	}

	return nil
}

func (s *Store) SetPaymentName(ctx context.Context, id uuid.UUID, name string) error {
	query := `UPDATE payment_details SET mpesa_name = $1 WHERE id = $2`

	if _, err := s.db.ExecContext(ctx, query, name, id); err != nil {
		return fmt.Errorf("setting payment name: %w", err)
	}

	return nil
}

func (s *Store) PaymentNumberExists(ctx context.Context, number string) (bool, error) {
	var exists bool
	if err := s.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM payment_details WHERE payment_number = $1)`, number,
	).Scan(&exists); err != nil {
		return false, fmt.Errorf("checking payment number: %w", err)
	}

	return exists, nil
}

func (s *Store) PaymentNumberExistsForOther(ctx context.Context, number string, customerID uuid.UUID) (bool, error) {
	var exists bool
	if err := s.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM payment_details WHERE payment_number = $1 AND customer_id <> $2)`,
		number, customerID,
	).Scan(&exists); err != nil {
		return false, fmt.Errorf("checking payment number owner: %w", err)
	}

	return exists, nil
}
