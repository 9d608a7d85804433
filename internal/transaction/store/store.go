package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/nmwangik/dukapay/internal/transaction"
)

const uniqueViolation = "23505"

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

const selectTransactionColumns = `
	id, transaction_id, amount, sender_name, sender_number, transaction_date,
	COALESCE(raw_message, ''), order_id, status, created_at
`

func scanTransaction(s scanner) (*transaction.Transaction, error) {
	var tx transaction.Transaction

	var status string

	if err := s.Scan(
		&tx.ID, &tx.TransactionID, &tx.Amount, &tx.SenderName, &tx.SenderNumber,
		&tx.TransactionDate, &tx.RawMessage, &tx.OrderID, &status, &tx.CreatedAt,
	); err != nil {
		return nil, err
	}

	tx.Status = transaction.Status(status)

	return &tx, nil
}

// CreateTransaction inserts the transaction. The unique index on
// transaction_id is the idempotency enforcement point: a concurrent
// replay that slipped past the existence probe fails here with
// ErrDuplicate.
func (s *Store) CreateTransaction(ctx context.Context, tx *transaction.Transaction) error {
	query := `
		INSERT INTO sms_transactions
			(transaction_id, amount, sender_name, sender_number, transaction_date, raw_message, order_id, status, created_at)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), $7, $8, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		tx.TransactionID,
		tx.Amount,
		tx.SenderName,
		tx.SenderNumber,
		tx.TransactionDate,
		tx.RawMessage,
		tx.OrderID,
		tx.Status,
	).Scan(&tx.ID, &tx.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return fmt.Errorf("%w: %s", transaction.ErrDuplicate, tx.TransactionID)
		}

		return fmt.Errorf("creating transaction: %w", err)
	}

	return nil
}

func (s *Store) GetTransaction(ctx context.Context, id uuid.UUID) (*transaction.Transaction, error) {
	query := `SELECT ` + selectTransactionColumns + ` FROM sms_transactions WHERE id = $1`

	tx, err := scanTransaction(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, transaction.ErrNotFound
		}

		return nil, fmt.Errorf("getting transaction: %w", err)
	}

	return tx, nil
}

func (s *Store) ListTransactions(ctx context.Context) ([]*transaction.Transaction, error) {
	query := `SELECT ` + selectTransactionColumns + `
		FROM sms_transactions
		ORDER BY transaction_date DESC`

	return s.queryTransactions(ctx, query)
}

func (s *Store) ListTransactionsByStatus(ctx context.Context, status transaction.Status) ([]*transaction.Transaction, error) {
	query := `SELECT ` + selectTransactionColumns + `
		FROM sms_transactions
		WHERE status = $1
		ORDER BY transaction_date DESC`

	return s.queryTransactions(ctx, query, status)
}

func (s *Store) queryTransactions(ctx context.Context, query string, args ...any) ([]*transaction.Transaction, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}
	defer rows.Close()

	var txs []*transaction.Transaction

	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning transaction: %w", err)
		}

		txs = append(txs, tx)
	}

	return txs, rows.Err()
}

// UpdateTransaction writes the mutable fields: order link and status.
func (s *Store) UpdateTransaction(ctx context.Context, tx *transaction.Transaction) error {
	query := `
		UPDATE sms_transactions
		SET order_id = $1, status = $2
		WHERE id = $3
	`

	res, err := s.db.ExecContext(ctx, query, tx.OrderID, tx.Status, tx.ID)
	if err != nil {
		return fmt.Errorf("updating transaction: %w", err)
	}

	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return transaction.ErrNotFound
	}

	return nil
}

func (s *Store) DeleteTransaction(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM sms_transactions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting transaction: %w", err)
	}

	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return transaction.ErrNotFound
	}

	return nil
}

func (s *Store) TransactionExists(ctx context.Context, transactionID string) (bool, error) {
	var exists bool
	if err := s.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM sms_transactions WHERE transaction_id = $1)`, transactionID,
	).Scan(&exists); err != nil {
		return false, fmt.Errorf("checking transaction id: %w", err)
	}

	return exists, nil
}
