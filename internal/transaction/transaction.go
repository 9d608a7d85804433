package transaction

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrNotFound = errors.New("transaction not found")
	// ErrDuplicate means the external transaction id was already
	// processed. The unique constraint on the column is the real
	// enforcement point; the in-core probe is a fast path.
	ErrDuplicate = errors.New("transaction already processed")
	// ErrMatching wraps any unexpected failure inside the matching
	// algorithm; the cause is preserved for diagnostics.
	ErrMatching = errors.New("transaction matching failed")
)

// Status is the reconciliation outcome of an SMS transaction.
type Status string

const (
	StatusPending          Status = "PENDING"
	StatusMatched          Status = "MATCHED"
	StatusPartiallyMatched Status = "PARTIALLY_MATCHED"
	StatusUnmatched        Status = "UNMATCHED"
)

// Transaction is one inbound M-PESA payment notification. TransactionID
// is the externally assigned idempotency key and never changes; only
// OrderID and Status are mutated, by the matching engine.
type Transaction struct {
	ID              uuid.UUID
	TransactionID   string
	Amount          decimal.Decimal
	SenderName      string
	SenderNumber    string
	TransactionDate time.Time
	RawMessage      string
	// OrderID links the primary (oldest) order the payment was applied
	// to, once matched.
	OrderID   *uuid.UUID
	Status    Status
	CreatedAt time.Time
}
