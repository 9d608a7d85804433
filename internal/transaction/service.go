package transaction

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/nmwangik/dukapay/internal/customer"
	"github.com/nmwangik/dukapay/internal/mpesa"
	"github.com/nmwangik/dukapay/internal/order"
)

//go:generate mockgen -source=service.go -destination=service_mock.go -package=transaction
type Repository interface {
	CreateTransaction(ctx context.Context, tx *Transaction) error
	GetTransaction(ctx context.Context, id uuid.UUID) (*Transaction, error)
	ListTransactions(ctx context.Context) ([]*Transaction, error)
	ListTransactionsByStatus(ctx context.Context, status Status) ([]*Transaction, error)
	UpdateTransaction(ctx context.Context, tx *Transaction) error
	DeleteTransaction(ctx context.Context, id uuid.UUID) error
	TransactionExists(ctx context.Context, transactionID string) (bool, error)
}

// OrderBook is the slice of the order domain the matching engine needs.
type OrderBook interface {
	ListUnmatchedByPaymentNumber(ctx context.Context, paymentNumber string) ([]*order.Order, error)
	ApplyPayment(ctx context.Context, id uuid.UUID, delta decimal.Decimal) (*order.Order, error)
	Get(ctx context.Context, id uuid.UUID) (*order.Order, error)
}

// CustomerRegistry is the slice of the customer domain the matching
// engine needs for resolution and payment-number registration.
type CustomerRegistry interface {
	Get(ctx context.Context, id uuid.UUID) (*customer.Customer, error)
	IsPaymentNumberRegistered(ctx context.Context, number string) (bool, error)
	IsPaymentNumberRegisteredToOther(ctx context.Context, number string, customerID uuid.UUID) (bool, error)
	AddPaymentNumber(ctx context.Context, customerID uuid.UUID, number, mpesaName string) error
	SetPaymentName(ctx context.Context, id uuid.UUID, name string) error
}

// Service is the reconciliation engine: it turns raw SMS text into a
// persisted transaction and pays down the owning customer's open
// orders, oldest first.
type Service struct {
	repo      Repository
	orders    OrderBook
	customers CustomerRegistry
	parser    *mpesa.Parser
}

func NewService(repo Repository, orders OrderBook, customers CustomerRegistry, parser *mpesa.Parser) *Service {
	return &Service{repo: repo, orders: orders, customers: customers, parser: parser}
}

// Process handles one inbound SMS message end to end: parse, idempotency
// probe, match, persist. Validation and duplicate rejections happen
// before any order is touched; a failure during matching leaves no
// transaction row behind.
func (s *Service) Process(ctx context.Context, message string) (*Transaction, error) {
	if strings.TrimSpace(message) == "" {
		return nil, fmt.Errorf("%w: message cannot be empty", mpesa.ErrInvalidMessage)
	}

	payment, err := s.parser.Parse(message, time.Now())
	if err != nil {
		return nil, err
	}

	exists, err := s.repo.TransactionExists(ctx, payment.TransactionID)
	if err != nil {
		return nil, fmt.Errorf("checking transaction id: %w", err)
	}

	if exists {
		return nil, fmt.Errorf("%w: %s", ErrDuplicate, payment.TransactionID)
	}

	tx := &Transaction{
		TransactionID:   payment.TransactionID,
		Amount:          payment.Amount,
		SenderName:      payment.SenderName,
		SenderNumber:    payment.SenderNumber,
		TransactionDate: payment.Timestamp,
		RawMessage:      payment.Raw,
		Status:          StatusPending,
	}

	if err := s.match(ctx, tx); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMatching, err)
	}

	if err := s.repo.CreateTransaction(ctx, tx); err != nil {
		return nil, fmt.Errorf("saving transaction: %w", err)
	}

	slog.Info("processed sms transaction",
		"transaction_id", tx.TransactionID, "status", tx.Status)

	return tx, nil
}

// match resolves the owning customer and allocates the payment across
// that customer's open orders. It only mutates tx (and orders, through
// ApplyPayment); persisting tx is the caller's job.
func (s *Service) match(ctx context.Context, tx *Transaction) error {
	globallyRegistered, err := s.customers.IsPaymentNumberRegistered(ctx, tx.SenderNumber)
	if err != nil {
		return fmt.Errorf("checking payment number registration: %w", err)
	}

	open, err := s.orders.ListUnmatchedByPaymentNumber(ctx, tx.SenderNumber)
	if err != nil {
		return fmt.Errorf("listing unmatched orders: %w", err)
	}

	if len(open) == 0 {
		tx.Status = StatusUnmatched

		reason := "unregistered number and no orders"
		if globallyRegistered {
			reason = "registered number but no unmatched orders"
		}

		slog.Warn("transaction unmatched",
			"transaction_id", tx.TransactionID, "sender_number", tx.SenderNumber, "reason", reason)

		return nil
	}

	byCustomer := make(map[uuid.UUID][]*order.Order)
	for _, o := range open {
		byCustomer[o.CustomerID] = append(byCustomer[o.CustomerID], o)
	}

	var owner *customer.Customer

	if len(byCustomer) > 1 {
		owner, err = s.resolveSharedNumber(ctx, tx, byCustomer)
		if err != nil {
			return err
		}

		if owner == nil {
			// Ambiguity could not be resolved; touch nothing.
			tx.Status = StatusUnmatched
			return nil
		}
	} else {
		for customerID := range byCustomer {
			owner, err = s.customers.Get(ctx, customerID)
			if err != nil {
				return fmt.Errorf("loading customer: %w", err)
			}
		}
	}

	if err := s.ensurePaymentNumber(ctx, tx, owner, globallyRegistered); err != nil {
		return err
	}

	if tx.Status == StatusUnmatched {
		return nil
	}

	return s.allocate(ctx, tx, byCustomer[owner.ID])
}

// resolveSharedNumber disambiguates a phone number shared by several
// customers by exact case-insensitive match of the SMS sender name.
// Returns nil when no single customer matches.
func (s *Service) resolveSharedNumber(ctx context.Context, tx *Transaction, byCustomer map[uuid.UUID][]*order.Order) (*customer.Customer, error) {
	var matches []*customer.Customer

	for customerID := range byCustomer {
		c, err := s.customers.Get(ctx, customerID)
		if err != nil {
			return nil, fmt.Errorf("loading customer: %w", err)
		}

		if strings.EqualFold(c.Name, tx.SenderName) {
			matches = append(matches, c)
		}
	}

	if len(matches) != 1 {
		slog.Warn("cannot determine owning customer for shared payment number",
			"transaction_id", tx.TransactionID,
			"sender_number", tx.SenderNumber,
			"candidates", len(byCustomer),
			"name_matches", len(matches))

		return nil, nil
	}

	return matches[0], nil
}

// ensurePaymentNumber validates the sender number against the resolved
// customer's registrations, auto-registering it when it is unknown
// everywhere and refusing when it belongs to someone else.
func (s *Service) ensurePaymentNumber(ctx context.Context, tx *Transaction, owner *customer.Customer, globallyRegistered bool) error {
	if owner.HasPaymentNumber(tx.SenderNumber) {
		// Backfill the observed sender name where the registration has none.
		for _, pd := range owner.PaymentNumbers {
			if pd.PaymentNumber == tx.SenderNumber && pd.MpesaName == "" {
				if err := s.customers.SetPaymentName(ctx, pd.ID, tx.SenderName); err != nil {
					return fmt.Errorf("recording payment name: %w", err)
				}

				break
			}
		}

		return nil
	}

	registeredToOther, err := s.customers.IsPaymentNumberRegisteredToOther(ctx, tx.SenderNumber, owner.ID)
	if err != nil {
		return fmt.Errorf("checking payment number owner: %w", err)
	}

	if registeredToOther {
		// Never attach a payment to the wrong person.
		tx.Status = StatusUnmatched

		slog.Warn("payment number registered to another customer",
			"transaction_id", tx.TransactionID, "sender_number", tx.SenderNumber)

		return nil
	}

	if !globallyRegistered {
		if err := s.customers.AddPaymentNumber(ctx, owner.ID, tx.SenderNumber, tx.SenderName); err != nil {
			return fmt.Errorf("registering payment number: %w", err)
		}

		slog.Info("auto-registered payment number",
			"customer_id", owner.ID, "sender_number", tx.SenderNumber)
	}

	return nil
}

// allocate walks the customer's open orders oldest first, paying each
// down until the transaction amount is exhausted. Leftover funds are
// logged as unapplied excess and the transaction ends PARTIALLY_MATCHED;
// no balance is credited for them.
func (s *Service) allocate(ctx context.Context, tx *Transaction, open []*order.Order) error {
	sort.Slice(open, func(i, j int) bool {
		return open[i].Date.Before(open[j].Date)
	})

	remaining := tx.Amount

	for _, o := range open {
		if remaining.LessThanOrEqual(decimal.Zero) {
			break
		}

		if !o.Unmatched() {
			continue
		}

		delta := decimal.Min(remaining, o.RemainingAmount)

		updated, err := s.orders.ApplyPayment(ctx, o.ID, delta)
		if err != nil {
			return fmt.Errorf("applying payment to order %s: %w", o.ID, err)
		}

		if tx.OrderID == nil {
			id := o.ID
			tx.OrderID = &id
		}

		remaining = remaining.Sub(delta)

		slog.Info("applied payment to order",
			"transaction_id", tx.TransactionID,
			"order_id", o.ID,
			"amount", delta.String(),
			"order_remaining", updated.RemainingAmount.String())
	}

	if remaining.GreaterThan(decimal.Zero) {
		tx.Status = StatusPartiallyMatched

		slog.Info("excess payment not applied to any order",
			"transaction_id", tx.TransactionID, "excess", remaining.String())
	} else {
		tx.Status = StatusMatched
	}

	return nil
}

// Match links a transaction to a specific order by hand and applies the
// full transaction amount to it.
func (s *Service) Match(ctx context.Context, id, orderID uuid.UUID) (*Transaction, error) {
	tx, err := s.repo.GetTransaction(ctx, id)
	if err != nil {
		return nil, err
	}

	o, err := s.orders.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if _, err := s.orders.ApplyPayment(ctx, o.ID, tx.Amount); err != nil {
		return nil, err
	}

	tx.OrderID = &o.ID
	tx.Status = StatusMatched

	if err := s.repo.UpdateTransaction(ctx, tx); err != nil {
		return nil, fmt.Errorf("updating transaction: %w", err)
	}

	return tx, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Transaction, error) {
	return s.repo.GetTransaction(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*Transaction, error) {
	return s.repo.ListTransactions(ctx)
}

func (s *Service) ListUnmatched(ctx context.Context) ([]*Transaction, error) {
	return s.repo.ListTransactionsByStatus(ctx, StatusUnmatched)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteTransaction(ctx, id)
}
