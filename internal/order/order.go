package order

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/nmwangik/dukapay/internal/money"
)

var (
	ErrNotFound         = errors.New("order not found")
	ErrCustomerNotFound = errors.New("order customer not found")
	ErrProductNotFound  = errors.New("order product not found")
	ErrValidation       = errors.New("order validation failed")
	ErrVersionConflict  = errors.New("order version conflict")
	ErrConcurrentUpdate = errors.New("order modified concurrently, retries exhausted")
)

// Order is the aggregate root for a customer order. Monetary totals and
// the payment status are derived, never set directly: every mutation
// goes through RecomputeTotals.
type Order struct {
	ID               uuid.UUID
	CustomerID       uuid.UUID
	Date             time.Time // event date
	Items            []*Item
	TotalAmount      decimal.Decimal
	PaidAmount       decimal.Decimal
	RemainingAmount  decimal.Decimal
	Status           Status
	ProductionStatus Status
	PaymentStatus    PaymentStatus
	Version          int64
	CreatedAt        time.Time
	UpdatedAt        *time.Time
}

// Item is a line item owned by an order. ProductName and Price are
// snapshots taken when the item was added; later product edits do not
// change existing orders.
type Item struct {
	ID          uuid.UUID
	OrderID     uuid.UUID
	ProductID   uuid.UUID
	ProductName string
	Quantity    int
	Price       decimal.Decimal
}

// Subtotal returns price x quantity rounded to two decimals.
func (i *Item) Subtotal() decimal.Decimal {
	return money.Mul(i.Price, decimal.NewFromInt(int64(i.Quantity)))
}

// Validate checks the item against the configured bounds.
func (i *Item) Validate() error {
	if i.Quantity <= 0 {
		return fmt.Errorf("%w: quantity must be positive", ErrValidation)
	}

	if i.Quantity > money.MaxQuantity {
		return fmt.Errorf("%w: quantity exceeds maximum of %d", ErrValidation, money.MaxQuantity)
	}

	if i.Price.IsNegative() {
		return fmt.Errorf("%w: item price cannot be negative", ErrValidation)
	}

	if i.Subtotal().GreaterThan(money.MaxItemTotal) {
		return fmt.Errorf("%w: item subtotal exceeds maximum of %s", ErrValidation, money.MaxItemTotal)
	}

	return nil
}

// New creates an order in its initial state: PENDING production and
// order status, nothing paid.
func New(customerID uuid.UUID, date time.Time) *Order {
	return &Order{
		CustomerID:       customerID,
		Date:             date,
		Status:           StatusPending,
		ProductionStatus: StatusPending,
		PaymentStatus:    PaymentStatusUnpaid,
		TotalAmount:      decimal.Zero,
		PaidAmount:       decimal.Zero,
		RemainingAmount:  decimal.Zero,
	}
}

// AddItem appends an item, sets its back-reference and recomputes totals.
func (o *Order) AddItem(item *Item) error {
	if item == nil {
		return fmt.Errorf("%w: item is nil", ErrValidation)
	}

	if err := item.Validate(); err != nil {
		return err
	}

	item.OrderID = o.ID
	o.Items = append(o.Items, item)
	o.RecomputeTotals()

	return nil
}

// RemoveItem removes an item, clears its back-reference and recomputes totals.
func (o *Order) RemoveItem(item *Item) {
	if item == nil {
		return
	}

	for idx, existing := range o.Items {
		if existing == item || (item.ID != uuid.Nil && existing.ID == item.ID) {
			o.Items = append(o.Items[:idx], o.Items[idx+1:]...)
			item.OrderID = uuid.Nil

			break
		}
	}

	o.RecomputeTotals()
}

// RecomputeTotals re-derives every monetary field from the line items.
// The paid amount is capped at the total so PaymentStatus never regresses
// from PAID and RemainingAmount never goes negative.
func (o *Order) RecomputeTotals() {
	subtotals := make([]decimal.Decimal, len(o.Items))
	for i, item := range o.Items {
		subtotals[i] = item.Subtotal()
	}

	o.TotalAmount = money.Sum(subtotals...)

	if o.PaidAmount.GreaterThan(o.TotalAmount) {
		o.PaidAmount = o.TotalAmount
	}

	if o.PaidAmount.IsNegative() {
		o.PaidAmount = decimal.Zero
	}

	o.RemainingAmount = money.Round(o.TotalAmount.Sub(o.PaidAmount))
	o.PaymentStatus = paymentStatusFor(o.PaidAmount, o.TotalAmount)
}

// TransitionTo moves the order to next if the transition graph allows it.
func (o *Order) TransitionTo(next Status) error {
	if !o.Status.CanTransitionTo(next) {
		return fmt.Errorf("%w: invalid status transition from %s to %s", ErrValidation, o.Status, next)
	}

	o.Status = next

	return nil
}

// Unmatched reports whether the order still has a positive remaining balance.
func (o *Order) Unmatched() bool {
	return o.RemainingAmount.GreaterThan(decimal.Zero)
}
