package order

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Status represents the lifecycle state of an order.
type Status string

const (
	StatusPending    Status = "PENDING"
	StatusInProgress Status = "IN_PROGRESS"
	StatusCompleted  Status = "COMPLETED"
	StatusDelivered  Status = "DELIVERED"
	StatusCancelled  Status = "CANCELLED"
)

// transitions is the directed edge set of allowed status changes.
// DELIVERED and CANCELLED are terminal.
var transitions = map[Status][]Status{
	StatusPending:    {StatusInProgress, StatusCancelled},
	StatusInProgress: {StatusCompleted, StatusCancelled},
	StatusCompleted:  {StatusDelivered},
	StatusDelivered:  {},
	StatusCancelled:  {},
}

// CanTransitionTo reports whether (s, next) is an allowed edge.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}

	return false
}

// ParseStatus normalizes free-form status input (trim, uppercase,
// underscores for spaces) and rejects anything outside the enum.
func ParseStatus(value string) (Status, error) {
	normalized := strings.ToUpper(strings.TrimSpace(value))
	normalized = strings.ReplaceAll(normalized, " ", "_")

	switch Status(normalized) {
	case StatusPending, StatusInProgress, StatusCompleted, StatusDelivered, StatusCancelled:
		return Status(normalized), nil
	}

	return "", fmt.Errorf("%w: unknown status %q", ErrValidation, value)
}

// PaymentStatus represents how much of an order has been paid.
type PaymentStatus string

const (
	PaymentStatusUnpaid  PaymentStatus = "UNPAID"
	PaymentStatusPartial PaymentStatus = "PARTIAL"
	PaymentStatusPaid    PaymentStatus = "PAID"
)

// paymentStatusFor derives the payment status purely from amounts.
// The paid-amount cap in RecomputeTotals keeps the derivation monotonic.
func paymentStatusFor(paid, total decimal.Decimal) PaymentStatus {
	switch {
	case paid.IsZero():
		return PaymentStatusUnpaid
	case paid.GreaterThanOrEqual(total):
		return PaymentStatusPaid
	default:
		return PaymentStatusPartial
	}
}
