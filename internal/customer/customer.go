package customer

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound = errors.New("customer not found")
	ErrInvalid  = errors.New("invalid customer")
	// ErrNumberTaken means a payment number is already registered to a
	// different customer. A number belongs to at most one customer.
	ErrNumberTaken = errors.New("payment number registered to another customer")
)

// numberPattern is the canonical national phone format: +254 followed by
// a 1 or 7 and eight more digits.
var numberPattern = regexp.MustCompile(`^\+254[17][0-9]{8}$`)

type Customer struct {
	ID     uuid.UUID
	Name   string
	Number string
	// PaymentNumbers are the phone numbers this customer is known to pay
	// from. Owned by the customer; deleted with it.
	PaymentNumbers []*PaymentDetails
	CreatedAt      time.Time
	UpdatedAt      *time.Time
}

// PaymentDetails records one payment-originating phone number for a
// customer, with the sender display name observed on SMS notifications.
type PaymentDetails struct {
	ID            uuid.UUID
	CustomerID    uuid.UUID
	PaymentNumber string
	MpesaName     string
	CreatedAt     time.Time
}

// HasPaymentNumber reports whether number is registered for this customer.
func (c *Customer) HasPaymentNumber(number string) bool {
	for _, pd := range c.PaymentNumbers {
		if pd.PaymentNumber == number {
			return true
		}
	}

	return false
}

// NormalizeNumber strips whitespace and rewrites common prefix variants
// (0..., 254..., doubled country codes) into the +254 canonical form.
func NormalizeNumber(number string) string {
	n := strings.Join(strings.Fields(number), "")

	switch {
	case strings.HasPrefix(n, "+254254"):
		n = "+254" + n[len("+254254"):]
	case strings.HasPrefix(n, "254254"):
		n = "+254" + n[len("254254"):]
	case strings.HasPrefix(n, "+254"):
		// already canonical
	case strings.HasPrefix(n, "254"):
		n = "+" + n
	case strings.HasPrefix(n, "0"):
		n = "+254" + n[1:]
	}

	return n
}

// ValidNumber reports whether number is in canonical form.
func ValidNumber(number string) bool {
	return numberPattern.MatchString(number)
}
