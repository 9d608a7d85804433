// Package mpesa parses M-PESA payment notification SMS text into
// structured payments.
package mpesa

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/nmwangik/dukapay/internal/money"
)

// ErrInvalidMessage covers every rejection: pattern mismatch, bad
// amount, bad phone number, future timestamp. A message that fails any
// check is rejected whole; there is no partial extraction.
var ErrInvalidMessage = errors.New("invalid M-PESA message")

// messagePattern matches the confirmation template:
//
//	<TXN_ID> Confirmed. Ksh<amount> sent to <NAME> <PHONE> on <D/M/YY> at <H:MM AM/PM>
var messagePattern = regexp.MustCompile(
	`([A-Z0-9]+)\s+Confirmed\.\s+Ksh([\d,]+\.?\d*)\s+sent\s+to\s+([A-Z\s]+)\s+(\d+)\s+on\s+(\d{1,2}/\d{1,2}/\d{2})\s+at\s+(\d{1,2}:\d{2}\s+[AP]M)`,
)

var senderNumberPattern = regexp.MustCompile(`^\+254\d{9}$`)

const timestampLayout = "2/1/06 3:04 PM"

// Payment is one parsed and validated payment notification.
type Payment struct {
	TransactionID string
	Amount        decimal.Decimal
	SenderName    string
	SenderNumber  string
	Timestamp     time.Time
	Raw           string
}

type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

// Parse extracts a payment from raw SMS text. now is the processing
// instant used to reject future-dated messages.
func (p *Parser) Parse(message string, now time.Time) (*Payment, error) {
	m := messagePattern.FindStringSubmatch(message)
	if m == nil {
		return nil, fmt.Errorf("%w: text does not match the confirmation template", ErrInvalidMessage)
	}

	amount, err := money.Parse(m[2])
	if err != nil {
		return nil, fmt.Errorf("%w: bad amount %q", ErrInvalidMessage, m[2])
	}

	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: amount must be positive", ErrInvalidMessage)
	}

	number, err := normalizeSenderNumber(m[4])
	if err != nil {
		return nil, err
	}

	timestamp, err := parseTimestamp(m[5], m[6])
	if err != nil {
		return nil, err
	}

	if timestamp.After(now) {
		return nil, fmt.Errorf("%w: transaction date cannot be in the future", ErrInvalidMessage)
	}

	return &Payment{
		TransactionID: m[1],
		Amount:        amount,
		SenderName:    strings.TrimSpace(m[3]),
		SenderNumber:  number,
		Timestamp:     timestamp,
		Raw:           message,
	}, nil
}

// normalizeSenderNumber keeps digits only, rewrites a leading 0 to the
// 254 country code and prefixes a plus sign.
func normalizeSenderNumber(raw string) (string, error) {
	var digits strings.Builder

	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}

	cleaned := digits.String()
	if strings.HasPrefix(cleaned, "0") {
		cleaned = "254" + cleaned[1:]
	}

	cleaned = "+" + cleaned
	if !senderNumberPattern.MatchString(cleaned) {
		return "", fmt.Errorf("%w: bad sender phone number %q", ErrInvalidMessage, raw)
	}

	return cleaned, nil
}

func parseTimestamp(date, clock string) (time.Time, error) {
	t, err := time.ParseInLocation(timestampLayout, date+" "+clock, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: bad date/time %q %q", ErrInvalidMessage, date, clock)
	}

	return t, nil
}
