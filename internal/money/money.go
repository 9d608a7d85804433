// Package money holds the fixed-point rules for monetary values.
//
// Every amount in the system carries exactly two fraction digits and is
// rounded half-up whenever arithmetic produces a new value. Comparisons
// are exact; there is no epsilon tolerance.
package money

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

const scale = 2

// MaxItemTotal bounds a single line-item subtotal. Exceeding it is a
// validation failure, never a silent truncation.
var MaxItemTotal = decimal.NewFromInt(1_000_000)

// MaxQuantity bounds the quantity of a single line item.
const MaxQuantity = 1000

var ErrInvalidAmount = errors.New("invalid amount")

// Round normalizes d to two fraction digits, rounding half-up.
func Round(d decimal.Decimal) decimal.Decimal {
	return d.Round(scale)
}

// Mul multiplies a by b and rounds the result to scale.
func Mul(a, b decimal.Decimal) decimal.Decimal {
	return Round(a.Mul(b))
}

// Sum adds the given amounts and rounds the result to scale.
func Sum(amounts ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(a)
	}

	return Round(total)
}

// Parse reads a monetary value from free text. Thousands separators
// (commas) are stripped; anything other than digits and a decimal point
// is rejected. The result is scale-normalized.
func Parse(s string) (decimal.Decimal, error) {
	clean := strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if clean == "" {
		return decimal.Zero, ErrInvalidAmount
	}

	for _, r := range clean {
		if (r < '0' || r > '9') && r != '.' {
			return decimal.Zero, ErrInvalidAmount
		}
	}

	d, err := decimal.NewFromString(clean)
	if err != nil {
		return decimal.Zero, ErrInvalidAmount
	}

	return Round(d), nil
}
