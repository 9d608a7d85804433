package money_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nmwangik/dukapay/internal/money"
)

func TestRound(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "NoFraction", in: "100", want: "100"},
		{name: "TwoDigits", in: "100.55", want: "100.55"},
		{name: "HalfUp", in: "100.555", want: "100.56"},
		{name: "HalfDown", in: "100.554", want: "100.55"},
		{name: "ExactHalf", in: "0.125", want: "0.13"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := decimal.RequireFromString(tt.in)
			want := decimal.RequireFromString(tt.want)

			assert.True(t, money.Round(in).Equal(want),
				"Round(%s) = %s, want %s", tt.in, money.Round(in), tt.want)
		})
	}
}

func TestMul(t *testing.T) {
	price := decimal.RequireFromString("3.33")
	qty := decimal.NewFromInt(3)

	got := money.Mul(price, qty)
	assert.True(t, got.Equal(decimal.RequireFromString("9.99")))
}

func TestSum(t *testing.T) {
	got := money.Sum(
		decimal.RequireFromString("0.10"),
		decimal.RequireFromString("0.20"),
		decimal.RequireFromString("0.30"),
	)

	assert.True(t, got.Equal(decimal.RequireFromString("0.60")))
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{name: "Plain", in: "1500", want: "1500"},
		{name: "ThousandsSeparator", in: "1,500.00", want: "1500.00"},
		{name: "Fraction", in: "99.99", want: "99.99"},
		{name: "LeadingWhitespace", in: "  250.50", want: "250.50"},
		{name: "Empty", in: "", wantErr: true},
		{name: "Letters", in: "12a4", wantErr: true},
		{name: "Negative", in: "-100", wantErr: true},
		{name: "DoubleDot", in: "1..5", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := money.Parse(tt.in)

			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, money.ErrInvalidAmount)

				return
			}

			require.NoError(t, err)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)),
				"Parse(%q) = %s, want %s", tt.in, got, tt.want)
		})
	}
}
