package order_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nmwangik/dukapay/internal/order"
)

func amount(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestOrder_AddItem(t *testing.T) {
	tests := []struct {
		name      string
		item      *order.Item
		wantErr   bool
		wantTotal string
	}{
		{
			name:      "Success",
			item:      &order.Item{ProductID: uuid.New(), ProductName: "Cake", Quantity: 2, Price: amount("750.00")},
			wantTotal: "1500.00",
		},
		{
			name:    "NilItem",
			item:    nil,
			wantErr: true,
		},
		{
			name:    "ZeroQuantity",
			item:    &order.Item{ProductID: uuid.New(), Quantity: 0, Price: amount("100")},
			wantErr: true,
		},
		{
			name:    "QuantityOverLimit",
			item:    &order.Item{ProductID: uuid.New(), Quantity: 1001, Price: amount("1")},
			wantErr: true,
		},
		{
			name:    "NegativePrice",
			item:    &order.Item{ProductID: uuid.New(), Quantity: 1, Price: amount("-5")},
			wantErr: true,
		},
		{
			name:    "SubtotalOverLimit",
			item:    &order.Item{ProductID: uuid.New(), Quantity: 1000, Price: amount("1000.01")},
			wantErr: true,
		},
		{
			name:      "SubtotalAtLimit",
			item:      &order.Item{ProductID: uuid.New(), Quantity: 1000, Price: amount("1000")},
			wantTotal: "1000000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := order.New(uuid.New(), time.Now())

			err := o.AddItem(tt.item)

			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, order.ErrValidation)
				assert.Empty(t, o.Items)

				return
			}

			require.NoError(t, err)
			assert.True(t, o.TotalAmount.Equal(amount(tt.wantTotal)),
				"total = %s, want %s", o.TotalAmount, tt.wantTotal)
			assert.True(t, o.RemainingAmount.Equal(o.TotalAmount))
			assert.Equal(t, order.PaymentStatusUnpaid, o.PaymentStatus)
		})
	}
}

func TestOrder_RemoveItem(t *testing.T) {
	o := order.New(uuid.New(), time.Now())

	first := &order.Item{ProductID: uuid.New(), Quantity: 1, Price: amount("1000")}
	second := &order.Item{ProductID: uuid.New(), Quantity: 1, Price: amount("500")}

	require.NoError(t, o.AddItem(first))
	require.NoError(t, o.AddItem(second))
	require.True(t, o.TotalAmount.Equal(amount("1500")))

	o.RemoveItem(first)

	assert.Len(t, o.Items, 1)
	assert.True(t, o.TotalAmount.Equal(amount("500")))
	assert.True(t, o.RemainingAmount.Equal(amount("500")))
}

func TestOrder_RecomputeTotals_CapsPaidAmount(t *testing.T) {
	o := order.New(uuid.New(), time.Now())

	require.NoError(t, o.AddItem(&order.Item{ProductID: uuid.New(), Quantity: 1, Price: amount("1000")}))
	require.NoError(t, o.AddItem(&order.Item{ProductID: uuid.New(), Quantity: 1, Price: amount("500")}))

	o.PaidAmount = amount("1500")
	o.RecomputeTotals()
	require.Equal(t, order.PaymentStatusPaid, o.PaymentStatus)

	// Shrinking the order below the paid amount caps the paid amount
	// rather than producing a negative balance.
	o.RemoveItem(o.Items[1])

	assert.True(t, o.PaidAmount.Equal(amount("1000")))
	assert.True(t, o.RemainingAmount.IsZero())
	assert.Equal(t, order.PaymentStatusPaid, o.PaymentStatus)
}

func TestOrder_PaymentStatusDerivation(t *testing.T) {
	tests := []struct {
		name string
		paid string
		want order.PaymentStatus
	}{
		{name: "NothingPaid", paid: "0", want: order.PaymentStatusUnpaid},
		{name: "PartiallyPaid", paid: "400", want: order.PaymentStatusPartial},
		{name: "FullyPaid", paid: "1000", want: order.PaymentStatusPaid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := order.New(uuid.New(), time.Now())
			require.NoError(t, o.AddItem(&order.Item{ProductID: uuid.New(), Quantity: 1, Price: amount("1000")}))

			o.PaidAmount = amount(tt.paid)
			o.RecomputeTotals()

			assert.Equal(t, tt.want, o.PaymentStatus)
			assert.True(t, o.RemainingAmount.Equal(o.TotalAmount.Sub(o.PaidAmount)))
		})
	}
}

func TestOrder_PaymentStatus_EmptyOrder(t *testing.T) {
	o := order.New(uuid.New(), time.Now())
	o.RecomputeTotals()

	// A zero-total order with nothing paid reads UNPAID, not PAID.
	assert.Equal(t, order.PaymentStatusUnpaid, o.PaymentStatus)
}

func TestOrder_Unmatched(t *testing.T) {
	o := order.New(uuid.New(), time.Now())
	require.NoError(t, o.AddItem(&order.Item{ProductID: uuid.New(), Quantity: 1, Price: amount("100")}))

	assert.True(t, o.Unmatched())

	o.PaidAmount = amount("100")
	o.RecomputeTotals()

	assert.False(t, o.Unmatched())
}
