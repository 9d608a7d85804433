package mpesa_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nmwangik/dukapay/internal/mpesa"
)

func TestParser_Parse(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.Local)

	parser := mpesa.NewParser()

	t.Run("StandardConfirmation", func(t *testing.T) {
		msg := "QAZ123 Confirmed. Ksh1,500.00 sent to JOHN DOE 0712345678 on 5/6/24 at 2:30 PM"

		got, err := parser.Parse(msg, now)
		require.NoError(t, err)

		assert.Equal(t, "QAZ123", got.TransactionID)
		assert.True(t, got.Amount.Equal(decimal.RequireFromString("1500.00")))
		assert.Equal(t, "JOHN DOE", got.SenderName)
		assert.Equal(t, "+254712345678", got.SenderNumber)
		assert.Equal(t, time.Date(2024, 6, 5, 14, 30, 0, 0, time.Local), got.Timestamp)
		assert.Equal(t, msg, got.Raw)
	})

	t.Run("MorningTimestamp", func(t *testing.T) {
		msg := "AB12CD Confirmed. Ksh200 sent to MARY WANJIKU 254701234567 on 12/11/24 at 9:05 AM"

		got, err := parser.Parse(msg, now)
		require.NoError(t, err)

		assert.Equal(t, "AB12CD", got.TransactionID)
		assert.Equal(t, "+254701234567", got.SenderNumber)
		assert.Equal(t, time.Date(2024, 11, 12, 9, 5, 0, 0, time.Local), got.Timestamp)
	})

	tests := []struct {
		name string
		msg  string
	}{
		{
			name: "NotAConfirmation",
			msg:  "Hello, are you coming to the market today?",
		},
		{
			name: "MissingAmount",
			msg:  "QAZ123 Confirmed. sent to JOHN DOE 0712345678 on 5/6/24 at 2:30 PM",
		},
		{
			name: "ShortPhoneNumber",
			msg:  "QAZ123 Confirmed. Ksh500 sent to JOHN DOE 07123 on 5/6/24 at 2:30 PM",
		},
		{
			name: "FutureDate",
			msg:  "QAZ123 Confirmed. Ksh500 sent to JOHN DOE 0712345678 on 5/6/30 at 2:30 PM",
		},
		{
			name: "Empty",
			msg:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parser.Parse(tt.msg, now)

			require.Error(t, err)
			assert.ErrorIs(t, err, mpesa.ErrInvalidMessage)
			assert.Nil(t, got)
		})
	}
}
