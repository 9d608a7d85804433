package order_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nmwangik/dukapay/internal/order"
)

func TestStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from order.Status
		to   order.Status
		want bool
	}{
		{name: "PendingToInProgress", from: order.StatusPending, to: order.StatusInProgress, want: true},
		{name: "PendingToCancelled", from: order.StatusPending, to: order.StatusCancelled, want: true},
		{name: "PendingToCompleted", from: order.StatusPending, to: order.StatusCompleted, want: false},
		{name: "PendingToDelivered", from: order.StatusPending, to: order.StatusDelivered, want: false},
		{name: "InProgressToCompleted", from: order.StatusInProgress, to: order.StatusCompleted, want: true},
		{name: "InProgressToCancelled", from: order.StatusInProgress, to: order.StatusCancelled, want: true},
		{name: "InProgressToDelivered", from: order.StatusInProgress, to: order.StatusDelivered, want: false},
		{name: "CompletedToDelivered", from: order.StatusCompleted, to: order.StatusDelivered, want: true},
		{name: "CompletedToCancelled", from: order.StatusCompleted, to: order.StatusCancelled, want: false},
		{name: "DeliveredIsTerminal", from: order.StatusDelivered, to: order.StatusPending, want: false},
		{name: "CancelledIsTerminal", from: order.StatusCancelled, to: order.StatusPending, want: false},
		{name: "SelfTransition", from: order.StatusPending, to: order.StatusPending, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestParseStatus(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    order.Status
		wantErr bool
	}{
		{name: "Exact", in: "PENDING", want: order.StatusPending},
		{name: "Lowercase", in: "delivered", want: order.StatusDelivered},
		{name: "SpacesToUnderscore", in: "in progress", want: order.StatusInProgress},
		{name: "Padded", in: "  completed  ", want: order.StatusCompleted},
		{name: "Unknown", in: "SHIPPED", wantErr: true},
		{name: "Empty", in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := order.ParseStatus(tt.in)

			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, order.ErrValidation)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
