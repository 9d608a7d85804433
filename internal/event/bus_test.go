package event_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nmwangik/dukapay/internal/event"
	"github.com/nmwangik/dukapay/internal/order"
)

func TestBus_Publish(t *testing.T) {
	bus := event.NewBus()

	var received []order.EventKind

	bus.Subscribe(func(_ context.Context, _ *order.Order, kind order.EventKind) error {
		received = append(received, kind)
		return nil
	})

	o := &order.Order{ID: uuid.New()}

	require.NoError(t, bus.Publish(context.Background(), o, order.EventCreated))
	require.NoError(t, bus.Publish(context.Background(), o, order.EventPaymentUpdated))

	assert.Equal(t, []order.EventKind{order.EventCreated, order.EventPaymentUpdated}, received)
}

func TestBus_Publish_HandlerErrorStopsDispatch(t *testing.T) {
	bus := event.NewBus()

	handlerErr := errors.New("listener failed")

	var secondCalled bool

	bus.Subscribe(func(_ context.Context, _ *order.Order, _ order.EventKind) error {
		return handlerErr
	})
	bus.Subscribe(func(_ context.Context, _ *order.Order, _ order.EventKind) error {
		secondCalled = true
		return nil
	})

	err := bus.Publish(context.Background(), &order.Order{ID: uuid.New()}, order.EventCancelled)

	require.Error(t, err)
	assert.ErrorIs(t, err, handlerErr)
	assert.False(t, secondCalled, "dispatch stops at the first failing handler")
}

func TestBus_Publish_NoHandlers(t *testing.T) {
	bus := event.NewBus()

	assert.NoError(t, bus.Publish(context.Background(), &order.Order{ID: uuid.New()}, order.EventCreated))
}
