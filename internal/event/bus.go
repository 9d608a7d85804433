// Package event delivers order lifecycle notifications to in-process
// listeners, synchronously and in the order they were raised.
package event

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/nmwangik/dukapay/internal/order"
)

// Handler consumes one order event. An error returned here propagates
// to whoever raised the event; correctness-sensitive listeners must not
// be silently skipped.
type Handler func(ctx context.Context, o *order.Order, kind order.EventKind) error

// Bus is a synchronous in-process dispatcher implementing
// order.Publisher. Handlers run in registration order within the
// caller's unit of work.
type Bus struct {
	mu       sync.RWMutex
	handlers []Handler
}

func NewBus() *Bus {
	return &Bus{}
}

// Subscribe registers a handler for all subsequent events.
func (b *Bus) Subscribe(h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers = append(b.handlers, h)
}

// Publish invokes every registered handler. The first handler error
// stops dispatch and is returned to the caller.
func (b *Bus) Publish(ctx context.Context, o *order.Order, kind order.EventKind) error {
	b.mu.RLock()
	handlers := make([]Handler, len(b.handlers))
	copy(handlers, b.handlers)
	b.mu.RUnlock()

	for _, h := range handlers {
		if err := h(ctx, o, kind); err != nil {
			return fmt.Errorf("event handler for %s: %w", kind, err)
		}
	}

	return nil
}

// AuditLogger returns a handler that records every order event. It
// never fails the mutation path.
func AuditLogger() Handler {
	return func(_ context.Context, o *order.Order, kind order.EventKind) error {
		switch kind {
		case order.EventPaymentUpdated:
			slog.Info("order event",
				"kind", kind,
				"order_id", o.ID,
				"paid", o.PaidAmount.String(),
				"total", o.TotalAmount.String(),
				"payment_status", o.PaymentStatus)
		default:
			slog.Info("order event", "kind", kind, "order_id", o.ID, "status", o.Status)
		}

		return nil
	}
}
