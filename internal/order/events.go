package order

import "context"

// EventKind tags an order lifecycle notification.
type EventKind string

const (
	EventCreated        EventKind = "CREATED"
	EventStatusChanged  EventKind = "STATUS_CHANGED"
	EventPaymentUpdated EventKind = "PAYMENT_UPDATED"
	EventCancelled      EventKind = "CANCELLED"
)

// Publisher delivers order events synchronously, within the same unit of
// work as the mutation that raised them. A publisher error propagates
// back to the mutation path; it is not swallowed.
//
//go:generate mockgen -source=events.go -destination=events_mock.go -package=order
type Publisher interface {
	Publish(ctx context.Context, o *Order, kind EventKind) error
}
