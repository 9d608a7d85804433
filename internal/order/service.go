package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sethvargo/go-retry"
	"github.com/shopspring/decimal"

	"github.com/nmwangik/dukapay/internal/product"
)

const (
	// maxPaymentAttempts bounds the optimistic-lock retry loop in ApplyPayment.
	maxPaymentAttempts = 3
	paymentBackoff     = 100 * time.Millisecond
)

//go:generate mockgen -source=service.go -destination=service_mock.go -package=order
type Repository interface {
	CreateOrder(ctx context.Context, o *Order) error
	GetOrder(ctx context.Context, id uuid.UUID) (*Order, error)
	ListOrders(ctx context.Context, filter ListFilter) ([]*Order, error)
	ListUnmatchedByPaymentNumber(ctx context.Context, paymentNumber string) ([]*Order, error)
	// UpdateOrder persists o only if the stored version still matches
	// o.Version, returning ErrVersionConflict otherwise.
	UpdateOrder(ctx context.Context, o *Order) error
}

// CustomerDirectory is the slice of the customer domain the order
// service needs for validation.
type CustomerDirectory interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

// ProductCatalog resolves products so line items can snapshot name and price.
type ProductCatalog interface {
	GetProduct(ctx context.Context, id uuid.UUID) (*product.Product, error)
}

type Service struct {
	repo      Repository
	customers CustomerDirectory
	catalog   ProductCatalog
	events    Publisher
}

func NewService(repo Repository, customers CustomerDirectory, catalog ProductCatalog, events Publisher) *Service {
	return &Service{repo: repo, customers: customers, catalog: catalog, events: events}
}

type ItemParams struct {
	ProductID uuid.UUID
	Quantity  int
}

type CreateParams struct {
	CustomerID uuid.UUID
	Date       time.Time
	Items      []ItemParams
}

type ListFilter struct {
	CustomerName *string
	Date         *time.Time
}

// Create validates the parameters, builds the order with product
// snapshots and persists it. A CREATED event is raised on success.
func (s *Service) Create(ctx context.Context, params CreateParams) (*Order, error) {
	if params.CustomerID == uuid.Nil {
		return nil, fmt.Errorf("%w: customer id is required", ErrValidation)
	}

	exists, err := s.customers.Exists(ctx, params.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("checking customer: %w", err)
	}

	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrCustomerNotFound, params.CustomerID)
	}

	if params.Date.IsZero() {
		return nil, fmt.Errorf("%w: event date is required", ErrValidation)
	}

	today := time.Now().Truncate(24 * time.Hour)
	if params.Date.Before(today) {
		return nil, fmt.Errorf("%w: event date cannot be in the past", ErrValidation)
	}

	if len(params.Items) == 0 {
		return nil, fmt.Errorf("%w: order must contain at least one item", ErrValidation)
	}

	o := New(params.CustomerID, params.Date)

	for _, ip := range params.Items {
		p, err := s.catalog.GetProduct(ctx, ip.ProductID)
		if err != nil {
			if errors.Is(err, product.ErrNotFound) {
				return nil, fmt.Errorf("%w: %s", ErrProductNotFound, ip.ProductID)
			}

			return nil, fmt.Errorf("resolving product: %w", err)
		}

		item := &Item{
			ProductID:   p.ID,
			ProductName: p.Name,
			Quantity:    ip.Quantity,
			Price:       p.Price,
		}
		if err := o.AddItem(item); err != nil {
			return nil, err
		}
	}

	if err := s.repo.CreateOrder(ctx, o); err != nil {
		return nil, fmt.Errorf("creating order: %w", err)
	}

	if err := s.events.Publish(ctx, o, EventCreated); err != nil {
		return nil, fmt.Errorf("publishing created event: %w", err)
	}

	return o, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Order, error) {
	return s.repo.GetOrder(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Order, error) {
	return s.repo.ListOrders(ctx, filter)
}

// ListUnmatchedByPaymentNumber returns orders with a positive remaining
// balance belonging to customers that have the given number registered
// as a payment number.
func (s *Service) ListUnmatchedByPaymentNumber(ctx context.Context, paymentNumber string) ([]*Order, error) {
	return s.repo.ListUnmatchedByPaymentNumber(ctx, paymentNumber)
}

// UpdateStatus parses and applies a status transition. Invalid
// transitions fail without touching the order.
func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, rawStatus string) (*Order, error) {
	next, err := ParseStatus(rawStatus)
	if err != nil {
		return nil, err
	}

	o, err := s.repo.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := o.TransitionTo(next); err != nil {
		return nil, err
	}

	if err := s.repo.UpdateOrder(ctx, o); err != nil {
		return nil, fmt.Errorf("updating order status: %w", err)
	}

	kind := EventStatusChanged
	if next == StatusCancelled {
		kind = EventCancelled
	}

	if err := s.events.Publish(ctx, o, kind); err != nil {
		return nil, fmt.Errorf("publishing status event: %w", err)
	}

	return o, nil
}

// ApplyPayment adds delta to the order's paid amount under optimistic
// concurrency control. On a version conflict the whole
// load-compute-save round is retried with a fixed backoff; exhausting
// the attempts surfaces ErrConcurrentUpdate. A PAYMENT_UPDATED event is
// raised on success.
func (s *Service) ApplyPayment(ctx context.Context, id uuid.UUID, delta decimal.Decimal) (*Order, error) {
	if delta.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: payment amount must be positive", ErrValidation)
	}

	var updated *Order

	backoff := retry.WithMaxRetries(maxPaymentAttempts-1, retry.NewConstant(paymentBackoff))

	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		o, err := s.repo.GetOrder(ctx, id)
		if err != nil {
			return err
		}

		newPaid := o.PaidAmount.Add(delta)
		if newPaid.GreaterThan(o.TotalAmount) {
			return fmt.Errorf("%w: total paid amount cannot exceed order total", ErrValidation)
		}

		o.PaidAmount = newPaid
		o.RecomputeTotals()

		if err := s.repo.UpdateOrder(ctx, o); err != nil {
			if errors.Is(err, ErrVersionConflict) {
				return retry.RetryableError(err)
			}

			return err
		}

		updated = o

		return nil
	})
	if err != nil {
		if errors.Is(err, ErrVersionConflict) {
			return nil, fmt.Errorf("%w: %d attempts", ErrConcurrentUpdate, maxPaymentAttempts)
		}

		return nil, err
	}

	if err := s.events.Publish(ctx, updated, EventPaymentUpdated); err != nil {
		return nil, fmt.Errorf("publishing payment event: %w", err)
	}

	return updated, nil
}
