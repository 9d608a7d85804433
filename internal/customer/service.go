package customer

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=service_mock.go -package=customer
type Repository interface {
	CreateCustomer(ctx context.Context, c *Customer) error
	GetCustomer(ctx context.Context, id uuid.UUID) (*Customer, error)
	ListCustomers(ctx context.Context) ([]*Customer, error)
	SearchCustomersByName(ctx context.Context, name string) ([]*Customer, error)
	SearchCustomersByNumber(ctx context.Context, number string) ([]*Customer, error)
	UpdateCustomer(ctx context.Context, c *Customer) error
	DeleteCustomer(ctx context.Context, id uuid.UUID) error
	CustomerExists(ctx context.Context, id uuid.UUID) (bool, error)

	AddPaymentDetails(ctx context.Context, pd *PaymentDetails) error
	SetPaymentName(ctx context.Context, id uuid.UUID, name string) error
	PaymentNumberExists(ctx context.Context, number string) (bool, error)
	PaymentNumberExistsForOther(ctx context.Context, number string, customerID uuid.UUID) (bool, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Name   string
	Number string
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Customer, error) {
	name := strings.TrimSpace(params.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name must not be blank", ErrInvalid)
	}

	number := NormalizeNumber(params.Number)
	if !ValidNumber(number) {
		return nil, fmt.Errorf("%w: phone number must be in format +254XXXXXXXXX", ErrInvalid)
	}

	c := &Customer{Name: name, Number: number}
	if err := s.repo.CreateCustomer(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Customer, error) {
	return s.repo.GetCustomer(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*Customer, error) {
	return s.repo.ListCustomers(ctx)
}

func (s *Service) SearchByName(ctx context.Context, name string) ([]*Customer, error) {
	return s.repo.SearchCustomersByName(ctx, name)
}

func (s *Service) SearchByNumber(ctx context.Context, number string) ([]*Customer, error) {
	return s.repo.SearchCustomersByNumber(ctx, number)
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, params CreateParams) (*Customer, error) {
	c, err := s.repo.GetCustomer(ctx, id)
	if err != nil {
		return nil, err
	}

	if name := strings.TrimSpace(params.Name); name != "" {
		c.Name = name
	}

	if params.Number != "" {
		number := NormalizeNumber(params.Number)
		if !ValidNumber(number) {
			return nil, fmt.Errorf("%w: phone number must be in format +254XXXXXXXXX", ErrInvalid)
		}

		c.Number = number
	}

	if err := s.repo.UpdateCustomer(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteCustomer(ctx, id)
}

// Exists satisfies the order service's customer directory port.
func (s *Service) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	return s.repo.CustomerExists(ctx, id)
}

// IsPaymentNumberRegistered reports whether any customer has number
// registered as a payment number.
func (s *Service) IsPaymentNumberRegistered(ctx context.Context, number string) (bool, error) {
	return s.repo.PaymentNumberExists(ctx, number)
}

// IsPaymentNumberRegisteredToOther reports whether number is registered
// to a customer other than customerID.
func (s *Service) IsPaymentNumberRegisteredToOther(ctx context.Context, number string, customerID uuid.UUID) (bool, error) {
	return s.repo.PaymentNumberExistsForOther(ctx, number, customerID)
}

// AddPaymentNumber registers number for the customer, refusing if it
// already belongs to a different customer.
func (s *Service) AddPaymentNumber(ctx context.Context, customerID uuid.UUID, number, mpesaName string) error {
	taken, err := s.repo.PaymentNumberExistsForOther(ctx, number, customerID)
	if err != nil {
		return err
	}

	if taken {
		return fmt.Errorf("%w: %s", ErrNumberTaken, number)
	}

	return s.repo.AddPaymentDetails(ctx, &PaymentDetails{
		CustomerID:    customerID,
		PaymentNumber: number,
		MpesaName:     mpesaName,
	})
}

// SetPaymentName records the observed SMS sender name on a payment
// registration. Used to backfill registrations created without one.
func (s *Service) SetPaymentName(ctx context.Context, id uuid.UUID, name string) error {
	return s.repo.SetPaymentName(ctx, id, name)
}
