package product

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=service.go -destination=service_mock.go -package=product
type Repository interface {
	CreateProduct(ctx context.Context, p *Product) error
	GetProduct(ctx context.Context, id uuid.UUID) (*Product, error)
	ListProducts(ctx context.Context) ([]*Product, error)
	SearchProductsByName(ctx context.Context, name string) ([]*Product, error)
	UpdateProduct(ctx context.Context, p *Product) error
	DeleteProduct(ctx context.Context, id uuid.UUID) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Name  string
	Price decimal.Decimal
	Stock int
	Type  Type
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Product, error) {
	if params.Name == "" {
		return nil, fmt.Errorf("product name is required")
	}

	if params.Price.IsNegative() {
		return nil, fmt.Errorf("product price cannot be negative")
	}

	p := &Product{
		Name:  params.Name,
		Price: params.Price,
		Stock: params.Stock,
		Type:  params.Type,
	}
	if err := s.repo.CreateProduct(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}

// GetProduct satisfies the order service's catalog port.
func (s *Service) GetProduct(ctx context.Context, id uuid.UUID) (*Product, error) {
	return s.repo.GetProduct(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*Product, error) {
	return s.repo.ListProducts(ctx)
}

func (s *Service) SearchByName(ctx context.Context, name string) ([]*Product, error) {
	return s.repo.SearchProductsByName(ctx, name)
}

func (s *Service) Update(ctx context.Context, p *Product) error {
	return s.repo.UpdateProduct(ctx, p)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteProduct(ctx, id)
}
