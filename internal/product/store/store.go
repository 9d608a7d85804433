package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/nmwangik/dukapay/internal/product"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanProduct(s scanner) (*product.Product, error) {
	var p product.Product

	var typ string

	if err := s.Scan(&p.ID, &p.Name, &p.Price, &p.Stock, &typ, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}

	p.Type = product.Type(typ)

	return &p, nil
}

const selectProductColumns = `id, name, price, stock, type, created_at, updated_at`

func (s *Store) CreateProduct(ctx context.Context, p *product.Product) error {
	query := `
		INSERT INTO products (name, price, stock, type, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id, created_at
	`

	if err := s.db.QueryRowContext(ctx, query,
		p.Name, p.Price, p.Stock, p.Type,
	).Scan(&p.ID, &p.CreatedAt); err != nil {
		return fmt.Errorf("creating product: %w", err)
	}

	return nil
}

func (s *Store) GetProduct(ctx context.Context, id uuid.UUID) (*product.Product, error) {
	query := `SELECT ` + selectProductColumns + ` FROM products WHERE id = $1`

	p, err := scanProduct(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, product.ErrNotFound
		}

		return nil, fmt.Errorf("getting product: %w", err)
	}

	return p, nil
}

func (s *Store) ListProducts(ctx context.Context) ([]*product.Product, error) {
	query := `SELECT ` + selectProductColumns + ` FROM products ORDER BY name ASC`

	return s.queryProducts(ctx, query)
}

func (s *Store) SearchProductsByName(ctx context.Context, name string) ([]*product.Product, error) {
	query := `SELECT ` + selectProductColumns + `
		FROM products
		WHERE name ILIKE '%' || $1 || '%'
		ORDER BY name ASC`

	return s.queryProducts(ctx, query, name)
}

func (s *Store) queryProducts(ctx context.Context, query string, args ...any) ([]*product.Product, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing products: %w", err)
	}
	defer rows.Close()

	var products []*product.Product

	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning product: %w", err)
		}

		products = append(products, p)
	}

	return products, rows.Err()
}

func (s *Store) UpdateProduct(ctx context.Context, p *product.Product) error {
	query := `
		UPDATE products
		SET name = $1, price = $2, stock = $3, type = $4, updated_at = NOW()
		WHERE id = $5
	`

	res, err := s.db.ExecContext(ctx, query, p.Name, p.Price, p.Stock, p.Type, p.ID)
	if err != nil {
		return fmt.Errorf("updating product: %w", err)
	}

	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return product.ErrNotFound
	}

	return nil
}

func (s *Store) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting product: %w", err)
	}

	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return product.ErrNotFound
	}

	return nil
}
