package product

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrNotFound = errors.New("product not found")

// Type categorizes a product.
type Type string

const (
	TypeElectronics Type = "ELECTRONICS"
	TypeFurniture   Type = "FURNITURE"
	TypeClothing    Type = "CLOTHING"
	TypeFood        Type = "FOOD"
)

type Product struct {
	ID        uuid.UUID
	Name      string
	Price     decimal.Decimal
	Stock     int
	Type      Type
	CreatedAt time.Time
	UpdatedAt *time.Time
}
