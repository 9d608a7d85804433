package order

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/nmwangik/dukapay/internal/order"
)

type orderResponse struct {
	ID               uuid.UUID           `json:"id"`
	CustomerID       uuid.UUID           `json:"customer_id"`
	Date             string              `json:"date"`
	Items            []itemResponse      `json:"items"`
	TotalAmount      decimal.Decimal     `json:"total_amount"`
	PaidAmount       decimal.Decimal     `json:"paid_amount"`
	RemainingAmount  decimal.Decimal     `json:"remaining_amount"`
	Status           order.Status        `json:"status"`
	ProductionStatus order.Status        `json:"production_status"`
	PaymentStatus    order.PaymentStatus `json:"payment_status"`
	Version          int64               `json:"version"`
	CreatedAt        time.Time           `json:"created_at"`
	UpdatedAt        *time.Time          `json:"updated_at,omitempty"`
}

type itemResponse struct {
	ID          uuid.UUID       `json:"id"`
	ProductID   uuid.UUID       `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

func toResponse(o *order.Order) orderResponse {
	items := make([]itemResponse, len(o.Items))
	for i, it := range o.Items {
		items[i] = itemResponse{
			ID:          it.ID,
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			Price:       it.Price,
			Subtotal:    it.Subtotal(),
		}
	}

	return orderResponse{
		ID:               o.ID,
		CustomerID:       o.CustomerID,
		Date:             o.Date.Format(time.DateOnly),
		Items:            items,
		TotalAmount:      o.TotalAmount,
		PaidAmount:       o.PaidAmount,
		RemainingAmount:  o.RemainingAmount,
		Status:           o.Status,
		ProductionStatus: o.ProductionStatus,
		PaymentStatus:    o.PaymentStatus,
		Version:          o.Version,
		CreatedAt:        o.CreatedAt,
		UpdatedAt:        o.UpdatedAt,
	}
}

func toResponseList(orders []*order.Order) []orderResponse {
	resp := make([]orderResponse, len(orders))
	for i, o := range orders {
		resp[i] = toResponse(o)
	}

	return resp
}
