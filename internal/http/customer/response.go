package customer

import (
	"time"

	"github.com/google/uuid"

	"github.com/nmwangik/dukapay/internal/customer"
)

type customerResponse struct {
	ID             uuid.UUID               `json:"id"`
	Name           string                  `json:"name"`
	Number         string                  `json:"number"`
	PaymentNumbers []paymentNumberResponse `json:"payment_numbers,omitempty"`
	CreatedAt      time.Time               `json:"created_at"`
	UpdatedAt      *time.Time              `json:"updated_at,omitempty"`
}

type paymentNumberResponse struct {
	ID            uuid.UUID `json:"id"`
	PaymentNumber string    `json:"payment_number"`
	MpesaName     string    `json:"mpesa_name,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

func toResponse(c *customer.Customer) customerResponse {
	resp := customerResponse{
		ID:        c.ID,
		Name:      c.Name,
		Number:    c.Number,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}

	for _, pd := range c.PaymentNumbers {
		resp.PaymentNumbers = append(resp.PaymentNumbers, paymentNumberResponse{
			ID:            pd.ID,
			PaymentNumber: pd.PaymentNumber,
			MpesaName:     pd.MpesaName,
			CreatedAt:     pd.CreatedAt,
		})
	}

	return resp
}

func toResponseList(customers []*customer.Customer) []customerResponse {
	resp := make([]customerResponse, len(customers))
	for i, c := range customers {
		resp[i] = toResponse(c)
	}

	return resp
}
