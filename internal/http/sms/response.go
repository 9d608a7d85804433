package sms

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/nmwangik/dukapay/internal/transaction"
)

type transactionResponse struct {
	ID              uuid.UUID          `json:"id"`
	TransactionID   string             `json:"transaction_id"`
	Amount          decimal.Decimal    `json:"amount"`
	SenderName      string             `json:"sender_name"`
	SenderNumber    string             `json:"sender_number"`
	TransactionDate time.Time          `json:"transaction_date"`
	OrderID         *uuid.UUID         `json:"order_id,omitempty"`
	Status          transaction.Status `json:"status"`
	CreatedAt       time.Time          `json:"created_at"`
}

func toResponse(tx *transaction.Transaction) transactionResponse {
	return transactionResponse{
		ID:              tx.ID,
		TransactionID:   tx.TransactionID,
		Amount:          tx.Amount,
		SenderName:      tx.SenderName,
		SenderNumber:    tx.SenderNumber,
		TransactionDate: tx.TransactionDate,
		OrderID:         tx.OrderID,
		Status:          tx.Status,
		CreatedAt:       tx.CreatedAt,
	}
}

func toResponseList(txs []*transaction.Transaction) []transactionResponse {
	resp := make([]transactionResponse, len(txs))
	for i, tx := range txs {
		resp[i] = toResponse(tx)
	}

	return resp
}
