package dto

import (
	"time"

	"github.com/smart-paisa/backend/internal/domain/entity"
)

// CreateTransactionRequest represents the request body for logging a
// transaction.
type CreateTransactionRequest struct {
	AccountID   string    `json:"account_id" binding:"required,uuid"`
	Kind        string    `json:"kind" binding:"required"`
	Amount      string    `json:"amount" binding:"required"`
	Description string    `json:"description" binding:"max=255"`
	Date        time.Time `json:"date" binding:"required"`
}

// TransactionResponse represents a transaction in API responses.
type TransactionResponse struct {
	ID          string    `json:"id"`
	AccountID   string    `json:"account_id"`
	AccountKind string    `json:"account_kind"`
	Kind        string    `json:"kind"`
	Amount      string    `json:"amount"`
	Description string    `json:"description,omitempty"`
	Date        time.Time `json:"date"`
	CreatedAt   time.Time `json:"created_at"`
}

// ListTransactionsResponse represents the response for listing transactions.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// ToTransactionResponse converts a domain Transaction entity to a DTO.
func ToTransactionResponse(txn *entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          txn.ID.String(),
		AccountID:   txn.AccountID.String(),
		AccountKind: string(txn.AccountKind),
		Kind:        string(txn.Kind),
		Amount:      txn.Amount.StringFixed(2),
		Description: txn.Description,
		Date:        txn.Date,
		CreatedAt:   txn.CreatedAt,
	}
}
