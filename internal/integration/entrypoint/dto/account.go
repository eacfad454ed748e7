package dto

import (
	"time"

	"github.com/smart-paisa/backend/internal/domain/entity"
)

// CreateAccountRequest represents the request body for account creation.
type CreateAccountRequest struct {
	Name           string `json:"name" binding:"required,min=1,max=100"`
	Kind           string `json:"kind" binding:"required"`
	OpeningBalance string `json:"opening_balance"`
	Linked         bool   `json:"linked"`
	CardExpiry     string `json:"card_expiry"`
}

// UpdateAccountRequest represents the request body for a partial account
// update. Nil fields are left unchanged.
type UpdateAccountRequest struct {
	Name           *string `json:"name"`
	OpeningBalance *string `json:"opening_balance"`
	Linked         *bool   `json:"linked"`
	CardExpiry     *string `json:"card_expiry"`
}

// AccountResponse represents an account with its derived balance.
type AccountResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Kind           string    `json:"kind"`
	OpeningBalance string    `json:"opening_balance"`
	Balance        string    `json:"balance"`
	Linked         bool      `json:"linked"`
	CardExpiry     string    `json:"card_expiry,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// CategoryTotalsResponse represents aggregate totals over a set of accounts.
type CategoryTotalsResponse struct {
	TotalIncome  string `json:"total_income"`
	TotalExpense string `json:"total_expense"`
	TotalBalance string `json:"total_balance"`
}

// ListAccountsResponse represents the response for listing accounts.
type ListAccountsResponse struct {
	Accounts []AccountResponse      `json:"accounts"`
	Totals   CategoryTotalsResponse `json:"totals"`
}

// ToAccountResponse converts an account with its derived balance to a DTO.
func ToAccountResponse(item *entity.AccountWithBalance) AccountResponse {
	return AccountResponse{
		ID:             item.Account.ID.String(),
		Name:           item.Account.Name,
		Kind:           string(item.Account.Kind),
		OpeningBalance: item.Account.OpeningBalance.StringFixed(2),
		Balance:        item.Balance.StringFixed(2),
		Linked:         item.Account.Linked,
		CardExpiry:     item.Account.CardExpiry,
		CreatedAt:      item.Account.CreatedAt,
	}
}

// ToCategoryTotalsResponse converts domain category totals to a DTO.
func ToCategoryTotalsResponse(totals entity.CategoryTotals) CategoryTotalsResponse {
	return CategoryTotalsResponse{
		TotalIncome:  totals.TotalIncome.StringFixed(2),
		TotalExpense: totals.TotalExpense.StringFixed(2),
		TotalBalance: totals.TotalBalance.StringFixed(2),
	}
}
