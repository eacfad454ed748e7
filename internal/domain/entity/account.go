// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountKind represents the category of a money-holding account.
type AccountKind string

const (
	AccountKindBank   AccountKind = "bank"
	AccountKindWallet AccountKind = "wallet"
	AccountKindCard   AccountKind = "card"
)

// ValidAccountKind reports whether the kind is one of the known categories.
func ValidAccountKind(kind AccountKind) bool {
	return kind == AccountKindBank || kind == AccountKindWallet || kind == AccountKindCard
}

// Account represents a registered bank account, wallet or card. The opening
// balance seeds the balance projection; the effective balance is always
// derived from the transaction log on read and never stored back.
type Account struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	Name           string
	Kind           AccountKind
	OpeningBalance decimal.Decimal
	Linked         bool
	CardExpiry     string // MM/YY, cards only
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewAccount creates a new Account entity.
func NewAccount(userID uuid.UUID, name string, kind AccountKind, openingBalance decimal.Decimal, linked bool) *Account {
	now := time.Now().UTC()
	return &Account{
		ID:             uuid.New(),
		UserID:         userID,
		Name:           name,
		Kind:           kind,
		OpeningBalance: openingBalance,
		Linked:         linked,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// AccountWithBalance pairs an account with its derived balance.
type AccountWithBalance struct {
	Account *Account
	Balance decimal.Decimal
}

// CategoryTotals represents category-wide aggregates over one account kind.
type CategoryTotals struct {
	TotalIncome  decimal.Decimal
	TotalExpense decimal.Decimal
	TotalBalance decimal.Decimal
}
