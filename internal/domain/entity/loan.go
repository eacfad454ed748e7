// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Loan represents a registered amortized loan held by a user. The repayment
// figures are never stored; they are re-derived from the terms on read.
type Loan struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Name          string
	Principal     decimal.Decimal
	AnnualRatePct float64
	TermMonths    int
	StartDate     time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewLoan creates a new Loan entity.
func NewLoan(
	userID uuid.UUID,
	name string,
	principal decimal.Decimal,
	annualRatePct float64,
	termMonths int,
	startDate time.Time,
) *Loan {
	now := time.Now().UTC()
	return &Loan{
		ID:            uuid.New(),
		UserID:        userID,
		Name:          name,
		Principal:     principal,
		AnnualRatePct: annualRatePct,
		TermMonths:    termMonths,
		StartDate:     startDate,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}
