// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InsurancePolicy represents a registered endowment insurance policy.
type InsurancePolicy struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Name          string
	Provider      string
	AnnualPremium decimal.Decimal
	TermYears     int
	AnnualRatePct float64
	NextDueDate   time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewInsurancePolicy creates a new InsurancePolicy entity.
func NewInsurancePolicy(
	userID uuid.UUID,
	name, provider string,
	annualPremium decimal.Decimal,
	termYears int,
	annualRatePct float64,
	nextDueDate time.Time,
) *InsurancePolicy {
	now := time.Now().UTC()
	return &InsurancePolicy{
		ID:            uuid.New(),
		UserID:        userID,
		Name:          name,
		Provider:      provider,
		AnnualPremium: annualPremium,
		TermYears:     termYears,
		AnnualRatePct: annualRatePct,
		NextDueDate:   nextDueDate,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}
