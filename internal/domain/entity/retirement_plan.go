// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RetirementPlan holds a user's saved retirement inputs. Each user keeps at
// most one plan; saving again overwrites it.
type RetirementPlan struct {
	ID                   uuid.UUID
	UserID               uuid.UUID
	CurrentAge           int
	RetirementAge        int
	MonthlyContribution  decimal.Decimal
	CurrentSavings       decimal.Decimal
	ExpectedReturnPct    float64
	InflationRatePct     float64
	DesiredMonthlyIncome decimal.Decimal
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// NewRetirementPlan creates a new RetirementPlan entity.
func NewRetirementPlan(
	userID uuid.UUID,
	currentAge, retirementAge int,
	monthlyContribution, currentSavings decimal.Decimal,
	expectedReturnPct, inflationRatePct float64,
	desiredMonthlyIncome decimal.Decimal,
) *RetirementPlan {
	now := time.Now().UTC()
	return &RetirementPlan{
		ID:                   uuid.New(),
		UserID:               userID,
		CurrentAge:           currentAge,
		RetirementAge:        retirementAge,
		MonthlyContribution:  monthlyContribution,
		CurrentSavings:       currentSavings,
		ExpectedReturnPct:    expectedReturnPct,
		InflationRatePct:     inflationRatePct,
		DesiredMonthlyIncome: desiredMonthlyIncome,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
}

// MonthsUntilRetirement returns the projection horizon in months.
func (p *RetirementPlan) MonthsUntilRetirement() int {
	return (p.RetirementAge - p.CurrentAge) * 12
}
