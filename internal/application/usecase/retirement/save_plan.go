// Package retirement contains use cases for the retirement planner. A user
// keeps at most one plan; projections are re-derived from it on every read.
package retirement

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/smart-paisa/backend/internal/application/adapter"
	"github.com/smart-paisa/backend/internal/domain/entity"
	domainerror "github.com/smart-paisa/backend/internal/domain/error"
)

// MaxPlanAge bounds the accepted current and retirement ages.
const MaxPlanAge = 120

// SavePlanInput represents the input for saving a retirement plan.
type SavePlanInput struct {
	UserID               uuid.UUID
	CurrentAge           int
	RetirementAge        int
	MonthlyContribution  decimal.Decimal
	CurrentSavings       decimal.Decimal
	ExpectedReturnPct    float64
	InflationRatePct     float64
	DesiredMonthlyIncome decimal.Decimal
}

// SavePlanOutput represents the output after saving a plan.
type SavePlanOutput struct {
	Plan *entity.RetirementPlan
}

// SavePlanUseCase handles saving a user's retirement plan, replacing any
// existing one.
type SavePlanUseCase struct {
	planRepo adapter.RetirementPlanRepository
}

// NewSavePlanUseCase creates a new SavePlanUseCase instance.
func NewSavePlanUseCase(planRepo adapter.RetirementPlanRepository) *SavePlanUseCase {
	return &SavePlanUseCase{planRepo: planRepo}
}

// Execute validates and persists the plan.
func (uc *SavePlanUseCase) Execute(ctx context.Context, input SavePlanInput) (*SavePlanOutput, error) {
	if input.CurrentAge <= 0 || input.RetirementAge > MaxPlanAge {
		return nil, domainerror.NewRetirementError(
			domainerror.ErrCodeInvalidPlanInput,
			"ages must be between 1 and 120",
			nil,
		)
	}
	if input.RetirementAge <= input.CurrentAge {
		return nil, domainerror.NewRetirementError(
			domainerror.ErrCodeInvalidAgeRange,
			"retirement age must be greater than current age",
			domainerror.ErrInvalidAgeRange,
		)
	}
	if input.MonthlyContribution.IsNegative() || input.CurrentSavings.IsNegative() ||
		input.DesiredMonthlyIncome.IsNegative() {
		return nil, domainerror.NewRetirementError(
			domainerror.ErrCodeInvalidPlanInput,
			"monetary amounts must not be negative",
			nil,
		)
	}
	if input.ExpectedReturnPct < 0 || input.InflationRatePct < 0 {
		return nil, domainerror.NewRetirementError(
			domainerror.ErrCodeInvalidPlanInput,
			"rates must not be negative",
			nil,
		)
	}

	plan := entity.NewRetirementPlan(
		input.UserID,
		input.CurrentAge,
		input.RetirementAge,
		input.MonthlyContribution,
		input.CurrentSavings,
		input.ExpectedReturnPct,
		input.InflationRatePct,
		input.DesiredMonthlyIncome,
	)
	if err := uc.planRepo.Upsert(ctx, plan); err != nil {
		return nil, err
	}

	return &SavePlanOutput{Plan: plan}, nil
}
