package retirement

import (
	"context"
	"errors"
	"math"

	"github.com/google/uuid"

	"github.com/smart-paisa/backend/internal/application/adapter"
	"github.com/smart-paisa/backend/internal/domain/entity"
	domainerror "github.com/smart-paisa/backend/internal/domain/error"
	"github.com/smart-paisa/backend/internal/domain/finance"
)

// ProjectPlanInput represents the input for projecting the saved plan.
type ProjectPlanInput struct {
	UserID uuid.UUID
}

// ProjectPlanOutput represents the full retirement projection: the balance
// trajectory up to retirement, the final balances, and the monthly income the
// final balance sustains when annuitized over the same horizon.
type ProjectPlanOutput struct {
	Plan                  *entity.RetirementPlan
	Projection            finance.GrowthProjection
	MonthlyIncome         float64
	AdjustedMonthlyIncome float64
	MeetsDesiredIncome    bool
}

// ProjectPlanUseCase handles derivation of the retirement projection from the
// saved plan.
type ProjectPlanUseCase struct {
	planRepo adapter.RetirementPlanRepository
}

// NewProjectPlanUseCase creates a new ProjectPlanUseCase instance.
func NewProjectPlanUseCase(planRepo adapter.RetirementPlanRepository) *ProjectPlanUseCase {
	return &ProjectPlanUseCase{planRepo: planRepo}
}

// Execute loads the plan and derives the projection. The sustainable income
// annuitizes the final balance over the accumulation horizon, and its
// inflation-adjusted counterpart discounts it back to today's money.
func (uc *ProjectPlanUseCase) Execute(ctx context.Context, input ProjectPlanInput) (*ProjectPlanOutput, error) {
	plan, err := uc.planRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, domainerror.ErrRetirementPlanNotFound) {
			return nil, domainerror.NewRetirementError(
				domainerror.ErrCodeRetirementPlanMissing,
				"no retirement plan saved",
				err,
			)
		}
		return nil, err
	}

	months := plan.MonthsUntilRetirement()
	opening, _ := plan.CurrentSavings.Float64()
	monthly, _ := plan.MonthlyContribution.Float64()

	projection, err := finance.Project(opening, monthly, plan.ExpectedReturnPct, plan.InflationRatePct, months)
	if err != nil {
		return nil, domainerror.NewRetirementError(
			domainerror.ErrCodeInvalidPlanInput,
			"invalid plan inputs",
			err,
		)
	}

	income, err := finance.AnnuityIncome(projection.FinalBalance, plan.ExpectedReturnPct, months)
	if err != nil {
		return nil, domainerror.NewRetirementError(
			domainerror.ErrCodeInvalidPlanInput,
			"invalid plan inputs",
			err,
		)
	}

	monthlyInflation := plan.InflationRatePct / 100 / 12
	adjustedIncome := income / math.Pow(1+monthlyInflation, float64(months))

	desired, _ := plan.DesiredMonthlyIncome.Float64()
	return &ProjectPlanOutput{
		Plan:                  plan,
		Projection:            projection,
		MonthlyIncome:         income,
		AdjustedMonthlyIncome: adjustedIncome,
		MeetsDesiredIncome:    adjustedIncome >= desired,
	}, nil
}
