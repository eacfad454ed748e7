package retirement

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/smart-paisa/backend/internal/application/adapter"
	"github.com/smart-paisa/backend/internal/domain/entity"
	domainerror "github.com/smart-paisa/backend/internal/domain/error"
)

// GetPlanInput represents the input for retrieving the saved plan.
type GetPlanInput struct {
	UserID uuid.UUID
}

// GetPlanOutput represents the output of retrieving the saved plan.
type GetPlanOutput struct {
	Plan *entity.RetirementPlan
}

// GetPlanUseCase handles retrieval of the user's saved retirement plan.
type GetPlanUseCase struct {
	planRepo adapter.RetirementPlanRepository
}

// NewGetPlanUseCase creates a new GetPlanUseCase instance.
func NewGetPlanUseCase(planRepo adapter.RetirementPlanRepository) *GetPlanUseCase {
	return &GetPlanUseCase{planRepo: planRepo}
}

// Execute retrieves the user's plan.
func (uc *GetPlanUseCase) Execute(ctx context.Context, input GetPlanInput) (*GetPlanOutput, error) {
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

	return &GetPlanOutput{Plan: plan}, nil
}
