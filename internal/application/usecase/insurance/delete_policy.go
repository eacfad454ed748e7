package insurance

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/smart-paisa/backend/internal/application/adapter"
	domainerror "github.com/smart-paisa/backend/internal/domain/error"
)

// DeletePolicyInput represents the input for deleting a policy.
type DeletePolicyInput struct {
	UserID   uuid.UUID
	PolicyID uuid.UUID
}

// DeletePolicyUseCase handles insurance policy deletion.
type DeletePolicyUseCase struct {
	insuranceRepo adapter.InsuranceRepository
}

// NewDeletePolicyUseCase creates a new DeletePolicyUseCase instance.
func NewDeletePolicyUseCase(insuranceRepo adapter.InsuranceRepository) *DeletePolicyUseCase {
	return &DeletePolicyUseCase{insuranceRepo: insuranceRepo}
}

// Execute deletes the policy after checking ownership.
func (uc *DeletePolicyUseCase) Execute(ctx context.Context, input DeletePolicyInput) error {
	p, err := uc.insuranceRepo.FindByID(ctx, input.PolicyID)
	if err != nil {
		if errors.Is(err, domainerror.ErrPolicyNotFound) {
			return domainerror.NewInsuranceError(
				domainerror.ErrCodePolicyNotFound,
				"insurance policy not found",
				err,
			)
		}
		return err
	}
	if p.UserID != input.UserID {
		return domainerror.NewInsuranceError(
			domainerror.ErrCodePolicyNotAuthorized,
			"not authorized to delete this policy",
			domainerror.ErrNotAuthorizedToModifyPolicy,
		)
	}

	return uc.insuranceRepo.Delete(ctx, input.PolicyID)
}
