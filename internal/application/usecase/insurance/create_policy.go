// Package insurance contains use cases for registered insurance policies.
// The maturity value is derived from the stored terms on every read.
package insurance

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/smart-paisa/backend/internal/application/adapter"
	"github.com/smart-paisa/backend/internal/domain/entity"
	domainerror "github.com/smart-paisa/backend/internal/domain/error"
	"github.com/smart-paisa/backend/internal/domain/finance"
)

// MaxPolicyNameLength is the maximum length of a policy name.
const MaxPolicyNameLength = 100

// CreatePolicyInput represents the input for registering a policy.
type CreatePolicyInput struct {
	UserID        uuid.UUID
	Name          string
	Provider      string
	AnnualPremium decimal.Decimal
	TermYears     int
	AnnualRatePct float64
	NextDueDate   time.Time
}

// CreatePolicyOutput represents the output after registering a policy.
type CreatePolicyOutput struct {
	Policy        *entity.InsurancePolicy
	MaturityValue float64
}

// CreatePolicyUseCase handles insurance policy registration.
type CreatePolicyUseCase struct {
	insuranceRepo adapter.InsuranceRepository
}

// NewCreatePolicyUseCase creates a new CreatePolicyUseCase instance.
func NewCreatePolicyUseCase(insuranceRepo adapter.InsuranceRepository) *CreatePolicyUseCase {
	return &CreatePolicyUseCase{insuranceRepo: insuranceRepo}
}

// Execute validates the terms, derives the maturity value and persists the
// policy.
func (uc *CreatePolicyUseCase) Execute(ctx context.Context, input CreatePolicyInput) (*CreatePolicyOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" || len(name) > MaxPolicyNameLength {
		return nil, domainerror.NewInsuranceError(
			domainerror.ErrCodePolicyInvalidTerms,
			"policy name must be between 1 and 100 characters",
			nil,
		)
	}

	premium, _ := input.AnnualPremium.Float64()
	maturity, err := finance.MaturityValue(premium, input.TermYears, input.AnnualRatePct)
	if err != nil {
		return nil, domainerror.NewInsuranceError(
			domainerror.ErrCodePolicyInvalidTerms,
			"invalid policy terms",
			err,
		)
	}

	policy := entity.NewInsurancePolicy(
		input.UserID,
		name,
		strings.TrimSpace(input.Provider),
		input.AnnualPremium,
		input.TermYears,
		input.AnnualRatePct,
		input.NextDueDate,
	)
	if err := uc.insuranceRepo.Create(ctx, policy); err != nil {
		return nil, err
	}

	return &CreatePolicyOutput{Policy: policy, MaturityValue: finance.Round2(maturity)}, nil
}
