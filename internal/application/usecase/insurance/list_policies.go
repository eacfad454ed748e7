package insurance

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/smart-paisa/backend/internal/application/adapter"
	"github.com/smart-paisa/backend/internal/domain/entity"
	"github.com/smart-paisa/backend/internal/domain/finance"
)

// PolicyWithMaturity pairs a policy with its derived maturity value.
type PolicyWithMaturity struct {
	Policy        *entity.InsurancePolicy
	MaturityValue float64
}

// ListPoliciesInput represents the input for listing policies.
type ListPoliciesInput struct {
	UserID uuid.UUID
}

// ListPoliciesOutput represents the output of listing policies.
type ListPoliciesOutput struct {
	Policies     []PolicyWithMaturity
	TotalPremium decimal.Decimal
}

// ListPoliciesUseCase handles retrieval of a user's policies with derived
// maturity values and the aggregate annual premium.
type ListPoliciesUseCase struct {
	insuranceRepo adapter.InsuranceRepository
}

// NewListPoliciesUseCase creates a new ListPoliciesUseCase instance.
func NewListPoliciesUseCase(insuranceRepo adapter.InsuranceRepository) *ListPoliciesUseCase {
	return &ListPoliciesUseCase{insuranceRepo: insuranceRepo}
}

// Execute retrieves the user's policies and re-derives the maturity value
// from the stored terms. Terms were validated on creation, so derivation
// cannot fail here.
func (uc *ListPoliciesUseCase) Execute(ctx context.Context, input ListPoliciesInput) (*ListPoliciesOutput, error) {
	policies, err := uc.insuranceRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	output := &ListPoliciesOutput{
		Policies:     make([]PolicyWithMaturity, 0, len(policies)),
		TotalPremium: decimal.Zero,
	}
	for _, p := range policies {
		premium, _ := p.AnnualPremium.Float64()
		maturity, _ := finance.MaturityValue(premium, p.TermYears, p.AnnualRatePct)
		output.Policies = append(output.Policies, PolicyWithMaturity{
			Policy:        p,
			MaturityValue: finance.Round2(maturity),
		})
		output.TotalPremium = output.TotalPremium.Add(p.AnnualPremium)
	}
	return output, nil
}
