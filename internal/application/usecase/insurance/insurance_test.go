package insurance

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/smart-paisa/backend/internal/domain/entity"
	domainerror "github.com/smart-paisa/backend/internal/domain/error"
)

type stubInsuranceRepo struct {
	policies map[uuid.UUID]*entity.InsurancePolicy
}

func newStubInsuranceRepo() *stubInsuranceRepo {
	return &stubInsuranceRepo{policies: map[uuid.UUID]*entity.InsurancePolicy{}}
}

func (r *stubInsuranceRepo) Create(_ context.Context, p *entity.InsurancePolicy) error {
	r.policies[p.ID] = p
	return nil
}

func (r *stubInsuranceRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.InsurancePolicy, error) {
	p, ok := r.policies[id]
	if !ok {
		return nil, domainerror.ErrPolicyNotFound
	}
	return p, nil
}

func (r *stubInsuranceRepo) FindByUser(_ context.Context, userID uuid.UUID) ([]*entity.InsurancePolicy, error) {
	var out []*entity.InsurancePolicy
	for _, p := range r.policies {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *stubInsuranceRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.policies, id)
	return nil
}

func validPolicyInput(userID uuid.UUID) CreatePolicyInput {
	return CreatePolicyInput{
		UserID:        userID,
		Name:          "Term Life",
		Provider:      "Acme Life",
		AnnualPremium: decimal.NewFromInt(5000),
		TermYears:     20,
		AnnualRatePct: 6,
		NextDueDate:   time.Now().UTC().AddDate(0, 1, 0),
	}
}

func TestCreatePolicy(t *testing.T) {
	t.Run("policy is persisted with derived maturity value", func(t *testing.T) {
		repo := newStubInsuranceRepo()
		uc := NewCreatePolicyUseCase(repo)

		output, err := uc.Execute(context.Background(), validPolicyInput(uuid.New()))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// 5000 * 20 * 1.06
		if math.Abs(output.MaturityValue-106000) > 0.01 {
			t.Errorf("expected maturity value 106000, got %v", output.MaturityValue)
		}
		if _, ok := repo.policies[output.Policy.ID]; !ok {
			t.Error("policy was not persisted")
		}
	})

	t.Run("zero term rejected", func(t *testing.T) {
		uc := NewCreatePolicyUseCase(newStubInsuranceRepo())
		input := validPolicyInput(uuid.New())
		input.TermYears = 0

		_, err := uc.Execute(context.Background(), input)
		var insErr *domainerror.InsuranceError
		if !errors.As(err, &insErr) {
			t.Fatalf("expected InsuranceError, got %v", err)
		}
		if insErr.Code != domainerror.ErrCodePolicyInvalidTerms {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodePolicyInvalidTerms, insErr.Code)
		}
	})

	t.Run("blank name rejected", func(t *testing.T) {
		uc := NewCreatePolicyUseCase(newStubInsuranceRepo())
		input := validPolicyInput(uuid.New())
		input.Name = ""

		_, err := uc.Execute(context.Background(), input)
		var insErr *domainerror.InsuranceError
		if !errors.As(err, &insErr) {
			t.Fatalf("expected InsuranceError, got %v", err)
		}
		if insErr.Code != domainerror.ErrCodePolicyInvalidTerms {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodePolicyInvalidTerms, insErr.Code)
		}
	})
}

func TestListPolicies(t *testing.T) {
	repo := newStubInsuranceRepo()
	userID := uuid.New()
	first := validPolicyInput(userID)
	second := validPolicyInput(userID)
	second.Name = "Health Cover"
	second.AnnualPremium = decimal.NewFromInt(3000)
	for _, input := range []CreatePolicyInput{first, second} {
		if _, err := NewCreatePolicyUseCase(repo).Execute(context.Background(), input); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if _, err := NewCreatePolicyUseCase(repo).Execute(context.Background(), validPolicyInput(uuid.New())); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	output, err := NewListPoliciesUseCase(repo).Execute(context.Background(), ListPoliciesInput{UserID: userID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(output.Policies) != 2 {
		t.Fatalf("expected 2 policies, got %d", len(output.Policies))
	}
	if !output.TotalPremium.Equal(decimal.NewFromInt(8000)) {
		t.Errorf("expected total premium 8000, got %s", output.TotalPremium)
	}
}

func TestDeletePolicy(t *testing.T) {
	t.Run("owner can delete", func(t *testing.T) {
		repo := newStubInsuranceRepo()
		userID := uuid.New()
		created, err := NewCreatePolicyUseCase(repo).Execute(context.Background(), validPolicyInput(userID))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		uc := NewDeletePolicyUseCase(repo)
		if err := uc.Execute(context.Background(), DeletePolicyInput{UserID: userID, PolicyID: created.Policy.ID}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, ok := repo.policies[created.Policy.ID]; ok {
			t.Error("policy was not deleted")
		}
	})

	t.Run("missing policy returns not found", func(t *testing.T) {
		uc := NewDeletePolicyUseCase(newStubInsuranceRepo())

		err := uc.Execute(context.Background(), DeletePolicyInput{UserID: uuid.New(), PolicyID: uuid.New()})
		var insErr *domainerror.InsuranceError
		if !errors.As(err, &insErr) {
			t.Fatalf("expected InsuranceError, got %v", err)
		}
		if insErr.Code != domainerror.ErrCodePolicyNotFound {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodePolicyNotFound, insErr.Code)
		}
	})

	t.Run("non-owner is rejected", func(t *testing.T) {
		repo := newStubInsuranceRepo()
		created, err := NewCreatePolicyUseCase(repo).Execute(context.Background(), validPolicyInput(uuid.New()))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		uc := NewDeletePolicyUseCase(repo)
		err = uc.Execute(context.Background(), DeletePolicyInput{UserID: uuid.New(), PolicyID: created.Policy.ID})
		var insErr *domainerror.InsuranceError
		if !errors.As(err, &insErr) {
			t.Fatalf("expected InsuranceError, got %v", err)
		}
		if insErr.Code != domainerror.ErrCodePolicyNotAuthorized {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodePolicyNotAuthorized, insErr.Code)
		}
	})
}
