package retirement

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/smart-paisa/backend/internal/domain/entity"
	domainerror "github.com/smart-paisa/backend/internal/domain/error"
)

type stubPlanRepo struct {
	plans map[uuid.UUID]*entity.RetirementPlan
}

func newStubPlanRepo() *stubPlanRepo {
	return &stubPlanRepo{plans: map[uuid.UUID]*entity.RetirementPlan{}}
}

func (r *stubPlanRepo) Upsert(_ context.Context, plan *entity.RetirementPlan) error {
	r.plans[plan.UserID] = plan
	return nil
}

func (r *stubPlanRepo) FindByUser(_ context.Context, userID uuid.UUID) (*entity.RetirementPlan, error) {
	plan, ok := r.plans[userID]
	if !ok {
		return nil, domainerror.ErrRetirementPlanNotFound
	}
	return plan, nil
}

func validInput(userID uuid.UUID) SavePlanInput {
	return SavePlanInput{
		UserID:               userID,
		CurrentAge:           30,
		RetirementAge:        60,
		MonthlyContribution:  decimal.NewFromInt(10000),
		CurrentSavings:       decimal.NewFromInt(500000),
		ExpectedReturnPct:    7,
		InflationRatePct:     2,
		DesiredMonthlyIncome: decimal.NewFromInt(50000),
	}
}

func TestSavePlan(t *testing.T) {
	t.Run("valid plan is saved", func(t *testing.T) {
		repo := newStubPlanRepo()
		uc := NewSavePlanUseCase(repo)
		userID := uuid.New()

		output, err := uc.Execute(context.Background(), validInput(userID))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Plan.MonthsUntilRetirement() != 360 {
			t.Errorf("expected 360 months horizon, got %d", output.Plan.MonthsUntilRetirement())
		}
		if _, ok := repo.plans[userID]; !ok {
			t.Error("plan was not persisted")
		}
	})

	t.Run("saving again replaces the plan", func(t *testing.T) {
		repo := newStubPlanRepo()
		uc := NewSavePlanUseCase(repo)
		userID := uuid.New()

		if _, err := uc.Execute(context.Background(), validInput(userID)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		updated := validInput(userID)
		updated.RetirementAge = 65
		if _, err := uc.Execute(context.Background(), updated); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if repo.plans[userID].RetirementAge != 65 {
			t.Errorf("expected replaced plan, got retirement age %d", repo.plans[userID].RetirementAge)
		}
	})

	t.Run("retirement age must exceed current age", func(t *testing.T) {
		uc := NewSavePlanUseCase(newStubPlanRepo())
		input := validInput(uuid.New())
		input.RetirementAge = input.CurrentAge

		_, err := uc.Execute(context.Background(), input)
		var retErr *domainerror.RetirementError
		if !errors.As(err, &retErr) {
			t.Fatalf("expected RetirementError, got %v", err)
		}
		if retErr.Code != domainerror.ErrCodeInvalidAgeRange {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeInvalidAgeRange, retErr.Code)
		}
	})

	t.Run("negative contribution rejected", func(t *testing.T) {
		uc := NewSavePlanUseCase(newStubPlanRepo())
		input := validInput(uuid.New())
		input.MonthlyContribution = decimal.NewFromInt(-1)

		_, err := uc.Execute(context.Background(), input)
		var retErr *domainerror.RetirementError
		if !errors.As(err, &retErr) {
			t.Fatalf("expected RetirementError, got %v", err)
		}
		if retErr.Code != domainerror.ErrCodeInvalidPlanInput {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeInvalidPlanInput, retErr.Code)
		}
	})
}

func TestProjectPlan(t *testing.T) {
	t.Run("projection spans the horizon and grows", func(t *testing.T) {
		repo := newStubPlanRepo()
		userID := uuid.New()
		if _, err := NewSavePlanUseCase(repo).Execute(context.Background(), validInput(userID)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output, err := NewProjectPlanUseCase(repo).Execute(context.Background(), ProjectPlanInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Projection.Points) != 360 {
			t.Fatalf("expected 360 projection points, got %d", len(output.Projection.Points))
		}
		opening := 500000.0
		if output.Projection.FinalBalance <= opening {
			t.Errorf("expected growth beyond opening savings, got %v", output.Projection.FinalBalance)
		}
		last := output.Projection.Points[len(output.Projection.Points)-1]
		if last.Balance != output.Projection.FinalBalance {
			t.Errorf("final balance %v does not match last point %v", output.Projection.FinalBalance, last.Balance)
		}
		if last.InflationAdjusted >= last.Balance {
			t.Errorf("adjusted balance %v should be below nominal %v", last.InflationAdjusted, last.Balance)
		}
	})

	t.Run("income discounting is exact", func(t *testing.T) {
		repo := newStubPlanRepo()
		userID := uuid.New()
		if _, err := NewSavePlanUseCase(repo).Execute(context.Background(), validInput(userID)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output, err := NewProjectPlanUseCase(repo).Execute(context.Background(), ProjectPlanInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		months := 360
		discount := math.Pow(1+2.0/100/12, float64(months))
		want := output.MonthlyIncome / discount
		if math.Abs(output.AdjustedMonthlyIncome-want) > 1e-9 {
			t.Errorf("expected adjusted income %v, got %v", want, output.AdjustedMonthlyIncome)
		}
	})

	t.Run("missing plan yields coded error", func(t *testing.T) {
		uc := NewProjectPlanUseCase(newStubPlanRepo())

		_, err := uc.Execute(context.Background(), ProjectPlanInput{UserID: uuid.New()})
		var retErr *domainerror.RetirementError
		if !errors.As(err, &retErr) {
			t.Fatalf("expected RetirementError, got %v", err)
		}
		if retErr.Code != domainerror.ErrCodeRetirementPlanMissing {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeRetirementPlanMissing, retErr.Code)
		}
	})
}
