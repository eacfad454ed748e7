package loan

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

type stubLoanRepo struct {
	loans map[uuid.UUID]*entity.Loan
}

func newStubLoanRepo() *stubLoanRepo {
	return &stubLoanRepo{loans: map[uuid.UUID]*entity.Loan{}}
}

func (r *stubLoanRepo) Create(_ context.Context, l *entity.Loan) error {
	r.loans[l.ID] = l
	return nil
}

func (r *stubLoanRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Loan, error) {
	l, ok := r.loans[id]
	if !ok {
		return nil, domainerror.ErrLoanNotFound
	}
	return l, nil
}

func (r *stubLoanRepo) FindByUser(_ context.Context, userID uuid.UUID) ([]*entity.Loan, error) {
	var out []*entity.Loan
	for _, l := range r.loans {
		if l.UserID == userID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *stubLoanRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.loans, id)
	return nil
}

func validLoanInput(userID uuid.UUID) CreateLoanInput {
	return CreateLoanInput{
		UserID:        userID,
		Name:          "Home Loan",
		Principal:     decimal.NewFromInt(100000),
		AnnualRatePct: 12,
		TermMonths:    12,
		StartDate:     time.Now().UTC(),
	}
}

func TestCreateLoan(t *testing.T) {
	t.Run("loan is persisted with derived payment", func(t *testing.T) {
		repo := newStubLoanRepo()
		uc := NewCreateLoanUseCase(repo)

		output, err := uc.Execute(context.Background(), validLoanInput(uuid.New()))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if math.Abs(output.Result.MonthlyPayment-8884.88) > 0.01 {
			t.Errorf("expected monthly payment 8884.88, got %v", output.Result.MonthlyPayment)
		}
		if _, ok := repo.loans[output.Loan.ID]; !ok {
			t.Error("loan was not persisted")
		}
	})

	t.Run("blank name rejected", func(t *testing.T) {
		uc := NewCreateLoanUseCase(newStubLoanRepo())
		input := validLoanInput(uuid.New())
		input.Name = "   "

		_, err := uc.Execute(context.Background(), input)
		var loanErr *domainerror.LoanError
		if !errors.As(err, &loanErr) {
			t.Fatalf("expected LoanError, got %v", err)
		}
		if loanErr.Code != domainerror.ErrCodeLoanInvalidTerms {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeLoanInvalidTerms, loanErr.Code)
		}
	})

	t.Run("zero term rejected", func(t *testing.T) {
		uc := NewCreateLoanUseCase(newStubLoanRepo())
		input := validLoanInput(uuid.New())
		input.TermMonths = 0

		_, err := uc.Execute(context.Background(), input)
		var loanErr *domainerror.LoanError
		if !errors.As(err, &loanErr) {
			t.Fatalf("expected LoanError, got %v", err)
		}
		if loanErr.Code != domainerror.ErrCodeLoanInvalidTerms {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeLoanInvalidTerms, loanErr.Code)
		}
	})
}

func TestGetSchedule(t *testing.T) {
	t.Run("schedule covers the full term and amortizes to zero", func(t *testing.T) {
		repo := newStubLoanRepo()
		userID := uuid.New()
		created, err := NewCreateLoanUseCase(repo).Execute(context.Background(), validLoanInput(userID))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		uc := NewGetScheduleUseCase(repo)
		output, err := uc.Execute(context.Background(), GetScheduleInput{UserID: userID, LoanID: created.Loan.ID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Schedule) != 12 {
			t.Fatalf("expected 12 entries, got %d", len(output.Schedule))
		}
		last := output.Schedule[len(output.Schedule)-1]
		if last.Month != 12 {
			t.Errorf("expected last month 12, got %d", last.Month)
		}
		if math.Abs(last.Remaining) > 0.01 {
			t.Errorf("expected zero remaining balance, got %v", last.Remaining)
		}
	})

	t.Run("missing loan returns not found", func(t *testing.T) {
		uc := NewGetScheduleUseCase(newStubLoanRepo())

		_, err := uc.Execute(context.Background(), GetScheduleInput{UserID: uuid.New(), LoanID: uuid.New()})
		var loanErr *domainerror.LoanError
		if !errors.As(err, &loanErr) {
			t.Fatalf("expected LoanError, got %v", err)
		}
		if loanErr.Code != domainerror.ErrCodeLoanNotFound {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeLoanNotFound, loanErr.Code)
		}
	})

	t.Run("another user's loan is not authorized", func(t *testing.T) {
		repo := newStubLoanRepo()
		created, err := NewCreateLoanUseCase(repo).Execute(context.Background(), validLoanInput(uuid.New()))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		uc := NewGetScheduleUseCase(repo)
		_, err = uc.Execute(context.Background(), GetScheduleInput{UserID: uuid.New(), LoanID: created.Loan.ID})
		var loanErr *domainerror.LoanError
		if !errors.As(err, &loanErr) {
			t.Fatalf("expected LoanError, got %v", err)
		}
		if loanErr.Code != domainerror.ErrCodeLoanNotAuthorized {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeLoanNotAuthorized, loanErr.Code)
		}
	})
}

func TestListLoans(t *testing.T) {
	repo := newStubLoanRepo()
	userID := uuid.New()
	if _, err := NewCreateLoanUseCase(repo).Execute(context.Background(), validLoanInput(userID)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := NewCreateLoanUseCase(repo).Execute(context.Background(), validLoanInput(uuid.New())); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	output, err := NewListLoansUseCase(repo).Execute(context.Background(), ListLoansInput{UserID: userID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(output.Loans) != 1 {
		t.Fatalf("expected 1 loan, got %d", len(output.Loans))
	}
	if math.Abs(output.Loans[0].Result.MonthlyPayment-8884.88) > 0.01 {
		t.Errorf("expected monthly payment 8884.88, got %v", output.Loans[0].Result.MonthlyPayment)
	}
}

func TestDeleteLoan(t *testing.T) {
	t.Run("owner can delete", func(t *testing.T) {
		repo := newStubLoanRepo()
		userID := uuid.New()
		created, err := NewCreateLoanUseCase(repo).Execute(context.Background(), validLoanInput(userID))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		uc := NewDeleteLoanUseCase(repo)
		if err := uc.Execute(context.Background(), DeleteLoanInput{UserID: userID, LoanID: created.Loan.ID}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, ok := repo.loans[created.Loan.ID]; ok {
			t.Error("loan was not deleted")
		}
	})

	t.Run("non-owner is rejected", func(t *testing.T) {
		repo := newStubLoanRepo()
		created, err := NewCreateLoanUseCase(repo).Execute(context.Background(), validLoanInput(uuid.New()))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		uc := NewDeleteLoanUseCase(repo)
		err = uc.Execute(context.Background(), DeleteLoanInput{UserID: uuid.New(), LoanID: created.Loan.ID})
		var loanErr *domainerror.LoanError
		if !errors.As(err, &loanErr) {
			t.Fatalf("expected LoanError, got %v", err)
		}
		if loanErr.Code != domainerror.ErrCodeLoanNotAuthorized {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeLoanNotAuthorized, loanErr.Code)
		}
		if _, ok := repo.loans[created.Loan.ID]; !ok {
			t.Error("loan should not have been deleted")
		}
	})
}
