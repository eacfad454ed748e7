// Package loan contains use cases for registered loans. Repayment figures are
// derived from the stored terms on every read, never persisted.
package loan

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

// MaxLoanNameLength is the maximum length of a loan name.
const MaxLoanNameLength = 100

// CreateLoanInput represents the input for registering a loan.
type CreateLoanInput struct {
	UserID        uuid.UUID
	Name          string
	Principal     decimal.Decimal
	AnnualRatePct float64
	TermMonths    int
	StartDate     time.Time
}

// CreateLoanOutput represents the output after registering a loan, including
// the derived repayment figures.
type CreateLoanOutput struct {
	Loan   *entity.Loan
	Result finance.AmortizationResult
}

// CreateLoanUseCase handles loan registration.
type CreateLoanUseCase struct {
	loanRepo adapter.LoanRepository
}

// NewCreateLoanUseCase creates a new CreateLoanUseCase instance.
func NewCreateLoanUseCase(loanRepo adapter.LoanRepository) *CreateLoanUseCase {
	return &CreateLoanUseCase{loanRepo: loanRepo}
}

// Execute validates the terms, derives the repayment figures and persists the
// loan.
func (uc *CreateLoanUseCase) Execute(ctx context.Context, input CreateLoanInput) (*CreateLoanOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" || len(name) > MaxLoanNameLength {
		return nil, domainerror.NewLoanError(
			domainerror.ErrCodeLoanInvalidTerms,
			"loan name must be between 1 and 100 characters",
			nil,
		)
	}

	principal, _ := input.Principal.Float64()
	result, err := finance.Amortize(finance.LoanTerms{
		Principal:     principal,
		AnnualRatePct: input.AnnualRatePct,
		TermMonths:    input.TermMonths,
	})
	if err != nil {
		return nil, domainerror.NewLoanError(
			domainerror.ErrCodeLoanInvalidTerms,
			"invalid loan terms",
			err,
		)
	}

	loan := entity.NewLoan(input.UserID, name, input.Principal, input.AnnualRatePct, input.TermMonths, input.StartDate)
	if err := uc.loanRepo.Create(ctx, loan); err != nil {
		return nil, err
	}

	return &CreateLoanOutput{Loan: loan, Result: result}, nil
}
