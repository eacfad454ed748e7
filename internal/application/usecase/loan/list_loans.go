package loan

import (
	"context"

	"github.com/google/uuid"

	"github.com/smart-paisa/backend/internal/application/adapter"
	"github.com/smart-paisa/backend/internal/domain/entity"
	"github.com/smart-paisa/backend/internal/domain/finance"
)

// LoanWithResult pairs a loan with its derived repayment figures.
type LoanWithResult struct {
	Loan   *entity.Loan
	Result finance.AmortizationResult
}

// ListLoansInput represents the input for listing loans.
type ListLoansInput struct {
	UserID uuid.UUID
}

// ListLoansOutput represents the output of listing loans.
type ListLoansOutput struct {
	Loans []LoanWithResult
}

// ListLoansUseCase handles retrieval of a user's loans with derived figures.
type ListLoansUseCase struct {
	loanRepo adapter.LoanRepository
}

// NewListLoansUseCase creates a new ListLoansUseCase instance.
func NewListLoansUseCase(loanRepo adapter.LoanRepository) *ListLoansUseCase {
	return &ListLoansUseCase{loanRepo: loanRepo}
}

// Execute retrieves the user's loans and re-derives the repayment figures
// from the stored terms. Terms were validated on creation, so derivation
// cannot fail here; a zero result is returned if it somehow does.
func (uc *ListLoansUseCase) Execute(ctx context.Context, input ListLoansInput) (*ListLoansOutput, error) {
	loans, err := uc.loanRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	output := &ListLoansOutput{Loans: make([]LoanWithResult, 0, len(loans))}
	for _, l := range loans {
		principal, _ := l.Principal.Float64()
		result, _ := finance.Amortize(finance.LoanTerms{
			Principal:     principal,
			AnnualRatePct: l.AnnualRatePct,
			TermMonths:    l.TermMonths,
		})
		output.Loans = append(output.Loans, LoanWithResult{Loan: l, Result: result})
	}
	return output, nil
}
