package loan

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/smart-paisa/backend/internal/application/adapter"
	"github.com/smart-paisa/backend/internal/domain/entity"
	domainerror "github.com/smart-paisa/backend/internal/domain/error"
	"github.com/smart-paisa/backend/internal/domain/finance"
)

// GetScheduleInput represents the input for retrieving a loan's amortization
// schedule.
type GetScheduleInput struct {
	UserID uuid.UUID
	LoanID uuid.UUID
}

// GetScheduleOutput represents the output of retrieving a loan's schedule.
type GetScheduleOutput struct {
	Loan     *entity.Loan
	Result   finance.AmortizationResult
	Schedule []finance.ScheduleEntry
}

// GetScheduleUseCase handles retrieval of a loan's month-by-month schedule.
type GetScheduleUseCase struct {
	loanRepo adapter.LoanRepository
}

// NewGetScheduleUseCase creates a new GetScheduleUseCase instance.
func NewGetScheduleUseCase(loanRepo adapter.LoanRepository) *GetScheduleUseCase {
	return &GetScheduleUseCase{loanRepo: loanRepo}
}

// Execute loads the loan and expands it into its repayment schedule.
func (uc *GetScheduleUseCase) Execute(ctx context.Context, input GetScheduleInput) (*GetScheduleOutput, error) {
	l, err := uc.loanRepo.FindByID(ctx, input.LoanID)
	if err != nil {
		if errors.Is(err, domainerror.ErrLoanNotFound) {
			return nil, domainerror.NewLoanError(
				domainerror.ErrCodeLoanNotFound,
				"loan not found",
				err,
			)
		}
		return nil, err
	}
	if l.UserID != input.UserID {
		return nil, domainerror.NewLoanError(
			domainerror.ErrCodeLoanNotAuthorized,
			"not authorized to view this loan",
			domainerror.ErrNotAuthorizedToModifyLoan,
		)
	}

	principal, _ := l.Principal.Float64()
	terms := finance.LoanTerms{
		Principal:     principal,
		AnnualRatePct: l.AnnualRatePct,
		TermMonths:    l.TermMonths,
	}
	result, err := finance.Amortize(terms)
	if err != nil {
		return nil, err
	}
	schedule, err := finance.AmortizationSchedule(terms)
	if err != nil {
		return nil, err
	}

	return &GetScheduleOutput{Loan: l, Result: result, Schedule: schedule}, nil
}
