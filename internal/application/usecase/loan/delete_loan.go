package loan

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/smart-paisa/backend/internal/application/adapter"
	domainerror "github.com/smart-paisa/backend/internal/domain/error"
)

// DeleteLoanInput represents the input for deleting a loan.
type DeleteLoanInput struct {
	UserID uuid.UUID
	LoanID uuid.UUID
}

// DeleteLoanUseCase handles loan deletion.
type DeleteLoanUseCase struct {
	loanRepo adapter.LoanRepository
}

// NewDeleteLoanUseCase creates a new DeleteLoanUseCase instance.
func NewDeleteLoanUseCase(loanRepo adapter.LoanRepository) *DeleteLoanUseCase {
	return &DeleteLoanUseCase{loanRepo: loanRepo}
}

// Execute deletes the loan after checking ownership.
func (uc *DeleteLoanUseCase) Execute(ctx context.Context, input DeleteLoanInput) error {
	l, err := uc.loanRepo.FindByID(ctx, input.LoanID)
	if err != nil {
		if errors.Is(err, domainerror.ErrLoanNotFound) {
			return domainerror.NewLoanError(
				domainerror.ErrCodeLoanNotFound,
				"loan not found",
				err,
			)
		}
		return err
	}
	if l.UserID != input.UserID {
		return domainerror.NewLoanError(
			domainerror.ErrCodeLoanNotAuthorized,
			"not authorized to delete this loan",
			domainerror.ErrNotAuthorizedToModifyLoan,
		)
	}

	return uc.loanRepo.Delete(ctx, input.LoanID)
}
