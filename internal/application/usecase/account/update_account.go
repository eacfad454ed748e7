// Package account contains account-related use cases.
package account

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/smart-paisa/backend/internal/application/adapter"
	"github.com/smart-paisa/backend/internal/domain/entity"
	domainerror "github.com/smart-paisa/backend/internal/domain/error"
)

// UpdateAccountInput represents the input for account update. Nil fields are
// left unchanged.
type UpdateAccountInput struct {
	UserID         uuid.UUID
	AccountID      uuid.UUID
	Name           *string
	OpeningBalance *decimal.Decimal
	Linked         *bool
	CardExpiry     *string
}

// UpdateAccountOutput represents the output of account update.
type UpdateAccountOutput struct {
	Account *entity.Account
}

// UpdateAccountUseCase handles account update logic.
type UpdateAccountUseCase struct {
	accountRepo adapter.AccountRepository
}

// NewUpdateAccountUseCase creates a new UpdateAccountUseCase instance.
func NewUpdateAccountUseCase(accountRepo adapter.AccountRepository) *UpdateAccountUseCase {
	return &UpdateAccountUseCase{accountRepo: accountRepo}
}

// Execute performs the account update.
func (uc *UpdateAccountUseCase) Execute(ctx context.Context, input UpdateAccountInput) (*UpdateAccountOutput, error) {
	account, err := uc.accountRepo.FindByID(ctx, input.AccountID)
	if err != nil {
		return nil, domainerror.NewAccountError(
			domainerror.ErrCodeAccountNotFound,
			"account not found",
			domainerror.ErrAccountNotFound,
		)
	}

	if account.UserID != input.UserID {
		return nil, domainerror.NewAccountError(
			domainerror.ErrCodeAccountNotAuthorized,
			"not authorized to modify account",
			domainerror.ErrNotAuthorizedToModifyAccount,
		)
	}

	if input.Name != nil {
		if *input.Name == "" || len(*input.Name) > MaxAccountNameLength {
			return nil, domainerror.NewAccountError(
				domainerror.ErrCodeInvalidAccountName,
				fmt.Sprintf("account name must be between 1 and %d characters", MaxAccountNameLength),
				domainerror.ErrInvalidAccountName,
			)
		}
		account.Name = *input.Name
	}

	if input.OpeningBalance != nil {
		account.OpeningBalance = *input.OpeningBalance
	}

	if input.Linked != nil {
		account.Linked = *input.Linked
	}

	if input.CardExpiry != nil {
		if account.Kind != entity.AccountKindCard || !cardExpiryPattern.MatchString(*input.CardExpiry) {
			return nil, domainerror.NewAccountError(
				domainerror.ErrCodeInvalidCardExpiry,
				"card expiry must be in MM/YY form and only applies to cards",
				domainerror.ErrInvalidCardExpiry,
			)
		}
		account.CardExpiry = *input.CardExpiry
	}

	account.UpdatedAt = time.Now().UTC()

	if err := uc.accountRepo.Update(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to update account: %w", err)
	}

	return &UpdateAccountOutput{Account: account}, nil
}
