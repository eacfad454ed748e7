// Package account contains account-related use cases.
package account

import (
	"context"
	"fmt"
	"regexp"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/smart-paisa/backend/internal/application/adapter"
	"github.com/smart-paisa/backend/internal/domain/entity"
	domainerror "github.com/smart-paisa/backend/internal/domain/error"
)

// MaxAccountNameLength is the maximum allowed length for account names.
const MaxAccountNameLength = 100

var cardExpiryPattern = regexp.MustCompile(`^(0[1-9]|1[0-2])/\d{2}$`)

// CreateAccountInput represents the input for account creation.
type CreateAccountInput struct {
	UserID         uuid.UUID
	Name           string
	Kind           entity.AccountKind
	OpeningBalance decimal.Decimal
	Linked         bool
	CardExpiry     string // required for cards, MM/YY
}

// CreateAccountOutput represents the output of account creation.
type CreateAccountOutput struct {
	Account *entity.Account
}

// CreateAccountUseCase handles account creation logic.
type CreateAccountUseCase struct {
	accountRepo adapter.AccountRepository
}

// NewCreateAccountUseCase creates a new CreateAccountUseCase instance.
func NewCreateAccountUseCase(accountRepo adapter.AccountRepository) *CreateAccountUseCase {
	return &CreateAccountUseCase{accountRepo: accountRepo}
}

// Execute performs the account creation.
func (uc *CreateAccountUseCase) Execute(ctx context.Context, input CreateAccountInput) (*CreateAccountOutput, error) {
	if !entity.ValidAccountKind(input.Kind) {
		return nil, domainerror.NewAccountError(
			domainerror.ErrCodeInvalidAccountKind,
			"account kind must be 'bank', 'wallet' or 'card'",
			domainerror.ErrInvalidAccountKind,
		)
	}

	if input.Name == "" || len(input.Name) > MaxAccountNameLength {
		return nil, domainerror.NewAccountError(
			domainerror.ErrCodeInvalidAccountName,
			fmt.Sprintf("account name must be between 1 and %d characters", MaxAccountNameLength),
			domainerror.ErrInvalidAccountName,
		)
	}

	if input.Kind == entity.AccountKindCard && !cardExpiryPattern.MatchString(input.CardExpiry) {
		return nil, domainerror.NewAccountError(
			domainerror.ErrCodeInvalidCardExpiry,
			"card expiry must be in MM/YY form",
			domainerror.ErrInvalidCardExpiry,
		)
	}

	account := entity.NewAccount(input.UserID, input.Name, input.Kind, input.OpeningBalance, input.Linked)
	if input.Kind == entity.AccountKindCard {
		account.CardExpiry = input.CardExpiry
	}

	if err := uc.accountRepo.Create(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	return &CreateAccountOutput{Account: account}, nil
}
