// Package account contains account-related use cases.
package account

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/smart-paisa/backend/internal/application/adapter"
	"github.com/smart-paisa/backend/internal/domain/entity"
	domainerror "github.com/smart-paisa/backend/internal/domain/error"
)

// ListAccountsInput represents the input for listing accounts.
type ListAccountsInput struct {
	UserID uuid.UUID
	Kind   *entity.AccountKind // nil lists every kind
}

// ListAccountsOutput represents the output of listing accounts, with derived
// balances and category-wide totals.
type ListAccountsOutput struct {
	Accounts []*entity.AccountWithBalance
	Totals   entity.CategoryTotals
}

// ListAccountsUseCase handles account listing with balance derivation.
type ListAccountsUseCase struct {
	accountRepo     adapter.AccountRepository
	transactionRepo adapter.TransactionRepository
}

// NewListAccountsUseCase creates a new ListAccountsUseCase instance.
func NewListAccountsUseCase(
	accountRepo adapter.AccountRepository,
	transactionRepo adapter.TransactionRepository,
) *ListAccountsUseCase {
	return &ListAccountsUseCase{
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
	}
}

// Execute lists the user's accounts with balances recomputed from the
// transaction log.
func (uc *ListAccountsUseCase) Execute(ctx context.Context, input ListAccountsInput) (*ListAccountsOutput, error) {
	if input.Kind != nil && !entity.ValidAccountKind(*input.Kind) {
		return nil, domainerror.NewAccountError(
			domainerror.ErrCodeInvalidAccountKind,
			"account kind must be 'bank', 'wallet' or 'card'",
			domainerror.ErrInvalidAccountKind,
		)
	}

	accounts, err := uc.accountRepo.FindByUser(ctx, input.UserID, input.Kind)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	filter := adapter.TransactionFilter{UserID: input.UserID, AccountKind: input.Kind}
	transactions, err := uc.transactionRepo.FindByFilter(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	return &ListAccountsOutput{
		Accounts: DeriveBalances(accounts, transactions),
		Totals:   DeriveCategoryTotals(transactions),
	}, nil
}
