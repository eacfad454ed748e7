package dashboard

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/smart-paisa/backend/internal/application/adapter"
	"github.com/smart-paisa/backend/internal/application/usecase/account"
)

// GetOverviewInput represents the input for the dashboard overview.
type GetOverviewInput struct {
	UserID uuid.UUID
}

// GetOverviewOutput represents the user-wide dashboard aggregates.
type GetOverviewOutput struct {
	TotalIncome   decimal.Decimal
	TotalExpense  decimal.Decimal
	NetBalance    decimal.Decimal
	HealthScore   string
	HabitReport   []HabitEntry
	ExpiringCards []ExpiringCard
}

// GetOverviewUseCase derives the dashboard aggregates from the user's
// accounts and transaction log.
type GetOverviewUseCase struct {
	accountRepo     adapter.AccountRepository
	transactionRepo adapter.TransactionRepository
	habitBands      HabitBands
	expiryWindow    time.Duration
	now             func() time.Time
}

// NewGetOverviewUseCase creates a new GetOverviewUseCase instance with the
// default habit bands and expiry warning window.
func NewGetOverviewUseCase(
	accountRepo adapter.AccountRepository,
	transactionRepo adapter.TransactionRepository,
) *GetOverviewUseCase {
	return &GetOverviewUseCase{
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		habitBands:      DefaultHabitBands,
		expiryWindow:    DefaultExpiryWarningWindow,
		now:             time.Now,
	}
}

// Execute loads the user's accounts and transactions and derives all
// dashboard metrics in one pass.
func (uc *GetOverviewUseCase) Execute(ctx context.Context, input GetOverviewInput) (*GetOverviewOutput, error) {
	accounts, err := uc.accountRepo.FindByUser(ctx, input.UserID, nil)
	if err != nil {
		return nil, err
	}
	transactions, err := uc.transactionRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	totals := account.DeriveCategoryTotals(transactions)
	return &GetOverviewOutput{
		TotalIncome:   totals.TotalIncome,
		TotalExpense:  totals.TotalExpense,
		NetBalance:    totals.TotalBalance,
		HealthScore:   HealthScore(totals.TotalIncome, totals.TotalExpense),
		HabitReport:   AnalyzeHabits(transactions, uc.habitBands),
		ExpiringCards: ExpiringCards(accounts, uc.now(), uc.expiryWindow),
	}, nil
}
