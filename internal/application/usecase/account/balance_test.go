package account

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/smart-paisa/backend/internal/domain/entity"
)

func newTestAccount(userID uuid.UUID, name string, opening string) *entity.Account {
	return entity.NewAccount(userID, name, entity.AccountKindBank, decimal.RequireFromString(opening), false)
}

func newTestTransaction(userID, accountID uuid.UUID, kind entity.TransactionKind, amount string) *entity.Transaction {
	return entity.NewTransaction(
		userID,
		accountID,
		entity.AccountKindBank,
		kind,
		decimal.RequireFromString(amount),
		"test",
		time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
	)
}

func TestDeriveBalances(t *testing.T) {
	userID := uuid.New()

	t.Run("opening balance plus income minus expense", func(t *testing.T) {
		acc := newTestAccount(userID, "Everest Bank", "500")
		transactions := []*entity.Transaction{
			newTestTransaction(userID, acc.ID, entity.TransactionKindIncome, "1000"),
			newTestTransaction(userID, acc.ID, entity.TransactionKindExpense, "300"),
			newTestTransaction(userID, acc.ID, entity.TransactionKindIncome, "50.25"),
		}

		balances := DeriveBalances([]*entity.Account{acc}, transactions)

		if len(balances) != 1 {
			t.Fatalf("expected 1 balance, got %d", len(balances))
		}
		if !balances[0].Balance.Equal(decimal.RequireFromString("1250.25")) {
			t.Errorf("expected balance 1250.25, got %s", balances[0].Balance)
		}
	})

	t.Run("account without transactions keeps its opening balance", func(t *testing.T) {
		funded := newTestAccount(userID, "Nabil Bank", "0")
		fresh := newTestAccount(userID, "Kumari Bank", "750")
		transactions := []*entity.Transaction{
			newTestTransaction(userID, funded.ID, entity.TransactionKindIncome, "100"),
		}

		balances := DeriveBalances([]*entity.Account{funded, fresh}, transactions)

		if !balances[1].Balance.Equal(decimal.RequireFromString("750")) {
			t.Errorf("expected untouched account to keep 750, got %s", balances[1].Balance)
		}
	})

	t.Run("transactions for other accounts are ignored", func(t *testing.T) {
		acc := newTestAccount(userID, "Everest Bank", "100")
		other := newTestAccount(userID, "eSewa", "0")
		transactions := []*entity.Transaction{
			newTestTransaction(userID, other.ID, entity.TransactionKindIncome, "9999"),
		}

		balances := DeriveBalances([]*entity.Account{acc}, transactions)

		if !balances[0].Balance.Equal(decimal.RequireFromString("100")) {
			t.Errorf("expected balance 100, got %s", balances[0].Balance)
		}
	})

	t.Run("recomputation is idempotent", func(t *testing.T) {
		acc := newTestAccount(userID, "Everest Bank", "500")
		transactions := []*entity.Transaction{
			newTestTransaction(userID, acc.ID, entity.TransactionKindIncome, "1000"),
			newTestTransaction(userID, acc.ID, entity.TransactionKindExpense, "250"),
		}
		accounts := []*entity.Account{acc}

		first := DeriveBalances(accounts, transactions)
		second := DeriveBalances(accounts, transactions)

		if !first[0].Balance.Equal(second[0].Balance) {
			t.Errorf("balance changed between runs: %s vs %s", first[0].Balance, second[0].Balance)
		}
	})

	t.Run("empty inputs yield empty output", func(t *testing.T) {
		if got := DeriveBalances(nil, nil); len(got) != 0 {
			t.Errorf("expected no balances, got %d", len(got))
		}
	})
}

func TestDeriveCategoryTotals(t *testing.T) {
	userID := uuid.New()
	accountID := uuid.New()

	t.Run("sums income and expense", func(t *testing.T) {
		totals := DeriveCategoryTotals([]*entity.Transaction{
			newTestTransaction(userID, accountID, entity.TransactionKindIncome, "1000"),
			newTestTransaction(userID, accountID, entity.TransactionKindExpense, "300"),
			newTestTransaction(userID, accountID, entity.TransactionKindExpense, "200"),
		})

		if !totals.TotalIncome.Equal(decimal.RequireFromString("1000")) {
			t.Errorf("expected income 1000, got %s", totals.TotalIncome)
		}
		if !totals.TotalExpense.Equal(decimal.RequireFromString("500")) {
			t.Errorf("expected expense 500, got %s", totals.TotalExpense)
		}
		if !totals.TotalBalance.Equal(decimal.RequireFromString("500")) {
			t.Errorf("expected balance 500, got %s", totals.TotalBalance)
		}
	})

	t.Run("empty list yields zero totals", func(t *testing.T) {
		totals := DeriveCategoryTotals(nil)

		if !totals.TotalIncome.IsZero() || !totals.TotalExpense.IsZero() || !totals.TotalBalance.IsZero() {
			t.Errorf("expected zero totals, got %+v", totals)
		}
	})
}
