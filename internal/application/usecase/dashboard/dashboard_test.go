package dashboard

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/smart-paisa/backend/internal/domain/entity"
)

func expense(kind entity.AccountKind, amount int64) *entity.Transaction {
	return &entity.Transaction{
		ID:          uuid.New(),
		AccountID:   uuid.New(),
		AccountKind: kind,
		Kind:        entity.TransactionKindExpense,
		Amount:      decimal.NewFromInt(amount),
	}
}

func income(kind entity.AccountKind, amount int64) *entity.Transaction {
	return &entity.Transaction{
		ID:          uuid.New(),
		AccountID:   uuid.New(),
		AccountKind: kind,
		Kind:        entity.TransactionKindIncome,
		Amount:      decimal.NewFromInt(amount),
	}
}

func TestHealthScore(t *testing.T) {
	tests := []struct {
		name    string
		income  int64
		expense int64
		want    string
	}{
		{"zero income is poor", 0, 500, HealthScorePoor},
		{"overspending is poor", 1000, 1200, HealthScorePoor},
		{"seventy percent saved", 1000, 300, "70.00"},
		{"break even", 1000, 1000, "0.00"},
		{"no expenses", 1000, 0, "100.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HealthScore(decimal.NewFromInt(tt.income), decimal.NewFromInt(tt.expense))
			if got != tt.want {
				t.Errorf("HealthScore(%d, %d) = %q, want %q", tt.income, tt.expense, got, tt.want)
			}
		})
	}

	t.Run("from transactions", func(t *testing.T) {
		txns := []*entity.Transaction{
			income(entity.AccountKindBank, 1000),
			expense(entity.AccountKindBank, 300),
		}
		if got := HealthScoreFromTransactions(txns); got != "70.00" {
			t.Errorf("expected 70.00, got %q", got)
		}
	})
}

func TestAnalyzeHabits(t *testing.T) {
	t.Run("top category draws reduce advisory", func(t *testing.T) {
		txns := []*entity.Transaction{
			expense(entity.AccountKindBank, 600),
			expense(entity.AccountKindCard, 300),
			expense(entity.AccountKindWallet, 100),
			income(entity.AccountKindBank, 5000), // ignored
		}

		entries := AnalyzeHabits(txns, DefaultHabitBands)
		if len(entries) != 3 {
			t.Fatalf("expected 3 entries, got %d", len(entries))
		}
		top := entries[0]
		if top.Category != entity.AccountKindBank {
			t.Errorf("expected bank on top, got %s", top.Category)
		}
		if top.Share != "60.00%" {
			t.Errorf("expected share 60.00%%, got %s", top.Share)
		}
		if top.Advice != adviceReduce {
			t.Errorf("expected reduce advisory, got %q", top.Advice)
		}
	})

	t.Run("band boundaries are exclusive", func(t *testing.T) {
		// card is exactly 30%, wallet exactly 10%; both land in the middle band
		txns := []*entity.Transaction{
			expense(entity.AccountKindBank, 600),
			expense(entity.AccountKindCard, 300),
			expense(entity.AccountKindWallet, 100),
		}

		entries := AnalyzeHabits(txns, DefaultHabitBands)
		if entries[1].Advice != adviceModerate {
			t.Errorf("expected moderate at exactly 30%%, got %q", entries[1].Advice)
		}
		if entries[2].Advice != adviceModerate {
			t.Errorf("expected moderate at exactly 10%%, got %q", entries[2].Advice)
		}
	})

	t.Run("small share draws well-managed note", func(t *testing.T) {
		txns := []*entity.Transaction{
			expense(entity.AccountKindBank, 950),
			expense(entity.AccountKindWallet, 50),
		}

		entries := AnalyzeHabits(txns, DefaultHabitBands)
		if entries[1].Advice != adviceManaged {
			t.Errorf("expected well-managed at 5%%, got %q", entries[1].Advice)
		}
	})

	t.Run("no expenses yields empty report", func(t *testing.T) {
		txns := []*entity.Transaction{income(entity.AccountKindBank, 1000)}
		if entries := AnalyzeHabits(txns, DefaultHabitBands); len(entries) != 0 {
			t.Errorf("expected empty report, got %d entries", len(entries))
		}
	})
}

func TestExpiringCards(t *testing.T) {
	now := time.Date(2025, time.March, 20, 12, 0, 0, 0, time.UTC)

	card := func(expiry string) *entity.Account {
		return &entity.Account{
			ID:         uuid.New(),
			Kind:       entity.AccountKindCard,
			Name:       "card " + expiry,
			CardExpiry: expiry,
		}
	}

	t.Run("card expiring this month is flagged", func(t *testing.T) {
		// 03/25 expires at end of March, inside the 15 day window from March 20
		got := ExpiringCards([]*entity.Account{card("03/25")}, now, DefaultExpiryWarningWindow)
		if len(got) != 1 {
			t.Fatalf("expected 1 expiring card, got %d", len(got))
		}
		if got[0].ExpiresAt.Month() != time.March {
			t.Errorf("expected March expiry, got %v", got[0].ExpiresAt)
		}
	})

	t.Run("card expiring later is not flagged", func(t *testing.T) {
		got := ExpiringCards([]*entity.Account{card("05/25")}, now, DefaultExpiryWarningWindow)
		if len(got) != 0 {
			t.Errorf("expected no expiring cards, got %d", len(got))
		}
	})

	t.Run("already expired card is reported", func(t *testing.T) {
		got := ExpiringCards([]*entity.Account{card("01/25")}, now, DefaultExpiryWarningWindow)
		if len(got) != 1 {
			t.Errorf("expected expired card reported, got %d", len(got))
		}
	})

	t.Run("non-card and malformed entries are skipped", func(t *testing.T) {
		bank := &entity.Account{ID: uuid.New(), Kind: entity.AccountKindBank, Name: "bank"}
		broken := card("13/25")
		got := ExpiringCards([]*entity.Account{bank, broken}, now, DefaultExpiryWarningWindow)
		if len(got) != 0 {
			t.Errorf("expected nothing flagged, got %d", len(got))
		}
	})
}
