package dashboard

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/smart-paisa/backend/internal/domain/entity"
)

// HabitBands holds the percentage thresholds of the three-band expenditure
// heuristic. Shares above High draw a reduce-expenses advisory, shares below
// Low a well-managed note, anything in between a moderate note.
type HabitBands struct {
	High float64
	Low  float64
}

// DefaultHabitBands is the standard 30/10 banding.
var DefaultHabitBands = HabitBands{High: 30, Low: 10}

// maxHabitEntries caps the report at the top spending categories.
const maxHabitEntries = 3

// Advisory texts per band.
const (
	adviceReduce   = "This category dominates your spending. Consider reducing expenses here."
	adviceModerate = "Moderate expense level. Keep an eye on this category."
	adviceManaged  = "Well-managed spending in this category."
)

// HabitEntry is one category row of the expenditure habit report.
type HabitEntry struct {
	Category entity.AccountKind
	Amount   decimal.Decimal
	Share    string // percentage of total expense, two decimals
	Advice   string
}

// AnalyzeHabits groups expense transactions by account category, ranks the
// categories by their share of total expense and emits a banded advisory for
// each of the top three. No expenses yields an empty report.
func AnalyzeHabits(transactions []*entity.Transaction, bands HabitBands) []HabitEntry {
	byCategory := map[entity.AccountKind]decimal.Decimal{}
	var total decimal.Decimal
	for _, txn := range transactions {
		if txn.Kind != entity.TransactionKindExpense {
			continue
		}
		byCategory[txn.AccountKind] = byCategory[txn.AccountKind].Add(txn.Amount)
		total = total.Add(txn.Amount)
	}
	if total.IsZero() {
		return nil
	}

	entries := make([]HabitEntry, 0, len(byCategory))
	totalF, _ := total.Float64()
	for category, amount := range byCategory {
		amountF, _ := amount.Float64()
		share := amountF / totalF * 100

		advice := adviceModerate
		switch {
		case share > bands.High:
			advice = adviceReduce
		case share < bands.Low:
			advice = adviceManaged
		}

		entries = append(entries, HabitEntry{
			Category: category,
			Amount:   amount,
			Share:    fmt.Sprintf("%.2f%%", share),
			Advice:   advice,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Amount.Equal(entries[j].Amount) {
			return entries[i].Category < entries[j].Category
		}
		return entries[i].Amount.GreaterThan(entries[j].Amount)
	})

	if len(entries) > maxHabitEntries {
		entries = entries[:maxHabitEntries]
	}
	return entries
}
