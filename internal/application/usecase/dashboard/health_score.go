// Package dashboard contains the aggregated reporting use cases: user-wide
// totals, the financial health score, the expenditure habit report and the
// expiring-card check.
package dashboard

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/smart-paisa/backend/internal/domain/entity"
)

// HealthScorePoor is the sentinel reported instead of a numeric score when
// income is zero or expenses exceed income.
const HealthScorePoor = "Poor"

// HealthScore computes the income/expense ratio score ((I-E)/I)*100 over the
// given totals, formatted to two decimal places. Zero income or a negative
// score collapses to the "Poor" sentinel rather than a meaningless number.
func HealthScore(totalIncome, totalExpense decimal.Decimal) string {
	if totalIncome.IsZero() || totalIncome.IsNegative() {
		return HealthScorePoor
	}

	income, _ := totalIncome.Float64()
	expense, _ := totalExpense.Float64()
	score := (income - expense) / income * 100
	if score < 0 {
		return HealthScorePoor
	}
	return fmt.Sprintf("%.2f", score)
}

// HealthScoreFromTransactions folds the transaction list into totals and
// scores them.
func HealthScoreFromTransactions(transactions []*entity.Transaction) string {
	var income, expense decimal.Decimal
	for _, txn := range transactions {
		switch txn.Kind {
		case entity.TransactionKindIncome:
			income = income.Add(txn.Amount)
		case entity.TransactionKindExpense:
			expense = expense.Add(txn.Amount)
		}
	}
	return HealthScore(income, expense)
}
