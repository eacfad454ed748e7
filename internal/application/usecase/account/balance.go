// Package account contains account-related use cases, including the balance
// aggregation that derives effective balances from the transaction log.
package account

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/smart-paisa/backend/internal/domain/entity"
)

// DeriveBalances folds the transaction list into per-account balances.
// The effective balance of an account is its opening balance plus income
// minus expense over its transactions; an account with no transactions keeps
// its opening balance, so a freshly registered account is never wiped to
// zero. The fold is pure: running it twice over the same inputs yields the
// same balances.
func DeriveBalances(accounts []*entity.Account, transactions []*entity.Transaction) []*entity.AccountWithBalance {
	net := make(map[uuid.UUID]decimal.Decimal, len(accounts))
	for _, txn := range transactions {
		delta := txn.Amount
		if txn.Kind == entity.TransactionKindExpense {
			delta = delta.Neg()
		}
		net[txn.AccountID] = net[txn.AccountID].Add(delta)
	}

	result := make([]*entity.AccountWithBalance, 0, len(accounts))
	for _, acc := range accounts {
		result = append(result, &entity.AccountWithBalance{
			Account: acc,
			Balance: acc.OpeningBalance.Add(net[acc.ID]),
		})
	}
	return result
}

// DeriveCategoryTotals sums income and expense across the transaction list.
// Empty input yields zero totals, not an error.
func DeriveCategoryTotals(transactions []*entity.Transaction) entity.CategoryTotals {
	var income, expense decimal.Decimal
	for _, txn := range transactions {
		switch txn.Kind {
		case entity.TransactionKindIncome:
			income = income.Add(txn.Amount)
		case entity.TransactionKindExpense:
			expense = expense.Add(txn.Amount)
		}
	}

	return entity.CategoryTotals{
		TotalIncome:  income,
		TotalExpense: expense,
		TotalBalance: income.Sub(expense),
	}
}
