package ledger

import (
	"github.com/budgetbook/backend/internal/types"
	"github.com/shopspring/decimal"
)

// BudgetStatus classifies spending against a configured limit.
type BudgetStatus string

const (
	StatusSafe       BudgetStatus = "SAFE"        // Less than 80% of the limit spent
	StatusNearLimit  BudgetStatus = "NEAR_LIMIT"  // 80% or more of the limit spent
	StatusOverBudget BudgetStatus = "OVER_BUDGET" // The limit is reached or exceeded
)

// CategoryBudget is the spend-vs-limit evaluation for one category.
type CategoryBudget struct {
	Category   string          `json:"category" example:"Housing"`      // Name of the category
	Limit      decimal.Decimal `json:"limit" example:"25000"`           // The configured limit
	Spent      decimal.Decimal `json:"spent" example:"28000"`           // Expenses for the category in the evaluated month
	Remaining  decimal.Decimal `json:"remaining" example:"-3000"`       // Limit minus spent, negative when over budget
	Percentage decimal.Decimal `json:"percentage" example:"112"`        // Spent share of the limit in percent, 0 when the limit is 0
	Status     BudgetStatus    `json:"status" example:"OVER_BUDGET"`    // Classification of the spending
}

var oneHundred = decimal.NewFromInt(100)
var eighty = decimal.NewFromInt(80)

// EvaluateBudgets evaluates all configured limits against the expenses
// of the given month. The result is ordered by the canonical category
// order. Evaluation is a total function, a limit of zero yields a
// percentage of zero and status SAFE rather than a division error.
func EvaluateBudgets(limits map[string]decimal.Decimal, transactions []Transaction, month types.Month) []CategoryBudget {
	spent := make(map[string]decimal.Decimal)
	for _, t := range transactions {
		if t.Type != TypeExpense || !month.Contains(t.Date) {
			continue
		}

		spent[t.Category] = spent[t.Category].Add(t.Amount)
	}

	budgets := make([]CategoryBudget, 0, len(limits))
	for _, category := range categories {
		limit, ok := limits[category.Name]
		if !ok {
			continue
		}

		budgets = append(budgets, evaluate(category.Name, limit, spent[category.Name]))
	}

	return budgets
}

func evaluate(category string, limit, spent decimal.Decimal) CategoryBudget {
	percentage := decimal.Zero
	if limit.IsPositive() {
		percentage = spent.Div(limit).Mul(oneHundred)
	}

	status := StatusSafe
	switch {
	case percentage.GreaterThanOrEqual(oneHundred):
		status = StatusOverBudget
	case percentage.GreaterThanOrEqual(eighty):
		status = StatusNearLimit
	}

	return CategoryBudget{
		Category:   category,
		Limit:      limit,
		Spent:      spent,
		Remaining:  limit.Sub(spent),
		Percentage: percentage,
		Status:     status,
	}
}
