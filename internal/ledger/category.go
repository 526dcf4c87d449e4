package ledger

import (
	"github.com/shopspring/decimal"
)

// CategoryDefinition is a named classification bucket with a declared
// type. Expense categories can carry a default budget limit, a zero
// default means unconstrained.
type CategoryDefinition struct {
	Name         string          `json:"name" example:"Housing"`         // Unique name of the category
	Type         Type            `json:"type" example:"expense"`         // Type of transactions the category can be used for
	DefaultLimit decimal.Decimal `json:"defaultLimit" example:"25000"`   // Budget limit seeded at first start, 0 for unconstrained
}

// categories is the closed category set. It is configured once here and
// never changes at runtime, transactions may only reference names from
// this list. The order is the iteration order for all derived views.
var categories = []CategoryDefinition{
	{Name: "Salary", Type: TypeIncome},
	{Name: "Business Income", Type: TypeIncome},
	{Name: "Investment Returns", Type: TypeIncome},
	{Name: "Rental Income", Type: TypeIncome},
	{Name: "Bonus", Type: TypeIncome},
	{Name: "Tips", Type: TypeIncome},
	{Name: "Gifts Received", Type: TypeIncome},
	{Name: "Other Income", Type: TypeIncome},

	{Name: "Housing", Type: TypeExpense, DefaultLimit: decimal.NewFromInt(25000)},
	{Name: "Food & Groceries", Type: TypeExpense, DefaultLimit: decimal.NewFromInt(12000)},
	{Name: "Transportation", Type: TypeExpense, DefaultLimit: decimal.NewFromInt(6000)},
	{Name: "Utilities", Type: TypeExpense, DefaultLimit: decimal.NewFromInt(4000)},
	{Name: "Insurance", Type: TypeExpense},
	{Name: "Healthcare", Type: TypeExpense, DefaultLimit: decimal.NewFromInt(4000)},
	{Name: "Personal Care", Type: TypeExpense, DefaultLimit: decimal.NewFromInt(2000)},
	{Name: "Entertainment", Type: TypeExpense, DefaultLimit: decimal.NewFromInt(5000)},
	{Name: "Shopping", Type: TypeExpense, DefaultLimit: decimal.NewFromInt(6000)},
	{Name: "Education", Type: TypeExpense, DefaultLimit: decimal.NewFromInt(3000)},
	{Name: "Debt Payments", Type: TypeExpense},
	{Name: "Savings", Type: TypeExpense},
	{Name: "Investment", Type: TypeExpense},
	{Name: "Travel", Type: TypeExpense},
	{Name: "Miscellaneous", Type: TypeExpense, DefaultLimit: decimal.NewFromInt(3000)},
}

var categoryTypes = func() map[string]Type {
	m := make(map[string]Type, len(categories))
	for _, category := range categories {
		m[category.Name] = category.Type
	}
	return m
}()

// Categories returns all category definitions in their canonical order.
func Categories() []CategoryDefinition {
	definitions := make([]CategoryDefinition, len(categories))
	copy(definitions, categories)
	return definitions
}

// CategoryType returns the declared type for a category name. The
// second return value reports whether the category exists.
func CategoryType(name string) (Type, bool) {
	t, ok := categoryTypes[name]
	return t, ok
}

// IsValidCategory reports whether the category exists and can be used
// for transactions of the given type.
func IsValidCategory(name string, transactionType Type) bool {
	t, ok := categoryTypes[name]
	return ok && t == transactionType
}

// DefaultBudgetLimits returns the budget limits seeded on first start.
// Only expense categories with a non-zero default are included.
func DefaultBudgetLimits() map[string]decimal.Decimal {
	limits := make(map[string]decimal.Decimal)
	for _, category := range categories {
		if category.Type == TypeExpense && category.DefaultLimit.IsPositive() {
			limits[category.Name] = category.DefaultLimit
		}
	}

	return limits
}
