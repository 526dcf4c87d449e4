package ledger

import (
	"sync"

	"github.com/shopspring/decimal"
)

// Limits holds the configured budget limits per expense category.
//
// Limits are edited wholesale, the full mapping is replaced on every
// update. The lifecycle is independent of the transactions.
type Limits struct {
	mu      sync.Mutex
	amounts map[string]decimal.Decimal
}

// NewLimits returns a Limits instance with the given initial mapping.
// The initial mapping is not validated, it is expected to come from
// DefaultBudgetLimits or from persisted state that was valid on save.
func NewLimits(initial map[string]decimal.Decimal) *Limits {
	amounts := make(map[string]decimal.Decimal, len(initial))
	for category, amount := range initial {
		amounts[category] = amount
	}

	return &Limits{amounts: amounts}
}

// Snapshot returns a copy of the current limit mapping.
func (l *Limits) Snapshot() map[string]decimal.Decimal {
	l.mu.Lock()
	defer l.mu.Unlock()

	snapshot := make(map[string]decimal.Decimal, len(l.amounts))
	for category, amount := range l.amounts {
		snapshot[category] = amount
	}

	return snapshot
}

// Replace validates the new mapping and replaces the current one.
// Categories must exist and be expense categories, limits must not be
// negative. A limit of zero removes the constraint for the category.
func (l *Limits) Replace(amounts map[string]decimal.Decimal) error {
	validated := make(map[string]decimal.Decimal, len(amounts))
	for category, amount := range amounts {
		categoryType, ok := CategoryType(category)
		if !ok {
			return ErrCategoryUnknown
		}

		if categoryType != TypeExpense {
			return ErrCategoryNotExpense
		}

		if amount.IsNegative() {
			return ErrLimitNegative
		}

		if amount.IsPositive() {
			validated[category] = amount
		}
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.amounts = validated

	return nil
}
