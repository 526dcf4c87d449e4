// Package ledger implements the transaction store and the pure
// aggregation, budget evaluation and insight calculations over it.
package ledger

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Type is the type of a transaction.
type Type string

const (
	TypeIncome  Type = "income"
	TypeExpense Type = "expense"
)

// Valid reports whether t is one of the known transaction types.
func (t Type) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

// Transaction represents a single dated money movement.
//
// The amount is always the non-negative magnitude, the sign is derived
// from the type. Use Signed to get the signed amount.
type Transaction struct {
	ID            uuid.UUID       `json:"id" example:"65392deb-5e92-4268-b114-297faad6cdce"` // UUID for the transaction
	Date          time.Time       `json:"date" example:"2024-08-02T00:00:00Z"`               // Day the money moved. Day granularity, time of day carries no meaning
	Amount        decimal.Decimal `json:"amount" example:"28000"`                            // Non-negative magnitude
	Type          Type            `json:"type" example:"expense"`                            // income or expense
	Category      string          `json:"category" example:"Housing"`                        // Name of a category from the categorization model
	Description   string          `json:"description" example:"Monthly Rent"`                // What the transaction was for
	Note          string          `json:"note" example:"" default:""`                        // Additional notes
	PaymentMethod string          `json:"paymentMethod" example:"Bank Transfer" default:""`  // How the transaction was paid
}

// Signed returns the amount with the sign derived from the type,
// income positive and expense negative.
//
// This is the only place where the sign convention is implemented.
func (t Transaction) Signed() decimal.Decimal {
	if t.Type == TypeExpense {
		return t.Amount.Neg()
	}

	return t.Amount
}

// validate checks all invariants for a transaction. The ID is not
// checked since it is assigned by the store.
func (t Transaction) validate() error {
	if !t.Type.Valid() {
		return ErrTypeInvalid
	}

	if !t.Amount.IsPositive() {
		return ErrAmountNotPositive
	}

	if t.Date.IsZero() {
		return ErrDateNotSet
	}

	if strings.TrimSpace(t.Description) == "" {
		return ErrDescriptionEmpty
	}

	categoryType, ok := CategoryType(t.Category)
	if !ok {
		return ErrCategoryUnknown
	}

	if categoryType != t.Type {
		return ErrCategoryTypeMismatch
	}

	return nil
}
