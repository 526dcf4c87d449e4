package models

import (
	"strings"
	"time"

	"github.com/budgetbook/backend/internal/ledger"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Transaction is the persisted form of a ledger transaction.
type Transaction struct {
	DefaultModel
	Date          time.Time       `json:"date" example:"2024-08-02T00:00:00Z"`
	Amount        decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)" example:"280.5"`
	Type          string          `json:"type" example:"expense"`
	Category      string          `json:"category" example:"Food & Groceries"`
	Description   string          `json:"description" example:"Bread, milk, eggs"`
	Note          string          `json:"note" example:"weekly run"`
	PaymentMethod string          `json:"paymentMethod" example:"UPI"`
}

func (t *Transaction) BeforeSave(_ *gorm.DB) error {
	t.Date = t.Date.In(time.UTC)
	t.Description = strings.TrimSpace(t.Description)
	t.Note = strings.TrimSpace(t.Note)
	t.PaymentMethod = strings.TrimSpace(t.PaymentMethod)

	return nil
}

// Ledger converts the row into its in-memory representation.
func (t Transaction) Ledger() ledger.Transaction {
	return ledger.Transaction{
		ID:            t.ID,
		Date:          t.Date,
		Amount:        t.Amount,
		Type:          ledger.Type(t.Type),
		Category:      t.Category,
		Description:   t.Description,
		Note:          t.Note,
		PaymentMethod: t.PaymentMethod,
	}
}

func newTransaction(t ledger.Transaction) Transaction {
	return Transaction{
		DefaultModel:  DefaultModel{ID: t.ID},
		Date:          t.Date,
		Amount:        t.Amount,
		Type:          string(t.Type),
		Category:      t.Category,
		Description:   t.Description,
		Note:          t.Note,
		PaymentMethod: t.PaymentMethod,
	}
}
