package models

import (
	"github.com/shopspring/decimal"
)

// BudgetLimit is the persisted monthly limit for an expense category.
type BudgetLimit struct {
	DefaultModel
	Category string          `json:"category" gorm:"uniqueIndex" example:"Food & Groceries"`
	Amount   decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)" example:"12000"`
}
