package models

import (
	"github.com/shopspring/decimal"

	"github.com/budgetbook/backend/internal/ledger"
	"gorm.io/gorm"
)

// LoadTransactions reads all persisted transactions, oldest row first.
func LoadTransactions() ([]ledger.Transaction, error) {
	var rows []Transaction
	err := DB.Order("created_at asc").Find(&rows).Error
	if err != nil {
		return nil, err
	}

	transactions := make([]ledger.Transaction, 0, len(rows))
	for _, row := range rows {
		transactions = append(transactions, row.Ledger())
	}

	return transactions, nil
}

// SaveTransactions replaces all persisted transactions with the
// current ledger state.
func SaveTransactions(transactions []ledger.Transaction) error {
	return DB.Transaction(func(tx *gorm.DB) error {
		err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&Transaction{}).Error
		if err != nil {
			return err
		}

		for _, transaction := range transactions {
			row := newTransaction(transaction)
			err = tx.Create(&row).Error
			if err != nil {
				return err
			}
		}

		return nil
	})
}

// LoadBudgetLimits reads all persisted budget limits.
func LoadBudgetLimits() (map[string]decimal.Decimal, error) {
	var rows []BudgetLimit
	err := DB.Find(&rows).Error
	if err != nil {
		return nil, err
	}

	limits := make(map[string]decimal.Decimal, len(rows))
	for _, row := range rows {
		limits[row.Category] = row.Amount
	}

	return limits, nil
}

// SaveBudgetLimits replaces all persisted budget limits.
func SaveBudgetLimits(limits map[string]decimal.Decimal) error {
	return DB.Transaction(func(tx *gorm.DB) error {
		err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&BudgetLimit{}).Error
		if err != nil {
			return err
		}

		for category, amount := range limits {
			row := BudgetLimit{Category: category, Amount: amount}
			err = tx.Create(&row).Error
			if err != nil {
				return err
			}
		}

		return nil
	})
}
