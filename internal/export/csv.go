// Package export implements the CSV shape for transaction backups.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/budgetbook/backend/internal/ledger"
	"github.com/shopspring/decimal"
)

// Column indices of the CSV shape.
const (
	Date = iota
	Description
	Category
	Amount
	Type
	PaymentMethod
	Notes
)

var header = []string{"Date", "Description", "Category", "Amount", "Type", "PaymentMethod", "Notes"}

// WriteCSV writes all transactions in their input order. Values that
// contain commas are quoted by the CSV writer.
func WriteCSV(w io.Writer, transactions []ledger.Transaction) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(header); err != nil {
		return fmt.Errorf("could not write CSV header: %w", err)
	}

	for _, t := range transactions {
		record := []string{
			t.Date.Format("2006-01-02"),
			t.Description,
			t.Category,
			t.Amount.String(),
			string(t.Type),
			t.PaymentMethod,
			t.Note,
		}

		if err := writer.Write(record); err != nil {
			return fmt.Errorf("could not write CSV record: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// ParseCSV reads transactions from the CSV shape written by WriteCSV,
// preserving the row order. The parsed transactions carry no IDs, those
// are assigned when the transactions are added to a store.
func ParseCSV(r io.Reader) ([]ledger.Transaction, error) {
	reader := csv.NewReader(r)

	// Skip the header line
	_, err := reader.Read()
	if err == io.EOF {
		return []ledger.Transaction{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not read CSV header: %w", err)
	}

	transactions := make([]ledger.Transaction, 0)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("could not read line in CSV: %w", err)
		}

		date, err := time.Parse("2006-01-02", record[Date])
		if err != nil {
			return nil, fmt.Errorf("could not parse date: %w", err)
		}

		amount, err := decimal.NewFromString(record[Amount])
		if err != nil {
			return nil, fmt.Errorf("could not parse amount: %w", err)
		}

		transactions = append(transactions, ledger.Transaction{
			Date:          date,
			Description:   record[Description],
			Category:      record[Category],
			Amount:        amount,
			Type:          ledger.Type(record[Type]),
			PaymentMethod: record[PaymentMethod],
			Note:          record[Notes],
		})
	}

	return transactions, nil
}
