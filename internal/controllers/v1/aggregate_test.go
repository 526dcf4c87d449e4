package v1_test

import (
	"net/http"
	"testing"
	"time"

	v1 "github.com/budgetbook/backend/internal/controllers/v1"
	"github.com/budgetbook/backend/internal/ledger"
	"github.com/budgetbook/backend/internal/types"
	"github.com/budgetbook/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAggregatesGet verifies the dashboard aggregate view.
func (suite *TestSuiteStandard) TestAggregatesGet() {
	_ = suite.createTestTransaction(v1.TransactionEditable{
		Amount:      decimal.NewFromInt(95000),
		Date:        time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC),
		Type:        ledger.TypeIncome,
		Category:    "Salary",
		Description: "Monthly Salary",
	})

	_ = suite.createTestTransaction(v1.TransactionEditable{
		Amount:      decimal.NewFromInt(28000),
		Date:        time.Date(2024, 8, 2, 0, 0, 0, 0, time.UTC),
		Category:    "Housing",
		Description: "Rent",
	})

	recorder := test.Request(suite.co, suite.T(), http.MethodGet, "http://example.com/v1/aggregates", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.AggregatesResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	require.NotNil(suite.T(), response.Data)

	assert.True(suite.T(), response.Data.Totals.Income.Equal(decimal.NewFromInt(95000)))
	assert.True(suite.T(), response.Data.Totals.Expense.Equal(decimal.NewFromInt(28000)))
	assert.True(suite.T(), response.Data.Totals.Balance.Equal(decimal.NewFromInt(67000)))

	require.Len(suite.T(), response.Data.IncomeByCategory, 1)
	assert.Equal(suite.T(), "Salary", response.Data.IncomeByCategory[0].Category)

	require.Len(suite.T(), response.Data.ExpenseByCategory, 1)
	assert.Equal(suite.T(), "Housing", response.Data.ExpenseByCategory[0].Category)

	// One bucket per weekday, Sunday first
	require.Len(suite.T(), response.Data.Weekdays, 7)

	// The balance after the last transaction is the total balance
	require.Len(suite.T(), response.Data.RunningBalance, 2)
	assert.True(suite.T(), response.Data.RunningBalance[1].Balance.Equal(response.Data.Totals.Balance))
}

// TestAggregatesGetEmpty verifies the aggregate view for an empty ledger.
func (suite *TestSuiteStandard) TestAggregatesGetEmpty() {
	recorder := test.Request(suite.co, suite.T(), http.MethodGet, "http://example.com/v1/aggregates", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.AggregatesResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	require.NotNil(suite.T(), response.Data)

	assert.True(suite.T(), response.Data.Totals.Balance.IsZero())
	assert.Empty(suite.T(), response.Data.ExpenseByCategory)
	assert.Empty(suite.T(), response.Data.RunningBalance)
}

// TestMonthsGet verifies that the month window always contains the
// requested number of months, empty ones included.
func (suite *TestSuiteStandard) TestMonthsGet() {
	_ = suite.createTestTransaction(v1.TransactionEditable{
		Amount:      decimal.NewFromInt(100),
		Date:        time.Now().UTC(),
		Category:    "Housing",
		Description: "Rent",
	})

	recorder := test.Request(suite.co, suite.T(), http.MethodGet, "http://example.com/v1/months?monthsBack=3", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.MonthListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	require.Len(suite.T(), response.Data, 3)

	// The last bucket is the current month and contains the expense
	current := types.MonthOf(time.Now().UTC())
	assert.True(suite.T(), response.Data[2].Month.Equal(current))
	assert.True(suite.T(), response.Data[2].Expense.Equal(decimal.NewFromInt(100)))

	// Earlier months are empty, not missing
	assert.True(suite.T(), response.Data[0].Income.IsZero())
	assert.True(suite.T(), response.Data[0].Expense.IsZero())
}

// TestMonthsGetDefault verifies the default window size.
func (suite *TestSuiteStandard) TestMonthsGetDefault() {
	recorder := test.Request(suite.co, suite.T(), http.MethodGet, "http://example.com/v1/months", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.MonthListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Len(suite.T(), response.Data, 6)
}

// TestMonthsGetInvalid verifies the validation of the monthsBack parameter.
func (suite *TestSuiteStandard) TestMonthsGetInvalid() {
	tests := []string{"-1", "0", "NaN"}

	for _, tt := range tests {
		suite.T().Run(tt, func(t *testing.T) {
			recorder := test.Request(suite.co, t, http.MethodGet, "http://example.com/v1/months?monthsBack="+tt, "")
			test.AssertHTTPStatus(t, &recorder, http.StatusBadRequest)
		})
	}
}
