package v1_test

import (
	"net/http"
	"time"

	v1 "github.com/budgetbook/backend/internal/controllers/v1"
	"github.com/budgetbook/backend/internal/ledger"
	"github.com/budgetbook/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestInsightsGet verifies the health score and insight cards.
func (suite *TestSuiteStandard) TestInsightsGet() {
	_ = suite.createTestTransaction(v1.TransactionEditable{
		Amount:      decimal.NewFromInt(100000),
		Date:        time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC),
		Type:        ledger.TypeIncome,
		Category:    "Salary",
		Description: "Monthly Salary",
	})

	_ = suite.createTestTransaction(v1.TransactionEditable{
		Amount:      decimal.NewFromInt(50000),
		Date:        time.Date(2024, 8, 2, 0, 0, 0, 0, time.UTC),
		Category:    "Housing",
		Description: "Rent",
	})

	recorder := test.Request(suite.co, suite.T(), http.MethodGet, "http://example.com/v1/insights", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.InsightsResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	require.NotNil(suite.T(), response.Data)

	// Savings rate 50%, expense ratio 0.5, one expense category:
	// 50 + 30 + 0 = 80
	assert.Equal(suite.T(), 80, response.Data.HealthScore)
	assert.True(suite.T(), response.Data.SavingsRate.Equal(decimal.NewFromInt(50)))
	assert.Equal(suite.T(), "Housing", response.Data.TopExpenseCategory.Category)
	assert.True(suite.T(), response.Data.AverageExpense.Equal(decimal.NewFromInt(50000)))
	assert.Len(suite.T(), response.Data.Cards, 3)
}

// TestInsightsGetEmpty verifies the insights for an empty ledger.
func (suite *TestSuiteStandard) TestInsightsGetEmpty() {
	recorder := test.Request(suite.co, suite.T(), http.MethodGet, "http://example.com/v1/insights", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.InsightsResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	require.NotNil(suite.T(), response.Data)

	assert.Equal(suite.T(), 0, response.Data.HealthScore)
	assert.Equal(suite.T(), "None", response.Data.TopExpenseCategory.Category)
}
