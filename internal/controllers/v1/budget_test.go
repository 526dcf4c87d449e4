package v1_test

import (
	"net/http"
	"testing"
	"time"

	v1 "github.com/budgetbook/backend/internal/controllers/v1"
	"github.com/budgetbook/backend/internal/ledger"
	"github.com/budgetbook/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// TestBudgetsGet verifies the budget evaluation for a specific month.
func (suite *TestSuiteStandard) TestBudgetsGet() {
	_ = suite.createTestTransaction(v1.TransactionEditable{
		Amount:      decimal.NewFromInt(28000),
		Date:        time.Date(2024, 8, 2, 0, 0, 0, 0, time.UTC),
		Category:    "Housing",
		Description: "Rent",
	})

	recorder := test.Request(suite.co, suite.T(), http.MethodGet, "http://example.com/v1/budgets?month=2024-08", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.BudgetListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	assert.Equal(suite.T(), "2024-08", response.Month.String())

	var housing ledger.CategoryBudget
	for _, budget := range response.Data {
		if budget.Category == "Housing" {
			housing = budget
		}
	}

	// 28000 of 25000 spent: 112%, over budget
	assert.True(suite.T(), housing.Spent.Equal(decimal.NewFromInt(28000)))
	assert.True(suite.T(), housing.Remaining.Equal(decimal.NewFromInt(-3000)))
	assert.True(suite.T(), housing.Percentage.Equal(decimal.NewFromInt(112)))
	assert.Equal(suite.T(), ledger.StatusOverBudget, housing.Status)
}

// TestBudgetsGetOtherMonth verifies that transactions outside the
// evaluated month are ignored.
func (suite *TestSuiteStandard) TestBudgetsGetOtherMonth() {
	_ = suite.createTestTransaction(v1.TransactionEditable{
		Amount:      decimal.NewFromInt(28000),
		Date:        time.Date(2024, 8, 2, 0, 0, 0, 0, time.UTC),
		Category:    "Housing",
		Description: "Rent",
	})

	recorder := test.Request(suite.co, suite.T(), http.MethodGet, "http://example.com/v1/budgets?month=2024-09", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.BudgetListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	for _, budget := range response.Data {
		assert.True(suite.T(), budget.Spent.IsZero(), "category %s has spending in an empty month", budget.Category)
		assert.Equal(suite.T(), ledger.StatusSafe, budget.Status)
	}
}

// TestBudgetsUpdate verifies that the limits are replaced wholesale.
func (suite *TestSuiteStandard) TestBudgetsUpdate() {
	recorder := test.Request(suite.co, suite.T(), http.MethodPut, "http://example.com/v1/budgets", map[string]float64{
		"Travel": 5000,
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.BudgetLimitsResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	// Only the submitted limit remains
	assert.Len(suite.T(), response.Data, 1)
	assert.True(suite.T(), response.Data["Travel"].Equal(decimal.NewFromInt(5000)))
}

// TestBudgetsUpdateErrors verifies the validation of submitted limits.
func (suite *TestSuiteStandard) TestBudgetsUpdateErrors() {
	tests := []struct {
		name string // Name of the test
		body any    // The request body
	}{
		{"Unknown category", map[string]float64{"Gambling": 100}},
		{"Income category", map[string]float64{"Salary": 100}},
		{"Negative limit", map[string]float64{"Travel": -1}},
		{"Invalid body", `{ invalid json`},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(suite.co, t, http.MethodPut, "http://example.com/v1/budgets", tt.body)
			test.AssertHTTPStatus(t, &recorder, http.StatusBadRequest)
		})
	}
}

// TestBudgetsOptions verifies the allowed methods for the budget endpoint.
func (suite *TestSuiteStandard) TestBudgetsOptions() {
	recorder := test.Request(suite.co, suite.T(), http.MethodOptions, "http://example.com/v1/budgets", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
	assert.Equal(suite.T(), "OPTIONS, GET, PUT", recorder.Header().Get("allow"))
}
