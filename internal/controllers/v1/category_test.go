package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/budgetbook/backend/internal/controllers/v1"
	"github.com/budgetbook/backend/internal/ledger"
	"github.com/budgetbook/backend/test"
	"github.com/stretchr/testify/assert"
)

// TestCategoriesGet verifies that the full category set is returned.
func (suite *TestSuiteStandard) TestCategoriesGet() {
	recorder := test.Request(suite.co, suite.T(), http.MethodGet, "http://example.com/v1/categories", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.CategoryListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	assert.Len(suite.T(), response.Data, len(ledger.Categories()))

	// The first categories are the income categories
	assert.Equal(suite.T(), "Salary", response.Data[0].Name)
	assert.Equal(suite.T(), ledger.TypeIncome, response.Data[0].Type)
}

// TestCategoriesOptions verifies the allowed methods for the category endpoints.
func (suite *TestSuiteStandard) TestCategoriesOptions() {
	tests := []struct {
		name string
		path string
	}{
		{"List", "http://example.com/v1/categories"},
		{"Suggest", "http://example.com/v1/categories/suggest"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(suite.co, t, http.MethodOptions, tt.path, "")
			test.AssertHTTPStatus(t, &recorder, http.StatusNoContent)
			assert.Equal(t, "OPTIONS, GET", recorder.Header().Get("allow"))
		})
	}
}

// TestCategorySuggest verifies the keyword based category suggestion.
func (suite *TestSuiteStandard) TestCategorySuggest() {
	tests := []struct {
		name     string // Name of the test
		text     string // The text to suggest a category for
		category string // Expected category
		matched  bool   // Whether a rule is expected to match
	}{
		{"Groceries", "Weekly+grocery+run", "Food & Groceries", true},
		{"Rent", "Rent+for+August", "Housing", true},
		{"Rent received", "Rent+received+for+the+flat", "Rental Income", true},
		{"No match", "zzzzz", "", false},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(suite.co, t, http.MethodGet, "http://example.com/v1/categories/suggest?text="+tt.text, "")
			test.AssertHTTPStatus(t, &recorder, http.StatusOK)

			var response v1.CategorySuggestionResponse
			test.DecodeResponse(t, &recorder, &response)

			assert.Equal(t, tt.category, response.Data.Category)
			assert.Equal(t, tt.matched, response.Data.Matched)
		})
	}
}

// TestCategorySuggestNoText verifies that the text parameter is required.
func (suite *TestSuiteStandard) TestCategorySuggestNoText() {
	recorder := test.Request(suite.co, suite.T(), http.MethodGet, "http://example.com/v1/categories/suggest", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}
