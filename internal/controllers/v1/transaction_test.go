package v1_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	v1 "github.com/budgetbook/backend/internal/controllers/v1"
	"github.com/budgetbook/backend/internal/ledger"
	"github.com/budgetbook/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// createTestTransaction creates a test transaction via the v1 API.
func (suite *TestSuiteStandard) createTestTransaction(transaction v1.TransactionEditable, expectedStatus ...int) v1.TransactionResponse {
	if transaction.Date.IsZero() {
		transaction.Date = time.Date(2024, 8, 2, 0, 0, 0, 0, time.UTC)
	}

	if transaction.Type == "" {
		transaction.Type = ledger.TypeExpense
	}

	if transaction.Category == "" {
		transaction.Category = "Food & Groceries"
	}

	if transaction.Description == "" {
		transaction.Description = "Test transaction"
	}

	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	reqBody := []v1.TransactionEditable{transaction}

	r := test.Request(suite.co, suite.T(), http.MethodPost, "http://example.com/v1/transactions", reqBody)
	test.AssertHTTPStatus(suite.T(), &r, expectedStatus...)

	var tr v1.TransactionCreateResponse
	test.DecodeResponse(suite.T(), &r, &tr)

	return tr.Data[0]
}

// TestTransactionsOptions verifies that the HTTP OPTIONS response for /transactions/{id} is correct.
func (suite *TestSuiteStandard) TestTransactionsOptions() {
	tests := []struct {
		name     string        // Name for the test
		status   int           // Expected HTTP status
		id       string        // String to use as ID. Ignored when pathFunc is non-nil
		pathFunc func() string // Function returning the path
	}{
		{
			"Does not exist",
			http.StatusNotFound,
			uuid.New().String(),
			nil,
		},
		{
			"Invalid UUID",
			http.StatusBadRequest,
			"NotParseableAsUUID",
			nil,
		},
		{
			"Success",
			http.StatusNoContent,
			"",
			func() string {
				return suite.createTestTransaction(v1.TransactionEditable{Amount: decimal.NewFromFloat(31)}).Data.Links.Self
			},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			var p string
			if tt.pathFunc != nil {
				p = tt.pathFunc()
			} else {
				p = fmt.Sprintf("%s/%s", "http://example.com/v1/transactions", tt.id)
			}

			r := test.Request(suite.co, t, http.MethodOptions, p, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusNoContent {
				assert.Equal(t, "OPTIONS, GET, PATCH, DELETE", r.Header().Get("allow"))
			}
		})
	}
}

// TestTransactionsGet verifies that transactions are returned newest first.
func (suite *TestSuiteStandard) TestTransactionsGet() {
	older := suite.createTestTransaction(v1.TransactionEditable{
		Amount: decimal.NewFromFloat(17.23),
		Date:   time.Date(2024, 7, 10, 0, 0, 0, 0, time.UTC),
	})

	newer := suite.createTestTransaction(v1.TransactionEditable{
		Amount: decimal.NewFromFloat(23.42),
		Date:   time.Date(2024, 8, 10, 0, 0, 0, 0, time.UTC),
	})

	recorder := test.Request(suite.co, suite.T(), http.MethodGet, "http://example.com/v1/transactions", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	assert.Len(suite.T(), response.Data, 2)
	assert.Equal(suite.T(), newer.Data.ID, response.Data[0].ID)
	assert.Equal(suite.T(), older.Data.ID, response.Data[1].ID)

	assert.Equal(suite.T(), 2, response.Pagination.Total)
	assert.Equal(suite.T(), 50, response.Pagination.Limit)
}

// TestTransactionsGetFilter verifies the query string filters.
func (suite *TestSuiteStandard) TestTransactionsGetFilter() {
	_ = suite.createTestTransaction(v1.TransactionEditable{
		Amount:        decimal.NewFromInt(95000),
		Date:          time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC),
		Type:          ledger.TypeIncome,
		Category:      "Salary",
		Description:   "Monthly Salary",
		PaymentMethod: "Bank Transfer",
	})

	_ = suite.createTestTransaction(v1.TransactionEditable{
		Amount:        decimal.NewFromInt(3500),
		Date:          time.Date(2024, 8, 3, 0, 0, 0, 0, time.UTC),
		Category:      "Food & Groceries",
		Description:   "Grocery shopping",
		PaymentMethod: "UPI",
	})

	_ = suite.createTestTransaction(v1.TransactionEditable{
		Amount:      decimal.NewFromInt(450),
		Date:        time.Date(2024, 7, 5, 0, 0, 0, 0, time.UTC),
		Category:    "Transportation",
		Description: "Cab to office",
		Note:        "client visit",
	})

	tests := []struct {
		name  string // Name of the test
		query string // The query string
		count int    // Expected number of transactions
	}{
		{"By type income", "type=income", 1},
		{"By type expense", "type=expense", 2},
		{"By category", "category=Food+%26+Groceries", 1},
		{"By payment method", "paymentMethod=UPI", 1},
		{"By month", "month=2024-08", 2},
		{"From date", "fromDate=2024-08-01", 2},
		{"Until date", "untilDate=2024-07-31", 1},
		{"Amount at least", "amountMoreOrEqual=3500", 2},
		{"Amount at most", "amountLessOrEqual=3500", 2},
		{"Amount range", "amountMoreOrEqual=1000&amountLessOrEqual=10000", 1},
		{"Search description", "search=grocery", 1},
		{"Search note", "search=client", 1},
		{"Limit", "limit=1", 1},
		{"Offset", "offset=2", 1},
		{"No match", "category=Travel", 0},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(suite.co, t, http.MethodGet, fmt.Sprintf("http://example.com/v1/transactions?%s", tt.query), "")
			test.AssertHTTPStatus(t, &recorder, http.StatusOK)

			var response v1.TransactionListResponse
			test.DecodeResponse(t, &recorder, &response)
			assert.Len(t, response.Data, tt.count)
		})
	}
}

// TestTransactionsGetInvalidType verifies that an unknown type is rejected.
func (suite *TestSuiteStandard) TestTransactionsGetInvalidType() {
	recorder := test.Request(suite.co, suite.T(), http.MethodGet, "http://example.com/v1/transactions?type=transfer", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

// TestTransactionsCreate verifies that a transaction is created with the submitted values.
func (suite *TestSuiteStandard) TestTransactionsCreate() {
	transaction := suite.createTestTransaction(v1.TransactionEditable{
		Amount:        decimal.NewFromFloat(280.50),
		Description:   "Bread, milk, eggs",
		Note:          "weekly run",
		PaymentMethod: "UPI",
	})

	assert.NotEqual(suite.T(), uuid.Nil, transaction.Data.ID)
	assert.True(suite.T(), transaction.Data.Amount.Equal(decimal.NewFromFloat(280.50)))
	assert.Equal(suite.T(), "Bread, milk, eggs", transaction.Data.Description)
	assert.Contains(suite.T(), transaction.Data.Links.Self, transaction.Data.ID.String())
}

// TestTransactionsCreateErrors verifies the validation of created transactions.
func (suite *TestSuiteStandard) TestTransactionsCreateErrors() {
	tests := []struct {
		name        string // Name of the test
		transaction v1.TransactionEditable
		err         error // Expected error
	}{
		{
			"Negative amount",
			v1.TransactionEditable{
				Date:        time.Date(2024, 8, 2, 0, 0, 0, 0, time.UTC),
				Amount:      decimal.NewFromInt(-100),
				Type:        ledger.TypeExpense,
				Category:    "Housing",
				Description: "Rent",
			},
			ledger.ErrAmountNotPositive,
		},
		{
			"Unknown category",
			v1.TransactionEditable{
				Date:        time.Date(2024, 8, 2, 0, 0, 0, 0, time.UTC),
				Amount:      decimal.NewFromInt(100),
				Type:        ledger.TypeExpense,
				Category:    "Gambling",
				Description: "Poker night",
			},
			ledger.ErrCategoryUnknown,
		},
		{
			"Category type mismatch",
			v1.TransactionEditable{
				Date:        time.Date(2024, 8, 2, 0, 0, 0, 0, time.UTC),
				Amount:      decimal.NewFromInt(100),
				Type:        ledger.TypeIncome,
				Category:    "Housing",
				Description: "Rent",
			},
			ledger.ErrCategoryTypeMismatch,
		},
		{
			"Empty description",
			v1.TransactionEditable{
				Date:     time.Date(2024, 8, 2, 0, 0, 0, 0, time.UTC),
				Amount:   decimal.NewFromInt(100),
				Type:     ledger.TypeExpense,
				Category: "Housing",
			},
			ledger.ErrDescriptionEmpty,
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(suite.co, t, http.MethodPost, "http://example.com/v1/transactions", []v1.TransactionEditable{tt.transaction})
			test.AssertHTTPStatus(t, &recorder, http.StatusBadRequest)

			var response v1.TransactionCreateResponse
			test.DecodeResponse(t, &recorder, &response)
			assert.Equal(t, tt.err.Error(), *response.Data[0].Error)
		})
	}
}

// TestTransactionsCreateMixed verifies that valid transactions in a batch with
// invalid ones are still created.
func (suite *TestSuiteStandard) TestTransactionsCreateMixed() {
	reqBody := []v1.TransactionEditable{
		{
			Date:        time.Date(2024, 8, 2, 0, 0, 0, 0, time.UTC),
			Amount:      decimal.NewFromInt(100),
			Type:        ledger.TypeExpense,
			Category:    "Housing",
			Description: "Rent",
		},
		{
			Date:        time.Date(2024, 8, 2, 0, 0, 0, 0, time.UTC),
			Amount:      decimal.NewFromInt(-1),
			Type:        ledger.TypeExpense,
			Category:    "Housing",
			Description: "Rent",
		},
	}

	recorder := test.Request(suite.co, suite.T(), http.MethodPost, "http://example.com/v1/transactions", reqBody)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	var response v1.TransactionCreateResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	assert.Len(suite.T(), response.Data, 2)
	assert.NotNil(suite.T(), response.Data[0].Data)
	assert.NotNil(suite.T(), response.Data[1].Error)
	assert.Equal(suite.T(), 1, suite.co.Store.Len())
}

// TestTransactionsGetSingle verifies that a single transaction can be read.
func (suite *TestSuiteStandard) TestTransactionsGetSingle() {
	transaction := suite.createTestTransaction(v1.TransactionEditable{Amount: decimal.NewFromInt(42)})

	recorder := test.Request(suite.co, suite.T(), http.MethodGet, transaction.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.TransactionResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Equal(suite.T(), transaction.Data.ID, response.Data.ID)
}

// TestTransactionsGetNotFound verifies the response for a non-existing transaction.
func (suite *TestSuiteStandard) TestTransactionsGetNotFound() {
	recorder := test.Request(suite.co, suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/transactions/%s", uuid.New()), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)

	var response v1.TransactionResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Equal(suite.T(), ledger.ErrResourceNotFound.Error(), *response.Error)
}

// TestTransactionsUpdate verifies that a partial update only changes the
// submitted fields.
func (suite *TestSuiteStandard) TestTransactionsUpdate() {
	transaction := suite.createTestTransaction(v1.TransactionEditable{
		Amount:      decimal.NewFromInt(100),
		Description: "Grocery shopping",
		Note:        "keep this",
	})

	recorder := test.Request(suite.co, suite.T(), http.MethodPatch, transaction.Data.Links.Self, map[string]any{
		"description": "Weekly groceries",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.TransactionResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	assert.Equal(suite.T(), "Weekly groceries", response.Data.Description)
	assert.Equal(suite.T(), "keep this", response.Data.Note)
	assert.True(suite.T(), response.Data.Amount.Equal(decimal.NewFromInt(100)))
}

// TestTransactionsUpdateInvalid verifies that an update to invalid values is rejected.
func (suite *TestSuiteStandard) TestTransactionsUpdateInvalid() {
	transaction := suite.createTestTransaction(v1.TransactionEditable{Amount: decimal.NewFromInt(100)})

	recorder := test.Request(suite.co, suite.T(), http.MethodPatch, transaction.Data.Links.Self, map[string]any{
		"category": "Does Not Exist",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	// The transaction is unchanged
	current, err := suite.co.Store.Get(transaction.Data.ID)
	assert.Nil(suite.T(), err)
	assert.Equal(suite.T(), "Food & Groceries", current.Category)
}

// TestTransactionsDelete verifies that transactions can be deleted.
func (suite *TestSuiteStandard) TestTransactionsDelete() {
	transaction := suite.createTestTransaction(v1.TransactionEditable{Amount: decimal.NewFromInt(100)})

	recorder := test.Request(suite.co, suite.T(), http.MethodDelete, transaction.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	recorder = test.Request(suite.co, suite.T(), http.MethodDelete, transaction.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}
