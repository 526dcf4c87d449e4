package v1

import (
	"fmt"
	"time"

	"github.com/budgetbook/backend/internal/ledger"
	"github.com/budgetbook/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionEditable represents all user configurable parameters
type TransactionEditable struct {
	Date time.Time `json:"date" example:"2024-08-02T00:00:00Z"` // Date of the transaction

	// The maximum value is "999999999999.99999999", swagger unfortunately rounds this.
	Amount decimal.Decimal `json:"amount" example:"280.5" minimum:"0.00000001" maximum:"999999999999.99999999" multipleOf:"0.00000001"` // The amount of the transaction, always positive

	Type          ledger.Type `json:"type" example:"expense" enums:"income,expense"`       // Whether the transaction is income or an expense
	Category      string      `json:"category" example:"Food & Groceries"`                 // Category of the transaction, must match the transaction type
	Description   string      `json:"description" example:"Bread, milk, eggs"`             // What the transaction was for
	Note          string      `json:"note" example:"weekly run" default:""`                // A note
	PaymentMethod string      `json:"paymentMethod" example:"UPI" default:""`              // How the transaction was paid
}

// model returns the ledger resource for the API representation of the editable fields
func (editable TransactionEditable) model() ledger.Transaction {
	return ledger.Transaction{
		Date:          editable.Date,
		Amount:        editable.Amount,
		Type:          editable.Type,
		Category:      editable.Category,
		Description:   editable.Description,
		Note:          editable.Note,
		PaymentMethod: editable.PaymentMethod,
	}
}

// newTransactionEditable returns the editable fields of an existing transaction.
// Binding a PATCH body into it updates only the fields the request sets.
func newTransactionEditable(model ledger.Transaction) TransactionEditable {
	return TransactionEditable{
		Date:          model.Date,
		Amount:        model.Amount,
		Type:          model.Type,
		Category:      model.Category,
		Description:   model.Description,
		Note:          model.Note,
		PaymentMethod: model.PaymentMethod,
	}
}

type TransactionLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/transactions/d430d7c3-d14c-4712-9336-ee56965a6673"` // The transaction itself
}

// Transaction is the representation of a Transaction in API v1.
type Transaction struct {
	ID uuid.UUID `json:"id" example:"65392deb-5e92-4268-b114-297faad6cdce"` // ID of the transaction
	TransactionEditable
	Links TransactionLinks `json:"links"`
}

// newTransaction returns the API v1 representation of the resource
func newTransaction(c *gin.Context, model ledger.Transaction) Transaction {
	url := c.GetString(string(models.DBContextURL))

	return Transaction{
		ID:                  model.ID,
		TransactionEditable: newTransactionEditable(model),
		Links: TransactionLinks{
			Self: fmt.Sprintf("%s/v1/transactions/%s", url, model.ID),
		},
	}
}

type TransactionListResponse struct {
	Data       []Transaction `json:"data"`                                                          // List of transactions
	Error      *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination   `json:"pagination"`                                                    // Pagination information
}

type TransactionCreateResponse struct {
	Error *string               `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []TransactionResponse `json:"data"`                                                          // List of created Transactions
}

func (t *TransactionCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, TransactionResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type TransactionResponse struct {
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this transaction
	Data  *Transaction `json:"data"`                                                          // The Transaction data, if creation was successful
}

type TransactionQueryFilter struct {
	Type              ledger.Type     `form:"type"`                                            // Filter by transaction type
	Category          string          `form:"category"`                                        // Filter by category
	PaymentMethod     string          `form:"paymentMethod"`                                   // Filter by payment method
	Month             time.Time       `form:"month" time_format:"2006-01" time_utc:"1"`        // Transactions in this month
	FromDate          time.Time       `form:"fromDate" time_format:"2006-01-02" time_utc:"1"`  // Transactions at and after this date
	UntilDate         time.Time       `form:"untilDate" time_format:"2006-01-02" time_utc:"1"` // Transactions before and at this date
	AmountMoreOrEqual decimal.Decimal `form:"amountMoreOrEqual"`                               // Amount of the transaction is greater than or equal to this amount
	AmountLessOrEqual decimal.Decimal `form:"amountLessOrEqual"`                               // Amount of the transaction is less than or equal to this amount
	Search            string          `form:"search"`                                          // Search for this text in description and note
	Offset            uint            `form:"offset"`                                          // The offset of the first Transaction returned. Defaults to 0.
	Limit             int             `form:"limit"`                                           // Maximum number of Transactions to return. Defaults to 50.
}
