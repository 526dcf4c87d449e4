package v1

import (
	"net/http"
	"strings"
	"time"

	"github.com/budgetbook/backend/internal/httputil"
	"github.com/budgetbook/backend/internal/ledger"
	"github.com/budgetbook/backend/internal/types"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
)

// RegisterTransactionRoutes registers the routes for transactions with
// the RouterGroup that is passed.
func (co Controller) RegisterTransactionRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", co.OptionsTransactions)
		r.GET("", co.GetTransactions)
		r.POST("", co.CreateTransactions)
	}

	// Transaction with ID
	{
		r.OPTIONS("/:id", co.OptionsTransactionDetail)
		r.GET("/:id", co.GetTransaction)
		r.PATCH("/:id", co.UpdateTransaction)
		r.DELETE("/:id", co.DeleteTransaction)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Router			/v1/transactions [options]
func (co Controller) OptionsTransactions(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/transactions/{id} [options]
func (co Controller) OptionsTransactionDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	_, err = co.Store.Get(uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Get transaction
// @Description	Returns a specific transaction
// @Tags			Transactions
// @Produce		json
// @Success		200	{object}	TransactionResponse
// @Failure		400	{object}	TransactionResponse
// @Failure		404	{object}	TransactionResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/transactions/{id} [get]
func (co Controller) GetTransaction(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{
			Error: &e,
		})
		return
	}

	transaction, err := co.Store.Get(uri.ID.UUID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{
			Error: &e,
		})
		return
	}

	data := newTransaction(c, transaction)
	c.JSON(http.StatusOK, TransactionResponse{Data: &data})
}

// @Summary		Get transactions
// @Description	Returns a list of transactions, newest first
// @Tags			Transactions
// @Produce		json
// @Success		200	{object}	TransactionListResponse
// @Failure		400	{object}	TransactionListResponse
// @Router			/v1/transactions [get]
// @Param			type			query	string	false	"Filter by transaction type"
// @Param			category		query	string	false	"Filter by category"
// @Param			paymentMethod	query	string	false	"Filter by payment method"
// @Param			month			query	string	false	"Transactions in this month, format YYYY-MM"
// @Param			fromDate		query	string	false	"Transactions at and after this date, format YYYY-MM-DD"
// @Param			untilDate		query	string	false	"Transactions before and at this date, format YYYY-MM-DD"
// @Param			amountMoreOrEqual	query	string	false	"Amount of the transaction is greater than or equal to this amount"
// @Param			amountLessOrEqual	query	string	false	"Amount of the transaction is less than or equal to this amount"
// @Param			search			query	string	false	"Search for this text in description and note"
// @Param			offset			query	uint	false	"The offset of the first Transaction returned. Defaults to 0."
// @Param			limit			query	int		false	"Maximum number of Transactions to return. Defaults to 50."
func (co Controller) GetTransactions(c *gin.Context) {
	var filter TransactionQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, TransactionListResponse{
			Error: &s,
		})
		return
	}

	if filter.Type != "" && !filter.Type.Valid() {
		s := ledger.ErrTypeInvalid.Error()
		c.JSON(http.StatusBadRequest, TransactionListResponse{
			Error: &s,
		})
		return
	}

	// Get the fields set in the filter
	setFields := httputil.GetURLFields(c.Request.URL, filter)

	transactions := filterTransactions(co.Store.List(), filter)

	// Newest first, insertion order breaks the tie
	slices.SortStableFunc(transactions, func(a, b ledger.Transaction) int {
		return b.Date.Compare(a.Date)
	})

	total := len(transactions)

	// Set the offset. Does not need checking since the default is 0
	if int(filter.Offset) < len(transactions) {
		transactions = transactions[filter.Offset:]
	} else {
		transactions = []ledger.Transaction{}
	}

	// Default to 50 transactions and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	if limit >= 0 && limit < len(transactions) {
		transactions = transactions[:limit]
	}

	data := make([]Transaction, 0, len(transactions))
	for _, transaction := range transactions {
		data = append(data, newTransaction(c, transaction))
	}

	c.JSON(http.StatusOK, TransactionListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  total,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// filterTransactions applies the query filter to a snapshot of the ledger.
func filterTransactions(transactions []ledger.Transaction, filter TransactionQueryFilter) []ledger.Transaction {
	filtered := make([]ledger.Transaction, 0, len(transactions))

	var month types.Month
	if !filter.Month.IsZero() {
		month = types.MonthOf(filter.Month)
	}

	search := strings.ToLower(filter.Search)

	for _, t := range transactions {
		if filter.Type != "" && t.Type != filter.Type {
			continue
		}

		if filter.Category != "" && t.Category != filter.Category {
			continue
		}

		if filter.PaymentMethod != "" && t.PaymentMethod != filter.PaymentMethod {
			continue
		}

		if !month.IsZero() && !month.Contains(t.Date) {
			continue
		}

		if !filter.FromDate.IsZero() && t.Date.Before(day(filter.FromDate)) {
			continue
		}

		if !filter.UntilDate.IsZero() && !t.Date.Before(day(filter.UntilDate).AddDate(0, 0, 1)) {
			continue
		}

		if !filter.AmountMoreOrEqual.IsZero() && t.Amount.LessThan(filter.AmountMoreOrEqual) {
			continue
		}

		if !filter.AmountLessOrEqual.IsZero() && t.Amount.GreaterThan(filter.AmountLessOrEqual) {
			continue
		}

		if search != "" && !strings.Contains(strings.ToLower(t.Description), search) && !strings.Contains(strings.ToLower(t.Note), search) {
			continue
		}

		filtered = append(filtered, t)
	}

	return filtered
}

// day truncates a timestamp to its day.
func day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// @Summary		Create transactions
// @Description	Creates transactions from the list of submitted transaction data. The response code is the highest response code number that a single transaction creation would have caused. If it is not equal to 201, at least one transaction has an error.
// @Tags			Transactions
// @Produce		json
// @Success		201				{object}	TransactionCreateResponse
// @Failure		400				{object}	TransactionCreateResponse
// @Param			transactions	body		[]TransactionEditable	true	"Transactions"
// @Router			/v1/transactions [post]
func (co Controller) CreateTransactions(c *gin.Context) {
	var editables []TransactionEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	responseStatus := http.StatusCreated
	r := TransactionCreateResponse{}

	for _, editable := range editables {
		transaction := editable.model()

		id, err := co.Store.Add(transaction)
		if err != nil {
			responseStatus = r.appendError(err, responseStatus)
			continue
		}

		created, _ := co.Store.Get(id)
		data := newTransaction(c, created)
		r.Data = append(r.Data, TransactionResponse{Data: &data})
	}

	co.persistTransactions()
	c.JSON(responseStatus, r)
}

// @Summary		Update transaction
// @Description	Updates an existing transaction. Only values to be updated need to be specified.
// @Tags			Transactions
// @Accept			json
// @Produce		json
// @Success		200			{object}	TransactionResponse
// @Failure		400			{object}	TransactionResponse
// @Failure		404			{object}	TransactionResponse
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			transaction	body		TransactionEditable	true	"Transaction"
// @Router			/v1/transactions/{id} [patch]
func (co Controller) UpdateTransaction(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{
			Error: &e,
		})
		return
	}

	transaction, err := co.Store.Get(uri.ID.UUID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{
			Error: &e,
		})
		return
	}

	// Fields not set in the request body keep their current value
	update := newTransactionEditable(transaction)
	err = httputil.BindData(c, &update)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{
			Error: &e,
		})
		return
	}

	err = co.Store.Update(uri.ID.UUID, update.model())
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{
			Error: &e,
		})
		return
	}

	co.persistTransactions()

	updated, _ := co.Store.Get(uri.ID.UUID)
	data := newTransaction(c, updated)
	c.JSON(http.StatusOK, TransactionResponse{Data: &data})
}

// @Summary		Delete transaction
// @Description	Deletes a transaction
// @Tags			Transactions
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/transactions/{id} [delete]
func (co Controller) DeleteTransaction(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = co.Store.Remove(uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	co.persistTransactions()
	c.JSON(http.StatusNoContent, nil)
}
