package v1

import (
	"net/http"
	"strconv"
	"time"

	"github.com/budgetbook/backend/internal/httputil"
	"github.com/budgetbook/backend/internal/ledger"
	"github.com/gin-gonic/gin"
)

// RegisterAggregateRoutes registers the routes for aggregates with
// the RouterGroup that is passed.
func (co Controller) RegisterAggregateRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", co.OptionsAggregates)
	r.GET("", co.GetAggregates)
}

// RegisterMonthRoutes registers the routes for months with
// the RouterGroup that is passed.
func (co Controller) RegisterMonthRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", co.OptionsMonths)
	r.GET("", co.GetMonths)
}

// Aggregates is the dashboard view over the whole ledger.
type Aggregates struct {
	Totals            ledger.Totals               `json:"totals"`            // Income, expense and balance over all transactions
	IncomeByCategory  []ledger.CategoryTotal      `json:"incomeByCategory"`  // Income per category, canonical category order
	ExpenseByCategory []ledger.CategoryTotal      `json:"expenseByCategory"` // Expenses per category, canonical category order
	Weekdays          []ledger.WeekdayTotal       `json:"weekdays"`          // Expenses per weekday, Sunday first
	PaymentMethods    []ledger.PaymentMethodTotal `json:"paymentMethods"`    // Totals per payment method, in order of first use
	RunningBalance    []ledger.BalancePoint       `json:"runningBalance"`    // Balance after each transaction, ordered by date
}

type AggregatesResponse struct {
	Data  *Aggregates `json:"data"`                                   // The aggregates
	Error *string     `json:"error" example:"an error that occurred"` // The error, if any occurred
}

type MonthListResponse struct {
	Data  []ledger.MonthBucket `json:"data"`                                                                      // Income and expenses per month
	Error *string              `json:"error" example:"the monthsBack query parameter must be a positive number"` // The error, if any occurred
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Aggregates
// @Success		204
// @Router			/v1/aggregates [options]
func (co Controller) OptionsAggregates(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get aggregates
// @Description	Returns the aggregate dashboard view over all transactions
// @Tags			Aggregates
// @Produce		json
// @Success		200	{object}	AggregatesResponse
// @Router			/v1/aggregates [get]
func (co Controller) GetAggregates(c *gin.Context) {
	transactions := co.Store.List()

	data := Aggregates{
		Totals:            ledger.Summarize(transactions),
		IncomeByCategory:  ledger.ByCategory(transactions, ledger.TypeIncome),
		ExpenseByCategory: ledger.ByCategory(transactions, ledger.TypeExpense),
		Weekdays:          ledger.ByWeekday(transactions),
		PaymentMethods:    ledger.ByPaymentMethod(transactions),
		RunningBalance:    ledger.RunningBalance(transactions),
	}

	c.JSON(http.StatusOK, AggregatesResponse{Data: &data})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Aggregates
// @Success		204
// @Router			/v1/months [options]
func (co Controller) OptionsMonths(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get months
// @Description	Returns income and expenses per month. With monthsBack set, the response contains exactly that many months ending at the current one, empty months included.
// @Tags			Aggregates
// @Produce		json
// @Success		200			{object}	MonthListResponse
// @Failure		400			{object}	MonthListResponse
// @Param			monthsBack	query		int	false	"Number of months to return, ending at the current month. Defaults to 6."
// @Router			/v1/months [get]
func (co Controller) GetMonths(c *gin.Context) {
	monthsBack := 6
	if raw, ok := c.GetQuery("monthsBack"); ok {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			s := errMonthsBackInvalid.Error()
			c.JSON(http.StatusBadRequest, MonthListResponse{
				Error: &s,
			})
			return
		}
		monthsBack = parsed
	}

	data := ledger.ByMonth(co.Store.List(), monthsBack, time.Now().UTC())
	c.JSON(http.StatusOK, MonthListResponse{Data: data})
}
