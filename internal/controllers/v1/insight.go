package v1

import (
	"net/http"

	"github.com/budgetbook/backend/internal/httputil"
	"github.com/budgetbook/backend/internal/ledger"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// RegisterInsightRoutes registers the routes for insights with
// the RouterGroup that is passed.
func (co Controller) RegisterInsightRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", co.OptionsInsights)
	r.GET("", co.GetInsights)
}

// Insights summarizes the financial health of the ledger.
type Insights struct {
	HealthScore        int                  `json:"healthScore" example:"70"`         // Composite financial health score from 0 to 100
	SavingsRate        decimal.Decimal      `json:"savingsRate" example:"29.5"`       // Percentage of income that is not spent
	AverageExpense     decimal.Decimal      `json:"averageExpense" example:"1250.75"` // Mean expense transaction amount
	TopExpenseCategory ledger.CategoryTotal `json:"topExpenseCategory"`               // The category with the highest expenses
	Cards              []ledger.Insight     `json:"cards"`                            // Human readable insight cards
}

type InsightsResponse struct {
	Data  *Insights `json:"data"`                                   // The insights
	Error *string   `json:"error" example:"an error that occurred"` // The error, if any occurred
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Insights
// @Success		204
// @Router			/v1/insights [options]
func (co Controller) OptionsInsights(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get insights
// @Description	Returns the financial health score, savings rate and insight cards for the whole ledger
// @Tags			Insights
// @Produce		json
// @Success		200	{object}	InsightsResponse
// @Router			/v1/insights [get]
func (co Controller) GetInsights(c *gin.Context) {
	transactions := co.Store.List()
	totals := ledger.Summarize(transactions)
	expenseTotals := ledger.ByCategory(transactions, ledger.TypeExpense)

	data := Insights{
		HealthScore:        ledger.HealthScore(totals.Income, totals.Expense, totals.Balance, len(expenseTotals)),
		SavingsRate:        ledger.SavingsRate(totals.Income, totals.Expense),
		AverageExpense:     ledger.AverageExpense(transactions),
		TopExpenseCategory: ledger.TopExpenseCategory(expenseTotals),
		Cards:              ledger.Insights(transactions),
	}

	c.JSON(http.StatusOK, InsightsResponse{Data: &data})
}
