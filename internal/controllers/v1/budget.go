package v1

import (
	"net/http"
	"time"

	"github.com/budgetbook/backend/internal/httputil"
	"github.com/budgetbook/backend/internal/ledger"
	"github.com/budgetbook/backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// RegisterBudgetRoutes registers the routes for budgets with
// the RouterGroup that is passed.
func (co Controller) RegisterBudgetRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", co.OptionsBudgets)
	r.GET("", co.GetBudgets)
	r.PUT("", co.UpdateBudgets)
}

type BudgetListResponse struct {
	Data  []ledger.CategoryBudget `json:"data"`                                   // Budget evaluation per category
	Error *string                 `json:"error" example:"an error that occurred"` // The error, if any occurred
	Month types.Month             `json:"month" example:"2024-08"`                // The month the budgets were evaluated for
}

type BudgetLimitsResponse struct {
	Data  map[string]decimal.Decimal `json:"data"`                                   // The configured monthly limits per category
	Error *string                    `json:"error" example:"an error that occurred"` // The error, if any occurred
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Router			/v1/budgets [options]
func (co Controller) OptionsBudgets(c *gin.Context) {
	httputil.OptionsGetPut(c)
}

// @Summary		Get budgets
// @Description	Returns the budget evaluation for all configured limits in a month. Defaults to the current month.
// @Tags			Budgets
// @Produce		json
// @Success		200		{object}	BudgetListResponse
// @Failure		400		{object}	BudgetListResponse
// @Param			month	query		string	false	"The month to evaluate, format YYYY-MM. Defaults to the current month."
// @Router			/v1/budgets [get]
func (co Controller) GetBudgets(c *gin.Context) {
	var query QueryMonth
	if err := c.Bind(&query); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, BudgetListResponse{
			Error: &s,
		})
		return
	}

	month := types.MonthOf(time.Now().UTC())
	if !query.Month.IsZero() {
		month = types.MonthOf(query.Month)
	}

	data := ledger.EvaluateBudgets(co.Limits.Snapshot(), co.Store.List(), month)
	c.JSON(http.StatusOK, BudgetListResponse{
		Data:  data,
		Month: month,
	})
}

// @Summary		Update budgets
// @Description	Replaces all configured budget limits. Categories not in the request lose their limit, limits of 0 are dropped.
// @Tags			Budgets
// @Accept			json
// @Produce		json
// @Success		200		{object}	BudgetLimitsResponse
// @Failure		400		{object}	BudgetLimitsResponse
// @Param			limits	body		map[string]number	true	"Monthly limit per expense category"
// @Router			/v1/budgets [put]
func (co Controller) UpdateBudgets(c *gin.Context) {
	var limits map[string]decimal.Decimal

	err := httputil.BindData(c, &limits)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetLimitsResponse{
			Error: &e,
		})
		return
	}

	err = co.Limits.Replace(limits)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetLimitsResponse{
			Error: &e,
		})
		return
	}

	co.persistLimits()
	c.JSON(http.StatusOK, BudgetLimitsResponse{Data: co.Limits.Snapshot()})
}
