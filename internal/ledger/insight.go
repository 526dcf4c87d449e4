package ledger

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Health score component tiers. The savings rate component dominates,
// expense ratio and category diversity complete the score.
var (
	savingsTiers = []struct {
		ratio  decimal.Decimal
		points int
	}{
		{decimal.NewFromFloat(0.30), 50},
		{decimal.NewFromFloat(0.20), 40},
		{decimal.NewFromFloat(0.10), 25},
		{decimal.Zero, 10},
	}

	expenseTiers = []struct {
		ratio  decimal.Decimal
		points int
	}{
		{decimal.NewFromFloat(0.50), 30},
		{decimal.NewFromFloat(0.70), 20},
		{decimal.NewFromFloat(0.90), 10},
	}
)

// HealthScore derives a composite financial health score in [0, 100].
//
// The score is 0 when there is no income, which also guards the
// savings rate calculation against a division by zero.
func HealthScore(income, expenses, savings decimal.Decimal, categoryDiversity int) int {
	if !income.IsPositive() {
		return 0
	}

	score := 0

	savingsRatio := savings.Div(income)
	for _, tier := range savingsTiers {
		if savingsRatio.GreaterThanOrEqual(tier.ratio) {
			score += tier.points
			break
		}
	}

	expenseRatio := expenses.Div(income)
	for _, tier := range expenseTiers {
		if expenseRatio.LessThanOrEqual(tier.ratio) {
			score += tier.points
			break
		}
	}

	switch {
	case categoryDiversity >= 5:
		score += 20
	case categoryDiversity >= 3:
		score += 10
	}

	// The natural maximum is already 100
	if score > 100 {
		score = 100
	}

	return score
}

// TopExpenseCategory returns the expense category with the highest
// total. Ties are broken by the first encountered entry. When there are
// no expenses, the sentinel {"None", 0} is returned.
func TopExpenseCategory(totals []CategoryTotal) CategoryTotal {
	top := CategoryTotal{Category: "None", Amount: decimal.Zero}

	for _, total := range totals {
		if total.Amount.GreaterThan(top.Amount) {
			top = total
		}
	}

	return top
}

// SavingsRate returns the saved share of the income in percent, rounded
// to one decimal place. It is 0 when there is no income.
func SavingsRate(income, expenses decimal.Decimal) decimal.Decimal {
	if !income.IsPositive() {
		return decimal.Zero
	}

	return income.Sub(expenses).Div(income).Mul(oneHundred).Round(1)
}

// AverageExpense returns the mean amount per expense transaction,
// rounded to two decimal places. It is 0 when there are no expenses.
func AverageExpense(transactions []Transaction) decimal.Decimal {
	sum := decimal.Zero
	count := 0
	for _, t := range transactions {
		if t.Type != TypeExpense {
			continue
		}

		sum = sum.Add(t.Amount)
		count++
	}

	if count == 0 {
		return decimal.Zero
	}

	return sum.Div(decimal.NewFromInt(int64(count))).Round(2)
}

// Insight is a single card of derived information for display.
type Insight struct {
	Title  string `json:"title" example:"Savings Rate"`
	Value  string `json:"value" example:"70.5%"`
	Detail string `json:"detail" example:"of your income is being saved"`
}

// amounts in insight texts are grouped the Indian way, matching the
// currency of the seeded data
var printer = message.NewPrinter(language.MustParse("en-IN"))

// Insights derives the insight cards from a transaction snapshot.
// The output is fully determined by the input.
func Insights(transactions []Transaction) []Insight {
	totals := Summarize(transactions)
	top := TopExpenseCategory(ByCategory(transactions, TypeExpense))

	return []Insight{
		{
			Title:  "Savings Rate",
			Value:  SavingsRate(totals.Income, totals.Expense).String() + "%",
			Detail: "of your income is being saved",
		},
		{
			Title:  "Top Spending",
			Value:  top.Category,
			Detail: printer.Sprintf("₹%.0f spent", top.Amount.InexactFloat64()),
		},
		{
			Title:  "Average Transaction",
			Value:  printer.Sprintf("₹%.2f", AverageExpense(transactions).InexactFloat64()),
			Detail: "per expense transaction",
		},
	}
}
