package ledger

import (
	"time"

	"github.com/budgetbook/backend/internal/types"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// Totals are the overall sums for a transaction snapshot.
type Totals struct {
	Income  decimal.Decimal `json:"income" example:"95000"`  // Sum of all income amounts
	Expense decimal.Decimal `json:"expense" example:"28000"` // Sum of all expense amounts
	Balance decimal.Decimal `json:"balance" example:"67000"` // Income minus expense
}

// CategoryTotal is the sum of amounts for one category.
type CategoryTotal struct {
	Category string          `json:"category" example:"Housing"`
	Amount   decimal.Decimal `json:"amount" example:"28000"`
}

// MonthBucket holds the income and expense sums for one calendar month.
type MonthBucket struct {
	Month   types.Month     `json:"month" example:"2024-08"`
	Income  decimal.Decimal `json:"income" example:"95000"`
	Expense decimal.Decimal `json:"expense" example:"28000"`
}

// WeekdayTotal is the expense sum for one day of the week.
type WeekdayTotal struct {
	Weekday string          `json:"weekday" example:"Monday"`
	Expense decimal.Decimal `json:"expense" example:"1200"`
}

// PaymentMethodTotal is the sum of amounts per payment method.
type PaymentMethodTotal struct {
	PaymentMethod string          `json:"paymentMethod" example:"Bank Transfer"`
	Amount        decimal.Decimal `json:"amount" example:"48000"`
}

// BalancePoint is one entry of the running balance series.
type BalancePoint struct {
	Date    time.Time       `json:"date" example:"2024-08-02T00:00:00Z"`
	Balance decimal.Decimal `json:"balance" example:"67000"`
}

// Summarize returns the overall totals. The balance always equals
// income minus expense exactly.
func Summarize(transactions []Transaction) Totals {
	totals := Totals{
		Income:  decimal.Zero,
		Expense: decimal.Zero,
	}

	for _, t := range transactions {
		switch t.Type {
		case TypeIncome:
			totals.Income = totals.Income.Add(t.Amount)
		case TypeExpense:
			totals.Expense = totals.Expense.Add(t.Amount)
		}
	}

	totals.Balance = totals.Income.Sub(totals.Expense)
	return totals
}

// ByCategory returns the per-category sums for one transaction type
// in the canonical category order. Categories without any transactions
// are omitted.
func ByCategory(transactions []Transaction, transactionType Type) []CategoryTotal {
	sums := make(map[string]decimal.Decimal)
	for _, t := range transactions {
		if t.Type != transactionType {
			continue
		}

		sums[t.Category] = sums[t.Category].Add(t.Amount)
	}

	totals := make([]CategoryTotal, 0, len(sums))
	for _, category := range categories {
		if sum, ok := sums[category.Name]; ok {
			totals = append(totals, CategoryTotal{Category: category.Name, Amount: sum})
		}
	}

	return totals
}

// ByMonth buckets income and expense sums per calendar month.
//
// With monthsBack > 0 the result is the fixed window of the last
// monthsBack calendar months ending at the month of now, pre-seeded
// with zeros so that trend charts never have gaps. Transactions outside
// the window are ignored.
//
// With monthsBack <= 0 the result contains exactly the months present
// in the data, in ascending order.
func ByMonth(transactions []Transaction, monthsBack int, now time.Time) []MonthBucket {
	var months []types.Month
	if monthsBack > 0 {
		months = types.MonthOf(now).Window(monthsBack)
	} else {
		for _, t := range transactions {
			month := types.MonthOf(t.Date)
			if !slices.ContainsFunc(months, month.Equal) {
				months = append(months, month)
			}
		}
		slices.SortFunc(months, func(a, b types.Month) int {
			return time.Time(a).Compare(time.Time(b))
		})
	}

	buckets := make([]MonthBucket, 0, len(months))
	for _, month := range months {
		bucket := MonthBucket{
			Month:   month,
			Income:  decimal.Zero,
			Expense: decimal.Zero,
		}

		for _, t := range transactions {
			if !month.Contains(t.Date) {
				continue
			}

			switch t.Type {
			case TypeIncome:
				bucket.Income = bucket.Income.Add(t.Amount)
			case TypeExpense:
				bucket.Expense = bucket.Expense.Add(t.Amount)
			}
		}

		buckets = append(buckets, bucket)
	}

	return buckets
}

// ByWeekday returns the expense sums per day of the week. All seven
// days are always present, Sunday first.
func ByWeekday(transactions []Transaction) []WeekdayTotal {
	totals := make([]WeekdayTotal, 7)
	for day := time.Sunday; day <= time.Saturday; day++ {
		totals[day] = WeekdayTotal{Weekday: day.String(), Expense: decimal.Zero}
	}

	for _, t := range transactions {
		if t.Type != TypeExpense {
			continue
		}

		day := t.Date.Weekday()
		totals[day].Expense = totals[day].Expense.Add(t.Amount)
	}

	return totals
}

// ByPaymentMethod returns the transaction sums per payment method in
// first-encountered order. Transactions without a payment method are
// grouped under the empty string.
func ByPaymentMethod(transactions []Transaction) []PaymentMethodTotal {
	sums := make(map[string]decimal.Decimal)
	var order []string

	for _, t := range transactions {
		if _, ok := sums[t.PaymentMethod]; !ok {
			order = append(order, t.PaymentMethod)
		}
		sums[t.PaymentMethod] = sums[t.PaymentMethod].Add(t.Amount)
	}

	totals := make([]PaymentMethodTotal, 0, len(order))
	for _, method := range order {
		totals = append(totals, PaymentMethodTotal{PaymentMethod: method, Amount: sums[method]})
	}

	return totals
}

// RunningBalance returns the cumulative signed balance in date order.
// The sort is stable, transactions on the same date keep their relative
// input order so identical input always produces identical output.
func RunningBalance(transactions []Transaction) []BalancePoint {
	sorted := make([]Transaction, len(transactions))
	copy(sorted, transactions)
	slices.SortStableFunc(sorted, func(a, b Transaction) int {
		return a.Date.Compare(b.Date)
	})

	points := make([]BalancePoint, 0, len(sorted))
	balance := decimal.Zero
	for _, t := range sorted {
		balance = balance.Add(t.Signed())
		points = append(points, BalancePoint{Date: t.Date, Balance: balance})
	}

	return points
}
