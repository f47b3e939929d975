package models

// Derived, non-persistent shapes produced by the analytics core.
// They are computed per request and never stored.

// CategoryAggregate is the per-category rollup of the current period's
// expense transactions.
type CategoryAggregate struct {
	Category         string `json:"category"`
	Spent            Cents  `json:"spent"`
	TransactionCount int    `json:"transaction_count"`
	AverageAmount    Cents  `json:"average_amount"`
	MinTransaction   Cents  `json:"min_transaction"`
	MaxTransaction   Cents  `json:"max_transaction"`
}

// MonthPoint is one month of the income-vs-expense comparison series.
// Month is formatted "M/YYYY"; ordering is always by (year, month),
// never by the label string.
type MonthPoint struct {
	Month   string `json:"month"`
	Income  Cents  `json:"income"`
	Expense Cents  `json:"expense"`
}

// SavingsPoint is one month of the savings-rate series. The rate is a
// percentage and reports 0 for months with zero income.
type SavingsPoint struct {
	Month       string  `json:"month"`
	SavingsRate float64 `json:"savings_rate"`
}

// DailyPoint is one day of a category's spend within the current month.
type DailyPoint struct {
	Date   string `json:"date"` // "2006-01-02"
	Amount Cents  `json:"amount"`
}

// WeeklyPoint is one ISO week of a category's spend.
type WeeklyPoint struct {
	Week  int   `json:"week"`
	Spent Cents `json:"spent"`
}

// TrendSeriesPoint is one day of the financial-trends series: net
// balance movement plus a 20% savings-target slice of that day's income.
type TrendSeriesPoint struct {
	Date    string `json:"date"`
	Balance Cents  `json:"balance"`
	Savings Cents  `json:"savings"`
}

// CategoryTotal is the dashboard's current-month expense breakdown.
type CategoryTotal struct {
	Category string `json:"category"`
	Total    Cents  `json:"total"`
}

// BudgetStatus joins a budget with the current month's aggregates and a
// forward projection of month-end spend.
type BudgetStatus struct {
	ID                   string       `json:"id"`
	Category             string       `json:"category"`
	MonthlyLimit         Cents        `json:"monthly_limit"`
	Spent                Cents        `json:"spent"`
	PercentUsed          int          `json:"percent_used"`
	IsExceeded           bool         `json:"is_exceeded"`
	TransactionCount     int          `json:"transaction_count"`
	AverageTransaction   Cents        `json:"average_transaction"`
	DailyTrend           []DailyPoint `json:"daily_trend"`
	ProjectedSpend       Cents        `json:"projected_spend"`
	ProjectedOverspend   bool         `json:"projected_overspend"`
	DaysRemaining        int          `json:"days_remaining"`
	DailyBudgetRemaining Cents        `json:"daily_budget_remaining"`
	Insights             []string     `json:"insights,omitempty"`
}

// BudgetWithStats is the budget listing shape: the stored budget plus
// month-over-month trend stats.
type BudgetWithStats struct {
	Budget
	Trend              float64 `json:"trend"`
	AverageSpending    Cents   `json:"average_spending"`
	ProjectedOverspend bool    `json:"projected_overspend"`
}

// MonthlySpending is one category's detail in the monthly spending report.
type MonthlySpending struct {
	CategoryAggregate
	WeeklyTrend     []WeeklyPoint     `json:"weekly_trend"`
	TopTransactions []TransactionSlim `json:"top_transactions"`
}

// Summary is the dashboard headline: all-time balance plus the current
// month's totals.
type Summary struct {
	CurrentBalance Cents `json:"current_balance"`
	TotalIncome    Cents `json:"total_income"`
	TotalExpenses  Cents `json:"total_expenses"`
}
