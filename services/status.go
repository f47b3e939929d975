package services

import (
	"math"
	"time"

	"github.com/fintrack/fintrack-api/models"
)

// ComposeStatus joins a budget with its current-month aggregate and daily
// trend into the per-category status record. stats is the zero value when
// the category has no transactions this month: that yields spent=0,
// percentUsed=0 and an empty trend, never an error.
func ComposeStatus(budget models.Budget, stats Stats, dailyTrend []models.DailyPoint, now time.Time) (models.BudgetStatus, error) {
	daysInMonth := DaysInMonth(now)
	dayOfMonth := now.Day()
	spent := stats.Sum

	projected, err := ProjectMonthEnd(spent, dayOfMonth, daysInMonth)
	if err != nil {
		return models.BudgetStatus{}, err
	}

	daysRemaining := daysInMonth - dayOfMonth

	// Defined as 0 on the last day of the month; roundDiv would already
	// refuse the zero divisor but the branch keeps the policy explicit.
	var dailyRemaining models.Cents
	if daysRemaining > 0 {
		dailyRemaining = models.Cents(roundDiv(int64(budget.MonthlyLimit-spent), int64(daysRemaining)))
	}

	if dailyTrend == nil {
		dailyTrend = []models.DailyPoint{}
	}

	status := models.BudgetStatus{
		ID:                   budget.ID,
		Category:             budget.Category,
		MonthlyLimit:         budget.MonthlyLimit,
		Spent:                spent,
		PercentUsed:          int(math.Round(safeRatio(float64(spent), float64(budget.MonthlyLimit)) * 100)),
		IsExceeded:           spent > budget.MonthlyLimit,
		TransactionCount:     stats.Count,
		AverageTransaction:   stats.Avg,
		DailyTrend:           dailyTrend,
		ProjectedSpend:       projected,
		ProjectedOverspend:   projected > budget.MonthlyLimit,
		DaysRemaining:        daysRemaining,
		DailyBudgetRemaining: dailyRemaining,
	}
	status.Insights = SpendingInsights(status)
	return status, nil
}

// ComposeAllStatuses composes the status of every budget against one
// shared pass over the current month's expense transactions.
func ComposeAllStatuses(budgets []models.Budget, monthExpenses []models.Transaction, now time.Time) ([]models.BudgetStatus, error) {
	byCategory := AggregateByCategory(monthExpenses)
	daily := DailyTrends(monthExpenses)

	out := make([]models.BudgetStatus, 0, len(budgets))
	for _, budget := range budgets {
		status, err := ComposeStatus(budget, byCategory[budget.Category], daily[budget.Category], now)
		if err != nil {
			return nil, err
		}
		out = append(out, status)
	}
	return out, nil
}
