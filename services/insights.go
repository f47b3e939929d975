package services

import (
	"fmt"

	"github.com/fintrack/fintrack-api/models"
)

// SpendingInsights derives human-readable warnings from a composed
// budget status. Rules are evaluated in severity order; an exceeded
// budget suppresses the weaker pacing warning.
func SpendingInsights(status models.BudgetStatus) []string {
	var insights []string

	switch {
	case status.IsExceeded:
		over := status.Spent - status.MonthlyLimit
		insights = append(insights, fmt.Sprintf(
			"%s budget exceeded by %s this month.", status.Category, over))
	case status.ProjectedOverspend:
		insights = append(insights, fmt.Sprintf(
			"%s is on pace to exceed its limit: projected %s against %s.",
			status.Category, status.ProjectedSpend, status.MonthlyLimit))
	}

	if status.DaysRemaining > 0 && !status.IsExceeded &&
		status.AverageTransaction > 0 && status.DailyBudgetRemaining < status.AverageTransaction {
		insights = append(insights, fmt.Sprintf(
			"Daily allowance for %s (%s) is below your average transaction (%s).",
			status.Category, status.DailyBudgetRemaining, status.AverageTransaction))
	}

	return insights
}
