package services

import (
	"testing"

	"github.com/fintrack/fintrack-api/models"
)

func TestComposeStatusSpecScenario(t *testing.T) {
	// Expense of 100.00 in Food on day 10 of a 30-day month, limit 300.00.
	now := date(t, "2026-04-10")
	budget := models.Budget{ID: "b1", Category: "Food", MonthlyLimit: 30000}
	expenses := []models.Transaction{expense(t, "Food", 10000, "2026-04-10")}

	byCategory := AggregateByCategory(expenses)
	daily := DailyTrends(expenses)

	status, err := ComposeStatus(budget, byCategory["Food"], daily["Food"], now)
	if err != nil {
		t.Fatalf("ComposeStatus: %v", err)
	}

	if status.Spent != 10000 {
		t.Errorf("spent = %d, want 10000", status.Spent)
	}
	if status.PercentUsed != 33 {
		t.Errorf("percentUsed = %d, want 33", status.PercentUsed)
	}
	if status.IsExceeded {
		t.Error("isExceeded should be false")
	}
	if status.DaysRemaining != 20 {
		t.Errorf("daysRemaining = %d, want 20", status.DaysRemaining)
	}
	if status.ProjectedSpend != 30000 {
		t.Errorf("projectedSpend = %d, want 30000", status.ProjectedSpend)
	}
	// Projection equals the limit exactly: not strictly greater, so no
	// overspend flag.
	if status.ProjectedOverspend {
		t.Error("projectedOverspend should be false when projection equals the limit")
	}
	if status.DailyBudgetRemaining != 1000 {
		t.Errorf("dailyBudgetRemaining = %d, want 1000 ((300-100)/20)", status.DailyBudgetRemaining)
	}
	if len(status.DailyTrend) != 1 || status.DailyTrend[0].Date != "2026-04-10" {
		t.Errorf("dailyTrend = %+v, want single 2026-04-10 point", status.DailyTrend)
	}
}

func TestComposeStatusBudgetWithoutTransactions(t *testing.T) {
	now := date(t, "2026-04-10")
	budget := models.Budget{ID: "b1", Category: "Travel", MonthlyLimit: 50000}

	status, err := ComposeStatus(budget, Stats{}, nil, now)
	if err != nil {
		t.Fatalf("ComposeStatus: %v", err)
	}

	if status.Spent != 0 || status.PercentUsed != 0 {
		t.Errorf("spent/percentUsed = %d/%d, want 0/0", status.Spent, status.PercentUsed)
	}
	if status.IsExceeded || status.ProjectedOverspend {
		t.Error("empty category must not flag overspend")
	}
	if status.TransactionCount != 0 {
		t.Errorf("transactionCount = %d, want 0", status.TransactionCount)
	}
	if status.DailyTrend == nil || len(status.DailyTrend) != 0 {
		t.Errorf("dailyTrend should be an empty slice, got %#v", status.DailyTrend)
	}
}

func TestComposeStatusLastDayOfMonth(t *testing.T) {
	now := date(t, "2026-04-30")
	budget := models.Budget{ID: "b1", Category: "Food", MonthlyLimit: 30000}
	expenses := []models.Transaction{expense(t, "Food", 20000, "2026-04-15")}

	status, err := ComposeStatus(budget, AggregateByCategory(expenses)["Food"], nil, now)
	if err != nil {
		t.Fatalf("ComposeStatus: %v", err)
	}

	if status.DaysRemaining != 0 {
		t.Errorf("daysRemaining = %d, want 0", status.DaysRemaining)
	}
	// Defined as 0 on the last day, not computed by division.
	if status.DailyBudgetRemaining != 0 {
		t.Errorf("dailyBudgetRemaining = %d, want 0", status.DailyBudgetRemaining)
	}
	// No extrapolation left on the last day.
	if status.ProjectedSpend != 20000 {
		t.Errorf("projectedSpend = %d, want 20000", status.ProjectedSpend)
	}
}

func TestComposeStatusExceeded(t *testing.T) {
	now := date(t, "2026-04-20")
	budget := models.Budget{ID: "b1", Category: "Food", MonthlyLimit: 10000}
	expenses := []models.Transaction{expense(t, "Food", 15000, "2026-04-05")}

	status, err := ComposeStatus(budget, AggregateByCategory(expenses)["Food"], nil, now)
	if err != nil {
		t.Fatalf("ComposeStatus: %v", err)
	}

	if !status.IsExceeded {
		t.Error("isExceeded should be true")
	}
	if status.PercentUsed != 150 {
		t.Errorf("percentUsed = %d, want 150", status.PercentUsed)
	}
	if !status.ProjectedOverspend {
		t.Error("projectedOverspend should be true")
	}
	// Negative remaining allowance is reported as-is, rounded.
	if status.DailyBudgetRemaining >= 0 {
		t.Errorf("dailyBudgetRemaining = %d, want negative", status.DailyBudgetRemaining)
	}
	if len(status.Insights) == 0 {
		t.Error("exceeded budget should produce an insight")
	}
}

func TestComposeAllStatuses(t *testing.T) {
	now := date(t, "2026-04-10")
	budgets := []models.Budget{
		{ID: "b1", Category: "Food", MonthlyLimit: 30000},
		{ID: "b2", Category: "Travel", MonthlyLimit: 50000},
	}
	expenses := []models.Transaction{expense(t, "Food", 10000, "2026-04-10")}

	statuses, err := ComposeAllStatuses(budgets, expenses, now)
	if err != nil {
		t.Fatalf("ComposeAllStatuses: %v", err)
	}
	if len(statuses) != 2 {
		t.Fatalf("expected 2 statuses, got %d", len(statuses))
	}
	if statuses[0].Category != "Food" || statuses[0].Spent != 10000 {
		t.Errorf("food status = %+v", statuses[0])
	}
	if statuses[1].Category != "Travel" || statuses[1].Spent != 0 {
		t.Errorf("travel status = %+v", statuses[1])
	}
}
