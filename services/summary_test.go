package services

import (
	"testing"

	"github.com/fintrack/fintrack-api/models"
)

func TestSummarizeSpecScenario(t *testing.T) {
	// Two incomes of 1000.00 and one expense of 300.00 within one month.
	now := date(t, "2026-03-20")
	txs := []models.Transaction{
		income(t, "Salary", 100000, "2026-03-01"),
		income(t, "Salary", 100000, "2026-03-15"),
		expense(t, "Food", 30000, "2026-03-10"),
	}

	summary := Summarize(txs, now)
	if summary.CurrentBalance != 170000 {
		t.Errorf("currentBalance = %d, want 170000", summary.CurrentBalance)
	}
	if summary.TotalIncome != 200000 {
		t.Errorf("totalIncome = %d, want 200000", summary.TotalIncome)
	}
	if summary.TotalExpenses != 30000 {
		t.Errorf("totalExpenses = %d, want 30000", summary.TotalExpenses)
	}
}

func TestSummarizeBalanceIsAllTime(t *testing.T) {
	now := date(t, "2026-03-20")
	txs := []models.Transaction{
		income(t, "Salary", 100000, "2025-06-01"), // previous year
		expense(t, "Food", 40000, "2026-03-10"),
	}

	summary := Summarize(txs, now)
	if summary.CurrentBalance != 60000 {
		t.Errorf("currentBalance = %d, want 60000 (all-time)", summary.CurrentBalance)
	}
	if summary.TotalIncome != 0 {
		t.Errorf("totalIncome = %d, want 0 (income was outside this month)", summary.TotalIncome)
	}
	if summary.TotalExpenses != 40000 {
		t.Errorf("totalExpenses = %d, want 40000", summary.TotalExpenses)
	}
}

func TestCategoryTotalsOrdering(t *testing.T) {
	txs := []models.Transaction{
		expense(t, "Transport", 2000, "2026-03-01"),
		expense(t, "Food", 9000, "2026-03-02"),
		expense(t, "Food", 1000, "2026-03-03"),
	}

	totals := CategoryTotals(txs)
	if len(totals) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(totals))
	}
	if totals[0].Category != "Food" || totals[0].Total != 10000 {
		t.Errorf("first = %+v, want Food 10000", totals[0])
	}
	if totals[1].Category != "Transport" || totals[1].Total != 2000 {
		t.Errorf("second = %+v, want Transport 2000", totals[1])
	}
}

func TestFinancialTrends(t *testing.T) {
	txs := []models.Transaction{
		income(t, "Salary", 100000, "2026-03-01"),
		expense(t, "Food", 20000, "2026-03-01"),
		expense(t, "Food", 5000, "2026-03-03"),
	}

	points := FinancialTrends(txs)
	if len(points) != 2 {
		t.Fatalf("expected 2 days, got %d", len(points))
	}

	first := points[0]
	if first.Date != "2026-03-01" {
		t.Errorf("first date = %q, want 2026-03-01", first.Date)
	}
	if first.Balance != 80000 {
		t.Errorf("day balance = %d, want 80000 (100000 income - 20000 expense)", first.Balance)
	}
	if first.Savings != 20000 {
		t.Errorf("day savings = %d, want 20000 (20%% of income)", first.Savings)
	}

	second := points[1]
	if second.Balance != -5000 || second.Savings != 0 {
		t.Errorf("second day = %+v, want balance -5000 savings 0", second)
	}
}

func TestTopTransactions(t *testing.T) {
	txs := []models.Transaction{
		expense(t, "Food", 1000, "2026-03-01"),
		expense(t, "Travel", 90000, "2026-03-02"),
		income(t, "Salary", 50000, "2026-03-03"),
		expense(t, "Health", 20000, "2026-03-04"),
	}

	top, err := TopTransactions(txs, 2)
	if err != nil {
		t.Fatalf("TopTransactions: %v", err)
	}
	if len(top) != 2 {
		t.Fatalf("expected 2, got %d", len(top))
	}
	if top[0].Amount != 90000 || top[1].Amount != 50000 {
		t.Errorf("top amounts = %d, %d, want 90000, 50000", top[0].Amount, top[1].Amount)
	}

	if _, err := TopTransactions(txs, 0); err == nil {
		t.Error("limit 0 should be rejected")
	}
}

func TestTopTransactionsPerCategory(t *testing.T) {
	expenses := []models.Transaction{
		expense(t, "Food", 1000, "2026-03-01"),
		expense(t, "Food", 5000, "2026-03-02"),
		expense(t, "Food", 3000, "2026-03-03"),
		expense(t, "Travel", 70000, "2026-03-04"),
	}

	top := TopTransactionsPerCategory(expenses, 2)
	food := top["Food"]
	if len(food) != 2 {
		t.Fatalf("expected 2 food entries, got %d", len(food))
	}
	if food[0].Amount != 5000 || food[1].Amount != 3000 {
		t.Errorf("food top = %d, %d, want 5000, 3000", food[0].Amount, food[1].Amount)
	}
	if len(top["Travel"]) != 1 {
		t.Errorf("travel should keep its single entry")
	}
}
