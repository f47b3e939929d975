package services

import (
	"errors"
	"testing"

	"github.com/fintrack/fintrack-api/models"
)

func TestSavingsRate(t *testing.T) {
	now := date(t, "2026-03-15")
	txs := []models.Transaction{
		income(t, "Salary", 200000, "2026-02-25"),
		expense(t, "Food", 50000, "2026-02-10"),
		income(t, "Salary", 200000, "2026-03-01"),
		expense(t, "Food", 200000, "2026-03-05"),
	}

	series, err := SavingsRate(txs, 6, now)
	if err != nil {
		t.Fatalf("SavingsRate: %v", err)
	}
	if len(series) != 2 {
		t.Fatalf("expected 2 months, got %d", len(series))
	}

	if series[0].Month != "2/2026" || series[0].SavingsRate != 75 {
		t.Errorf("february = %+v, want 2/2026 at 75%%", series[0])
	}
	if series[1].Month != "3/2026" || series[1].SavingsRate != 0 {
		t.Errorf("march = %+v, want 3/2026 at 0%% (broke even)", series[1])
	}
}

func TestSavingsRateZeroIncome(t *testing.T) {
	// income=0, expenses=50: the rate must saturate to 0, never
	// NaN/-Inf or an error.
	now := date(t, "2026-03-15")
	txs := []models.Transaction{expense(t, "Food", 5000, "2026-03-10")}

	series, err := SavingsRate(txs, 3, now)
	if err != nil {
		t.Fatalf("SavingsRate: %v", err)
	}
	if len(series) != 1 {
		t.Fatalf("expected 1 month, got %d", len(series))
	}
	if series[0].SavingsRate != 0 {
		t.Errorf("zero-income month rate = %v, want 0", series[0].SavingsRate)
	}
}

func TestSavingsRateOrdering(t *testing.T) {
	now := date(t, "2026-01-20")
	txs := []models.Transaction{
		income(t, "Salary", 100000, "2026-01-05"),
		income(t, "Salary", 100000, "2025-11-05"),
		income(t, "Salary", 100000, "2025-12-05"),
	}

	series, err := SavingsRate(txs, 4, now)
	if err != nil {
		t.Fatalf("SavingsRate: %v", err)
	}
	want := []string{"11/2025", "12/2025", "1/2026"}
	if len(series) != len(want) {
		t.Fatalf("expected %d months, got %d", len(want), len(series))
	}
	for i, label := range want {
		if series[i].Month != label {
			t.Errorf("series[%d].Month = %q, want %q", i, series[i].Month, label)
		}
	}
}

func TestSavingsRateRejectsBadMonthCount(t *testing.T) {
	var validationErr *ValidationError
	if _, err := SavingsRate(nil, -1, date(t, "2026-03-15")); !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}
