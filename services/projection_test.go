package services

import (
	"errors"
	"testing"
)

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		date string
		want int
	}{
		{"2026-01-15", 31},
		{"2026-02-10", 28},
		{"2024-02-10", 29}, // leap year
		{"2026-04-01", 30},
		{"2026-12-31", 31},
	}

	for _, tt := range tests {
		if got := DaysInMonth(date(t, tt.date)); got != tt.want {
			t.Errorf("DaysInMonth(%s) = %d, want %d", tt.date, got, tt.want)
		}
	}
}

func TestProjectMonthEnd(t *testing.T) {
	// Spec scenario: 100.00 spent by day 10 of a 30-day month projects
	// to exactly 300.00.
	got, err := ProjectMonthEnd(10000, 10, 30)
	if err != nil {
		t.Fatalf("ProjectMonthEnd: %v", err)
	}
	if got != 30000 {
		t.Errorf("projection = %d, want 30000", got)
	}
}

func TestProjectMonthEndLastDayIdentity(t *testing.T) {
	for _, days := range []int{28, 29, 30, 31} {
		got, err := ProjectMonthEnd(12345, days, days)
		if err != nil {
			t.Fatalf("ProjectMonthEnd(%d, %d): %v", days, days, err)
		}
		if got != 12345 {
			t.Errorf("last-day projection with %d days = %d, want 12345 unchanged", days, got)
		}
	}
}

func TestProjectMonthEndRejectsBadDay(t *testing.T) {
	var domainErr *DomainError

	if _, err := ProjectMonthEnd(10000, 0, 30); !errors.As(err, &domainErr) {
		t.Errorf("dayOfMonth=0 should be a DomainError, got %v", err)
	}
	if _, err := ProjectMonthEnd(10000, -3, 30); !errors.As(err, &domainErr) {
		t.Errorf("negative dayOfMonth should be a DomainError, got %v", err)
	}
	if _, err := ProjectMonthEnd(10000, 31, 30); !errors.As(err, &domainErr) {
		t.Errorf("dayOfMonth beyond month length should be a DomainError, got %v", err)
	}
}

func TestProjectMonthEndZeroSpent(t *testing.T) {
	got, err := ProjectMonthEnd(0, 5, 31)
	if err != nil {
		t.Fatalf("ProjectMonthEnd: %v", err)
	}
	if got != 0 {
		t.Errorf("zero spend projects to %d, want 0", got)
	}
}
