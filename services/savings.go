package services

import (
	"time"

	"github.com/fintrack/fintrack-api/models"
)

// SavingsRate derives the monthly savings-rate series for the most recent
// monthCount months ending at now's month: (income - expenses) / income
// as a percentage, ascending by (year, month). Months with zero income
// report 0 rather than NaN or -Inf, and months with no transactions at
// all are not emitted.
func SavingsRate(txs []models.Transaction, monthCount int, now time.Time) ([]models.SavingsPoint, error) {
	if monthCount < 1 {
		return nil, NewValidationError("months", "must be at least 1")
	}

	first := yearMonthOf(time.Date(now.Year(), now.Month()-time.Month(monthCount-1), 1, 0, 0, 0, 0, time.UTC))
	last := yearMonthOf(now)

	type totals struct {
		income   models.Cents
		expenses models.Cents
	}
	months := make(map[yearMonth]*totals)
	for key, s := range AggregateByKindMonth(txs) {
		ym := yearMonth{Year: key.Year, Month: key.Month}
		if ym.before(first) || last.before(ym) {
			continue
		}
		t, ok := months[ym]
		if !ok {
			t = &totals{}
			months[ym] = t
		}
		if key.Kind == models.KindIncome {
			t.income = s.Sum
		} else {
			t.expenses = s.Sum
		}
	}

	out := make([]models.SavingsPoint, 0, len(months))
	for _, ym := range sortedYearMonths(months) {
		t := months[ym]
		out = append(out, models.SavingsPoint{
			Month:       MonthLabel(ym.Year, ym.Month),
			SavingsRate: safeRatio(float64(t.income-t.expenses), float64(t.income)) * 100,
		})
	}
	return out, nil
}
