package services

import (
	"fmt"
	"sort"
	"time"

	"github.com/fintrack/fintrack-api/models"
)

// MonthLabel formats a month as "M/YYYY", e.g. "3/2026". Labels are for
// display only; series are always ordered by the (year, month) pair.
func MonthLabel(year int, month time.Month) string {
	return fmt.Sprintf("%d/%d", int(month), year)
}

// PercentChange returns the period-over-period change in percent. A zero
// previous period resolves to 0, never Inf.
func PercentChange(current, previous models.Cents) float64 {
	return safeRatio(float64(current-previous), float64(previous)) * 100
}

type yearMonth struct {
	Year  int
	Month time.Month
}

func (ym yearMonth) before(other yearMonth) bool {
	if ym.Year != other.Year {
		return ym.Year < other.Year
	}
	return ym.Month < other.Month
}

// MonthlySeries builds the income-vs-expense comparison for the most
// recent monthCount months ending at now's month inclusive. Months
// without any transactions are not emitted.
func MonthlySeries(txs []models.Transaction, monthCount int, now time.Time) ([]models.MonthPoint, error) {
	if monthCount < 1 {
		return nil, NewValidationError("months", "must be at least 1")
	}

	// Anchor on the first of the month before shifting back so day-of-month
	// normalization can never skip a short month.
	first := yearMonthOf(time.Date(now.Year(), now.Month()-time.Month(monthCount-1), 1, 0, 0, 0, 0, time.UTC))
	last := yearMonthOf(now)

	points := make(map[yearMonth]*models.MonthPoint)
	for key, s := range AggregateByKindMonth(txs) {
		ym := yearMonth{Year: key.Year, Month: key.Month}
		if ym.before(first) || last.before(ym) {
			continue
		}
		p, ok := points[ym]
		if !ok {
			p = &models.MonthPoint{Month: MonthLabel(ym.Year, ym.Month)}
			points[ym] = p
		}
		if key.Kind == models.KindIncome {
			p.Income = s.Sum
		} else {
			p.Expense = s.Sum
		}
	}

	out := make([]models.MonthPoint, 0, len(points))
	for _, ym := range sortedYearMonths(points) {
		out = append(out, *points[ym])
	}
	return out, nil
}

func yearMonthOf(t time.Time) yearMonth {
	return yearMonth{Year: t.Year(), Month: t.Month()}
}

func sortedYearMonths[V any](m map[yearMonth]V) []yearMonth {
	keys := make([]yearMonth, 0, len(m))
	for ym := range m {
		keys = append(keys, ym)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].before(keys[j]) })
	return keys
}

// CategoryMonthlyTrend annotates each budget with its month-over-month
// spending trend. expenses should cover the last few months (the callers
// pass three, matching the comparison window of latest vs previous month
// plus one spare for the average).
func CategoryMonthlyTrend(budgets []models.Budget, expenses []models.Transaction) []models.BudgetWithStats {
	byCatMonth := AggregateByCategoryMonth(expenses)

	perCategory := make(map[string]map[yearMonth]models.Cents)
	for key, s := range byCatMonth {
		months, ok := perCategory[key.Category]
		if !ok {
			months = make(map[yearMonth]models.Cents)
			perCategory[key.Category] = months
		}
		months[yearMonth{Year: key.Year, Month: key.Month}] = s.Sum
	}

	out := make([]models.BudgetWithStats, 0, len(budgets))
	for _, budget := range budgets {
		stats := models.BudgetWithStats{Budget: budget}

		months := perCategory[budget.Category]
		keys := sortedYearMonths(months)

		var total models.Cents
		for _, ym := range keys {
			total += months[ym]
		}
		if len(keys) > 0 {
			stats.AverageSpending = models.Cents(roundDiv(int64(total), int64(len(keys))))
		}
		if len(keys) > 1 {
			latest := months[keys[len(keys)-1]]
			previous := months[keys[len(keys)-2]]
			stats.Trend = PercentChange(latest, previous)
		}
		stats.ProjectedOverspend = stats.AverageSpending > budget.MonthlyLimit

		out = append(out, stats)
	}
	return out
}

// WeeklyTrends returns each category's per-ISO-week spend, weeks ordered
// ascending. Only weeks containing at least one transaction appear.
func WeeklyTrends(expenses []models.Transaction) map[string][]models.WeeklyPoint {
	byWeek := AggregateByCategoryWeek(expenses)

	type weekEntry struct {
		year, week int
		spent      models.Cents
	}
	perCategory := make(map[string][]weekEntry)
	for key, s := range byWeek {
		perCategory[key.Category] = append(perCategory[key.Category], weekEntry{key.Year, key.Week, s.Sum})
	}

	out := make(map[string][]models.WeeklyPoint, len(perCategory))
	for category, entries := range perCategory {
		sort.Slice(entries, func(i, j int) bool {
			if entries[i].year != entries[j].year {
				return entries[i].year < entries[j].year
			}
			return entries[i].week < entries[j].week
		})
		points := make([]models.WeeklyPoint, len(entries))
		for i, e := range entries {
			points[i] = models.WeeklyPoint{Week: e.week, Spent: e.spent}
		}
		out[category] = points
	}
	return out
}

// DailyTrends returns each category's day-by-day spend ascending by date.
func DailyTrends(expenses []models.Transaction) map[string][]models.DailyPoint {
	byDay := AggregateByCategoryDay(expenses)

	out := make(map[string][]models.DailyPoint)
	for key, s := range byDay {
		out[key.Category] = append(out[key.Category], models.DailyPoint{Date: key.Date, Amount: s.Sum})
	}
	for _, points := range out {
		sort.Slice(points, func(i, j int) bool { return points[i].Date < points[j].Date })
	}
	return out
}
