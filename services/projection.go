package services

import (
	"time"

	"github.com/fintrack/fintrack-api/models"
)

// DaysInMonth returns the number of calendar days in now's month,
// leap-year aware (day 0 of the next month is the last day of this one).
func DaysInMonth(now time.Time) int {
	return time.Date(now.Year(), now.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// ProjectMonthEnd extrapolates month-to-date spend to a full-month
// estimate by elapsed-day ratio: spent / dayOfMonth * daysInMonth,
// rounded to whole cents. On the last day of the month the projection is
// exactly the spend so far.
//
// dayOfMonth is a calendar day and therefore always >= 1; anything else
// is a caller bug surfaced as a DomainError, never a division by zero.
func ProjectMonthEnd(spent models.Cents, dayOfMonth, daysInMonth int) (models.Cents, error) {
	if dayOfMonth < 1 {
		return 0, NewDomainError("project month end", "day of month must be >= 1")
	}
	if daysInMonth < dayOfMonth {
		return 0, NewDomainError("project month end", "day of month exceeds days in month")
	}
	return models.Cents(roundDiv(int64(spent)*int64(daysInMonth), int64(dayOfMonth))), nil
}
