package services

import (
	"sort"
	"time"

	"github.com/fintrack/fintrack-api/models"
)

// Stats is the rollup computed for every aggregation group: exact cent
// sums plus count/avg/min/max over the entries that landed in the group.
// Groups with zero entries are never materialized; callers default
// missing keys to the zero value downstream.
type Stats struct {
	Sum   models.Cents
	Count int
	Avg   models.Cents
	Min   models.Cents
	Max   models.Cents
}

// Group keys. Time-bucketed keys always carry the year so series can be
// ordered by a comparable tuple instead of map iteration order.

type CategoryMonthKey struct {
	Category string
	Year     int
	Month    time.Month
}

type CategoryWeekKey struct {
	Category string
	Year     int
	Week     int // ISO week number
}

type CategoryDayKey struct {
	Category string
	Date     string // "2006-01-02"
}

type KindMonthKey struct {
	Year  int
	Month time.Month
	Kind  models.TransactionKind
}

func addSample[K comparable](m map[K]Stats, key K, amount models.Cents) {
	s, ok := m[key]
	if !ok {
		m[key] = Stats{Sum: amount, Count: 1, Min: amount, Max: amount}
		return
	}
	s.Sum += amount
	s.Count++
	if amount < s.Min {
		s.Min = amount
	}
	if amount > s.Max {
		s.Max = amount
	}
	m[key] = s
}

func finalize[K comparable](m map[K]Stats) map[K]Stats {
	for k, s := range m {
		s.Avg = models.Cents(roundDiv(int64(s.Sum), int64(s.Count)))
		m[k] = s
	}
	return m
}

// AggregateByCategory groups transactions by category. Input is assumed
// to be pre-filtered to one owner and the wanted date range; the
// function itself is pure.
func AggregateByCategory(txs []models.Transaction) map[string]Stats {
	m := make(map[string]Stats)
	for _, tx := range txs {
		addSample(m, tx.Category, tx.Amount)
	}
	return finalize(m)
}

// AggregateByCategoryMonth groups by (category, calendar month).
func AggregateByCategoryMonth(txs []models.Transaction) map[CategoryMonthKey]Stats {
	m := make(map[CategoryMonthKey]Stats)
	for _, tx := range txs {
		key := CategoryMonthKey{
			Category: tx.Category,
			Year:     tx.Date.Year(),
			Month:    tx.Date.Month(),
		}
		addSample(m, key, tx.Amount)
	}
	return finalize(m)
}

// AggregateByCategoryWeek groups by (category, ISO week). The ISO year is
// part of the key so a late-December week never collides with week 1 of
// the following January.
func AggregateByCategoryWeek(txs []models.Transaction) map[CategoryWeekKey]Stats {
	m := make(map[CategoryWeekKey]Stats)
	for _, tx := range txs {
		year, week := tx.Date.ISOWeek()
		addSample(m, CategoryWeekKey{Category: tx.Category, Year: year, Week: week}, tx.Amount)
	}
	return finalize(m)
}

// AggregateByCategoryDay groups by (category, calendar day).
func AggregateByCategoryDay(txs []models.Transaction) map[CategoryDayKey]Stats {
	m := make(map[CategoryDayKey]Stats)
	for _, tx := range txs {
		key := CategoryDayKey{Category: tx.Category, Date: tx.Date.Format("2006-01-02")}
		addSample(m, key, tx.Amount)
	}
	return finalize(m)
}

// AggregateByKindMonth groups by (year, month, kind) and feeds the
// income/expense comparison and savings-rate series.
func AggregateByKindMonth(txs []models.Transaction) map[KindMonthKey]Stats {
	m := make(map[KindMonthKey]Stats)
	for _, tx := range txs {
		key := KindMonthKey{Year: tx.Date.Year(), Month: tx.Date.Month(), Kind: tx.Kind}
		addSample(m, key, tx.Amount)
	}
	return finalize(m)
}

// CategoryAggregates flattens the category rollup into the response
// shape, ordered by spend descending.
func CategoryAggregates(txs []models.Transaction) []models.CategoryAggregate {
	byCat := AggregateByCategory(txs)
	out := make([]models.CategoryAggregate, 0, len(byCat))
	for category, s := range byCat {
		out = append(out, models.CategoryAggregate{
			Category:         category,
			Spent:            s.Sum,
			TransactionCount: s.Count,
			AverageAmount:    s.Avg,
			MinTransaction:   s.Min,
			MaxTransaction:   s.Max,
		})
	}
	// spend desc, category asc on ties, so output is deterministic
	sort.Slice(out, func(i, j int) bool {
		if out[i].Spent != out[j].Spent {
			return out[i].Spent > out[j].Spent
		}
		return out[i].Category < out[j].Category
	})
	return out
}
