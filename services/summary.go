package services

import (
	"sort"
	"time"

	"github.com/fintrack/fintrack-api/models"
)

// Summarize computes the dashboard headline from the owner's full ledger:
// all-time balance (income minus expenses) and the totals for now's
// calendar month.
func Summarize(all []models.Transaction, now time.Time) models.Summary {
	var summary models.Summary
	year, month := now.Year(), now.Month()

	for _, tx := range all {
		if tx.Kind == models.KindIncome {
			summary.CurrentBalance += tx.Amount
		} else {
			summary.CurrentBalance -= tx.Amount
		}
		if tx.Date.Year() == year && tx.Date.Month() == month {
			if tx.Kind == models.KindIncome {
				summary.TotalIncome += tx.Amount
			} else {
				summary.TotalExpenses += tx.Amount
			}
		}
	}
	return summary
}

// CategoryTotals sums expenses per category, ordered total descending
// with a stable alphabetical tie-break.
func CategoryTotals(expenses []models.Transaction) []models.CategoryTotal {
	byCategory := AggregateByCategory(expenses)
	out := make([]models.CategoryTotal, 0, len(byCategory))
	for category, s := range byCategory {
		out = append(out, models.CategoryTotal{Category: category, Total: s.Sum})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Total != out[j].Total {
			return out[i].Total > out[j].Total
		}
		return out[i].Category < out[j].Category
	})
	return out
}

// FinancialTrends builds the day-by-day trend series: the net balance
// movement of each day plus a 20% savings-target slice of that day's
// income. Days are ascending; only days with transactions appear.
func FinancialTrends(txs []models.Transaction) []models.TrendSeriesPoint {
	type dayTotals struct {
		balance models.Cents
		savings models.Cents
	}
	days := make(map[string]*dayTotals)
	for _, tx := range txs {
		key := tx.Date.Format("2006-01-02")
		d, ok := days[key]
		if !ok {
			d = &dayTotals{}
			days[key] = d
		}
		if tx.Kind == models.KindIncome {
			d.balance += tx.Amount
			d.savings += models.Cents(roundDiv(int64(tx.Amount)*20, 100))
		} else {
			d.balance -= tx.Amount
		}
	}

	keys := make([]string, 0, len(days))
	for k := range days {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]models.TrendSeriesPoint, 0, len(keys))
	for _, k := range keys {
		out = append(out, models.TrendSeriesPoint{Date: k, Balance: days[k].balance, Savings: days[k].savings})
	}
	return out
}

// TopTransactions returns the limit largest transactions by amount.
func TopTransactions(txs []models.Transaction, limit int) ([]models.Transaction, error) {
	if limit < 1 {
		return nil, NewValidationError("limit", "must be at least 1")
	}
	sorted := make([]models.Transaction, len(txs))
	copy(sorted, txs)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Amount != sorted[j].Amount {
			return sorted[i].Amount > sorted[j].Amount
		}
		return sorted[i].Date.After(sorted[j].Date)
	})
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted, nil
}

// TopTransactionsPerCategory returns each category's limit largest
// expenses, amount descending, in the slim response shape.
func TopTransactionsPerCategory(expenses []models.Transaction, limit int) map[string][]models.TransactionSlim {
	perCategory := make(map[string][]models.Transaction)
	for _, tx := range expenses {
		perCategory[tx.Category] = append(perCategory[tx.Category], tx)
	}

	out := make(map[string][]models.TransactionSlim, len(perCategory))
	for category, txs := range perCategory {
		sort.Slice(txs, func(i, j int) bool { return txs[i].Amount > txs[j].Amount })
		if len(txs) > limit {
			txs = txs[:limit]
		}
		slims := make([]models.TransactionSlim, len(txs))
		for i, tx := range txs {
			slims[i] = models.TransactionSlim{Amount: tx.Amount, Date: tx.Date, Description: tx.Description}
		}
		out[category] = slims
	}
	return out
}
