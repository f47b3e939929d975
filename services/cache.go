package services

import (
	"context"
	"log"
	"time"

	"github.com/fintrack/fintrack-api/models"
)

// RecomputeCurrentSpent derives the fresh current_spent value for every
// budget from the current month's expense transactions. It is always a
// full recompute, never an incremental delta: concurrent create/delete
// races can at worst leave a transiently stale cache that the next
// recompute corrects, they can never make it drift. Budgets whose
// category has no expenses this month map to 0.
//
// Pure and idempotent: two calls with the same inputs return the same map.
func RecomputeCurrentSpent(budgets []models.Budget, monthExpenses []models.Transaction) map[string]models.Cents {
	byCategory := AggregateByCategory(monthExpenses)

	out := make(map[string]models.Cents, len(budgets))
	for _, b := range budgets {
		out[b.Category] = byCategory[b.Category].Sum
	}
	return out
}

// BudgetCacheUpdater refreshes the cached current_spent column after
// ledger mutations.
type BudgetCacheUpdater struct {
	store *LedgerStore
}

func NewBudgetCacheUpdater(store *LedgerStore) *BudgetCacheUpdater {
	return &BudgetCacheUpdater{store: store}
}

// Refresh recomputes and persists every budget's current_spent for the
// owner. It is best-effort consistency maintenance: the caller logs the
// returned error but must never fail the triggering transaction write
// because of it.
func (u *BudgetCacheUpdater) Refresh(ctx context.Context, ownerID string, now time.Time) error {
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	expenses, err := u.store.Transactions(ctx, ownerID, TransactionFilter{
		Kind: models.KindExpense,
		From: startOfMonth,
	})
	if err != nil {
		return err
	}
	budgets, err := u.store.Budgets(ctx, ownerID)
	if err != nil {
		return err
	}

	var lastErr error
	for category, spent := range RecomputeCurrentSpent(budgets, expenses) {
		if err := u.store.PersistBudgetSpent(ctx, ownerID, category, spent); err != nil {
			log.Printf("budget cache: persist %q failed: %v", category, err)
			lastErr = err
		}
	}
	return lastErr
}
