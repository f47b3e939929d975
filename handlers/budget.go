package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/fintrack/fintrack-api/middleware"
	"github.com/fintrack/fintrack-api/models"
	"github.com/fintrack/fintrack-api/services"
)

type BudgetHandler struct {
	Store *services.LedgerStore
}

func NewBudgetHandler(store *services.LedgerStore) *BudgetHandler {
	return &BudgetHandler{Store: store}
}

// List returns the owner's budgets annotated with month-over-month trend
// stats over the last three months of expenses.
func (h *BudgetHandler) List(c *gin.Context) {
	ownerID := middleware.GetUserID(c)
	now := time.Now().UTC()

	var budgets []models.Budget
	var expenses []models.Transaction

	g, ctx := errgroup.WithContext(c.Request.Context())
	g.Go(func() (err error) {
		budgets, err = h.Store.Budgets(ctx, ownerID)
		return err
	})
	g.Go(func() (err error) {
		threeMonthsBack := time.Date(now.Year(), now.Month()-2, 1, 0, 0, 0, 0, now.Location())
		expenses, err = h.Store.Transactions(ctx, ownerID, services.TransactionFilter{
			Kind: models.KindExpense,
			From: threeMonthsBack,
		})
		return err
	})
	if err := g.Wait(); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, services.CategoryMonthlyTrend(budgets, expenses))
}

// Create adds a budget; one per category per owner.
func (h *BudgetHandler) Create(c *gin.Context) {
	ownerID := middleware.GetUserID(c)

	var req models.CreateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.MonthlyLimit <= 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "monthly_limit must be positive"})
		return
	}

	budget := models.Budget{
		OwnerID:      ownerID,
		Category:     req.Category,
		MonthlyLimit: req.MonthlyLimit,
	}
	if err := h.Store.CreateBudget(c.Request.Context(), &budget); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, budget)
}

// Update changes a budget's monthly limit.
func (h *BudgetHandler) Update(c *gin.Context) {
	ownerID := middleware.GetUserID(c)
	id := c.Param("id")

	var req models.UpdateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.MonthlyLimit <= 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "monthly_limit must be positive"})
		return
	}

	budget, err := h.Store.UpdateBudgetLimit(c.Request.Context(), ownerID, id, req.MonthlyLimit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, budget)
}

// Delete removes a budget.
func (h *BudgetHandler) Delete(c *gin.Context) {
	ownerID := middleware.GetUserID(c)

	if err := h.Store.DeleteBudget(c.Request.Context(), ownerID, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Budget deleted"})
}

// Status composes the full per-category budget status for the current
// month: spend, percent used, daily trend, month-end projection.
func (h *BudgetHandler) Status(c *gin.Context) {
	ownerID := middleware.GetUserID(c)
	now := time.Now().UTC()
	from, to := monthBounds(now)

	var budgets []models.Budget
	var expenses []models.Transaction

	g, ctx := errgroup.WithContext(c.Request.Context())
	g.Go(func() (err error) {
		budgets, err = h.Store.Budgets(ctx, ownerID)
		return err
	})
	g.Go(func() (err error) {
		expenses, err = h.Store.Transactions(ctx, ownerID, services.TransactionFilter{
			Kind: models.KindExpense,
			From: from,
			To:   to,
		})
		return err
	})
	if err := g.Wait(); err != nil {
		respondError(c, err)
		return
	}

	statuses, err := services.ComposeAllStatuses(budgets, expenses, now)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, statuses)
}

// Spending returns the detailed monthly spending report: per-category
// aggregates, weekly trends and the top five transactions per category.
func (h *BudgetHandler) Spending(c *gin.Context) {
	ownerID := middleware.GetUserID(c)
	now := time.Now().UTC()
	from, to := monthBounds(now)

	expenses, err := h.Store.Transactions(c.Request.Context(), ownerID, services.TransactionFilter{
		Kind: models.KindExpense,
		From: from,
		To:   to,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	aggregates := services.CategoryAggregates(expenses)
	weekly := services.WeeklyTrends(expenses)
	top := services.TopTransactionsPerCategory(expenses, 5)

	report := make([]models.MonthlySpending, 0, len(aggregates))
	for _, agg := range aggregates {
		entry := models.MonthlySpending{
			CategoryAggregate: agg,
			WeeklyTrend:       weekly[agg.Category],
			TopTransactions:   top[agg.Category],
		}
		if entry.WeeklyTrend == nil {
			entry.WeeklyTrend = []models.WeeklyPoint{}
		}
		if entry.TopTransactions == nil {
			entry.TopTransactions = []models.TransactionSlim{}
		}
		report = append(report, entry)
	}
	c.JSON(http.StatusOK, report)
}
