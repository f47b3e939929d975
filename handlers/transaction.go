package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fintrack/fintrack-api/middleware"
	"github.com/fintrack/fintrack-api/models"
	"github.com/fintrack/fintrack-api/services"
)

type TransactionHandler struct {
	Store *services.LedgerStore
	Cache *services.BudgetCacheUpdater
	WS    *WSHandler
}

func NewTransactionHandler(store *services.LedgerStore, cache *services.BudgetCacheUpdater, ws *WSHandler) *TransactionHandler {
	return &TransactionHandler{Store: store, Cache: cache, WS: ws}
}

// List returns the owner's transactions, optionally filtered by type,
// category and date range. Newest first.
func (h *TransactionHandler) List(c *gin.Context) {
	ownerID := middleware.GetUserID(c)

	filter := services.TransactionFilter{
		Kind:     models.TransactionKind(c.Query("type")),
		Category: c.Query("category"),
	}
	if filter.Kind != "" && !filter.Kind.Valid() {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "type must be income or expense"})
		return
	}

	var err error
	if from := c.Query("from"); from != "" {
		if filter.From, err = parseDate(from); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid from date"})
			return
		}
	}
	if to := c.Query("to"); to != "" {
		if filter.To, err = parseDate(to); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid to date"})
			return
		}
	}

	txs, err := h.Store.Transactions(c.Request.Context(), ownerID, filter)
	if err != nil {
		respondError(c, err)
		return
	}
	if txs == nil {
		txs = []models.Transaction{}
	}
	c.JSON(http.StatusOK, txs)
}

// Create inserts a ledger entry. Expense writes trigger the budget cache
// recompute; the refreshed budgets ride along in the response.
func (h *TransactionHandler) Create(c *gin.Context) {
	ownerID := middleware.GetUserID(c)

	var req models.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Amount < 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "amount must not be negative"})
		return
	}

	tx := models.Transaction{
		OwnerID:     ownerID,
		Kind:        req.Kind,
		Category:    req.Category,
		Amount:      req.Amount,
		Date:        req.Date,
		Description: req.Description,
	}
	if err := h.Store.InsertTransaction(c.Request.Context(), &tx); err != nil {
		respondError(c, err)
		return
	}

	if tx.Kind == models.KindExpense {
		h.refreshBudgetCache(c.Request.Context(), ownerID)
	}

	budgets, err := h.Store.Budgets(c.Request.Context(), ownerID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"transaction":   tx,
		"budget_status": budgets,
	})
}

// Delete removes a ledger entry, owner-scoped, and recomputes the budget
// cache when the entry was an expense.
func (h *TransactionHandler) Delete(c *gin.Context) {
	ownerID := middleware.GetUserID(c)
	id := c.Param("id")

	tx, err := h.Store.GetTransaction(c.Request.Context(), ownerID, id)
	if err != nil {
		respondError(c, err)
		return
	}
	if err := h.Store.DeleteTransaction(c.Request.Context(), ownerID, id); err != nil {
		respondError(c, err)
		return
	}

	if tx.Kind == models.KindExpense {
		h.refreshBudgetCache(c.Request.Context(), ownerID)
	}

	budgets, err := h.Store.Budgets(c.Request.Context(), ownerID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":       "Transaction deleted",
		"budget_status": budgets,
	})
}

// Summary returns the all-time balance plus current-month totals.
func (h *TransactionHandler) Summary(c *gin.Context) {
	ownerID := middleware.GetUserID(c)

	all, err := h.Store.Transactions(c.Request.Context(), ownerID, services.TransactionFilter{})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, services.Summarize(all, time.Now().UTC()))
}

// ByCategory returns the current month's expense totals per category.
func (h *TransactionHandler) ByCategory(c *gin.Context) {
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

	c.JSON(http.StatusOK, services.CategoryTotals(expenses))
}

// Categorize suggests a category for a free-text description.
func (h *TransactionHandler) Categorize(c *gin.Context) {
	description := c.Query("description")
	if description == "" {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "description is required"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"category": services.SuggestCategory(description)})
}

// refreshBudgetCache is best-effort: a cache failure never fails the
// ledger write that triggered it.
func (h *TransactionHandler) refreshBudgetCache(ctx context.Context, ownerID string) {
	if err := h.Cache.Refresh(ctx, ownerID, time.Now().UTC()); err != nil {
		log.Printf("budget cache refresh for %s failed: %v", ownerID, err)
		return
	}
	h.WS.BroadcastBudgetUpdate(ownerID)
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

func monthBounds(now time.Time) (time.Time, time.Time) {
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	end := start.AddDate(0, 1, 0).Add(-time.Nanosecond)
	return start, end
}
