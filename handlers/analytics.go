package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fintrack/fintrack-api/middleware"
	"github.com/fintrack/fintrack-api/models"
	"github.com/fintrack/fintrack-api/services"
)

type AnalyticsHandler struct {
	Store *services.LedgerStore
}

func NewAnalyticsHandler(store *services.LedgerStore) *AnalyticsHandler {
	return &AnalyticsHandler{Store: store}
}

// CategoryExpenses returns per-category expense totals for the current
// month or the current year, selected by ?timeframe=month|year.
func (h *AnalyticsHandler) CategoryExpenses(c *gin.Context) {
	ownerID := middleware.GetUserID(c)
	now := time.Now().UTC()

	var from time.Time
	switch c.DefaultQuery("timeframe", "month") {
	case "month":
		from, _ = monthBounds(now)
	case "year":
		from = time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
	default:
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "timeframe must be month or year"})
		return
	}

	expenses, err := h.Store.Transactions(c.Request.Context(), ownerID, services.TransactionFilter{
		Kind: models.KindExpense,
		From: from,
		To:   now,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, services.CategoryTotals(expenses))
}

// IncomeExpense returns the income-vs-expense comparison for the last N
// months (?months=, default 6).
func (h *AnalyticsHandler) IncomeExpense(c *gin.Context) {
	ownerID := middleware.GetUserID(c)
	now := time.Now().UTC()

	months, err := queryInt(c, "months", 6)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "months must be a number"})
		return
	}

	txs, err := h.fetchSince(c, ownerID, monthsBack(now, months))
	if err != nil {
		respondError(c, err)
		return
	}

	series, err := services.MonthlySeries(txs, months, now)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, series)
}

// Trends returns the day-by-day balance and savings-target series for
// the current year or month (?timeframe=year|month, default year).
func (h *AnalyticsHandler) Trends(c *gin.Context) {
	ownerID := middleware.GetUserID(c)
	now := time.Now().UTC()

	var from time.Time
	switch c.DefaultQuery("timeframe", "year") {
	case "year":
		from = time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
	case "month":
		from, _ = monthBounds(now)
	default:
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "timeframe must be month or year"})
		return
	}

	txs, err := h.fetchSince(c, ownerID, from)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, services.FinancialTrends(txs))
}

// SavingsRate returns the monthly savings-rate series for the last N
// months (?months=, default 12).
func (h *AnalyticsHandler) SavingsRate(c *gin.Context) {
	ownerID := middleware.GetUserID(c)
	now := time.Now().UTC()

	months, err := queryInt(c, "months", 12)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "months must be a number"})
		return
	}

	txs, err := h.fetchSince(c, ownerID, monthsBack(now, months))
	if err != nil {
		respondError(c, err)
		return
	}

	series, err := services.SavingsRate(txs, months, now)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, series)
}

// TopTransactions returns the owner's largest transactions by amount
// (?limit=, default 5).
func (h *AnalyticsHandler) TopTransactions(c *gin.Context) {
	ownerID := middleware.GetUserID(c)

	limit, err := queryInt(c, "limit", 5)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "limit must be a number"})
		return
	}

	txs, err := h.Store.Transactions(c.Request.Context(), ownerID, services.TransactionFilter{})
	if err != nil {
		respondError(c, err)
		return
	}

	top, err := services.TopTransactions(txs, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, top)
}

func (h *AnalyticsHandler) fetchSince(c *gin.Context, ownerID string, from time.Time) ([]models.Transaction, error) {
	return h.Store.Transactions(c.Request.Context(), ownerID, services.TransactionFilter{From: from})
}

func queryInt(c *gin.Context, name string, fallback int) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}

func monthsBack(now time.Time, months int) time.Time {
	return time.Date(now.Year(), now.Month()-time.Month(months-1), 1, 0, 0, 0, 0, now.Location())
}
