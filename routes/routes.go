package routes

import (
	"database/sql"

	"github.com/gin-gonic/gin"

	"github.com/fintrack/fintrack-api/handlers"
	"github.com/fintrack/fintrack-api/services"
)

// SetupAuthRoutes sets up public authentication routes.
func SetupAuthRoutes(rg *gin.RouterGroup, db *sql.DB) {
	authHandler := &handlers.AuthHandler{DB: db}

	rg.POST("/auth/signup", authHandler.Signup)
	rg.POST("/auth/login", authHandler.Login)
}

// SetupTransactionRoutes sets up protected ledger routes.
func SetupTransactionRoutes(rg *gin.RouterGroup, db *sql.DB, ws *handlers.WSHandler) {
	store := services.NewLedgerStore(db)
	cache := services.NewBudgetCacheUpdater(store)
	h := handlers.NewTransactionHandler(store, cache, ws)

	rg.GET("/transactions", h.List)
	rg.POST("/transactions", h.Create)
	rg.DELETE("/transactions/:id", h.Delete)
	rg.GET("/transactions/summary", h.Summary)
	rg.GET("/transactions/by-category", h.ByCategory)
	rg.GET("/transactions/categorize", h.Categorize)
}

// SetupBudgetRoutes sets up protected budget routes.
func SetupBudgetRoutes(rg *gin.RouterGroup, db *sql.DB) {
	h := handlers.NewBudgetHandler(services.NewLedgerStore(db))

	rg.GET("/budgets", h.List)
	rg.POST("/budgets", h.Create)
	rg.PUT("/budgets/:id", h.Update)
	rg.DELETE("/budgets/:id", h.Delete)
	rg.GET("/budgets/status", h.Status)
	rg.GET("/budgets/spending", h.Spending)
}

// SetupAnalyticsRoutes sets up protected analytics routes.
func SetupAnalyticsRoutes(rg *gin.RouterGroup, db *sql.DB) {
	h := handlers.NewAnalyticsHandler(services.NewLedgerStore(db))

	rg.GET("/analytics/category-expenses", h.CategoryExpenses)
	rg.GET("/analytics/income-expense", h.IncomeExpense)
	rg.GET("/analytics/trends", h.Trends)
	rg.GET("/analytics/savings-rate", h.SavingsRate)
	rg.GET("/analytics/top-transactions", h.TopTransactions)
}

// SetupUserRoutes sets up protected user routes.
func SetupUserRoutes(rg *gin.RouterGroup, db *sql.DB) {
	userHandler := &handlers.UserHandler{DB: db}

	rg.GET("/user/profile", userHandler.GetProfile)
	rg.POST("/user/password", userHandler.ChangePassword)
	rg.POST("/user/2fa/setup", userHandler.SetupTOTP)
	rg.POST("/user/2fa/verify", userHandler.VerifyTOTP)
	rg.POST("/user/2fa/disable", userHandler.DisableTOTP)
}
