package server

import (
	"github.com/labstack/echo/v4"

	"example.com/equilibria/backend/internal/handlers"
)

func registerRoutes(
	e *echo.Echo,
	userHandler *handlers.UserHandler,
	expenseHandler *handlers.ExpenseHandler,
	budgetHandler *handlers.BudgetHandler,
	goalHandler *handlers.GoalHandler,
	academicHandler *handlers.AcademicHandler,
	journalHandler *handlers.JournalHandler,
	analysisHandler *handlers.AnalysisHandler,
	statsHandler *handlers.StatsHandler,
	exportHandler *handlers.ExportHandler,
	adminHandler *handlers.AdminHandler,
	healthHandler *handlers.HealthHandler,
	authMiddleware echo.MiddlewareFunc,
	adminMiddleware echo.MiddlewareFunc,
	bootstrapRateLimiter echo.MiddlewareFunc,
	analysisRateLimiter echo.MiddlewareFunc,
) {
	api := e.Group("/api")

	api.GET("/health", healthHandler.Health)

	api.POST("/users", userHandler.Bootstrap, bootstrapRateLimiter)

	settings := api.Group("/user/settings", authMiddleware)
	settings.GET("", userHandler.GetSettings)
	settings.PUT("", userHandler.UpdateSettings)

	expenses := api.Group("/expenses", authMiddleware)
	expenses.GET("", expenseHandler.List)
	expenses.POST("", expenseHandler.Create)
	expenses.GET("/export/csv", exportHandler.ExportExpensesCSV)
	expenses.GET("/export/json", exportHandler.ExportExpensesJSON)
	expenses.PUT("/:id", expenseHandler.Update)
	expenses.DELETE("/:id", expenseHandler.Delete)

	budgets := api.Group("/budgets", authMiddleware)
	budgets.GET("", budgetHandler.List)
	budgets.POST("", budgetHandler.Create)
	budgets.PUT("/:id", budgetHandler.Update)
	budgets.DELETE("/:id", budgetHandler.Delete)

	goals := api.Group("/goals", authMiddleware)
	goals.GET("", goalHandler.List)
	goals.POST("", goalHandler.Create)
	goals.PUT("/:id", goalHandler.Update)
	goals.DELETE("/:id", goalHandler.Delete)

	academic := api.Group("/academic", authMiddleware)
	academic.GET("", academicHandler.List)
	academic.POST("", academicHandler.Create)
	academic.PUT("/:id", academicHandler.Update)
	academic.DELETE("/:id", academicHandler.Delete)

	journal := api.Group("/journal-entries", authMiddleware)
	journal.GET("", journalHandler.List)
	journal.POST("", journalHandler.Create)
	journal.GET("/export/json", exportHandler.ExportJournalJSON)
	journal.PUT("/:id", journalHandler.Update)
	journal.DELETE("/:id", journalHandler.Delete)

	api.POST("/analyze-journal", analysisHandler.Analyze, authMiddleware, analysisRateLimiter)

	stats := api.Group("/stats", authMiddleware)
	stats.GET("/overview", statsHandler.Overview)
	stats.GET("/spending-by-category", statsHandler.SpendingByCategory)
	stats.GET("/mood-trend", statsHandler.MoodTrend)

	admin := api.Group("/admin", authMiddleware, adminMiddleware)
	admin.GET("/users", adminHandler.ListUsers)
	admin.GET("/usage", adminHandler.Usage)
}
