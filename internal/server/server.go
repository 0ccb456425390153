package server

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"example.com/equilibria/backend/internal/analysis"
	"example.com/equilibria/backend/internal/config"
	"example.com/equilibria/backend/internal/handlers"
	"example.com/equilibria/backend/internal/identity"
	"example.com/equilibria/backend/internal/repository"
)

// New собирает HTTP-сервер Echo с роутами и зависимостями.
func New(cfg config.Config, logger *slog.Logger, db *pgxpool.Pool) *echo.Echo {
	if logger == nil {
		logger = slog.Default()
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = NewValidator()

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(requestLogger(logger))

	verifier := identity.NewVerifier(cfg.Auth.TokenSecret, cfg.Auth.TokenIssuer, cfg.Auth.DevTokenTTL)

	userRepo := repository.NewUserRepository(db)
	expenseRepo := repository.NewExpenseRepository(db)
	budgetRepo := repository.NewBudgetRepository(db)
	goalRepo := repository.NewGoalRepository(db)
	academicRepo := repository.NewAcademicRepository(db)
	journalRepo := repository.NewJournalRepository(db)
	statsRepo := repository.NewStatsRepository(db)
	analysisLogRepo := repository.NewAnalysisLogRepository(db)
	adminRepo := repository.NewAdminRepository(db)

	var aiClient analysis.Client
	switch strings.ToLower(cfg.AI.Provider) {
	case "gemini":
		aiClient = analysis.NewGeminiClient(cfg.AI.APIKey, cfg.AI.BaseURL, cfg.AI.Model, cfg.AI.Timeout, cfg.AI.MaxOutputTokens)
	case "groq":
		aiClient = analysis.NewGroqClient(cfg.AI.APIKey, cfg.AI.BaseURL, cfg.AI.Model, cfg.AI.Timeout, cfg.AI.MaxOutputTokens)
	}
	analysisService := analysis.NewService(aiClient, cfg.AI.Provider, cfg.AI.Model, analysis.NewAnalyzer())

	userHandler := handlers.NewUserHandler(userRepo, verifier)
	expenseHandler := handlers.NewExpenseHandler(expenseRepo)
	budgetHandler := handlers.NewBudgetHandler(budgetRepo)
	goalHandler := handlers.NewGoalHandler(goalRepo)
	academicHandler := handlers.NewAcademicHandler(academicRepo)
	journalHandler := handlers.NewJournalHandler(journalRepo, analysisService, analysisLogRepo)
	analysisHandler := handlers.NewAnalysisHandler(analysisService, analysisLogRepo)
	statsHandler := handlers.NewStatsHandler(statsRepo)
	exportHandler := handlers.NewExportHandler(expenseRepo, journalRepo)
	adminHandler := handlers.NewAdminHandler(adminRepo)
	healthHandler := handlers.NewHealthHandler(db)

	registerRoutes(
		e,
		userHandler,
		expenseHandler,
		budgetHandler,
		goalHandler,
		academicHandler,
		journalHandler,
		analysisHandler,
		statsHandler,
		exportHandler,
		adminHandler,
		healthHandler,
		identity.Middleware(verifier, userRepo),
		handlers.AdminMiddleware(cfg.Admin.Emails),
		bootstrapRateLimiter(cfg.Auth),
		analysisRateLimiter(cfg.AI),
	)

	if cfg.IsDevelopment() {
		e.POST("/api/dev/token", userHandler.DevToken)
	}

	return e
}

// NewHTTPServer создает net/http сервер с заданными таймаутами.
func NewHTTPServer(cfg config.ServerConfig, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}
}

func requestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:      true,
		LogStatus:   true,
		LogMethod:   true,
		LogLatency:  true,
		LogRemoteIP: true,
		LogError:    true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.String("remote_ip", v.RemoteIP),
				slog.Duration("latency", v.Latency),
			}

			if v.Error != nil {
				attrs = append(attrs, slog.String("error", v.Error.Error()))
			}

			msg := "request completed"
			if v.Status >= http.StatusInternalServerError {
				logger.LogAttrs(c.Request().Context(), slog.LevelError, msg, attrs...)
				return nil
			}

			logger.LogAttrs(c.Request().Context(), slog.LevelInfo, msg, attrs...)
			return nil
		},
	})
}

func bootstrapRateLimiter(cfg config.AuthConfig) echo.MiddlewareFunc {
	limit := rate.Limit(float64(cfg.RateLimitPerMinute) / 60.0)
	store := middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
		Rate:      limit,
		Burst:     cfg.RateLimitBurst,
		ExpiresIn: time.Minute,
	})

	return middleware.RateLimiter(store)
}

func analysisRateLimiter(cfg config.AIConfig) echo.MiddlewareFunc {
	limit := rate.Limit(float64(cfg.RateLimitPerMinute) / 60.0)
	store := middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
		Rate:      limit,
		Burst:     cfg.RateLimitBurst,
		ExpiresIn: time.Minute,
	})

	return middleware.RateLimiter(store)
}
