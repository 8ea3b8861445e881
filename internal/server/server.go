// Package server assembles the HTTP surface: it wires repositories, services
// and handlers together and owns the Echo instance lifecycle.
package server

import (
	"context"
	"fmt"
	"log/slog"

	"homeledger/internal/config"
	"homeledger/internal/handlers"
	"homeledger/internal/market"
	"homeledger/internal/middleware"
	"homeledger/internal/repositories"
	"homeledger/internal/services"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

// Server holds the Echo instance and its configuration
type Server struct {
	echo   *echo.Echo
	config *config.Config
}

// New builds a fully wired server from the configuration and an open
// database connection
func New(cfg *config.Config, db *gorm.DB) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler
	e.Validator = handlers.NewValidator()

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(middleware.RateLimiterWithConfig(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitBurst))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
	}))

	registerRoutes(e, cfg, db)

	return &Server{
		echo:   e,
		config: cfg,
	}
}

// Start begins serving on the configured address and blocks until the
// listener stops
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%s", s.config.Server.Host, s.config.Server.Port)
	slog.Info("HTTP server starting", "addr", addr, "environment", s.config.Server.Environment)
	return s.echo.Start(addr)
}

// Shutdown gracefully stops the server, waiting for in-flight requests
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

// Echo exposes the underlying Echo instance for tests
func (s *Server) Echo() *echo.Echo {
	return s.echo
}

func registerRoutes(e *echo.Echo, cfg *config.Config, db *gorm.DB) {
	// Repositories
	transactionRepo := repositories.NewTransactionRepository(db)
	investmentRepo := repositories.NewInvestmentRepository(db)
	goalRepo := repositories.NewGoalRepository(db)

	// Market data and services
	quoteStore := market.NewStaticQuoteStore()
	if cfg.Market.SeedQuotes {
		market.SeedDefaultQuotes(quoteStore)
	}

	metrics := services.NewPrometheusMetrics()
	recurrenceService := services.NewRecurrenceService()
	cashflowService := services.NewCashflowService(recurrenceService, metrics)
	valuationService := services.NewValuationService(quoteStore, metrics)
	wealthService := services.NewWealthService(cashflowService, valuationService)
	goalService := services.NewGoalService(goalRepo)

	// Handlers
	healthHandler := handlers.NewHealthCheckHandler(db)
	transactionHandler := handlers.NewTransactionHandler(transactionRepo, recurrenceService)
	investmentHandler := handlers.NewInvestmentHandler(investmentRepo, valuationService)
	goalHandler := handlers.NewGoalHandler(goalService)
	dashboardHandler := handlers.NewDashboardHandler(transactionRepo, investmentRepo, cashflowService, wealthService)
	marketHandler := handlers.NewMarketHandler(quoteStore)

	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1")

	// Transactions
	api.POST("/transactions", transactionHandler.CreateTransaction)
	api.GET("/transactions/:id", transactionHandler.GetTransaction)
	api.PUT("/transactions/:id", transactionHandler.UpdateTransaction)
	api.DELETE("/transactions/:id", transactionHandler.DeleteTransaction)
	api.GET("/users/:userId/transactions", transactionHandler.ListTransactions)

	// Investments
	api.POST("/investments", investmentHandler.CreateInvestment)
	api.GET("/investments/:id", investmentHandler.GetInvestment)
	api.PUT("/investments/:id", investmentHandler.UpdateInvestment)
	api.DELETE("/investments/:id", investmentHandler.DeleteInvestment)
	api.POST("/investments/:id/lots", investmentHandler.AddLot)
	api.GET("/investments/:id/valuation", investmentHandler.GetValuation)
	api.GET("/users/:userId/investments", investmentHandler.ListInvestments)
	api.GET("/users/:userId/portfolio", investmentHandler.GetPortfolio)

	// Goals
	api.POST("/goals", goalHandler.CreateGoal)
	api.GET("/goals/:id", goalHandler.GetGoal)
	api.POST("/goals/:id/contributions", goalHandler.Contribute)
	api.GET("/goals/:id/plan", goalHandler.GetPlan)
	api.PUT("/goals/:id/complete", goalHandler.Complete)
	api.GET("/users/:userId/goals", goalHandler.ListGoals)

	// Dashboard
	api.GET("/users/:userId/dashboard/cashflow", dashboardHandler.GetCashflowSummary)
	api.GET("/users/:userId/dashboard/monthly", dashboardHandler.GetMonthlyBreakdown)
	api.GET("/users/:userId/dashboard/wealth", dashboardHandler.GetWealthSummary)
	api.GET("/users/:userId/dashboard/savings-rate", dashboardHandler.GetSavingsRate)

	// Market quotes
	api.PUT("/market/quotes", marketHandler.UpsertQuote)
	api.GET("/market/quotes", marketHandler.ListQuotes)
	api.GET("/market/quotes/:symbol", marketHandler.GetQuote)
	api.DELETE("/market/quotes/:symbol", marketHandler.RemoveQuote)
}
