package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"taxpal/internal/api"
	"taxpal/internal/api/handlers"
	"taxpal/internal/repository"
	"taxpal/internal/service"
	"taxpal/internal/ws"
	"taxpal/pkg/auth"
	"taxpal/pkg/config"
	"taxpal/pkg/logger"
	"taxpal/pkg/postgres"

	"go.uber.org/zap"
)

// @title Taxpal API
// @version 1.0
// @description Personal finance backend: transactions, budgets, tax tools and report generation.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:5000
// @BasePath /api

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize global logger
	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting Taxpal service")

	// Initialize database
	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db, appLogger)
	txRepo := repository.NewTransactionRepository(db, appLogger)
	budgetRepo := repository.NewBudgetRepository(db, appLogger)
	taxRepo := repository.NewTaxRepository(db, appLogger)
	reportRepo := repository.NewReportRepository(db, appLogger)
	settingsRepo := repository.NewSettingsRepository(db, appLogger)
	categoryRepo := repository.NewCategoryRepository(db, appLogger)

	// Initialize JWT manager
	jwtManager := auth.NewJWTManager(cfg.JWT.SecretKey, cfg.JWT.Expiration, cfg.JWT.RefreshExp)

	// Websocket hub for report lifecycle events
	hub := ws.NewHub(appLogger)

	// Initialize services
	mailer := service.NewMailer(cfg.SMTP, appLogger)
	authService := service.NewAuthService(userRepo, jwtManager, mailer, appLogger)
	budgetService := service.NewBudgetService(budgetRepo, txRepo, appLogger)
	txService := service.NewTransactionService(txRepo, budgetService, appLogger)
	taxService := service.NewTaxService(taxRepo, appLogger)
	reportService := service.NewReportService(reportRepo, txRepo, budgetRepo, hub, cfg.Reports.Dir, cfg.Reports.PublicPath, appLogger)
	dashboardService := service.NewDashboardService(txRepo, categoryRepo, appLogger)
	settingsService := service.NewSettingsService(settingsRepo, appLogger)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, appLogger)
	txHandler := handlers.NewTransactionHandler(txService, appLogger)
	budgetHandler := handlers.NewBudgetHandler(budgetService, appLogger)
	taxHandler := handlers.NewTaxHandler(taxService, appLogger)
	reportHandler := handlers.NewReportHandler(reportService, appLogger)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService, appLogger)
	settingsHandler := handlers.NewSettingsHandler(settingsService, appLogger)

	// Setup router
	app := api.SetupRouter(
		cfg,
		authHandler,
		txHandler,
		budgetHandler,
		taxHandler,
		reportHandler,
		dashboardHandler,
		settingsHandler,
		hub,
		jwtManager,
		appLogger,
	)

	// Start server
	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}
