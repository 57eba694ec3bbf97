package api

import (
	"taxpal/internal/api/handlers"
	"taxpal/internal/ws"
	"taxpal/pkg/auth"
	"taxpal/pkg/config"
	"taxpal/pkg/middleware"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

func SetupRouter(
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	txHandler *handlers.TransactionHandler,
	budgetHandler *handlers.BudgetHandler,
	taxHandler *handlers.TaxHandler,
	reportHandler *handlers.ReportHandler,
	dashboardHandler *handlers.DashboardHandler,
	settingsHandler *handlers.SettingsHandler,
	hub *ws.Hub,
	jwtManager *auth.JWTManager,
	appLogger *zap.Logger,
) *fiber.App {
	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	// Middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.FrontendOrigin,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin,Content-Type,Accept,Authorization",
		AllowCredentials: true,
	}))
	app.Use(logger.New())

	// Generated report files are served directly.
	app.Static(cfg.Reports.PublicPath, cfg.Reports.Dir)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Taxpal backend is running")
	})

	app.Get("/api/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Websocket fan-out for report lifecycle events.
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws", hub.Handler())

	api := app.Group("/api")
	protected := middleware.AuthMiddleware(jwtManager, appLogger)

	// Auth routes
	users := api.Group("/users")
	users.Post("/signup", authHandler.Signup)
	users.Post("/login", authHandler.Login)
	users.Post("/forgot-password", authHandler.ForgotPassword)
	users.Post("/verify-otp", authHandler.VerifyOTP)
	users.Post("/reset-password", authHandler.ResetPassword)
	users.Get("/me", protected, authHandler.GetMe)

	// Transactions
	transactions := api.Group("/transactions", protected)
	transactions.Get("", txHandler.ListTransactions)
	transactions.Post("", txHandler.CreateTransaction)
	transactions.Put("/:id", txHandler.UpdateTransaction)
	transactions.Delete("/:id", txHandler.DeleteTransaction)

	// Budgets
	budgets := api.Group("/budgets", protected)
	budgets.Get("", budgetHandler.ListBudgets)
	budgets.Post("", budgetHandler.CreateBudget)
	budgets.Put("/:id", budgetHandler.UpdateBudget)
	budgets.Delete("/:id", budgetHandler.DeleteBudget)

	// Tax tools
	tax := api.Group("/tax")
	tax.Get("/countries", taxHandler.ListCountries)
	tax.Get("/states/:countryCode", taxHandler.ListStates)
	tax.Post("/calculate", taxHandler.CalculateTax)
	tax.Get("/history", taxHandler.TaxHistory)
	tax.Get("/calendar", taxHandler.TaxCalendar)

	// Reports
	reports := api.Group("/reports")
	reports.Get("", reportHandler.ListReports)
	reports.Post("/generate", reportHandler.GenerateReport)
	reports.Get("/:id/preview", reportHandler.PreviewReport)
	reports.Delete("/:id", reportHandler.DeleteReport)

	// Dashboard and settings
	api.Get("/dashboard", protected, dashboardHandler.GetDashboard)

	settings := api.Group("/settings", protected)
	settings.Get("", settingsHandler.GetSettings)
	settings.Put("", settingsHandler.UpdateSettings)

	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Route not found"})
	})

	return app
}
