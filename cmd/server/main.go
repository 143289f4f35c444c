package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentryfiber "github.com/getsentry/sentry-go/fiber"
	"github.com/stripe/stripe-go/v82"

	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/turbogestor/backend/internal/billing"
	"github.com/turbogestor/backend/internal/config"
	"github.com/turbogestor/backend/internal/database"
	"github.com/turbogestor/backend/internal/handlers"
	"github.com/turbogestor/backend/internal/logging"
	"github.com/turbogestor/backend/internal/mailer"
	"github.com/turbogestor/backend/internal/middleware"
	"github.com/turbogestor/backend/internal/routes"
	"github.com/turbogestor/backend/internal/services"
)

func main() {
	// Structured logging (JSON to stdout)
	logging.Setup()

	cfg := config.Load()

	if cfg.JWTSecret == "" {
		slog.Error("JWT_SECRET environment variable is required")
		os.Exit(1)
	}
	if cfg.DBPassword == "" {
		slog.Error("DB_PASSWORD environment variable is required")
		os.Exit(1)
	}
	if cfg.StripeWebhookSecret == "" {
		slog.Warn("STRIPE_WEBHOOK_SECRET not set; Stripe webhooks will be rejected")
	}

	stripe.Key = cfg.StripeSecretKey

	// Database
	if err := database.Connect(cfg); err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	if err := database.Migrate(); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}

	// PostgreSQL log handler (ERROR+ async batch)
	pgLogHandler := logging.NewPGHandler(database.DB)
	slog.SetDefault(slog.New(logging.NewMultiHandler(
		slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		pgLogHandler,
	)))

	// Log cleanup (30-day retention)
	cleanupDone := make(chan struct{})
	logging.StartCleanup(database.DB, cleanupDone)

	// Mailer
	mailClient := mailer.NewClient(cfg.ResendAPIKey, cfg.EmailFrom)

	// Services
	workshopService := services.NewWorkshopService(database.DB)
	authService := services.NewAuthService(database.DB, cfg, mailClient)
	clientService := services.NewClientService(database.DB)
	vehicleService := services.NewVehicleService(database.DB)
	serviceItemService := services.NewServiceItemService(database.DB)
	productService := services.NewProductService(database.DB)
	appointmentService := services.NewAppointmentService(database.DB)
	invoiceService := services.NewInvoiceService(database.DB)
	dashboardService := services.NewDashboardService(database.DB, workshopService)

	// Billing
	reconciler := billing.NewReconciler(workshopService, mailClient)
	sweeper := billing.NewSweeper(workshopService, mailClient)
	checkoutService := billing.NewCheckoutService(cfg.AppURL)

	h := &routes.Handlers{
		Auth:        handlers.NewAuthHandler(authService),
		Health:      handlers.NewHealthHandler(),
		Workshop:    handlers.NewWorkshopHandler(workshopService),
		Client:      handlers.NewClientHandler(clientService),
		Vehicle:     handlers.NewVehicleHandler(vehicleService),
		ServiceItem: handlers.NewServiceItemHandler(serviceItemService),
		Product:     handlers.NewProductHandler(productService),
		Appointment: handlers.NewAppointmentHandler(appointmentService),
		Invoice:     handlers.NewInvoiceHandler(invoiceService),
		Dashboard:   handlers.NewDashboardHandler(dashboardService),
		Billing:     handlers.NewBillingHandler(checkoutService, workshopService),
		Webhook:     handlers.NewStripeWebhookHandler(reconciler, cfg.StripeWebhookSecret),
		Cron:        handlers.NewCronHandler(sweeper, cfg.CronSecret),
		Email:       handlers.NewEmailHandler(mailClient),
	}

	// Sentry error tracking
	if dsn := os.Getenv("SENTRY_DSN"); dsn != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              dsn,
			EnableTracing:    true,
			TracesSampleRate: 0.2,
			Environment:      os.Getenv("APP_ENV"),
		}); err != nil {
			slog.Error("sentry init failed", "error", err)
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	// Fiber app
	app := fiber.New(fiber.Config{
		BodyLimit:    4 * 1024 * 1024,
		ErrorHandler: customErrorHandler,
	})

	// Sentry middleware
	app.Use(sentryfiber.New(sentryfiber.Options{
		Repanic:         true,
		WaitForDelivery: false,
	}))

	// Global middleware
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "${time} | ${status} | ${latency} | ${ip} | ${method} | ${path}\n",
	}))
	app.Use(middleware.CORS(cfg))
	app.Use(func(c *fiber.Ctx) error {
		c.Set("X-Content-Type-Options", "nosniff")
		c.Set("X-Frame-Options", "DENY")
		c.Set("X-XSS-Protection", "1; mode=block")
		return c.Next()
	})

	// Routes
	routes.Setup(app, cfg, h, workshopService)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "port", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	<-quit
	slog.Info("shutting down server...")

	close(cleanupDone)
	pgLogHandler.Stop()
	sentry.Flush(2 * time.Second)

	if err := app.Shutdown(); err != nil {
		slog.Error("server shutdown error", "error", err)
	}

	// Close database connections
	if sqlDB, err := database.DB.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			slog.Error("database close error", "error", err)
		}
	}

	slog.Info("server stopped")
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error"
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	// Only expose error details for client errors (4xx), not server errors (5xx)
	if code >= 500 {
		slog.Error("unhandled server error", "method", c.Method(), "path", c.Path(), "error", err.Error())
		message = "Internal server error"
	}

	return c.Status(code).JSON(fiber.Map{
		"error":   true,
		"message": message,
	})
}
