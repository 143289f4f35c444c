package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/turbogestor/backend/internal/config"
	"github.com/turbogestor/backend/internal/handlers"
	"github.com/turbogestor/backend/internal/middleware"
)

type Handlers struct {
	Auth        *handlers.AuthHandler
	Health      *handlers.HealthHandler
	Workshop    *handlers.WorkshopHandler
	Client      *handlers.ClientHandler
	Vehicle     *handlers.VehicleHandler
	ServiceItem *handlers.ServiceItemHandler
	Product     *handlers.ProductHandler
	Appointment *handlers.AppointmentHandler
	Invoice     *handlers.InvoiceHandler
	Dashboard   *handlers.DashboardHandler
	Billing     *handlers.BillingHandler
	Webhook     *handlers.StripeWebhookHandler
	Cron        *handlers.CronHandler
	Email       *handlers.EmailHandler
}

func Setup(app *fiber.App, cfg *config.Config, h *Handlers, guard middleware.WorkshopLookup) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", h.Health.Check)

	// Auth — public, with a stricter limit: 10 req/min per IP
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", h.Auth.Register)
	auth.Post("/login", h.Auth.Login)
	auth.Post("/refresh", h.Auth.Refresh)

	api.Post("/auth/logout", middleware.JWTProtected(cfg), h.Auth.Logout)

	// Stripe webhooks authenticate by signature, not JWT.
	api.Post("/webhooks/stripe", h.Webhook.Handle)

	// Scheduler endpoint, bearer-secret auth.
	api.Post("/cron/check-trials", h.Cron.CheckTrials)

	// Everything below requires a logged-in workshop. The trial guard
	// rejects writes once an unpaid trial ran out.
	protected := api.Group("", middleware.JWTProtected(cfg), middleware.TrialGuard(guard))

	protected.Get("/oficina", h.Workshop.Get)
	protected.Put("/oficina", h.Workshop.Update)
	protected.Put("/oficina/layout", h.Workshop.SetLayout)
	protected.Get("/oficina/plano", h.Workshop.PlanStatus)
	protected.Get("/oficina/limites/:resource", h.Workshop.CheckLimit)

	protected.Get("/dashboard", h.Dashboard.Summary)

	clientes := protected.Group("/clientes")
	clientes.Get("/", h.Client.List)
	clientes.Post("/", h.Client.Create)
	clientes.Get("/:id", h.Client.Get)
	clientes.Put("/:id", h.Client.Update)
	clientes.Delete("/:id", h.Client.Delete)

	veiculos := protected.Group("/veiculos")
	veiculos.Get("/", h.Vehicle.List)
	veiculos.Post("/", h.Vehicle.Create)
	veiculos.Get("/:id", h.Vehicle.Get)
	veiculos.Put("/:id", h.Vehicle.Update)
	veiculos.Delete("/:id", h.Vehicle.Delete)

	servicos := protected.Group("/servicos")
	servicos.Get("/", h.ServiceItem.List)
	servicos.Post("/", h.ServiceItem.Create)
	servicos.Get("/:id", h.ServiceItem.Get)
	servicos.Put("/:id", h.ServiceItem.Update)
	servicos.Delete("/:id", h.ServiceItem.Delete)

	produtos := protected.Group("/produtos")
	produtos.Get("/", h.Product.List)
	produtos.Post("/", h.Product.Create)
	produtos.Get("/:id", h.Product.Get)
	produtos.Put("/:id", h.Product.Update)
	produtos.Patch("/:id/estoque", h.Product.AdjustStock)
	produtos.Delete("/:id", h.Product.Delete)

	agendamentos := protected.Group("/agendamentos")
	agendamentos.Get("/", h.Appointment.List)
	agendamentos.Post("/", h.Appointment.Create)
	agendamentos.Get("/:id", h.Appointment.Get)
	agendamentos.Put("/:id", h.Appointment.Update)
	agendamentos.Delete("/:id", h.Appointment.Delete)

	faturas := protected.Group("/faturas")
	faturas.Get("/", h.Invoice.List)
	faturas.Post("/", h.Invoice.Create)
	faturas.Get("/:id", h.Invoice.Get)
	faturas.Put("/:id", h.Invoice.Update)
	faturas.Delete("/:id", h.Invoice.Delete)

	// Billing is reachable even after trial expiry; the guard skips it.
	billing := protected.Group("/billing")
	billing.Post("/checkout", h.Billing.CreateCheckout)

	// Transactional email triggers for the frontend notification flows.
	emails := protected.Group("/emails")
	emails.Post("/boas-vindas", h.Email.SendWelcome)
	emails.Post("/trial-expirando", h.Email.SendTrialExpiring)
	emails.Post("/trial-expirado", h.Email.SendTrialExpired)
	emails.Post("/pagamento-confirmado", h.Email.SendPaymentConfirmation)
}
