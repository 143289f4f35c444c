package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/turbogestor/backend/internal/dto"
	"github.com/turbogestor/backend/internal/mailer"
)

// EmailHandler exposes the transactional sends so the frontend and
// internal jobs can trigger them directly.
type EmailHandler struct {
	mailer *mailer.Client
}

func NewEmailHandler(m *mailer.Client) *EmailHandler {
	return &EmailHandler{mailer: m}
}

func (h *EmailHandler) SendWelcome(c *fiber.Ctx) error {
	var req dto.WelcomeEmailRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.Email == "" || req.Nome == "" {
		return badRequest(c, "email e nome são obrigatórios")
	}

	return h.respond(c, h.mailer.SendWelcome(req.Email, req.Nome))
}

func (h *EmailHandler) SendTrialExpiring(c *fiber.Ctx) error {
	var req dto.TrialExpiringEmailRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.Email == "" || req.Nome == "" {
		return badRequest(c, "email e nome são obrigatórios")
	}
	if req.DiasRestantes < 0 {
		return badRequest(c, "diasRestantes inválido")
	}

	return h.respond(c, h.mailer.SendTrialExpiring(req.Email, req.Nome, req.DiasRestantes))
}

func (h *EmailHandler) SendTrialExpired(c *fiber.Ctx) error {
	var req dto.TrialExpiredEmailRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.Email == "" || req.Nome == "" {
		return badRequest(c, "email e nome são obrigatórios")
	}

	return h.respond(c, h.mailer.SendTrialExpired(req.Email, req.Nome))
}

func (h *EmailHandler) SendPaymentConfirmation(c *fiber.Ctx) error {
	var req dto.PaymentConfirmationEmailRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.Email == "" || req.Nome == "" || req.Plano == "" {
		return badRequest(c, "email, nome e plano são obrigatórios")
	}

	return h.respond(c, h.mailer.SendPaymentConfirmation(
		req.Email, req.Nome, req.Plano, req.Valor, req.DataPagamento, req.ProximaCobranca,
	))
}

func (h *EmailHandler) respond(c *fiber.Ctx, err error) error {
	if errors.Is(err, mailer.ErrNotConfigured) {
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
			Error: true, Message: "Email service not configured",
		})
	}
	if err != nil {
		slog.Error("transactional email failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to send email",
		})
	}
	return c.JSON(fiber.Map{"success": true})
}
