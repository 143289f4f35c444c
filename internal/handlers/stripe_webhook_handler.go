package handlers

import (
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/stripe/stripe-go/v82/webhook"
	"github.com/turbogestor/backend/internal/billing"
	"github.com/turbogestor/backend/internal/dto"
)

type StripeWebhookHandler struct {
	reconciler *billing.Reconciler
	secret     string
}

func NewStripeWebhookHandler(reconciler *billing.Reconciler, secret string) *StripeWebhookHandler {
	return &StripeWebhookHandler{reconciler: reconciler, secret: secret}
}

// Handle verifies the Stripe signature and hands the event to the
// reconciler. Always returns 200 once the event was accepted so Stripe
// stops retrying.
func (h *StripeWebhookHandler) Handle(c *fiber.Ctx) error {
	if h.secret == "" {
		slog.Error("stripe webhook secret not configured")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Webhook not configured",
		})
	}

	sigHeader := c.Get("Stripe-Signature")
	if strings.TrimSpace(sigHeader) == "" {
		return badRequest(c, "Missing Stripe signature")
	}

	event, err := webhook.ConstructEventWithOptions(c.Body(), sigHeader, h.secret, webhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		return badRequest(c, "Invalid Stripe signature")
	}

	if err := h.reconciler.HandleEvent(&event); err != nil {
		slog.Error("stripe event processing failed", "event_type", string(event.Type), "event_id", event.ID, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to process event",
		})
	}

	slog.Info("stripe event processed", "event_type", string(event.Type), "event_id", event.ID)
	return c.JSON(fiber.Map{"received": true})
}
