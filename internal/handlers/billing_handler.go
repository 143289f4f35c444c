package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/turbogestor/backend/internal/billing"
	"github.com/turbogestor/backend/internal/dto"
	"github.com/turbogestor/backend/internal/services"
	"github.com/turbogestor/backend/internal/tenant"
)

type BillingHandler struct {
	checkoutService *billing.CheckoutService
	workshopService *services.WorkshopService
}

func NewBillingHandler(checkoutService *billing.CheckoutService, workshopService *services.WorkshopService) *BillingHandler {
	return &BillingHandler{checkoutService: checkoutService, workshopService: workshopService}
}

// CreateCheckout starts a Stripe checkout session for a plan upgrade.
func (h *BillingHandler) CreateCheckout(c *fiber.Ctx) error {
	oficinaID, err := tenant.GetUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.CheckoutRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.Plano == "" {
		return badRequest(c, "plano é obrigatório")
	}

	w, err := h.workshopService.GetWorkshop(oficinaID)
	if err != nil {
		return serviceError(c, err)
	}

	sess, err := h.checkoutService.CreateSession(w, req.Plano)
	if err != nil {
		if errors.Is(err, billing.ErrBusinessContato) {
			return badRequest(c, "Plano Business requer contato comercial")
		}
		if errors.Is(err, billing.ErrPlanoInvalido) {
			return badRequest(c, "Plano inválido")
		}
		slog.Error("checkout session failed", "oficina_id", oficinaID.String(), "plano", req.Plano, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to create checkout session",
		})
	}

	return c.JSON(dto.CheckoutResponse{SessionID: sess.ID, URL: sess.URL})
}
