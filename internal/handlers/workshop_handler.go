package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/turbogestor/backend/internal/dto"
	"github.com/turbogestor/backend/internal/plan"
	"github.com/turbogestor/backend/internal/services"
	"github.com/turbogestor/backend/internal/tenant"
)

type WorkshopHandler struct {
	workshopService *services.WorkshopService
}

func NewWorkshopHandler(workshopService *services.WorkshopService) *WorkshopHandler {
	return &WorkshopHandler{workshopService: workshopService}
}

func (h *WorkshopHandler) Get(c *fiber.Ctx) error {
	oficinaID, err := tenant.GetUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	w, err := h.workshopService.GetWorkshop(oficinaID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(w)
}

func (h *WorkshopHandler) Update(c *fiber.Ctx) error {
	oficinaID, err := tenant.GetUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.UpdateWorkshopRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	w, err := h.workshopService.UpdateProfile(oficinaID, &req)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(w)
}

func (h *WorkshopHandler) SetLayout(c *fiber.Ctx) error {
	oficinaID, err := tenant.GetUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.LayoutRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.Layout == "" {
		return badRequest(c, "layout is required")
	}

	if err := h.workshopService.SetLayout(oficinaID, req.Layout); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"layout": req.Layout})
}

// PlanStatus reports the resolved plan standing and per-resource usage.
func (h *WorkshopHandler) PlanStatus(c *fiber.Ctx) error {
	oficinaID, err := tenant.GetUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	status, err := h.workshopService.PlanStatus(oficinaID, time.Now())
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(status)
}

// CheckLimit answers whether one more unit of :resource fits in the plan.
// The UI calls this before opening create forms.
func (h *WorkshopHandler) CheckLimit(c *fiber.Ctx) error {
	oficinaID, err := tenant.GetUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	resource := c.Params("resource")
	w, err := h.workshopService.GetWorkshop(oficinaID)
	if err != nil {
		return serviceError(c, err)
	}

	current := 0
	switch resource {
	case "clientes":
		current = w.TotalClientes
	case "veiculos":
		current = w.TotalVeiculos
	case "produtos":
		current = w.TotalProdutos
	case "servicos":
		current = w.TotalServicos
	case "usuarios":
		// Accounts are single-user today; the owner is the one seat.
		current = 1
	case "layouts", "multiFilial", "api":
		// boolean features take no count
	default:
		return badRequest(c, "recurso desconhecido: "+resource)
	}

	res := plan.CheckLimit(w.Plano, resource, current)
	return c.JSON(dto.LimitCheckFromResult(res))
}
