package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/turbogestor/backend/internal/dto"
	"github.com/turbogestor/backend/internal/services"
	"github.com/turbogestor/backend/internal/tenant"
)

type InvoiceHandler struct {
	invoiceService *services.InvoiceService
}

func NewInvoiceHandler(invoiceService *services.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: invoiceService}
}

func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	oficinaID, err := tenant.GetUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	resp, err := h.invoiceService.List(oficinaID, c.QueryInt("page", 1), c.QueryInt("limit", 20), c.Query("status"))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(resp)
}

func (h *InvoiceHandler) Get(c *fiber.Ctx) error {
	oficinaID, err := tenant.GetUserID(c)
	if err != nil {
		return unauthorized(c)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid id")
	}

	invoice, err := h.invoiceService.Get(oficinaID, id)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(invoice)
}

func (h *InvoiceHandler) Create(c *fiber.Ctx) error {
	oficinaID, err := tenant.GetUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.InvoiceRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	invoice, err := h.invoiceService.Create(oficinaID, &req)
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(invoice)
}

func (h *InvoiceHandler) Update(c *fiber.Ctx) error {
	oficinaID, err := tenant.GetUserID(c)
	if err != nil {
		return unauthorized(c)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid id")
	}

	var req dto.InvoiceRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	invoice, err := h.invoiceService.Update(oficinaID, id, &req)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(invoice)
}

func (h *InvoiceHandler) Delete(c *fiber.Ctx) error {
	oficinaID, err := tenant.GetUserID(c)
	if err != nil {
		return unauthorized(c)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid id")
	}

	if err := h.invoiceService.Delete(oficinaID, id); err != nil {
		return serviceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
