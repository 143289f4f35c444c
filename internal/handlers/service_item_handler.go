package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/turbogestor/backend/internal/dto"
	"github.com/turbogestor/backend/internal/services"
	"github.com/turbogestor/backend/internal/tenant"
)

type ServiceItemHandler struct {
	serviceItemService *services.ServiceItemService
}

func NewServiceItemHandler(serviceItemService *services.ServiceItemService) *ServiceItemHandler {
	return &ServiceItemHandler{serviceItemService: serviceItemService}
}

func (h *ServiceItemHandler) List(c *fiber.Ctx) error {
	oficinaID, err := tenant.GetUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	resp, err := h.serviceItemService.List(oficinaID, c.QueryInt("page", 1), c.QueryInt("limit", 20), c.Query("search"))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(resp)
}

func (h *ServiceItemHandler) Get(c *fiber.Ctx) error {
	oficinaID, err := tenant.GetUserID(c)
	if err != nil {
		return unauthorized(c)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid id")
	}

	item, err := h.serviceItemService.Get(oficinaID, id)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(item)
}

func (h *ServiceItemHandler) Create(c *fiber.Ctx) error {
	oficinaID, err := tenant.GetUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.ServiceItemRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	item, err := h.serviceItemService.Create(oficinaID, &req)
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

func (h *ServiceItemHandler) Update(c *fiber.Ctx) error {
	oficinaID, err := tenant.GetUserID(c)
	if err != nil {
		return unauthorized(c)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid id")
	}

	var req dto.ServiceItemRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	item, err := h.serviceItemService.Update(oficinaID, id, &req)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(item)
}

func (h *ServiceItemHandler) Delete(c *fiber.Ctx) error {
	oficinaID, err := tenant.GetUserID(c)
	if err != nil {
		return unauthorized(c)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid id")
	}

	if err := h.serviceItemService.Delete(oficinaID, id); err != nil {
		return serviceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
