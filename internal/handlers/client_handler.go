package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/turbogestor/backend/internal/dto"
	"github.com/turbogestor/backend/internal/services"
	"github.com/turbogestor/backend/internal/tenant"
)

type ClientHandler struct {
	clientService *services.ClientService
}

func NewClientHandler(clientService *services.ClientService) *ClientHandler {
	return &ClientHandler{clientService: clientService}
}

func (h *ClientHandler) List(c *fiber.Ctx) error {
	oficinaID, err := tenant.GetUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	resp, err := h.clientService.List(oficinaID, c.QueryInt("page", 1), c.QueryInt("limit", 20), c.Query("search"))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(resp)
}

func (h *ClientHandler) Get(c *fiber.Ctx) error {
	oficinaID, err := tenant.GetUserID(c)
	if err != nil {
		return unauthorized(c)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid id")
	}

	client, err := h.clientService.Get(oficinaID, id)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(client)
}

func (h *ClientHandler) Create(c *fiber.Ctx) error {
	oficinaID, err := tenant.GetUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.ClientRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	client, err := h.clientService.Create(oficinaID, &req)
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(client)
}

func (h *ClientHandler) Update(c *fiber.Ctx) error {
	oficinaID, err := tenant.GetUserID(c)
	if err != nil {
		return unauthorized(c)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid id")
	}

	var req dto.ClientRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	client, err := h.clientService.Update(oficinaID, id, &req)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(client)
}

func (h *ClientHandler) Delete(c *fiber.Ctx) error {
	oficinaID, err := tenant.GetUserID(c)
	if err != nil {
		return unauthorized(c)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid id")
	}

	if err := h.clientService.Delete(oficinaID, id); err != nil {
		return serviceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
