package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/turbogestor/backend/internal/dto"
	"github.com/turbogestor/backend/internal/services"
	"github.com/turbogestor/backend/internal/tenant"
)

type AppointmentHandler struct {
	appointmentService *services.AppointmentService
}

func NewAppointmentHandler(appointmentService *services.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{appointmentService: appointmentService}
}

func (h *AppointmentHandler) List(c *fiber.Ctx) error {
	oficinaID, err := tenant.GetUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var day *time.Time
	if raw := c.Query("data"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return badRequest(c, "Invalid data, expected YYYY-MM-DD")
		}
		day = &parsed
	}

	resp, err := h.appointmentService.List(oficinaID, c.QueryInt("page", 1), c.QueryInt("limit", 20), c.Query("status"), day)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(resp)
}

func (h *AppointmentHandler) Get(c *fiber.Ctx) error {
	oficinaID, err := tenant.GetUserID(c)
	if err != nil {
		return unauthorized(c)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid id")
	}

	appointment, err := h.appointmentService.Get(oficinaID, id)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(appointment)
}

func (h *AppointmentHandler) Create(c *fiber.Ctx) error {
	oficinaID, err := tenant.GetUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.AppointmentRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	appointment, err := h.appointmentService.Create(oficinaID, &req)
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(appointment)
}

func (h *AppointmentHandler) Update(c *fiber.Ctx) error {
	oficinaID, err := tenant.GetUserID(c)
	if err != nil {
		return unauthorized(c)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid id")
	}

	var req dto.AppointmentRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	appointment, err := h.appointmentService.Update(oficinaID, id, &req)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(appointment)
}

func (h *AppointmentHandler) Delete(c *fiber.Ctx) error {
	oficinaID, err := tenant.GetUserID(c)
	if err != nil {
		return unauthorized(c)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid id")
	}

	if err := h.appointmentService.Delete(oficinaID, id); err != nil {
		return serviceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
