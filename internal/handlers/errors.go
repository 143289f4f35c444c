package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/turbogestor/backend/internal/dto"
	"github.com/turbogestor/backend/internal/services"
)

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Error: true, Message: message,
	})
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
		Error: true, Message: "Unauthorized",
	})
}

// serviceError maps the service layer's sentinel errors onto HTTP
// statuses. Limit denials carry the full check result so the client can
// render usage against the cap.
func serviceError(c *fiber.Ctx, err error) error {
	var (
		limitErr *services.LimitError
		valErr   *services.ValidationError
	)
	switch {
	case errors.As(err, &valErr):
		return badRequest(c, valErr.Error())
	case errors.As(err, &limitErr):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error":   true,
			"message": limitErr.Result.Message,
			"limit":   limitErr.Result.Limit,
			"current": limitErr.Result.Current,
		})
	case errors.Is(err, services.ErrTrialExpired):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error":       true,
			"message":     err.Error(),
			"upgrade_url": "/dashboard/planos",
		})
	case errors.Is(err, services.ErrRecordNotFound),
		errors.Is(err, services.ErrWorkshopNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	case errors.Is(err, services.ErrLayoutNotAllowed):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	case errors.Is(err, services.ErrInvalidStatus):
		return badRequest(c, err.Error())
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}
}
