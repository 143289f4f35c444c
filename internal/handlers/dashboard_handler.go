package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/turbogestor/backend/internal/services"
	"github.com/turbogestor/backend/internal/tenant"
)

type DashboardHandler struct {
	dashboardService *services.DashboardService
}

func NewDashboardHandler(dashboardService *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	oficinaID, err := tenant.GetUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	summary, err := h.dashboardService.Summary(oficinaID, time.Now())
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(summary)
}
