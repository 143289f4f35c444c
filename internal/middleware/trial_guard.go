package middleware

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/turbogestor/backend/internal/models"
	"github.com/turbogestor/backend/internal/plan"
	"github.com/turbogestor/backend/internal/tenant"
)

// WorkshopLookup is the slice of the workshop service the guard needs.
type WorkshopLookup interface {
	GetWorkshop(id uuid.UUID) (*models.Workshop, error)
}

// Writes that stay open after trial expiry so the user can pay or leave.
var trialGuardSkipPrefixes = []string{
	"/api/billing/",
	"/api/emails/",
	"/api/auth/logout",
}

// TrialGuard blocks write requests once an unpaid trial has run out.
// Reads stay open so existing data remains visible next to the upgrade
// prompt.
func TrialGuard(lookup WorkshopLookup) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Method() == fiber.MethodGet {
			return c.Next()
		}
		for _, prefix := range trialGuardSkipPrefixes {
			if strings.HasPrefix(c.Path(), prefix) {
				return c.Next()
			}
		}

		oficinaID, err := tenant.GetUserID(c)
		if err != nil {
			return c.Next()
		}

		w, err := lookup.GetWorkshop(oficinaID)
		if err != nil {
			// Fail open; the service layer enforces its own checks.
			return c.Next()
		}

		state := plan.ResolveState(w.TrialEndsAt, w.StripeSubscriptionID, time.Now())
		if state.Kind == plan.TrialExpired {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error":       true,
				"message":     "Seu período de teste expirou. Escolha um plano para continuar.",
				"upgrade_url": "/dashboard/planos",
			})
		}

		return c.Next()
	}
}
