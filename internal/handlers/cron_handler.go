package handlers

import (
	"crypto/subtle"
	"log/slog"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/turbogestor/backend/internal/billing"
	"github.com/turbogestor/backend/internal/dto"
)

type CronHandler struct {
	sweeper *billing.Sweeper
	secret  string
}

func NewCronHandler(sweeper *billing.Sweeper, secret string) *CronHandler {
	return &CronHandler{sweeper: sweeper, secret: secret}
}

// CheckTrials runs the trial notification sweep. Scheduler-only: callers
// authenticate with a bearer secret, not a user token.
func (h *CronHandler) CheckTrials(c *fiber.Ctx) error {
	if h.secret == "" {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Cron not configured",
		})
	}

	token := strings.TrimPrefix(c.Get("Authorization"), "Bearer ")
	if subtle.ConstantTimeCompare([]byte(token), []byte(h.secret)) != 1 {
		return unauthorized(c)
	}

	summary, err := h.sweeper.Run(time.Now())
	if err != nil {
		slog.Error("trial sweep failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Sweep failed",
		})
	}

	slog.Info("trial sweep completed",
		"emails_enviados", summary.EmailsEnviados,
		"trials_3_dias", summary.TrialsEm3Dias,
		"trials_1_dia", summary.TrialsEm1Dia,
		"trials_expirados", summary.TrialsExpirados,
	)
	return c.JSON(summary)
}
