package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/turbogestor/backend/internal/billing"
	"github.com/turbogestor/backend/internal/models"
)

func cronApp(secret string) *fiber.App {
	store := &stubStore{workshops: map[uuid.UUID]*models.Workshop{}}
	sweeper := billing.NewSweeper(store, stubMailer{})
	handler := NewCronHandler(sweeper, secret)

	app := fiber.New()
	app.Post("/api/cron/check-trials", handler.CheckTrials)
	return app
}

func TestCronRejectsMissingToken(t *testing.T) {
	app := cronApp("s3cret")

	req := httptest.NewRequest(http.MethodPost, "/api/cron/check-trials", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestCronRejectsWrongToken(t *testing.T) {
	app := cronApp("s3cret")

	req := httptest.NewRequest(http.MethodPost, "/api/cron/check-trials", nil)
	req.Header.Set("Authorization", "Bearer wrong")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestCronRunsSweepWithValidToken(t *testing.T) {
	app := cronApp("s3cret")

	req := httptest.NewRequest(http.MethodPost, "/api/cron/check-trials", nil)
	req.Header.Set("Authorization", "Bearer s3cret")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var summary billing.SweepSummary
	require.NoError(t, json.Unmarshal(body, &summary))
	assert.True(t, summary.Success)
	assert.Zero(t, summary.EmailsEnviados)
}

func TestCronUnconfiguredSecretFails(t *testing.T) {
	app := cronApp("")

	req := httptest.NewRequest(http.MethodPost, "/api/cron/check-trials", nil)
	req.Header.Set("Authorization", "Bearer anything")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}
