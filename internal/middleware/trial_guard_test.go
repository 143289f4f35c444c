package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/turbogestor/backend/internal/models"
)

type stubLookup struct {
	workshops map[uuid.UUID]*models.Workshop
}

func (s *stubLookup) GetWorkshop(id uuid.UUID) (*models.Workshop, error) {
	if w, ok := s.workshops[id]; ok {
		return w, nil
	}
	return nil, fmt.Errorf("workshop %s not found", id)
}

// injectToken mimics the JWT middleware by placing a parsed token in the
// request context.
func injectToken(oficinaID uuid.UUID) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals("user", &jwt.Token{Claims: jwt.MapClaims{"sub": oficinaID.String()}})
		return c.Next()
	}
}

func guardApp(oficinaID uuid.UUID, lookup WorkshopLookup) *fiber.App {
	app := fiber.New()
	app.Use(injectToken(oficinaID))
	app.Use(TrialGuard(lookup))

	ok := func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) }
	app.Get("/api/clientes", ok)
	app.Post("/api/clientes", ok)
	app.Post("/api/billing/checkout", ok)
	app.Post("/api/auth/logout", ok)
	return app
}

func expiredWorkshop(id uuid.UUID) *models.Workshop {
	endsAt := time.Now().Add(-24 * time.Hour)
	return &models.Workshop{ID: id, Plano: "basico", TrialEndsAt: &endsAt}
}

func TestTrialGuardBlocksWritesAfterExpiry(t *testing.T) {
	id := uuid.New()
	app := guardApp(id, &stubLookup{workshops: map[uuid.UUID]*models.Workshop{id: expiredWorkshop(id)}})

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/api/clientes", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestTrialGuardAllowsReadsAfterExpiry(t *testing.T) {
	id := uuid.New()
	app := guardApp(id, &stubLookup{workshops: map[uuid.UUID]*models.Workshop{id: expiredWorkshop(id)}})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/clientes", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestTrialGuardKeepsUpgradePathOpen(t *testing.T) {
	id := uuid.New()
	app := guardApp(id, &stubLookup{workshops: map[uuid.UUID]*models.Workshop{id: expiredWorkshop(id)}})

	for _, path := range []string{"/api/billing/checkout", "/api/auth/logout"} {
		resp, err := app.Test(httptest.NewRequest(http.MethodPost, path, nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode, path)
	}
}

func TestTrialGuardAllowsActiveTrial(t *testing.T) {
	id := uuid.New()
	endsAt := time.Now().Add(72 * time.Hour)
	w := &models.Workshop{ID: id, Plano: "basico", TrialEndsAt: &endsAt}
	app := guardApp(id, &stubLookup{workshops: map[uuid.UUID]*models.Workshop{id: w}})

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/api/clientes", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestTrialGuardAllowsSubscribers(t *testing.T) {
	id := uuid.New()
	endsAt := time.Now().Add(-24 * time.Hour)
	sub := "sub_123"
	w := &models.Workshop{ID: id, Plano: "profissional", TrialEndsAt: &endsAt, StripeSubscriptionID: &sub}
	app := guardApp(id, &stubLookup{workshops: map[uuid.UUID]*models.Workshop{id: w}})

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/api/clientes", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
