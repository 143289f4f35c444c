package handlers

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	stripewebhook "github.com/stripe/stripe-go/v82/webhook"
	"github.com/turbogestor/backend/internal/billing"
	"github.com/turbogestor/backend/internal/models"
)

const testWebhookSecret = "whsec_test_123"

type stubStore struct {
	workshops map[uuid.UUID]*models.Workshop
	updates   []map[string]interface{}
}

func (s *stubStore) GetWorkshop(id uuid.UUID) (*models.Workshop, error) {
	if w, ok := s.workshops[id]; ok {
		return w, nil
	}
	return nil, fmt.Errorf("workshop %s not found", id)
}

func (s *stubStore) UpdateWorkshopFields(id uuid.UUID, fields map[string]interface{}) error {
	s.updates = append(s.updates, fields)
	w, ok := s.workshops[id]
	if !ok {
		return fmt.Errorf("workshop %s not found", id)
	}
	if plano, ok := fields["plano"].(string); ok {
		w.Plano = plano
	}
	return nil
}

func (s *stubStore) TrialsEndingBetween(from, to time.Time) ([]models.Workshop, error) {
	return nil, nil
}

func (s *stubStore) TrialsExpiredBefore(t time.Time) ([]models.Workshop, error) {
	return nil, nil
}

type stubMailer struct{}

func (stubMailer) SendPaymentConfirmation(email, nome, plano, valor, dataPagamento, proximaCobranca string) error {
	return nil
}
func (stubMailer) SendTrialExpiring(email, nome string, diasRestantes int) error { return nil }
func (stubMailer) SendTrialExpired(email, nome string) error                     { return nil }

func webhookApp(store billing.WorkshopStore) *fiber.App {
	reconciler := billing.NewReconciler(store, stubMailer{})
	handler := NewStripeWebhookHandler(reconciler, testWebhookSecret)

	app := fiber.New()
	app.Post("/api/webhooks/stripe", handler.Handle)
	return app
}

func signedRequest(payload []byte, secret string) *http.Request {
	signed := stripewebhook.GenerateTestSignedPayload(&stripewebhook.UnsignedPayload{
		Payload:   payload,
		Secret:    secret,
		Timestamp: time.Now(),
		Scheme:    "v1",
	})

	req := httptest.NewRequest(http.MethodPost, "/api/webhooks/stripe", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Stripe-Signature", signed.Header)
	return req
}

func checkoutPayload(oficinaID uuid.UUID) []byte {
	return []byte(fmt.Sprintf(`{
		"id": "evt_test_1",
		"type": "checkout.session.completed",
		"data": {
			"object": {
				"customer": "cus_123",
				"subscription": "sub_123",
				"metadata": {"userId": %q, "plano": "profissional"}
			}
		}
	}`, oficinaID))
}

func TestWebhookRejectsMissingSignature(t *testing.T) {
	app := webhookApp(&stubStore{workshops: map[uuid.UUID]*models.Workshop{}})

	req := httptest.NewRequest(http.MethodPost, "/api/webhooks/stripe", bytes.NewReader(checkoutPayload(uuid.New())))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestWebhookRejectsInvalidSignature(t *testing.T) {
	app := webhookApp(&stubStore{workshops: map[uuid.UUID]*models.Workshop{}})

	req := signedRequest(checkoutPayload(uuid.New()), "whsec_wrong")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestWebhookProcessesSignedEvent(t *testing.T) {
	oficinaID := uuid.New()
	store := &stubStore{workshops: map[uuid.UUID]*models.Workshop{
		oficinaID: {ID: oficinaID, Email: "dono@oficina.com", Plano: "basico"},
	}}
	app := webhookApp(store)

	resp, err := app.Test(signedRequest(checkoutPayload(oficinaID), testWebhookSecret))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"received": true}`, string(body))

	assert.Equal(t, "profissional", store.workshops[oficinaID].Plano)
}
