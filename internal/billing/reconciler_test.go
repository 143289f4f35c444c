package billing

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v82"
	"github.com/turbogestor/backend/internal/models"
)

type fakeStore struct {
	workshops map[uuid.UUID]*models.Workshop
	updateErr error
}

func newFakeStore(workshops ...*models.Workshop) *fakeStore {
	s := &fakeStore{workshops: make(map[uuid.UUID]*models.Workshop)}
	for _, w := range workshops {
		s.workshops[w.ID] = w
	}
	return s
}

func (s *fakeStore) GetWorkshop(id uuid.UUID) (*models.Workshop, error) {
	w, ok := s.workshops[id]
	if !ok {
		return nil, errors.New("workshop not found")
	}
	return w, nil
}

func (s *fakeStore) UpdateWorkshopFields(id uuid.UUID, fields map[string]interface{}) error {
	if s.updateErr != nil {
		return s.updateErr
	}
	w, ok := s.workshops[id]
	if !ok {
		return errors.New("workshop not found")
	}
	for k, v := range fields {
		switch k {
		case "plano":
			w.Plano = v.(string)
		case "stripe_customer_id":
			cid := v.(string)
			w.StripeCustomerID = &cid
		case "stripe_subscription_id":
			if v == nil {
				w.StripeSubscriptionID = nil
			} else {
				sid := v.(string)
				w.StripeSubscriptionID = &sid
			}
		}
	}
	return nil
}

func (s *fakeStore) TrialsEndingBetween(from, to time.Time) ([]models.Workshop, error) {
	var out []models.Workshop
	for _, w := range s.workshops {
		if w.StripeSubscriptionID != nil || w.TrialEndsAt == nil {
			continue
		}
		end := *w.TrialEndsAt
		if !end.Before(from) && !end.After(to) {
			out = append(out, *w)
		}
	}
	return out, nil
}

func (s *fakeStore) TrialsExpiredBefore(t time.Time) ([]models.Workshop, error) {
	var out []models.Workshop
	for _, w := range s.workshops {
		if w.StripeSubscriptionID != nil || w.TrialEndsAt == nil {
			continue
		}
		if w.TrialEndsAt.Before(t) {
			out = append(out, *w)
		}
	}
	return out, nil
}

type sentEmail struct {
	kind  string
	email string
	dias  int
}

type fakeMailer struct {
	sent    []sentEmail
	failFor map[string]bool
}

func (m *fakeMailer) SendPaymentConfirmation(email, nome, plano, valor, dataPagamento, proximaCobranca string) error {
	if m.failFor[email] {
		return errors.New("sink unavailable")
	}
	m.sent = append(m.sent, sentEmail{kind: "payment_confirmation", email: email})
	return nil
}

func (m *fakeMailer) SendTrialExpiring(email, nome string, diasRestantes int) error {
	if m.failFor[email] {
		return errors.New("sink unavailable")
	}
	m.sent = append(m.sent, sentEmail{kind: "trial_expiring", email: email, dias: diasRestantes})
	return nil
}

func (m *fakeMailer) SendTrialExpired(email, nome string) error {
	if m.failFor[email] {
		return errors.New("sink unavailable")
	}
	m.sent = append(m.sent, sentEmail{kind: "trial_expired", email: email})
	return nil
}

func stripeEvent(t *testing.T, eventType string, payload interface{}) *stripe.Event {
	t.Helper()
	raw, err := json.Marshal(payload)
	require.NoError(t, err)
	return &stripe.Event{
		ID:   "evt_test",
		Type: stripe.EventType(eventType),
		Data: &stripe.EventData{Raw: raw},
	}
}

func checkoutCompletedEvent(t *testing.T, oficinaID uuid.UUID, plano string) *stripe.Event {
	return stripeEvent(t, "checkout.session.completed", map[string]interface{}{
		"id":           "cs_test_123",
		"customer":     "cus_abc",
		"subscription": "sub_abc",
		"metadata":     map[string]string{"userId": oficinaID.String(), "plano": plano},
	})
}

func TestCheckoutCompletedUpgradesWorkshop(t *testing.T) {
	w := &models.Workshop{ID: uuid.New(), Nome: "Oficina do Carlos", Email: "carlos@oficina.com", Plano: "basico"}
	store := newFakeStore(w)
	mail := &fakeMailer{}
	rec := NewReconciler(store, mail)

	err := rec.HandleEvent(checkoutCompletedEvent(t, w.ID, "profissional"))
	require.NoError(t, err)

	assert.Equal(t, "profissional", w.Plano)
	require.NotNil(t, w.StripeCustomerID)
	assert.Equal(t, "cus_abc", *w.StripeCustomerID)
	require.NotNil(t, w.StripeSubscriptionID)
	assert.Equal(t, "sub_abc", *w.StripeSubscriptionID)

	require.Len(t, mail.sent, 1)
	assert.Equal(t, "payment_confirmation", mail.sent[0].kind)
	assert.Equal(t, "carlos@oficina.com", mail.sent[0].email)
}

func TestCheckoutCompletedIsIdempotent(t *testing.T) {
	w := &models.Workshop{ID: uuid.New(), Email: "carlos@oficina.com", Plano: "basico"}
	store := newFakeStore(w)
	rec := NewReconciler(store, &fakeMailer{})

	require.NoError(t, rec.HandleEvent(checkoutCompletedEvent(t, w.ID, "profissional")))
	planoAfterFirst := w.Plano
	subAfterFirst := *w.StripeSubscriptionID

	// Stripe may re-deliver; applying the same event twice lands on the
	// same final state.
	require.NoError(t, rec.HandleEvent(checkoutCompletedEvent(t, w.ID, "profissional")))
	assert.Equal(t, planoAfterFirst, w.Plano)
	assert.Equal(t, subAfterFirst, *w.StripeSubscriptionID)
}

func TestCheckoutCompletedEmailFailureDoesNotRollBack(t *testing.T) {
	w := &models.Workshop{ID: uuid.New(), Email: "carlos@oficina.com", Plano: "basico"}
	store := newFakeStore(w)
	mail := &fakeMailer{failFor: map[string]bool{"carlos@oficina.com": true}}
	rec := NewReconciler(store, mail)

	err := rec.HandleEvent(checkoutCompletedEvent(t, w.ID, "profissional"))
	require.NoError(t, err)
	assert.Equal(t, "profissional", w.Plano)
	assert.Empty(t, mail.sent)
}

func TestSubscriptionUpdatedDowngrades(t *testing.T) {
	for _, status := range []string{"canceled", "unpaid"} {
		t.Run(status, func(t *testing.T) {
			sub := "sub_abc"
			w := &models.Workshop{ID: uuid.New(), Plano: "profissional", StripeSubscriptionID: &sub}
			store := newFakeStore(w)
			rec := NewReconciler(store, &fakeMailer{})

			event := stripeEvent(t, "customer.subscription.updated", map[string]interface{}{
				"id":       "sub_abc",
				"status":   status,
				"metadata": map[string]string{"userId": w.ID.String()},
			})
			require.NoError(t, rec.HandleEvent(event))

			assert.Equal(t, "basico", w.Plano)
			// The subscription id stays attached on a downgrade-by-status.
			require.NotNil(t, w.StripeSubscriptionID)
			assert.Equal(t, "sub_abc", *w.StripeSubscriptionID)
		})
	}
}

func TestSubscriptionUpdatedActiveIsNoop(t *testing.T) {
	sub := "sub_abc"
	w := &models.Workshop{ID: uuid.New(), Plano: "profissional", StripeSubscriptionID: &sub}
	store := newFakeStore(w)
	rec := NewReconciler(store, &fakeMailer{})

	event := stripeEvent(t, "customer.subscription.updated", map[string]interface{}{
		"id":       "sub_abc",
		"status":   "active",
		"metadata": map[string]string{"userId": w.ID.String()},
	})
	require.NoError(t, rec.HandleEvent(event))
	assert.Equal(t, "profissional", w.Plano)
}

func TestSubscriptionDeletedDetaches(t *testing.T) {
	sub := "sub_abc"
	w := &models.Workshop{ID: uuid.New(), Plano: "business", StripeSubscriptionID: &sub}
	store := newFakeStore(w)
	rec := NewReconciler(store, &fakeMailer{})

	event := stripeEvent(t, "customer.subscription.deleted", map[string]interface{}{
		"id":       "sub_abc",
		"metadata": map[string]string{"userId": w.ID.String()},
	})
	require.NoError(t, rec.HandleEvent(event))

	assert.Equal(t, "basico", w.Plano)
	assert.Nil(t, w.StripeSubscriptionID)
}

func TestInvoicePaymentFailedMutatesNothing(t *testing.T) {
	sub := "sub_abc"
	w := &models.Workshop{ID: uuid.New(), Plano: "profissional", StripeSubscriptionID: &sub}
	store := newFakeStore(w)
	mail := &fakeMailer{}
	rec := NewReconciler(store, mail)

	event := stripeEvent(t, "invoice.payment_failed", map[string]interface{}{"id": "in_123"})
	require.NoError(t, rec.HandleEvent(event))

	assert.Equal(t, "profissional", w.Plano)
	assert.Empty(t, mail.sent)
}

func TestUnknownEventTypeIgnored(t *testing.T) {
	store := newFakeStore()
	rec := NewReconciler(store, &fakeMailer{})

	event := stripeEvent(t, "customer.created", map[string]interface{}{"id": "cus_123"})
	assert.NoError(t, rec.HandleEvent(event))
}

func TestCheckoutCompletedWithoutMetadataIgnored(t *testing.T) {
	w := &models.Workshop{ID: uuid.New(), Plano: "basico"}
	store := newFakeStore(w)
	rec := NewReconciler(store, &fakeMailer{})

	event := stripeEvent(t, "checkout.session.completed", map[string]interface{}{
		"id": "cs_test_123",
	})
	require.NoError(t, rec.HandleEvent(event))
	assert.Equal(t, "basico", w.Plano)
}

func TestPlanPriceDisplay(t *testing.T) {
	assert.Equal(t, "R$ 197,00", planPriceDisplay("profissional"))
	assert.Equal(t, "", planPriceDisplay("business"))
}

func TestCheckoutServiceRejectsNonSelfServePlans(t *testing.T) {
	svc := NewCheckoutService("https://app.turbogestor.com")
	w := &models.Workshop{ID: uuid.New(), Email: "carlos@oficina.com"}

	_, err := svc.CreateSession(w, "business")
	assert.ErrorIs(t, err, ErrBusinessContato)

	for i, plano := range []string{"basico", "trial", "premium", ""} {
		_, err := svc.CreateSession(w, plano)
		assert.ErrorIs(t, err, ErrPlanoInvalido, fmt.Sprintf("case %d: %q", i, plano))
	}
}
