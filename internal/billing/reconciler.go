package billing

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v82"
	"github.com/turbogestor/backend/internal/plan"
)

// planPrices maps upgradeable plan keys to their monthly price in
// centavos. Business is quoted by sales and has no self-serve checkout.
var planPrices = map[string]int64{
	"profissional": 19700,
}

func planPriceDisplay(plano string) string {
	cents, ok := planPrices[plan.Normalize(plano)]
	if !ok {
		return ""
	}
	return fmt.Sprintf("R$ %d,%02d", cents/100, cents%100)
}

// Reconciler maps inbound Stripe events to workshop mutations. Every
// mutation is an idempotent set, so webhook re-delivery is safe by
// construction.
type Reconciler struct {
	store  WorkshopStore
	mailer Mailer
	now    func() time.Time
}

func NewReconciler(store WorkshopStore, mailer Mailer) *Reconciler {
	return &Reconciler{store: store, mailer: mailer, now: time.Now}
}

// checkoutSession is the slice of a Stripe checkout.session payload we
// consume.
type checkoutSession struct {
	ID           string            `json:"id"`
	Customer     string            `json:"customer"`
	Subscription string            `json:"subscription"`
	Metadata     map[string]string `json:"metadata"`
}

// subscription is the slice of a Stripe subscription payload we consume.
type subscription struct {
	ID       string            `json:"id"`
	Customer string            `json:"customer"`
	Status   string            `json:"status"`
	Metadata map[string]string `json:"metadata"`
}

type invoice struct {
	ID string `json:"id"`
}

// HandleEvent dispatches a signature-verified Stripe event. Unhandled
// event types are logged and acknowledged.
func (r *Reconciler) HandleEvent(event *stripe.Event) error {
	switch event.Type {
	case "checkout.session.completed":
		var session checkoutSession
		if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
			return fmt.Errorf("decode checkout.session: %w", err)
		}
		return r.handleCheckoutCompleted(session)

	case "customer.subscription.updated":
		var sub subscription
		if err := json.Unmarshal(event.Data.Raw, &sub); err != nil {
			return fmt.Errorf("decode subscription: %w", err)
		}
		return r.handleSubscriptionUpdated(sub)

	case "customer.subscription.deleted":
		var sub subscription
		if err := json.Unmarshal(event.Data.Raw, &sub); err != nil {
			return fmt.Errorf("decode subscription: %w", err)
		}
		return r.handleSubscriptionDeleted(sub)

	case "invoice.payment_failed":
		var inv invoice
		if err := json.Unmarshal(event.Data.Raw, &inv); err != nil {
			return fmt.Errorf("decode invoice: %w", err)
		}
		// No dunning flow: the failure is recorded and nothing mutates.
		slog.Error("stripe invoice payment failed", "invoice_id", inv.ID)
		return nil

	default:
		slog.Info("stripe event ignored", "type", event.Type, "event_id", event.ID)
		return nil
	}
}

func (r *Reconciler) handleCheckoutCompleted(session checkoutSession) error {
	oficinaID, plano, err := tenantFromMetadata(session.Metadata)
	if err != nil {
		// Sessions created outside this app carry no tenant metadata.
		slog.Info("checkout session without tenant metadata ignored", "session_id", session.ID)
		return nil
	}

	fields := map[string]interface{}{
		"plano": plan.Normalize(plano),
	}
	if session.Customer != "" {
		fields["stripe_customer_id"] = session.Customer
	}
	if session.Subscription != "" {
		fields["stripe_subscription_id"] = session.Subscription
	}
	if err := r.store.UpdateWorkshopFields(oficinaID, fields); err != nil {
		return fmt.Errorf("apply checkout upgrade: %w", err)
	}
	slog.Info("workshop upgraded", "oficina_id", oficinaID.String(), "plano", plano)

	// Confirmation email is best-effort: a sink failure never rolls back
	// the plan mutation.
	w, err := r.store.GetWorkshop(oficinaID)
	if err != nil {
		slog.Error("workshop lookup for confirmation email failed", "oficina_id", oficinaID.String(), "error", err)
		return nil
	}

	now := r.now()
	if err := r.mailer.SendPaymentConfirmation(
		w.Email,
		nonEmpty(w.Nome, "Cliente"),
		plan.Limits(plano).Name,
		planPriceDisplay(plano),
		now.Format("02/01/2006"),
		now.AddDate(0, 0, 30).Format("02/01/2006"),
	); err != nil {
		slog.Error("payment confirmation email failed", "oficina_id", oficinaID.String(), "error", err)
	}
	return nil
}

func (r *Reconciler) handleSubscriptionUpdated(sub subscription) error {
	oficinaID, _, err := tenantFromMetadata(sub.Metadata)
	if err != nil {
		slog.Info("subscription update without tenant metadata ignored", "subscription_id", sub.ID)
		return nil
	}

	if sub.Status != "canceled" && sub.Status != "unpaid" {
		slog.Info("subscription status unchanged for plan purposes",
			"oficina_id", oficinaID.String(), "status", sub.Status)
		return nil
	}

	// Downgrade only; the subscription id stays attached until a
	// subscription.deleted event clears it.
	if err := r.store.UpdateWorkshopFields(oficinaID, map[string]interface{}{
		"plano": "basico",
	}); err != nil {
		return fmt.Errorf("apply downgrade: %w", err)
	}
	slog.Info("workshop downgraded to basico", "oficina_id", oficinaID.String(), "status", sub.Status)
	return nil
}

func (r *Reconciler) handleSubscriptionDeleted(sub subscription) error {
	oficinaID, _, err := tenantFromMetadata(sub.Metadata)
	if err != nil {
		slog.Info("subscription delete without tenant metadata ignored", "subscription_id", sub.ID)
		return nil
	}

	if err := r.store.UpdateWorkshopFields(oficinaID, map[string]interface{}{
		"plano":                  "basico",
		"stripe_subscription_id": nil,
	}); err != nil {
		return fmt.Errorf("detach subscription: %w", err)
	}
	slog.Info("subscription detached", "oficina_id", oficinaID.String())
	return nil
}

func tenantFromMetadata(metadata map[string]string) (uuid.UUID, string, error) {
	raw, ok := metadata["userId"]
	if !ok || raw == "" {
		return uuid.Nil, "", fmt.Errorf("missing userId metadata")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, "", fmt.Errorf("invalid userId metadata: %w", err)
	}
	return id, metadata["plano"], nil
}

func nonEmpty(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
