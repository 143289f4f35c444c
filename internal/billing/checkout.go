package billing

import (
	"errors"
	"fmt"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/checkout/session"
	"github.com/turbogestor/backend/internal/models"
	"github.com/turbogestor/backend/internal/plan"
)

var (
	ErrPlanoInvalido   = errors.New("plano inválido")
	ErrBusinessContato = errors.New("plano Business requer contato comercial")
)

// CheckoutService creates Stripe checkout sessions for self-serve plan
// upgrades. Requires stripe.Key to be set at startup.
type CheckoutService struct {
	appURL string
}

func NewCheckoutService(appURL string) *CheckoutService {
	return &CheckoutService{appURL: appURL}
}

// CreateSession builds a monthly BRL subscription checkout for the given
// workshop. Only profissional is self-serve; business goes through sales.
func (s *CheckoutService) CreateSession(w *models.Workshop, plano string) (*stripe.CheckoutSession, error) {
	plano = plan.Normalize(plano)

	if plano == "business" {
		return nil, ErrBusinessContato
	}
	price, ok := planPrices[plano]
	if !ok {
		return nil, ErrPlanoInvalido
	}

	metadata := map[string]string{
		"userId":    w.ID.String(),
		"plano":     plano,
		"oficinaId": w.ID.String(),
	}

	params := &stripe.CheckoutSessionParams{
		Mode:               stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String("brl"),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name:        stripe.String("Turbo Gestor - Plano " + plan.Limits(plano).Name),
						Description: stripe.String(fmt.Sprintf("Assinatura mensal do plano %s", plano)),
					},
					UnitAmount: stripe.Int64(price),
					Recurring: &stripe.CheckoutSessionLineItemPriceDataRecurringParams{
						Interval: stripe.String("month"),
					},
				},
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL:    stripe.String(s.appURL + "/dashboard/planos?success=true&plano=" + plano),
		CancelURL:     stripe.String(s.appURL + "/dashboard/planos/upgrade?plano=" + plano + "&canceled=true"),
		CustomerEmail: stripe.String(w.Email),
		SubscriptionData: &stripe.CheckoutSessionSubscriptionDataParams{
			Metadata: metadata,
		},
	}
	for k, v := range metadata {
		params.AddMetadata(k, v)
	}

	return session.New(params)
}
