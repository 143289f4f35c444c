// Package billing holds the Stripe-facing side of the system: the webhook
// reconciler that maps subscription lifecycle events onto workshop rows,
// checkout session creation, and the scheduled trial sweep.
package billing

import (
	"time"

	"github.com/google/uuid"
	"github.com/turbogestor/backend/internal/models"
)

// WorkshopStore is the persistence surface billing needs. Implemented by
// services.WorkshopService; narrowed here so the reconciler and sweep are
// testable without a database.
type WorkshopStore interface {
	GetWorkshop(id uuid.UUID) (*models.Workshop, error)
	// UpdateWorkshopFields applies an idempotent set of column updates.
	UpdateWorkshopFields(id uuid.UUID, fields map[string]interface{}) error
	// TrialsEndingBetween lists workshops without a subscription whose
	// trial ends inside [from, to].
	TrialsEndingBetween(from, to time.Time) ([]models.Workshop, error)
	// TrialsExpiredBefore lists workshops without a subscription whose
	// trial already ended before t.
	TrialsExpiredBefore(t time.Time) ([]models.Workshop, error)
}

// Mailer is the notification surface billing needs. Implemented by
// mailer.Client.
type Mailer interface {
	SendPaymentConfirmation(email, nome, plano, valor, dataPagamento, proximaCobranca string) error
	SendTrialExpiring(email, nome string, diasRestantes int) error
	SendTrialExpired(email, nome string) error
}
