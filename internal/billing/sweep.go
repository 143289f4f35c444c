package billing

import (
	"log/slog"
	"time"
)

// SweepSummary reports what one sweep invocation found and dispatched.
type SweepSummary struct {
	Success         bool `json:"success"`
	EmailsEnviados  int  `json:"emailsEnviados"`
	TrialsEm3Dias   int  `json:"trialsEm3Dias"`
	TrialsEm1Dia    int  `json:"trialsEm1Dia"`
	TrialsExpirados int  `json:"trialsExpirados"`
}

// Sweeper walks workshops approaching or past trial expiry and fires the
// corresponding notifications. The 3-day and 1-day windows overlap on
// purpose: a workshop 12 hours from expiry gets both emails in the same
// run. The caller's scheduler is expected to serialize invocations.
type Sweeper struct {
	store  WorkshopStore
	mailer Mailer
}

func NewSweeper(store WorkshopStore, mailer Mailer) *Sweeper {
	return &Sweeper{store: store, mailer: mailer}
}

// Run executes one sweep at the given instant. Per-workshop dispatch
// failures are logged and skipped; they never abort the rest of the sweep.
func (s *Sweeper) Run(now time.Time) (SweepSummary, error) {
	summary := SweepSummary{Success: true}

	in3Days, err := s.store.TrialsEndingBetween(now, now.Add(3*24*time.Hour))
	if err != nil {
		return SweepSummary{}, err
	}
	in1Day, err := s.store.TrialsEndingBetween(now, now.Add(24*time.Hour))
	if err != nil {
		return SweepSummary{}, err
	}
	expired, err := s.store.TrialsExpiredBefore(now)
	if err != nil {
		return SweepSummary{}, err
	}

	summary.TrialsEm3Dias = len(in3Days)
	summary.TrialsEm1Dia = len(in1Day)
	summary.TrialsExpirados = len(expired)

	for _, w := range in3Days {
		if err := s.mailer.SendTrialExpiring(w.Email, nonEmpty(w.Nome, "Cliente"), 3); err != nil {
			slog.Error("trial expiring email failed", "oficina_id", w.ID.String(), "dias", 3, "error", err)
			continue
		}
		summary.EmailsEnviados++
	}

	for _, w := range in1Day {
		if err := s.mailer.SendTrialExpiring(w.Email, nonEmpty(w.Nome, "Cliente"), 1); err != nil {
			slog.Error("trial expiring email failed", "oficina_id", w.ID.String(), "dias", 1, "error", err)
			continue
		}
		summary.EmailsEnviados++
	}

	for _, w := range expired {
		if err := s.mailer.SendTrialExpired(w.Email, nonEmpty(w.Nome, "Cliente")); err != nil {
			slog.Error("trial expired email failed", "oficina_id", w.ID.String(), "error", err)
			continue
		}
		summary.EmailsEnviados++
	}

	slog.Info("trial sweep completed",
		"em_3_dias", summary.TrialsEm3Dias,
		"em_1_dia", summary.TrialsEm1Dia,
		"expirados", summary.TrialsExpirados,
		"emails_enviados", summary.EmailsEnviados)
	return summary, nil
}
