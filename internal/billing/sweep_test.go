package billing

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/turbogestor/backend/internal/models"
)

func trialWorkshop(email string, endsIn time.Duration, now time.Time) *models.Workshop {
	end := now.Add(endsIn)
	return &models.Workshop{
		ID:          uuid.New(),
		Nome:        "Oficina " + email,
		Email:       email,
		Plano:       "basico",
		TrialEndsAt: &end,
	}
}

func TestSweepBuckets(t *testing.T) {
	now := time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)

	in2d := trialWorkshop("2d@oficina.com", 2*24*time.Hour, now)
	in5d := trialWorkshop("5d@oficina.com", 5*24*time.Hour, now)
	past := trialWorkshop("past@oficina.com", -24*time.Hour, now)

	sub := "sub_paid"
	paid := trialWorkshop("paid@oficina.com", -24*time.Hour, now)
	paid.StripeSubscriptionID = &sub

	store := newFakeStore(in2d, in5d, past, paid)
	mail := &fakeMailer{}
	sweeper := NewSweeper(store, mail)

	summary, err := sweeper.Run(now)
	require.NoError(t, err)

	assert.True(t, summary.Success)
	assert.Equal(t, 1, summary.TrialsEm3Dias, "only the 2-day trial is inside the 3-day window")
	assert.Equal(t, 0, summary.TrialsEm1Dia)
	assert.Equal(t, 1, summary.TrialsExpirados, "paid workshop is excluded even with a past trial end")
	assert.Equal(t, 2, summary.EmailsEnviados)
}

func TestSweepOverlappingWindowsSendBoth(t *testing.T) {
	now := time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)
	w := trialWorkshop("soon@oficina.com", 12*time.Hour, now)

	store := newFakeStore(w)
	mail := &fakeMailer{}
	sweeper := NewSweeper(store, mail)

	summary, err := sweeper.Run(now)
	require.NoError(t, err)

	// 12 hours out falls in both the 3-day and the 1-day windows, so the
	// workshop gets both expiring emails in one invocation.
	assert.Equal(t, 1, summary.TrialsEm3Dias)
	assert.Equal(t, 1, summary.TrialsEm1Dia)
	assert.Equal(t, 2, summary.EmailsEnviados)

	require.Len(t, mail.sent, 2)
	assert.Equal(t, 3, mail.sent[0].dias)
	assert.Equal(t, 1, mail.sent[1].dias)
}

func TestSweepFailureIsolation(t *testing.T) {
	now := time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)
	broken := trialWorkshop("broken@oficina.com", -time.Hour, now)
	fine := trialWorkshop("fine@oficina.com", -time.Hour, now)

	store := newFakeStore(broken, fine)
	mail := &fakeMailer{failFor: map[string]bool{"broken@oficina.com": true}}
	sweeper := NewSweeper(store, mail)

	summary, err := sweeper.Run(now)
	require.NoError(t, err)

	// One dispatch failing does not abort the sweep for the others, and
	// only successful sends are counted.
	assert.Equal(t, 2, summary.TrialsExpirados)
	assert.Equal(t, 1, summary.EmailsEnviados)
	require.Len(t, mail.sent, 1)
	assert.Equal(t, "fine@oficina.com", mail.sent[0].email)
}

func TestSweepEmptyDatabase(t *testing.T) {
	sweeper := NewSweeper(newFakeStore(), &fakeMailer{})
	summary, err := sweeper.Run(time.Now())
	require.NoError(t, err)
	assert.Equal(t, SweepSummary{Success: true}, summary)
}
