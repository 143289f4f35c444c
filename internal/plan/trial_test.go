package plan

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func strptr(s string) *string { return &s }

func timeptr(t time.Time) *time.Time { return &t }

func TestResolveStateSubscriptionWins(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	sub := strptr("sub_123")

	// Subscription present beats any trial timestamp, future or past.
	for _, end := range []*time.Time{
		nil,
		timeptr(now.Add(365 * 24 * time.Hour)),
		timeptr(now.Add(-365 * 24 * time.Hour)),
	} {
		st := ResolveState(end, sub, now)
		assert.Equal(t, PaidActive, st.Kind)
	}
}

func TestResolveStateEmptySubscriptionIgnored(t *testing.T) {
	now := time.Now()
	st := ResolveState(nil, strptr(""), now)
	assert.Equal(t, InTrialIndefinite, st.Kind)
}

func TestResolveStateIndefiniteTrial(t *testing.T) {
	st := ResolveState(nil, nil, time.Now())
	assert.Equal(t, InTrialIndefinite, st.Kind)
	assert.Equal(t, 0, st.DaysRemaining)
}

func TestResolveStateTimedTrial(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	for _, tc := range []struct {
		offset   time.Duration
		wantDays int
	}{
		{7 * 24 * time.Hour, 7},
		{3 * 24 * time.Hour, 3},
		{25 * time.Hour, 1},
		{12 * time.Hour, 0}, // final day
		{time.Second, 0},
	} {
		st := ResolveState(timeptr(now.Add(tc.offset)), nil, now)
		assert.Equal(t, InTrialTimed, st.Kind, "offset=%s", tc.offset)
		assert.Equal(t, tc.wantDays, st.DaysRemaining, "offset=%s", tc.offset)
	}
}

func TestResolveStateExactNowIsExpired(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	st := ResolveState(timeptr(now), nil, now)
	assert.Equal(t, TrialExpired, st.Kind)
}

func TestResolveStateExpired(t *testing.T) {
	now := time.Now()
	st := ResolveState(timeptr(now.Add(-time.Hour)), nil, now)
	assert.Equal(t, TrialExpired, st.Kind)
}

func TestStateKindString(t *testing.T) {
	assert.Equal(t, "paid_active", PaidActive.String())
	assert.Equal(t, "trial_expired", TrialExpired.String())
	assert.Equal(t, "in_trial", InTrialTimed.String())
	assert.Equal(t, "in_trial_indefinite", InTrialIndefinite.String())
}
