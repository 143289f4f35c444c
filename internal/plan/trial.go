package plan

import "time"

// StateKind classifies a workshop's subscription standing.
type StateKind int

const (
	// PaidActive: a Stripe subscription is attached. Wins over any trial
	// timestamp, even one still in the future.
	PaidActive StateKind = iota
	// InTrialTimed: trial end set and still ahead of now.
	InTrialTimed
	// InTrialIndefinite: no trial end and no subscription; no countdown.
	InTrialIndefinite
	// TrialExpired: trial end reached with no subscription attached.
	TrialExpired
)

func (k StateKind) String() string {
	switch k {
	case PaidActive:
		return "paid_active"
	case InTrialTimed:
		return "in_trial"
	case InTrialIndefinite:
		return "in_trial_indefinite"
	case TrialExpired:
		return "trial_expired"
	}
	return "unknown"
}

// State is the resolved standing, with the remaining whole days for timed
// trials (0 on the final day).
type State struct {
	Kind          StateKind
	DaysRemaining int
}

// ResolveState derives the standing from the two stored fields and a
// caller-supplied clock. A trial ending exactly at now counts as expired:
// now strictly before the end is the only still-active condition.
func ResolveState(trialEndsAt *time.Time, subscriptionID *string, now time.Time) State {
	if subscriptionID != nil && *subscriptionID != "" {
		return State{Kind: PaidActive}
	}
	if trialEndsAt == nil {
		return State{Kind: InTrialIndefinite}
	}
	if now.Before(*trialEndsAt) {
		days := int(trialEndsAt.Sub(now).Hours() / 24)
		return State{Kind: InTrialTimed, DaysRemaining: days}
	}
	return State{Kind: TrialExpired}
}
