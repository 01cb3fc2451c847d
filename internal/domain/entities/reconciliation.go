package entities

import "time"

// DecisionOutcome is the result of reconciling a customer decision against the local copy.
type DecisionOutcome string

const (
	// DecisionApplied: the decision went through the normal graph. An accepted
	// decision leaves the request in QUOTE_ACCEPTED, ready for a policy.
	DecisionApplied DecisionOutcome = "applied"
	// DecisionLateAccepted: the acceptance was recorded and the expiration
	// re-appended after it. No policy may be created.
	DecisionLateAccepted DecisionOutcome = "late_accepted"
	// DecisionLateRejected: the expiration was discarded in favour of the rejection.
	DecisionLateRejected DecisionOutcome = "late_rejected"
	// DecisionStale: duplicate or out-of-date delivery; the request is unchanged.
	DecisionStale DecisionOutcome = "stale"
)

type Reconciliation struct {
	Outcome DecisionOutcome
	// ExpiredAt is the timestamp of the expiration entry that was popped, if any.
	ExpiredAt time.Time
	// Cause explains a DecisionStale outcome.
	Cause error
}

// ReconcileDecision applies a customer decision taken at `at`, resolving the
// race against an expiration the sweeper may already have recorded.
//
// When the current status is QUOTE_EXPIRED the expiration entry is popped and
// the decision applied in its place. A decision taken strictly before the
// recorded expiration is then treated as if no expiration had happened. A late
// acceptance gets the expiration re-appended at its original timestamp; a
// late rejection stands alone. If the decision is illegal once the entry is
// popped, the entry is restored and the outcome is DecisionStale.
//
// QUOTE_ACCEPTED with an acceptance is reported as DecisionApplied without a
// new entry so that an interrupted policy creation can resume.
func (q *QuoteRequest) ReconcileDecision(accepted bool, at time.Time) (Reconciliation, error) {
	switch q.Status() {
	case RequestStatusQuoteExpired:
		return q.reconcileAgainstExpiration(accepted, at)
	case RequestStatusQuoteAccepted:
		if accepted {
			return Reconciliation{Outcome: DecisionApplied}, nil
		}
		return stale(q.RejectQuote(at)), nil
	case RequestStatusQuoteReceived:
		if err := q.applyDecision(accepted, at); err != nil {
			return stale(err), nil
		}
		return Reconciliation{Outcome: DecisionApplied}, nil
	default:
		return stale(&TransitionError{From: q.Status(), To: decisionTarget(accepted)}), nil
	}
}

func (q *QuoteRequest) reconcileAgainstExpiration(accepted bool, at time.Time) (Reconciliation, error) {
	expired, err := q.PopLastStatus()
	if err != nil {
		return Reconciliation{}, err
	}
	restore := func(cause error) (Reconciliation, error) {
		q.StatusHistory = append(q.StatusHistory, expired)
		return stale(cause), nil
	}

	if err := q.applyDecision(accepted, at); err != nil {
		return restore(err)
	}

	if at.Before(expired.Date) {
		return Reconciliation{Outcome: DecisionApplied, ExpiredAt: expired.Date}, nil
	}
	if !accepted {
		return Reconciliation{Outcome: DecisionLateRejected, ExpiredAt: expired.Date}, nil
	}
	if err := q.MarkExpired(expired.Date); err != nil {
		// QUOTE_ACCEPTED -> QUOTE_EXPIRED is always legal.
		return Reconciliation{}, err
	}
	return Reconciliation{Outcome: DecisionLateAccepted, ExpiredAt: expired.Date}, nil
}

func (q *QuoteRequest) applyDecision(accepted bool, at time.Time) error {
	if accepted {
		return q.AcceptQuote(at)
	}
	return q.RejectQuote(at)
}

func decisionTarget(accepted bool) RequestStatus {
	if accepted {
		return RequestStatusQuoteAccepted
	}
	return RequestStatusQuoteRejected
}

func stale(cause error) Reconciliation {
	return Reconciliation{Outcome: DecisionStale, Cause: cause}
}
