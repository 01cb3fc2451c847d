package usecase

import (
	"context"

	"insurance_quotes/internal/domain/entities"
	"insurance_quotes/internal/domain/events"
)

// HandleQuoteRequestSubmitted creates the policy service's copy of a request.
// A redelivery finds the copy already present and does nothing.
func (u *UnderwritingUseCase) HandleQuoteRequestSubmitted(ctx context.Context, env events.Envelope) error {
	var msg events.QuoteRequestSubmitted
	if err := env.Decode(&msg); err != nil {
		return err
	}
	requestID, err := inboundTarget(env, msg.RequestID, msg.Date)
	if err != nil {
		return err
	}
	log := u.log.With("request_id", requestID, "event_kind", env.Kind, "event_id", env.ID)

	return u.withLock(ctx, requestID, func() error {
		existing, err := u.repo.GetByID(ctx, requestID)
		if err != nil {
			return err
		}
		if existing != nil {
			log.Info("quote request already known; ignoring duplicate", "status", existing.Status())
			return nil
		}
		q := entities.SubmitQuoteRequest(requestID, fromEventCustomer(msg.CustomerInfo), fromEventOptions(msg.InsuranceOptions), msg.Date)
		if err := u.repo.Save(ctx, q); err != nil {
			return err
		}
		log.Info("quote request received", "customer_id", q.Customer.CustomerID)
		return nil
	})
}

// HandleCustomerDecision reconciles a decision against the local copy, which
// the sweeper may already have expired, then creates the policy or reports the
// late outcome.
func (u *UnderwritingUseCase) HandleCustomerDecision(ctx context.Context, env events.Envelope) error {
	var msg events.CustomerDecision
	if err := env.Decode(&msg); err != nil {
		return err
	}
	requestID, err := inboundTarget(env, msg.RequestID, msg.Date)
	if err != nil {
		return err
	}
	log := u.log.With("request_id", requestID, "event_kind", env.Kind, "event_id", env.ID, "accepted", msg.Accepted)

	return u.withLock(ctx, requestID, func() error {
		q, err := u.repo.GetByID(ctx, requestID)
		if err != nil {
			return err
		}
		if q == nil {
			log.Warn("decision for unknown quote request; dropping")
			return nil
		}
		if err := u.flush(ctx, q); err != nil {
			return err
		}

		from := q.Status()
		rec, err := q.ReconcileDecision(msg.Accepted, msg.Date)
		if err != nil {
			log.Error("reconciliation hit a corrupt history", "status", from, "error", err)
			return err
		}
		u.recordReconciliation(rec.Outcome)

		switch rec.Outcome {
		case entities.DecisionStale:
			log.Info("stale or duplicate decision; ignoring", "status", from, "reason", rec.Cause)
			return nil
		case entities.DecisionLateAccepted:
			expired, err := events.NewEnvelope(events.KindQuoteExpired, q.ID, env.ID, u.now(), events.QuoteExpired{
				Date:      rec.ExpiredAt,
				RequestID: q.ID,
			})
			if err != nil {
				return err
			}
			q.Enqueue(expired)
			log.Info("acceptance arrived after expiration; quote stays expired", "expired_at", rec.ExpiredAt)
		case entities.DecisionLateRejected:
			log.Info("rejection arrived after expiration; expiration discarded", "expired_at", rec.ExpiredAt)
		case entities.DecisionApplied:
			if msg.Accepted {
				if err := u.createPolicy(ctx, q, env.ID); err != nil {
					return err
				}
			}
		}

		if err := u.commit(ctx, q); err != nil {
			return err
		}
		log.Info("decision reconciled", "outcome", rec.Outcome, "from", from, "to", q.Status())
		return nil
	})
}

// createPolicy stores the policy and finalizes the request. A policy already
// stored for the request is reused as is; otherwise the id is derived from the
// request id, so a retry after a failed save rewrites the same policy.
func (u *UnderwritingUseCase) createPolicy(ctx context.Context, q *entities.QuoteRequest, causationID string) error {
	now := u.now()
	policy, err := u.policies.GetByRequestID(ctx, q.ID)
	if err != nil {
		return err
	}
	if policy.ID == "" {
		if policy, err = entities.NewPolicyFromRequest(q, now); err != nil {
			return err
		}
		if err := u.policies.Save(ctx, policy); err != nil {
			return err
		}
	} else {
		u.log.Info("reusing stored policy", "request_id", q.ID, "policy_id", policy.ID)
	}
	if err := q.FinalizeWithPolicy(policy.ID, now); err != nil {
		return err
	}

	created, err := events.NewEnvelope(events.KindPolicyCreated, q.ID, causationID, now, events.PolicyCreated{
		Date:      now,
		RequestID: q.ID,
		PolicyID:  policy.ID,
	})
	if err != nil {
		return err
	}
	report, err := events.NewEnvelope(events.KindRiskReport, q.ID, causationID, now, events.RiskReport{
		Date:        now,
		RequestID:   q.ID,
		PolicyID:    policy.ID,
		CustomerID:  policy.CustomerID,
		Premium:     toEventMoney(policy.InsurancePremium),
		PolicyLimit: toEventMoney(policy.PolicyLimit),
	})
	if err != nil {
		return err
	}
	q.Enqueue(created, report)
	u.log.Info("policy created", "request_id", q.ID, "policy_id", policy.ID)
	return nil
}

func (u *UnderwritingUseCase) recordReconciliation(outcome entities.DecisionOutcome) {
	if u.metrics != nil {
		u.metrics.RecordReconciliation(string(outcome))
	}
}
