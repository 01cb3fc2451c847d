package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"insurance_quotes/internal/domain/entities"
	"insurance_quotes/internal/domain/events"
)

// Inbound handlers of the customer service. Idempotency comes from the
// transition graph: a redelivered event implies a transition that is no longer
// legal and is ignored.

func (u *CustomerQuoteUseCase) HandleQuoteResponse(ctx context.Context, env events.Envelope) error {
	var msg events.QuoteResponse
	if err := env.Decode(&msg); err != nil {
		return err
	}
	return u.applyInbound(ctx, env, msg.RequestID, msg.Date, func(q *entities.QuoteRequest) error {
		if !msg.Accepted {
			return q.RejectRequest(msg.Date)
		}
		quote, ok := quoteFromResponse(msg)
		if !ok {
			return fmt.Errorf("%w: accepting quote response without terms request_id=%s", events.ErrMalformed, q.ID)
		}
		return q.AcceptRequest(quote, msg.Date)
	})
}

func (u *CustomerQuoteUseCase) HandleQuoteExpired(ctx context.Context, env events.Envelope) error {
	var msg events.QuoteExpired
	if err := env.Decode(&msg); err != nil {
		return err
	}
	return u.applyInbound(ctx, env, msg.RequestID, msg.Date, func(q *entities.QuoteRequest) error {
		return q.MarkExpired(msg.Date)
	})
}

func (u *CustomerQuoteUseCase) HandlePolicyCreated(ctx context.Context, env events.Envelope) error {
	var msg events.PolicyCreated
	if err := env.Decode(&msg); err != nil {
		return err
	}
	if strings.TrimSpace(msg.PolicyID) == "" {
		return fmt.Errorf("%w: policy created without policy id event_id=%s", events.ErrMalformed, env.ID)
	}
	return u.applyInbound(ctx, env, msg.RequestID, msg.Date, func(q *entities.QuoteRequest) error {
		return finalizeOverExpiration(q, msg.PolicyID, msg.Date)
	})
}

// finalizeOverExpiration records the policy. The policy service only creates
// one for a decision taken before the quote lapsed, so an expiration it
// published earlier is superseded: the trailing QUOTE_EXPIRED entry is dropped
// when it directly follows QUOTE_ACCEPTED.
func finalizeOverExpiration(q *entities.QuoteRequest, policyID string, at time.Time) error {
	n := len(q.StatusHistory)
	if q.Status() != entities.RequestStatusQuoteExpired || n < 2 || q.StatusHistory[n-2].Status != entities.RequestStatusQuoteAccepted {
		return q.FinalizeWithPolicy(policyID, at)
	}
	expired, err := q.PopLastStatus()
	if err != nil {
		return err
	}
	if err := q.FinalizeWithPolicy(policyID, at); err != nil {
		q.StatusHistory = append(q.StatusHistory, expired)
		return err
	}
	return nil
}

func (u *CustomerQuoteUseCase) applyInbound(ctx context.Context, env events.Envelope, requestID string, date time.Time, mutate func(q *entities.QuoteRequest) error) error {
	requestID, err := inboundTarget(env, requestID, date)
	if err != nil {
		return err
	}
	log := u.log.With("request_id", requestID, "event_kind", env.Kind, "event_id", env.ID, "causation_id", env.CausationID)

	return u.withLock(ctx, requestID, func() error {
		q, err := u.repo.GetByID(ctx, requestID)
		if err != nil {
			return err
		}
		if q == nil {
			log.Warn("event for unknown quote request; dropping")
			return nil
		}
		if err := u.flush(ctx, q); err != nil {
			return err
		}

		from := q.Status()
		if err := mutate(q); err != nil {
			if errors.Is(err, entities.ErrIllegalTransition) {
				log.Info("stale or duplicate delivery; ignoring", "status", from, "reason", err)
				return nil
			}
			return err
		}
		if err := u.commit(ctx, q); err != nil {
			return err
		}
		log.Info("quote request updated", "from", from, "to", q.Status())
		return nil
	})
}
