package usecase

import (
	"context"
	"strings"
	"time"

	"insurance_quotes/internal/domain/entities"
	"insurance_quotes/internal/domain/events"
	"insurance_quotes/internal/infrastructure/logger"
	"insurance_quotes/internal/usecase/interfaces"
)

// IUnderwritingUseCase is what the policy service's REST layer calls.
//
//   - RespondToRequest: the underwriter accepts (with a quote) or rejects a
//     submitted request and a QuoteResponse is published.
//   - ListByStatus / GetByID / GetPolicy: read side for the underwriter UI.
type IUnderwritingUseCase interface {
	RespondToRequest(ctx context.Context, requestID string, accepted bool, quote *entities.Quote) (*entities.QuoteRequest, error)
	GetByID(ctx context.Context, id string) (*entities.QuoteRequest, error)
	ListByStatus(ctx context.Context, status string) ([]*entities.QuoteRequest, error)
	GetPolicy(ctx context.Context, policyID string) (entities.Policy, error)
}

type UnderwritingUseCase struct {
	outbox
	policies interfaces.IPolicyRepository
	metrics  interfaces.IQuoteMetrics
	now      clock
}

var _ IUnderwritingUseCase = (*UnderwritingUseCase)(nil)

func NewUnderwritingUseCase(
	repo interfaces.IQuoteRequestRepository,
	policies interfaces.IPolicyRepository,
	publisher interfaces.IEventPublisher,
	locker interfaces.IAggregateLocker,
	metrics interfaces.IQuoteMetrics,
	log *logger.Logger,
) *UnderwritingUseCase {
	return &UnderwritingUseCase{
		outbox:   outbox{repo: repo, publisher: publisher, locker: locker, log: log.With("component", "UnderwritingUseCase")},
		policies: policies,
		metrics:  metrics,
		now:      utcNow,
	}
}

// WithClock replaces the wall clock, for tests.
func (u *UnderwritingUseCase) WithClock(now func() time.Time) *UnderwritingUseCase {
	u.now = now
	return u
}

func (u *UnderwritingUseCase) RespondToRequest(ctx context.Context, requestID string, accepted bool, quote *entities.Quote) (*entities.QuoteRequest, error) {
	requestID = strings.TrimSpace(requestID)
	if requestID == "" {
		return nil, ErrInvalidRequestID
	}
	now := u.now()
	if accepted {
		if err := validateQuote(quote, now); err != nil {
			return nil, err
		}
	}

	var out *entities.QuoteRequest
	err := u.withLock(ctx, requestID, func() error {
		q, err := u.repo.GetByID(ctx, requestID)
		if err != nil {
			return err
		}
		if q == nil {
			return ErrQuoteRequestNotFound
		}

		msg := events.QuoteResponse{Date: now, RequestID: q.ID, Accepted: accepted}
		if accepted {
			if err := q.AcceptRequest(*quote, now); err != nil {
				return err
			}
			exp := quote.ExpirationDate
			premium := toEventMoney(quote.InsurancePremium)
			limit := toEventMoney(quote.PolicyLimit)
			msg.ExpirationDate, msg.Premium, msg.PolicyLimit = &exp, &premium, &limit
		} else if err := q.RejectRequest(now); err != nil {
			return err
		}

		env, err := events.NewEnvelope(events.KindQuoteResponse, q.ID, "", now, msg)
		if err != nil {
			return err
		}
		q.Enqueue(env)
		if err := u.repo.Save(ctx, q); err != nil {
			return err
		}
		u.flushCommitted(ctx, q)
		out = q
		return nil
	})
	if err != nil {
		return nil, err
	}
	u.log.Info("quote response recorded", "request_id", requestID, "accepted", accepted)
	return out, nil
}

func (u *UnderwritingUseCase) GetByID(ctx context.Context, id string) (*entities.QuoteRequest, error) {
	return getByID(ctx, u.repo, id)
}

func (u *UnderwritingUseCase) ListByStatus(ctx context.Context, status string) ([]*entities.QuoteRequest, error) {
	status = strings.TrimSpace(status)
	statuses := entities.AllRequestStatuses()
	if status != "" {
		st, err := entities.ParseRequestStatus(strings.ToUpper(status))
		if err != nil {
			return nil, ErrInvalidStatus
		}
		statuses = []entities.RequestStatus{st}
	}
	return u.repo.ListByStatus(ctx, statuses...)
}

func (u *UnderwritingUseCase) GetPolicy(ctx context.Context, policyID string) (entities.Policy, error) {
	policyID = strings.TrimSpace(policyID)
	if policyID == "" {
		return entities.Policy{}, ErrPolicyNotFound
	}
	p, err := u.policies.GetByID(ctx, policyID)
	if err != nil {
		return entities.Policy{}, err
	}
	if p.ID == "" {
		return entities.Policy{}, ErrPolicyNotFound
	}
	return p, nil
}

func validateQuote(q *entities.Quote, now time.Time) error {
	if q == nil || q.ExpirationDate.IsZero() || !q.ExpirationDate.After(now) {
		return ErrInvalidQuote
	}
	if q.InsurancePremium.Amount <= 0 || q.PolicyLimit.Amount <= 0 {
		return ErrInvalidQuote
	}
	return nil
}
