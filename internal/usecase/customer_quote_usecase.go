package usecase

import (
	"context"
	"strings"
	"time"

	"insurance_quotes/internal/domain/entities"
	"insurance_quotes/internal/domain/events"
	"insurance_quotes/internal/infrastructure/logger"
	"insurance_quotes/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// ICustomerQuoteUseCase is what the customer-facing REST layer calls.
//
// Both mutating operations perform a local transition and publish the
// matching event. An ErrIllegalTransition returned from RecordDecision comes
// from a direct user call and is the REST layer's to translate.
type ICustomerQuoteUseCase interface {
	SubmitRequest(ctx context.Context, customer entities.CustomerInfo, options entities.InsuranceOptions) (*entities.QuoteRequest, error)
	RecordDecision(ctx context.Context, requestID string, accepted bool) (*entities.QuoteRequest, error)
	GetByID(ctx context.Context, id string) (*entities.QuoteRequest, error)
}

type CustomerQuoteUseCase struct {
	outbox
	now clock
}

var _ ICustomerQuoteUseCase = (*CustomerQuoteUseCase)(nil)

func NewCustomerQuoteUseCase(
	repo interfaces.IQuoteRequestRepository,
	publisher interfaces.IEventPublisher,
	locker interfaces.IAggregateLocker,
	log *logger.Logger,
) *CustomerQuoteUseCase {
	return &CustomerQuoteUseCase{
		outbox: outbox{repo: repo, publisher: publisher, locker: locker, log: log.With("component", "CustomerQuoteUseCase")},
		now:    utcNow,
	}
}

// WithClock replaces the wall clock, for tests.
func (u *CustomerQuoteUseCase) WithClock(now func() time.Time) *CustomerQuoteUseCase {
	u.now = now
	return u
}

func (u *CustomerQuoteUseCase) SubmitRequest(ctx context.Context, customer entities.CustomerInfo, options entities.InsuranceOptions) (*entities.QuoteRequest, error) {
	if err := validateCustomer(customer); err != nil {
		return nil, err
	}
	if err := validateOptions(options); err != nil {
		return nil, err
	}

	now := u.now()
	q := entities.SubmitQuoteRequest(uuid.NewString(), customer, options, now)
	env, err := events.NewEnvelope(events.KindQuoteRequestSubmitted, q.ID, "", now, events.QuoteRequestSubmitted{
		Date:             now,
		RequestID:        q.ID,
		CustomerInfo:     toEventCustomer(customer),
		InsuranceOptions: toEventOptions(options),
	})
	if err != nil {
		return nil, err
	}
	q.Enqueue(env)

	if err := u.repo.Save(ctx, q); err != nil {
		return nil, err
	}
	u.flushCommitted(ctx, q)
	u.log.Info("quote request submitted", "request_id", q.ID, "customer_id", customer.CustomerID)
	return q, nil
}

func (u *CustomerQuoteUseCase) RecordDecision(ctx context.Context, requestID string, accepted bool) (*entities.QuoteRequest, error) {
	requestID = strings.TrimSpace(requestID)
	if requestID == "" {
		return nil, ErrInvalidRequestID
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

		now := u.now()
		if accepted {
			err = q.AcceptQuote(now)
		} else {
			err = q.RejectQuote(now)
		}
		if err != nil {
			u.log.Info("decision refused", "request_id", requestID, "status", q.Status(), "accepted", accepted)
			return err
		}

		env, err := events.NewEnvelope(events.KindCustomerDecision, q.ID, "", now, events.CustomerDecision{
			Date:      now,
			RequestID: q.ID,
			Accepted:  accepted,
		})
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
	u.log.Info("customer decision recorded", "request_id", requestID, "accepted", accepted)
	return out, nil
}

func (u *CustomerQuoteUseCase) GetByID(ctx context.Context, id string) (*entities.QuoteRequest, error) {
	return getByID(ctx, u.repo, id)
}

func getByID(ctx context.Context, repo interfaces.IQuoteRequestRepository, id string) (*entities.QuoteRequest, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrInvalidRequestID
	}
	q, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, ErrQuoteRequestNotFound
	}
	return q, nil
}

func validateCustomer(c entities.CustomerInfo) error {
	if strings.TrimSpace(c.CustomerID) == "" || strings.TrimSpace(c.FirstName) == "" || strings.TrimSpace(c.LastName) == "" {
		return ErrInvalidCustomerInfo
	}
	return nil
}

func validateOptions(o entities.InsuranceOptions) error {
	if o.StartDate.IsZero() || strings.TrimSpace(o.InsuranceType) == "" || o.Deductible.Amount < 0 {
		return ErrInvalidOptions
	}
	return nil
}
