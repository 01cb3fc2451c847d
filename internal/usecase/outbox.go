package usecase

import (
	"context"
	"fmt"
	"time"

	"insurance_quotes/internal/domain/entities"
	"insurance_quotes/internal/infrastructure/logger"
	"insurance_quotes/internal/usecase/interfaces"
)

// outbox persists a transition together with the events it produced, then
// publishes them and clears them with a second save. A failed publish leaves
// the events stored on the aggregate; the next handler run or relay for that
// aggregate publishes them again. Consumers are idempotent, so a duplicate is
// harmless while a lost event is not.
type outbox struct {
	repo      interfaces.IQuoteRequestRepository
	publisher interfaces.IEventPublisher
	locker    interfaces.IAggregateLocker
	log       *logger.Logger
}

func (o *outbox) commit(ctx context.Context, q *entities.QuoteRequest) error {
	if err := o.repo.Save(ctx, q); err != nil {
		return err
	}
	return o.flush(ctx, q)
}

func (o *outbox) flush(ctx context.Context, q *entities.QuoteRequest) error {
	if len(q.PendingEvents) == 0 {
		return nil
	}
	for _, env := range q.PendingEvents {
		if err := o.publisher.Publish(ctx, env); err != nil {
			o.log.Warn("publish failed; events kept in outbox",
				"request_id", q.ID, "event_kind", env.Kind, "event_id", env.ID, "error", err)
			return fmt.Errorf("%w: %v", interfaces.ErrPublishFailure, err)
		}
		o.log.Debug("event published", "request_id", q.ID, "event_kind", env.Kind, "event_id", env.ID)
	}
	q.PendingEvents = nil
	return o.repo.Save(ctx, q)
}

// flushCommitted publishes after a user-triggered transition was stored. The
// transition stands even if publishing fails; the relay retries the events.
func (o *outbox) flushCommitted(ctx context.Context, q *entities.QuoteRequest) {
	if err := o.flush(ctx, q); err != nil {
		o.log.Warn("transition stored; events left for relay", "request_id", q.ID, "error", err)
	}
}

// withLock runs fn while holding the aggregate's lock.
func (o *outbox) withLock(ctx context.Context, id string, fn func() error) error {
	unlock, err := o.locker.Lock(ctx, id)
	if err != nil {
		return fmt.Errorf("lock %s: %w", id, err)
	}
	defer unlock()
	return fn()
}

// relayPending publishes the outbox of every aggregate that still has one.
func (o *outbox) relayPending(ctx context.Context) (int, error) {
	pending, err := o.repo.ListWithPendingEvents(ctx)
	if err != nil {
		return 0, err
	}
	relayed := 0
	for _, candidate := range pending {
		err := o.withLock(ctx, candidate.ID, func() error {
			q, err := o.repo.GetByID(ctx, candidate.ID)
			if err != nil || q == nil {
				return err
			}
			n := len(q.PendingEvents)
			if err := o.flush(ctx, q); err != nil {
				return err
			}
			relayed += n
			return nil
		})
		if err != nil {
			o.log.Warn("outbox relay failed", "request_id", candidate.ID, "error", err)
		}
	}
	return relayed, nil
}

type clock func() time.Time

func utcNow() time.Time { return time.Now().UTC() }
