package usecase

import (
	"context"
	"time"

	"insurance_quotes/internal/domain/entities"
	"insurance_quotes/internal/domain/events"
	"insurance_quotes/internal/infrastructure/logger"
	"insurance_quotes/internal/usecase/interfaces"
)

// SweepReport summarizes one sweeper run.
type SweepReport struct {
	StartedAt  time.Time
	Candidates int
	Expired    int
	Skipped    int
	Failed     int
	Relayed    int
	Took       time.Duration
}

// ExpirationSweeper force-expires quotes whose price guarantee has lapsed and
// publishes one QuoteExpired per aggregate.
//
// Each aggregate is handled under the same per-aggregate lock as the event
// workers and is re-read before mutation. A failure on one aggregate is
// logged and left for the next run; it never stops the rest of the sweep.
type ExpirationSweeper struct {
	outbox
	metrics      interfaces.IQuoteMetrics
	interval     time.Duration
	initialDelay time.Duration
	now          clock
}

func NewExpirationSweeper(
	repo interfaces.IQuoteRequestRepository,
	publisher interfaces.IEventPublisher,
	locker interfaces.IAggregateLocker,
	metrics interfaces.IQuoteMetrics,
	log *logger.Logger,
	interval, initialDelay time.Duration,
) *ExpirationSweeper {
	return &ExpirationSweeper{
		outbox:       outbox{repo: repo, publisher: publisher, locker: locker, log: log.With("component", "ExpirationSweeper")},
		metrics:      metrics,
		interval:     interval,
		initialDelay: initialDelay,
		now:          utcNow,
	}
}

// WithClock replaces the wall clock, for tests.
func (s *ExpirationSweeper) WithClock(now func() time.Time) *ExpirationSweeper {
	s.now = now
	return s
}

// Start runs the sweep until ctx is done. Runs never overlap: the next one is
// scheduled only after the previous one returned, and each run is bounded by
// the interval.
func (s *ExpirationSweeper) Start(ctx context.Context) error {
	s.log.Info("expiration sweeper started", "interval", s.interval, "initial_delay", s.initialDelay)
	runPeriodically(ctx, s.initialDelay, s.interval, func(runCtx context.Context) {
		s.RunOnce(runCtx)
	})
	s.log.Info("expiration sweeper stopped")
	return nil
}

func (s *ExpirationSweeper) RunOnce(ctx context.Context) SweepReport {
	report := SweepReport{StartedAt: s.now()}
	started := time.Now()
	defer func() {
		report.Took = time.Since(started)
		if s.metrics != nil {
			s.metrics.RecordSweep(report.Expired, report.Failed, report.Took)
		}
	}()

	relayed, err := s.relayPending(ctx)
	if err != nil {
		s.log.Warn("outbox relay listing failed", "error", err)
	}
	report.Relayed = relayed
	if relayed > 0 && s.metrics != nil {
		s.metrics.RecordOutboxRelayed(relayed)
	}

	candidates, err := s.repo.ListByStatus(ctx, entities.StatusesReaching(entities.RequestStatusQuoteExpired)...)
	if err != nil {
		s.log.Error("sweep listing failed; retrying next run", "error", err)
		report.Failed++
		return report
	}

	for _, c := range candidates {
		if !c.HasQuoteExpired(report.StartedAt) {
			continue
		}
		report.Candidates++
		expired, err := s.expire(ctx, c.ID, report.StartedAt)
		switch {
		case err != nil:
			report.Failed++
			s.log.Warn("expiring quote failed; retrying next run", "request_id", c.ID, "error", err)
		case expired:
			report.Expired++
		default:
			report.Skipped++
		}
	}

	s.log.Info("sweep finished",
		"swept_at", report.StartedAt,
		"candidates", report.Candidates,
		"expired", report.Expired,
		"skipped", report.Skipped,
		"failed", report.Failed,
		"relayed", report.Relayed,
	)
	return report
}

// expire re-reads the aggregate under its lock, since a decision may have
// moved it on since the listing.
func (s *ExpirationSweeper) expire(ctx context.Context, id string, now time.Time) (bool, error) {
	expired := false
	err := s.withLock(ctx, id, func() error {
		q, err := s.repo.GetByID(ctx, id)
		if err != nil || q == nil {
			return err
		}
		if !q.Status().CanTransitionTo(entities.RequestStatusQuoteExpired) || !q.HasQuoteExpired(now) {
			return nil
		}
		if err := s.flush(ctx, q); err != nil {
			return err
		}

		// The entry is stamped with the moment the price guarantee lapsed, not the sweep time.
		expiredAt := q.Quote.ExpirationDate
		if err := q.MarkExpired(expiredAt); err != nil {
			return err
		}
		env, err := events.NewEnvelope(events.KindQuoteExpired, q.ID, "", now, events.QuoteExpired{
			Date:      expiredAt,
			RequestID: q.ID,
		})
		if err != nil {
			return err
		}
		q.Enqueue(env)
		if err := s.repo.Save(ctx, q); err != nil {
			return err
		}
		expired = true
		// Publishing failures leave the event in the outbox; the next run relays it.
		if err := s.flush(ctx, q); err != nil {
			s.log.Warn("quote expired; notification left for relay", "request_id", q.ID, "error", err)
		}
		return nil
	})
	return expired, err
}
