package usecase

import (
	"context"
	"time"

	"insurance_quotes/internal/infrastructure/logger"
	"insurance_quotes/internal/usecase/interfaces"
)

// OutboxRelay republishes events left on aggregates after a failed publish.
// The policy service gets the same behaviour from its sweeper.
type OutboxRelay struct {
	outbox
	metrics  interfaces.IQuoteMetrics
	interval time.Duration
}

func NewOutboxRelay(
	repo interfaces.IQuoteRequestRepository,
	publisher interfaces.IEventPublisher,
	locker interfaces.IAggregateLocker,
	metrics interfaces.IQuoteMetrics,
	log *logger.Logger,
	interval time.Duration,
) *OutboxRelay {
	return &OutboxRelay{
		outbox:   outbox{repo: repo, publisher: publisher, locker: locker, log: log.With("component", "OutboxRelay")},
		metrics:  metrics,
		interval: interval,
	}
}

func (r *OutboxRelay) RunOnce(ctx context.Context) (int, error) {
	n, err := r.relayPending(ctx)
	if n > 0 {
		r.log.Info("outbox relayed", "events", n)
		if r.metrics != nil {
			r.metrics.RecordOutboxRelayed(n)
		}
	}
	return n, err
}

func (r *OutboxRelay) Start(ctx context.Context) error {
	runPeriodically(ctx, r.interval, r.interval, func(runCtx context.Context) {
		if _, err := r.RunOnce(runCtx); err != nil {
			r.log.Warn("outbox relay failed", "error", err)
		}
	})
	return nil
}

// runPeriodically calls fn after initialDelay and then every interval after the
// previous call returned. Each call gets a context bounded by interval.
func runPeriodically(ctx context.Context, initialDelay, interval time.Duration, fn func(ctx context.Context)) {
	timer := time.NewTimer(initialDelay)
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
			runCtx, cancel := context.WithTimeout(ctx, interval)
			fn(runCtx)
			cancel()
			timer.Reset(interval)
		}
	}
}
