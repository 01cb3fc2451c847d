package messaging

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"

	"insurance_quotes/internal/domain/events"
	"insurance_quotes/internal/infrastructure/logger"
)

// Delivery is one message taken from a queue. DecodeErr is set when the raw
// message could not be turned into an envelope.
type Delivery struct {
	Queue     string
	MessageID string
	Envelope  events.Envelope
	DecodeErr error
}

// Inbox is the consuming side of the event channel.
type Inbox interface {
	EnsureGroup(ctx context.Context, queue string) error
	Receive(ctx context.Context, queues []string, count int64, block time.Duration) ([]Delivery, error)
	// Reclaim takes over messages delivered to any consumer of the group and
	// left unacknowledged for at least minIdle.
	Reclaim(ctx context.Context, queue string, minIdle time.Duration, count int64) ([]Delivery, error)
	Ack(ctx context.Context, queue, messageID string) error
}

// Observer receives one observation per handled delivery.
type Observer interface {
	RecordEventConsumed(kind, outcome string, took time.Duration)
}

// Delivery outcomes reported to the Observer.
const (
	OutcomeOK        = "ok"
	OutcomeRetry     = "retry"
	OutcomeMalformed = "malformed"
	OutcomeUnhandled = "unhandled"
)

type DispatcherConfig struct {
	Workers        int
	BatchSize      int64
	Block          time.Duration
	RedeliveryIdle time.Duration
}

// Dispatcher pulls deliveries from an Inbox and runs the registered handler
// for each one. Deliveries are sharded by aggregate id, so events for one
// aggregate are handled in order by a single worker while different
// aggregates run in parallel.
type Dispatcher struct {
	inbox    Inbox
	registry *Registry
	observer Observer
	log      *logger.Logger
	cfg      DispatcherConfig
}

func NewDispatcher(inbox Inbox, registry *Registry, observer Observer, baseLog *logger.Logger, cfg DispatcherConfig) *Dispatcher {
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	if cfg.BatchSize < 1 {
		cfg.BatchSize = 16
	}
	if cfg.Block <= 0 {
		cfg.Block = 2 * time.Second
	}
	if cfg.RedeliveryIdle <= 0 {
		cfg.RedeliveryIdle = 30 * time.Second
	}
	return &Dispatcher{
		inbox:    inbox,
		registry: registry,
		observer: observer,
		log:      baseLog.With("component", "EventDispatcher"),
		cfg:      cfg,
	}
}

// Run consumes until ctx is cancelled. It returns an error only when the
// consumer groups cannot be created.
func (d *Dispatcher) Run(ctx context.Context) error {
	queues := d.registry.Queues()
	if len(queues) == 0 {
		return errors.New("no handlers registered")
	}
	for _, q := range queues {
		if err := d.inbox.EnsureGroup(ctx, q); err != nil {
			return fmt.Errorf("ensure group on %s: %w", q, err)
		}
	}

	shards := make([]chan Delivery, d.cfg.Workers)
	var wg sync.WaitGroup
	for i := range shards {
		shards[i] = make(chan Delivery, d.cfg.BatchSize)
		wg.Add(1)
		go func(in <-chan Delivery) {
			defer wg.Done()
			for del := range in {
				d.handle(ctx, del)
			}
		}(shards[i])
	}
	defer func() {
		for _, s := range shards {
			close(s)
		}
		wg.Wait()
	}()

	d.log.Info("dispatcher started", "queues", queues, "workers", d.cfg.Workers)
	lastReclaim := time.Now()
	for ctx.Err() == nil {
		if time.Since(lastReclaim) >= d.cfg.RedeliveryIdle {
			d.reclaim(ctx, queues, shards)
			lastReclaim = time.Now()
		}

		batch, err := d.inbox.Receive(ctx, queues, d.cfg.BatchSize, d.cfg.Block)
		if err != nil {
			if ctx.Err() != nil {
				break
			}
			d.log.Warn("receive failed", "error", err)
			sleep(ctx, time.Second)
			continue
		}
		d.route(ctx, batch, shards)
	}
	d.log.Info("dispatcher stopping")
	return nil
}

func (d *Dispatcher) reclaim(ctx context.Context, queues []string, shards []chan Delivery) {
	for _, q := range queues {
		batch, err := d.inbox.Reclaim(ctx, q, d.cfg.RedeliveryIdle, d.cfg.BatchSize)
		if err != nil {
			d.log.Warn("reclaim failed", "queue", q, "error", err)
			continue
		}
		if len(batch) > 0 {
			d.log.Info("redelivering unacknowledged events", "queue", q, "count", len(batch))
		}
		d.route(ctx, batch, shards)
	}
}

func (d *Dispatcher) route(ctx context.Context, batch []Delivery, shards []chan Delivery) {
	for _, del := range batch {
		shard := shards[shardFor(del.Envelope.AggregateID, len(shards))]
		select {
		case shard <- del:
		case <-ctx.Done():
			return
		}
	}
}

func shardFor(aggregateID string, n int) int {
	return int(xxhash.Sum64String(aggregateID) % uint64(n))
}

func (d *Dispatcher) handle(ctx context.Context, del Delivery) {
	start := time.Now()
	env := del.Envelope
	log := d.log.With("queue", del.Queue, "message_id", del.MessageID, "event_kind", env.Kind, "event_id", env.ID, "request_id", env.AggregateID)

	outcome := OutcomeOK
	switch h, ok := d.registry.Get(env.Kind); {
	case del.DecodeErr != nil:
		log.Warn("dropping undecodable event", "error", del.DecodeErr)
		outcome = OutcomeMalformed
	case !ok:
		log.Warn("dropping event without handler")
		outcome = OutcomeUnhandled
	default:
		err := safeCall(ctx, h, env)
		switch {
		case err == nil:
		case errors.Is(err, events.ErrMalformed):
			log.Warn("dropping malformed event", "error", err)
			outcome = OutcomeMalformed
		default:
			log.Warn("event handling failed; left for redelivery", "error", err)
			outcome = OutcomeRetry
		}
	}

	if outcome != OutcomeRetry {
		if err := d.inbox.Ack(ctx, del.Queue, del.MessageID); err != nil {
			log.Warn("ack failed", "error", err)
		}
	}
	if d.observer != nil {
		d.observer.RecordEventConsumed(string(env.Kind), outcome, time.Since(start))
	}
}

func safeCall(ctx context.Context, h HandlerFunc, env events.Envelope) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("handler panic: %v", r)
		}
	}()
	return h(ctx, env)
}

func sleep(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
