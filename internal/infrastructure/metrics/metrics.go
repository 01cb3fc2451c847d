package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics owns a private registry so several instances can coexist in tests.
// All methods are safe on a nil receiver.
type Metrics struct {
	registry *prometheus.Registry

	eventsConsumed  *prometheus.CounterVec
	handlerDuration *prometheus.HistogramVec
	reconciliations *prometheus.CounterVec
	sweepRuns       prometheus.Counter
	quotesExpired   prometheus.Counter
	sweepFailures   prometheus.Counter
	sweepDuration   prometheus.Histogram
	outboxRelayed   prometheus.Counter
}

func New(service string) *Metrics {
	labels := prometheus.Labels{"service": service}
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		eventsConsumed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "quotes_events_consumed_total",
			Help:        "Inbound events processed, by kind and outcome (ack, nack, dropped).",
			ConstLabels: labels,
		}, []string{"kind", "outcome"}),
		handlerDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "quotes_event_handler_duration_seconds",
			Help:        "Duration of inbound event handlers.",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"kind"}),
		reconciliations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "quotes_decision_reconciliations_total",
			Help:        "Customer decisions reconciled, by outcome.",
			ConstLabels: labels,
		}, []string{"outcome"}),
		sweepRuns: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "quotes_sweep_runs_total",
			Help:        "Expiration sweeps executed.",
			ConstLabels: labels,
		}),
		quotesExpired: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "quotes_expired_total",
			Help:        "Quotes transitioned to QUOTE_EXPIRED by the sweeper.",
			ConstLabels: labels,
		}),
		sweepFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "quotes_sweep_failures_total",
			Help:        "Aggregates the sweeper failed to expire; retried on the next run.",
			ConstLabels: labels,
		}),
		sweepDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:        "quotes_sweep_duration_seconds",
			Help:        "Duration of expiration sweeps.",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}),
		outboxRelayed: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "quotes_outbox_relayed_total",
			Help:        "Pending events published by the outbox relay.",
			ConstLabels: labels,
		}),
	}
	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.eventsConsumed,
		m.handlerDuration,
		m.reconciliations,
		m.sweepRuns,
		m.quotesExpired,
		m.sweepFailures,
		m.sweepDuration,
		m.outboxRelayed,
	)
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

func (m *Metrics) RecordEventConsumed(kind, outcome string, took time.Duration) {
	if m == nil {
		return
	}
	m.eventsConsumed.WithLabelValues(kind, outcome).Inc()
	m.handlerDuration.WithLabelValues(kind).Observe(took.Seconds())
}

func (m *Metrics) RecordReconciliation(outcome string) {
	if m == nil {
		return
	}
	m.reconciliations.WithLabelValues(outcome).Inc()
}

func (m *Metrics) RecordSweep(expired, failed int, took time.Duration) {
	if m == nil {
		return
	}
	m.sweepRuns.Inc()
	m.quotesExpired.Add(float64(expired))
	m.sweepFailures.Add(float64(failed))
	m.sweepDuration.Observe(took.Seconds())
}

func (m *Metrics) RecordOutboxRelayed(n int) {
	if m == nil {
		return
	}
	m.outboxRelayed.Add(float64(n))
}
