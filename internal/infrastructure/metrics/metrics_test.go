package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Record(t *testing.T) {
	m := New("policy-management")

	m.RecordEventConsumed("CustomerDecision", "ack", 10*time.Millisecond)
	m.RecordEventConsumed("CustomerDecision", "ack", 10*time.Millisecond)
	m.RecordReconciliation("late_accepted")
	m.RecordSweep(3, 1, time.Second)
	m.RecordOutboxRelayed(2)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.eventsConsumed.WithLabelValues("CustomerDecision", "ack")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.reconciliations.WithLabelValues("late_accepted")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.sweepRuns))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.quotesExpired))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.sweepFailures))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.outboxRelayed))
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.RecordEventConsumed("QuoteExpired", "nack", time.Millisecond)
		m.RecordReconciliation("stale")
		m.RecordSweep(0, 0, 0)
		m.RecordOutboxRelayed(1)
	})
	assert.NotNil(t, m.Handler())
}
