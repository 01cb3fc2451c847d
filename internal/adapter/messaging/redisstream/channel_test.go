package redisstream

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"insurance_quotes/internal/domain/events"
	"insurance_quotes/internal/usecase/interfaces"
)

func newTestChannel(t *testing.T, consumer string) (*Channel, *miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewChannel(client, "policy-management", consumer, 0), mr, client
}

func TestChannel_PublishReceiveAck(t *testing.T) {
	ctx := context.Background()
	ch, _, client := newTestChannel(t, "worker-1")

	require.NoError(t, ch.EnsureGroup(ctx, events.QueueCustomerDecisions))
	require.NoError(t, ch.EnsureGroup(ctx, events.QueueCustomerDecisions), "existing group is not an error")

	env, err := events.NewEnvelope(events.KindCustomerDecision, "req-1", "", time.Now(), events.CustomerDecision{RequestID: "req-1", Accepted: true})
	require.NoError(t, err)
	require.NoError(t, ch.Publish(ctx, env))

	got, err := ch.Receive(ctx, []string{events.QueueCustomerDecisions}, 10, 0)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.NoError(t, got[0].DecodeErr)
	assert.Equal(t, events.QueueCustomerDecisions, got[0].Queue)
	assert.Equal(t, env.ID, got[0].Envelope.ID)
	assert.Equal(t, "req-1", got[0].Envelope.AggregateID)

	var decision events.CustomerDecision
	require.NoError(t, got[0].Envelope.Decode(&decision))
	assert.True(t, decision.Accepted)

	again, err := ch.Receive(ctx, []string{events.QueueCustomerDecisions}, 10, 0)
	require.NoError(t, err)
	assert.Empty(t, again)

	require.NoError(t, ch.Ack(ctx, got[0].Queue, got[0].MessageID))
	pending, err := client.XPending(ctx, events.QueueCustomerDecisions, "policy-management").Result()
	require.NoError(t, err)
	assert.Zero(t, pending.Count)
}

func TestChannel_ReclaimUnacked(t *testing.T) {
	ctx := context.Background()
	first, mr, _ := newTestChannel(t, "worker-1")
	other := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = other.Close() })
	second := NewChannel(other, "policy-management", "worker-2", 0)

	require.NoError(t, first.EnsureGroup(ctx, events.QueueQuoteRequests))
	env, err := events.NewEnvelope(events.KindQuoteRequestSubmitted, "req-9", "", time.Now(), events.QuoteRequestSubmitted{RequestID: "req-9"})
	require.NoError(t, err)
	require.NoError(t, first.Publish(ctx, env))

	got, err := first.Receive(ctx, []string{events.QueueQuoteRequests}, 10, 0)
	require.NoError(t, err)
	require.Len(t, got, 1)

	reclaimed, err := second.Reclaim(ctx, events.QueueQuoteRequests, 0, 10)
	require.NoError(t, err)
	require.Len(t, reclaimed, 1)
	assert.Equal(t, got[0].MessageID, reclaimed[0].MessageID)
	assert.Equal(t, env.ID, reclaimed[0].Envelope.ID)
}

func TestChannel_UndecodableMessage(t *testing.T) {
	ctx := context.Background()
	ch, _, client := newTestChannel(t, "worker-1")
	require.NoError(t, ch.EnsureGroup(ctx, events.QueueQuoteExpired))

	require.NoError(t, client.XAdd(ctx, &redis.XAddArgs{Stream: events.QueueQuoteExpired, Values: map[string]any{"other": "x"}}).Err())
	require.NoError(t, client.XAdd(ctx, &redis.XAddArgs{Stream: events.QueueQuoteExpired, Values: map[string]any{envelopeField: "{oops"}}).Err())

	got, err := ch.Receive(ctx, []string{events.QueueQuoteExpired}, 10, 0)
	require.NoError(t, err)
	require.Len(t, got, 2)
	for _, d := range got {
		assert.ErrorIs(t, d.DecodeErr, events.ErrMalformed)
	}
}

func TestChannel_PublishFailure(t *testing.T) {
	ctx := context.Background()
	ch, mr, _ := newTestChannel(t, "worker-1")
	mr.Close()

	env, err := events.NewEnvelope(events.KindPolicyCreated, "req-1", "", time.Now(), events.PolicyCreated{RequestID: "req-1"})
	require.NoError(t, err)
	assert.ErrorIs(t, ch.Publish(ctx, env), interfaces.ErrPublishFailure)

	assert.ErrorIs(t, ch.Publish(ctx, events.Envelope{Kind: "Nope"}), events.ErrUnknownKind)
}
