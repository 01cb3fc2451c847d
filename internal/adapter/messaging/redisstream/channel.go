// Package redisstream implements the event channel on Redis Streams: one
// stream per queue, one consumer group per service.
package redisstream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"insurance_quotes/internal/adapter/messaging"
	"insurance_quotes/internal/domain/events"
	"insurance_quotes/internal/usecase/interfaces"
)

const envelopeField = "envelope"

type Channel struct {
	client   redis.UniversalClient
	group    string
	consumer string
	maxLen   int64
}

var (
	_ interfaces.IEventPublisher = (*Channel)(nil)
	_ messaging.Inbox            = (*Channel)(nil)
)

// NewChannel returns a channel consuming as consumer within group. maxLen
// caps each stream approximately; 0 leaves streams untrimmed.
func NewChannel(client redis.UniversalClient, group, consumer string, maxLen int64) *Channel {
	return &Channel{client: client, group: group, consumer: consumer, maxLen: maxLen}
}

func (c *Channel) Publish(ctx context.Context, env events.Envelope) error {
	queue, err := events.QueueFor(env.Kind)
	if err != nil {
		return err
	}
	raw, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("marshal envelope %s: %w", env.ID, err)
	}
	err = c.client.XAdd(ctx, &redis.XAddArgs{
		Stream: queue,
		MaxLen: c.maxLen,
		Approx: c.maxLen > 0,
		Values: map[string]any{envelopeField: string(raw)},
	}).Err()
	if err != nil {
		return fmt.Errorf("%w: xadd %s: %v", interfaces.ErrPublishFailure, queue, err)
	}
	return nil
}

// EnsureGroup creates the stream and the consumer group if missing. New
// groups start at the beginning of the stream so nothing published before
// the first start is lost.
func (c *Channel) EnsureGroup(ctx context.Context, queue string) error {
	err := c.client.XGroupCreateMkStream(ctx, queue, c.group, "0").Err()
	if err != nil && !strings.HasPrefix(err.Error(), "BUSYGROUP") {
		return err
	}
	return nil
}

// Receive reads new messages for this consumer. A non-positive block returns immediately.
func (c *Channel) Receive(ctx context.Context, queues []string, count int64, block time.Duration) ([]messaging.Delivery, error) {
	if block <= 0 {
		block = -1
	}
	streams := make([]string, 0, 2*len(queues))
	streams = append(streams, queues...)
	for range queues {
		streams = append(streams, ">")
	}

	res, err := c.client.XReadGroup(ctx, &redis.XReadGroupArgs{
		Group:    c.group,
		Consumer: c.consumer,
		Streams:  streams,
		Count:    count,
		Block:    block,
	}).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var out []messaging.Delivery
	for _, stream := range res {
		for _, msg := range stream.Messages {
			out = append(out, toDelivery(stream.Stream, msg))
		}
	}
	return out, nil
}

func (c *Channel) Reclaim(ctx context.Context, queue string, minIdle time.Duration, count int64) ([]messaging.Delivery, error) {
	msgs, _, err := c.client.XAutoClaim(ctx, &redis.XAutoClaimArgs{
		Stream:   queue,
		Group:    c.group,
		Consumer: c.consumer,
		MinIdle:  minIdle,
		Start:    "0-0",
		Count:    count,
	}).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	out := make([]messaging.Delivery, 0, len(msgs))
	for _, msg := range msgs {
		out = append(out, toDelivery(queue, msg))
	}
	return out, nil
}

func (c *Channel) Ack(ctx context.Context, queue, messageID string) error {
	return c.client.XAck(ctx, queue, c.group, messageID).Err()
}

func toDelivery(queue string, msg redis.XMessage) messaging.Delivery {
	del := messaging.Delivery{Queue: queue, MessageID: msg.ID}
	raw, ok := msg.Values[envelopeField].(string)
	if !ok {
		del.DecodeErr = fmt.Errorf("%w: message %s has no %q field", events.ErrMalformed, msg.ID, envelopeField)
		return del
	}
	if err := json.Unmarshal([]byte(raw), &del.Envelope); err != nil {
		del.DecodeErr = fmt.Errorf("%w: message %s: %v", events.ErrMalformed, msg.ID, err)
	}
	return del
}
