package lock

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"insurance_quotes/internal/infrastructure/logger"
	"insurance_quotes/internal/usecase/interfaces"
)

// ErrLockAcquire is returned when the lock cannot be acquired.
var ErrLockAcquire = errors.New("failed to acquire aggregate lock")

const releaseScript = `
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
else
	return 0
end
`

const renewScript = `
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("pexpire", KEYS[1], ARGV[2])
else
	return 0
end
`

// RedisLocker serializes an aggregate across service instances with SET NX PX.
// The TTL bounds how long a crashed holder blocks others; a live holder renews
// it every third of the TTL until unlock.
type RedisLocker struct {
	client *goredis.Client
	prefix string
	ttl    time.Duration
	poll   time.Duration
	log    *logger.Logger
}

var _ interfaces.IAggregateLocker = (*RedisLocker)(nil)

func NewRedisLocker(client *goredis.Client, prefix string, ttl time.Duration, log *logger.Logger) *RedisLocker {
	return &RedisLocker{
		client: client,
		prefix: prefix,
		ttl:    ttl,
		poll:   50 * time.Millisecond,
		log:    log.With("component", "RedisLocker"),
	}
}

func (l *RedisLocker) Lock(ctx context.Context, key string) (func(), error) {
	lockKey := l.prefix + "lock:" + key
	val := uuid.NewString()

	ticker := time.NewTicker(l.poll)
	defer ticker.Stop()

	for {
		ok, err := l.client.SetNX(ctx, lockKey, val, l.ttl).Result()
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			return nil, fmt.Errorf("%w: %v", ErrLockAcquire, err)
		}
		if ok {
			return l.hold(lockKey, val), nil
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}

// hold starts renewing the lock and returns its release func. Release is safe
// to call more than once.
func (l *RedisLocker) hold(lockKey, val string) func() {
	stop := make(chan struct{})
	done := make(chan struct{})
	go l.keepAlive(lockKey, val, stop, done)

	var once sync.Once
	return func() {
		once.Do(func() {
			close(stop)
			<-done
			l.release(lockKey, val)
		})
	}
}

func (l *RedisLocker) keepAlive(lockKey, val string, stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)
	every := l.ttl / 3
	if every <= 0 {
		<-stop
		return
	}
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
		}
		ctx, cancel := context.WithTimeout(context.Background(), every)
		n, err := l.client.Eval(ctx, renewScript, []string{lockKey}, val, l.ttl.Milliseconds()).Int()
		cancel()
		switch {
		case err != nil:
			l.log.Warn("lock renewal failed", "key", lockKey, "error", err)
		case n == 0:
			l.log.Warn("aggregate lock lost while held; another holder may run concurrently", "key", lockKey, "ttl", l.ttl)
			return
		}
	}
}

func (l *RedisLocker) release(lockKey, val string) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	n, err := l.client.Eval(ctx, releaseScript, []string{lockKey}, val).Int()
	switch {
	case err != nil:
		l.log.Warn("lock release failed", "key", lockKey, "error", err)
	case n == 0:
		l.log.Warn("lock expired before release", "key", lockKey, "ttl", l.ttl)
	}
}
