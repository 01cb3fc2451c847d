package interfaces

import "context"

// IAggregateLocker serializes work on one aggregate id across event workers and the sweeper.
type IAggregateLocker interface {
	Lock(ctx context.Context, aggregateID string) (unlock func(), err error)
}
