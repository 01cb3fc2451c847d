package interfaces

import (
	"context"
	"errors"

	"insurance_quotes/internal/domain/events"
)

// ErrPublishFailure wraps event channel errors. It is transient.
var ErrPublishFailure = errors.New("event publish failed")

// IEventPublisher publishes an envelope to the queue of its kind.
type IEventPublisher interface {
	Publish(ctx context.Context, env events.Envelope) error
}
