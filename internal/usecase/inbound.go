package usecase

import (
	"fmt"
	"strings"
	"time"

	"insurance_quotes/internal/domain/events"
)

// inboundTarget resolves the aggregate an inbound event applies to. An event
// without a request id or a date can never be reconciled and is malformed:
// a zero date would sort before any recorded expiration.
func inboundTarget(env events.Envelope, requestID string, date time.Time) (string, error) {
	requestID = strings.TrimSpace(requestID)
	switch {
	case requestID == "":
		requestID = env.AggregateID
	case env.AggregateID != "" && env.AggregateID != requestID:
		return "", fmt.Errorf("%w: %s request_id=%s does not match aggregate_id=%s event_id=%s",
			events.ErrMalformed, env.Kind, requestID, env.AggregateID, env.ID)
	}
	if requestID == "" {
		return "", fmt.Errorf("%w: %s without request id event_id=%s", events.ErrMalformed, env.Kind, env.ID)
	}
	if date.IsZero() {
		return "", fmt.Errorf("%w: %s without date request_id=%s event_id=%s", events.ErrMalformed, env.Kind, requestID, env.ID)
	}
	return requestID, nil
}
