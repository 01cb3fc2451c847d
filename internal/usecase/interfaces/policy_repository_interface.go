package interfaces

import (
	"context"

	"insurance_quotes/internal/domain/entities"
)

// IPolicyRepository abstracts persistence of policies. Save is an upsert keyed by policy id.
// GetByID and GetByRequestID return a zero Policy when nothing is stored.
type IPolicyRepository interface {
	Save(ctx context.Context, p entities.Policy) error
	GetByID(ctx context.Context, id string) (entities.Policy, error)
	GetByRequestID(ctx context.Context, requestID string) (entities.Policy, error)
}
