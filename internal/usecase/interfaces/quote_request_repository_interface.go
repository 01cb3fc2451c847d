package interfaces

import (
	"context"
	"errors"

	"insurance_quotes/internal/domain/entities"
)

var (
	// ErrStoreUnavailable wraps any failure of the underlying store. It is transient.
	ErrStoreUnavailable = errors.New("entity store unavailable")
	// ErrConcurrentModification is returned by Save when the stored version moved on.
	ErrConcurrentModification = errors.New("quote request was modified concurrently")
)

// IQuoteRequestRepository abstracts persistence of QuoteRequest aggregates.
//
// The persisted record keeps the full ordered status history, not just the
// current status, because reconciliation pops the last entry.
//
// GetByID returns (nil, nil) when the request does not exist.
// Save compares q.Version with the stored version (0 means "must not exist"),
// writes the record with Version+1 and updates q.Version on success.
type IQuoteRequestRepository interface {
	GetByID(ctx context.Context, id string) (*entities.QuoteRequest, error)
	Save(ctx context.Context, q *entities.QuoteRequest) error
	ListByStatus(ctx context.Context, statuses ...entities.RequestStatus) ([]*entities.QuoteRequest, error)
	ListWithPendingEvents(ctx context.Context) ([]*entities.QuoteRequest, error)
}
