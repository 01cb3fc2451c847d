package memory

import (
	"context"
	"sort"
	"sync"

	"insurance_quotes/internal/domain/entities"
	"insurance_quotes/internal/usecase/interfaces"
)

// QuoteRequestMemoryRepository keeps aggregates in process memory. It backs
// STORE_BACKEND=memory for local runs and the use case tests, and applies the
// same version check as the DynamoDB repository.
type QuoteRequestMemoryRepository struct {
	mu    sync.RWMutex
	items map[string]*entities.QuoteRequest
}

var _ interfaces.IQuoteRequestRepository = (*QuoteRequestMemoryRepository)(nil)

func NewQuoteRequestMemoryRepository() *QuoteRequestMemoryRepository {
	return &QuoteRequestMemoryRepository{items: make(map[string]*entities.QuoteRequest)}
}

func (r *QuoteRequestMemoryRepository) GetByID(_ context.Context, id string) (*entities.QuoteRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.items[id].Clone(), nil
}

func (r *QuoteRequestMemoryRepository) Save(_ context.Context, q *entities.QuoteRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.items[q.ID]
	switch {
	case !ok && q.Version != 0:
		return interfaces.ErrConcurrentModification
	case ok && stored.Version != q.Version:
		return interfaces.ErrConcurrentModification
	}
	q.Version++
	r.items[q.ID] = q.Clone()
	return nil
}

func (r *QuoteRequestMemoryRepository) ListByStatus(_ context.Context, statuses ...entities.RequestStatus) ([]*entities.QuoteRequest, error) {
	want := make(map[entities.RequestStatus]bool, len(statuses))
	for _, s := range statuses {
		want[s] = true
	}
	return r.list(func(q *entities.QuoteRequest) bool { return want[q.Status()] }), nil
}

func (r *QuoteRequestMemoryRepository) ListWithPendingEvents(_ context.Context) ([]*entities.QuoteRequest, error) {
	return r.list(func(q *entities.QuoteRequest) bool { return len(q.PendingEvents) > 0 }), nil
}

func (r *QuoteRequestMemoryRepository) list(match func(q *entities.QuoteRequest) bool) []*entities.QuoteRequest {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entities.QuoteRequest, 0)
	for _, q := range r.items {
		if match(q) {
			out = append(out, q.Clone())
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out
}
