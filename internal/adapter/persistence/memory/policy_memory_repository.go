package memory

import (
	"context"
	"sync"

	"insurance_quotes/internal/domain/entities"
	"insurance_quotes/internal/usecase/interfaces"
)

type PolicyMemoryRepository struct {
	mu    sync.RWMutex
	items map[string]entities.Policy
}

var _ interfaces.IPolicyRepository = (*PolicyMemoryRepository)(nil)

func NewPolicyMemoryRepository() *PolicyMemoryRepository {
	return &PolicyMemoryRepository{items: make(map[string]entities.Policy)}
}

func (r *PolicyMemoryRepository) Save(_ context.Context, p entities.Policy) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[p.ID] = p
	return nil
}

func (r *PolicyMemoryRepository) GetByID(_ context.Context, id string) (entities.Policy, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.items[id], nil
}

func (r *PolicyMemoryRepository) GetByRequestID(_ context.Context, requestID string) (entities.Policy, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.items {
		if p.RequestID == requestID {
			return p, nil
		}
	}
	return entities.Policy{}, nil
}
