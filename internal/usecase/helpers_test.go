package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"insurance_quotes/internal/adapter/persistence/memory"
	"insurance_quotes/internal/domain/entities"
	"insurance_quotes/internal/domain/events"
	"insurance_quotes/internal/infrastructure/lock"
	"insurance_quotes/internal/infrastructure/logger"
	"insurance_quotes/internal/usecase/interfaces"
)

func day(d int) time.Time {
	return time.Date(2025, 1, d, 0, 0, 0, 0, time.UTC)
}

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func newClock(t time.Time) *fakeClock { return &fakeClock{t: t} }

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = t
}

// recordingPublisher keeps every published envelope. While fail is set every
// publish returns it.
type recordingPublisher struct {
	mu        sync.Mutex
	published []events.Envelope
	fail      error
}

func (p *recordingPublisher) Publish(_ context.Context, env events.Envelope) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.fail != nil {
		return p.fail
	}
	p.published = append(p.published, env)
	return nil
}

func (p *recordingPublisher) setFail(err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.fail = err
}

func (p *recordingPublisher) ofKind(kind events.Kind) []events.Envelope {
	p.mu.Lock()
	defer p.mu.Unlock()
	var out []events.Envelope
	for _, env := range p.published {
		if env.Kind == kind {
			out = append(out, env)
		}
	}
	return out
}

// failingSaves wraps a repository and fails Save for the listed ids.
type failingSaves struct {
	interfaces.IQuoteRequestRepository
	mu   sync.Mutex
	fail map[string]error
}

func (r *failingSaves) Save(ctx context.Context, q *entities.QuoteRequest) error {
	r.mu.Lock()
	err := r.fail[q.ID]
	r.mu.Unlock()
	if err != nil {
		return err
	}
	return r.IQuoteRequestRepository.Save(ctx, q)
}

func (r *failingSaves) heal(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.fail, id)
}

var errStoreDown = errors.New("store down")

func testCustomer() entities.CustomerInfo {
	return entities.CustomerInfo{
		CustomerID:     "c-1",
		FirstName:      "Max",
		LastName:       "Mustermann",
		ContactAddress: entities.Address{StreetAddress: "Main St 1", PostalCode: "8000", City: "Zurich"},
		BillingAddress: entities.Address{StreetAddress: "Main St 1", PostalCode: "8000", City: "Zurich"},
	}
}

func testOptions() entities.InsuranceOptions {
	return entities.InsuranceOptions{
		StartDate:     day(20),
		InsuranceType: "Home Content Plus",
		Deductible:    entities.MoneyAmount{Amount: 500, Currency: "CHF"},
	}
}

func testQuote(exp time.Time) entities.Quote {
	return entities.Quote{
		ExpirationDate:   exp,
		InsurancePremium: entities.MoneyAmount{Amount: 250, Currency: "CHF"},
		PolicyLimit:      entities.MoneyAmount{Amount: 100000, Currency: "CHF"},
	}
}

// seed stores a request that went through the given steps.
func seed(t *testing.T, repo interfaces.IQuoteRequestRepository, id string, steps ...func(q *entities.QuoteRequest) error) *entities.QuoteRequest {
	t.Helper()
	q := entities.SubmitQuoteRequest(id, testCustomer(), testOptions(), day(1))
	for _, step := range steps {
		if err := step(q); err != nil {
			t.Fatalf("seed %s: %v", id, err)
		}
	}
	if err := repo.Save(context.Background(), q); err != nil {
		t.Fatalf("seed %s: %v", id, err)
	}
	return q
}

func withQuote(exp time.Time) func(q *entities.QuoteRequest) error {
	return func(q *entities.QuoteRequest) error { return q.AcceptRequest(testQuote(exp), day(2)) }
}

func accepted(at time.Time) func(q *entities.QuoteRequest) error {
	return func(q *entities.QuoteRequest) error { return q.AcceptQuote(at) }
}

func mustGet(t *testing.T, repo interfaces.IQuoteRequestRepository, id string) *entities.QuoteRequest {
	t.Helper()
	q, err := repo.GetByID(context.Background(), id)
	if err != nil || q == nil {
		t.Fatalf("get %s: %v %v", id, q, err)
	}
	return q
}

func statusesOf(q *entities.QuoteRequest) []entities.RequestStatus {
	out := make([]entities.RequestStatus, 0, len(q.StatusHistory))
	for _, c := range q.StatusHistory {
		out = append(out, c.Status)
	}
	return out
}

func envelope(t *testing.T, kind events.Kind, id string, payload any) events.Envelope {
	t.Helper()
	env, err := events.NewEnvelope(kind, id, "", day(1), payload)
	if err != nil {
		t.Fatalf("envelope: %v", err)
	}
	return env
}

type underwritingFixture struct {
	repo      *memory.QuoteRequestMemoryRepository
	policies  *memory.PolicyMemoryRepository
	publisher *recordingPublisher
	clock     *fakeClock
	uc        *UnderwritingUseCase
}

func newUnderwritingFixture(now time.Time) *underwritingFixture {
	f := &underwritingFixture{
		repo:      memory.NewQuoteRequestMemoryRepository(),
		policies:  memory.NewPolicyMemoryRepository(),
		publisher: &recordingPublisher{},
		clock:     newClock(now),
	}
	f.uc = NewUnderwritingUseCase(f.repo, f.policies, f.publisher, lock.NewKeyedMutex(), nil, logger.NewNop()).WithClock(f.clock.Now)
	return f
}

type customerFixture struct {
	repo      *memory.QuoteRequestMemoryRepository
	publisher *recordingPublisher
	clock     *fakeClock
	uc        *CustomerQuoteUseCase
}

func newCustomerFixture(now time.Time) *customerFixture {
	f := &customerFixture{
		repo:      memory.NewQuoteRequestMemoryRepository(),
		publisher: &recordingPublisher{},
		clock:     newClock(now),
	}
	f.uc = NewCustomerQuoteUseCase(f.repo, f.publisher, lock.NewKeyedMutex(), logger.NewNop()).WithClock(f.clock.Now)
	return f
}
