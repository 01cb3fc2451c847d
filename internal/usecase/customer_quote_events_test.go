package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"insurance_quotes/internal/domain/entities"
	"insurance_quotes/internal/domain/events"
)

func quoteResponse(t *testing.T, id string, accepted bool) events.Envelope {
	t.Helper()
	msg := events.QuoteResponse{Date: day(2), RequestID: id, Accepted: accepted}
	if accepted {
		exp := day(10)
		premium := events.MoneyAmount{Amount: 250, Currency: "CHF"}
		limit := events.MoneyAmount{Amount: 100000, Currency: "CHF"}
		msg.ExpirationDate, msg.Premium, msg.PolicyLimit = &exp, &premium, &limit
	}
	return envelope(t, events.KindQuoteResponse, id, msg)
}

func TestCustomerQuoteUseCase_HandleQuoteResponse(t *testing.T) {
	t.Run("accepted response stores the quote", func(t *testing.T) {
		f := newCustomerFixture(day(2))
		seed(t, f.repo, "req-1")

		if err := f.uc.HandleQuoteResponse(context.Background(), quoteResponse(t, "req-1", true)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		q := mustGet(t, f.repo, "req-1")
		if q.Status() != entities.RequestStatusQuoteReceived || q.Quote == nil || q.Quote.InsurancePremium.Amount != 250 {
			t.Fatalf("unexpected state %s quote=%v", q.Status(), q.Quote)
		}
	})

	t.Run("rejected response", func(t *testing.T) {
		f := newCustomerFixture(day(2))
		seed(t, f.repo, "req-1")

		if err := f.uc.HandleQuoteResponse(context.Background(), quoteResponse(t, "req-1", false)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := mustGet(t, f.repo, "req-1").Status(); got != entities.RequestStatusRejected {
			t.Fatalf("expected REQUEST_REJECTED, got %s", got)
		}
	})

	t.Run("redelivery is a no-op", func(t *testing.T) {
		f := newCustomerFixture(day(2))
		seed(t, f.repo, "req-1")
		env := quoteResponse(t, "req-1", true)

		for i := 0; i < 2; i++ {
			if err := f.uc.HandleQuoteResponse(context.Background(), env); err != nil {
				t.Fatalf("delivery %d: %v", i, err)
			}
		}
		if n := len(mustGet(t, f.repo, "req-1").StatusHistory); n != 2 {
			t.Fatalf("expected two history entries, got %d", n)
		}
	})

	t.Run("accepted response without terms is malformed", func(t *testing.T) {
		f := newCustomerFixture(day(2))
		seed(t, f.repo, "req-1")
		env := envelope(t, events.KindQuoteResponse, "req-1", events.QuoteResponse{Date: day(2), RequestID: "req-1", Accepted: true})

		if err := f.uc.HandleQuoteResponse(context.Background(), env); !errors.Is(err, events.ErrMalformed) {
			t.Fatalf("expected ErrMalformed, got %v", err)
		}
	})

	t.Run("undecodable payload", func(t *testing.T) {
		f := newCustomerFixture(day(2))
		env := events.Envelope{ID: "e", Kind: events.KindQuoteResponse, Payload: json.RawMessage(`[]`)}
		if err := f.uc.HandleQuoteResponse(context.Background(), env); !errors.Is(err, events.ErrMalformed) {
			t.Fatalf("expected ErrMalformed, got %v", err)
		}
	})

	t.Run("unknown request is dropped", func(t *testing.T) {
		f := newCustomerFixture(day(2))
		if err := f.uc.HandleQuoteResponse(context.Background(), quoteResponse(t, "ghost", true)); err != nil {
			t.Fatalf("expected nil, got %v", err)
		}
	})

	t.Run("store failure is returned for redelivery", func(t *testing.T) {
		f := newCustomerFixture(day(2))
		seed(t, f.repo, "req-1")
		repo := &failingSaves{IQuoteRequestRepository: f.repo, fail: map[string]error{"req-1": errStoreDown}}
		uc := NewCustomerQuoteUseCase(repo, f.publisher, nopLocker{}, f.uc.log)

		if err := uc.HandleQuoteResponse(context.Background(), quoteResponse(t, "req-1", true)); !errors.Is(err, errStoreDown) {
			t.Fatalf("expected store error, got %v", err)
		}
		if got := mustGet(t, f.repo, "req-1").Status(); got != entities.RequestStatusSubmitted {
			t.Fatalf("nothing may be stored, got %s", got)
		}
	})
}

func TestCustomerQuoteUseCase_HandleQuoteExpired(t *testing.T) {
	f := newCustomerFixture(day(11))
	seed(t, f.repo, "req-1", withQuote(day(10)))
	env := envelope(t, events.KindQuoteExpired, "req-1", events.QuoteExpired{Date: day(10), RequestID: "req-1"})

	for i := 0; i < 2; i++ {
		if err := f.uc.HandleQuoteExpired(context.Background(), env); err != nil {
			t.Fatalf("delivery %d: %v", i, err)
		}
	}
	q := mustGet(t, f.repo, "req-1")
	last := q.StatusHistory[len(q.StatusHistory)-1]
	if last.Status != entities.RequestStatusQuoteExpired || !last.Date.Equal(day(10)) || len(q.StatusHistory) != 3 {
		t.Fatalf("expected a single EXPIRED(10) entry, got %v", statusesOf(q))
	}
}

func TestCustomerQuoteUseCase_HandlePolicyCreated(t *testing.T) {
	policyCreated := func(t *testing.T) events.Envelope {
		return envelope(t, events.KindPolicyCreated, "req-1", events.PolicyCreated{Date: day(6), RequestID: "req-1", PolicyID: "pol-1"})
	}

	t.Run("finalizes an accepted request", func(t *testing.T) {
		f := newCustomerFixture(day(6))
		seed(t, f.repo, "req-1", withQuote(day(10)), accepted(day(5)))

		if err := f.uc.HandlePolicyCreated(context.Background(), policyCreated(t)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		q := mustGet(t, f.repo, "req-1")
		if q.Status() != entities.RequestStatusPolicyCreated || q.PolicyID != "pol-1" {
			t.Fatalf("unexpected state %s policy=%q", q.Status(), q.PolicyID)
		}
	})

	t.Run("supersedes an expiration recorded after acceptance", func(t *testing.T) {
		f := newCustomerFixture(day(11))
		seed(t, f.repo, "req-1", withQuote(day(10)), accepted(day(9)), func(q *entities.QuoteRequest) error { return q.MarkExpired(day(10)) })

		if err := f.uc.HandlePolicyCreated(context.Background(), policyCreated(t)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := []entities.RequestStatus{entities.RequestStatusSubmitted, entities.RequestStatusQuoteReceived, entities.RequestStatusQuoteAccepted, entities.RequestStatusPolicyCreated}
		if got := statusesOf(mustGet(t, f.repo, "req-1")); !equalStatuses(got, want) {
			t.Fatalf("expected %v, got %v", want, got)
		}
	})

	t.Run("ignored on an expired quote never accepted", func(t *testing.T) {
		f := newCustomerFixture(day(11))
		seed(t, f.repo, "req-1", withQuote(day(10)), func(q *entities.QuoteRequest) error { return q.MarkExpired(day(10)) })

		if err := f.uc.HandlePolicyCreated(context.Background(), policyCreated(t)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := mustGet(t, f.repo, "req-1").Status(); got != entities.RequestStatusQuoteExpired {
			t.Fatalf("expected QUOTE_EXPIRED to stand, got %s", got)
		}
	})

	t.Run("missing policy id is malformed", func(t *testing.T) {
		f := newCustomerFixture(day(6))
		env := envelope(t, events.KindPolicyCreated, "req-1", events.PolicyCreated{Date: day(6), RequestID: "req-1"})
		if err := f.uc.HandlePolicyCreated(context.Background(), env); !errors.Is(err, events.ErrMalformed) {
			t.Fatalf("expected ErrMalformed, got %v", err)
		}
	})
}

type nopLocker struct{}

func (nopLocker) Lock(context.Context, string) (func(), error) { return func() {}, nil }

func equalStatuses(a, b []entities.RequestStatus) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
