package events

import (
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestQueueFor(t *testing.T) {
	cases := map[Kind]string{
		KindQuoteRequestSubmitted: QueueQuoteRequests,
		KindQuoteResponse:         QueueQuoteResponses,
		KindCustomerDecision:      QueueCustomerDecisions,
		KindQuoteExpired:          QueueQuoteExpired,
		KindPolicyCreated:         QueuePolicyCreated,
		KindRiskReport:            QueueRiskReports,
	}
	for kind, want := range cases {
		got, err := QueueFor(kind)
		if err != nil || got != want {
			t.Errorf("%s: expected %s, got %s %v", kind, want, got, err)
		}
	}
	if _, err := QueueFor("Unknown"); !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("expected ErrUnknownKind, got %v", err)
	}
}

func TestNewEnvelope(t *testing.T) {
	at := time.Date(2025, 1, 12, 10, 0, 0, 0, time.FixedZone("CET", 3600))
	env, err := NewEnvelope(KindCustomerDecision, "req-1", "cause-1", at, CustomerDecision{Date: at, RequestID: "req-1", Accepted: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if env.ID == "" || env.AggregateID != "req-1" || env.CausationID != "cause-1" {
		t.Fatalf("unexpected envelope %+v", env)
	}
	if env.OccurredAt.Location() != time.UTC || !env.OccurredAt.Equal(at) {
		t.Fatalf("expected UTC occurred_at, got %v", env.OccurredAt)
	}

	var raw map[string]any
	if err := json.Unmarshal(env.Payload, &raw); err != nil {
		t.Fatalf("payload is not json: %v", err)
	}
	for _, key := range []string{"date", "requestId", "accepted"} {
		if _, ok := raw[key]; !ok {
			t.Errorf("payload missing %q: %s", key, env.Payload)
		}
	}

	if _, err := NewEnvelope("Unknown", "req-1", "", at, nil); !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("expected ErrUnknownKind, got %v", err)
	}
}

func TestEnvelope_Decode(t *testing.T) {
	env := Envelope{ID: "e-1", Kind: KindQuoteExpired, Payload: json.RawMessage(`{"date":"2025-01-10T00:00:00Z","requestId":"req-1"}`)}
	var msg QuoteExpired
	if err := env.Decode(&msg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if msg.RequestID != "req-1" || !msg.Date.Equal(time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected payload %+v", msg)
	}

	env.Payload = json.RawMessage(`{"date":"yesterday"}`)
	if err := env.Decode(&msg); !errors.Is(err, ErrMalformed) {
		t.Fatalf("expected ErrMalformed, got %v", err)
	}
}

func TestQuoteResponse_RejectionOmitsTerms(t *testing.T) {
	raw, err := json.Marshal(QuoteResponse{RequestID: "req-1", Accepted: false})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var m map[string]any
	_ = json.Unmarshal(raw, &m)
	for _, key := range []string{"expirationDate", "premium", "policyLimit"} {
		if _, ok := m[key]; ok {
			t.Errorf("rejection must not carry %q", key)
		}
	}
}
