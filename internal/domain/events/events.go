// Package events defines the messages exchanged between the customer and policy services.
//
// Payload types are deliberately independent of the entities package: each
// service owns its own copy of customer and address value types, and only the
// wire shape below is shared.
package events

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Kind is the discriminator of an Envelope.
type Kind string

const (
	KindQuoteRequestSubmitted Kind = "QuoteRequestSubmitted"
	KindQuoteResponse         Kind = "QuoteResponse"
	KindCustomerDecision      Kind = "CustomerDecision"
	KindQuoteExpired          Kind = "QuoteExpired"
	KindPolicyCreated         Kind = "PolicyCreated"
	KindRiskReport            Kind = "RiskReport"
)

// Queue names. One durable queue per event kind.
const (
	QueueQuoteRequests     = "quote-requests"
	QueueQuoteResponses    = "quote-responses"
	QueueCustomerDecisions = "customer-decisions"
	QueueQuoteExpired      = "quote-expired"
	QueuePolicyCreated     = "policy-created"
	QueueRiskReports       = "risk-reports"
)

var (
	ErrUnknownKind = errors.New("unknown event kind")
	// ErrMalformed marks a message that can never be processed, however often it is redelivered.
	ErrMalformed = errors.New("malformed event")
)

var queues = map[Kind]string{
	KindQuoteRequestSubmitted: QueueQuoteRequests,
	KindQuoteResponse:         QueueQuoteResponses,
	KindCustomerDecision:      QueueCustomerDecisions,
	KindQuoteExpired:          QueueQuoteExpired,
	KindPolicyCreated:         QueuePolicyCreated,
	KindRiskReport:            QueueRiskReports,
}

// QueueFor returns the queue an event kind is published to.
func QueueFor(k Kind) (string, error) {
	q, ok := queues[k]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, k)
	}
	return q, nil
}

// Envelope wraps every payload on the wire.
//
// CausationID is the id of the inbound event that caused this one; it is
// empty for events triggered by a user action or by the sweeper.
type Envelope struct {
	ID          string          `json:"id"`
	Kind        Kind            `json:"kind"`
	AggregateID string          `json:"aggregate_id"`
	CausationID string          `json:"causation_id,omitempty"`
	OccurredAt  time.Time       `json:"occurred_at"`
	Payload     json.RawMessage `json:"payload"`
}

func NewEnvelope(kind Kind, aggregateID, causationID string, at time.Time, payload any) (Envelope, error) {
	if _, err := QueueFor(kind); err != nil {
		return Envelope{}, err
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return Envelope{}, fmt.Errorf("marshal %s payload: %w", kind, err)
	}
	return Envelope{
		ID:          uuid.NewString(),
		Kind:        kind,
		AggregateID: aggregateID,
		CausationID: causationID,
		OccurredAt:  at.UTC(),
		Payload:     raw,
	}, nil
}

// Decode unmarshals the payload into v.
func (e Envelope) Decode(v any) error {
	if err := json.Unmarshal(e.Payload, v); err != nil {
		return fmt.Errorf("%w: decode %s payload event_id=%s: %v", ErrMalformed, e.Kind, e.ID, err)
	}
	return nil
}

type Address struct {
	StreetAddress string `json:"streetAddress"`
	PostalCode    string `json:"postalCode"`
	City          string `json:"city"`
}

type CustomerInfo struct {
	CustomerID     string  `json:"customerId"`
	FirstName      string  `json:"firstname"`
	LastName       string  `json:"lastname"`
	ContactAddress Address `json:"contactAddress"`
	BillingAddress Address `json:"billingAddress"`
}

type MoneyAmount struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

type InsuranceOptions struct {
	StartDate     time.Time   `json:"startDate"`
	InsuranceType string      `json:"insuranceType"`
	Deductible    MoneyAmount `json:"deductible"`
}

type QuoteRequestSubmitted struct {
	Date             time.Time        `json:"date"`
	RequestID        string           `json:"requestId"`
	CustomerInfo     CustomerInfo     `json:"customerInfo"`
	InsuranceOptions InsuranceOptions `json:"insuranceOptions"`
}

type QuoteResponse struct {
	Date           time.Time    `json:"date"`
	RequestID      string       `json:"requestId"`
	Accepted       bool         `json:"accepted"`
	ExpirationDate *time.Time   `json:"expirationDate,omitempty"`
	Premium        *MoneyAmount `json:"premium,omitempty"`
	PolicyLimit    *MoneyAmount `json:"policyLimit,omitempty"`
}

type CustomerDecision struct {
	Date      time.Time `json:"date"`
	RequestID string    `json:"requestId"`
	Accepted  bool      `json:"accepted"`
}

type QuoteExpired struct {
	Date      time.Time `json:"date"`
	RequestID string    `json:"requestId"`
}

type PolicyCreated struct {
	Date      time.Time `json:"date"`
	RequestID string    `json:"requestId"`
	PolicyID  string    `json:"policyId"`
}

// RiskReport notifies the risk-reporting collaborator of a new policy.
type RiskReport struct {
	Date        time.Time   `json:"date"`
	RequestID   string      `json:"requestId"`
	PolicyID    string      `json:"policyId"`
	CustomerID  string      `json:"customerId"`
	Premium     MoneyAmount `json:"premium"`
	PolicyLimit MoneyAmount `json:"policyLimit"`
}
