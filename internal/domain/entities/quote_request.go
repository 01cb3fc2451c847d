package entities

import (
	"errors"
	"fmt"
	"time"

	"insurance_quotes/internal/domain/events"
)

var (
	ErrEmptyHistory = errors.New("status history would become empty")
	ErrQuoteMissing = errors.New("quote request has no quote")
)

// Address, CustomerInfo and InsuranceOptions are snapshots taken when the request is submitted.
// They are never rewritten afterwards.

type Address struct {
	StreetAddress string `json:"street_address"`
	PostalCode    string `json:"postal_code"`
	City          string `json:"city"`
}

type CustomerInfo struct {
	CustomerID     string  `json:"customer_id"`
	FirstName      string  `json:"first_name"`
	LastName       string  `json:"last_name"`
	ContactAddress Address `json:"contact_address"`
	BillingAddress Address `json:"billing_address"`
}

type MoneyAmount struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

type InsuranceOptions struct {
	StartDate     time.Time   `json:"start_date"`
	InsuranceType string      `json:"insurance_type"`
	Deductible    MoneyAmount `json:"deductible"`
}

// Quote is the underwriter's offer. ExpirationDate bounds the price guarantee.
type Quote struct {
	ExpirationDate   time.Time   `json:"expiration_date"`
	InsurancePremium MoneyAmount `json:"insurance_premium"`
	PolicyLimit      MoneyAmount `json:"policy_limit"`
}

type StatusChange struct {
	Date   time.Time     `json:"date"`
	Status RequestStatus `json:"status"`
}

// QuoteRequest is the aggregate owning one request's status history.
//
// Invariants:
//   - StatusHistory is never empty; its last entry is the current status.
//   - Quote is set iff the history passed through QUOTE_RECEIVED.
//   - PolicyID is set iff the current status is POLICY_CREATED.
//
// Version and PendingEvents are persistence bookkeeping: Version backs the
// compare-and-swap on save, PendingEvents is the outbox written together
// with the transition that produced it.
type QuoteRequest struct {
	ID            string           `json:"id"`
	CreatedAt     time.Time        `json:"created_at"`
	StatusHistory []StatusChange   `json:"status_history"`
	Customer      CustomerInfo     `json:"customer"`
	Options       InsuranceOptions `json:"options"`
	Quote         *Quote           `json:"quote,omitempty"`
	PolicyID      string           `json:"policy_id,omitempty"`

	Version       int64             `json:"version"`
	PendingEvents []events.Envelope `json:"pending_events,omitempty"`
}

// SubmitQuoteRequest creates a request in REQUEST_SUBMITTED.
func SubmitQuoteRequest(id string, customer CustomerInfo, options InsuranceOptions, at time.Time) *QuoteRequest {
	return &QuoteRequest{
		ID:            id,
		CreatedAt:     at,
		StatusHistory: []StatusChange{{Date: at, Status: RequestStatusSubmitted}},
		Customer:      customer,
		Options:       options,
	}
}

func (q *QuoteRequest) Status() RequestStatus {
	if len(q.StatusHistory) == 0 {
		return ""
	}
	return q.StatusHistory[len(q.StatusHistory)-1].Status
}

func (q *QuoteRequest) transition(to RequestStatus, at time.Time) error {
	from := q.Status()
	if !from.CanTransitionTo(to) {
		return &TransitionError{From: from, To: to}
	}
	q.StatusHistory = append(q.StatusHistory, StatusChange{Date: at, Status: to})
	return nil
}

func (q *QuoteRequest) AcceptRequest(quote Quote, at time.Time) error {
	if err := q.transition(RequestStatusQuoteReceived, at); err != nil {
		return err
	}
	q.Quote = &quote
	return nil
}

func (q *QuoteRequest) RejectRequest(at time.Time) error {
	return q.transition(RequestStatusRejected, at)
}

func (q *QuoteRequest) AcceptQuote(at time.Time) error {
	return q.transition(RequestStatusQuoteAccepted, at)
}

func (q *QuoteRequest) RejectQuote(at time.Time) error {
	return q.transition(RequestStatusQuoteRejected, at)
}

// MarkExpired is legal only from QUOTE_RECEIVED or QUOTE_ACCEPTED.
func (q *QuoteRequest) MarkExpired(at time.Time) error {
	return q.transition(RequestStatusQuoteExpired, at)
}

func (q *QuoteRequest) FinalizeWithPolicy(policyID string, at time.Time) error {
	if err := q.transition(RequestStatusPolicyCreated, at); err != nil {
		return err
	}
	q.PolicyID = policyID
	return nil
}

// PopLastStatus removes the most recent history entry. Only reconciliation uses it.
func (q *QuoteRequest) PopLastStatus() (StatusChange, error) {
	if len(q.StatusHistory) <= 1 {
		return StatusChange{}, ErrEmptyHistory
	}
	last := q.StatusHistory[len(q.StatusHistory)-1]
	q.StatusHistory = q.StatusHistory[:len(q.StatusHistory)-1]
	switch last.Status {
	case RequestStatusQuoteReceived:
		q.Quote = nil
	case RequestStatusPolicyCreated:
		q.PolicyID = ""
	}
	return last, nil
}

// HasQuoteExpired reports whether a quote exists and asOf is at or after its expiration.
func (q *QuoteRequest) HasQuoteExpired(asOf time.Time) bool {
	return q.Quote != nil && !asOf.Before(q.Quote.ExpirationDate)
}

// ValidateHistory checks that every consecutive pair of the history is a legal edge.
func (q *QuoteRequest) ValidateHistory() error {
	if len(q.StatusHistory) == 0 {
		return ErrEmptyHistory
	}
	if q.StatusHistory[0].Status != RequestStatusSubmitted {
		return fmt.Errorf("history of %s starts with %s", q.ID, q.StatusHistory[0].Status)
	}
	for i := 1; i < len(q.StatusHistory); i++ {
		from, to := q.StatusHistory[i-1].Status, q.StatusHistory[i].Status
		if !from.CanTransitionTo(to) {
			return &TransitionError{From: from, To: to}
		}
	}
	return nil
}

func (q *QuoteRequest) Enqueue(evts ...events.Envelope) {
	q.PendingEvents = append(q.PendingEvents, evts...)
}

// Clone returns a deep copy, so stores never share history slices with callers.
func (q *QuoteRequest) Clone() *QuoteRequest {
	if q == nil {
		return nil
	}
	c := *q
	c.StatusHistory = append([]StatusChange(nil), q.StatusHistory...)
	if q.Quote != nil {
		quote := *q.Quote
		c.Quote = &quote
	}
	if q.PendingEvents != nil {
		c.PendingEvents = append([]events.Envelope(nil), q.PendingEvents...)
	}
	return &c
}
