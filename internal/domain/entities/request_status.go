package entities

import (
	"errors"
	"fmt"
)

// RequestStatus is a state of the quote request lifecycle.
//
// Statuses are ordered only by the transition graph below, never by value.
type RequestStatus string

const (
	RequestStatusSubmitted     RequestStatus = "REQUEST_SUBMITTED"
	RequestStatusRejected      RequestStatus = "REQUEST_REJECTED"
	RequestStatusQuoteReceived RequestStatus = "QUOTE_RECEIVED"
	RequestStatusQuoteAccepted RequestStatus = "QUOTE_ACCEPTED"
	RequestStatusQuoteRejected RequestStatus = "QUOTE_REJECTED"
	RequestStatusQuoteExpired  RequestStatus = "QUOTE_EXPIRED"
	RequestStatusPolicyCreated RequestStatus = "POLICY_CREATED"
)

var (
	ErrIllegalTransition = errors.New("illegal status transition")
	ErrUnknownStatus     = errors.New("unknown request status")
)

// TransitionError describes a rejected edge. It matches ErrIllegalTransition with errors.Is.
type TransitionError struct {
	From RequestStatus
	To   RequestStatus
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("illegal status transition %s -> %s", e.From, e.To)
}

func (e *TransitionError) Is(target error) bool {
	return target == ErrIllegalTransition
}

var transitions = map[RequestStatus][]RequestStatus{
	RequestStatusSubmitted:     {RequestStatusRejected, RequestStatusQuoteReceived},
	RequestStatusQuoteReceived: {RequestStatusQuoteAccepted, RequestStatusQuoteRejected, RequestStatusQuoteExpired},
	RequestStatusQuoteAccepted: {RequestStatusPolicyCreated, RequestStatusQuoteExpired},
	RequestStatusRejected:      {},
	RequestStatusPolicyCreated: {},
	RequestStatusQuoteRejected: {},
	RequestStatusQuoteExpired:  {},
}

// AllRequestStatuses lists every status in declaration order.
func AllRequestStatuses() []RequestStatus {
	return []RequestStatus{
		RequestStatusSubmitted,
		RequestStatusRejected,
		RequestStatusQuoteReceived,
		RequestStatusQuoteAccepted,
		RequestStatusQuoteRejected,
		RequestStatusQuoteExpired,
		RequestStatusPolicyCreated,
	}
}

func ParseRequestStatus(s string) (RequestStatus, error) {
	st := RequestStatus(s)
	if _, ok := transitions[st]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownStatus, s)
	}
	return st, nil
}

func (s RequestStatus) IsValid() bool {
	_, ok := transitions[s]
	return ok
}

// CanTransitionTo reports whether next is a legal successor of s.
func (s RequestStatus) CanTransitionTo(next RequestStatus) bool {
	for _, t := range transitions[s] {
		if t == next {
			return true
		}
	}
	return false
}

func (s RequestStatus) IsTerminal() bool {
	return s.IsValid() && len(transitions[s]) == 0
}

// StatusesReaching returns every status that has a legal edge into target.
func StatusesReaching(target RequestStatus) []RequestStatus {
	var out []RequestStatus
	for _, s := range AllRequestStatuses() {
		if s.CanTransitionTo(target) {
			out = append(out, s)
		}
	}
	return out
}
