package entities

import (
	"time"

	"github.com/google/uuid"
)

// policyNamespace scopes policy ids derived from request ids.
var policyNamespace = uuid.MustParse("6f1c3b1e-2f4a-4d8e-9a57-0c4f5b2d7e91")

// Policy is created by the policy service when a quote is accepted in time.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (request_id-index): request_id
type Policy struct {
	ID               string      `json:"id"`
	RequestID        string      `json:"request_id"`
	CustomerID       string      `json:"customer_id"`
	StartDate        time.Time   `json:"start_date"`
	InsuranceType    string      `json:"insurance_type"`
	Deductible       MoneyAmount `json:"deductible"`
	InsurancePremium MoneyAmount `json:"insurance_premium"`
	PolicyLimit      MoneyAmount `json:"policy_limit"`
	CreatedAt        time.Time   `json:"created_at"`
}

// PolicyIDForRequest derives the policy id from the request id, so retrying a
// creation writes the same record instead of a second policy.
func PolicyIDForRequest(requestID string) string {
	return uuid.NewSHA1(policyNamespace, []byte(requestID)).String()
}

// NewPolicyFromRequest builds the policy for an accepted request.
func NewPolicyFromRequest(q *QuoteRequest, at time.Time) (Policy, error) {
	if q.Quote == nil {
		return Policy{}, ErrQuoteMissing
	}
	return Policy{
		ID:               PolicyIDForRequest(q.ID),
		RequestID:        q.ID,
		CustomerID:       q.Customer.CustomerID,
		StartDate:        q.Options.StartDate,
		InsuranceType:    q.Options.InsuranceType,
		Deductible:       q.Options.Deductible,
		InsurancePremium: q.Quote.InsurancePremium,
		PolicyLimit:      q.Quote.PolicyLimit,
		CreatedAt:        at,
	}, nil
}
