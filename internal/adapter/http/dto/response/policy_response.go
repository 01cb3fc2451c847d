package response

import (
	"time"

	"insurance_quotes/internal/domain/entities"
)

type PolicyResponse struct {
	ID               string        `json:"id"`
	RequestID        string        `json:"request_id"`
	CustomerID       string        `json:"customer_id"`
	StartDate        time.Time     `json:"start_date"`
	InsuranceType    string        `json:"insurance_type"`
	Deductible       MoneyResponse `json:"deductible"`
	InsurancePremium MoneyResponse `json:"insurance_premium"`
	PolicyLimit      MoneyResponse `json:"policy_limit"`
	CreatedAt        time.Time     `json:"created_at"`
}

func FromPolicy(p entities.Policy) PolicyResponse {
	return PolicyResponse{
		ID:               p.ID,
		RequestID:        p.RequestID,
		CustomerID:       p.CustomerID,
		StartDate:        p.StartDate,
		InsuranceType:    p.InsuranceType,
		Deductible:       fromMoney(p.Deductible),
		InsurancePremium: fromMoney(p.InsurancePremium),
		PolicyLimit:      fromMoney(p.PolicyLimit),
		CreatedAt:        p.CreatedAt,
	}
}
