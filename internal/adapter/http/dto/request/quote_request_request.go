package request

import (
	"errors"
	"strings"
	"time"

	"insurance_quotes/internal/domain/entities"
)

var ErrMissingQuoteTerms = errors.New("accepted response requires expiration date, premium and policy limit")

type AddressRequest struct {
	StreetAddress string `json:"street_address" binding:"required"`
	PostalCode    string `json:"postal_code" binding:"required"`
	City          string `json:"city" binding:"required"`
}

type MoneyRequest struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency" binding:"required"`
}

type CustomerInfoRequest struct {
	CustomerID     string         `json:"customer_id" binding:"required"`
	FirstName      string         `json:"first_name" binding:"required"`
	LastName       string         `json:"last_name" binding:"required"`
	ContactAddress AddressRequest `json:"contact_address" binding:"required"`
	BillingAddress AddressRequest `json:"billing_address" binding:"required"`
}

type InsuranceOptionsRequest struct {
	StartDate     time.Time    `json:"start_date" binding:"required"`
	InsuranceType string       `json:"insurance_type" binding:"required"`
	Deductible    MoneyRequest `json:"deductible" binding:"required"`
}

// SubmitQuoteRequest is the body of POST /quote-requests.
type SubmitQuoteRequest struct {
	CustomerInfo     CustomerInfoRequest     `json:"customer_info" binding:"required"`
	InsuranceOptions InsuranceOptionsRequest `json:"insurance_options" binding:"required"`
}

func (r SubmitQuoteRequest) ToCustomer() entities.CustomerInfo {
	c := r.CustomerInfo
	return entities.CustomerInfo{
		CustomerID:     strings.TrimSpace(c.CustomerID),
		FirstName:      strings.TrimSpace(c.FirstName),
		LastName:       strings.TrimSpace(c.LastName),
		ContactAddress: c.ContactAddress.toEntity(),
		BillingAddress: c.BillingAddress.toEntity(),
	}
}

func (r SubmitQuoteRequest) ToOptions() entities.InsuranceOptions {
	o := r.InsuranceOptions
	return entities.InsuranceOptions{
		StartDate:     o.StartDate.UTC(),
		InsuranceType: strings.TrimSpace(o.InsuranceType),
		Deductible:    o.Deductible.toEntity(),
	}
}

// QuoteResponseRequest is the underwriter's answer to a request. Quote terms
// are only read when Accepted is true.
type QuoteResponseRequest struct {
	Accepted         *bool         `json:"accepted" binding:"required"`
	ExpirationDate   *time.Time    `json:"expiration_date"`
	InsurancePremium *MoneyRequest `json:"insurance_premium"`
	PolicyLimit      *MoneyRequest `json:"policy_limit"`
}

func (r QuoteResponseRequest) ResolveQuote() (*entities.Quote, error) {
	if r.Accepted == nil || !*r.Accepted {
		return nil, nil
	}
	if r.ExpirationDate == nil || r.InsurancePremium == nil || r.PolicyLimit == nil {
		return nil, ErrMissingQuoteTerms
	}
	return &entities.Quote{
		ExpirationDate:   r.ExpirationDate.UTC(),
		InsurancePremium: r.InsurancePremium.toEntity(),
		PolicyLimit:      r.PolicyLimit.toEntity(),
	}, nil
}

func (a AddressRequest) toEntity() entities.Address {
	return entities.Address{
		StreetAddress: strings.TrimSpace(a.StreetAddress),
		PostalCode:    strings.TrimSpace(a.PostalCode),
		City:          strings.TrimSpace(a.City),
	}
}

func (m MoneyRequest) toEntity() entities.MoneyAmount {
	return entities.MoneyAmount{Amount: m.Amount, Currency: strings.ToUpper(strings.TrimSpace(m.Currency))}
}
