package response

import (
	"time"

	"insurance_quotes/internal/domain/entities"
)

type AddressResponse struct {
	StreetAddress string `json:"street_address"`
	PostalCode    string `json:"postal_code"`
	City          string `json:"city"`
}

type MoneyResponse struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

type CustomerInfoResponse struct {
	CustomerID     string          `json:"customer_id"`
	FirstName      string          `json:"first_name"`
	LastName       string          `json:"last_name"`
	ContactAddress AddressResponse `json:"contact_address"`
	BillingAddress AddressResponse `json:"billing_address"`
}

type InsuranceOptionsResponse struct {
	StartDate     time.Time     `json:"start_date"`
	InsuranceType string        `json:"insurance_type"`
	Deductible    MoneyResponse `json:"deductible"`
}

type QuoteResponse struct {
	ExpirationDate   time.Time     `json:"expiration_date"`
	InsurancePremium MoneyResponse `json:"insurance_premium"`
	PolicyLimit      MoneyResponse `json:"policy_limit"`
}

type StatusChangeResponse struct {
	Date   time.Time `json:"date"`
	Status string    `json:"status"`
}

type QuoteRequestResponse struct {
	ID               string                   `json:"id"`
	Status           string                   `json:"status"`
	CreatedAt        time.Time                `json:"created_at"`
	StatusHistory    []StatusChangeResponse   `json:"status_history"`
	CustomerInfo     CustomerInfoResponse     `json:"customer_info"`
	InsuranceOptions InsuranceOptionsResponse `json:"insurance_options"`
	Quote            *QuoteResponse           `json:"quote,omitempty"`
	PolicyID         string                   `json:"policy_id,omitempty"`
}

func FromQuoteRequest(q *entities.QuoteRequest) QuoteRequestResponse {
	out := QuoteRequestResponse{
		ID:        q.ID,
		Status:    string(q.Status()),
		CreatedAt: q.CreatedAt,
		CustomerInfo: CustomerInfoResponse{
			CustomerID:     q.Customer.CustomerID,
			FirstName:      q.Customer.FirstName,
			LastName:       q.Customer.LastName,
			ContactAddress: fromAddress(q.Customer.ContactAddress),
			BillingAddress: fromAddress(q.Customer.BillingAddress),
		},
		InsuranceOptions: InsuranceOptionsResponse{
			StartDate:     q.Options.StartDate,
			InsuranceType: q.Options.InsuranceType,
			Deductible:    fromMoney(q.Options.Deductible),
		},
		PolicyID:      q.PolicyID,
		StatusHistory: make([]StatusChangeResponse, 0, len(q.StatusHistory)),
	}
	for _, c := range q.StatusHistory {
		out.StatusHistory = append(out.StatusHistory, StatusChangeResponse{Date: c.Date, Status: string(c.Status)})
	}
	if q.Quote != nil {
		out.Quote = &QuoteResponse{
			ExpirationDate:   q.Quote.ExpirationDate,
			InsurancePremium: fromMoney(q.Quote.InsurancePremium),
			PolicyLimit:      fromMoney(q.Quote.PolicyLimit),
		}
	}
	return out
}

func FromQuoteRequests(qs []*entities.QuoteRequest) []QuoteRequestResponse {
	out := make([]QuoteRequestResponse, 0, len(qs))
	for _, q := range qs {
		out = append(out, FromQuoteRequest(q))
	}
	return out
}

func fromAddress(a entities.Address) AddressResponse {
	return AddressResponse{StreetAddress: a.StreetAddress, PostalCode: a.PostalCode, City: a.City}
}

func fromMoney(m entities.MoneyAmount) MoneyResponse {
	return MoneyResponse{Amount: m.Amount, Currency: m.Currency}
}
