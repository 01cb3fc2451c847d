package usecase

import (
	"insurance_quotes/internal/domain/entities"
	"insurance_quotes/internal/domain/events"
)

// Wire payloads carry their own value types; these helpers translate at the boundary.

func toEventAddress(a entities.Address) events.Address {
	return events.Address{StreetAddress: a.StreetAddress, PostalCode: a.PostalCode, City: a.City}
}

func fromEventAddress(a events.Address) entities.Address {
	return entities.Address{StreetAddress: a.StreetAddress, PostalCode: a.PostalCode, City: a.City}
}

func toEventCustomer(c entities.CustomerInfo) events.CustomerInfo {
	return events.CustomerInfo{
		CustomerID:     c.CustomerID,
		FirstName:      c.FirstName,
		LastName:       c.LastName,
		ContactAddress: toEventAddress(c.ContactAddress),
		BillingAddress: toEventAddress(c.BillingAddress),
	}
}

func fromEventCustomer(c events.CustomerInfo) entities.CustomerInfo {
	return entities.CustomerInfo{
		CustomerID:     c.CustomerID,
		FirstName:      c.FirstName,
		LastName:       c.LastName,
		ContactAddress: fromEventAddress(c.ContactAddress),
		BillingAddress: fromEventAddress(c.BillingAddress),
	}
}

func toEventMoney(m entities.MoneyAmount) events.MoneyAmount {
	return events.MoneyAmount{Amount: m.Amount, Currency: m.Currency}
}

func fromEventMoney(m events.MoneyAmount) entities.MoneyAmount {
	return entities.MoneyAmount{Amount: m.Amount, Currency: m.Currency}
}

func toEventOptions(o entities.InsuranceOptions) events.InsuranceOptions {
	return events.InsuranceOptions{
		StartDate:     o.StartDate,
		InsuranceType: o.InsuranceType,
		Deductible:    toEventMoney(o.Deductible),
	}
}

func fromEventOptions(o events.InsuranceOptions) entities.InsuranceOptions {
	return entities.InsuranceOptions{
		StartDate:     o.StartDate,
		InsuranceType: o.InsuranceType,
		Deductible:    fromEventMoney(o.Deductible),
	}
}

// quoteFromResponse returns false when an accepting response lacks quote terms.
func quoteFromResponse(r events.QuoteResponse) (entities.Quote, bool) {
	if r.ExpirationDate == nil || r.ExpirationDate.IsZero() || r.Premium == nil || r.PolicyLimit == nil {
		return entities.Quote{}, false
	}
	return entities.Quote{
		ExpirationDate:   *r.ExpirationDate,
		InsurancePremium: fromEventMoney(*r.Premium),
		PolicyLimit:      fromEventMoney(*r.PolicyLimit),
	}, true
}
