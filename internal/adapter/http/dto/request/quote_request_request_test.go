package request

import (
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestSubmitQuoteRequest_ToEntities(t *testing.T) {
	body := `{
		"customer_info": {
			"customer_id": " c-1 ",
			"first_name": "Max",
			"last_name": "Mustermann",
			"contact_address": {"street_address": "Main St 1", "postal_code": "8000", "city": "Zurich"},
			"billing_address": {"street_address": "Main St 1", "postal_code": "8000", "city": "Zurich"}
		},
		"insurance_options": {
			"start_date": "2025-02-01T00:00:00+01:00",
			"insurance_type": "Home Content Plus",
			"deductible": {"amount": 500, "currency": "chf"}
		}
	}`
	var r SubmitQuoteRequest
	if err := json.Unmarshal([]byte(body), &r); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	c := r.ToCustomer()
	if c.CustomerID != "c-1" || c.ContactAddress.City != "Zurich" {
		t.Fatalf("unexpected customer %+v", c)
	}
	o := r.ToOptions()
	if o.Deductible.Currency != "CHF" || o.StartDate.Location() != time.UTC || o.StartDate.Hour() != 23 {
		t.Fatalf("unexpected options %+v", o)
	}
}

func TestQuoteResponseRequest_ResolveQuote(t *testing.T) {
	t.Run("rejection needs no terms", func(t *testing.T) {
		var r QuoteResponseRequest
		_ = json.Unmarshal([]byte(`{"accepted": false}`), &r)
		q, err := r.ResolveQuote()
		if err != nil || q != nil {
			t.Fatalf("expected no quote, got %v %v", q, err)
		}
	})

	t.Run("acceptance without terms", func(t *testing.T) {
		var r QuoteResponseRequest
		_ = json.Unmarshal([]byte(`{"accepted": true, "expiration_date": "2025-01-10T00:00:00Z"}`), &r)
		if _, err := r.ResolveQuote(); !errors.Is(err, ErrMissingQuoteTerms) {
			t.Fatalf("expected ErrMissingQuoteTerms, got %v", err)
		}
	})

	t.Run("acceptance with terms", func(t *testing.T) {
		var r QuoteResponseRequest
		_ = json.Unmarshal([]byte(`{
			"accepted": true,
			"expiration_date": "2025-01-10T00:00:00Z",
			"insurance_premium": {"amount": 250, "currency": "CHF"},
			"policy_limit": {"amount": 100000, "currency": "CHF"}
		}`), &r)
		q, err := r.ResolveQuote()
		if err != nil || q == nil {
			t.Fatalf("unexpected result %v %v", q, err)
		}
		if q.PolicyLimit.Amount != 100000 || !q.ExpirationDate.Equal(time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)) {
			t.Fatalf("unexpected quote %+v", q)
		}
	})
}
