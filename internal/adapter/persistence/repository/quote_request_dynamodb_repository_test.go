package repository

import (
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"insurance_quotes/internal/domain/entities"
	"insurance_quotes/internal/domain/events"
	"insurance_quotes/internal/usecase/interfaces"
)

func sampleRequest(t *testing.T) *entities.QuoteRequest {
	t.Helper()
	submitted := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
	q := entities.SubmitQuoteRequest("req-1", entities.CustomerInfo{
		CustomerID:     "c-1",
		FirstName:      "Max",
		LastName:       "Mustermann",
		ContactAddress: entities.Address{StreetAddress: "Main St 1", PostalCode: "8000", City: "Zurich"},
	}, entities.InsuranceOptions{
		StartDate:     time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
		InsuranceType: "Home Content Plus",
		Deductible:    entities.MoneyAmount{Amount: 500, Currency: "CHF"},
	}, submitted)
	require.NoError(t, q.AcceptRequest(entities.Quote{
		ExpirationDate:   time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
		InsurancePremium: entities.MoneyAmount{Amount: 250, Currency: "CHF"},
		PolicyLimit:      entities.MoneyAmount{Amount: 100000, Currency: "CHF"},
	}, submitted.Add(time.Hour)))
	q.Version = 3
	return q
}

func TestQuoteRequestItem_KeepsHistoryAndQuote(t *testing.T) {
	q := sampleRequest(t)

	it, err := toQuoteRequestItem(q)
	require.NoError(t, err)
	assert.Equal(t, string(entities.RequestStatusQuoteReceived), it.Status)
	assert.Empty(t, it.HasOutbox)

	got, err := fromQuoteRequestItem(it)
	require.NoError(t, err)
	assert.Equal(t, q.StatusHistory, got.StatusHistory)
	assert.Equal(t, *q.Quote, *got.Quote)
	assert.Equal(t, q.Customer, got.Customer)
	assert.Equal(t, q.Options, got.Options)
	assert.Equal(t, int64(3), got.Version)
}

func TestQuoteRequestItem_OutboxFlagIsSparse(t *testing.T) {
	q := sampleRequest(t)

	av, err := attributevalue.MarshalMap(mustItem(t, q))
	require.NoError(t, err)
	assert.NotContains(t, av, "has_outbox")
	assert.NotContains(t, av, "pending_events")

	env, err := events.NewEnvelope(events.KindQuoteResponse, q.ID, "cause-1", time.Now(), events.QuoteResponse{RequestID: q.ID, Accepted: true})
	require.NoError(t, err)
	q.Enqueue(env)

	av, err = attributevalue.MarshalMap(mustItem(t, q))
	require.NoError(t, err)
	flag, ok := av["has_outbox"].(*types.AttributeValueMemberS)
	require.True(t, ok)
	assert.Equal(t, outboxFlag, flag.Value)

	got, err := unmarshalQuoteRequest(av)
	require.NoError(t, err)
	require.Len(t, got.PendingEvents, 1)
	assert.Equal(t, env.ID, got.PendingEvents[0].ID)
	assert.Equal(t, "cause-1", got.PendingEvents[0].CausationID)
	assert.JSONEq(t, string(env.Payload), string(got.PendingEvents[0].Payload))
}

func TestFromQuoteRequestItem_RejectsCorruptOutbox(t *testing.T) {
	it := mustItem(t, sampleRequest(t))
	it.PendingEvents = []string{"{not json"}

	_, err := fromQuoteRequestItem(it)
	assert.Error(t, err)
}

func TestFromQuoteRequestItem_RejectsCorruptHistory(t *testing.T) {
	t.Run("empty history", func(t *testing.T) {
		it := mustItem(t, sampleRequest(t))
		it.StatusHistory = nil

		_, err := fromQuoteRequestItem(it)
		assert.ErrorIs(t, err, entities.ErrEmptyHistory)
	})

	t.Run("illegal edge", func(t *testing.T) {
		it := mustItem(t, sampleRequest(t))
		it.StatusHistory[1].Status = string(entities.RequestStatusPolicyCreated)

		_, err := fromQuoteRequestItem(it)
		assert.ErrorIs(t, err, entities.ErrIllegalTransition)
		assert.Contains(t, err.Error(), "req-1")
	})
}

func TestStoreErr(t *testing.T) {
	assert.ErrorIs(t, storeErr("save", &types.ConditionalCheckFailedException{}), interfaces.ErrConcurrentModification)

	err := storeErr("save", errors.New("connection reset"))
	assert.ErrorIs(t, err, interfaces.ErrStoreUnavailable)
	assert.Contains(t, err.Error(), "connection reset")
}

func TestPolicyItem_RoundTrip(t *testing.T) {
	q := sampleRequest(t)
	p, err := entities.NewPolicyFromRequest(q, time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.Equal(t, p, fromPolicyItem(toPolicyItem(p)))
}

func mustItem(t *testing.T, q *entities.QuoteRequest) quoteRequestItem {
	t.Helper()
	it, err := toQuoteRequestItem(q)
	require.NoError(t, err)
	return it
}
