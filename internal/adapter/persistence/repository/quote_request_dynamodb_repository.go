package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"

	"insurance_quotes/internal/domain/entities"
	"insurance_quotes/internal/domain/events"
	"insurance_quotes/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultQuoteRequestsTableName = "quote_requests"
	statusIndexName               = "status-index"
	outboxIndexName               = "outbox-index"
	outboxFlag                    = "1"
)

type addressItem struct {
	StreetAddress string `dynamodbav:"street_address"`
	PostalCode    string `dynamodbav:"postal_code"`
	City          string `dynamodbav:"city"`
}

type moneyItem struct {
	Amount   float64 `dynamodbav:"amount"`
	Currency string  `dynamodbav:"currency"`
}

type customerItem struct {
	CustomerID     string      `dynamodbav:"customer_id"`
	FirstName      string      `dynamodbav:"first_name"`
	LastName       string      `dynamodbav:"last_name"`
	ContactAddress addressItem `dynamodbav:"contact_address"`
	BillingAddress addressItem `dynamodbav:"billing_address"`
}

type optionsItem struct {
	StartDate     string    `dynamodbav:"start_date"`
	InsuranceType string    `dynamodbav:"insurance_type"`
	Deductible    moneyItem `dynamodbav:"deductible"`
}

type quoteItem struct {
	ExpirationDate   string    `dynamodbav:"expiration_date"`
	InsurancePremium moneyItem `dynamodbav:"insurance_premium"`
	PolicyLimit      moneyItem `dynamodbav:"policy_limit"`
}

type statusChangeItem struct {
	Date   string `dynamodbav:"date"`
	Status string `dynamodbav:"status"`
}

type quoteRequestItem struct {
	ID            string             `dynamodbav:"id"`
	CreatedAt     string             `dynamodbav:"created_at"`
	Status        string             `dynamodbav:"status"`
	StatusHistory []statusChangeItem `dynamodbav:"status_history"`
	Customer      customerItem       `dynamodbav:"customer"`
	Options       optionsItem        `dynamodbav:"options"`
	Quote         *quoteItem         `dynamodbav:"quote,omitempty"`
	PolicyID      string             `dynamodbav:"policy_id,omitempty"`
	Version       int64              `dynamodbav:"version"`
	PendingEvents []string           `dynamodbav:"pending_events,omitempty"`
	HasOutbox     string             `dynamodbav:"has_outbox,omitempty"`
}

// QuoteRequestDynamoRepository persists QuoteRequest aggregates in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI status-index: status (string), projection ALL
//   - GSI outbox-index: has_outbox (string), projection KEYS_ONLY
//
// has_outbox is only written while the aggregate holds unpublished events,
// which keeps outbox-index sparse.
type QuoteRequestDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IQuoteRequestRepository = (*QuoteRequestDynamoRepository)(nil)

func NewQuoteRequestDynamoRepository(ddb *dynamodb.Client, tableName string) *QuoteRequestDynamoRepository {
	if tableName == "" {
		tableName = getenvDefault("QUOTE_REQUESTS_TABLE", defaultQuoteRequestsTableName)
	}
	return &QuoteRequestDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *QuoteRequestDynamoRepository) GetByID(ctx context.Context, id string) (*entities.QuoteRequest, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, storeErr("get quote request", err)
	}
	if len(out.Item) == 0 {
		return nil, nil
	}
	return unmarshalQuoteRequest(out.Item)
}

func (r *QuoteRequestDynamoRepository) Save(ctx context.Context, q *entities.QuoteRequest) error {
	it, err := toQuoteRequestItem(q)
	if err != nil {
		return err
	}
	it.Version = q.Version + 1
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return err
	}

	input := &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	}
	if q.Version == 0 {
		input.ConditionExpression = aws.String("attribute_not_exists(#id)")
		input.ExpressionAttributeNames = map[string]string{"#id": "id"}
	} else {
		input.ConditionExpression = aws.String("#version = :expected")
		input.ExpressionAttributeNames = map[string]string{"#version": "version"}
		input.ExpressionAttributeValues = map[string]types.AttributeValue{
			":expected": &types.AttributeValueMemberN{Value: strconv.FormatInt(q.Version, 10)},
		}
	}

	if _, err := r.ddb.PutItem(ctx, input); err != nil {
		return storeErr("save quote request", err)
	}
	q.Version = it.Version
	return nil
}

func (r *QuoteRequestDynamoRepository) ListByStatus(ctx context.Context, statuses ...entities.RequestStatus) ([]*entities.QuoteRequest, error) {
	out := make([]*entities.QuoteRequest, 0)
	for _, s := range statuses {
		items, err := r.query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(statusIndexName),
			KeyConditionExpression: aws.String("#status = :status"),
			ExpressionAttributeNames: map[string]string{
				"#status": "status",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":status": &types.AttributeValueMemberS{Value: string(s)},
			},
		})
		if err != nil {
			return nil, err
		}
		for _, item := range items {
			q, err := unmarshalQuoteRequest(item)
			if err != nil {
				return nil, err
			}
			out = append(out, q)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

// ListWithPendingEvents reads keys from the sparse outbox index and loads each
// aggregate with a consistent read.
func (r *QuoteRequestDynamoRepository) ListWithPendingEvents(ctx context.Context) ([]*entities.QuoteRequest, error) {
	keys, err := r.query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(outboxIndexName),
		KeyConditionExpression: aws.String("#has_outbox = :flag"),
		ExpressionAttributeNames: map[string]string{
			"#has_outbox": "has_outbox",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":flag": &types.AttributeValueMemberS{Value: outboxFlag},
		},
	})
	if err != nil {
		return nil, err
	}

	out := make([]*entities.QuoteRequest, 0, len(keys))
	for _, key := range keys {
		idAttr, ok := key["id"].(*types.AttributeValueMemberS)
		if !ok {
			continue
		}
		q, err := r.GetByID(ctx, idAttr.Value)
		if err != nil {
			return nil, err
		}
		if q != nil && len(q.PendingEvents) > 0 {
			out = append(out, q)
		}
	}
	return out, nil
}

func (r *QuoteRequestDynamoRepository) query(ctx context.Context, input *dynamodb.QueryInput) ([]map[string]types.AttributeValue, error) {
	var items []map[string]types.AttributeValue
	p := dynamodb.NewQueryPaginator(r.ddb, input)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, storeErr("query "+aws.ToString(input.IndexName), err)
		}
		items = append(items, page.Items...)
	}
	return items, nil
}

func unmarshalQuoteRequest(av map[string]types.AttributeValue) (*entities.QuoteRequest, error) {
	var it quoteRequestItem
	if err := attributevalue.UnmarshalMap(av, &it); err != nil {
		return nil, err
	}
	return fromQuoteRequestItem(it)
}

func toQuoteRequestItem(q *entities.QuoteRequest) (quoteRequestItem, error) {
	it := quoteRequestItem{
		ID:        q.ID,
		CreatedAt: formatTime(q.CreatedAt),
		Status:    string(q.Status()),
		Customer: customerItem{
			CustomerID:     q.Customer.CustomerID,
			FirstName:      q.Customer.FirstName,
			LastName:       q.Customer.LastName,
			ContactAddress: toAddressItem(q.Customer.ContactAddress),
			BillingAddress: toAddressItem(q.Customer.BillingAddress),
		},
		Options: optionsItem{
			StartDate:     formatTime(q.Options.StartDate),
			InsuranceType: q.Options.InsuranceType,
			Deductible:    toMoneyItem(q.Options.Deductible),
		},
		PolicyID: q.PolicyID,
		Version:  q.Version,
	}
	for _, c := range q.StatusHistory {
		it.StatusHistory = append(it.StatusHistory, statusChangeItem{Date: formatTime(c.Date), Status: string(c.Status)})
	}
	if q.Quote != nil {
		it.Quote = &quoteItem{
			ExpirationDate:   formatTime(q.Quote.ExpirationDate),
			InsurancePremium: toMoneyItem(q.Quote.InsurancePremium),
			PolicyLimit:      toMoneyItem(q.Quote.PolicyLimit),
		}
	}
	for _, env := range q.PendingEvents {
		raw, err := json.Marshal(env)
		if err != nil {
			return quoteRequestItem{}, fmt.Errorf("marshal pending event %s: %w", env.ID, err)
		}
		it.PendingEvents = append(it.PendingEvents, string(raw))
	}
	if len(it.PendingEvents) > 0 {
		it.HasOutbox = outboxFlag
	}
	return it, nil
}

func fromQuoteRequestItem(it quoteRequestItem) (*entities.QuoteRequest, error) {
	q := &entities.QuoteRequest{
		ID:        it.ID,
		CreatedAt: parseTime(it.CreatedAt),
		Customer: entities.CustomerInfo{
			CustomerID:     it.Customer.CustomerID,
			FirstName:      it.Customer.FirstName,
			LastName:       it.Customer.LastName,
			ContactAddress: fromAddressItem(it.Customer.ContactAddress),
			BillingAddress: fromAddressItem(it.Customer.BillingAddress),
		},
		Options: entities.InsuranceOptions{
			StartDate:     parseTime(it.Options.StartDate),
			InsuranceType: it.Options.InsuranceType,
			Deductible:    fromMoneyItem(it.Options.Deductible),
		},
		PolicyID: it.PolicyID,
		Version:  it.Version,
	}
	for _, c := range it.StatusHistory {
		q.StatusHistory = append(q.StatusHistory, entities.StatusChange{Date: parseTime(c.Date), Status: entities.RequestStatus(c.Status)})
	}
	if it.Quote != nil {
		q.Quote = &entities.Quote{
			ExpirationDate:   parseTime(it.Quote.ExpirationDate),
			InsurancePremium: fromMoneyItem(it.Quote.InsurancePremium),
			PolicyLimit:      fromMoneyItem(it.Quote.PolicyLimit),
		}
	}
	for _, raw := range it.PendingEvents {
		var env events.Envelope
		if err := json.Unmarshal([]byte(raw), &env); err != nil {
			return nil, fmt.Errorf("decode pending event of %s: %w", it.ID, err)
		}
		q.PendingEvents = append(q.PendingEvents, env)
	}
	if err := q.ValidateHistory(); err != nil {
		return nil, fmt.Errorf("load quote request %s: %w", it.ID, err)
	}
	return q, nil
}

func toAddressItem(a entities.Address) addressItem {
	return addressItem{StreetAddress: a.StreetAddress, PostalCode: a.PostalCode, City: a.City}
}

func fromAddressItem(a addressItem) entities.Address {
	return entities.Address{StreetAddress: a.StreetAddress, PostalCode: a.PostalCode, City: a.City}
}

func toMoneyItem(m entities.MoneyAmount) moneyItem {
	return moneyItem{Amount: m.Amount, Currency: m.Currency}
}

func fromMoneyItem(m moneyItem) entities.MoneyAmount {
	return entities.MoneyAmount{Amount: m.Amount, Currency: m.Currency}
}
