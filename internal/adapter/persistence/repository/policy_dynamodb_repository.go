package repository

import (
	"context"

	"insurance_quotes/internal/domain/entities"
	"insurance_quotes/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPoliciesTableName = "policies"
	requestIDIndexName       = "request_id-index"
)

type policyItem struct {
	ID               string    `dynamodbav:"id"`
	RequestID        string    `dynamodbav:"request_id"`
	CustomerID       string    `dynamodbav:"customer_id"`
	StartDate        string    `dynamodbav:"start_date"`
	InsuranceType    string    `dynamodbav:"insurance_type"`
	Deductible       moneyItem `dynamodbav:"deductible"`
	InsurancePremium moneyItem `dynamodbav:"insurance_premium"`
	PolicyLimit      moneyItem `dynamodbav:"policy_limit"`
	CreatedAt        string    `dynamodbav:"created_at"`
}

// PolicyDynamoRepository persists Policy entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI request_id-index: request_id (string)
//
// Policy ids are derived from request ids, so Save is a plain upsert.
type PolicyDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPolicyRepository = (*PolicyDynamoRepository)(nil)

func NewPolicyDynamoRepository(ddb *dynamodb.Client, tableName string) *PolicyDynamoRepository {
	if tableName == "" {
		tableName = getenvDefault("POLICIES_TABLE", defaultPoliciesTableName)
	}
	return &PolicyDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *PolicyDynamoRepository) Save(ctx context.Context, p entities.Policy) error {
	av, err := attributevalue.MarshalMap(toPolicyItem(p))
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return storeErr("save policy", err)
	}
	return nil
}

func (r *PolicyDynamoRepository) GetByID(ctx context.Context, id string) (entities.Policy, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Policy{}, storeErr("get policy", err)
	}
	if len(out.Item) == 0 {
		return entities.Policy{}, nil
	}

	var it policyItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Policy{}, err
	}
	return fromPolicyItem(it), nil
}

func (r *PolicyDynamoRepository) GetByRequestID(ctx context.Context, requestID string) (entities.Policy, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(requestIDIndexName),
		KeyConditionExpression: aws.String("#request_id = :request_id"),
		ExpressionAttributeNames: map[string]string{
			"#request_id": "request_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":request_id": &types.AttributeValueMemberS{Value: requestID},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Policy{}, storeErr("query policy by request", err)
	}
	if len(out.Items) == 0 {
		return entities.Policy{}, nil
	}

	var it policyItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Policy{}, err
	}
	return fromPolicyItem(it), nil
}

func toPolicyItem(p entities.Policy) policyItem {
	return policyItem{
		ID:               p.ID,
		RequestID:        p.RequestID,
		CustomerID:       p.CustomerID,
		StartDate:        formatTime(p.StartDate),
		InsuranceType:    p.InsuranceType,
		Deductible:       toMoneyItem(p.Deductible),
		InsurancePremium: toMoneyItem(p.InsurancePremium),
		PolicyLimit:      toMoneyItem(p.PolicyLimit),
		CreatedAt:        formatTime(p.CreatedAt),
	}
}

func fromPolicyItem(it policyItem) entities.Policy {
	return entities.Policy{
		ID:               it.ID,
		RequestID:        it.RequestID,
		CustomerID:       it.CustomerID,
		StartDate:        parseTime(it.StartDate),
		InsuranceType:    it.InsuranceType,
		Deductible:       fromMoneyItem(it.Deductible),
		InsurancePremium: fromMoneyItem(it.InsurancePremium),
		PolicyLimit:      fromMoneyItem(it.PolicyLimit),
		CreatedAt:        parseTime(it.CreatedAt),
	}
}
