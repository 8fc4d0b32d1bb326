package repository

import (
	"context"
	"time"

	"cobranca_service/internal/domain/entities"
	"cobranca_service/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultEventsTableName = "billing_events"
	eventsRuleIDIndex      = "rule_id-index"
)

type billingEventItem struct {
	ID           string            `dynamodbav:"id"`
	RuleID       string            `dynamodbav:"rule_id"`
	TenantID     string            `dynamodbav:"tenant_id"`
	Payload      map[string]string `dynamodbav:"payload,omitempty"`
	DueDate      string            `dynamodbav:"due_date"`
	DispatchDate string            `dynamodbav:"dispatch_date"`
	Status       string            `dynamodbav:"status"`
	Attempts     int               `dynamodbav:"attempts"`
	LastError    string            `dynamodbav:"last_error,omitempty"`
	CreatedAt    string            `dynamodbav:"created_at"`
}

// BillingEventDynamoRepository persists BillingEvent entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: rule_id-index (PK: rule_id)

type BillingEventDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IBillingEventRepository = (*BillingEventDynamoRepository)(nil)

func NewBillingEventDynamoRepository(ddb *dynamodb.Client) *BillingEventDynamoRepository {
	return &BillingEventDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("EVENTS_TABLE", defaultEventsTableName),
	}
}

func (r *BillingEventDynamoRepository) Create(ctx context.Context, e entities.BillingEvent) (entities.BillingEvent, error) {
	av, err := attributevalue.MarshalMap(toBillingEventItem(e))
	if err != nil {
		return entities.BillingEvent{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.BillingEvent{}, err
	}
	return e, nil
}

func (r *BillingEventDynamoRepository) GetByID(ctx context.Context, id string) (entities.BillingEvent, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.BillingEvent{}, err
	}
	if len(out.Item) == 0 {
		return entities.BillingEvent{}, nil
	}

	var it billingEventItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.BillingEvent{}, err
	}
	return fromBillingEventItem(it), nil
}

func (r *BillingEventDynamoRepository) ListByRuleID(ctx context.Context, ruleID string) ([]entities.BillingEvent, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(eventsRuleIDIndex),
		KeyConditionExpression: aws.String("rule_id = :rid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":rid": &types.AttributeValueMemberS{Value: ruleID},
		},
	})
	if err != nil {
		return nil, err
	}

	events := make([]entities.BillingEvent, 0, len(out.Items))
	for _, raw := range out.Items {
		var it billingEventItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		events = append(events, fromBillingEventItem(it))
	}
	return events, nil
}

func toBillingEventItem(e entities.BillingEvent) billingEventItem {
	return billingEventItem{
		ID:           e.ID,
		RuleID:       e.RuleID,
		TenantID:     e.TenantID,
		Payload:      e.Payload,
		DueDate:      e.DueDate.UTC().Format(time.RFC3339Nano),
		DispatchDate: e.DispatchDate.UTC().Format(time.RFC3339Nano),
		Status:       string(e.Status),
		Attempts:     e.Attempts,
		LastError:    e.LastError,
		CreatedAt:    e.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromBillingEventItem(it billingEventItem) entities.BillingEvent {
	dueDate, _ := time.Parse(time.RFC3339Nano, it.DueDate)
	dispatchDate, _ := time.Parse(time.RFC3339Nano, it.DispatchDate)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.BillingEvent{
		ID:           it.ID,
		RuleID:       it.RuleID,
		TenantID:     it.TenantID,
		Payload:      it.Payload,
		DueDate:      dueDate,
		DispatchDate: dispatchDate,
		Status:       entities.BillingEventStatus(it.Status),
		Attempts:     it.Attempts,
		LastError:    it.LastError,
		CreatedAt:    createdAt,
	}
}
