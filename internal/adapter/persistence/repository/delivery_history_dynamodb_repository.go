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
	defaultHistoryTableName = "delivery_status_changes"
	historyRecordIDIndex    = "delivery_record_id-index"
)

type deliveryStatusChangeItem struct {
	ID               string `dynamodbav:"id"`
	DeliveryRecordID string `dynamodbav:"delivery_record_id"`
	PreviousStatus   string `dynamodbav:"previous_status"`
	NewStatus        string `dynamodbav:"new_status"`
	OccurredAt       string `dynamodbav:"occurred_at"`
	Detail           string `dynamodbav:"detail,omitempty"`
	OriginIP         string `dynamodbav:"origin_ip,omitempty"`
	OriginUserAgent  string `dynamodbav:"origin_user_agent,omitempty"`
}

// DeliveryHistoryDynamoRepository persists the append-only
// DeliveryStatusChange audit rows.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: delivery_record_id-index (PK: delivery_record_id)

type DeliveryHistoryDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IDeliveryHistoryRepository = (*DeliveryHistoryDynamoRepository)(nil)

func NewDeliveryHistoryDynamoRepository(ddb *dynamodb.Client) *DeliveryHistoryDynamoRepository {
	return &DeliveryHistoryDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("HISTORY_TABLE", defaultHistoryTableName),
	}
}

func (r *DeliveryHistoryDynamoRepository) Append(ctx context.Context, c entities.DeliveryStatusChange) (entities.DeliveryStatusChange, error) {
	av, err := attributevalue.MarshalMap(toDeliveryStatusChangeItem(c))
	if err != nil {
		return entities.DeliveryStatusChange{}, err
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
		return entities.DeliveryStatusChange{}, err
	}
	return c, nil
}

func (r *DeliveryHistoryDynamoRepository) ListByDeliveryRecordID(ctx context.Context, deliveryRecordID string) ([]entities.DeliveryStatusChange, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(historyRecordIDIndex),
		KeyConditionExpression: aws.String("delivery_record_id = :rid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":rid": &types.AttributeValueMemberS{Value: deliveryRecordID},
		},
	})
	if err != nil {
		return nil, err
	}

	changes := make([]entities.DeliveryStatusChange, 0, len(out.Items))
	for _, raw := range out.Items {
		var it deliveryStatusChangeItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		changes = append(changes, fromDeliveryStatusChangeItem(it))
	}
	return changes, nil
}

func toDeliveryStatusChangeItem(c entities.DeliveryStatusChange) deliveryStatusChangeItem {
	return deliveryStatusChangeItem{
		ID:               c.ID,
		DeliveryRecordID: c.DeliveryRecordID,
		PreviousStatus:   string(c.PreviousStatus),
		NewStatus:        string(c.NewStatus),
		OccurredAt:       c.OccurredAt.UTC().Format(time.RFC3339Nano),
		Detail:           c.Detail,
		OriginIP:         c.OriginIP,
		OriginUserAgent:  c.OriginUserAgent,
	}
}

func fromDeliveryStatusChangeItem(it deliveryStatusChangeItem) entities.DeliveryStatusChange {
	occurredAt, _ := time.Parse(time.RFC3339Nano, it.OccurredAt)
	return entities.DeliveryStatusChange{
		ID:               it.ID,
		DeliveryRecordID: it.DeliveryRecordID,
		PreviousStatus:   entities.DeliveryStatus(it.PreviousStatus),
		NewStatus:        entities.DeliveryStatus(it.NewStatus),
		OccurredAt:       occurredAt,
		Detail:           it.Detail,
		OriginIP:         it.OriginIP,
		OriginUserAgent:  it.OriginUserAgent,
	}
}
