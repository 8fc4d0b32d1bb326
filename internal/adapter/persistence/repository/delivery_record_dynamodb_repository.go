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
	defaultDeliveriesTableName = "delivery_records"
	deliveriesTrackingIDIndex  = "tracking_id-index"
	deliveriesEventIDIndex     = "billing_event_id-index"
)

type deliveryRecordItem struct {
	ID             string `dynamodbav:"id"`
	BillingEventID string `dynamodbav:"billing_event_id"`
	TenantID       string `dynamodbav:"tenant_id"`
	Channel        string `dynamodbav:"channel"`
	Status         string `dynamodbav:"status"`
	TrackingID     string `dynamodbav:"tracking_id"`
	OpenCount      int    `dynamodbav:"open_count"`
	ClickCount     int    `dynamodbav:"click_count"`
	FirstOpenedAt  string `dynamodbav:"first_opened_at,omitempty"`
	LastOpenedAt   string `dynamodbav:"last_opened_at,omitempty"`
	FirstClickedAt string `dynamodbav:"first_clicked_at,omitempty"`
	LastClickedAt  string `dynamodbav:"last_clicked_at,omitempty"`
	LastLink       string `dynamodbav:"last_link,omitempty"`
	LastErrorCode  string `dynamodbav:"last_error_code,omitempty"`
	LastErrorMsg   string `dynamodbav:"last_error_msg,omitempty"`
	CreatedAt      string `dynamodbav:"created_at"`
	UpdatedAt      string `dynamodbav:"updated_at"`
}

// DeliveryRecordDynamoRepository persists DeliveryRecord entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: tracking_id-index (PK: tracking_id)
//   - GSI: billing_event_id-index (PK: billing_event_id)
//
// Create uses a conditional write on id; tracking-id uniqueness is enforced
// by the usecase's lookup-before-create (the provider sets the id, collisions
// mean a misbehaving worker, not a race we arbitrate here).

type DeliveryRecordDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IDeliveryRecordRepository = (*DeliveryRecordDynamoRepository)(nil)

func NewDeliveryRecordDynamoRepository(ddb *dynamodb.Client) *DeliveryRecordDynamoRepository {
	return &DeliveryRecordDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("DELIVERIES_TABLE", defaultDeliveriesTableName),
	}
}

func (r *DeliveryRecordDynamoRepository) Create(ctx context.Context, d entities.DeliveryRecord) (entities.DeliveryRecord, error) {
	av, err := attributevalue.MarshalMap(toDeliveryRecordItem(d))
	if err != nil {
		return entities.DeliveryRecord{}, err
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
		return entities.DeliveryRecord{}, err
	}
	return d, nil
}

func (r *DeliveryRecordDynamoRepository) GetByID(ctx context.Context, id string) (entities.DeliveryRecord, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.DeliveryRecord{}, err
	}
	if len(out.Item) == 0 {
		return entities.DeliveryRecord{}, nil
	}

	var it deliveryRecordItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.DeliveryRecord{}, err
	}
	return fromDeliveryRecordItem(it), nil
}

func (r *DeliveryRecordDynamoRepository) GetByTrackingID(ctx context.Context, trackingID string) (entities.DeliveryRecord, error) {
	return r.queryOne(ctx, deliveriesTrackingIDIndex, "tracking_id = :v", trackingID)
}

func (r *DeliveryRecordDynamoRepository) GetByBillingEventID(ctx context.Context, billingEventID string) (entities.DeliveryRecord, error) {
	return r.queryOne(ctx, deliveriesEventIDIndex, "billing_event_id = :v", billingEventID)
}

func (r *DeliveryRecordDynamoRepository) queryOne(ctx context.Context, index, condition, value string) (entities.DeliveryRecord, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(index),
		KeyConditionExpression: aws.String(condition),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": &types.AttributeValueMemberS{Value: value},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.DeliveryRecord{}, err
	}
	if len(out.Items) == 0 {
		return entities.DeliveryRecord{}, nil
	}

	var it deliveryRecordItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.DeliveryRecord{}, err
	}
	return fromDeliveryRecordItem(it), nil
}

func (r *DeliveryRecordDynamoRepository) Update(ctx context.Context, d entities.DeliveryRecord) (entities.DeliveryRecord, error) {
	av, err := attributevalue.MarshalMap(toDeliveryRecordItem(d))
	if err != nil {
		return entities.DeliveryRecord{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.DeliveryRecord{}, err
	}
	return d, nil
}

func toDeliveryRecordItem(d entities.DeliveryRecord) deliveryRecordItem {
	return deliveryRecordItem{
		ID:             d.ID,
		BillingEventID: d.BillingEventID,
		TenantID:       d.TenantID,
		Channel:        string(d.Channel),
		Status:         string(d.Status),
		TrackingID:     d.TrackingID,
		OpenCount:      d.Engagement.OpenCount,
		ClickCount:     d.Engagement.ClickCount,
		FirstOpenedAt:  formatOptionalTime(d.Engagement.FirstOpenedAt),
		LastOpenedAt:   formatOptionalTime(d.Engagement.LastOpenedAt),
		FirstClickedAt: formatOptionalTime(d.Engagement.FirstClickedAt),
		LastClickedAt:  formatOptionalTime(d.Engagement.LastClickedAt),
		LastLink:       d.Engagement.LastLink,
		LastErrorCode:  d.LastErrorCode,
		LastErrorMsg:   d.LastErrorMsg,
		CreatedAt:      d.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:      d.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromDeliveryRecordItem(it deliveryRecordItem) entities.DeliveryRecord {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.DeliveryRecord{
		ID:             it.ID,
		BillingEventID: it.BillingEventID,
		TenantID:       it.TenantID,
		Channel:        entities.NotificationChannel(it.Channel),
		Status:         entities.DeliveryStatus(it.Status),
		TrackingID:     it.TrackingID,
		Engagement: entities.Engagement{
			OpenCount:      it.OpenCount,
			ClickCount:     it.ClickCount,
			FirstOpenedAt:  parseOptionalTime(it.FirstOpenedAt),
			LastOpenedAt:   parseOptionalTime(it.LastOpenedAt),
			FirstClickedAt: parseOptionalTime(it.FirstClickedAt),
			LastClickedAt:  parseOptionalTime(it.LastClickedAt),
			LastLink:       it.LastLink,
		},
		LastErrorCode: it.LastErrorCode,
		LastErrorMsg:  it.LastErrorMsg,
		CreatedAt:     createdAt,
		UpdatedAt:     updatedAt,
	}
}
