package repository

import (
	"context"
	"encoding/json"
	"time"

	"cobranca_service/internal/domain/entities"
	"cobranca_service/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultBatchesTableName = "import_batches"
	batchesRuleIDIndex      = "rule_id-index"
)

type importBatchItem struct {
	ID          string `dynamodbav:"id"`
	RuleID      string `dynamodbav:"rule_id"`
	TenantID    string `dynamodbav:"tenant_id"`
	Origin      string `dynamodbav:"origin"`
	SourceLabel string `dynamodbav:"source_label,omitempty"`
	TotalRows   int    `dynamodbav:"total_rows"`
	RowsOk      int    `dynamodbav:"rows_ok"`
	RowsFailed  int    `dynamodbav:"rows_failed"`
	Outcome     string `dynamodbav:"outcome"`
	RowErrors   string `dynamodbav:"row_errors,omitempty"`
	CreatedAt   string `dynamodbav:"created_at"`
}

// ImportBatchDynamoRepository persists ImportBatch audit records in DynamoDB.
// Batches are write-once; there is no update path.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: rule_id-index (PK: rule_id)
//
// Row errors are stored serialized (JSON) in a single attribute: they are
// only ever read back as a whole, alongside their batch.

type ImportBatchDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IImportBatchRepository = (*ImportBatchDynamoRepository)(nil)

func NewImportBatchDynamoRepository(ddb *dynamodb.Client) *ImportBatchDynamoRepository {
	return &ImportBatchDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("BATCHES_TABLE", defaultBatchesTableName),
	}
}

func (r *ImportBatchDynamoRepository) Create(ctx context.Context, b entities.ImportBatch) (entities.ImportBatch, error) {
	it, err := toImportBatchItem(b)
	if err != nil {
		return entities.ImportBatch{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.ImportBatch{}, err
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
		return entities.ImportBatch{}, err
	}
	return b, nil
}

func (r *ImportBatchDynamoRepository) GetByID(ctx context.Context, id string) (entities.ImportBatch, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ImportBatch{}, err
	}
	if len(out.Item) == 0 {
		return entities.ImportBatch{}, nil
	}

	var it importBatchItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ImportBatch{}, err
	}
	return fromImportBatchItem(it)
}

func (r *ImportBatchDynamoRepository) ListByRuleID(ctx context.Context, ruleID string) ([]entities.ImportBatch, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(batchesRuleIDIndex),
		KeyConditionExpression: aws.String("rule_id = :rid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":rid": &types.AttributeValueMemberS{Value: ruleID},
		},
	})
	if err != nil {
		return nil, err
	}

	batches := make([]entities.ImportBatch, 0, len(out.Items))
	for _, raw := range out.Items {
		var it importBatchItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		b, err := fromImportBatchItem(it)
		if err != nil {
			return nil, err
		}
		batches = append(batches, b)
	}
	return batches, nil
}

func toImportBatchItem(b entities.ImportBatch) (importBatchItem, error) {
	it := importBatchItem{
		ID:          b.ID,
		RuleID:      b.RuleID,
		TenantID:    b.TenantID,
		Origin:      string(b.Origin),
		SourceLabel: b.SourceLabel,
		TotalRows:   b.TotalRows,
		RowsOk:      b.RowsOk,
		RowsFailed:  b.RowsFailed,
		Outcome:     string(b.Outcome),
		CreatedAt:   b.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
	if len(b.RowErrors) > 0 {
		raw, err := json.Marshal(b.RowErrors)
		if err != nil {
			return importBatchItem{}, err
		}
		it.RowErrors = string(raw)
	}
	return it, nil
}

func fromImportBatchItem(it importBatchItem) (entities.ImportBatch, error) {
	b := entities.ImportBatch{
		ID:          it.ID,
		RuleID:      it.RuleID,
		TenantID:    it.TenantID,
		Origin:      entities.ImportOrigin(it.Origin),
		SourceLabel: it.SourceLabel,
		TotalRows:   it.TotalRows,
		RowsOk:      it.RowsOk,
		RowsFailed:  it.RowsFailed,
		Outcome:     entities.ImportOutcome(it.Outcome),
	}
	b.CreatedAt, _ = time.Parse(time.RFC3339Nano, it.CreatedAt)
	if it.RowErrors != "" {
		if err := json.Unmarshal([]byte(it.RowErrors), &b.RowErrors); err != nil {
			return entities.ImportBatch{}, err
		}
	}
	return b, nil
}
