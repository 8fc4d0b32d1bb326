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
	defaultRulesTableName = "billing_rules"
	rulesTokenIndex       = "token-index"
	rulesTenantIDIndex    = "tenant_id-index"
)

type billingRuleItem struct {
	ID             string   `dynamodbav:"id"`
	TenantID       string   `dynamodbav:"tenant_id"`
	Name           string   `dynamodbav:"name"`
	Active         bool     `dynamodbav:"active"`
	Channel        string   `dynamodbav:"channel"`
	Token          string   `dynamodbav:"token"`
	TimingMode     string   `dynamodbav:"timing_mode"`
	TimingAmount   int      `dynamodbav:"timing_amount"`
	TimingUnit     string   `dynamodbav:"timing_unit"`
	Template       string   `dynamodbav:"template"`
	RequiredFields []string `dynamodbav:"required_fields,omitempty"`
	TemplateVars   []string `dynamodbav:"template_vars,omitempty"`
	CreatedAt      string   `dynamodbav:"created_at"`
	UpdatedAt      string   `dynamodbav:"updated_at"`
}

// BillingRuleDynamoRepository persists BillingRule entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: token-index (PK: token)
//   - GSI: tenant_id-index (PK: tenant_id)

type BillingRuleDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IBillingRuleRepository = (*BillingRuleDynamoRepository)(nil)

func NewBillingRuleDynamoRepository(ddb *dynamodb.Client) *BillingRuleDynamoRepository {
	return &BillingRuleDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("RULES_TABLE", defaultRulesTableName),
	}
}

func (r *BillingRuleDynamoRepository) Create(ctx context.Context, rule entities.BillingRule) (entities.BillingRule, error) {
	av, err := attributevalue.MarshalMap(toBillingRuleItem(rule))
	if err != nil {
		return entities.BillingRule{}, err
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
		return entities.BillingRule{}, err
	}
	return rule, nil
}

func (r *BillingRuleDynamoRepository) GetByID(ctx context.Context, id string) (entities.BillingRule, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.BillingRule{}, err
	}
	if len(out.Item) == 0 {
		return entities.BillingRule{}, nil
	}

	var it billingRuleItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.BillingRule{}, err
	}
	return fromBillingRuleItem(it), nil
}

func (r *BillingRuleDynamoRepository) GetByToken(ctx context.Context, token string) (entities.BillingRule, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(rulesTokenIndex),
		KeyConditionExpression: aws.String("#token = :token"),
		ExpressionAttributeNames: map[string]string{
			"#token": "token",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":token": &types.AttributeValueMemberS{Value: token},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.BillingRule{}, err
	}
	if len(out.Items) == 0 {
		return entities.BillingRule{}, nil
	}

	var it billingRuleItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.BillingRule{}, err
	}
	return fromBillingRuleItem(it), nil
}

func (r *BillingRuleDynamoRepository) Update(ctx context.Context, rule entities.BillingRule) (entities.BillingRule, error) {
	av, err := attributevalue.MarshalMap(toBillingRuleItem(rule))
	if err != nil {
		return entities.BillingRule{}, err
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
		return entities.BillingRule{}, err
	}
	return rule, nil
}

func (r *BillingRuleDynamoRepository) ListByTenantID(ctx context.Context, tenantID string) ([]entities.BillingRule, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(rulesTenantIDIndex),
		KeyConditionExpression: aws.String("tenant_id = :tid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":tid": &types.AttributeValueMemberS{Value: tenantID},
		},
	})
	if err != nil {
		return nil, err
	}

	rules := make([]entities.BillingRule, 0, len(out.Items))
	for _, raw := range out.Items {
		var it billingRuleItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		rules = append(rules, fromBillingRuleItem(it))
	}
	return rules, nil
}

func toBillingRuleItem(rule entities.BillingRule) billingRuleItem {
	fields := make([]string, 0, len(rule.RequiredFields))
	for _, f := range rule.RequiredFields {
		fields = append(fields, string(f))
	}
	return billingRuleItem{
		ID:             rule.ID,
		TenantID:       rule.TenantID,
		Name:           rule.Name,
		Active:         rule.Active,
		Channel:        string(rule.Channel),
		Token:          rule.Token,
		TimingMode:     string(rule.Timing.Mode),
		TimingAmount:   rule.Timing.Amount,
		TimingUnit:     string(rule.Timing.Unit),
		Template:       rule.Template,
		RequiredFields: fields,
		TemplateVars:   rule.TemplateVars,
		CreatedAt:      rule.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:      rule.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromBillingRuleItem(it billingRuleItem) entities.BillingRule {
	fields := make([]entities.SystemField, 0, len(it.RequiredFields))
	for _, f := range it.RequiredFields {
		fields = append(fields, entities.SystemField(f))
	}
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.BillingRule{
		ID:       it.ID,
		TenantID: it.TenantID,
		Name:     it.Name,
		Active:   it.Active,
		Channel:  entities.NotificationChannel(it.Channel),
		Token:    it.Token,
		Timing: entities.Timing{
			Mode:   entities.TimingMode(it.TimingMode),
			Amount: it.TimingAmount,
			Unit:   entities.TimingUnit(it.TimingUnit),
		},
		Template:       it.Template,
		RequiredFields: fields,
		TemplateVars:   it.TemplateVars,
		CreatedAt:      createdAt,
		UpdatedAt:      updatedAt,
	}
}
