package interfaces

import (
	"context"
	"cobranca_service/internal/domain/entities"
)

// IBillingEventRepository abstracts DynamoDB persistence for BillingEvent.
//
// Each successful ingestion row is persisted through Create as its own unit
// of work; a fault halfway through a batch must not lose earlier rows.

type IBillingEventRepository interface {
	Create(ctx context.Context, e entities.BillingEvent) (entities.BillingEvent, error)
	GetByID(ctx context.Context, id string) (entities.BillingEvent, error)
	ListByRuleID(ctx context.Context, ruleID string) ([]entities.BillingEvent, error)
}
