package interfaces

import (
	"context"
	"cobranca_service/internal/domain/entities"
)

// IBillingRuleRepository abstracts DynamoDB persistence for BillingRule.
//
// GetByToken backs the webhook hot path (every ingestion call resolves the
// rule by token); implementations may sit behind a cache decorator.
// Lookups return a zero-value rule (ID == "") when nothing matches.

type IBillingRuleRepository interface {
	Create(ctx context.Context, r entities.BillingRule) (entities.BillingRule, error)
	GetByID(ctx context.Context, id string) (entities.BillingRule, error)
	GetByToken(ctx context.Context, token string) (entities.BillingRule, error)
	Update(ctx context.Context, r entities.BillingRule) (entities.BillingRule, error)
	ListByTenantID(ctx context.Context, tenantID string) ([]entities.BillingRule, error)
}
