package interfaces

import (
	"context"
	"cobranca_service/internal/domain/entities"
)

// IImportBatchRepository abstracts DynamoDB persistence for ImportBatch.
// Batches are write-once audit records; there is no update.

type IImportBatchRepository interface {
	Create(ctx context.Context, b entities.ImportBatch) (entities.ImportBatch, error)
	GetByID(ctx context.Context, id string) (entities.ImportBatch, error)
	ListByRuleID(ctx context.Context, ruleID string) ([]entities.ImportBatch, error)
}
