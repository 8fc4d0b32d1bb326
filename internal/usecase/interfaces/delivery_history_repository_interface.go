package interfaces

import (
	"context"
	"cobranca_service/internal/domain/entities"
)

// IDeliveryHistoryRepository abstracts the append-only DeliveryStatusChange
// audit table. Rows are never mutated or deleted.

type IDeliveryHistoryRepository interface {
	Append(ctx context.Context, c entities.DeliveryStatusChange) (entities.DeliveryStatusChange, error)
	ListByDeliveryRecordID(ctx context.Context, deliveryRecordID string) ([]entities.DeliveryStatusChange, error)
}
