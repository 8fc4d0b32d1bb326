package interfaces

import (
	"context"
	"cobranca_service/internal/domain/entities"
)

// IDeliveryRecordRepository abstracts DynamoDB persistence for
// DeliveryRecord. GetByTrackingID backs the provider-callback lookup and
// returns a zero-value record (ID == "") when nothing matches.

type IDeliveryRecordRepository interface {
	Create(ctx context.Context, d entities.DeliveryRecord) (entities.DeliveryRecord, error)
	GetByID(ctx context.Context, id string) (entities.DeliveryRecord, error)
	GetByTrackingID(ctx context.Context, trackingID string) (entities.DeliveryRecord, error)
	GetByBillingEventID(ctx context.Context, billingEventID string) (entities.DeliveryRecord, error)
	Update(ctx context.Context, d entities.DeliveryRecord) (entities.DeliveryRecord, error)
}
