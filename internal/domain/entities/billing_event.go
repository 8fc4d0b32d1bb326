package entities

import "time"

// BillingEventStatus is the lifecycle of a cobranca from ingestion to the
// external dispatcher's hands. Events are never deleted; cancellation is a
// status, not a removal.

type BillingEventStatus string

const (
	BillingEventStatusPendente   BillingEventStatus = "pendente"
	BillingEventStatusProcessado BillingEventStatus = "processado"
	BillingEventStatusFalha      BillingEventStatus = "falha"
	BillingEventStatusCancelado  BillingEventStatus = "cancelado"
)

// BillingEvent is one concrete reminder (cobranca) derived from a rule and
// a due date. Created by ingestion with status pendente; the dispatch worker
// owns the later status/attempt mutations.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (rule_id-index): rule_id
//
// DispatchDate is derived exactly once at creation and is guaranteed not to
// be in the past at that moment.
type BillingEvent struct {
	ID           string             `json:"id"`
	RuleID       string             `json:"rule_id"`
	TenantID     string             `json:"tenant_id"`
	Payload      map[string]string  `json:"payload"`
	DueDate      time.Time          `json:"due_date"`
	DispatchDate time.Time          `json:"dispatch_date"`
	Status       BillingEventStatus `json:"status"`
	Attempts     int                `json:"attempts"`
	LastError    string             `json:"last_error,omitempty"`
	CreatedAt    time.Time          `json:"created_at"`
}
