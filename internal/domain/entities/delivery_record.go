package entities

import "time"

// DeliveryStatus is the lifecycle of one dispatched notification as reported
// by the provider. The success path is ranked (pendente → enviado → entregue
// → aberto → clicado) and a record never moves down the ranking; failure
// states are reachable from enviado/entregue and are not left once entered.

type DeliveryStatus string

const (
	DeliveryStatusPendente DeliveryStatus = "pendente"
	DeliveryStatusEnviado  DeliveryStatus = "enviado"
	DeliveryStatusEntregue DeliveryStatus = "entregue"
	DeliveryStatusAberto   DeliveryStatus = "aberto"
	DeliveryStatusClicado  DeliveryStatus = "clicado"

	DeliveryStatusSoftBounce    DeliveryStatus = "soft_bounce"
	DeliveryStatusDeferred      DeliveryStatus = "deferred"
	DeliveryStatusHardBounce    DeliveryStatus = "hard_bounce"
	DeliveryStatusEmailInvalido DeliveryStatus = "email_invalido"
	DeliveryStatusBloqueado     DeliveryStatus = "bloqueado"
	DeliveryStatusReclamacao    DeliveryStatus = "reclamacao"
	DeliveryStatusDescadastrado DeliveryStatus = "descadastrado"
	DeliveryStatusErroEnvio     DeliveryStatus = "erro_envio"
)

var deliveryStatusRank = map[DeliveryStatus]int{
	DeliveryStatusPendente: 0,
	DeliveryStatusEnviado:  1,
	DeliveryStatusEntregue: 2,
	DeliveryStatusAberto:   3,
	DeliveryStatusClicado:  4,
}

// Rank returns the position of a success-path status; failure states have
// no rank (ok=false).
func (s DeliveryStatus) Rank() (int, bool) {
	r, ok := deliveryStatusRank[s]
	return r, ok
}

// Failure reports whether the status is one of the failure branches.
func (s DeliveryStatus) Failure() bool {
	_, ok := deliveryStatusRank[s]
	return !ok
}

// DeliveryRecord tracks one dispatch attempt for a billing event
// (historico de notificacao). Created by the external dispatcher when it
// hands the message to the provider; every later mutation goes through the
// state machine in the delivery usecase.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (tracking_id-index): tracking_id
//   - GSI2 (billing_event_id-index): billing_event_id
//
// TrackingID is the provider correlation key: set once at dispatch, unique,
// immutable. Inbound provider events are matched against it.
type DeliveryRecord struct {
	ID             string              `json:"id"`
	BillingEventID string              `json:"billing_event_id"`
	TenantID       string              `json:"tenant_id"`
	Channel        NotificationChannel `json:"channel"`
	Status         DeliveryStatus      `json:"status"`
	TrackingID     string              `json:"tracking_id"`
	Engagement     Engagement          `json:"engagement"`
	LastErrorCode  string              `json:"last_error_code,omitempty"`
	LastErrorMsg   string              `json:"last_error_msg,omitempty"`
	CreatedAt      time.Time           `json:"created_at"`
	UpdatedAt      time.Time           `json:"updated_at"`
}

// DeliveryStatusChange is the append-only audit row written for every
// accepted status transition. Engagement-only updates (a second open on an
// already-opened record) do not produce rows.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (delivery_record_id-index): delivery_record_id
type DeliveryStatusChange struct {
	ID               string         `json:"id"`
	DeliveryRecordID string         `json:"delivery_record_id"`
	PreviousStatus   DeliveryStatus `json:"previous_status"`
	NewStatus        DeliveryStatus `json:"new_status"`
	OccurredAt       time.Time      `json:"occurred_at"`
	Detail           string         `json:"detail,omitempty"`
	OriginIP         string         `json:"origin_ip,omitempty"`
	OriginUserAgent  string         `json:"origin_user_agent,omitempty"`
}
