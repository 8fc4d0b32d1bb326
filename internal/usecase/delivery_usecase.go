package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"cobranca_service/internal/domain/entities"
	"cobranca_service/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidBillingEventID = errors.New("invalid billing event id")
	ErrInvalidTrackingID     = errors.New("invalid tracking id")
	ErrInvalidDeliveryID     = errors.New("invalid delivery record id")
	ErrBillingEventNotFound  = errors.New("billing event not found")
	ErrDeliveryNotFound      = errors.New("delivery record not found")
	ErrTrackingIDConflict    = errors.New("tracking id already bound to another delivery")
)

// ProviderEventInput is one normalized provider callback. Kind has already
// been parsed at the boundary; timestamps are the provider's event time, not
// our processing time (nil means the provider sent none).
type ProviderEventInput struct {
	Kind       entities.ProviderEventKind
	TrackingID string
	OccurredAt *time.Time
	Reason     string
	Code       string
	Link       string
	OriginIP   string
	UserAgent  string
}

// ApplyOutcome tells the boundary what happened to one provider event.
// Everything here is a success from the provider's point of view — the
// provider channel must never be pushed into destructive retries.
type ApplyOutcome string

const (
	ApplyOutcomeApplied    ApplyOutcome = "applied"
	ApplyOutcomeEngagement ApplyOutcome = "engagement_only"
	ApplyOutcomeNoOp       ApplyOutcome = "no_op"
	ApplyOutcomeNotFound   ApplyOutcome = "not_found"
	ApplyOutcomeUnknown    ApplyOutcome = "unknown_kind"
)

// IDeliveryUseCase owns the notification delivery state machine: dispatch
// registration by the external sender and provider-event application.

type IDeliveryUseCase interface {
	RegisterDispatch(ctx context.Context, billingEventID string, channel entities.NotificationChannel, trackingID string) (entities.DeliveryRecord, error)
	ApplyProviderEvent(ctx context.Context, ev ProviderEventInput) (ApplyOutcome, error)
	GetByTrackingID(ctx context.Context, trackingID string) (entities.DeliveryRecord, error)
	ListHistory(ctx context.Context, deliveryRecordID string) ([]entities.DeliveryStatusChange, error)
}

type DeliveryUseCase struct {
	recordRepo  interfaces.IDeliveryRecordRepository
	historyRepo interfaces.IDeliveryHistoryRepository
	eventRepo   interfaces.IBillingEventRepository
	now         func() time.Time
}

var _ IDeliveryUseCase = (*DeliveryUseCase)(nil)

func NewDeliveryUseCase(recordRepo interfaces.IDeliveryRecordRepository, historyRepo interfaces.IDeliveryHistoryRepository, eventRepo interfaces.IBillingEventRepository) *DeliveryUseCase {
	return &DeliveryUseCase{
		recordRepo:  recordRepo,
		historyRepo: historyRepo,
		eventRepo:   eventRepo,
		now:         time.Now,
	}
}

// RegisterDispatch is called by the dispatch worker once the provider
// accepted a send. It creates the DeliveryRecord bound to the provider
// tracking id. Calling it again with the same pair is idempotent; reusing a
// tracking id for a different billing event is a conflict.
func (u *DeliveryUseCase) RegisterDispatch(ctx context.Context, billingEventID string, channel entities.NotificationChannel, trackingID string) (entities.DeliveryRecord, error) {
	billingEventID = strings.TrimSpace(billingEventID)
	trackingID = strings.TrimSpace(trackingID)
	if billingEventID == "" {
		return entities.DeliveryRecord{}, ErrInvalidBillingEventID
	}
	if trackingID == "" {
		return entities.DeliveryRecord{}, ErrInvalidTrackingID
	}

	existing, err := u.recordRepo.GetByTrackingID(ctx, trackingID)
	if err != nil {
		return entities.DeliveryRecord{}, err
	}
	if existing.ID != "" {
		if existing.BillingEventID == billingEventID {
			log.Printf("[delivery][usecase] dispatch re-registered tracking_id=%s record_id=%s", trackingID, existing.ID)
			return existing, nil
		}
		return entities.DeliveryRecord{}, ErrTrackingIDConflict
	}

	event, err := u.eventRepo.GetByID(ctx, billingEventID)
	if err != nil {
		return entities.DeliveryRecord{}, err
	}
	if event.ID == "" {
		return entities.DeliveryRecord{}, ErrBillingEventNotFound
	}

	now := u.now().UTC()
	record := entities.DeliveryRecord{
		ID:             uuid.NewString(),
		BillingEventID: event.ID,
		TenantID:       event.TenantID,
		Channel:        channel,
		Status:         entities.DeliveryStatusEnviado,
		TrackingID:     trackingID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	created, err := u.recordRepo.Create(ctx, record)
	if err != nil {
		return entities.DeliveryRecord{}, err
	}

	u.appendHistory(ctx, created.ID, entities.DeliveryStatusPendente, entities.DeliveryStatusEnviado, now, "dispatch registrado", "", "")
	log.Printf("[delivery][usecase] dispatch registered billing_event_id=%s tracking_id=%s record_id=%s", billingEventID, trackingID, created.ID)
	return created, nil
}

// ApplyProviderEvent applies one inbound provider event against the record
// matched by tracking id.
//
// Contract:
//   - unknown tracking id: logged and dropped, never an error (providers may
//     reference sends outside this environment)
//   - unknown event kind: logged, no state change
//   - status only moves up the success ranking; failure states are entered
//     once and later non-engagement events cannot downgrade further
//   - engagement counters update for every accepted open/click regardless of
//     status ordering; a counter-only update appends no history row
func (u *DeliveryUseCase) ApplyProviderEvent(ctx context.Context, ev ProviderEventInput) (ApplyOutcome, error) {
	if ev.Kind == entities.ProviderEventUnknown {
		log.Printf("[delivery][usecase] unrecognized event kind tracking_id=%s", ev.TrackingID)
		return ApplyOutcomeUnknown, nil
	}
	trackingID := strings.TrimSpace(ev.TrackingID)
	if trackingID == "" {
		return ApplyOutcomeNoOp, ErrInvalidTrackingID
	}

	record, err := u.recordRepo.GetByTrackingID(ctx, trackingID)
	if err != nil {
		return ApplyOutcomeNoOp, err
	}
	if record.ID == "" {
		log.Printf("[delivery][usecase] event for unknown tracking id dropped tracking_id=%s kind=%s", trackingID, ev.Kind)
		return ApplyOutcomeNotFound, nil
	}

	eventTime := u.now().UTC()
	if ev.OccurredAt != nil {
		eventTime = ev.OccurredAt.UTC()
	}

	previous := record.Status
	engaged := false
	errored := false

	switch ev.Kind {
	case entities.ProviderEventSent:
		u.promote(&record, entities.DeliveryStatusEnviado)
	case entities.ProviderEventDelivered:
		u.promote(&record, entities.DeliveryStatusEntregue)
	case entities.ProviderEventOpened:
		record.Engagement.ApplyOpen(eventTime)
		engaged = true
		u.promote(&record, entities.DeliveryStatusAberto)
	case entities.ProviderEventClicked:
		record.Engagement.ApplyClick(eventTime, ev.Link)
		engaged = true
		u.promote(&record, entities.DeliveryStatusClicado)
	default:
		if status, ok := ev.Kind.FailureStatus(); ok {
			record.LastErrorCode = ev.Code
			record.LastErrorMsg = ev.Reason
			errored = true
			if !record.Status.Failure() {
				record.Status = status
			}
		}
	}

	transitioned := record.Status != previous
	if !transitioned && !engaged && !errored {
		log.Printf("[delivery][usecase] event was a no-op tracking_id=%s kind=%s status=%s", trackingID, ev.Kind, record.Status)
		return ApplyOutcomeNoOp, nil
	}

	record.UpdatedAt = u.now().UTC()
	if _, err := u.recordRepo.Update(ctx, record); err != nil {
		return ApplyOutcomeNoOp, err
	}

	if transitioned {
		u.appendHistory(ctx, record.ID, previous, record.Status, eventTime, ev.Reason, ev.OriginIP, ev.UserAgent)
		log.Printf("[delivery][usecase] transition tracking_id=%s %s -> %s kind=%s", trackingID, previous, record.Status, ev.Kind)
		return ApplyOutcomeApplied, nil
	}
	if engaged {
		log.Printf("[delivery][usecase] engagement update tracking_id=%s kind=%s opens=%d clicks=%d", trackingID, ev.Kind, record.Engagement.OpenCount, record.Engagement.ClickCount)
		return ApplyOutcomeEngagement, nil
	}
	log.Printf("[delivery][usecase] failure detail refreshed tracking_id=%s kind=%s status=%s", trackingID, ev.Kind, record.Status)
	return ApplyOutcomeNoOp, nil
}

// promote raises the record to the target success status when that is an
// upward move. Failure states are never promoted out of by non-engagement
// means, and engagement never revives a failed delivery.
func (u *DeliveryUseCase) promote(record *entities.DeliveryRecord, target entities.DeliveryStatus) {
	if record.Status.Failure() {
		return
	}
	currentRank, _ := record.Status.Rank()
	targetRank, _ := target.Rank()
	if targetRank > currentRank {
		record.Status = target
	}
}

func (u *DeliveryUseCase) appendHistory(ctx context.Context, recordID string, previous, next entities.DeliveryStatus, at time.Time, detail, ip, userAgent string) {
	change := entities.DeliveryStatusChange{
		ID:               uuid.NewString(),
		DeliveryRecordID: recordID,
		PreviousStatus:   previous,
		NewStatus:        next,
		OccurredAt:       at,
		Detail:           detail,
		OriginIP:         ip,
		OriginUserAgent:  userAgent,
	}
	if _, err := u.historyRepo.Append(ctx, change); err != nil {
		log.Printf("[delivery][usecase] history append failed record_id=%s %s -> %s err=%v", recordID, previous, next, err)
	}
}

func (u *DeliveryUseCase) GetByTrackingID(ctx context.Context, trackingID string) (entities.DeliveryRecord, error) {
	trackingID = strings.TrimSpace(trackingID)
	if trackingID == "" {
		return entities.DeliveryRecord{}, ErrInvalidTrackingID
	}
	record, err := u.recordRepo.GetByTrackingID(ctx, trackingID)
	if err != nil {
		return entities.DeliveryRecord{}, err
	}
	if record.ID == "" {
		return entities.DeliveryRecord{}, ErrDeliveryNotFound
	}
	return record, nil
}

func (u *DeliveryUseCase) ListHistory(ctx context.Context, deliveryRecordID string) ([]entities.DeliveryStatusChange, error) {
	deliveryRecordID = strings.TrimSpace(deliveryRecordID)
	if deliveryRecordID == "" {
		return nil, ErrInvalidDeliveryID
	}
	return u.historyRepo.ListByDeliveryRecordID(ctx, deliveryRecordID)
}
