package response

import (
	"time"

	"cobranca_service/internal/domain/entities"
)

type EngagementResponse struct {
	OpenCount      int        `json:"open_count"`
	ClickCount     int        `json:"click_count"`
	FirstOpenedAt  *time.Time `json:"first_opened_at,omitempty"`
	LastOpenedAt   *time.Time `json:"last_opened_at,omitempty"`
	FirstClickedAt *time.Time `json:"first_clicked_at,omitempty"`
	LastClickedAt  *time.Time `json:"last_clicked_at,omitempty"`
	LastLink       string     `json:"last_link,omitempty"`
}

type DeliveryRecordResponse struct {
	ID             string             `json:"id"`
	BillingEventID string             `json:"billing_event_id"`
	Channel        string             `json:"channel"`
	Status         string             `json:"status"`
	TrackingID     string             `json:"tracking_id"`
	Engagement     EngagementResponse `json:"engagement"`
	LastErrorCode  string             `json:"last_error_code,omitempty"`
	LastErrorMsg   string             `json:"last_error_msg,omitempty"`
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at"`
}

func FromDeliveryRecord(d entities.DeliveryRecord) DeliveryRecordResponse {
	return DeliveryRecordResponse{
		ID:             d.ID,
		BillingEventID: d.BillingEventID,
		Channel:        string(d.Channel),
		Status:         string(d.Status),
		TrackingID:     d.TrackingID,
		Engagement: EngagementResponse{
			OpenCount:      d.Engagement.OpenCount,
			ClickCount:     d.Engagement.ClickCount,
			FirstOpenedAt:  d.Engagement.FirstOpenedAt,
			LastOpenedAt:   d.Engagement.LastOpenedAt,
			FirstClickedAt: d.Engagement.FirstClickedAt,
			LastClickedAt:  d.Engagement.LastClickedAt,
			LastLink:       d.Engagement.LastLink,
		},
		LastErrorCode: d.LastErrorCode,
		LastErrorMsg:  d.LastErrorMsg,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}

type StatusChangeResponse struct {
	ID             string    `json:"id"`
	PreviousStatus string    `json:"previous_status"`
	NewStatus      string    `json:"new_status"`
	OccurredAt     time.Time `json:"occurred_at"`
	Detail         string    `json:"detail,omitempty"`
}

func FromStatusChanges(changes []entities.DeliveryStatusChange) []StatusChangeResponse {
	out := make([]StatusChangeResponse, 0, len(changes))
	for _, c := range changes {
		out = append(out, StatusChangeResponse{
			ID:             c.ID,
			PreviousStatus: string(c.PreviousStatus),
			NewStatus:      string(c.NewStatus),
			OccurredAt:     c.OccurredAt,
			Detail:         c.Detail,
		})
	}
	return out
}

// ProviderCallbackResponse is deliberately thin: the provider only needs an
// acknowledgement, never our internals.
type ProviderCallbackResponse struct {
	Message string `json:"message"`
}
