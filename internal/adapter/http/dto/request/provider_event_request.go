package request

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"cobranca_service/internal/domain/entities"
	"cobranca_service/internal/usecase"
)

// ProviderEventRequest is one delivery-provider callback. Providers are
// loose about naming and types, so the shape is permissive: the tracking id
// may arrive under two names and the timestamp as epoch seconds or a
// datetime string.
type ProviderEventRequest struct {
	Event           string          `json:"event"`
	TrackingID      string          `json:"trackingId"`
	ProviderEventID string          `json:"providerEventId"`
	Email           string          `json:"email"`
	Timestamp       json.RawMessage `json:"timestamp,omitempty"`
	Reason          string          `json:"reason,omitempty"`
	Code            string          `json:"code,omitempty"`
	Link            string          `json:"link,omitempty"`
	IP              string          `json:"ip,omitempty"`
	UserAgent       string          `json:"userAgent,omitempty"`
}

// ResolveTrackingID prefers trackingId and falls back to providerEventId.
func (r ProviderEventRequest) ResolveTrackingID() string {
	if v := strings.TrimSpace(r.TrackingID); v != "" {
		return v
	}
	return strings.TrimSpace(r.ProviderEventID)
}

// ResolveTimestamp parses the provider event time. Nil means the provider
// sent none (or something unparseable) and processing time should be used.
func (r ProviderEventRequest) ResolveTimestamp() *time.Time {
	if len(r.Timestamp) == 0 {
		return nil
	}

	var epoch int64
	if err := json.Unmarshal(r.Timestamp, &epoch); err == nil && epoch > 0 {
		t := time.Unix(epoch, 0).UTC()
		return &t
	}

	var s string
	if err := json.Unmarshal(r.Timestamp, &s); err != nil {
		return nil
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if epoch, err := strconv.ParseInt(s, 10, 64); err == nil && epoch > 0 {
		t := time.Unix(epoch, 0).UTC()
		return &t
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02 15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			t = t.UTC()
			return &t
		}
	}
	return nil
}

// ToInput normalizes the callback into the usecase input, parsing the raw
// event name into the closed kind enum exactly once.
func (r ProviderEventRequest) ToInput() usecase.ProviderEventInput {
	return usecase.ProviderEventInput{
		Kind:       entities.ParseProviderEventKind(r.Event),
		TrackingID: r.ResolveTrackingID(),
		OccurredAt: r.ResolveTimestamp(),
		Reason:     r.Reason,
		Code:       r.Code,
		Link:       r.Link,
		OriginIP:   r.IP,
		UserAgent:  r.UserAgent,
	}
}

// RegisterDispatchRequest is posted by the dispatch worker after the
// provider accepted a send.
type RegisterDispatchRequest struct {
	BillingEventID string `json:"billing_event_id" binding:"required"`
	Channel        string `json:"channel" binding:"required"`
	TrackingID     string `json:"tracking_id" binding:"required"`
}
