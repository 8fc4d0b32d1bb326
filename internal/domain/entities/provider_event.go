package entities

import "strings"

// ProviderEventKind is the normalized vocabulary of delivery-provider
// callbacks. Providers use several aliases per event ("click"/"clicked",
// "dropped"/"blocked"); the raw string is parsed exactly once at the
// boundary and only the enum circulates afterwards. Values outside the
// known set map to ProviderEventUnknown, which is never fatal — provider
// vocabularies grow.

type ProviderEventKind string

const (
	ProviderEventSent        ProviderEventKind = "sent"
	ProviderEventDelivered   ProviderEventKind = "delivered"
	ProviderEventOpened      ProviderEventKind = "opened"
	ProviderEventClicked     ProviderEventKind = "clicked"
	ProviderEventSoftBounce  ProviderEventKind = "soft_bounce"
	ProviderEventHardBounce  ProviderEventKind = "hard_bounce"
	ProviderEventDeferred    ProviderEventKind = "deferred"
	ProviderEventInvalid     ProviderEventKind = "invalid_email"
	ProviderEventBlocked     ProviderEventKind = "blocked"
	ProviderEventComplaint   ProviderEventKind = "complaint"
	ProviderEventUnsubscribe ProviderEventKind = "unsubscribed"
	ProviderEventSendError   ProviderEventKind = "send_error"
	ProviderEventUnknown     ProviderEventKind = "unknown"
)

// ParseProviderEventKind maps a raw provider event name to the enum.
func ParseProviderEventKind(raw string) ProviderEventKind {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "sent", "send", "processed":
		return ProviderEventSent
	case "delivered", "delivery":
		return ProviderEventDelivered
	case "open", "opened":
		return ProviderEventOpened
	case "click", "clicked":
		return ProviderEventClicked
	case "soft_bounce", "softbounce":
		return ProviderEventSoftBounce
	case "bounce", "bounced", "hard_bounce", "hardbounce":
		return ProviderEventHardBounce
	case "deferred":
		return ProviderEventDeferred
	case "invalid", "invalid_email":
		return ProviderEventInvalid
	case "block", "blocked", "dropped":
		return ProviderEventBlocked
	case "spam", "spamreport", "spam_report", "complaint":
		return ProviderEventComplaint
	case "unsubscribe", "unsubscribed":
		return ProviderEventUnsubscribe
	case "error", "send_error", "failed":
		return ProviderEventSendError
	}
	return ProviderEventUnknown
}

// Engagement reports whether the event is an open/click interaction.
// Engagement events update counters even on records whose delivery already
// failed; they never revive a failed delivery status.
func (k ProviderEventKind) Engagement() bool {
	return k == ProviderEventOpened || k == ProviderEventClicked
}

// Failure reports whether the event maps to a failure delivery status.
func (k ProviderEventKind) Failure() bool {
	switch k {
	case ProviderEventSoftBounce, ProviderEventHardBounce, ProviderEventDeferred,
		ProviderEventInvalid, ProviderEventBlocked, ProviderEventComplaint,
		ProviderEventUnsubscribe, ProviderEventSendError:
		return true
	}
	return false
}

// FailureStatus returns the delivery status a failure event resolves to.
func (k ProviderEventKind) FailureStatus() (DeliveryStatus, bool) {
	switch k {
	case ProviderEventSoftBounce:
		return DeliveryStatusSoftBounce, true
	case ProviderEventHardBounce:
		return DeliveryStatusHardBounce, true
	case ProviderEventDeferred:
		return DeliveryStatusDeferred, true
	case ProviderEventInvalid:
		return DeliveryStatusEmailInvalido, true
	case ProviderEventBlocked:
		return DeliveryStatusBloqueado, true
	case ProviderEventComplaint:
		return DeliveryStatusReclamacao, true
	case ProviderEventUnsubscribe:
		return DeliveryStatusDescadastrado, true
	case ProviderEventSendError:
		return DeliveryStatusErroEnvio, true
	}
	return "", false
}
