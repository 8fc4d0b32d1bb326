package entities

import "testing"

func TestParseProviderEventKind(t *testing.T) {
	cases := []struct {
		raw  string
		want ProviderEventKind
	}{
		{"sent", ProviderEventSent},
		{"send", ProviderEventSent},
		{"processed", ProviderEventSent},
		{"delivered", ProviderEventDelivered},
		{"delivery", ProviderEventDelivered},
		{"open", ProviderEventOpened},
		{"OPENED", ProviderEventOpened},
		{"click", ProviderEventClicked},
		{"clicked", ProviderEventClicked},
		{"soft_bounce", ProviderEventSoftBounce},
		{"bounce", ProviderEventHardBounce},
		{"hardbounce", ProviderEventHardBounce},
		{"deferred", ProviderEventDeferred},
		{"invalid_email", ProviderEventInvalid},
		{"dropped", ProviderEventBlocked},
		{"blocked", ProviderEventBlocked},
		{"spamreport", ProviderEventComplaint},
		{"complaint", ProviderEventComplaint},
		{"unsubscribe", ProviderEventUnsubscribe},
		{"failed", ProviderEventSendError},
		{"  delivered  ", ProviderEventDelivered},
		{"algo_novo", ProviderEventUnknown},
		{"", ProviderEventUnknown},
	}
	for _, tc := range cases {
		t.Run(tc.raw, func(t *testing.T) {
			if got := ParseProviderEventKind(tc.raw); got != tc.want {
				t.Fatalf("ParseProviderEventKind(%q) = %s, want %s", tc.raw, got, tc.want)
			}
		})
	}
}

func TestProviderEventKind_Classification(t *testing.T) {
	if !ProviderEventOpened.Engagement() || !ProviderEventClicked.Engagement() {
		t.Fatal("opened and clicked must be engagement events")
	}
	if ProviderEventDelivered.Engagement() {
		t.Fatal("delivered is not an engagement event")
	}
	if !ProviderEventHardBounce.Failure() {
		t.Fatal("hard bounce must be a failure event")
	}
	if ProviderEventOpened.Failure() {
		t.Fatal("opened is not a failure event")
	}
}

func TestProviderEventKind_FailureStatus(t *testing.T) {
	cases := []struct {
		kind ProviderEventKind
		want DeliveryStatus
	}{
		{ProviderEventSoftBounce, DeliveryStatusSoftBounce},
		{ProviderEventHardBounce, DeliveryStatusHardBounce},
		{ProviderEventDeferred, DeliveryStatusDeferred},
		{ProviderEventInvalid, DeliveryStatusEmailInvalido},
		{ProviderEventBlocked, DeliveryStatusBloqueado},
		{ProviderEventComplaint, DeliveryStatusReclamacao},
		{ProviderEventUnsubscribe, DeliveryStatusDescadastrado},
		{ProviderEventSendError, DeliveryStatusErroEnvio},
	}
	for _, tc := range cases {
		status, ok := tc.kind.FailureStatus()
		if !ok || status != tc.want {
			t.Fatalf("FailureStatus(%s) = (%s, %t), want (%s, true)", tc.kind, status, ok, tc.want)
		}
	}

	if _, ok := ProviderEventDelivered.FailureStatus(); ok {
		t.Fatal("delivered must not resolve to a failure status")
	}
}
