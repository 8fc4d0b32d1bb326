package entities

import (
	"strings"
	"time"
)

// NotificationChannel is the outbound channel a rule notifies through.

type NotificationChannel string

const (
	ChannelEmail    NotificationChannel = "email"
	ChannelSMS      NotificationChannel = "sms"
	ChannelWhatsApp NotificationChannel = "whatsapp"
)

func (c NotificationChannel) Valid() bool {
	switch c {
	case ChannelEmail, ChannelSMS, ChannelWhatsApp:
		return true
	}
	return false
}

// TimingMode defines how a rule's offset relates to the due date.

type TimingMode string

const (
	TimingModeAntes  TimingMode = "antes"
	TimingModeDepois TimingMode = "depois"
	TimingModeExato  TimingMode = "exato"
)

// TimingUnit is the unit of the rule offset. Calendar-ambiguous units
// (months) are intentionally not supported.

type TimingUnit string

const (
	TimingUnitMinutos TimingUnit = "minutos"
	TimingUnitHoras   TimingUnit = "horas"
	TimingUnitDias    TimingUnit = "dias"
)

// Timing is the relative-timing spec of a billing rule.
//
// Amount/Unit are kept even for TimingModeExato so the UI can still render
// the configured values.
type Timing struct {
	Mode   TimingMode `json:"mode"`
	Amount int        `json:"amount"`
	Unit   TimingUnit `json:"unit"`
}

func (t Timing) Valid() bool {
	if t.Amount <= 0 {
		return false
	}
	switch t.Mode {
	case TimingModeAntes, TimingModeDepois, TimingModeExato:
	default:
		return false
	}
	switch t.Unit {
	case TimingUnitMinutos, TimingUnitHoras, TimingUnitDias:
	default:
		return false
	}
	return true
}

func (t Timing) offset() time.Duration {
	switch t.Unit {
	case TimingUnitMinutos:
		return time.Duration(t.Amount) * time.Minute
	case TimingUnitHoras:
		return time.Duration(t.Amount) * time.Hour
	case TimingUnitDias:
		return time.Duration(t.Amount) * 24 * time.Hour
	}
	return 0
}

// ComputeDispatch derives the absolute dispatch timestamp for a due date.
// Pure arithmetic: no clock reads, no I/O. The past-date guard belongs to
// the caller at creation time, so re-evaluating an existing event never
// retroactively invalidates it.
func (t Timing) ComputeDispatch(dueDate time.Time) time.Time {
	switch t.Mode {
	case TimingModeAntes:
		return dueDate.Add(-t.offset())
	case TimingModeDepois:
		return dueDate.Add(t.offset())
	default:
		return dueDate
	}
}

// BillingRule is the tenant-scoped configuration that drives reminder
// creation. External systems push billing rows against its webhook token.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (token-index): token
//
// Token lifecycle:
//   - issued at creation, globally unique
//   - regenerable by the tenant; the old token is invalid immediately
type BillingRule struct {
	ID             string              `json:"id"`
	TenantID       string              `json:"tenant_id"`
	Name           string              `json:"name"`
	Active         bool                `json:"active"`
	Channel        NotificationChannel `json:"channel"`
	Token          string              `json:"token"`
	Timing         Timing              `json:"timing"`
	Template       string              `json:"template"`
	RequiredFields []SystemField       `json:"required_fields"`
	TemplateVars   []string            `json:"template_vars"`
	CreatedAt      time.Time           `json:"created_at"`
	UpdatedAt      time.Time           `json:"updated_at"`
}

// RequiresField reports whether the rule declares the given system field.
func (r BillingRule) RequiresField(f SystemField) bool {
	for _, rf := range r.RequiredFields {
		if rf == f {
			return true
		}
	}
	return false
}

// RequiredTemplateVars returns the template variables a row must supply.
// The due-date variable is injected by the pipeline itself and is never
// demanded from the caller.
func (r BillingRule) RequiredTemplateVars() []string {
	vars := make([]string, 0, len(r.TemplateVars))
	for _, v := range r.TemplateVars {
		if strings.EqualFold(v, DueDateVariable) {
			continue
		}
		vars = append(vars, v)
	}
	return vars
}
