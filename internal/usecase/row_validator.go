package usecase

import (
	"fmt"
	"strings"
	"time"

	"cobranca_service/internal/domain/entities"
)

// RawRow is one inbound billing row before validation: the destination/system
// fields, the due date as the caller sent it, and the free-form variables
// merged into the message template.
type RawRow struct {
	Fields  map[string]string `json:"fields"`
	DueDate string            `json:"due_date"`
	Payload map[string]string `json:"payload"`
}

// acceptedDueDateLayouts are tried in order. Brazilian dd/MM comes before
// MM/dd so ambiguous values resolve the way tenants here expect.
var acceptedDueDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
	"02/01/2006 15:04:05",
	"02/01/2006 15:04",
	"02/01/2006",
	"01/02/2006 15:04:05",
	"01/02/2006 15:04",
	"01/02/2006",
}

func parseDueDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range acceptedDueDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// lookupField finds a system field's value among the row fields.
// Field names are matched case-insensitively; values are preserved as sent.
func lookupField(fields map[string]string, want entities.SystemField) (string, bool) {
	for name, value := range fields {
		if f, ok := entities.ParseSystemField(name); ok && f == want {
			return value, true
		}
	}
	return "", false
}

// validateRow checks one raw row against the rule's contract and either
// returns a BillingEvent draft (status pendente, dispatch date computed) or
// the structured error for the report. Short-circuits on the first failing
// step; rows never influence each other.
//
// On success the system fields are merged into the payload map so the
// template can reference them; nothing is merged on failure.
func validateRow(rule entities.BillingRule, row RawRow, now time.Time) (entities.BillingEvent, *entities.RowError) {
	dueDate, ok := parseDueDate(row.DueDate)
	if !ok {
		return entities.BillingEvent{}, &entities.RowError{
			Kind:           entities.ErrorKindDataInvalida,
			Description:    "data de vencimento invalida ou ausente",
			OffendingValue: row.DueDate,
		}
	}

	for _, field := range rule.RequiredFields {
		value, found := lookupField(row.Fields, field)
		if !found || strings.TrimSpace(value) == "" {
			return entities.BillingEvent{}, &entities.RowError{
				Kind:           entities.ErrorKindCampoObrigatorioFaltando,
				Description:    fmt.Sprintf("campo obrigatorio ausente: %s", field),
				OffendingValue: string(field),
			}
		}
		if !field.ValidateFormat(value) {
			return entities.BillingEvent{}, &entities.RowError{
				Kind:           entities.ErrorKindFormatoInvalido,
				Description:    fmt.Sprintf("formato invalido para o campo %s", field),
				OffendingValue: value,
			}
		}
	}

	if missing := missingTemplateVars(rule, row); len(missing) > 0 {
		return entities.BillingEvent{}, &entities.RowError{
			Kind:           entities.ErrorKindVariavelFaltando,
			Description:    fmt.Sprintf("variaveis do template ausentes: %s", strings.Join(missing, ", ")),
			OffendingValue: strings.Join(missing, ","),
		}
	}

	dispatchDate := rule.Timing.ComputeDispatch(dueDate)
	if dispatchDate.Before(now) {
		return entities.BillingEvent{}, &entities.RowError{
			Kind:           entities.ErrorKindDataVencida,
			Description:    fmt.Sprintf("data de disparo calculada ja passou: %s", dispatchDate.Format(time.RFC3339)),
			OffendingValue: row.DueDate,
		}
	}

	payload := make(map[string]string, len(row.Payload)+len(row.Fields)+1)
	for k, v := range row.Payload {
		payload[k] = v
	}
	for name, value := range row.Fields {
		if f, ok := entities.ParseSystemField(name); ok {
			payload[string(f)] = value
		}
	}
	payload[entities.DueDateVariable] = dueDate.Format("02/01/2006")

	return entities.BillingEvent{
		RuleID:       rule.ID,
		TenantID:     rule.TenantID,
		Payload:      payload,
		DueDate:      dueDate,
		DispatchDate: dispatchDate,
		Status:       entities.BillingEventStatusPendente,
	}, nil
}

// missingTemplateVars lists every declared template variable absent from the
// row, all together, so the tenant fixes the row in one pass. A variable
// counts as present when the payload carries it under any casing, or when it
// names a system field supplied in the row fields (those are merged into the
// payload on success).
func missingTemplateVars(rule entities.BillingRule, row RawRow) []string {
	var missing []string
	for _, v := range rule.RequiredTemplateVars() {
		if hasVariable(row.Payload, v) {
			continue
		}
		if f, ok := entities.ParseSystemField(v); ok {
			if value, found := lookupField(row.Fields, f); found && strings.TrimSpace(value) != "" {
				continue
			}
		}
		missing = append(missing, v)
	}
	return missing
}

func hasVariable(payload map[string]string, name string) bool {
	for k, v := range payload {
		if strings.EqualFold(k, name) && strings.TrimSpace(v) != "" {
			return true
		}
	}
	return false
}
