package usecase

import (
	"strings"
	"testing"
	"time"

	"cobranca_service/internal/domain/entities"
)

func testRule() entities.BillingRule {
	return entities.BillingRule{
		ID:       "rule-1",
		TenantID: "tenant-1",
		Active:   true,
		Channel:  entities.ChannelEmail,
		Timing:   entities.Timing{Mode: entities.TimingModeAntes, Amount: 3, Unit: entities.TimingUnitDias},
		Template: "Ola {{nome_cliente}}, sua cobranca de {{valor_cobranca}} vence em {{data_vencimento}}",
		RequiredFields: []entities.SystemField{
			entities.SystemFieldEmail,
		},
		TemplateVars: []string{"nome_cliente", "valor_cobranca", "data_vencimento"},
	}
}

func TestValidateRow_Success(t *testing.T) {
	rule := testRule()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	row := RawRow{
		Fields:  map[string]string{"email": "cliente@example.com", "nome_cliente": "Maria", "valor_cobranca": "150.00"},
		DueDate: "2026-03-10",
	}

	event, rowErr := validateRow(rule, row, now)
	if rowErr != nil {
		t.Fatalf("expected success, got %+v", rowErr)
	}
	if event.Status != entities.BillingEventStatusPendente {
		t.Fatalf("status = %s, want pendente", event.Status)
	}
	if event.RuleID != "rule-1" || event.TenantID != "tenant-1" {
		t.Fatalf("event not bound to rule: %+v", event)
	}

	wantDispatch := time.Date(2026, 3, 7, 0, 0, 0, 0, time.UTC)
	if !event.DispatchDate.Equal(wantDispatch) {
		t.Fatalf("DispatchDate = %s, want %s", event.DispatchDate, wantDispatch)
	}

	if event.Payload["email"] != "cliente@example.com" {
		t.Fatalf("system fields must be merged into the payload: %v", event.Payload)
	}
	if event.Payload[entities.DueDateVariable] != "10/03/2026" {
		t.Fatalf("due date variable = %q, want dd/MM/yyyy", event.Payload[entities.DueDateVariable])
	}
}

func TestValidateRow_BrazilianDateLayout(t *testing.T) {
	rule := testRule()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	row := RawRow{
		Fields:  map[string]string{"email": "cliente@example.com", "nome_cliente": "Maria", "valor_cobranca": "150.00"},
		DueDate: "05/04/2026",
	}

	event, rowErr := validateRow(rule, row, now)
	if rowErr != nil {
		t.Fatalf("expected success, got %+v", rowErr)
	}
	// 05/04 must resolve as 5 de abril, not May 4th.
	if event.DueDate.Month() != time.April || event.DueDate.Day() != 5 {
		t.Fatalf("DueDate = %s, want 2026-04-05", event.DueDate)
	}
}

func TestValidateRow_Failures(t *testing.T) {
	rule := testRule()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	okFields := map[string]string{"email": "cliente@example.com", "nome_cliente": "Maria", "valor_cobranca": "150.00"}

	t.Run("invalid due date", func(t *testing.T) {
		_, rowErr := validateRow(rule, RawRow{Fields: okFields, DueDate: "amanha"}, now)
		if rowErr == nil || rowErr.Kind != entities.ErrorKindDataInvalida {
			t.Fatalf("expected data_invalida, got %+v", rowErr)
		}
	})

	t.Run("missing due date", func(t *testing.T) {
		_, rowErr := validateRow(rule, RawRow{Fields: okFields}, now)
		if rowErr == nil || rowErr.Kind != entities.ErrorKindDataInvalida {
			t.Fatalf("expected data_invalida, got %+v", rowErr)
		}
	})

	t.Run("missing required field", func(t *testing.T) {
		row := RawRow{Fields: map[string]string{"nome_cliente": "Maria", "valor_cobranca": "150.00"}, DueDate: "2026-03-10"}
		_, rowErr := validateRow(rule, row, now)
		if rowErr == nil || rowErr.Kind != entities.ErrorKindCampoObrigatorioFaltando {
			t.Fatalf("expected campo_obrigatorio_faltando, got %+v", rowErr)
		}
	})

	t.Run("bad email format", func(t *testing.T) {
		row := RawRow{Fields: map[string]string{"email": "sem-arroba", "nome_cliente": "Maria", "valor_cobranca": "150.00"}, DueDate: "2026-03-10"}
		_, rowErr := validateRow(rule, row, now)
		if rowErr == nil || rowErr.Kind != entities.ErrorKindFormatoInvalido {
			t.Fatalf("expected formato_invalido, got %+v", rowErr)
		}
	})

	t.Run("missing template vars reported together", func(t *testing.T) {
		row := RawRow{Fields: map[string]string{"email": "cliente@example.com"}, DueDate: "2026-03-10"}
		_, rowErr := validateRow(rule, row, now)
		if rowErr == nil || rowErr.Kind != entities.ErrorKindVariavelFaltando {
			t.Fatalf("expected variavel_faltando, got %+v", rowErr)
		}
		if !strings.Contains(rowErr.Description, "nome_cliente") || !strings.Contains(rowErr.Description, "valor_cobranca") {
			t.Fatalf("all missing vars must be listed at once: %s", rowErr.Description)
		}
	})

	t.Run("dispatch date already past", func(t *testing.T) {
		row := RawRow{Fields: okFields, DueDate: "2026-03-02"}
		_, rowErr := validateRow(rule, row, now)
		if rowErr == nil || rowErr.Kind != entities.ErrorKindDataVencida {
			t.Fatalf("expected data_vencida, got %+v", rowErr)
		}
	})
}

func TestValidateRow_TemplateVarSatisfiedByPayload(t *testing.T) {
	rule := testRule()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	row := RawRow{
		Fields:  map[string]string{"email": "cliente@example.com"},
		DueDate: "2026-03-10",
		Payload: map[string]string{"Nome_Cliente": "Maria", "valor_cobranca": "150.00"},
	}

	// Payload keys satisfy template vars under any casing.
	if _, rowErr := validateRow(rule, row, now); rowErr != nil {
		t.Fatalf("expected success, got %+v", rowErr)
	}
}

func TestParseDueDate_Layouts(t *testing.T) {
	accepted := []string{
		"2026-03-10T15:04:05Z",
		"2026-03-10T15:04:05",
		"2026-03-10",
		"10/03/2026 15:04:05",
		"10/03/2026 15:04",
		"10/03/2026",
	}
	for _, raw := range accepted {
		if _, ok := parseDueDate(raw); !ok {
			t.Fatalf("parseDueDate(%q) rejected an accepted layout", raw)
		}
	}
	if _, ok := parseDueDate("10-03-2026"); ok {
		t.Fatal("unexpected layout accepted")
	}
}
