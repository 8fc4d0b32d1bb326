package response

import (
	"testing"

	"cobranca_service/internal/domain/entities"
	"cobranca_service/internal/usecase"
)

func TestFromIngestResult(t *testing.T) {
	result := usecase.IngestResult{
		Batch: entities.ImportBatch{
			ID:         "batch-1",
			TotalRows:  3,
			RowsOk:     2,
			RowsFailed: 1,
			Outcome:    entities.ImportOutcomeParcial,
		},
		Events: []entities.BillingEvent{{ID: "evt-1"}, {ID: "evt-2"}},
		Errors: []entities.RowError{{RowNumber: 3, Kind: entities.ErrorKindDataVencida, Description: "data de disparo calculada ja passou"}},
	}

	resp := FromIngestResult("cobrancas registradas", result)

	if resp.BatchID != "batch-1" || resp.Total != 3 || resp.Processed != 2 || resp.Failed != 1 {
		t.Fatalf("totals = %+v", resp)
	}
	if len(resp.Events) != 2 {
		t.Fatalf("events = %d, want 2", len(resp.Events))
	}
	if len(resp.Errors) != 1 || resp.Errors[0].RowNumber != 3 || resp.Errors[0].Kind != "data_vencida" {
		t.Fatalf("errors = %+v", resp.Errors)
	}
}

func TestFromIngestResult_NoErrorsOmitsList(t *testing.T) {
	result := usecase.IngestResult{
		Batch:  entities.ImportBatch{ID: "batch-1", TotalRows: 1, RowsOk: 1, Outcome: entities.ImportOutcomeSucesso},
		Events: []entities.BillingEvent{{ID: "evt-1"}},
	}

	resp := FromIngestResult("cobrancas registradas", result)
	if resp.Errors != nil {
		t.Fatalf("errors = %v, want nil so the field is omitted", resp.Errors)
	}
}

func TestFromBillingRule(t *testing.T) {
	rule := entities.BillingRule{
		ID:             "rule-1",
		TenantID:       "tenant-1",
		Channel:        entities.ChannelEmail,
		Token:          "tok123",
		Timing:         entities.Timing{Mode: entities.TimingModeAntes, Amount: 3, Unit: entities.TimingUnitDias},
		RequiredFields: []entities.SystemField{entities.SystemFieldEmail},
	}

	resp := FromBillingRule(rule)
	if resp.Token != "tok123" {
		t.Fatalf("token = %q", resp.Token)
	}
	if resp.Timing.Mode != "antes" || resp.Timing.Amount != 3 || resp.Timing.Unit != "dias" {
		t.Fatalf("timing = %+v", resp.Timing)
	}
	if len(resp.RequiredFields) != 1 || resp.RequiredFields[0] != "email" {
		t.Fatalf("required fields = %v", resp.RequiredFields)
	}
}
