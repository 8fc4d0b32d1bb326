package response

import (
	"time"

	"cobranca_service/internal/domain/entities"
	"cobranca_service/internal/usecase"
)

type BillingEventResponse struct {
	ID           string            `json:"id"`
	RuleID       string            `json:"rule_id"`
	DueDate      time.Time         `json:"due_date"`
	DispatchDate time.Time         `json:"dispatch_date"`
	Status       string            `json:"status"`
	Payload      map[string]string `json:"payload,omitempty"`
}

func FromBillingEvent(e entities.BillingEvent) BillingEventResponse {
	return BillingEventResponse{
		ID:           e.ID,
		RuleID:       e.RuleID,
		DueDate:      e.DueDate,
		DispatchDate: e.DispatchDate,
		Status:       string(e.Status),
		Payload:      e.Payload,
	}
}

type RowErrorResponse struct {
	RowNumber      int    `json:"row_number"`
	Kind           string `json:"kind"`
	Description    string `json:"description"`
	OffendingValue string `json:"offending_value,omitempty"`
}

func fromRowErrors(errs []entities.RowError) []RowErrorResponse {
	if len(errs) == 0 {
		return nil
	}
	out := make([]RowErrorResponse, 0, len(errs))
	for _, e := range errs {
		out = append(out, RowErrorResponse{
			RowNumber:      e.RowNumber,
			Kind:           string(e.Kind),
			Description:    e.Description,
			OffendingValue: e.OffendingValue,
		})
	}
	return out
}

// IngestResponse is the webhook answer: overall totals plus the created
// events and the per-row error list for visibility.
type IngestResponse struct {
	Message   string                 `json:"message"`
	BatchID   string                 `json:"batch_id"`
	Total     int                    `json:"total"`
	Processed int                    `json:"processed"`
	Failed    int                    `json:"failed"`
	Events    []BillingEventResponse `json:"events"`
	Errors    []RowErrorResponse     `json:"errors,omitempty"`
}

func FromIngestResult(message string, r usecase.IngestResult) IngestResponse {
	events := make([]BillingEventResponse, 0, len(r.Events))
	for _, e := range r.Events {
		events = append(events, FromBillingEvent(e))
	}
	return IngestResponse{
		Message:   message,
		BatchID:   r.Batch.ID,
		Total:     r.Batch.TotalRows,
		Processed: r.Batch.RowsOk,
		Failed:    r.Batch.RowsFailed,
		Events:    events,
		Errors:    fromRowErrors(r.Errors),
	}
}
