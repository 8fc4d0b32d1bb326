package entities

import "time"

// ImportOrigin identifies which entry point produced an ingestion run.

type ImportOrigin string

const (
	ImportOriginWebhook ImportOrigin = "webhook"
	ImportOriginExcel   ImportOrigin = "excel"
	ImportOriginJson    ImportOrigin = "json"
)

// ImportOutcome summarizes an ingestion run.

type ImportOutcome string

const (
	ImportOutcomeSucesso ImportOutcome = "sucesso"
	ImportOutcomeParcial ImportOutcome = "parcial"
	ImportOutcomeErro    ImportOutcome = "erro"
)

// ErrorKind is the closed taxonomy of ingestion/callback failures. These are
// persisted and exposed to tenants, so the set is part of the API contract.

type ErrorKind string

const (
	ErrorKindTokenInvalido            ErrorKind = "token_invalido"
	ErrorKindRegraInativa             ErrorKind = "regra_inativa"
	ErrorKindCampoObrigatorioFaltando ErrorKind = "campo_obrigatorio_faltando"
	ErrorKindFormatoInvalido          ErrorKind = "formato_invalido"
	ErrorKindVariavelFaltando         ErrorKind = "variavel_faltando"
	ErrorKindDataInvalida             ErrorKind = "data_invalida"
	ErrorKindDataVencida              ErrorKind = "data_vencida"
	ErrorKindEventoDesconhecido       ErrorKind = "evento_desconhecido"
)

// RowError is the structured failure report for one rejected row.
type RowError struct {
	RowNumber      int       `json:"row_number"`
	Kind           ErrorKind `json:"kind"`
	Description    string    `json:"description"`
	OffendingValue string    `json:"offending_value,omitempty"`
}

// ImportBatch is the permanent audit record of one ingestion call.
// Written once, never mutated.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (rule_id-index): rule_id
//
// Invariant: RowsOk + RowsFailed == TotalRows.
type ImportBatch struct {
	ID          string        `json:"id"`
	RuleID      string        `json:"rule_id"`
	TenantID    string        `json:"tenant_id"`
	Origin      ImportOrigin  `json:"origin"`
	SourceLabel string        `json:"source_label"`
	TotalRows   int           `json:"total_rows"`
	RowsOk      int           `json:"rows_ok"`
	RowsFailed  int           `json:"rows_failed"`
	Outcome     ImportOutcome `json:"outcome"`
	RowErrors   []RowError    `json:"row_errors,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
}

// ResolveOutcome derives the outcome from the totals:
// sucesso when nothing failed, erro when nothing succeeded (and there was
// at least one row), parcial otherwise.
func ResolveOutcome(totalRows, rowsOk, rowsFailed int) ImportOutcome {
	switch {
	case rowsFailed == 0:
		return ImportOutcomeSucesso
	case rowsOk == 0 && totalRows > 0:
		return ImportOutcomeErro
	default:
		return ImportOutcomeParcial
	}
}
