package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"cobranca_service/internal/domain/entities"
	"cobranca_service/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrTokenInvalido = errors.New("webhook token invalido")
	ErrRegraInativa  = errors.New("regra de cobranca inativa")
	ErrNoRows        = errors.New("nenhuma linha para processar")
)

// IngestResult is the outcome of one bulk-ingestion call: the persisted
// audit batch, the events that made it through, and the per-row errors.
type IngestResult struct {
	Batch  entities.ImportBatch
	Events []entities.BillingEvent
	Errors []entities.RowError
}

// IIngestUseCase is the bulk-ingestion coordinator: it resolves the rule by
// webhook token, validates every row independently, persists each valid row
// as its own BillingEvent, and always records an ImportBatch for a resolved
// rule — even when every row failed.

type IIngestUseCase interface {
	Ingest(ctx context.Context, token string, origin entities.ImportOrigin, sourceLabel string, rows []RawRow) (IngestResult, error)
}

type IngestUseCase struct {
	ruleRepo  interfaces.IBillingRuleRepository
	eventRepo interfaces.IBillingEventRepository
	batchRepo interfaces.IImportBatchRepository
	now       func() time.Time
}

var _ IIngestUseCase = (*IngestUseCase)(nil)

func NewIngestUseCase(ruleRepo interfaces.IBillingRuleRepository, eventRepo interfaces.IBillingEventRepository, batchRepo interfaces.IImportBatchRepository) *IngestUseCase {
	return &IngestUseCase{
		ruleRepo:  ruleRepo,
		eventRepo: eventRepo,
		batchRepo: batchRepo,
		now:       time.Now,
	}
}

// Ingest processes the rows sequentially in input order so row numbers in
// the error report are deterministic. One row failing never blocks the rest;
// each persisted event is its own unit of work.
//
// Rule-resolution failures abort the whole call: an unknown token leaves no
// batch behind (there is no rule to attach it to), while an inactive rule is
// resolvable and therefore still gets an audit batch recording the wasted
// attempt.
func (u *IngestUseCase) Ingest(ctx context.Context, token string, origin entities.ImportOrigin, sourceLabel string, rows []RawRow) (IngestResult, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		log.Printf("[ingest][usecase] empty token origin=%s", origin)
		return IngestResult{}, ErrTokenInvalido
	}
	if len(rows) == 0 {
		return IngestResult{}, ErrNoRows
	}

	rule, err := u.ruleRepo.GetByToken(ctx, token)
	if err != nil {
		log.Printf("[ingest][usecase] rule lookup failed origin=%s err=%v", origin, err)
		return IngestResult{}, err
	}
	if rule.ID == "" {
		log.Printf("[ingest][usecase] unknown token origin=%s", origin)
		return IngestResult{}, ErrTokenInvalido
	}
	if !rule.Active {
		log.Printf("[ingest][usecase] inactive rule rule_id=%s origin=%s rows=%d", rule.ID, origin, len(rows))
		u.persistInactiveBatch(ctx, rule, origin, sourceLabel, len(rows))
		return IngestResult{}, ErrRegraInativa
	}

	log.Printf("[ingest][usecase] start rule_id=%s origin=%s rows=%d", rule.ID, origin, len(rows))

	now := u.now().UTC()
	events := make([]entities.BillingEvent, 0, len(rows))
	var rowErrors []entities.RowError

	for i, row := range rows {
		rowNumber := i + 1

		draft, rowErr := validateRow(rule, row, now)
		if rowErr != nil {
			rowErr.RowNumber = rowNumber
			rowErrors = append(rowErrors, *rowErr)
			log.Printf("[ingest][usecase] row rejected rule_id=%s row=%d kind=%s", rule.ID, rowNumber, rowErr.Kind)
			continue
		}

		draft.ID = uuid.NewString()
		draft.CreatedAt = now
		created, err := u.eventRepo.Create(ctx, draft)
		if err != nil {
			// Infrastructure fault, not a row-contract violation: abort the
			// call. Events persisted before this row remain valid.
			log.Printf("[ingest][usecase] event persist failed rule_id=%s row=%d err=%v", rule.ID, rowNumber, err)
			return IngestResult{}, err
		}
		events = append(events, created)
	}

	batch := entities.ImportBatch{
		ID:          uuid.NewString(),
		RuleID:      rule.ID,
		TenantID:    rule.TenantID,
		Origin:      origin,
		SourceLabel: sourceLabel,
		TotalRows:   len(rows),
		RowsOk:      len(events),
		RowsFailed:  len(rows) - len(events),
		Outcome:     entities.ResolveOutcome(len(rows), len(events), len(rows)-len(events)),
		RowErrors:   rowErrors,
		CreatedAt:   u.now().UTC(),
	}
	persisted, err := u.batchRepo.Create(ctx, batch)
	if err != nil {
		log.Printf("[ingest][usecase] batch persist failed rule_id=%s err=%v", rule.ID, err)
		return IngestResult{}, err
	}

	log.Printf("[ingest][usecase] done rule_id=%s batch_id=%s outcome=%s ok=%d failed=%d", rule.ID, persisted.ID, persisted.Outcome, persisted.RowsOk, persisted.RowsFailed)
	return IngestResult{Batch: persisted, Events: events, Errors: rowErrors}, nil
}

// persistInactiveBatch records the attempt against an inactive rule. The
// token was valid for the tenant at some point, so the tenant should be able
// to see that a caller is still pushing rows at it.
func (u *IngestUseCase) persistInactiveBatch(ctx context.Context, rule entities.BillingRule, origin entities.ImportOrigin, sourceLabel string, totalRows int) {
	batch := entities.ImportBatch{
		ID:          uuid.NewString(),
		RuleID:      rule.ID,
		TenantID:    rule.TenantID,
		Origin:      origin,
		SourceLabel: sourceLabel,
		TotalRows:   totalRows,
		RowsOk:      0,
		RowsFailed:  totalRows,
		Outcome:     entities.ImportOutcomeErro,
		RowErrors: []entities.RowError{{
			RowNumber:   0,
			Kind:        entities.ErrorKindRegraInativa,
			Description: "regra inativa; nenhuma linha processada",
		}},
		CreatedAt: u.now().UTC(),
	}
	if _, err := u.batchRepo.Create(ctx, batch); err != nil {
		log.Printf("[ingest][usecase] inactive-rule batch persist failed rule_id=%s err=%v", rule.ID, err)
	}
}
