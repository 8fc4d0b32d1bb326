package handlers

import (
	"errors"
	"log"
	"net/http"

	request "cobranca_service/internal/adapter/http/dto/request"
	response "cobranca_service/internal/adapter/http/dto/response"
	"cobranca_service/internal/domain/entities"
	"cobranca_service/internal/usecase"
	"cobranca_service/pkg"

	"github.com/gin-gonic/gin"
)

// IngestHandler handles the token-authenticated bulk ingestion webhook.

type IngestHandler struct {
	usecase usecase.IIngestUseCase
}

func NewIngestHandler(uc usecase.IIngestUseCase) *IngestHandler {
	return &IngestHandler{usecase: uc}
}

// IngestByToken accepts an array (or single object) of billing rows pushed
// against a rule's webhook token.
//
// Response policy: 200 when at least one row succeeded (the per-row error
// list rides along for visibility), 400 when every row failed, 401 when the
// token does not resolve to a rule.
func (h *IngestHandler) IngestByToken(c *gin.Context) {
	token := c.Param("token")
	log.Printf("[ingest][handler] start token_len=%d", len(token))

	body, err := c.GetRawData()
	if err != nil {
		log.Printf("[ingest][handler] body read failed err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request body", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	rows, err := request.ParseIngestRows(body)
	if err != nil {
		log.Printf("[ingest][handler] body parse failed err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Body must be a billing row or an array of billing rows", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	result, err := h.usecase.Ingest(c.Request.Context(), token, entities.ImportOriginWebhook, webhookSourceLabel(c), rows)
	if err != nil {
		log.Printf("[ingest][handler] ingest failed err=%v", err)
		appErr := mapIngestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if result.Batch.Outcome == entities.ImportOutcomeErro {
		log.Printf("[ingest][handler] all rows rejected batch_id=%s failed=%d", result.Batch.ID, result.Batch.RowsFailed)
		c.JSON(http.StatusBadRequest, response.FromIngestResult("nenhuma linha processada", result))
		return
	}

	log.Printf("[ingest][handler] success batch_id=%s outcome=%s ok=%d failed=%d", result.Batch.ID, result.Batch.Outcome, result.Batch.RowsOk, result.Batch.RowsFailed)
	c.JSON(http.StatusOK, response.FromIngestResult("cobrancas registradas", result))
}

// webhookSourceLabel builds the synthetic source label recorded on the audit
// batch for webhook-origin ingestions.
func webhookSourceLabel(c *gin.Context) string {
	if id := c.GetHeader("X-Request-ID"); id != "" {
		return "webhook:" + id
	}
	return "webhook:" + c.ClientIP()
}

func mapIngestError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrTokenInvalido):
		return pkg.NewDomainErrorSimple("TOKEN_INVALIDO", "Webhook token unknown or revoked", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrRegraInativa):
		return pkg.NewDomainErrorSimple("REGRA_INATIVA", "Billing rule is inactive", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrNoRows):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "No rows to process", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
