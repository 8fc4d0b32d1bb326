package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"cobranca_service/internal/adapter/http/handlers/mocks"
	"cobranca_service/internal/domain/entities"
	"cobranca_service/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newIngestRouter(uc usecase.IIngestUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewIngestHandler(uc)
	r := gin.New()
	r.POST("/v1/webhooks/cobranca/:token", h.IngestByToken)
	return r
}

func TestIngestHandler_IngestByToken(t *testing.T) {
	t.Run("malformed body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIIngestUseCase(ctrl)
		r := newIngestRouter(uc)

		req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/cobranca/tok123", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIIngestUseCase(ctrl)
		r := newIngestRouter(uc)

		uc.EXPECT().Ingest(gomock.Any(), "tok123", entities.ImportOriginWebhook, gomock.Any(), gomock.Any()).
			Return(usecase.IngestResult{}, usecase.ErrTokenInvalido)

		req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/cobranca/tok123", bytes.NewBufferString(`{"email":"a@b.com","dueDate":"2026-03-10"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("inactive rule", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIIngestUseCase(ctrl)
		r := newIngestRouter(uc)

		uc.EXPECT().Ingest(gomock.Any(), "tok123", entities.ImportOriginWebhook, gomock.Any(), gomock.Any()).
			Return(usecase.IngestResult{}, usecase.ErrRegraInativa)

		req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/cobranca/tok123", bytes.NewBufferString(`{"email":"a@b.com","dueDate":"2026-03-10"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("partial success returns 200 with errors", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIIngestUseCase(ctrl)
		r := newIngestRouter(uc)

		result := usecase.IngestResult{
			Batch: entities.ImportBatch{
				ID:         "batch-1",
				TotalRows:  2,
				RowsOk:     1,
				RowsFailed: 1,
				Outcome:    entities.ImportOutcomeParcial,
			},
			Events: []entities.BillingEvent{{ID: "evt-1"}},
			Errors: []entities.RowError{{RowNumber: 2, Kind: entities.ErrorKindFormatoInvalido}},
		}
		uc.EXPECT().Ingest(gomock.Any(), "tok123", entities.ImportOriginWebhook, gomock.Any(), gomock.Any()).
			Return(result, nil)

		body := `[{"email":"a@b.com","dueDate":"2026-03-10"},{"email":"sem-arroba","dueDate":"2026-03-10"}]`
		req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/cobranca/tok123", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp["batch_id"] != "batch-1" {
			t.Fatalf("batch_id = %v", resp["batch_id"])
		}
		if resp["failed"] != float64(1) {
			t.Fatalf("failed = %v, want 1", resp["failed"])
		}
		if _, ok := resp["errors"]; !ok {
			t.Fatal("per-row errors must ride along on partial success")
		}
	})

	t.Run("all rows rejected returns 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIIngestUseCase(ctrl)
		r := newIngestRouter(uc)

		result := usecase.IngestResult{
			Batch: entities.ImportBatch{
				ID:         "batch-1",
				TotalRows:  1,
				RowsFailed: 1,
				Outcome:    entities.ImportOutcomeErro,
			},
			Errors: []entities.RowError{{RowNumber: 1, Kind: entities.ErrorKindDataInvalida}},
		}
		uc.EXPECT().Ingest(gomock.Any(), "tok123", entities.ImportOriginWebhook, gomock.Any(), gomock.Any()).
			Return(result, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/cobranca/tok123", bytes.NewBufferString(`{"email":"a@b.com","dueDate":"nunca"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("source label carries request id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIIngestUseCase(ctrl)
		r := newIngestRouter(uc)

		uc.EXPECT().Ingest(gomock.Any(), "tok123", entities.ImportOriginWebhook, "webhook:req-42", gomock.Any()).
			Return(usecase.IngestResult{Batch: entities.ImportBatch{Outcome: entities.ImportOutcomeSucesso}}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/cobranca/tok123", bytes.NewBufferString(`{"email":"a@b.com","dueDate":"2026-03-10"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Request-ID", "req-42")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
