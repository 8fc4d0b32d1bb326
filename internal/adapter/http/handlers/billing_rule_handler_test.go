package handlers

import (
	"bytes"
	"context"
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

func newRuleRouter(uc usecase.IBillingRuleUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewBillingRuleHandler(uc)
	r := gin.New()
	r.POST("/v1/rules", h.CreateRule)
	r.GET("/v1/rules", h.ListRules)
	r.GET("/v1/rules/:id", h.GetRule)
	r.PATCH("/v1/rules/:id", h.UpdateRule)
	r.POST("/v1/rules/:id/token", h.RegenerateToken)
	return r
}

const createRuleBody = `{
	"name": "Lembrete 3 dias antes",
	"channel": "email",
	"timing": {"mode": "antes", "amount": 3, "unit": "dias"},
	"template": "Ola {{nome_cliente}}, vence em {{data_vencimento}}",
	"required_fields": ["email", "nome_cliente"]
}`

func TestBillingRuleHandler_CreateRule(t *testing.T) {
	t.Run("missing tenant header", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillingRuleUseCase(ctrl)
		r := newRuleRouter(uc)

		req := httptest.NewRequest(http.MethodPost, "/v1/rules", bytes.NewBufferString(createRuleBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillingRuleUseCase(ctrl)
		r := newRuleRouter(uc)

		req := httptest.NewRequest(http.MethodPost, "/v1/rules", bytes.NewBufferString(`{"name":"x"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Tenant-ID", "tenant-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown required field", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillingRuleUseCase(ctrl)
		r := newRuleRouter(uc)

		uc.EXPECT().CreateRule(gomock.Any(), gomock.Any()).Return(entities.BillingRule{}, usecase.ErrUnknownRequiredField)

		req := httptest.NewRequest(http.MethodPost, "/v1/rules", bytes.NewBufferString(createRuleBody))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Tenant-ID", "tenant-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("created with token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillingRuleUseCase(ctrl)
		r := newRuleRouter(uc)

		uc.EXPECT().CreateRule(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, in usecase.CreateRuleInput) (entities.BillingRule, error) {
				if in.TenantID != "tenant-1" {
					t.Fatalf("tenant id = %q, want header value", in.TenantID)
				}
				return entities.BillingRule{ID: "rule-1", TenantID: in.TenantID, Name: in.Name, Active: true, Token: "tok123", Channel: in.Channel}, nil
			})

		req := httptest.NewRequest(http.MethodPost, "/v1/rules", bytes.NewBufferString(createRuleBody))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Tenant-ID", "tenant-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["token"] != "tok123" {
			t.Fatalf("token = %v, the webhook token must be returned on create", body["token"])
		}
	})
}

func TestBillingRuleHandler_GetRule(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillingRuleUseCase(ctrl)
		r := newRuleRouter(uc)

		uc.EXPECT().GetByID(gomock.Any(), "rule-x").Return(entities.BillingRule{}, usecase.ErrRuleNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/rules/rule-x", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillingRuleUseCase(ctrl)
		r := newRuleRouter(uc)

		uc.EXPECT().GetByID(gomock.Any(), "rule-1").Return(entities.BillingRule{ID: "rule-1", Name: "Lembrete"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/rules/rule-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestBillingRuleHandler_ListRules(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIBillingRuleUseCase(ctrl)
	r := newRuleRouter(uc)

	uc.EXPECT().ListByTenantID(gomock.Any(), "tenant-1").Return([]entities.BillingRule{{ID: "rule-1"}, {ID: "rule-2"}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/rules", nil)
	req.Header.Set("X-Tenant-ID", "tenant-1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(body) != 2 {
		t.Fatalf("expected 2 rules, got %d", len(body))
	}
}

func TestBillingRuleHandler_UpdateRule(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIBillingRuleUseCase(ctrl)
	r := newRuleRouter(uc)

	uc.EXPECT().UpdateRule(gomock.Any(), "rule-1", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, in usecase.UpdateRuleInput) (entities.BillingRule, error) {
			if in.Active == nil || *in.Active {
				t.Fatalf("active patch not forwarded: %+v", in)
			}
			return entities.BillingRule{ID: "rule-1", Active: false}, nil
		})

	req := httptest.NewRequest(http.MethodPatch, "/v1/rules/rule-1", bytes.NewBufferString(`{"active":false}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestBillingRuleHandler_RegenerateToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIBillingRuleUseCase(ctrl)
	r := newRuleRouter(uc)

	uc.EXPECT().RegenerateToken(gomock.Any(), "rule-1").Return(entities.BillingRule{ID: "rule-1", Token: "tok456"}, nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/rules/rule-1/token", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if body["token"] != "tok456" {
		t.Fatalf("token = %v, want the rotated token", body["token"])
	}
}
