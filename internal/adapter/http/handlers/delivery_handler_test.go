package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"cobranca_service/internal/adapter/http/handlers/mocks"
	"cobranca_service/internal/domain/entities"
	"cobranca_service/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newDeliveryRouter(uc usecase.IDeliveryUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewDeliveryHandler(uc)
	r := gin.New()
	r.POST("/v1/webhooks/provider", h.HandleProviderEvent)
	r.POST("/v1/deliveries", h.RegisterDispatch)
	r.GET("/v1/deliveries/tracking/:tracking_id", h.GetByTrackingID)
	r.GET("/v1/deliveries/:id/history", h.ListHistory)
	return r
}

func TestDeliveryHandler_HandleProviderEvent(t *testing.T) {
	t.Run("malformed body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDeliveryUseCase(ctrl)
		r := newDeliveryRouter(uc)

		req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/provider", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing tracking id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDeliveryUseCase(ctrl)
		r := newDeliveryRouter(uc)

		req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/provider", bytes.NewBufferString(`{"event":"delivered"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("applied event", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDeliveryUseCase(ctrl)
		r := newDeliveryRouter(uc)

		uc.EXPECT().ApplyProviderEvent(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, in usecase.ProviderEventInput) (usecase.ApplyOutcome, error) {
				if in.Kind != entities.ProviderEventDelivered || in.TrackingID != "trk-1" {
					t.Fatalf("unexpected input: %+v", in)
				}
				return usecase.ApplyOutcomeApplied, nil
			})

		req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/provider", bytes.NewBufferString(`{"event":"delivered","trackingId":"trk-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("internal fault still acknowledged", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDeliveryUseCase(ctrl)
		r := newDeliveryRouter(uc)

		uc.EXPECT().ApplyProviderEvent(gomock.Any(), gomock.Any()).Return(usecase.ApplyOutcomeNoOp, errors.New("dynamo down"))

		req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/provider", bytes.NewBufferString(`{"event":"open","trackingId":"trk-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		// A 5xx would push the provider into a retry loop.
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestDeliveryHandler_RegisterDispatch(t *testing.T) {
	t.Run("missing fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDeliveryUseCase(ctrl)
		r := newDeliveryRouter(uc)

		req := httptest.NewRequest(http.MethodPost, "/v1/deliveries", bytes.NewBufferString(`{"billing_event_id":"evt-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown channel", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDeliveryUseCase(ctrl)
		r := newDeliveryRouter(uc)

		req := httptest.NewRequest(http.MethodPost, "/v1/deliveries", bytes.NewBufferString(`{"billing_event_id":"evt-1","channel":"pombo","tracking_id":"trk-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDeliveryUseCase(ctrl)
		r := newDeliveryRouter(uc)

		uc.EXPECT().RegisterDispatch(gomock.Any(), "evt-2", entities.ChannelEmail, "trk-1").
			Return(entities.DeliveryRecord{}, usecase.ErrTrackingIDConflict)

		req := httptest.NewRequest(http.MethodPost, "/v1/deliveries", bytes.NewBufferString(`{"billing_event_id":"evt-2","channel":"email","tracking_id":"trk-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("billing event not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDeliveryUseCase(ctrl)
		r := newDeliveryRouter(uc)

		uc.EXPECT().RegisterDispatch(gomock.Any(), "evt-x", entities.ChannelEmail, "trk-1").
			Return(entities.DeliveryRecord{}, usecase.ErrBillingEventNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/deliveries", bytes.NewBufferString(`{"billing_event_id":"evt-x","channel":"email","tracking_id":"trk-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDeliveryUseCase(ctrl)
		r := newDeliveryRouter(uc)

		uc.EXPECT().RegisterDispatch(gomock.Any(), "evt-1", entities.ChannelEmail, "trk-1").
			Return(entities.DeliveryRecord{ID: "rec-1", BillingEventID: "evt-1", Status: entities.DeliveryStatusEnviado, TrackingID: "trk-1"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/deliveries", bytes.NewBufferString(`{"billing_event_id":"evt-1","channel":"email","tracking_id":"trk-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["status"] != "enviado" {
			t.Fatalf("status = %v, want enviado", body["status"])
		}
	})
}

func TestDeliveryHandler_Queries(t *testing.T) {
	t.Run("get by tracking id not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDeliveryUseCase(ctrl)
		r := newDeliveryRouter(uc)

		uc.EXPECT().GetByTrackingID(gomock.Any(), "trk-x").Return(entities.DeliveryRecord{}, usecase.ErrDeliveryNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/deliveries/tracking/trk-x", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("history", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDeliveryUseCase(ctrl)
		r := newDeliveryRouter(uc)

		uc.EXPECT().ListHistory(gomock.Any(), "rec-1").Return([]entities.DeliveryStatusChange{
			{ID: "ch-1", PreviousStatus: entities.DeliveryStatusPendente, NewStatus: entities.DeliveryStatusEnviado},
			{ID: "ch-2", PreviousStatus: entities.DeliveryStatusEnviado, NewStatus: entities.DeliveryStatusEntregue},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/deliveries/rec-1/history", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if len(body) != 2 || body[1]["new_status"] != "entregue" {
			t.Fatalf("unexpected history body: %v", body)
		}
	})
}
