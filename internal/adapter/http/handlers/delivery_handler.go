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

// DeliveryHandler handles the provider callback and the dispatch-worker
// registration endpoint.

type DeliveryHandler struct {
	usecase usecase.IDeliveryUseCase
}

func NewDeliveryHandler(uc usecase.IDeliveryUseCase) *DeliveryHandler {
	return &DeliveryHandler{usecase: uc}
}

// HandleProviderEvent applies one provider lifecycle event.
//
// The provider is not a channel we can ask to retry: unmatched tracking ids
// and unrecognized event kinds are acknowledged with 200 so the provider
// never replays them destructively. Only a malformed body gets a 400.
func (h *DeliveryHandler) HandleProviderEvent(c *gin.Context) {
	var payload request.ProviderEventRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[delivery][handler] malformed provider event err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Malformed provider event", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	input := payload.ToInput()
	if input.TrackingID == "" {
		log.Printf("[delivery][handler] provider event without tracking id event=%q", payload.Event)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Missing tracking id", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	outcome, err := h.usecase.ApplyProviderEvent(c.Request.Context(), input)
	if err != nil {
		// Internal faults are logged but still acknowledged: surfacing a 5xx
		// here would push the provider into a retry loop against us.
		log.Printf("[delivery][handler] apply failed tracking_id=%s kind=%s err=%v", input.TrackingID, input.Kind, err)
		c.JSON(http.StatusOK, response.ProviderCallbackResponse{Message: "evento recebido"})
		return
	}

	log.Printf("[delivery][handler] event handled tracking_id=%s kind=%s outcome=%s", input.TrackingID, input.Kind, outcome)
	c.JSON(http.StatusOK, response.ProviderCallbackResponse{Message: "evento processado"})
}

// RegisterDispatch binds a provider tracking id to a billing event. Called
// by the external dispatch worker right after a send is accepted.
func (h *DeliveryHandler) RegisterDispatch(c *gin.Context) {
	var payload request.RegisterDispatchRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid dispatch payload", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	channel := entities.NotificationChannel(payload.Channel)
	if !channel.Valid() {
		appErr := pkg.NewDomainErrorSimple("INVALID_CHANNEL", "Unknown notification channel", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	record, err := h.usecase.RegisterDispatch(c.Request.Context(), payload.BillingEventID, channel, payload.TrackingID)
	if err != nil {
		log.Printf("[delivery][handler] register failed billing_event_id=%s err=%v", payload.BillingEventID, err)
		appErr := mapDeliveryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	log.Printf("[delivery][handler] dispatch registered record_id=%s tracking_id=%s", record.ID, record.TrackingID)
	c.JSON(http.StatusCreated, response.FromDeliveryRecord(record))
}

// GetByTrackingID returns the delivery record behind a tracking id.
func (h *DeliveryHandler) GetByTrackingID(c *gin.Context) {
	record, err := h.usecase.GetByTrackingID(c.Request.Context(), c.Param("tracking_id"))
	if err != nil {
		appErr := mapDeliveryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromDeliveryRecord(record))
}

// ListHistory returns the append-only transition trail of a delivery record.
func (h *DeliveryHandler) ListHistory(c *gin.Context) {
	changes, err := h.usecase.ListHistory(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapDeliveryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromStatusChanges(changes))
}

func mapDeliveryError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidBillingEventID), errors.Is(err, usecase.ErrInvalidTrackingID), errors.Is(err, usecase.ErrInvalidDeliveryID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrBillingEventNotFound):
		return pkg.NewDomainErrorSimple("BILLING_EVENT_NOT_FOUND", "Billing event not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrDeliveryNotFound):
		return pkg.NewDomainErrorSimple("DELIVERY_NOT_FOUND", "Delivery record not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrTrackingIDConflict):
		return pkg.NewDomainErrorSimple("TRACKING_ID_CONFLICT", "Tracking id already bound to another delivery", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
