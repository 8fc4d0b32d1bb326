package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	request "cobranca_service/internal/adapter/http/dto/request"
	response "cobranca_service/internal/adapter/http/dto/response"
	"cobranca_service/internal/usecase"
	"cobranca_service/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidRulePayload = pkg.NewDomainErrorSimple("INVALID_RULE_INPUT", "Invalid rule payload", http.StatusBadRequest)

// BillingRuleHandler handles the tenant-admin rule surface. Authentication
// happens upstream; the resolved tenant arrives in the X-Tenant-ID header.

type BillingRuleHandler struct {
	usecase usecase.IBillingRuleUseCase
}

func NewBillingRuleHandler(uc usecase.IBillingRuleUseCase) *BillingRuleHandler {
	return &BillingRuleHandler{usecase: uc}
}

func tenantID(c *gin.Context) string {
	return strings.TrimSpace(c.GetHeader("X-Tenant-ID"))
}

// CreateRule creates a billing rule and issues its webhook token.
func (h *BillingRuleHandler) CreateRule(c *gin.Context) {
	tenant := tenantID(c)
	if tenant == "" {
		appErr := pkg.NewDomainErrorSimple("MISSING_TENANT", "Missing X-Tenant-ID header", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	var payload request.CreateRuleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRulePayload.HTTPStatus, errInvalidRulePayload.ToHTTPError())
		return
	}

	rule, err := h.usecase.CreateRule(c.Request.Context(), payload.ToInput(tenant))
	if err != nil {
		log.Printf("[rule][handler] create failed tenant_id=%s err=%v", tenant, err)
		appErr := mapRuleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromBillingRule(rule))
}

// GetRule returns one rule by id.
func (h *BillingRuleHandler) GetRule(c *gin.Context) {
	rule, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapRuleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBillingRule(rule))
}

// ListRules returns every rule of the calling tenant.
func (h *BillingRuleHandler) ListRules(c *gin.Context) {
	rules, err := h.usecase.ListByTenantID(c.Request.Context(), tenantID(c))
	if err != nil {
		appErr := mapRuleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	out := make([]response.BillingRuleResponse, 0, len(rules))
	for _, r := range rules {
		out = append(out, response.FromBillingRule(r))
	}
	c.JSON(http.StatusOK, out)
}

// UpdateRule patches timing/template/required fields/active flag.
func (h *BillingRuleHandler) UpdateRule(c *gin.Context) {
	var payload request.UpdateRuleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRulePayload.HTTPStatus, errInvalidRulePayload.ToHTTPError())
		return
	}

	rule, err := h.usecase.UpdateRule(c.Request.Context(), c.Param("id"), payload.ToInput())
	if err != nil {
		log.Printf("[rule][handler] update failed rule_id=%s err=%v", c.Param("id"), err)
		appErr := mapRuleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBillingRule(rule))
}

// RegenerateToken rotates the webhook token; the old one dies immediately.
func (h *BillingRuleHandler) RegenerateToken(c *gin.Context) {
	rule, err := h.usecase.RegenerateToken(c.Request.Context(), c.Param("id"))
	if err != nil {
		log.Printf("[rule][handler] token regeneration failed rule_id=%s err=%v", c.Param("id"), err)
		appErr := mapRuleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBillingRule(rule))
}

func mapRuleError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidRuleID),
		errors.Is(err, usecase.ErrInvalidTenantID),
		errors.Is(err, usecase.ErrInvalidRuleName),
		errors.Is(err, usecase.ErrInvalidChannel),
		errors.Is(err, usecase.ErrInvalidTiming),
		errors.Is(err, usecase.ErrInvalidTemplate):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUnknownRequiredField):
		return pkg.NewDomainErrorSimple("UNKNOWN_REQUIRED_FIELD", "Required field is not a recognized system field", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrRuleNotFound):
		return pkg.NewDomainErrorSimple("RULE_NOT_FOUND", "Billing rule not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
