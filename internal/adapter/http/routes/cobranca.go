package routes

import (
	"cobranca_service/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathRules      = "/rules"
	PathWebhooks   = "/webhooks"
	PathDeliveries = "/deliveries"
)

func addCobrancaRoutes(rg *gin.RouterGroup, ruleHandler *handlers.BillingRuleHandler, ingestHandler *handlers.IngestHandler, deliveryHandler *handlers.DeliveryHandler) {
	rules := rg.Group(PathRules)
	{
		// Tenant-admin surface; tenant resolved upstream (X-Tenant-ID).
		rules.POST("", ruleHandler.CreateRule)
		rules.GET("", ruleHandler.ListRules)
		rules.GET("/:id", ruleHandler.GetRule)
		rules.PATCH("/:id", ruleHandler.UpdateRule)
		rules.POST("/:id/token", ruleHandler.RegenerateToken)
	}

	webhooks := rg.Group(PathWebhooks)
	{
		// External integrations; authenticated by the path token / provider
		// callbacks, not by tenant headers.
		webhooks.POST("/cobranca/:token", ingestHandler.IngestByToken)
		webhooks.POST("/provider", deliveryHandler.HandleProviderEvent)
	}

	deliveries := rg.Group(PathDeliveries)
	{
		// Dispatch-worker surface.
		deliveries.POST("", deliveryHandler.RegisterDispatch)
		deliveries.GET("/tracking/:tracking_id", deliveryHandler.GetByTrackingID)
		deliveries.GET("/:id/history", deliveryHandler.ListHistory)
	}
}
