package routes

import (
	"log"
	"strconv"

	_ "cobranca_service/docs" // This will be auto-generated
	"cobranca_service/internal/adapter/http/handlers"
	repository2 "cobranca_service/internal/adapter/persistence/repository"
	"cobranca_service/internal/infrastructure/cache"
	"cobranca_service/internal/infrastructure/database"
	"cobranca_service/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	ruleRepo := repository2.NewBillingRuleDynamoRepository(ddb)
	eventRepo := repository2.NewBillingEventDynamoRepository(ddb)
	batchRepo := repository2.NewImportBatchDynamoRepository(ddb)
	deliveryRepo := repository2.NewDeliveryRecordDynamoRepository(ddb)
	historyRepo := repository2.NewDeliveryHistoryDynamoRepository(ddb)

	// Token resolution runs on every webhook call; put Redis in front of it.
	cachedRuleRepo := cache.NewRuleCache(ruleRepo, cache.NewRedisClientFromEnv())

	ruleUseCase := usecase.NewBillingRuleUseCase(cachedRuleRepo)
	ingestUseCase := usecase.NewIngestUseCase(cachedRuleRepo, eventRepo, batchRepo)
	deliveryUseCase := usecase.NewDeliveryUseCase(deliveryRepo, historyRepo, eventRepo)

	ruleHandler := handlers.NewBillingRuleHandler(ruleUseCase)
	ingestHandler := handlers.NewIngestHandler(ingestUseCase)
	deliveryHandler := handlers.NewDeliveryHandler(deliveryUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCobrancaRoutes(v1, ruleHandler, ingestHandler, deliveryHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
