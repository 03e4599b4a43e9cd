package routes

import (
	"log"
	"os"
	"strconv"
	"strings"

	_ "leadmarket/docs" // This will be auto-generated
	"leadmarket/internal/adapter/http/handlers"
	"leadmarket/internal/adapter/persistence/memory"
	repository2 "leadmarket/internal/adapter/persistence/repository"
	"leadmarket/internal/domain/pricing"
	"leadmarket/internal/infrastructure/database"
	"leadmarket/internal/infrastructure/payments"
	"leadmarket/internal/usecase"
	"leadmarket/internal/usecase/interfaces"

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
	creditRepo, jobRepo, estimateRepo, purchaseRepo, paymentRepo := buildRepositories()

	table, err := pricing.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load pricing table: %v", err)
	}
	engine := pricing.NewEngine(table)
	converter := pricing.NewLocaleConverter(table)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	estimateUseCase := usecase.NewEstimateUseCase(estimateRepo, engine, converter)
	creditUseCase := usecase.NewCreditLedgerUseCase(creditRepo)
	allocatorUseCase := usecase.NewLeadAllocatorUseCase(jobRepo, creditRepo, purchaseRepo, estimateRepo)
	paymentUseCase := usecase.NewPaymentUseCase(paymentRepo, estimateRepo, creditRepo, paymentGateway)

	estimateHandler := handlers.NewEstimateHandler(estimateUseCase)
	jobHandler := handlers.NewJobHandler(allocatorUseCase)
	creditHandler := handlers.NewCreditHandler(creditUseCase)
	paymentHandler := handlers.NewPaymentHandler(paymentUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addMarketplaceRoutes(v1, estimateHandler, jobHandler, creditHandler, paymentHandler)
}

// buildRepositories selects the persistence backend. STORAGE=memory runs the
// whole engine on in-process repositories, which is what the local compose
// profile and the concurrency tests use.
func buildRepositories() (
	interfaces.ICreditRepository,
	interfaces.IJobListingRepository,
	interfaces.IEstimateRepository,
	interfaces.ILeadPurchaseRepository,
	interfaces.IPaymentRecordRepository,
) {
	if strings.EqualFold(strings.TrimSpace(os.Getenv("STORAGE")), "memory") {
		log.Printf("[storage] using in-memory repositories")
		return memory.NewCreditRepository(),
			memory.NewJobListingRepository(),
			memory.NewEstimateRepository(),
			memory.NewLeadPurchaseRepository(),
			memory.NewPaymentRecordRepository()
	}

	ddb := database.ConnectDynamoDB()
	return repository2.NewProfessionalCreditDynamoRepository(ddb),
		repository2.NewJobListingDynamoRepository(ddb),
		repository2.NewEstimateDynamoRepository(ddb),
		repository2.NewLeadPurchaseDynamoRepository(ddb),
		repository2.NewPaymentRecordDynamoRepository(ddb)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
