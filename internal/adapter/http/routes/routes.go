package routes

import (
	"os"
	"strconv"

	_ "gestion_xpto/docs" // This will be auto-generated
	"gestion_xpto/internal/adapter/http/handlers"
	repository2 "gestion_xpto/internal/adapter/persistence/repository"
	"gestion_xpto/internal/infrastructure/database"
	"gestion_xpto/internal/infrastructure/metrics"
	"gestion_xpto/internal/infrastructure/payments"
	"gestion_xpto/internal/usecase"
	"gestion_xpto/internal/usecase/interfaces"
	"gestion_xpto/pkg/logger"

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
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log := logger.WithComponent("http")
		log.Fatal().Err(err).Msg("failed to startup the application")
	}
}

func getRoutes() {
	log := logger.WithComponent("routes")
	ddb := database.ConnectDynamoDB()

	clientRepo := repository2.NewClientRepository(ddb)
	supplierRepo := repository2.NewSupplierRepository(ddb)
	documentRepo := repository2.NewDocumentRepository(ddb)
	orderRepo := repository2.NewOrderRepository(ddb)
	goalRepo := repository2.NewGoalRepository(ddb)
	pendingAccountRepo := repository2.NewPendingAccountRepository(ddb)
	bankAccountRepo := repository2.NewBankAccountRepository(ddb)
	barCodeRepo := repository2.NewBarCodeRepository(ddb)
	brandRepo := repository2.NewBrandRepository(ddb)
	businessTypeRepo := repository2.NewBusinessTypeRepository(ddb)
	branchRepo := repository2.NewBranchRepository(ddb)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Warn().Err(err).Msg("mercado pago gateway not configured, charges disabled")
	} else {
		paymentGateway = mpGateway
	}

	clientUseCase := usecase.NewClientUseCase(clientRepo)
	supplierUseCase := usecase.NewSupplierUseCase(supplierRepo)
	documentUseCase := usecase.NewDocumentUseCase(documentRepo)
	orderUseCase := usecase.NewOrderUseCase(orderRepo)
	goalUseCase := usecase.NewGoalUseCase(goalRepo)
	pendingAccountUseCase := usecase.NewPendingAccountUseCase(pendingAccountRepo, paymentGateway)
	bankAccountUseCase := usecase.NewBankAccountUseCase(bankAccountRepo)
	barCodeUseCase := usecase.NewBarCodeUseCase(barCodeRepo)
	brandUseCase := usecase.NewBrandUseCase(brandRepo)
	businessTypeUseCase := usecase.NewBusinessTypeUseCase(businessTypeRepo)
	branchUseCase := usecase.NewBranchUseCase(branchRepo)
	reportUseCase := usecase.NewReportUseCase(pendingAccountRepo, goalRepo)

	clientHandler := handlers.NewClientHandler(clientUseCase)
	supplierHandler := handlers.NewSupplierHandler(supplierUseCase)
	documentHandler := handlers.NewDocumentHandler(documentUseCase)
	orderHandler := handlers.NewOrderHandler(orderUseCase)
	goalHandler := handlers.NewGoalHandler(goalUseCase)
	pendingAccountHandler := handlers.NewPendingAccountHandler(pendingAccountUseCase)
	bankAccountHandler := handlers.NewBankAccountHandler(bankAccountUseCase)
	barCodeHandler := handlers.NewBarCodeHandler(barCodeUseCase)
	brandHandler := handlers.NewBrandHandler(brandUseCase)
	businessTypeHandler := handlers.NewBusinessTypeHandler(businessTypeUseCase)
	branchHandler := handlers.NewBranchHandler(branchUseCase)
	reportHandler := handlers.NewReportHandler(reportUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addResourceRoutes(v1, resourceHandlers{
		Clients:         clientHandler,
		Suppliers:       supplierHandler,
		Documents:       documentHandler,
		Orders:          orderHandler,
		Goals:           goalHandler,
		PendingAccounts: pendingAccountHandler,
		BankAccounts:    bankAccountHandler,
		BarCodes:        barCodeHandler,
		Brands:          brandHandler,
		BusinessTypes:   businessTypeHandler,
		Branches:        branchHandler,
		Reports:         reportHandler,
	})
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(metrics.Middleware())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log := logger.WithComponent("http")
		log.Error().Interface("panic", recovered).Msg("recovered from panic")
		c.AbortWithStatus(500)
	}))
}
