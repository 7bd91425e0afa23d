package routes

import (
	"log"
	"os"

	_ "aquaops/docs" // swag-generated docs registration
	"aquaops/internal/adapter/http/handlers"
	"aquaops/internal/adapter/persistence/repository"
	"aquaops/internal/infrastructure/database"
	"aquaops/internal/infrastructure/payments"
	"aquaops/internal/usecase"
	"aquaops/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const defaultPort = "8080"

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	customerRepo := repository.NewCustomerDynamoRepository(ddb)
	propertyRepo := repository.NewPropertyDynamoRepository(ddb)
	poolRepo := repository.NewPoolDynamoRepository(ddb)
	estimateRepo := repository.NewEstimateDynamoRepository(ddb)
	communicationRepo := repository.NewCommunicationDynamoRepository(ddb)
	appointmentRepo := repository.NewAppointmentDynamoRepository(ddb)
	paymentRepo := repository.NewDepositPaymentDynamoRepository(ddb)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	customerUseCase := usecase.NewCustomerUseCase(customerRepo)
	propertyUseCase := usecase.NewPropertyUseCase(propertyRepo, customerRepo)
	poolUseCase := usecase.NewPoolUseCase(poolRepo, propertyRepo)
	estimateUseCase := usecase.NewEstimateUseCase(estimateRepo, customerRepo, poolRepo)
	communicationUseCase := usecase.NewCommunicationUseCase(communicationRepo, customerRepo)
	appointmentUseCase := usecase.NewAppointmentUseCase(appointmentRepo, customerRepo, propertyRepo)
	depositUseCase := usecase.NewDepositPaymentUseCase(paymentRepo, estimateRepo, paymentGateway)

	customerHandler := handlers.NewCustomerHandler(customerUseCase)
	propertyHandler := handlers.NewPropertyHandler(propertyUseCase)
	poolHandler := handlers.NewPoolHandler(poolUseCase)
	estimateHandler := handlers.NewEstimateHandler(estimateUseCase, customerUseCase)
	communicationHandler := handlers.NewCommunicationHandler(communicationUseCase)
	appointmentHandler := handlers.NewAppointmentHandler(appointmentUseCase)
	depositHandler := handlers.NewDepositPaymentHandler(depositUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCRMRoutes(v1, customerHandler, propertyHandler, poolHandler)
	addEstimateRoutes(v1, estimateHandler, depositHandler)
	addScheduleRoutes(v1, appointmentHandler, communicationHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
