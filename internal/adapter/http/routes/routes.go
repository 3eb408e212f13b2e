package routes

import (
	"log"
	"os"
	"strconv"

	_ "construtora_xpto/docs" // This will be auto-generated
	"construtora_xpto/internal/adapter/http/handlers"
	"construtora_xpto/internal/adapter/http/middleware"
	repository2 "construtora_xpto/internal/adapter/persistence/repository"
	"construtora_xpto/internal/infrastructure/auth"
	"construtora_xpto/internal/infrastructure/database"
	"construtora_xpto/internal/infrastructure/payments"
	"construtora_xpto/internal/usecase"
	"construtora_xpto/internal/usecase/interfaces"

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

	userRepo := repository2.NewUserDynamoRepository(ddb)
	supervisorRepo := repository2.NewSupervisorDynamoRepository(ddb)
	projectRepo := repository2.NewProjectDynamoRepository(ddb)
	quotationRepo := repository2.NewQuotationDynamoRepository(ddb)
	notificationRepo := repository2.NewNotificationDynamoRepository(ddb)
	paymentRepo := repository2.NewPaymentDynamoRepository(ddb)

	tokenService := auth.NewTokenServiceFromEnv()

	authUseCase := usecase.NewAuthUseCase(
		userRepo,
		supervisorRepo,
		tokenService,
		os.Getenv("ADMIN_EMAIL"),
		os.Getenv("ADMIN_PASSWORD"),
	)
	userUseCase := usecase.NewUserUseCase(userRepo)
	supervisorUseCase := usecase.NewSupervisorUseCase(supervisorRepo)
	projectUseCase := usecase.NewProjectUseCase(projectRepo, userRepo)
	quotationUseCase := usecase.NewQuotationUseCase(quotationRepo, projectRepo, userRepo, supervisorRepo, notificationRepo)
	notificationUseCase := usecase.NewNotificationUseCase(notificationRepo)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}
	paymentUseCase := usecase.NewPaymentUseCase(paymentRepo, quotationRepo, paymentGateway)

	authHandler := handlers.NewAuthHandler(authUseCase)
	userHandler := handlers.NewUserHandler(userUseCase)
	supervisorHandler := handlers.NewSupervisorHandler(supervisorUseCase)
	projectHandler := handlers.NewProjectHandler(projectUseCase)
	quotationHandler := handlers.NewQuotationHandler(quotationUseCase)
	notificationHandler := handlers.NewNotificationHandler(notificationUseCase)
	paymentHandler := handlers.NewPaymentHandler(paymentUseCase)

	gate := middleware.NewAccessGate(tokenService, userRepo, supervisorRepo)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addAuthRoutes(v1, authHandler)
	addAccountRoutes(v1, gate, userHandler, supervisorHandler)
	addProjectRoutes(v1, gate, projectHandler, quotationHandler)
	addQuotationRoutes(v1, gate, quotationHandler)
	addNotificationRoutes(v1, gate, notificationHandler)
	addPaymentRoutes(v1, gate, paymentHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
