package routes

import (
	"log"
	"strconv"

	_ "serviciosjt/docs" // This will be auto-generated
	"serviciosjt/internal/adapter/http/handlers"
	"serviciosjt/internal/adapter/http/middleware"
	repository2 "serviciosjt/internal/adapter/persistence/repository"
	appconfig "serviciosjt/internal/infrastructure/config"
	"serviciosjt/internal/infrastructure/database"
	"serviciosjt/internal/infrastructure/storage"
	"serviciosjt/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

// Run will start the server
func Run() {
	cfg := appconfig.Load()

	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", middleware.MetricsHandler())

	getRoutes(cfg)

	err := router.Run(":" + strconv.Itoa(cfg.Port))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(cfg appconfig.Config) {
	ddb := database.ConnectDynamoDB(cfg)

	proposalRepo := repository2.NewProposalDynamoRepository(ddb)
	reviewRepo := repository2.NewReviewDynamoRepository(ddb)
	publicationRepo := repository2.NewPublicationDynamoRepository(ddb)
	userRepo := repository2.NewUserDynamoRepository(ddb)

	imageStorage, err := storage.NewMinioImageStorage(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to object storage: %v", err)
	}

	proposalUseCase := usecase.NewProposalUseCase(proposalRepo, publicationRepo)
	reviewUseCase := usecase.NewReviewUseCase(reviewRepo, proposalRepo, userRepo)
	publicationUseCase := usecase.NewPublicationUseCase(publicationRepo)
	userUseCase := usecase.NewUserUseCase(userRepo)

	proposalHandler := handlers.NewProposalHandler(proposalUseCase, userUseCase)
	reviewHandler := handlers.NewReviewHandler(reviewUseCase)
	publicationHandler := handlers.NewPublicationHandler(publicationUseCase, userUseCase)
	userHandler := handlers.NewUserHandler(userUseCase)
	imageHandler := handlers.NewImageHandler(imageStorage)

	auth := middleware.NewAuthenticator(cfg.JWTSecret, cfg.ClockSkew)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addMarketplaceRoutes(v1, auth, proposalHandler, reviewHandler, publicationHandler, userHandler, imageHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
	router.Use(middleware.Metrics())
}
