package routes

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	_ "hospital_billing/docs" // This will be auto-generated
	"hospital_billing/internal/adapter/http/handlers"
	repository2 "hospital_billing/internal/adapter/persistence/repository"
	"hospital_billing/internal/infrastructure/database"
	"hospital_billing/internal/infrastructure/token"
	"hospital_billing/internal/usecase"

	"github.com/gin-contrib/cors"
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

	catalogRepo := repository2.NewCatalogDynamoRepository(ddb)
	discountRepo := repository2.NewDiscountDynamoRepository(ddb)
	estimateRepo := repository2.NewSavedEstimateDynamoRepository(ddb)
	userRepo := repository2.NewUserDynamoRepository(ddb)

	if err := database.SeedDefaultCategories(context.Background(), catalogRepo); err != nil {
		log.Fatalf("Failed to seed default categories: %v", err)
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET must be set")
	}
	tokens := token.NewJWTTokenService(secret)

	estimateUseCase := usecase.NewEstimateUseCase(catalogRepo, discountRepo, estimateRepo)
	catalogUseCase := usecase.NewCatalogUseCase(catalogRepo, discountRepo)
	userUseCase := usecase.NewUserUseCase(userRepo, tokens)

	estimateHandler := handlers.NewEstimateHandler(estimateUseCase)
	catalogHandler := handlers.NewCatalogHandler(catalogUseCase)
	authHandler := handlers.NewAuthHandler(userUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addAuthRoutes(v1, authHandler, tokens)
	addCatalogRoutes(v1, catalogHandler, tokens)
	addEstimateRoutes(v1, estimateHandler, tokens)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
	router.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		MaxAge:           12 * time.Hour,
	}))
}
