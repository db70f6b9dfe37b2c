package routes

import (
	"context"
	"log"
	"strconv"

	_ "lazarus_guide/docs" // generated swagger spec
	"lazarus_guide/internal/adapter/http/handlers"
	"lazarus_guide/internal/adapter/http/middleware"
	"lazarus_guide/internal/adapter/persistence/repository"
	"lazarus_guide/internal/config"
	"lazarus_guide/internal/infrastructure/database"
	"lazarus_guide/internal/infrastructure/eventbus"
	"lazarus_guide/internal/usecase"
	"lazarus_guide/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

// Run wires the stores, use cases and handlers, then starts the server.
func Run() {
	cfg := config.Get()

	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(cfg)

	err := router.Run(":" + strconv.Itoa(cfg.Port))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(cfg *config.Config) {
	db := database.ConnectMySQLWithRetry(cfg.DB)
	guideRepo := repository.NewGuideGormRepository(db)

	var readModel interfaces.IGuideReadModel
	if cfg.ReadDB.Enabled {
		ddb := database.ConnectDynamoDB()
		readModel = repository.NewGuideReadModelDynamoRepository(ddb)
	}

	var publisher interfaces.IEventPublisher
	if cfg.EventBus.Enabled {
		p, err := eventbus.NewPubSubPublisher(context.Background())
		if err != nil {
			log.Printf("Event bus not configured, publishing disabled: %v", err)
		} else {
			publisher = p
		}
	}

	guideUseCase := usecase.NewGuideUseCase(guideRepo, publisher, readModel, cfg.DefaultHospitalID, cfg.EventBus)
	analyticsUseCase := usecase.NewAnalyticsUseCase(guideRepo, cfg.DefaultHospitalID)

	guideHandler := handlers.NewGuideHandler(guideUseCase)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsUseCase)

	var readModelPinger handlers.Pinger
	if rm, ok := readModel.(handlers.Pinger); ok {
		readModelPinger = rm
	}
	healthHandler := handlers.NewHealthHandler(guideRepo, readModelPinger)

	addServiceRoutes(router, healthHandler)

	v1 := router.Group("/api/v1")
	v1.Use(middleware.APIKeyAuth(cfg.APIKey))
	addGuideRoutes(v1, guideHandler)
	addAnalyticsRoutes(v1, analyticsHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
