package main

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/cropool/backend/internal/pkg/config"
	"github.com/cropool/backend/internal/pkg/database"
	"github.com/cropool/backend/internal/pkg/health"
	"github.com/cropool/backend/internal/pkg/logger"
	"github.com/cropool/backend/internal/pkg/maps"
	"github.com/cropool/backend/internal/pkg/middleware"
	natspkg "github.com/cropool/backend/internal/pkg/nats"
	"github.com/cropool/backend/internal/pkg/server"
	checkpointGateway "github.com/cropool/backend/services/checkpoints/gateway"
	checkpointHandler "github.com/cropool/backend/services/checkpoints/handler"
	checkpointRepository "github.com/cropool/backend/services/checkpoints/repository"
	checkpointUsecase "github.com/cropool/backend/services/checkpoints/usecase"
	routeHandler "github.com/cropool/backend/services/routes/handler"
	routeRepository "github.com/cropool/backend/services/routes/repository"
	routeUsecase "github.com/cropool/backend/services/routes/usecase"
	userHandler "github.com/cropool/backend/services/users/handler"
	userRepository "github.com/cropool/backend/services/users/repository"
	userUsecase "github.com/cropool/backend/services/users/usecase"
)

func main() {
	appName := "cropool-backend"
	configPath := config.GetEnv("CONFIG_PATH", "config/cropool.env")
	configs := config.InitConfig(configPath)

	zapLogger, err := logger.NewZapLogger(configs.Logger)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	defer postgresClient.Close()

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	defer redisClient.Close()

	// Initialize NATS producer
	producer, err := natspkg.NewProducer(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", logger.Err(err))
	}
	defer producer.Close()

	// Initialize the routing-service client
	directionsClient, err := maps.NewDirectionsClient(configs.Directions)
	if err != nil {
		zapLogger.Fatal("Failed to create directions client", logger.Err(err))
	}

	// Initialize repositories
	db := postgresClient.GetDB()
	routeRepo := routeRepository.NewRouteRepository(configs, db)
	checkpointRepo := checkpointRepository.NewCheckpointRepository(configs, db)
	userRepo := userRepository.NewUserRepository(configs, db)
	estimateCache := routeRepository.NewEstimateCache(redisClient.GetClient(), configs)

	// Initialize gateway
	checkpointGW := checkpointGateway.NewCheckpointGW(producer)

	// Initialize use cases. The checkpoint use case reads routes and user
	// profiles through its own source interfaces, backed by the sibling
	// repositories.
	routeUC := routeUsecase.NewRouteUC(configs, routeRepo, checkpointRepo, directionsClient, estimateCache)
	checkpointUC := checkpointUsecase.NewCheckpointUC(configs, checkpointRepo, routeRepo, userRepo, checkpointGW)
	userUC := userUsecase.NewUserUC(configs, userRepo)

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true

	// Add middlewares
	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))
	e.Use(logger.EchoMiddleware(zapLogger))

	// Register health and metrics endpoints
	healthSvc := health.NewService()
	healthSvc.AddChecker("postgres", health.CheckerFunc(postgresClient.Ping))
	healthSvc.AddChecker("redis", health.CheckerFunc(redisClient.Ping))
	healthSvc.AddChecker("nats", health.CheckerFunc(func(context.Context) error {
		if !producer.IsConnected() {
			return errors.New("nats connection lost")
		}
		return nil
	}))
	health.RegisterEndpoints(e, appName, configs.App.Version, healthSvc)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Register service routes
	routeHandler.NewHandler(routeUC).RegisterRoutes(e, configs.JWT)
	checkpointHandler.NewHandler(checkpointUC).RegisterRoutes(e, configs.JWT)
	userHandler.NewHandler(userUC).RegisterRoutes(e, configs.JWT)

	// Start server and block until shutdown
	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port,
		time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	if err := srv.Start(); err != nil {
		zapLogger.Error("Server exited with error", logger.Err(err))
	}
}
