package main

import (
	"context"
	"fmt"
	"os"

	"github.com/flightpath-edu/flightpath-backend/internal/clients/redis"
	"github.com/flightpath-edu/flightpath-backend/internal/config"
	"github.com/flightpath-edu/flightpath-backend/internal/db"
	"github.com/flightpath-edu/flightpath-backend/internal/handlers"
	"github.com/flightpath-edu/flightpath-backend/internal/logger"
	"github.com/flightpath-edu/flightpath-backend/internal/middleware"
	"github.com/flightpath-edu/flightpath-backend/internal/observability"
	"github.com/flightpath-edu/flightpath-backend/internal/repos"
	"github.com/flightpath-edu/flightpath-backend/internal/server"
	"github.com/flightpath-edu/flightpath-backend/internal/services"
	"github.com/flightpath-edu/flightpath-backend/internal/utils"
)

func main() {
	// Logger
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Env
	log.Info("Loading environment variables from main...")
	jwtSecretKey := utils.GetEnv("JWT_SECRET_KEY", "defaultsecret", log)
	configPath := utils.GetEnv("CONFIG_PATH", "config/flightpath.yaml", log)

	// Tracing
	otelShutdown := observability.InitOTel(context.Background(), log, observability.OtelConfig{
		ServiceName: "flightpath-backend",
		Environment: utils.GetEnv("APP_ENV", "development", log),
		Version:     utils.GetEnv("APP_VERSION", "dev", log),
	})
	if otelShutdown != nil {
		defer otelShutdown(context.Background())
	}

	// Config
	cfg, err := config.Load(configPath, log)
	if err != nil {
		log.Error("Could not load config", "error", err)
		os.Exit(1)
	}

	// Postgres
	postgresService, err := db.NewPostgresService(log)
	if err != nil {
		log.Error("Postgres init failed", "error", err)
		os.Exit(1)
	}
	if err = postgresService.AutoMigrateAll(); err != nil {
		log.Warn("Postgres auto migration failed", "error", err)
	}
	thePG := postgresService.DB()

	// Redis
	redisClient, err := redis.NewClient(log)
	if err != nil {
		log.Warn("Redis init failed, running without cache and distributed locks", "error", err)
		redisClient = nil
	}

	// Repos
	log.Info("Setting up Repos from main...")
	templateRepo := repos.NewDegreeTemplateRepo(thePG, log)
	areaRepo := repos.NewRequirementAreaRepo(thePG, log)
	mappingRepo := repos.NewRequirementMappingRepo(thePG, log)
	courseRepo := repos.NewProviderCourseRepo(thePG, log)
	planRepo := repos.NewRoadmapPlanRepo(thePG, log)
	stepRepo := repos.NewRoadmapStepRepo(thePG, log)
	paymentRepo := repos.NewPaymentRecordRepo(thePG, log)
	snapshotRepo := repos.NewProjectionSnapshotRepo(thePG, log)

	// Services
	log.Info("Setting up Services from main...")
	authService := services.NewAuthService(log, jwtSecretKey)
	catalogService := services.NewCatalogService(thePG, log, templateRepo, areaRepo, mappingRepo, courseRepo)
	roadmapService := services.NewRoadmapService(thePG, log, cfg, catalogService, planRepo, stepRepo, snapshotRepo, redisClient)
	flightDeckService := services.NewFlightDeckService(thePG, log, cfg, planRepo, stepRepo, paymentRepo, snapshotRepo, redisClient)

	// Handlers
	log.Info("Setting up handlers from main...")
	roadmapHandler := handlers.NewRoadmapHandler(log, roadmapService)
	flightDeckHandler := handlers.NewFlightDeckHandler(log, flightDeckService)

	// Middleware
	log.Info("Setting up middleware from main...")
	authMiddleware := middleware.NewAuthMiddleware(log, authService)

	// Router
	log.Info("Setting up router from main...")
	router := server.NewRouter(server.RouterConfig{
		AuthMiddleware:    authMiddleware,
		RoadmapHandler:    roadmapHandler,
		FlightDeckHandler: flightDeckHandler,
	})

	port := utils.GetEnv("PORT", "8080", log)
	fmt.Printf("Server listening on :%s\n", port)
	if err := router.Run(":" + port); err != nil {
		log.Error("Server failed", "error", err)
	}
}
