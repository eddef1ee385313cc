package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/flightpath-edu/flightpath-backend/internal/handlers"
	"github.com/flightpath-edu/flightpath-backend/internal/middleware"
)

type RouterConfig struct {
	AuthMiddleware    *middleware.AuthMiddleware
	RoadmapHandler    *handlers.RoadmapHandler
	FlightDeckHandler *handlers.FlightDeckHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	router.Use(otelgin.Middleware("flightpath-backend"))

	// Cors
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			"http://localhost:80",
			"http://localhost:3000",
			"http://localhost:5174",
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	// ===============
	// || Public    ||
	// ===============
	router.GET("/healthcheck", handlers.HealthCheck)

	// ===============
	// || Protected ||
	// ===============
	protected := router.Group("/api")
	protected.Use(cfg.AuthMiddleware.RequireAuth())
	// Roadmaps
	protected.POST("/roadmaps/generate", cfg.RoadmapHandler.Generate)
	protected.GET("/roadmaps/:templateID", cfg.RoadmapHandler.GetPlan)
	protected.GET("/roadmaps/:templateID/flight-deck", cfg.FlightDeckHandler.GetDashboard)
	// Flight deck
	protected.POST("/flight-deck/calculate", cfg.FlightDeckHandler.Calculate)

	return router
}
