// Package api exposes the simulator over HTTP.
package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"

	"github.com/rpgo/portfolio-montecarlo/internal/api/handlers"
	"github.com/rpgo/portfolio-montecarlo/internal/api/middleware"
	"github.com/rpgo/portfolio-montecarlo/internal/storage"
)

// Config holds the dependencies and limits of the HTTP API.
type Config struct {
	Store storage.RunStore
	// MaxTrials <= 0 disables the per-request limit.
	MaxTrials int
	// Workers <= 0 uses GOMAXPROCS for every simulation.
	Workers        int
	AllowedOrigins []string
	Logger         logrus.FieldLogger
}

// NewRouter builds the gin engine with every route registered.
func NewRouter(cfg Config) *gin.Engine {
	log := cfg.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}

	router := gin.New()
	router.Use(middleware.Logger(log))
	router.Use(middleware.ErrorHandler(log))

	simulationHandler := handlers.NewSimulationHandler(cfg.Store, cfg.MaxTrials, cfg.Workers, log)

	// Health check
	router.GET("/health", handlers.Health)

	// API routes
	v1 := router.Group("/api/v1")
	{
		v1.POST("/simulations", simulationHandler.RunSimulation)
		v1.GET("/simulations", simulationHandler.ListSimulations)
		v1.GET("/simulations/:id", simulationHandler.GetSimulation)
	}

	return router
}

// NewHandler wraps the router with CORS handling.
func NewHandler(cfg Config) http.Handler {
	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	c := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
		MaxAge:         300,
	})
	return c.Handler(NewRouter(cfg))
}
