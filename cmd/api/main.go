package main

import (
	"fmt"
	"os"

	"bess-economics/internal/api/handlers"
	"bess-economics/internal/api/middleware"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

func main() {
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	// Get configuration from environment
	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080"
	}

	// Set up Gin router
	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	// Apply middleware
	router.Use(middleware.CORS())
	router.Use(middleware.Logger(&logger))
	router.Use(middleware.Recovery())

	// Initialize handlers
	projectHandler := handlers.NewProjectHandler()
	sensitivityHandler := handlers.NewSensitivityHandler()

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// API routes
	api := router.Group("/api/v1")
	{
		api.POST("/project", projectHandler.RunProjection)
		api.POST("/project/csv", projectHandler.ExportProjectionCSV)
		api.POST("/sensitivity", sensitivityHandler.RunSweep)
		api.GET("/scenarios", handlers.ListScenarios)
	}

	// Start server
	addr := fmt.Sprintf(":%s", port)
	logger.Info().Str("addr", addr).Msg("starting API server")
	if err := router.Run(addr); err != nil {
		logger.Fatal().Err(err).Msg("failed to start server")
	}
}
