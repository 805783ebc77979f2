package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/AndrewDonelson/caption-studio/config"
	"github.com/AndrewDonelson/caption-studio/internal/database"
	"github.com/AndrewDonelson/caption-studio/internal/handlers"
	"github.com/AndrewDonelson/caption-studio/internal/services"
	"github.com/AndrewDonelson/caption-studio/internal/utils"
	"github.com/AndrewDonelson/caption-studio/internal/worker"
	"github.com/gin-gonic/gin"
)

func main() {
	fmt.Println("Caption Studio")

	// Load configuration
	cfg := config.LoadConfig()
	log.Printf("Environment: %s", cfg.Environment)
	log.Printf("Server port: %d", cfg.ServerPort)

	// Prepare storage directories
	if err := utils.EnsureDataDirectories(); err != nil {
		log.Fatalf("Failed to create data directories: %v", err)
	}

	// Initialize database
	if err := database.InitDB(cfg.DBPath); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer database.Close()

	// Create repositories
	jobRepo := database.NewJobRepository(database.DB)

	// Create progress broadcaster for live updates
	broadcaster := services.NewProgressBroadcaster()

	// Create handlers
	jobHandler := handlers.NewJobHandler(jobRepo, broadcaster)
	progressHandler := handlers.NewProgressHandler(broadcaster, jobRepo)
	uploadHandler := handlers.NewUploadHandler()

	// Create and start job worker
	pollInterval := time.Duration(cfg.PollIntervalSeconds) * time.Second
	jobWorker := worker.NewWorker(jobRepo, broadcaster, cfg, pollInterval)
	go jobWorker.Start()
	log.Printf("Job worker started (polling every %s)", pollInterval)

	// Create Gin router
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	// CORS middleware - MUST be first
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Add("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Add("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Add("Access-Control-Allow-Headers", "Content-Type, Authorization")
		c.Writer.Header().Add("Access-Control-Max-Age", "86400")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(200)
			return
		}

		c.Next()
	})

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": "caption-studio",
		})
	})

	// API v1 group
	v1 := router.Group("/api/v1")
	{
		// Job endpoints
		jobs := v1.Group("/jobs")
		{
			jobs.GET("", jobHandler.GetAll)
			jobs.POST("", jobHandler.Create)
			jobs.GET("/next", jobHandler.GetNext)
			jobs.GET("/:id", jobHandler.GetByID)
			jobs.PUT("/:id", jobHandler.Update)
			jobs.DELETE("/:id", jobHandler.Delete)
		}

		// Upload endpoint
		v1.POST("/uploads", uploadHandler.Upload)

		// Progress streaming endpoints (SSE)
		progress := v1.Group("/progress")
		{
			progress.GET("/stream", progressHandler.StreamProgress)
			progress.GET("/stream/:id", progressHandler.StreamJobProgress)
			progress.GET("/stats", progressHandler.GetStats)
		}
	}

	// Start server in goroutine
	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	log.Printf("Starting server on %s", addr)

	go func() {
		if err := router.Run(addr); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	log.Println("Shutting down gracefully...")

	// Stop worker
	jobWorker.Stop()

	// Close database
	database.Close()

	log.Println("Shutdown complete")
}
