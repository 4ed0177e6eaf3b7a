package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/todo-cli/internal/config"
	"github.com/yukikurage/todo-cli/internal/database"
	"github.com/yukikurage/todo-cli/internal/handlers"
	"github.com/yukikurage/todo-cli/internal/middleware"
	"github.com/yukikurage/todo-cli/internal/repository"
	"github.com/yukikurage/todo-cli/internal/services"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Load configuration
	if err := config.LoadEnvFiles(); err != nil {
		log.Printf("Failed to load env file: %v", err)
		return 1
	}
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Printf("Invalid configuration: %v", err)
		return 1
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()})))

	// Set Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// Connect to database and run migrations
	session, err := database.Open(context.Background(), cfg.Database)
	if err != nil {
		log.Printf("Failed to connect to database: %v", err)
		return 1
	}
	defer session.Close()

	// Initialize services (AI is optional)
	taskService := services.NewTaskService(
		repository.NewTaskRepository(session.DB()),
		services.NewAIService(cfg.AI),
	)

	// Initialize handlers
	taskHandler := handlers.NewTaskHandler(taskService)

	// Initialize Gin router
	r := gin.Default()

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Todo API is running",
		})
	})

	// API routes
	api := r.Group("/api")
	{
		tasks := api.Group("/tasks")
		{
			tasks.GET("", taskHandler.ListTasks)
			tasks.POST("", taskHandler.CreateTask)
			tasks.POST("/suggest", taskHandler.SuggestTasks)
			tasks.GET("/:code", middleware.RequireTask(taskService), taskHandler.GetTask)
			tasks.PATCH("/:code", middleware.RequireTask(taskService), taskHandler.UpdateTask)
			tasks.DELETE("/:code", taskHandler.DeleteTask)
		}
	}

	// Start server
	addr := ":" + cfg.Server.Port
	log.Printf("Server starting on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Printf("Failed to start server: %v", err)
		return 1
	}
	return 0
}
