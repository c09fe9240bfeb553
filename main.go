package main

import (
	"net/http"
	"os"

	"github.com/mahidrahman375/coffee-shop/config"
	"github.com/mahidrahman375/coffee-shop/handlers"
	"github.com/mahidrahman375/coffee-shop/logger"
	"github.com/mahidrahman375/coffee-shop/notify"
	"github.com/mahidrahman375/coffee-shop/routes"
	"github.com/mahidrahman375/coffee-shop/service"
	"github.com/mahidrahman375/coffee-shop/store"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	config.Load()
	logger.InitializeLogger()
	defer logger.Close()

	// Set Gin mode
	mode := os.Getenv("GIN_MODE")
	if mode == "" {
		gin.SetMode(gin.DebugMode)
	}

	// Initialize database
	db, err := config.InitDB(config.GetEnv("DB_PATH", "coffee_shop.db"))
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	logger.Info("Database connected and migrated successfully")

	if config.GetEnv("SEED_DEMO", "") == "true" {
		if err := config.SeedDemoData(db); err != nil {
			logger.Fatal("Failed to seed demo data", zap.Error(err))
		}
		logger.Info("Demo data seeded")
	}

	// Wire store client, change feed, workflows and handlers
	hub := notify.NewHub()
	repos := store.New(db, hub, logger.GetLogger())
	ordering := service.NewOrdering(repos, logger.GetLogger())
	admin := service.NewAdmin(repos, logger.GetLogger())

	// Create Gin router with default middleware (logger + recovery)
	r := gin.Default()

	// CORS middleware for frontend integration
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "Coffee Shop Table Order API",
			"version": "1.0.0",
		})
	})

	// Welcome
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "☕ Welcome to the Coffee Shop Table Order API",
			"docs":    "/api/state-machine",
			"health":  "/health",
			"views":   []string{"customer", "admin"},
		})
	})

	// Register all routes
	routes.SetupRoutes(r,
		handlers.NewPublicHandler(repos),
		handlers.NewOrderingHandler(ordering),
		handlers.NewAdminHandler(admin, hub),
	)

	// Start server
	port := config.GetEnv("PORT", "8080")
	logger.Info("Server running", zap.String("addr", "http://localhost:"+port))
	if err := r.Run(":" + port); err != nil {
		logger.Fatal("Failed to start server", zap.Error(err))
	}
}
