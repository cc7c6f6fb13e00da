package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"assetboard/internal/config"
	"assetboard/internal/database"
	"assetboard/internal/handlers"
	"assetboard/internal/logger"
	"assetboard/internal/middleware"
	"assetboard/internal/repository"
	"assetboard/internal/services"
	"assetboard/internal/validator"

	_ "assetboard/internal/docs" // Import swagger docs
)

// @title           Assetboard API
// @version         1.0
// @description     Assetboard lets users manage portfolios and record buy/sell trades against an append-only ledger.
// @termsOfService  http://swagger.io/terms/

// @host      localhost:8080
// @BasePath  /api/v1

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize database configuration
	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	// Create database manager
	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	// Run migrations
	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Register custom request validators
	validator.Register()

	// Initialize services
	db := dbManager.DB()
	ledgerStore := repository.NewLedgerStore(db)
	userService := services.NewUserService(db)
	portfolioService := services.NewPortfolioService(db, ledgerStore)
	tradingService := services.NewTradingService(ledgerStore)

	// Initialize handlers
	userHandler := handlers.NewUserHandler(userService)
	portfolioHandler := handlers.NewPortfolioHandler(portfolioService)
	tradingHandler := handlers.NewTradingHandler(tradingService)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group
	v1 := router.Group("/api/v1")

	// User routes
	users := v1.Group("/users")
	users.POST("", userHandler.CreateUser)
	users.GET("", userHandler.ListUsers)
	users.GET("/:id", userHandler.GetUser)
	users.PUT("/:id", userHandler.UpdateUser)
	users.DELETE("/:id", userHandler.DeleteUser)

	// Portfolio routes
	portfolios := v1.Group("/portfolios")
	portfolios.POST("", portfolioHandler.CreatePortfolio)
	portfolios.GET("/:id", portfolioHandler.GetPortfolio)
	portfolios.GET("/:id/holdings", portfolioHandler.GetHoldings)
	portfolios.GET("/:id/transactions", portfolioHandler.GetTransactions)

	// Trading routes
	trading := v1.Group("/trading")
	trading.POST("/buy", tradingHandler.Buy)
	trading.POST("/sell", tradingHandler.Sell)

	log.Infof("Starting Assetboard backend server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
