package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/katalika-invoicing/config"
	"github.com/yourusername/katalika-invoicing/engine"
	"github.com/yourusername/katalika-invoicing/handlers"
	"github.com/yourusername/katalika-invoicing/middleware"
	"github.com/yourusername/katalika-invoicing/store"
	"github.com/yourusername/katalika-invoicing/utils"
)

func main() {
	logger := config.GetLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}
	config.SetLogLevel(cfg.LogLevel)

	// Initialize database
	db, err := config.InitDB(cfg)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}

	recordStore, err := store.NewGormStore(db)
	if err != nil {
		logger.Fatalf("Failed to initialize record store: %v", err)
	}
	gen := utils.UUIDGenerator{}
	eng := engine.New(gen)

	// Setup router
	router := gin.Default()

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "katalika-invoicing-api",
		})
	})

	authHandler := handlers.NewAuthHandler(recordStore, cfg)
	customerHandler := handlers.NewCustomerHandler(recordStore, gen)
	orderHandler := handlers.NewOrderHandler(recordStore, eng)
	invoiceHandler := handlers.NewInvoiceHandler(recordStore, eng)
	reportHandler := handlers.NewReportHandler(recordStore)
	dashboardHandler := handlers.NewDashboardHandler(recordStore)

	// API routes
	api := router.Group("/api/v1")
	api.POST("/auth/login", authHandler.Login)

	protected := api.Group("")
	protected.Use(middleware.JwtAuthMiddleware(cfg))
	{
		protected.GET("/auth/me", authHandler.Me)
		protected.POST("/auth/logout", authHandler.Logout)

		protected.GET("/customers", customerHandler.ListCustomers)
		protected.POST("/customers", customerHandler.CreateCustomer)
		protected.PUT("/customers/:id", customerHandler.UpdateCustomer)
		protected.DELETE("/customers/:id", customerHandler.DeleteCustomer)

		protected.GET("/orders", orderHandler.ListOrders)
		protected.GET("/orders/available", orderHandler.ListAvailableOrders)
		protected.POST("/orders", orderHandler.CreateOrder)
		protected.PUT("/orders/:id", orderHandler.UpdateOrder)
		protected.DELETE("/orders/:id", orderHandler.DeleteOrder)

		protected.GET("/invoices", invoiceHandler.ListInvoices)
		protected.POST("/invoices", invoiceHandler.CreateInvoice)
		protected.PUT("/invoices/:id", invoiceHandler.UpdateInvoice)
		protected.DELETE("/invoices/:id", invoiceHandler.DeleteInvoice)
		protected.GET("/invoices/:id/whatsapp", invoiceHandler.ShareInvoice)

		protected.GET("/reports", reportHandler.GetReport)
		protected.GET("/reports/export", reportHandler.ExportReport)

		protected.GET("/dashboard", dashboardHandler.GetDashboard)
	}

	// Start server
	port := cfg.Port
	if port == "" {
		port = "8080"
	}

	logger.Infof("Starting Katalika invoicing API server on port %s", port)
	if err := router.Run(":" + port); err != nil {
		logger.Fatalf("Failed to start server: %v", err)
	}
}
