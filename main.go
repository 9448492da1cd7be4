package main

import (
	"log"
	"net/http"
	"os"

	"restaurant-pos-api/config"
	"restaurant-pos-api/database"
	"restaurant-pos-api/handlers"
	"restaurant-pos-api/middleware"
	"restaurant-pos-api/repository"
	"restaurant-pos-api/routes"
	"restaurant-pos-api/services"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// Set Gin mode
	mode := os.Getenv("GIN_MODE")
	if mode == "" {
		gin.SetMode(gin.DebugMode)
	}

	cfg := config.Load()

	db, err := database.Open(cfg.DBPath)
	if err != nil {
		log.Fatal("Failed to open database:", err)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.Println("Failed to close database:", err)
		}
	}()
	log.Println("Database connected and migrated")

	// Repositories
	users := repository.NewGormUserRepository(db)
	tables := repository.NewGormTableRepository(db)
	menu := repository.NewGormMenuRepository(db)
	orders := repository.NewGormOrderRepository(db)
	payments := repository.NewGormPaymentRepository(db)
	reports := repository.NewGormReportRepository(db)

	// Services
	tokens := middleware.NewTokenManager(cfg.JWTSecret)
	locks := services.NewTableLocks()
	authService := services.NewAuthService(users, tokens)
	tableService := services.NewTableService(tables)
	menuService := services.NewMenuService(menu)
	orderService := services.NewOrderService(orders, tables, menu, locks)
	paymentService := services.NewPaymentService(payments, orders, tables, locks)
	staffService := services.NewStaffService(users)
	reportService := services.NewReportService(reports, payments)

	// Create Gin router with default middleware (logger + recovery)
	r := gin.Default()
	r.Use(middleware.Metrics())

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
			"service": "Restaurant POS API",
			"version": "1.0.0",
		})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	routes.SetupRoutes(r, tokens, routes.Handlers{
		Auth:     handlers.NewAuthHandler(authService),
		Tables:   handlers.NewTableHandler(tableService),
		Menu:     handlers.NewMenuHandler(menuService),
		Orders:   handlers.NewOrderHandler(orderService),
		Payments: handlers.NewPaymentHandler(paymentService),
		Staff:    handlers.NewStaffHandler(staffService),
		Reports:  handlers.NewReportHandler(reportService),
	})

	log.Printf("Server running on %s", cfg.Addr)
	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
