package main

import (
	"log"
	"time"

	"grocery-backoffice/config"
	"grocery-backoffice/internal/handler"
	"grocery-backoffice/internal/middleware"
	"grocery-backoffice/internal/models"
	"grocery-backoffice/internal/repository"
	"grocery-backoffice/internal/service"
	"grocery-backoffice/pkg/database"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// 1. Load Configuration
	config.LoadConfig()

	// 2. Connect to Database
	database.Connect()

	// 3. Auto-Migrate Models
	log.Println("Running migrations...")

	err := database.DB.AutoMigrate(
		&models.User{},
		&models.Employee{},
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
		&models.Favourite{},
	)
	if err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	log.Println("Migrations completed successfully.")

	// 3a. Seed Data
	database.SeedDirectory()

	// 4. Wire Repositories and Services
	productRepo := repository.NewProductRepository(database.DB)
	directoryRepo := repository.NewDirectoryRepository(database.DB)
	orderRepo := repository.NewOrderRepository(database.DB)
	favouriteRepo := repository.NewFavouriteRepository(database.DB)

	var events service.EventPublisher = service.NoopEventPublisher{}
	if brokers := config.AppConfig.Kafka.Brokers; len(brokers) > 0 {
		publisher, err := service.NewKafkaEventPublisher(brokers, config.AppConfig.Kafka.OrderTopic)
		if err != nil {
			log.Fatalf("Failed to connect Kafka producer: %v", err)
		}
		events = publisher
	} else {
		log.Println("No Kafka brokers configured, order events disabled")
	}

	assigner := service.NewDeliveryAssigner(directoryRepo, orderRepo)
	orderService := service.NewOrderService(productRepo, directoryRepo, orderRepo, assigner, events)
	paymentService := service.NewPaymentService(directoryRepo, orderRepo, assigner, events)

	// 5. Initialize Router
	r := gin.Default()

	// CORS Configuration
	r.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "user-id"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// 6. Setup Routes
	orderHandler := &handler.OrderHandler{
		Orders:            orderService,
		Payments:          paymentService,
		DefaultReviewerID: config.AppConfig.Defaults.ReviewerID,
	}

	r.POST("/api/orders", orderHandler.PlaceOrder)
	r.GET("/api/orders", middleware.Principal(directoryRepo, models.RoleManager), orderHandler.ListOrders)
	r.GET("/api/orders/:id", middleware.Principal(directoryRepo, models.RoleManager), orderHandler.GetOrder)
	r.DELETE("/api/orders/:id", middleware.Principal(directoryRepo, models.RoleManager), orderHandler.DeleteOrder)
	r.GET("/api/orders/users/:userId/orders", orderHandler.UserOrders)
	r.GET("/api/orders/my-deliveries", middleware.Principal(directoryRepo, models.RoleDelivery), orderHandler.MyDeliveries)

	// Legacy review routes: reviewer id comes from the body, falling back to
	// the configured default.
	r.PUT("/api/orders/:id/approve-payment", orderHandler.ApprovePayment)
	r.PUT("/api/orders/:id/reject-payment", orderHandler.RejectPayment)
	r.PUT("/api/orders/:id/mark-delivered", middleware.Principal(directoryRepo), orderHandler.MarkDelivered)

	paymentHandler := &handler.PaymentReviewHandler{Payments: paymentService}
	paymentRoutes := r.Group("/api/payments")
	paymentRoutes.Use(middleware.Principal(directoryRepo, models.RolePaymentHandler))
	{
		paymentRoutes.GET("/pending", paymentHandler.Pending)
		paymentRoutes.POST("/approve/:orderId", paymentHandler.Approve)
		paymentRoutes.POST("/reject/:orderId", paymentHandler.Reject)
	}

	inventoryHandler := &handler.InventoryHandler{Products: productRepo}

	// Public Reads
	r.GET("/api/inventory/products", inventoryHandler.ListProducts)
	r.GET("/api/inventory/products/:id", inventoryHandler.GetProduct)
	r.GET("/api/inventory/products/:id/category", inventoryHandler.LocateCategory)

	// Protected Inventory Ops
	invRoutes := r.Group("/api/inventory")
	invRoutes.Use(middleware.Principal(directoryRepo, models.RoleManager, models.RoleWorker, models.RoleWorkerEmployee))
	{
		invRoutes.POST("/products", inventoryHandler.CreateProduct)
		invRoutes.PUT("/products/:id", inventoryHandler.UpdateProduct)
		invRoutes.POST("/products/:id/stock", inventoryHandler.AddStock)
		invRoutes.DELETE("/products/:id", inventoryHandler.DeleteProduct)
		invRoutes.GET("/alerts", inventoryHandler.LowStockAlerts)
	}

	favouriteHandler := &handler.FavouriteHandler{Favourites: favouriteRepo, Products: productRepo}
	favouriteRoutes := r.Group("/api/favourites")
	{
		favouriteRoutes.GET("/:userId", favouriteHandler.ListFavourites)
		favouriteRoutes.POST("", favouriteHandler.AddFavourite)
		favouriteRoutes.DELETE("/:userId/:productId", favouriteHandler.RemoveFavourite)
		favouriteRoutes.GET("/:userId/check/:productId", favouriteHandler.CheckFavourite)
		favouriteRoutes.DELETE("/:userId", favouriteHandler.ClearFavourites)
	}

	directoryHandler := &handler.DirectoryHandler{Directory: directoryRepo}
	dirRoutes := r.Group("/api/directory")
	dirRoutes.Use(middleware.Principal(directoryRepo, models.RoleManager))
	{
		dirRoutes.GET("/employees", directoryHandler.ListEmployees)
		dirRoutes.POST("/employees", directoryHandler.CreateEmployee)
		dirRoutes.PUT("/employees/:id", directoryHandler.UpdateEmployee)
		dirRoutes.DELETE("/employees/:id", directoryHandler.DeleteEmployee)
		dirRoutes.GET("/users", directoryHandler.ListUsers)
	}

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	// 7. Start Server
	port := config.AppConfig.Server.Port
	log.Printf("Server starting on port %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
