package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/spf13/viper"

	"marketplace/internal/handlers"
	"marketplace/internal/repositories"
	"marketplace/internal/services"
	"marketplace/pkg/mongodb"
	"marketplace/pkg/rabbitmq"
)

func main() {
	// --- Configuration ---
	viper.SetDefault("PORT", "8000")
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "ecommerce")
	viper.SetDefault("RABBITMQ_URL", "")
	viper.AutomaticEnv()

	port := viper.GetString("PORT")
	databaseURL := viper.GetString("DATABASE_URL")
	databaseName := viper.GetString("DATABASE_NAME")
	rabbitMQURL := viper.GetString("RABBITMQ_URL")

	// --- Initialize MongoDB Client ---
	connectCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	store, err := mongodb.NewClient(connectCtx, mongodb.Config{
		URL:      databaseURL,
		Database: databaseName,
	})
	cancel()
	if err != nil {
		log.Fatalf("Failed to initialize MongoDB client: %v", err)
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := store.Close(closeCtx); err != nil {
			log.Printf("Error closing MongoDB client: %v", err)
		}
	}()

	// --- Initialize RabbitMQ Client (optional) ---
	// Event publishing is best-effort; the API runs fine without a broker.
	var publisher services.OrderEventPublisher
	if rabbitMQURL != "" {
		mqClient, err := rabbitmq.NewClient(rabbitmq.Config{URL: rabbitMQURL})
		if err != nil {
			log.Printf("Warning: RabbitMQ unavailable, order events disabled: %v", err)
		} else {
			defer mqClient.Close()
			publisher = mqClient
		}
	}

	// --- Initialize Repositories ---
	db := store.Database()
	vendorRepo := repositories.NewMongoVendorRepository(db)
	productRepo := repositories.NewMongoProductRepository(db)
	orderRepo := repositories.NewMongoOrderRepository(db)

	// --- Initialize Services ---
	vendorService := services.NewVendorService(vendorRepo)
	productService := services.NewProductService(productRepo, vendorRepo)
	orderService := services.NewOrderService(orderRepo, productRepo, publisher)
	diagnosticService := services.NewDiagnosticService(store, os.Getenv("DATABASE_URL") != "")

	// --- Initialize Handlers ---
	vendorHandler := handlers.NewVendorHandler(vendorService)
	productHandler := handlers.NewProductHandler(productService)
	orderHandler := handlers.NewOrderHandler(orderService)
	diagnosticHandler := handlers.NewDiagnosticHandler(diagnosticService)

	// --- Initialize Fiber App ---
	app := fiber.New()

	// --- Middleware ---
	app.Use(logger.New())
	app.Use(cors.New()) // fully open: any origin, method, header

	// --- API Routes ---
	diagnosticHandler.RegisterRoutes(app)
	vendorHandler.RegisterRoutes(app)
	productHandler.RegisterRoutes(app)
	orderHandler.RegisterRoutes(app)

	// --- Start HTTP Server ---
	log.Printf("Starting server on port %s", port)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(":" + port); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}
	log.Println("Server gracefully stopped")
}
