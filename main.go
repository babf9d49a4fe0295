package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"merchant-offers-service/handlers"
	"merchant-offers-service/middleware"
	"merchant-offers-service/models"
	"merchant-offers-service/services"
	"merchant-offers-service/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  No .env file found, reading environment variables directly")
	}

	app := fiber.New()

	app.Use(middleware.RequestIDMiddleware())

	// 🔐❗ GLOBAL: Only Gateway requests allowed — no exceptions
	app.Use(middleware.GatewayAuthMiddleware())

	// Load allowed origins from environment variable
	allowedOriginsEnv := os.Getenv("ALLOWED_ORIGINS")
	if allowedOriginsEnv == "" {
		log.Println("⚠️  ALLOWED_ORIGINS environment variable not set, using default: http://localhost:3000")
		allowedOriginsEnv = "http://localhost:3000"
	}
	allowedOriginsList := strings.Split(allowedOriginsEnv, ",")
	for i, origin := range allowedOriginsList {
		allowedOriginsList[i] = strings.TrimSpace(origin)
	}
	allowedOriginsString := strings.Join(allowedOriginsList, ",")

	app.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOriginsString,
		AllowMethods:     "GET,OPTIONS,HEAD",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Requested-With, X-Request-ID, User-Agent, Cache-Control, X-User-ID",
		ExposeHeaders:    "Content-Length, Content-Type, X-Request-ID",
		AllowCredentials: true,
		MaxAge:           86400, // 24 hours
	}))

	// Attach the gateway-supplied visitor identity (optional — offers serve anonymous too)
	app.Use(middleware.UserContextMiddleware())

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL environment variable not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to connect to database:", err)
	}

	if err := db.AutoMigrate(
		&models.Review{},
		&models.Merchant{},
		&models.LoyaltyProgram{},
		&models.LoyaltyTier{},
		&models.MerchantLoyaltyReward{},
		&models.Outlet{},
		&models.PaybillOrTill{},
		&models.CashbackConfiguration{},
		&models.CashbackConfigurationTier{},
		&models.CashbackEligibleCustomerType{},
		&models.ExclusiveOffer{},
		&models.ExclusiveOfferEligibleCustomerType{},
		&models.CustomerType{},
	); err != nil {
		log.Fatal("failed to migrate database:", err)
	}

	redisClient := utils.NewRedisClient()

	offerService := services.NewOfferService(db, services.NewRedisContextCache(redisClient))
	offerService.StartOfferExpiryScheduler()

	if strings.EqualFold(os.Getenv("SEED_DEMO_DATA"), "true") {
		if err := utils.SeedDemoData(db); err != nil {
			log.Fatal("failed to seed demo data:", err)
		}
	}

	handlers.SetupOfferRoutes(app, offerService)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := app.Listen(":5300"); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	log.Println("✅ Server running on http://localhost:5300")
	log.Println("✅ Offer expiry scheduler running (hourly)")
	log.Println("✅ GatewayAuthMiddleware enforced globally — all requests must come from Gateway")
	log.Printf("✅ CORS configured for origins: %s", allowedOriginsString)

	<-ctx.Done()
	log.Println("Shutting down server...")
	_ = app.Shutdown()
	_ = redisClient.Close()
}
