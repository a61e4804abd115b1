package main

import (
	"log"
	"strings"

	"payout-service/config"
	"payout-service/controllers"
	"payout-service/database"
	"payout-service/kafka"
	"payout-service/middleware"
	"payout-service/models"
	"payout-service/providers"
	"payout-service/repository"
	"payout-service/routes"
	"payout-service/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("[PayoutService] Failed to load config:", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal("[PayoutService] Failed to initialize logger:", err)
	}
	defer logger.Sync()

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal("[PayoutService] Failed to connect to DB:", err)
	}
	if err := db.AutoMigrate(&models.Payment{}); err != nil {
		log.Fatal("[PayoutService] Failed to migrate Payment model:", err)
	}

	paymentRepo := repository.NewGormPaymentRepo(db)
	provider := providers.NewRequestNetworkProvider(cfg.ProviderBaseURL, cfg.ProviderAPIKey)
	verifier := services.NewWebhookVerifier(cfg.WebhookSecret)
	if !verifier.Configured() {
		logger.Warn("RN_WEBHOOK_SECRET is not set; webhook requests will be rejected")
	}

	var publisher services.EventPublisher
	if cfg.KafkaBrokers != "" {
		producer := kafka.NewPaymentEventProducer(strings.Split(cfg.KafkaBrokers, ","), cfg.KafkaTopic)
		defer producer.Close()
		publisher = producer
	}

	paymentSvc := services.NewPaymentService(paymentRepo, provider, verifier, publisher, logger)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logger))

	pc := controllers.NewPaymentController(paymentSvc, logger)
	routes.RegisterPaymentRoutes(r, pc)

	logger.Info("PayoutService running", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("[PayoutService] Server failed:", err)
	}
}
