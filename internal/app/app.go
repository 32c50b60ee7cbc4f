package app

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"go-venusa-api/internal/cloudinary"
	"go-venusa-api/internal/email"
	"go-venusa-api/internal/payment"
)

func BuildApp(router *gin.Engine) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}

	// 1. Setup Infrastructure
	db, err := connectDBWithRetry(os.Getenv("DB_URL"), 5)
	if err != nil {
		return err
	}

	redisClient, err := connectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		return err
	}

	// 2. Setup Third Party Services
	gateway, err := payment.NewRazorpayGateway()
	if err != nil {
		return err
	}

	cloudinaryService, err := cloudinary.NewService(
		os.Getenv("CLOUDINARY_CLOUD_NAME"),
		os.Getenv("CLOUDINARY_API_KEY"),
		os.Getenv("CLOUDINARY_API_SECRET"),
		"venusa/avatars",
	)
	if err != nil {
		return err
	}

	emailService, err := email.NewResendServiceFromEnv()
	if err != nil {
		log.Printf("⚠️ Email disabled: %v", err)
		emailService = email.NewNoopService()
	}

	// 3. Register Modules & Routes
	registerModules(router, moduleDeps{
		db:         db,
		redis:      redisClient,
		gateway:    gateway,
		images:     cloudinaryService,
		email:      emailService,
		logger:     logger,
		catalogURL: os.Getenv("CATALOG_API_URL"),
	})

	return nil
}

func newLogger() (*zap.Logger, error) {
	if os.Getenv("APP_ENV") == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
