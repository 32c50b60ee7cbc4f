package app

import (
	"database/sql"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"go-venusa-api/internal/auth"
	"go-venusa-api/internal/bus"
	"go-venusa-api/internal/cart"
	"go-venusa-api/internal/checkout"
	"go-venusa-api/internal/cloudinary"
	"go-venusa-api/internal/customer"
	"go-venusa-api/internal/email"
	"go-venusa-api/internal/kv"
	"go-venusa-api/internal/middleware"
	"go-venusa-api/internal/order"
	"go-venusa-api/internal/outbox"
	"go-venusa-api/internal/payment"
	"go-venusa-api/internal/product"
	"go-venusa-api/internal/wishlist"
)

type moduleDeps struct {
	db         *sql.DB
	redis      *redis.Client
	gateway    payment.Gateway
	images     cloudinary.Service
	email      email.Service
	logger     *zap.Logger
	catalogURL string
}

func registerModules(router *gin.Engine, deps moduleDeps) {
	router.Use(middleware.RequestIDMiddleware())

	// --- Shared infrastructure ---
	store := kv.NewRedisStore(deps.redis, deps.logger)
	eventBus := bus.New(deps.logger)

	// --- Repositories ---
	authRepo := auth.NewRepository(deps.db)
	customerRepo := customer.NewRepository(deps.db)
	orderRepo := order.NewRepository(deps.db)
	outboxRepo := outbox.NewRepository(deps.db)

	// --- Services ---
	authService := auth.NewService(authRepo, deps.email)
	customerService := customer.NewService(deps.db, customerRepo, deps.images)
	cartService := cart.NewService(store, eventBus, deps.logger)
	wishlistService := wishlist.NewService(store, eventBus, deps.logger)
	orderService := order.NewService(deps.db, orderRepo, outboxRepo, deps.logger)
	checkoutService := checkout.NewService(cartService, orderService, deps.gateway, deps.logger)
	productService := product.NewService(product.NewClient(deps.catalogURL), deps.redis, deps.logger)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService, deps.logger)
	customerHandler := customer.NewHandler(customerService)
	cartHandler := cart.NewHandler(cartService)
	wishlistHandler := wishlist.NewHandler(wishlistService)
	orderHandler := order.NewHandler(orderService)
	checkoutHandler := checkout.NewHandler(checkoutService)
	productHandler := product.NewHandler(productService)
	webhookHandler := payment.NewWebhookHandler(orderService, deps.logger)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler)
		customer.RegisterRoutes(api, customerHandler)
		product.RegisterRoutes(api, productHandler)
		cart.RegisterRoutes(api, cartHandler)
		wishlist.RegisterRoutes(api, wishlistHandler)
		checkout.RegisterRoutes(api, checkoutHandler)
		order.RegisterRoutes(api, orderHandler)
		payment.RegisterRoutes(api, webhookHandler)
	}
}
