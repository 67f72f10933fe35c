package main

import (
	"context"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	_ "sellquick/docs" // swagger docs

	"sellquick/internal/ai"
	"sellquick/internal/auth"
	"sellquick/internal/cache"
	"sellquick/internal/config"
	"sellquick/internal/db"
	"sellquick/internal/handler"
	"sellquick/internal/model"
	"sellquick/internal/repository"
	"sellquick/internal/router"
	"sellquick/internal/seed"
	"sellquick/internal/service"
)

// @title SellQuick Directory API
// @version 1.0
// @description Niche service-provider directory with AI-curated matching and JWT authentication.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("logger init: %v", err)
	}
	defer logger.Sync()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		logger.Fatal("database init", zap.Error(err))
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Listing{},
		&model.QuoteRequest{},
		&model.SeedMarker{},
	); err != nil {
		logger.Fatal("auto-migrate", zap.Error(err))
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	ctx := context.Background()
	aiClient, err := ai.New(ctx, cfg.GeminiAPIKey, logger)
	if err != nil {
		logger.Fatal("ai client init", zap.Error(err))
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	listingRepo := repository.NewListingRepository(gormDB)
	quoteRepo := repository.NewQuoteRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)
	notifier := auth.NewNotifier()
	unsubscribe := notifier.Subscribe(func(ev auth.Event) {
		logger.Info("auth state change",
			zap.String("kind", string(ev.Kind)),
			zap.String("user_id", ev.UserID))
	})
	defer unsubscribe()

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService, tokenStore, notifier)
	listingService := service.NewListingService(listingRepo, aiClient, cacheClient, logger)
	curationService := service.NewCurationService(listingRepo, aiClient, logger)
	quoteService := service.NewQuoteService(quoteRepo, logger)
	seedService := service.NewSeedService(listingRepo, seed.Catalog, cacheClient, logger)

	if cfg.SeedOnStart {
		if _, err := seedService.SeedIfEmpty(ctx); err != nil {
			logger.Warn("startup seed failed", zap.Error(err))
		}
	}

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService, userRepo)
	listingHandler := handler.NewListingHandler(listingService, cfg.IsAdmin)
	searchHandler := handler.NewSearchHandler(curationService)
	quoteHandler := handler.NewQuoteHandler(quoteService)
	seedHandler := handler.NewSeedHandler(seedService, cfg.IsAdmin)

	// Register routes
	router.Register(
		e,
		cfg,
		authHandler,
		listingHandler,
		searchHandler,
		quoteHandler,
		seedHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server start", zap.Error(err))
	}
}
