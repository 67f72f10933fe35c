package main

import (
	"context"
	"log"

	"go.uber.org/zap"

	"sellquick/internal/cache"
	"sellquick/internal/config"
	"sellquick/internal/db"
	"sellquick/internal/model"
	"sellquick/internal/repository"
	"sellquick/internal/seed"
	"sellquick/internal/service"
)

// Administrative seeding: inserts the example catalog into an empty
// directory and exits. The marker guard makes re-runs no-ops.
func main() {
	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("logger init: %v", err)
	}
	defer logger.Sync()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		logger.Fatal("database init", zap.Error(err))
	}

	if err := gormDB.AutoMigrate(&model.Listing{}, &model.SeedMarker{}); err != nil {
		logger.Fatal("auto-migrate", zap.Error(err))
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	listingRepo := repository.NewListingRepository(gormDB)
	seedService := service.NewSeedService(listingRepo, seed.Catalog, cacheClient, logger)

	seeded, err := seedService.SeedIfEmpty(context.Background())
	if err != nil {
		logger.Fatal("seed", zap.Error(err))
	}
	if seeded {
		logger.Info("seed completed", zap.Int("listings", len(seed.Catalog())))
	} else {
		logger.Info("directory not empty, nothing seeded")
	}
}
