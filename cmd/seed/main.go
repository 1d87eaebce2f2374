package main

import (
	"context"
	"log"

	"katalog/internal/config"
	"katalog/internal/database"
	"katalog/internal/logging"
	"katalog/internal/seed"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.AppEnv)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	if cfg.DatabaseDriver == "memory" {
		logger.Fatal("Seeding needs a SQL backend", zap.String("driver", cfg.DatabaseDriver))
	}

	products, err := seed.LoadFile(cfg.SeedFile)
	if err != nil {
		logger.Fatal("Failed to load seed data", zap.Error(err))
	}

	db, err := database.Open(cfg)
	if err != nil {
		logger.Fatal("Failed to open database", zap.Error(err))
	}
	defer database.Close(db)

	if err := seed.Products(context.Background(), db, logger, products); err != nil {
		logger.Fatal("Failed to seed products", zap.Error(err))
	}
	logger.Info("Seeded products", zap.Int("count", len(products)), zap.String("file", cfg.SeedFile))
}
