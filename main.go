package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"katalog/internal/config"
	"katalog/internal/database"
	"katalog/internal/handlers"
	"katalog/internal/logging"
	"katalog/internal/repositories"
	"katalog/internal/server"
	"katalog/internal/telemetry"
	"katalog/pkg/rabbitmq"

	"go.uber.org/zap"
)

func main() {
	// --- Configuration ---
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.AppEnv)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	if err := run(cfg, logger); err != nil {
		logger.Fatal("Server failed", zap.Error(err))
	}
}

func run(cfg *config.Config, logger *zap.Logger) error {
	ctx := context.Background()

	shutdownTracing, err := telemetry.Setup(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(shutdownCtx); err != nil {
			logger.Warn("Error shutting down tracer provider", zap.Error(err))
		}
	}()

	// --- Initialize Repository ---
	productRepo, closeRepo, err := newProductRepository(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeRepo()

	// --- Initialize RabbitMQ publisher (optional) ---
	var events handlers.EventPublisher
	if cfg.RabbitMQURL != "" {
		mqClient, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL, Exchange: cfg.RabbitMQExchange})
		if err != nil {
			return err
		}
		defer mqClient.Close()
		events = mqClient
		logger.Info("Publishing product events", zap.String("exchange", cfg.RabbitMQExchange))
	}

	app := server.NewApp(server.Deps{
		ProductRepo: productRepo,
		Events:      events,
		Logger:      logger,
	})

	// --- Start HTTP Server ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	listenErr := make(chan error, 1)
	go func() {
		logger.Info("Starting server", zap.String("port", cfg.AppPort))
		listenErr <- app.Listen(cfg.AppPort)
	}()

	select {
	case <-quit:
		logger.Info("Shutting down server...")
	case err := <-listenErr:
		return err
	}

	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		logger.Error("Error during Fiber shutdown", zap.Error(err))
	}
	logging.Info(ctx, logger, "Server gracefully stopped")
	return nil
}

func newProductRepository(ctx context.Context, cfg *config.Config, logger *zap.Logger) (repositories.ProductRepository, func(), error) {
	if cfg.DatabaseDriver == "memory" {
		logger.Info("Using in-memory product repository")
		return repositories.NewInMemoryProductRepository(), func() {}, nil
	}

	db, err := database.Open(cfg)
	if err != nil {
		return nil, nil, err
	}
	if err := database.Ping(ctx, db); err != nil {
		_ = database.Close(db)
		return nil, nil, err
	}
	logger.Info("Connected to database", zap.String("driver", cfg.DatabaseDriver))

	closeDB := func() {
		if err := database.Close(db); err != nil {
			logger.Warn("Error closing database", zap.Error(err))
		}
	}
	return repositories.NewGORMProductRepository(db, logger), closeDB, nil
}
