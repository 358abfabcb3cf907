package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/minhnc2843/FinVault/internal/config"
	"github.com/minhnc2843/FinVault/internal/database"
	"github.com/minhnc2843/FinVault/internal/events"
	"github.com/minhnc2843/FinVault/internal/notification"
	"github.com/minhnc2843/FinVault/internal/worker"
	"github.com/minhnc2843/FinVault/pkg/logging"
)

func main() {
	// Load .env for local development; ignore errors in production.
	_ = godotenv.Load()

	cfg := config.Load()
	logger := logging.Setup(cfg.LogLevel)

	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	if cfg.AMQPURL == "" {
		logger.Error("AMQP_URL is required to run the notification worker")
		os.Exit(1)
	}

	db, err := database.NewPostgresConnection(cfg.DatabaseURL)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		logger.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	client, err := events.NewClient(cfg.AMQPURL, cfg.EventExchange, cfg.NotificationQueue)
	if err != nil {
		logger.Error("failed to connect to broker", "error", err)
		os.Exit(1)
	}
	defer client.Close()

	relay := worker.NewRelay(notification.NewService(notification.NewRepository(db)))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("notification worker started",
		"exchange", cfg.EventExchange,
		"queue", cfg.NotificationQueue)

	err = client.Consume(ctx, func(msg *events.NotificationMessage) error {
		return relay.Handle(ctx, msg)
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("consumption stopped", "error", err)
		os.Exit(1)
	}

	logger.Info("notification worker stopped")
}
