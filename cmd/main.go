package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"go.uber.org/zap"

	"gitlab.ozon.dev/pupkingeorgij/smartlocker/internal/cache"
	"gitlab.ozon.dev/pupkingeorgij/smartlocker/internal/db"
	"gitlab.ozon.dev/pupkingeorgij/smartlocker/internal/kafka"
	"gitlab.ozon.dev/pupkingeorgij/smartlocker/internal/logger"
	"gitlab.ozon.dev/pupkingeorgij/smartlocker/internal/notify"
	"gitlab.ozon.dev/pupkingeorgij/smartlocker/internal/repository/postgresql"
	"gitlab.ozon.dev/pupkingeorgij/smartlocker/internal/server"
	"gitlab.ozon.dev/pupkingeorgij/smartlocker/internal/storage"
	"gitlab.ozon.dev/pupkingeorgij/smartlocker/internal/watcher"
)

const (
	defaultPort        = "9000"
	cleanupInterval    = 30 * time.Second
	pickupInterval     = 5 * time.Second
	outboxPollInterval = 2 * time.Second
	outboxBatchSize    = 50
	outboxMaxAttempts  = 5
	shutdownTimeout    = 30 * time.Second
)

func main() {
	log := logger.New()
	defer func() { _ = log.Sync() }()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	database, err := db.NewDb(ctx)
	if err != nil {
		log.Fatal("database init failed", zap.Error(err))
	}
	defer database.Close()

	db.InitAdmin(ctx, database, log)

	lockerRepo := postgresql.NewLockerRepo(database)
	orderRepo := postgresql.NewOrderRepo(database)
	deliveryRepo := postgresql.NewDeliveryInfoRepo(database)
	reportRepo := postgresql.NewErrorReportRepo(database)
	notifRepo := postgresql.NewNotificationRepo(database)
	userRepo := postgresql.NewUserRepo(database)
	outboxRepo := postgresql.NewOutboxTaskRepo()

	lockerCache := cache.NewLockerCache(lockerRepo, log)
	if err := lockerCache.LoadInitialData(ctx); err != nil {
		log.Fatal("failed to warm locker cache", zap.Error(err))
	}

	stg := storage.NewPostgresStorage(database, lockerRepo, orderRepo, deliveryRepo,
		reportRepo, notifRepo, userRepo, outboxRepo, lockerCache, log)

	producer := kafka.NewProducerFromBrokers(kafkaBrokers(), log)
	publisher := kafka.NewPublisher(database, outboxRepo, producer, kafka.PublisherConfig{
		PollInterval: outboxPollInterval,
		BatchSize:    outboxBatchSize,
		MaxAttempts:  outboxMaxAttempts,
	}, log)
	go publisher.Run(ctx)

	cleanupWatcher := watcher.NewDeliveryInfoWatcher(stg, cleanupInterval, log)
	go cleanupWatcher.Run(ctx)

	pickupWatcher := watcher.NewPickupWatcher(stg, pickupInterval, log)
	go pickupWatcher.Run(ctx)

	srv := server.New(stg, userRepo, stg, cleanupWatcher,
		notify.NewSMSSender(log), notify.NewPushSender(log), log)

	port := os.Getenv("HTTP_PORT")
	if port == "" {
		port = defaultPort
	}

	go func() {
		if err := srv.Run(ctx, port); err != nil {
			log.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("shutdown signal received")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown failed", zap.Error(err))
	}

	pickupWatcher.Shutdown()
	cleanupWatcher.Shutdown()
	publisher.Shutdown()

	log.Info("stopped")
}

func kafkaBrokers() []string {
	raw := os.Getenv("KAFKA_BROKERS")
	if raw == "" {
		return nil
	}
	brokers := strings.Split(raw, ",")
	for i := range brokers {
		brokers[i] = strings.TrimSpace(brokers[i])
	}
	return brokers
}
