package app

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"siap-cuti/internal/balance"
	"siap-cuti/internal/config"
	"siap-cuti/internal/messaging/kafka"
	"siap-cuti/internal/messaging/kafka/producer"
	"siap-cuti/internal/shared/connection"

	"go.uber.org/zap"
)

// RunWorker publishes outbox events to Kafka and periodically reconciles balances.
// Without a broker only the reconciler runs.
func RunWorker(cfg *config.Config) error {
	logger := zap.L().Named("app.worker")

	deps, err := connectDatabase(cfg)
	if err != nil {
		return err
	}
	defer deps.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var wg sync.WaitGroup

	if cfg.Kafka.Broker != "" {
		kafkaWriter, err := connection.ConnectKafkaWithRetry(cfg.Kafka.Broker, cfg.DB.MaxRetries)
		if err != nil {
			return err
		}
		defer kafkaWriter.Close()

		outboxRepo := kafka.NewOutboxRepository(deps.sqlDB)
		wg.Add(1)
		go func() {
			defer wg.Done()
			producer.ProcessOutboxEvents(ctx, outboxRepo, kafkaWriter, logger, cfg.Worker.OutboxPollInterval)
		}()
	} else {
		logger.Warn("KAFKA_BROKER not set, outbox events stay pending")
	}

	balanceService := balance.NewService(balance.NewRepository(deps.gormDB), cfg.Timezone, logger)
	wg.Add(1)
	go func() {
		defer wg.Done()
		balance.RunPeriodicReconcile(ctx, balanceService, cfg.Worker.ReconcileInterval, logger)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("worker shutting down")
	cancel()
	wg.Wait()

	return nil
}
