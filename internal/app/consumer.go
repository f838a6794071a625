package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"siap-cuti/internal/balance"
	"siap-cuti/internal/config"
	"siap-cuti/internal/events"
	"siap-cuti/internal/messaging/kafka/consumer"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// RunConsumer reconciles the owner's balance on every leave status change.
func RunConsumer(cfg *config.Config) error {
	logger := zap.L().Named("app.consumer")

	if cfg.Kafka.Broker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	deps, err := connectDatabase(cfg)
	if err != nil {
		return err
	}
	defer deps.Close()

	balanceService := balance.NewService(balance.NewRepository(deps.gormDB), cfg.Timezone, logger)

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{cfg.Kafka.Broker},
		Topic:          events.LeaveStatusChangedTopic,
		GroupID:        cfg.Kafka.ConsumerGroup,
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer reader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		consumer.ConsumeLeaveStatusChanged(ctx, reader, balanceService, logger)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("consumer shutting down")
	cancel()
	<-done

	return nil
}
