package producer

import (
	"context"
	"time"

	"siap-cuti/internal/messaging/kafka"

	"go.uber.org/zap"
)

const (
	outboxBatchSize     = 50
	outboxRetention     = 7 * 24 * time.Hour
	outboxPurgeInterval = time.Hour
)

func ProcessOutboxEvents(
	ctx context.Context,
	repo kafka.OutboxRepository,
	writer MessageWriter,
	logger *zap.Logger,
	pollInterval time.Duration,
) {
	if pollInterval <= 0 {
		pollInterval = 3 * time.Second
	}

	log := logger.Named("kafka.producer.worker")
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()
	purge := time.NewTicker(outboxPurgeInterval)
	defer purge.Stop()

	log.Info("outbox worker started", zap.Duration("poll_interval", pollInterval))

	// Drain the backlog before the first tick.
	if _, err := ProcessPendingEvents(ctx, repo, writer, log); err != nil {
		log.Error("process outbox events failed", zap.Error(err))
	}

	for {
		select {
		case <-ctx.Done():
			log.Info("outbox worker stopped")
			return
		case <-ticker.C:
			if _, err := ProcessPendingEvents(ctx, repo, writer, log); err != nil {
				log.Error("process outbox events failed", zap.Error(err))
			}
		case <-purge.C:
			PurgeSentEvents(ctx, repo, log, time.Now())
		}
	}
}

// PurgeSentEvents removes published rows older than the retention window.
func PurgeSentEvents(ctx context.Context, repo kafka.OutboxRepository, logger *zap.Logger, now time.Time) {
	n, err := repo.PurgeSent(ctx, now.Add(-outboxRetention))
	if err != nil {
		logger.Error("purge sent outbox events failed", zap.Error(err))
		return
	}
	if n > 0 {
		logger.Info("purged sent outbox events", zap.Int64("count", n))
	}
}

// ProcessPendingEvents publishes one batch and returns how many events were marked sent.
func ProcessPendingEvents(
	ctx context.Context,
	repo kafka.OutboxRepository,
	writer MessageWriter,
	logger *zap.Logger,
) (int, error) {
	events, err := repo.ListPending(ctx, outboxBatchSize)
	if err != nil {
		return 0, err
	}

	if len(events) == 0 {
		return 0, nil
	}

	logger.Info("processing pending outbox events", zap.Int("count", len(events)))

	sent := 0
	for _, event := range events {
		if err := publishEvent(ctx, writer, event); err != nil {
			logger.Error("publish outbox event failed",
				zap.String("outbox_id", event.ID),
				zap.String("event_type", event.EventType),
				zap.String("topic", event.Topic),
				zap.Error(err),
			)
			if markErr := repo.MarkFailed(ctx, event.ID, err.Error()); markErr != nil {
				logger.Error("mark outbox failed failed", zap.String("outbox_id", event.ID), zap.Error(markErr))
			}
			continue
		}

		if err := repo.MarkSent(ctx, event.ID); err != nil {
			logger.Error("mark outbox sent failed",
				zap.String("outbox_id", event.ID),
				zap.Error(err),
			)
			continue
		}

		sent++
		logger.Info("outbox event sent",
			zap.String("outbox_id", event.ID),
			zap.String("event_type", event.EventType),
			zap.String("topic", event.Topic),
		)
	}

	return sent, nil
}
