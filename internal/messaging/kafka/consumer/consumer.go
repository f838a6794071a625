package consumer

import (
	"context"
	"encoding/json"
	"time"

	"siap-cuti/internal/balance"
	"siap-cuti/internal/events"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader is the subset of *kafkago.Reader used by consumers.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

const reconcileAttempts = 3

var (
	fetchRetryDelay     = time.Second
	reconcileRetryDelay = 2 * time.Second
)

// ConsumeLeaveStatusChanged recomputes the owner's used_days for the leave's
// year on every status change. Reconciliation is retried a few times; after that
// the message is committed anyway and the periodic reconciler catches up.
func ConsumeLeaveStatusChanged(
	ctx context.Context,
	reader MessageReader,
	balanceService balance.Service,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.leave_status")
	log.Info("leave status consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("leave status consumer stopped")
				return
			}
			log.Error("fetch leave status message failed", zap.Error(err))
			if !sleepCtx(ctx, fetchRetryDelay) {
				log.Info("leave status consumer stopped")
				return
			}
			continue
		}

		handleLeaveStatusMessage(ctx, reader, msg, balanceService, log)
	}
}

func handleLeaveStatusMessage(
	ctx context.Context,
	reader MessageReader,
	msg kafkago.Message,
	balanceService balance.Service,
	log *zap.Logger,
) {
	var event events.LeaveStatusChangedEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil || event.UserID == "" || event.Year == 0 {
		log.Error("decode leave status event failed",
			zap.Int64("offset", msg.Offset),
			zap.Error(err),
		)
		_ = reader.CommitMessages(ctx, msg)
		return
	}

	var (
		res balance.ReconcileResult
		err error
	)
	for attempt := 1; attempt <= reconcileAttempts; attempt++ {
		res, err = balanceService.Reconcile(ctx, event.UserID, event.Year)
		if err == nil {
			break
		}
		log.Warn("reconcile leave balance failed",
			zap.String("leave_id", event.LeaveID),
			zap.String("user_id", event.UserID),
			zap.Int("year", event.Year),
			zap.Int("attempt", attempt),
			zap.Error(err),
		)
		if attempt < reconcileAttempts && !sleepCtx(ctx, reconcileRetryDelay) {
			return
		}
	}

	if commitErr := reader.CommitMessages(ctx, msg); commitErr != nil {
		log.Error("commit leave status message failed", zap.Error(commitErr))
		return
	}

	if err != nil {
		log.Error("giving up on leave status event, periodic reconciliation will repair the balance",
			zap.String("leave_id", event.LeaveID),
			zap.String("user_id", event.UserID),
			zap.Error(err),
		)
		return
	}

	log.Info("leave balance reconciled from status event",
		zap.String("leave_id", event.LeaveID),
		zap.String("user_id", event.UserID),
		zap.String("status", event.Status),
		zap.Int("year", event.Year),
		zap.Int("used_days", res.UsedDays),
	)
}

func sleepCtx(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
