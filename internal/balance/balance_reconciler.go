package balance

import (
	"context"
	"time"

	"go.uber.org/zap"
)

const defaultReconcileInterval = time.Hour

// RunPeriodicReconcile recomputes used_days for the current year right away and then on every tick,
// until ctx is done. It backs up the event-driven reconciliation when events are lost or dropped.
func RunPeriodicReconcile(ctx context.Context, svc Service, interval time.Duration, logger *zap.Logger) {
	if interval <= 0 {
		interval = defaultReconcileInterval
	}
	if logger == nil {
		logger = zap.L()
	}
	log := logger.Named("balance.reconciler")

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	log.Info("balance reconciler started", zap.Duration("interval", interval))
	for {
		year := svc.CurrentYear()
		n, err := svc.ReconcileYear(ctx, year)
		if err != nil && ctx.Err() == nil {
			log.Error("balance reconcile pass failed", zap.Int("year", year), zap.Int("reconciled", n), zap.Error(err))
		} else {
			log.Debug("balance reconcile pass done", zap.Int("year", year), zap.Int("reconciled", n))
		}

		select {
		case <-ctx.Done():
			log.Info("balance reconciler stopped")
			return
		case <-ticker.C:
		}
	}
}
