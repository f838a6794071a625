package bootstrap

import (
	"context"
	"time"

	"siap-cuti/internal/shared/contextutil"

	"go.uber.org/zap"
)

// StdoutAuditLogger writes audit entries through the global zap logger.
type StdoutAuditLogger struct {
	service string
	now     func() time.Time
}

func NewStdoutAuditLogger(service string) *StdoutAuditLogger {
	return &StdoutAuditLogger{service: service, now: time.Now}
}

func (l *StdoutAuditLogger) Log(ctx context.Context, entry AuditLog) {
	contextutil.GetLogger(ctx, zap.L()).Named("audit").Info("audit event",
		zap.String("service", l.service),
		zap.String("timestamp", l.now().UTC().Format(time.RFC3339)),
		zap.String("action", entry.Action),
		zap.String("message", entry.Message),
		zap.Any("meta", entry.Meta),
	)
}
