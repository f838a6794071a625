package bootstrap

import (
	"context"
	"testing"
	"time"

	"siap-cuti/internal/shared/contextutil"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestStdoutAuditLogger_Log(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	ctx := contextutil.WithLogger(context.Background(), zap.New(core))

	l := NewStdoutAuditLogger("siap-cuti-api")
	l.now = func() time.Time { return time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC) }
	l.Log(ctx, AuditLog{Action: "SERVER_SHUTDOWN", Message: "bye", Meta: map[string]any{"signal": "terminated"}})

	entries := logs.All()
	assert.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "siap-cuti-api", fields["service"])
	assert.Equal(t, "SERVER_SHUTDOWN", fields["action"])
	assert.Equal(t, "2025-03-01T08:00:00Z", fields["timestamp"])
}
