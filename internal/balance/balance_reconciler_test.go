package balance_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"siap-cuti/internal/balance"
	balanceMock "siap-cuti/internal/balance/mock"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestRunPeriodicReconcile(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := balanceMock.NewMockService(ctrl)
	ctx, cancel := context.WithCancel(context.Background())

	svc.EXPECT().CurrentYear().Return(2025).MinTimes(2)
	first := svc.EXPECT().ReconcileYear(gomock.Any(), 2025).Return(3, errors.New("one owner failed"))
	svc.EXPECT().ReconcileYear(gomock.Any(), 2025).After(first).DoAndReturn(func(context.Context, int) (int, error) {
		cancel()
		return 4, nil
	}).MinTimes(1)

	done := make(chan struct{})
	go func() {
		balance.RunPeriodicReconcile(ctx, svc, 5*time.Millisecond, zap.NewNop())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("reconciler did not stop after cancel")
	}
	assert.Error(t, ctx.Err())
}
