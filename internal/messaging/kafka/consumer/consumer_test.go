package consumer

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"siap-cuti/internal/balance"
	balanceMock "siap-cuti/internal/balance/mock"
	"siap-cuti/internal/events"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type fakeReader struct {
	mu        sync.Mutex
	messages  []kafkago.Message
	committed []kafkago.Message
	cancel    context.CancelFunc
}

func (f *fakeReader) FetchMessage(ctx context.Context) (kafkago.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.messages) == 0 {
		f.cancel()
		return kafkago.Message{}, context.Canceled
	}
	msg := f.messages[0]
	f.messages = f.messages[1:]
	return msg, nil
}

func (f *fakeReader) CommitMessages(_ context.Context, msgs ...kafkago.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.committed = append(f.committed, msgs...)
	return nil
}

func statusMessage(t *testing.T, offset int64, event events.LeaveStatusChangedEvent) kafkago.Message {
	t.Helper()
	raw, err := json.Marshal(event)
	assert.NoError(t, err)
	return kafkago.Message{Offset: offset, Value: raw}
}

func TestConsumeLeaveStatusChanged(t *testing.T) {
	reconcileRetryDelay = time.Millisecond
	ctrl := gomock.NewController(t)
	balanceService := balanceMock.NewMockService(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reader := &fakeReader{cancel: cancel}
	reader.messages = []kafkago.Message{
		statusMessage(t, 1, events.LeaveStatusChangedEvent{LeaveID: "l-1", UserID: "u-1", Status: "Disetujui", Year: 2024}),
		{Offset: 2, Value: []byte("not json")},
		statusMessage(t, 3, events.LeaveStatusChangedEvent{LeaveID: "l-2", UserID: "u-2", Status: "Ditolak", Year: 2024}),
	}

	balanceService.EXPECT().Reconcile(gomock.Any(), "u-1", 2024).Return(balance.ReconcileResult{UserID: "u-1", Year: 2024, UsedDays: 3}, nil)
	gomock.InOrder(
		balanceService.EXPECT().Reconcile(gomock.Any(), "u-2", 2024).Return(balance.ReconcileResult{}, assert.AnError),
		balanceService.EXPECT().Reconcile(gomock.Any(), "u-2", 2024).Return(balance.ReconcileResult{UserID: "u-2", Year: 2024}, nil),
	)

	ConsumeLeaveStatusChanged(ctx, reader, balanceService, zap.NewNop())

	offsets := make([]int64, 0, len(reader.committed))
	for _, m := range reader.committed {
		offsets = append(offsets, m.Offset)
	}
	assert.Equal(t, []int64{1, 2, 3}, offsets)
}

func TestConsumeLeaveStatusChanged_GivesUpAfterRetries(t *testing.T) {
	reconcileRetryDelay = time.Millisecond
	ctrl := gomock.NewController(t)
	balanceService := balanceMock.NewMockService(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reader := &fakeReader{cancel: cancel}
	reader.messages = []kafkago.Message{
		statusMessage(t, 7, events.LeaveStatusChangedEvent{LeaveID: "l-1", UserID: "u-1", Year: 2024}),
	}

	balanceService.EXPECT().Reconcile(gomock.Any(), "u-1", 2024).Return(balance.ReconcileResult{}, assert.AnError).Times(reconcileAttempts)

	ConsumeLeaveStatusChanged(ctx, reader, balanceService, zap.NewNop())

	assert.Len(t, reader.committed, 1)
}
