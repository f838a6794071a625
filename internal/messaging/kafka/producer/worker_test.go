package producer_test

import (
	"context"
	"testing"
	"time"

	"siap-cuti/internal/messaging/kafka"
	kafkaMock "siap-cuti/internal/messaging/kafka/mock"
	"siap-cuti/internal/messaging/kafka/producer"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type fakeWriter struct {
	failFor map[string]error
	written []kafkago.Message
}

func (f *fakeWriter) WriteMessages(_ context.Context, msgs ...kafkago.Message) error {
	for _, m := range msgs {
		if err := f.failFor[string(m.Key)]; err != nil {
			return err
		}
		f.written = append(f.written, m)
	}
	return nil
}

func TestProcessPendingEvents(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := kafkaMock.NewMockOutboxRepository(ctrl)
	ctx := context.Background()

	ok := kafka.OutboxEvent{ID: "o-1", RequestID: "req-1", AggregateID: "leave-1", EventType: "leave.status_changed", Topic: "cuti.leave.status.v1", Payload: []byte(`{}`)}
	bad := kafka.OutboxEvent{ID: "o-2", AggregateID: "leave-2", EventType: "leave.status_changed", Topic: "cuti.leave.status.v1", Payload: []byte(`{}`)}

	writer := &fakeWriter{failFor: map[string]error{"leave-2": assert.AnError}}

	repo.EXPECT().ListPending(ctx, 50).Return([]kafka.OutboxEvent{ok, bad}, nil)
	repo.EXPECT().MarkSent(ctx, "o-1").Return(nil)
	repo.EXPECT().MarkFailed(ctx, "o-2", assert.AnError.Error()).Return(nil)

	sent, err := producer.ProcessPendingEvents(ctx, repo, writer, zap.NewNop())

	assert.NoError(t, err)
	assert.Equal(t, 1, sent)
	assert.Len(t, writer.written, 1)

	msg := writer.written[0]
	assert.Equal(t, "cuti.leave.status.v1", msg.Topic)
	assert.Equal(t, []byte("leave-1"), msg.Key)
	headers := map[string]string{}
	for _, h := range msg.Headers {
		headers[h.Key] = string(h.Value)
	}
	assert.Equal(t, "leave.status_changed", headers["event_type"])
	assert.Equal(t, "req-1", headers["request_id"])
}

func TestProcessPendingEvents_ListError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := kafkaMock.NewMockOutboxRepository(ctrl)
	ctx := context.Background()

	repo.EXPECT().ListPending(ctx, 50).Return(nil, assert.AnError)

	sent, err := producer.ProcessPendingEvents(ctx, repo, &fakeWriter{}, zap.NewNop())

	assert.ErrorIs(t, err, assert.AnError)
	assert.Zero(t, sent)
}

func TestPurgeSentEvents(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := kafkaMock.NewMockOutboxRepository(ctrl)
	ctx := context.Background()
	now := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)

	repo.EXPECT().PurgeSent(ctx, now.Add(-7*24*time.Hour)).Return(int64(4), nil)
	producer.PurgeSentEvents(ctx, repo, zap.NewNop(), now)

	repo.EXPECT().PurgeSent(ctx, gomock.Any()).Return(int64(0), assert.AnError)
	producer.PurgeSentEvents(ctx, repo, zap.NewNop(), now)
}
