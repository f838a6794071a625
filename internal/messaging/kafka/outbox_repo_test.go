package kafka_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"siap-cuti/internal/messaging/kafka"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestNewOutboxEvent(t *testing.T) {
	event, err := kafka.NewOutboxEvent("req-1", "leave_request", "leave-1", "leave.status_changed", "cuti.leave.status.v1", map[string]string{"status": "Disetujui"})

	assert.NoError(t, err)
	assert.NotEmpty(t, event.ID)
	assert.Equal(t, kafka.OutboxStatusPending, event.Status)
	assert.JSONEq(t, `{"status":"Disetujui"}`, string(event.Payload))
}

func TestOutboxRepository_CreateUsesTx(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	event, _ := kafka.NewOutboxEvent("", "leave_request", "leave-1", "leave.status_changed", "cuti.leave.status.v1", map[string]int{"year": 2024})

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO outbox_events")).
		WithArgs(event.ID, "", "leave_request", "leave-1", "leave.status_changed", "cuti.leave.status.v1", event.Payload, kafka.OutboxStatusPending).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	tx, err := db.BeginTx(context.Background(), nil)
	assert.NoError(t, err)

	repo := kafka.NewOutboxRepository(db).WithTx(tx)
	assert.NoError(t, repo.Create(context.Background(), event))
	assert.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_CreateRejectsInvalidEvent(t *testing.T) {
	db, _, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	err = kafka.NewOutboxRepository(db).Create(context.Background(), kafka.OutboxEvent{ID: "x"})
	assert.Error(t, err)
}

func TestOutboxRepository_ListPending(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "request_id", "aggregate_type", "aggregate_id", "event_type", "topic", "payload", "status", "retry_count", "next_retry_at"}).
		AddRow("o-1", "req-1", "leave_request", "leave-1", "leave.status_changed", "cuti.leave.status.v1", []byte(`{}`), "pending", 0, time.Now())
	mock.ExpectQuery(regexp.QuoteMeta("FROM outbox_events")).
		WithArgs(kafka.OutboxStatusPending, kafka.OutboxStatusFailed, kafka.MaxOutboxRetries, 10).
		WillReturnRows(rows)

	events, err := kafka.NewOutboxRepository(db).ListPending(context.Background(), 10)

	assert.NoError(t, err)
	assert.Len(t, events, 1)
	assert.Equal(t, "req-1", events[0].RequestID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_MarkFailed(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE outbox_events")).
		WithArgs("o-1", kafka.OutboxStatusFailed, "broker down").
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, kafka.NewOutboxRepository(db).MarkFailed(context.Background(), "o-1", "broker down"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_PurgeSent(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	cutoff := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM outbox_events")).
		WithArgs(kafka.OutboxStatusSent, cutoff).
		WillReturnResult(sqlmock.NewResult(0, 3))

	n, err := kafka.NewOutboxRepository(db).PurgeSent(context.Background(), cutoff)

	assert.NoError(t, err)
	assert.Equal(t, int64(3), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}
