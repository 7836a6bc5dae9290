package kafka

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutboxRepository_CreateInTx(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	event := OutboxEvent{
		ID: "evt-1", RequestID: "req-1", AggregateType: "payroll_report", AggregateID: "rep-1",
		EventType: "payroll_report_saved", Topic: "erp.payroll.report.saved.v1", Payload: []byte(`{}`), Status: OutboxStatusPending,
	}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO outbox_events").
		WithArgs(event.ID, event.RequestID, event.AggregateType, event.AggregateID, event.EventType, event.Topic, event.Payload, event.Status).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	tx, err := db.Begin()
	require.NoError(t, err)
	require.NoError(t, NewOutboxRepository(db).WithTx(tx).Create(context.Background(), event))
	require.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_ListPending(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	next := time.Date(2024, 3, 31, 10, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "request_id", "aggregate_type", "aggregate_id", "event_type", "topic", "payload", "status", "retry_count", "next_retry_at"}).
		AddRow("evt-1", "req-1", "payroll_report", "rep-1", "payroll_report_saved", "erp.payroll.report.saved.v1", []byte(`{}`), OutboxStatusFailed, 2, next)
	mock.ExpectQuery("FROM outbox_events").
		WithArgs(OutboxStatusPending, OutboxStatusFailed, 10).
		WillReturnRows(rows)

	got, err := NewOutboxRepository(db).ListPending(context.Background(), 10)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "req-1", got[0].RequestID)
	assert.Equal(t, 2, got[0].RetryCount)
	assert.Equal(t, next, got[0].NextRetryAt)
}

func TestOutboxRepository_MarkFailed(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("UPDATE outbox_events").
		WithArgs("evt-1", OutboxStatusFailed, "broker unavailable", MaxOutboxAttempts, OutboxStatusDead).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, NewOutboxRepository(db).MarkFailed(context.Background(), "evt-1", "broker unavailable"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_PurgeSent(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	cutoff := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectExec("DELETE FROM outbox_events").
		WithArgs(OutboxStatusSent, cutoff).
		WillReturnResult(sqlmock.NewResult(0, 7))

	n, err := NewOutboxRepository(db).PurgeSent(context.Background(), cutoff)

	require.NoError(t, err)
	assert.Equal(t, int64(7), n)
}

func TestOutboxRepository_CreateRejectsInvalidEvent(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	err = NewOutboxRepository(db).Create(context.Background(), OutboxEvent{ID: "evt-1", Status: OutboxStatusPending})

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestValidateOutboxEvent(t *testing.T) {
	valid := OutboxEvent{ID: "1", Topic: "t", Payload: []byte("x"), Status: OutboxStatusPending}
	assert.NoError(t, ValidateOutboxEvent(valid))

	noTopic := valid
	noTopic.Topic = ""
	assert.Error(t, ValidateOutboxEvent(noTopic))

	badStatus := valid
	badStatus.Status = "queued"
	assert.Error(t, ValidateOutboxEvent(badStatus))
}
