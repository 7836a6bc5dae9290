package producer

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-erp/internal/messaging/kafka"
	kafkaMock "go-erp/internal/messaging/kafka/mock"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type fakeWriter struct {
	written []kafkago.Message
	failOn  string
}

func (f *fakeWriter) WriteMessages(_ context.Context, msgs ...kafkago.Message) error {
	for _, m := range msgs {
		if string(m.Key) == f.failOn {
			return errors.New("broker unavailable")
		}
		f.written = append(f.written, m)
	}
	return nil
}

func pending(id, aggregateID string) kafka.OutboxEvent {
	return kafka.OutboxEvent{
		ID: id, RequestID: "req-" + id, AggregateType: "payroll_report", AggregateID: aggregateID,
		EventType: "payroll_report_saved", Topic: "erp.payroll.report.saved.v1",
		Payload: []byte(`{"report_id":"` + aggregateID + `"}`), Status: kafka.OutboxStatusPending,
	}
}

func TestProcessPendingEvents(t *testing.T) {
	ctx := context.Background()

	t.Run("publishes and marks each event", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := kafkaMock.NewMockOutboxRepository(ctrl)
		writer := &fakeWriter{failOn: "rep-2"}

		invalid := pending("3", "rep-3")
		invalid.Payload = nil

		repo.EXPECT().ListPending(gomock.Any(), 50).Return([]kafka.OutboxEvent{pending("1", "rep-1"), pending("2", "rep-2"), invalid}, nil)
		repo.EXPECT().MarkSent(gomock.Any(), "1").Return(nil)
		repo.EXPECT().MarkFailed(gomock.Any(), "2", "broker unavailable").Return(nil)
		repo.EXPECT().MarkFailed(gomock.Any(), "3", gomock.Any()).Return(nil)

		sent, err := processPendingEvents(ctx, repo, writer, zap.NewNop(), 50)

		require.NoError(t, err)
		assert.Equal(t, 1, sent)
		require.Len(t, writer.written, 1)
		msg := writer.written[0]
		assert.Equal(t, "erp.payroll.report.saved.v1", msg.Topic)
		assert.Equal(t, []byte("rep-1"), msg.Key)
		assert.Contains(t, msg.Headers, kafkago.Header{Key: "request_id", Value: []byte("req-1")})
		assert.Contains(t, msg.Headers, kafkago.Header{Key: "event_type", Value: []byte("payroll_report_saved")})
	})

	t.Run("list failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := kafkaMock.NewMockOutboxRepository(ctrl)
		repo.EXPECT().ListPending(gomock.Any(), 10).Return(nil, errors.New("db down"))

		_, err := processPendingEvents(ctx, repo, &fakeWriter{}, zap.NewNop(), 10)

		assert.Error(t, err)
	})

	t.Run("nothing pending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := kafkaMock.NewMockOutboxRepository(ctrl)
		repo.EXPECT().ListPending(gomock.Any(), 10).Return(nil, nil)

		sent, err := processPendingEvents(ctx, repo, &fakeWriter{}, zap.NewNop(), 10)

		require.NoError(t, err)
		assert.Zero(t, sent)
	})
}

func TestPurgeSentEvents(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 4, 8, 12, 0, 0, 0, time.UTC)

	t.Run("deletes rows older than retention", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := kafkaMock.NewMockOutboxRepository(ctrl)
		repo.EXPECT().PurgeSent(gomock.Any(), now.Add(-7*24*time.Hour)).Return(int64(3), nil)

		purgeSentEvents(ctx, repo, zap.NewNop(), 7*24*time.Hour, now)
	})

	t.Run("disabled without retention", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := kafkaMock.NewMockOutboxRepository(ctrl)

		purgeSentEvents(ctx, repo, zap.NewNop(), 0, now)
	})
}
