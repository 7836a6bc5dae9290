package consumer

import (
	"context"
	"errors"
	"testing"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeInvalidator struct {
	companies []string
	err       error
}

func (f *fakeInvalidator) InvalidateRoster(_ context.Context, companyID string) error {
	f.companies = append(f.companies, companyID)
	return f.err
}

type fakeReader struct {
	msgs      []kafkago.Message
	committed []int64
	cancel    context.CancelFunc
}

func (f *fakeReader) FetchMessage(ctx context.Context) (kafkago.Message, error) {
	if len(f.msgs) == 0 {
		f.cancel()
		<-ctx.Done()
		return kafkago.Message{}, ctx.Err()
	}
	m := f.msgs[0]
	f.msgs = f.msgs[1:]
	return m, nil
}

func (f *fakeReader) CommitMessages(_ context.Context, msgs ...kafkago.Message) error {
	for _, m := range msgs {
		f.committed = append(f.committed, m.Offset)
	}
	return nil
}

func TestHandleEmployeeLifecycle(t *testing.T) {
	ctx := context.Background()

	t.Run("invalidates on lifecycle events", func(t *testing.T) {
		inv := &fakeInvalidator{}
		err := HandleEmployeeLifecycle(ctx, kafkago.Message{Value: []byte(`{"event_type":"employee_updated","company_id":"c1","employee_id":"a@x.io"}`)}, inv)

		assert.NoError(t, err)
		assert.Equal(t, []string{"c1"}, inv.companies)
	})

	t.Run("ignores other event types", func(t *testing.T) {
		inv := &fakeInvalidator{}
		err := HandleEmployeeLifecycle(ctx, kafkago.Message{Value: []byte(`{"event_type":"employee_promoted","company_id":"c1"}`)}, inv)

		assert.NoError(t, err)
		assert.Empty(t, inv.companies)
	})

	t.Run("undecodable payload is poison", func(t *testing.T) {
		err := HandleEmployeeLifecycle(ctx, kafkago.Message{Value: []byte(`not json`)}, &fakeInvalidator{})
		assert.ErrorIs(t, err, errPoison)

		err = HandleEmployeeLifecycle(ctx, kafkago.Message{Value: []byte(`{"event_type":"employee_created"}`)}, &fakeInvalidator{})
		assert.ErrorIs(t, err, errPoison)
	})
}

func TestConsumeEmployeeLifecycle(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reader := &fakeReader{
		cancel: cancel,
		msgs: []kafkago.Message{
			{Offset: 1, Value: []byte(`{"event_type":"employee_created","company_id":"c1"}`)},
			{Offset: 2, Value: []byte(`garbage`)},
			{Offset: 3, Value: []byte(`{"event_type":"employee_deleted","company_id":"c2"}`)},
		},
	}
	inv := &fakeInvalidator{}

	ConsumeEmployeeLifecycle(ctx, reader, inv, zap.NewNop())

	assert.Equal(t, []string{"c1", "c2"}, inv.companies)
	assert.Equal(t, []int64{1, 2, 3}, reader.committed)
}

func TestConsumeEmployeeLifecycle_RetriesFailedInvalidation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reader := &fakeReader{
		cancel: cancel,
		msgs:   []kafkago.Message{{Offset: 7, Value: []byte(`{"event_type":"employee_created","company_id":"c1"}`)}},
	}

	ConsumeEmployeeLifecycle(ctx, reader, &fakeInvalidator{err: errors.New("redis down")}, zap.NewNop())

	assert.Empty(t, reader.committed)
}
