package kafka

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

const (
	OutboxStatusPending = "pending"
	OutboxStatusSent    = "sent"
	OutboxStatusFailed  = "failed"
	// OutboxStatusDead rows exhausted MaxOutboxAttempts and are no longer polled.
	OutboxStatusDead = "dead"
)

const MaxOutboxAttempts = 10

// OutboxEvent is a row of outbox_events. It is written in the same transaction as the change it
// announces and published later by the producer worker.
type OutboxEvent struct {
	ID            string
	RequestID     string
	AggregateType string
	AggregateID   string
	EventType     string
	Topic         string
	Payload       []byte
	Status        string
	RetryCount    int
	NextRetryAt   time.Time
}

//go:generate mockgen -source=outbox_repo.go -destination=mock/outbox_repo_mock.go -package=mock

type OutboxRepository interface {
	WithTx(tx *sql.Tx) OutboxRepository
	Create(ctx context.Context, event OutboxEvent) error
	ListPending(ctx context.Context, limit int) ([]OutboxEvent, error)
	MarkSent(ctx context.Context, id string) error
	MarkFailed(ctx context.Context, id string, reason string) error
	PurgeSent(ctx context.Context, before time.Time) (int64, error)
}

const (
	insertOutboxSQL = `
INSERT INTO outbox_events (
	id, request_id, aggregate_type, aggregate_id, event_type, topic, payload, status
) VALUES ($1, NULLIF($2, ''), $3, $4, $5, $6, $7, $8)`

	// failed rows wait for next_retry_at, dead rows are left for an operator
	listPendingSQL = `
SELECT
	id::text,
	COALESCE(request_id, ''),
	aggregate_type,
	aggregate_id::text,
	event_type,
	topic,
	payload,
	status,
	retry_count,
	COALESCE(next_retry_at, created_at)
FROM outbox_events
WHERE status IN ($1, $2)
	AND (next_retry_at IS NULL OR next_retry_at <= NOW())
ORDER BY created_at ASC
LIMIT $3`

	markSentSQL = `
UPDATE outbox_events
SET status = $2, processed_at = NOW(), error_message = NULL, updated_at = NOW()
WHERE id = $1`

	// backoff grows 15s per attempt
	markFailedSQL = `
UPDATE outbox_events
SET
	status = CASE WHEN retry_count + 1 >= $4 THEN $5 ELSE $2 END,
	retry_count = retry_count + 1,
	error_message = LEFT($3, 500),
	next_retry_at = NOW() + ((retry_count + 1) * INTERVAL '15 seconds'),
	updated_at = NOW()
WHERE id = $1`

	purgeSentSQL = `DELETE FROM outbox_events WHERE status = $1 AND processed_at < $2`
)

type sqlExecutor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

type outboxRepository struct {
	db *sql.DB
	tx *sql.Tx
}

func NewOutboxRepository(db *sql.DB) OutboxRepository {
	return &outboxRepository{db: db}
}

func (r *outboxRepository) WithTx(tx *sql.Tx) OutboxRepository {
	return &outboxRepository{db: r.db, tx: tx}
}

func (r *outboxRepository) conn() sqlExecutor {
	if r.tx != nil {
		return r.tx
	}
	return r.db
}

func (r *outboxRepository) Create(ctx context.Context, event OutboxEvent) error {
	if err := ValidateOutboxEvent(event); err != nil {
		return err
	}
	_, err := r.conn().ExecContext(ctx, insertOutboxSQL,
		event.ID, event.RequestID, event.AggregateType,
		event.AggregateID, event.EventType, event.Topic, event.Payload, event.Status,
	)
	return err
}

func (r *outboxRepository) ListPending(ctx context.Context, limit int) ([]OutboxEvent, error) {
	rows, err := r.conn().QueryContext(ctx, listPendingSQL, OutboxStatusPending, OutboxStatusFailed, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]OutboxEvent, 0, limit)
	for rows.Next() {
		var e OutboxEvent
		if err := rows.Scan(
			&e.ID,
			&e.RequestID,
			&e.AggregateType,
			&e.AggregateID,
			&e.EventType,
			&e.Topic,
			&e.Payload,
			&e.Status,
			&e.RetryCount,
			&e.NextRetryAt,
		); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (r *outboxRepository) MarkSent(ctx context.Context, id string) error {
	_, err := r.conn().ExecContext(ctx, markSentSQL, id, OutboxStatusSent)
	return err
}

// MarkFailed schedules another attempt, or parks the row as dead once MaxOutboxAttempts is reached.
func (r *outboxRepository) MarkFailed(ctx context.Context, id string, reason string) error {
	_, err := r.conn().ExecContext(ctx, markFailedSQL, id, OutboxStatusFailed, reason, MaxOutboxAttempts, OutboxStatusDead)
	return err
}

// PurgeSent deletes published rows processed before the cutoff.
func (r *outboxRepository) PurgeSent(ctx context.Context, before time.Time) (int64, error) {
	res, err := r.conn().ExecContext(ctx, purgeSentSQL, OutboxStatusSent, before)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func ValidateOutboxEvent(event OutboxEvent) error {
	if event.ID == "" {
		return errors.New("outbox id is required")
	}
	if event.Topic == "" {
		return errors.New("outbox topic is required")
	}
	if len(event.Payload) == 0 {
		return errors.New("outbox payload is required")
	}
	switch event.Status {
	case OutboxStatusPending, OutboxStatusSent, OutboxStatusFailed:
		return nil
	default:
		return fmt.Errorf("invalid outbox status: %s", event.Status)
	}
}
