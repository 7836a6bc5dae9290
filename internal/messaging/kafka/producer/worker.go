package producer

import (
	"context"
	"time"

	"go-erp/internal/messaging/kafka"

	"go.uber.org/zap"
)

const (
	defaultBatchSize     = 50
	defaultPurgeInterval = time.Hour
)

type WorkerOptions struct {
	PollInterval time.Duration
	BatchSize    int
	// Retention keeps sent rows this long before they are purged. Zero disables purging.
	Retention     time.Duration
	PurgeInterval time.Duration
}

// ProcessOutboxEvents polls the outbox until ctx is cancelled.
func ProcessOutboxEvents(
	ctx context.Context,
	repo kafka.OutboxRepository,
	writer MessageWriter,
	logger *zap.Logger,
	opts WorkerOptions,
) {
	if opts.PollInterval <= 0 {
		opts.PollInterval = 3 * time.Second
	}
	if opts.BatchSize <= 0 {
		opts.BatchSize = defaultBatchSize
	}
	if opts.PurgeInterval <= 0 {
		opts.PurgeInterval = defaultPurgeInterval
	}

	log := logger.Named("kafka.producer.worker")
	ticker := time.NewTicker(opts.PollInterval)
	defer ticker.Stop()
	purge := time.NewTicker(opts.PurgeInterval)
	defer purge.Stop()

	log.Info("outbox worker started",
		zap.Duration("poll_interval", opts.PollInterval),
		zap.Int("batch_size", opts.BatchSize),
	)

	for {
		select {
		case <-ctx.Done():
			log.Info("outbox worker stopped")
			return
		case <-ticker.C:
			if _, err := processPendingEvents(ctx, repo, writer, log, opts.BatchSize); err != nil {
				log.Error("process outbox events failed", zap.Error(err))
			}
		case <-purge.C:
			purgeSentEvents(ctx, repo, log, opts.Retention, time.Now())
		}
	}
}

// processPendingEvents publishes one batch and reports how many events were sent.
// Invalid or unpublishable events are marked failed and retried by a later batch.
func processPendingEvents(
	ctx context.Context,
	repo kafka.OutboxRepository,
	writer MessageWriter,
	logger *zap.Logger,
	batchSize int,
) (int, error) {
	events, err := repo.ListPending(ctx, batchSize)
	if err != nil {
		return 0, err
	}
	if len(events) == 0 {
		return 0, nil
	}

	logger.Debug("processing pending outbox events", zap.Int("count", len(events)))

	sent := 0
	for _, event := range events {
		fields := []zap.Field{
			zap.String("outbox_id", event.ID),
			zap.String("event_type", event.EventType),
			zap.String("topic", event.Topic),
		}

		if err := kafka.ValidateOutboxEvent(event); err != nil {
			logger.Error("invalid outbox event", append(fields, zap.Error(err))...)
			_ = repo.MarkFailed(ctx, event.ID, err.Error())
			continue
		}

		if err := publishEvent(ctx, writer, event); err != nil {
			logger.Error("publish outbox event failed", append(fields, zap.Int("retry_count", event.RetryCount), zap.Error(err))...)
			_ = repo.MarkFailed(ctx, event.ID, err.Error())
			continue
		}

		if err := repo.MarkSent(ctx, event.ID); err != nil {
			logger.Error("mark outbox sent failed", append(fields, zap.Error(err))...)
			continue
		}

		sent++
		logger.Info("outbox event sent", fields...)
	}

	return sent, nil
}

func purgeSentEvents(ctx context.Context, repo kafka.OutboxRepository, logger *zap.Logger, retention time.Duration, now time.Time) {
	if retention <= 0 {
		return
	}
	n, err := repo.PurgeSent(ctx, now.Add(-retention))
	if err != nil {
		logger.Warn("purge sent outbox events failed", zap.Error(err))
		return
	}
	if n > 0 {
		logger.Info("sent outbox events purged", zap.Int64("count", n))
	}
}
