package app

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"go-erp/internal/config"
	"go-erp/internal/messaging/kafka"
	"go-erp/internal/messaging/kafka/producer"
	"go-erp/internal/shared/connection"

	"go.uber.org/zap"
)

func RunWorker(cfg *config.Config) error {
	logger := zap.L().Named("app.worker")

	if cfg.Kafka.Broker == "" {
		return errors.New("KAFKA_BROKER is required")
	}

	_, sqlDB, err := connectDatabase(cfg)
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	kafkaWriter, err := connection.ConnectKafkaWithRetry(cfg.Kafka.Broker, 5)
	if err != nil {
		return err
	}
	defer kafkaWriter.Close()

	outboxRepo := kafka.NewOutboxRepository(sqlDB)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	producer.ProcessOutboxEvents(ctx, outboxRepo, kafkaWriter, logger, producer.WorkerOptions{
		PollInterval: cfg.Kafka.OutboxPollInterval,
		Retention:    cfg.Kafka.OutboxRetention,
	})

	logger.Info("worker shutting down")
	return nil
}
