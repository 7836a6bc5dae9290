package app

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"go-erp/internal/config"
	"go-erp/internal/employee"
	"go-erp/internal/events"
	"go-erp/internal/messaging/kafka/consumer"
	"go-erp/internal/shared/connection"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const rosterConsumerGroup = "go-erp-payroll-roster"

// RunConsumer keeps the roster cache in step with the HR service. It only needs redis.
func RunConsumer(cfg *config.Config) error {
	logger := zap.L().Named("app.consumer")

	if cfg.Kafka.Broker == "" {
		return errors.New("KAFKA_BROKER is required")
	}

	rdb, err := connection.ConnectRedisWithRetry(cfg.Redis.Addr, cfg.Redis.MaxRetries)
	if err != nil {
		return err
	}
	defer rdb.Close()

	// the repository is never reached: invalidation only touches redis
	employeeService := employee.NewService(nil, rdb, logger)

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{cfg.Kafka.Broker},
		Topic:          events.EmployeeLifecycleTopic,
		GroupID:        rosterConsumerGroup,
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer reader.Close()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	consumer.ConsumeEmployeeLifecycle(ctx, reader, employeeService, logger)

	logger.Info("consumer shutting down")
	return nil
}
