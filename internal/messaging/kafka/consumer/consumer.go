package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go-erp/internal/events"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// RosterInvalidator drops cached rosters. employee.Service satisfies it.
type RosterInvalidator interface {
	InvalidateRoster(ctx context.Context, companyID string) error
}

// MessageReader is the part of *kafkago.Reader the consumer needs.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

// errPoison marks messages that can never be processed; they are committed and skipped.
var errPoison = errors.New("undecodable employee lifecycle event")

func ConsumeEmployeeLifecycle(
	ctx context.Context,
	reader MessageReader,
	roster RosterInvalidator,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.employee_lifecycle")
	log.Info("employee lifecycle consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("employee lifecycle consumer stopped")
				return
			}
			log.Error("fetch employee lifecycle message failed", zap.Error(err))
			continue
		}

		if err := HandleEmployeeLifecycle(ctx, msg, roster); err != nil {
			if !errors.Is(err, errPoison) {
				// left uncommitted so the group redelivers it
				log.Error("handle employee lifecycle event failed", zap.Int64("offset", msg.Offset), zap.Error(err))
				continue
			}
			log.Warn("skipping employee lifecycle message", zap.Int64("offset", msg.Offset), zap.Error(err))
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit employee lifecycle message failed", zap.Error(err))
		}
	}
}

// HandleEmployeeLifecycle invalidates the roster cache of the event's company.
func HandleEmployeeLifecycle(ctx context.Context, msg kafkago.Message, roster RosterInvalidator) error {
	var event events.EmployeeLifecycleEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		return fmt.Errorf("%w: %v", errPoison, err)
	}
	if event.CompanyID == "" {
		return fmt.Errorf("%w: company_id is missing", errPoison)
	}

	switch event.EventType {
	case events.EmployeeCreated, events.EmployeeUpdated, events.EmployeeDeleted:
		return roster.InvalidateRoster(ctx, event.CompanyID)
	default:
		return nil
	}
}
