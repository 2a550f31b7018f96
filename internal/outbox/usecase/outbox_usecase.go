// Package usecase implements the outbox business logic and orchestrates outbox domain operations.
package usecase

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/allisson/userauth/internal/database"
	"github.com/allisson/userauth/internal/outbox/domain"
)

// Config holds outbox worker settings
type Config struct {
	Interval      time.Duration
	BatchSize     int
	MaxRetries    int
	RetryInterval time.Duration
}

// OutboxEventRepository defines outbox event repository operations
type OutboxEventRepository interface {
	Create(ctx context.Context, event *domain.OutboxEvent) error
	GetPendingEvents(ctx context.Context, limit int, retryBackoff time.Duration) ([]*domain.OutboxEvent, error)
	Update(ctx context.Context, event *domain.OutboxEvent) error
}

// EventProcessor delivers outbox events downstream. The broker client, if
// any, lives behind this interface.
type EventProcessor interface {
	Process(ctx context.Context, event *domain.OutboxEvent) error
}

// UseCase defines the interface for outbox use cases
type UseCase interface {
	Start(ctx context.Context) error
	ProcessEvents(ctx context.Context) error
}

// OutboxUseCase polls the outbox table and hands pending events to the
// configured EventProcessor, tracking retries per event.
type OutboxUseCase struct {
	config         Config
	txManager      database.TxManager
	outboxRepo     OutboxEventRepository
	eventProcessor EventProcessor
	logger         *slog.Logger
}

// NewOutboxUseCase creates a new OutboxUseCase. A nil logger disables logging.
func NewOutboxUseCase(
	config Config,
	txManager database.TxManager,
	outboxRepo OutboxEventRepository,
	eventProcessor EventProcessor,
	logger *slog.Logger,
) *OutboxUseCase {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &OutboxUseCase{
		config:         config,
		txManager:      txManager,
		outboxRepo:     outboxRepo,
		eventProcessor: eventProcessor,
		logger:         logger,
	}
}

// Start runs the polling loop until ctx is cancelled.
func (uc *OutboxUseCase) Start(ctx context.Context) error {
	uc.logger.Info("starting outbox event processor",
		slog.Duration("interval", uc.config.Interval),
		slog.Int("batch_size", uc.config.BatchSize),
	)

	ticker := time.NewTicker(uc.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			uc.logger.Info("stopping outbox event processor")
			return ctx.Err()
		case <-ticker.C:
			if err := uc.ProcessEvents(ctx); err != nil {
				uc.logger.Error("failed to process events", slog.Any("error", err))
			}
		}
	}
}

// ProcessEvents claims a batch of pending events inside a transaction and
// processes each one. A processing failure marks the event for retry (or
// failed past MaxRetries) without aborting the batch; repository errors do
// abort it. Retried events wait out RetryInterval before becoming eligible
// again.
func (uc *OutboxUseCase) ProcessEvents(ctx context.Context) error {
	return uc.txManager.WithTx(ctx, func(ctx context.Context) error {
		events, err := uc.outboxRepo.GetPendingEvents(ctx, uc.config.BatchSize, uc.config.RetryInterval)
		if err != nil {
			return err
		}

		if len(events) == 0 {
			return nil
		}

		uc.logger.Info("processing events", slog.Int("count", len(events)))

		for _, event := range events {
			uc.logger.Info("processing event",
				slog.String("event_id", event.ID.String()),
				slog.String("event_type", event.EventType),
			)

			if procErr := uc.eventProcessor.Process(ctx, event); procErr != nil {
				uc.logger.Error("failed to process event",
					slog.String("event_id", event.ID.String()),
					slog.String("event_type", event.EventType),
					slog.Any("error", procErr),
				)

				if err := uc.outboxRepo.Update(ctx, markRetry(event, procErr, uc.config.MaxRetries)); err != nil {
					return err
				}
				continue
			}

			if err := uc.outboxRepo.Update(ctx, markProcessed(event)); err != nil {
				return err
			}
		}

		return nil
	})
}

func markRetry(event *domain.OutboxEvent, procErr error, maxRetries int) *domain.OutboxEvent {
	event.Retries++
	errorMsg := procErr.Error()
	event.LastError = &errorMsg

	if event.Retries >= maxRetries {
		event.Status = domain.OutboxEventStatusFailed
	}

	return event
}

func markProcessed(event *domain.OutboxEvent) *domain.OutboxEvent {
	now := time.Now()
	event.Status = domain.OutboxEventStatusProcessed
	event.ProcessedAt = &now
	return event
}

// DefaultEventProcessor logs event deliveries. Deployments that feed a
// broker swap in their own EventProcessor.
type DefaultEventProcessor struct {
	logger *slog.Logger
}

// NewDefaultEventProcessor creates a new DefaultEventProcessor. A nil logger
// disables logging.
func NewDefaultEventProcessor(logger *slog.Logger) *DefaultEventProcessor {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &DefaultEventProcessor{logger: logger}
}

// Process validates the payload and logs the delivery.
func (p *DefaultEventProcessor) Process(ctx context.Context, event *domain.OutboxEvent) error {
	var payload map[string]interface{}
	if err := json.Unmarshal([]byte(event.Payload), &payload); err != nil {
		return err
	}

	switch event.EventType {
	case "user.created":
		p.logger.Info("user created event", slog.Any("payload", payload))
	default:
		p.logger.Warn("unknown event type", slog.String("event_type", event.EventType))
	}

	return nil
}
