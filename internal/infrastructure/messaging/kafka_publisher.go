package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/fchchen/quote-engine/internal/domain/port"
	"github.com/fchchen/quote-engine/pkg/events"
	"github.com/fchchen/quote-engine/pkg/kafka"
)

var _ port.EventPublisher = (*KafkaEventPublisher)(nil)

// KafkaEventPublisher implements port.EventPublisher by writing events to
// Kafka, keyed by aggregate ID so a quote's events stay ordered within a
// partition.
type KafkaEventPublisher struct {
	producer *kafka.Producer
	logger   *slog.Logger
}

// NewKafkaEventPublisher creates a publisher on top of the shared producer.
func NewKafkaEventPublisher(producer *kafka.Producer, logger *slog.Logger) *KafkaEventPublisher {
	return &KafkaEventPublisher{
		producer: producer,
		logger:   logger,
	}
}

// Publish serialises and sends domain events to the given topic.
func (p *KafkaEventPublisher) Publish(ctx context.Context, topic string, evts ...events.DomainEvent) error {
	if len(evts) == 0 {
		return nil
	}

	messages := make([]kafka.Message, 0, len(evts))
	for _, evt := range evts {
		payload, err := json.Marshal(evt)
		if err != nil {
			return fmt.Errorf("marshal event %s: %w", evt.EventType(), err)
		}

		messages = append(messages, kafka.Message{
			Key:   []byte(evt.AggregateID()),
			Value: payload,
			Headers: map[string]string{
				"event_type": evt.EventType(),
				"event_id":   evt.EventID().String(),
			},
		})

		p.logger.Debug("publishing domain event",
			slog.String("topic", topic),
			slog.String("event_type", evt.EventType()),
			slog.String("aggregate_id", evt.AggregateID()),
		)
	}

	return p.producer.Publish(ctx, topic, messages...)
}

// NoopPublisher discards events. It stands in for Kafka in local development
// and tests where no broker is running.
type NoopPublisher struct {
	logger *slog.Logger
}

// NewNoopPublisher creates a publisher that only logs.
func NewNoopPublisher(logger *slog.Logger) *NoopPublisher {
	return &NoopPublisher{logger: logger}
}

// Publish logs the events and drops them.
func (p *NoopPublisher) Publish(ctx context.Context, topic string, evts ...events.DomainEvent) error {
	for _, evt := range evts {
		p.logger.Info("discarding domain event (no broker configured)",
			slog.String("topic", topic),
			slog.String("event_type", evt.EventType()),
			slog.String("aggregate_id", evt.AggregateID()),
		)
	}
	return nil
}
