// Package kafka publishes order lifecycle events to a Kafka topic.
package kafka

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"

	"shop/internal/core/ports"

	"github.com/segmentio/kafka-go"
)

// OrderEventPublisher publishes order events to Kafka.
//
// Publishing is best effort: delivery failures are logged and swallowed so a
// broker outage never fails the business operation that produced the event.
type OrderEventPublisher struct {
	writer *kafka.Writer
	logger *slog.Logger
}

// NewOrderEventPublisher creates a publisher writing to the given topic.
func NewOrderEventPublisher(brokers []string, topic string, logger *slog.Logger) *OrderEventPublisher {
	writer := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
	}

	return &OrderEventPublisher{
		writer: writer,
		logger: logger,
	}
}

// Publish sends one order event, keyed by order id so events for the same
// order stay ordered within a partition.
func (p *OrderEventPublisher) Publish(ctx context.Context, event ports.OrderEvent) {
	payload, err := json.Marshal(event)
	if err != nil {
		p.logger.Error("marshal order event",
			"order_id", event.OrderID,
			"error", err,
		)
		return
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.FormatInt(event.OrderID, 10)),
		Value: payload,
	})
	if err != nil {
		p.logger.Error("publish order event",
			"order_id", event.OrderID,
			"status", event.Status,
			"error", err,
		)
		return
	}

	p.logger.Debug("published order event",
		"order_id", event.OrderID,
		"status", event.Status,
	)
}

// Close releases the underlying Kafka connection.
func (p *OrderEventPublisher) Close() error {
	return p.writer.Close()
}

// NoopEventPublisher discards all events. Used when no broker is configured.
type NoopEventPublisher struct{}

// NewNoopEventPublisher creates a publisher that drops every event.
func NewNoopEventPublisher() NoopEventPublisher {
	return NoopEventPublisher{}
}

// Publish discards the event.
func (NoopEventPublisher) Publish(context.Context, ports.OrderEvent) {}

// Close is a no-op.
func (NoopEventPublisher) Close() error {
	return nil
}
