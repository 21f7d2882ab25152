package ports

import (
	"context"
	"time"
)

// OrderEvent is the payload published to the message broker when an order
// changes state. Consumers downstream (notifications, analytics) read it from
// the orders topic.
type OrderEvent struct {
	OrderID    int64     `json:"order_id"`
	UserID     int64     `json:"user_id"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher publishes order lifecycle events after a successful commit.
//
// Publishing is best effort: a broker failure must not fail the business
// operation, so implementations log and swallow delivery errors. Callers
// invoke Publish only after the unit of work committed.
type EventPublisher interface {
	// Publish sends one order event to the broker.
	Publish(ctx context.Context, event OrderEvent)

	// Close releases the underlying broker connection.
	Close() error
}
