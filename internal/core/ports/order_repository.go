package ports

import (
	"context"

	"shop/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying order entities
// with their line items and delivery trail.
type OrderRepository interface {
	// Add persists a new order aggregate to storage, including its items and
	// delivery trail, and assigns the database identifier to the aggregate.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate. Delivery trail
	// records are append-only: new records are inserted, existing records are
	// never touched.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its identifier with items and
	// delivery trail loaded. Returns ObjectNotFoundError when missing.
	Get(ctx context.Context, id int64) (*order.Order, error)

	// GetAllInStatus retrieves all orders currently in the given status.
	// Used by the shipment progress job to find orders on the road.
	GetAllInStatus(ctx context.Context, status order.Status) ([]*order.Order, error)
}
