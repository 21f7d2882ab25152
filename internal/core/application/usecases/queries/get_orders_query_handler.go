package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetOrdersQueryHandler retrieves a customer's order history from the
// database, newest first, with line items and delivery trails attached.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for order history queries.
// Requires a GORM database connection for query execution.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve the caller's orders.
// Results are sorted newest first; items and delivery trails come back oldest
// first within each order.
func (h GetOrdersQueryHandler) Handle(ctx context.Context, query GetOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM orders
		WHERE user_id = ?
		ORDER BY created_at DESC, id DESC
	`, query.Actor().UserID()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders, err := scanOrders(rows)
	if err != nil {
		return nil, err
	}

	if err = attachOrderDetails(ctx, h.db, orders); err != nil {
		return nil, err
	}

	return orders, nil
}
