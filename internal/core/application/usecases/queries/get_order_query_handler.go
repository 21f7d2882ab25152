package queries

import (
	"context"

	"shop/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves a single order projection.
//
// Ownership is enforced in the query itself: a customer asking for someone
// else's order gets ObjectNotFoundError, the same as for a missing id.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order queries.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query to retrieve one order with its items and trail.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	sql := `SELECT ` + orderColumns + ` FROM orders WHERE id = ?`
	args := []any{query.OrderID()}
	if !query.Actor().IsAdmin() {
		sql += ` AND user_id = ?`
		args = append(args, query.Actor().UserID())
	}

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return OrderResponse{}, err
	}
	defer rows.Close()

	orders, err := scanOrders(rows)
	if err != nil {
		return OrderResponse{}, err
	}
	if len(orders) == 0 {
		return OrderResponse{}, errs.NewObjectNotFoundError("orderID", query.OrderID())
	}

	if err = attachOrderDetails(ctx, h.db, orders); err != nil {
		return OrderResponse{}, err
	}

	return orders[0], nil
}
