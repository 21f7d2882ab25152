package queries

import (
	"context"
	"database/sql"

	"shop/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const orderColumns = `
	id,
	user_id,
	status,
	created_at,
	updated_at,
	shipping_address,
	delivery_method,
	total_amount,
	tracking_number,
	current_location,
	estimated_delivery
`

// scanOrders reads order rows into projections, without items or trail.
func scanOrders(rows *sql.Rows) ([]OrderResponse, error) {
	orders := make([]OrderResponse, 0)

	for rows.Next() {
		var (
			resp      OrderResponse
			status    int
			total     decimal.Decimal
			estimated sql.NullTime
		)

		if err := rows.Scan(
			&resp.ID,
			&resp.UserID,
			&status,
			&resp.CreatedAt,
			&resp.UpdatedAt,
			&resp.ShippingAddress,
			&resp.DeliveryMethod,
			&total,
			&resp.TrackingNumber,
			&resp.CurrentLocation,
			&estimated,
		); err != nil {
			return nil, err
		}

		resp.Status = order.Status(status).String()
		resp.StatusDisplay = order.Status(status).Display()
		resp.TotalAmount = total.StringFixed(2)
		if estimated.Valid {
			t := estimated.Time
			resp.EstimatedDelivery = &t
		}

		orders = append(orders, resp)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

// attachOrderDetails loads items and delivery trails for the given orders and
// attaches them in place.
func attachOrderDetails(ctx context.Context, db *gorm.DB, orders []OrderResponse) error {
	if len(orders) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.ID)
	}

	items, err := loadOrderItems(ctx, db, ids)
	if err != nil {
		return err
	}

	updates, err := loadDeliveryUpdates(ctx, db, ids)
	if err != nil {
		return err
	}

	for i := range orders {
		orders[i].Items = items[orders[i].ID]
		if orders[i].Items == nil {
			orders[i].Items = make([]OrderItemResponse, 0)
		}
		orders[i].DeliveryUpdates = updates[orders[i].ID]
		if orders[i].DeliveryUpdates == nil {
			orders[i].DeliveryUpdates = make([]DeliveryUpdateResponse, 0)
		}
	}

	return nil
}

// loadOrderItems returns the projected lines of the given orders, keyed by
// order id, with product names joined in from the catalog.
func loadOrderItems(ctx context.Context, db *gorm.DB, orderIDs []int64) (map[int64][]OrderItemResponse, error) {
	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			oi.id,
			oi.order_id,
			oi.product_id,
			p.name,
			oi.quantity,
			oi.price
		FROM order_items oi
		JOIN products p ON p.id = oi.product_id
		WHERE oi.order_id IN ?
		ORDER BY oi.id
	`, orderIDs).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make(map[int64][]OrderItemResponse)
	for rows.Next() {
		var (
			item    OrderItemResponse
			orderID int64
			price   decimal.Decimal
		)

		if err = rows.Scan(
			&item.ID,
			&orderID,
			&item.ProductID,
			&item.ProductName,
			&item.Quantity,
			&price,
		); err != nil {
			return nil, err
		}

		item.Price = price.StringFixed(2)
		item.Subtotal = price.Mul(decimal.NewFromInt(int64(item.Quantity))).StringFixed(2)
		items[orderID] = append(items[orderID], item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

// loadDeliveryUpdates returns the delivery trails of the given orders, keyed
// by order id, oldest first.
func loadDeliveryUpdates(ctx context.Context, db *gorm.DB, orderIDs []int64) (map[int64][]DeliveryUpdateResponse, error) {
	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			order_id,
			status,
			location,
			timestamp,
			description
		FROM delivery_updates
		WHERE order_id IN ?
		ORDER BY timestamp, id
	`, orderIDs).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	updates := make(map[int64][]DeliveryUpdateResponse)
	for rows.Next() {
		var (
			update  DeliveryUpdateResponse
			orderID int64
		)

		if err = rows.Scan(
			&orderID,
			&update.Status,
			&update.Location,
			&update.Timestamp,
			&update.Description,
		); err != nil {
			return nil, err
		}

		updates[orderID] = append(updates[orderID], update)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return updates, nil
}
