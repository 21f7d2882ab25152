package queries

import (
	"context"
	"database/sql"

	"shop/internal/core/domain/model/returns"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const returnColumns = `
	id,
	order_id,
	user_id,
	status,
	reason,
	comments,
	refund_amount,
	created_at,
	updated_at
`

// scanReturns reads return rows into projections, without lines.
func scanReturns(rows *sql.Rows) ([]ReturnResponse, error) {
	rets := make([]ReturnResponse, 0)

	for rows.Next() {
		var (
			resp   ReturnResponse
			status int
			refund decimal.Decimal
		)

		if err := rows.Scan(
			&resp.ID,
			&resp.OrderID,
			&resp.UserID,
			&status,
			&resp.Reason,
			&resp.Comments,
			&refund,
			&resp.CreatedAt,
			&resp.UpdatedAt,
		); err != nil {
			return nil, err
		}

		resp.Status = returns.Status(status).String()
		resp.RefundAmount = refund.StringFixed(2)

		rets = append(rets, resp)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return rets, nil
}

// attachReturnDetails loads the lines of the given returns and attaches them
// in place, resolving product names through the referenced order items.
func attachReturnDetails(ctx context.Context, db *gorm.DB, rets []ReturnResponse) error {
	if len(rets) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(rets))
	for _, r := range rets {
		ids = append(ids, r.ID)
	}

	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			ri.id,
			ri.return_id,
			ri.order_item_id,
			p.name,
			ri.quantity,
			ri.reason,
			ri.condition
		FROM return_items ri
		JOIN order_items oi ON oi.id = ri.order_item_id
		JOIN products p ON p.id = oi.product_id
		WHERE ri.return_id IN ?
		ORDER BY ri.id
	`, ids).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	items := make(map[int64][]ReturnItemResponse)
	for rows.Next() {
		var (
			item      ReturnItemResponse
			returnID  int64
			condition int
		)

		if err = rows.Scan(
			&item.ID,
			&returnID,
			&item.OrderItemID,
			&item.ProductName,
			&item.Quantity,
			&item.Reason,
			&condition,
		); err != nil {
			return err
		}

		item.Condition = returns.ItemCondition(condition).String()
		items[returnID] = append(items[returnID], item)
	}

	if err = rows.Err(); err != nil {
		return err
	}

	for i := range rets {
		rets[i].Items = items[rets[i].ID]
		if rets[i].Items == nil {
			rets[i].Items = make([]ReturnItemResponse, 0)
		}
	}

	return nil
}
