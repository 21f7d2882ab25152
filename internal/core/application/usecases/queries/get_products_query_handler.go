package queries

import (
	"context"
	"database/sql"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const productColumns = `
	id,
	name,
	description,
	price,
	stock,
	category,
	image_url
`

// GetProductsQueryHandler retrieves the product catalog from the database.
type GetProductsQueryHandler struct {
	db *gorm.DB
}

// NewGetProductsQueryHandler creates a handler for catalog queries.
// Requires a GORM database connection for query execution.
func NewGetProductsQueryHandler(db *gorm.DB) GetProductsQueryHandler {
	return GetProductsQueryHandler{db: db}
}

// Handle executes the query to retrieve catalog products, optionally filtered
// by category. Results are sorted by product id for consistent output.
func (h GetProductsQueryHandler) Handle(ctx context.Context, query GetProductsQuery) ([]ProductResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sqlText := `SELECT ` + productColumns + ` FROM products`
	args := make([]any, 0, 1)
	if query.Category() != "" {
		sqlText += ` WHERE category = ?`
		args = append(args, query.Category())
	}
	sqlText += ` ORDER BY id`

	rows, err := h.db.WithContext(ctx).Raw(sqlText, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanProducts(rows)
}

// scanProducts reads product rows into catalog projections.
func scanProducts(rows *sql.Rows) ([]ProductResponse, error) {
	products := make([]ProductResponse, 0)

	for rows.Next() {
		var (
			resp  ProductResponse
			price decimal.Decimal
		)

		if err := rows.Scan(
			&resp.ID,
			&resp.Name,
			&resp.Description,
			&price,
			&resp.Stock,
			&resp.Category,
			&resp.ImageURL,
		); err != nil {
			return nil, err
		}

		resp.Price = price.StringFixed(2)
		products = append(products, resp)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}
