package queries

import (
	"context"

	"shop/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetProductQueryHandler retrieves a single catalog product projection.
type GetProductQueryHandler struct {
	db *gorm.DB
}

// NewGetProductQueryHandler creates a handler for single-product queries.
// Requires a GORM database connection for query execution.
func NewGetProductQueryHandler(db *gorm.DB) GetProductQueryHandler {
	return GetProductQueryHandler{db: db}
}

// Handle executes the query to retrieve one catalog product.
// Returns ObjectNotFoundError when the id is unknown.
func (h GetProductQueryHandler) Handle(ctx context.Context, query GetProductQuery) (ProductResponse, error) {
	if err := query.Validate(); err != nil {
		return ProductResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+productColumns+`
		FROM products
		WHERE id = ?
	`, query.ProductID()).Rows()
	if err != nil {
		return ProductResponse{}, err
	}
	defer rows.Close()

	products, err := scanProducts(rows)
	if err != nil {
		return ProductResponse{}, err
	}
	if len(products) == 0 {
		return ProductResponse{}, errs.NewObjectNotFoundError("productID", query.ProductID())
	}

	return products[0], nil
}
