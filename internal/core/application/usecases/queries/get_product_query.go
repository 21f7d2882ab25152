package queries

import (
	"errors"
	"fmt"

	"shop/internal/pkg/guard"
)

var ErrGetProductQueryIsNotConstructed = errors.New(
	"GetProductQuery must be created via NewGetProductQuery constructor",
)

// GetProductQuery retrieves a single catalog product.
type GetProductQuery struct {
	productID int64

	guard guard.ConstructorGuard
}

// NewGetProductQuery creates a query for one catalog product.
// Validates that the product identifier is positive.
func NewGetProductQuery(productID int64) (GetProductQuery, error) {
	if productID <= 0 {
		return GetProductQuery{}, fmt.Errorf("product id %d must be greater than 0", productID)
	}

	return GetProductQuery{
		productID: productID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetProductQueryIsNotConstructed if validation fails.
func (q GetProductQuery) Validate() error {
	return q.guard.Validate(ErrGetProductQueryIsNotConstructed)
}

// ProductID returns the identifier of the requested product.
func (q GetProductQuery) ProductID() int64 {
	return q.productID
}
