package queries

import (
	"errors"

	"shop/internal/pkg/guard"
)

var ErrGetProductsQueryIsNotConstructed = errors.New(
	"GetProductsQuery must be created via NewGetProductsQuery constructor",
)

// GetProductsQuery retrieves the product catalog for the storefront, with an
// optional category filter. No authorization applies: the catalog is public.
type GetProductsQuery struct {
	category string

	guard guard.ConstructorGuard
}

// NewGetProductsQuery creates a catalog query.
// An empty category means no filter.
func NewGetProductsQuery(category string) GetProductsQuery {
	return GetProductsQuery{
		category: category,
		guard:    guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetProductsQueryIsNotConstructed if validation fails.
func (q GetProductsQuery) Validate() error {
	return q.guard.Validate(ErrGetProductsQueryIsNotConstructed)
}

// Category returns the optional category filter.
func (q GetProductsQuery) Category() string {
	return q.category
}
