// Package ports defines repository interfaces for the shop domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"shop/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for the product catalog
// and its stock ledger.
//
// ReserveAll and ReleaseAll are the only stock mutations in the system. They
// run inside the caller's unit-of-work transaction, so a reservation that
// fails part way is rolled back as a whole.
type ProductRepository interface {
	// Add persists a new product and assigns its database identifier.
	Add(ctx context.Context, aggregate *product.Product) error

	// GetByID retrieves a product by its identifier.
	// Returns ObjectNotFoundError when missing.
	GetByID(ctx context.Context, id int64) (*product.Product, error)

	// GetByIDs retrieves the products with the given identifiers.
	// Returns ObjectNotFoundError naming the first missing identifier.
	GetByIDs(ctx context.Context, ids []int64) ([]*product.Product, error)

	// ReserveAll decrements stock for every line, all or nothing.
	//
	// Lines are processed in ascending product-id order to keep row lock
	// acquisition deterministic across concurrent reservations. Each line is
	// a conditional decrement that only succeeds when enough stock remains.
	// Returns InsufficientStockError naming the first under-stocked product,
	// or ObjectNotFoundError for an unknown product. The caller's transaction
	// makes the batch atomic.
	ReserveAll(ctx context.Context, lines []product.Reservation) error

	// ReleaseAll returns previously reserved stock for every line.
	// Does not fail on business grounds.
	ReleaseAll(ctx context.Context, lines []product.Reservation) error
}
