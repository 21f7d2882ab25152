package ports

import (
	"context"

	"shop/internal/core/domain/model/returns"
)

// ReturnRepository defines the persistence contract for return aggregates.
type ReturnRepository interface {
	// Add persists a new return aggregate to storage, including its lines,
	// and assigns the database identifier to the aggregate.
	Add(ctx context.Context, aggregate *returns.Return) error

	// Update persists changes to an existing return aggregate.
	// Lines are immutable; only the root row changes.
	Update(ctx context.Context, aggregate *returns.Return) error

	// Get retrieves a return aggregate by its identifier with lines loaded.
	// Returns ObjectNotFoundError when missing.
	Get(ctx context.Context, id int64) (*returns.Return, error)
}
