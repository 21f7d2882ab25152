package queries

import (
	"errors"

	"shop/internal/core/domain/model/identity"
	"shop/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// GetOrdersQuery retrieves the caller's own orders, newest first, with items
// and delivery trails.
//
// Example:
//
//	query, _ := NewGetOrdersQuery(actor)
//	handler := NewGetOrdersQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get orders: %w", err)
//	}
type GetOrdersQuery struct {
	actor identity.Actor

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a query for the caller's order history.
func NewGetOrdersQuery(actor identity.Actor) (GetOrdersQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetOrdersQuery{}, err
	}

	return GetOrdersQuery{
		actor: actor,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrdersQueryIsNotConstructed if validation fails.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// Actor returns the caller whose orders are listed.
func (q GetOrdersQuery) Actor() identity.Actor {
	return q.actor
}
