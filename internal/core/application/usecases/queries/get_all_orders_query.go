package queries

import (
	"errors"

	"shop/internal/core/domain/model/identity"
	"shop/internal/pkg/guard"
)

var ErrGetAllOrdersQueryIsNotConstructed = errors.New(
	"GetAllOrdersQuery must be created via NewGetAllOrdersQuery constructor",
)

// GetAllOrdersQuery retrieves every order in the system, newest first.
// Admin only: the back office uses it to monitor fulfilment.
type GetAllOrdersQuery struct {
	actor identity.Actor

	guard guard.ConstructorGuard
}

// NewGetAllOrdersQuery creates a query for the full order list.
// Validates the actor; the admin gate is applied by the handler.
func NewGetAllOrdersQuery(actor identity.Actor) (GetAllOrdersQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetAllOrdersQuery{}, err
	}

	return GetAllOrdersQuery{
		actor: actor,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAllOrdersQueryIsNotConstructed if validation fails.
func (q GetAllOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllOrdersQueryIsNotConstructed)
}

// Actor returns the caller reading the order list.
func (q GetAllOrdersQuery) Actor() identity.Actor {
	return q.actor
}
