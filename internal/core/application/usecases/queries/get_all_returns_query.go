package queries

import (
	"errors"

	"shop/internal/core/domain/model/identity"
	"shop/internal/pkg/guard"
)

var ErrGetAllReturnsQueryIsNotConstructed = errors.New(
	"GetAllReturnsQuery must be created via NewGetAllReturnsQuery constructor",
)

// GetAllReturnsQuery retrieves every return request in the system, newest
// first. Admin only: the back office uses it to work the refund queue.
type GetAllReturnsQuery struct {
	actor identity.Actor

	guard guard.ConstructorGuard
}

// NewGetAllReturnsQuery creates a query for the full return list.
// Validates the actor; the admin gate is applied by the handler.
func NewGetAllReturnsQuery(actor identity.Actor) (GetAllReturnsQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetAllReturnsQuery{}, err
	}

	return GetAllReturnsQuery{
		actor: actor,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAllReturnsQueryIsNotConstructed if validation fails.
func (q GetAllReturnsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllReturnsQueryIsNotConstructed)
}

// Actor returns the caller reading the return list.
func (q GetAllReturnsQuery) Actor() identity.Actor {
	return q.actor
}
