package queries

import (
	"errors"

	"shop/internal/core/domain/model/identity"
	"shop/internal/pkg/guard"
)

var ErrGetReturnsQueryIsNotConstructed = errors.New(
	"GetReturnsQuery must be created via NewGetReturnsQuery constructor",
)

// GetReturnsQuery retrieves the caller's own return requests, newest first.
type GetReturnsQuery struct {
	actor identity.Actor

	guard guard.ConstructorGuard
}

// NewGetReturnsQuery creates a query for the caller's return history.
func NewGetReturnsQuery(actor identity.Actor) (GetReturnsQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetReturnsQuery{}, err
	}

	return GetReturnsQuery{
		actor: actor,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetReturnsQueryIsNotConstructed if validation fails.
func (q GetReturnsQuery) Validate() error {
	return q.guard.Validate(ErrGetReturnsQueryIsNotConstructed)
}

// Actor returns the caller whose returns are listed.
func (q GetReturnsQuery) Actor() identity.Actor {
	return q.actor
}
