package queries

import (
	"errors"
	"fmt"

	"shop/internal/core/domain/model/identity"
	"shop/internal/pkg/guard"
)

var ErrGetReturnQueryIsNotConstructed = errors.New(
	"GetReturnQuery must be created via NewGetReturnQuery constructor",
)

// GetReturnQuery retrieves a single return request with its lines.
// Customers can only read their own returns; admins can read any.
type GetReturnQuery struct {
	actor    identity.Actor
	returnID int64

	guard guard.ConstructorGuard
}

// NewGetReturnQuery creates a query for one return.
// Validates the actor and that the return identifier is positive.
func NewGetReturnQuery(actor identity.Actor, returnID int64) (GetReturnQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetReturnQuery{}, err
	}
	if returnID <= 0 {
		return GetReturnQuery{}, fmt.Errorf("return id %d must be greater than 0", returnID)
	}

	return GetReturnQuery{
		actor:    actor,
		returnID: returnID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetReturnQueryIsNotConstructed if validation fails.
func (q GetReturnQuery) Validate() error {
	return q.guard.Validate(ErrGetReturnQueryIsNotConstructed)
}

// Actor returns the caller reading the return.
func (q GetReturnQuery) Actor() identity.Actor {
	return q.actor
}

// ReturnID returns the identifier of the requested return.
func (q GetReturnQuery) ReturnID() int64 {
	return q.returnID
}
