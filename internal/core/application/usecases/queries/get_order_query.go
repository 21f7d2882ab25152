package queries

import (
	"errors"
	"fmt"

	"shop/internal/core/domain/model/identity"
	"shop/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves a single order with its items and delivery trail.
// Customers can only read their own orders; admins can read any.
type GetOrderQuery struct {
	actor   identity.Actor
	orderID int64

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for one order.
// Validates the actor and that the order identifier is positive.
func NewGetOrderQuery(actor identity.Actor, orderID int64) (GetOrderQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetOrderQuery{}, err
	}
	if orderID <= 0 {
		return GetOrderQuery{}, fmt.Errorf("order id %d must be greater than 0", orderID)
	}

	return GetOrderQuery{
		actor:   actor,
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderQueryIsNotConstructed if validation fails.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// Actor returns the caller reading the order.
func (q GetOrderQuery) Actor() identity.Actor {
	return q.actor
}

// OrderID returns the identifier of the requested order.
func (q GetOrderQuery) OrderID() int64 {
	return q.orderID
}
