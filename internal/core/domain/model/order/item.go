package order

import (
	"fmt"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/errs"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through the NewItem or RestoreItem factory functions.
var ErrItemIsNotConstructed = errs.NewValueIsRequiredError(
	"Item must be created via NewItem or RestoreItem",
)

// Item is one line of an order: a product reference, a positive quantity, and
// the unit price snapshotted at checkout.
//
// The price is captured from the catalog at order time and never re-read from
// the live product, so historical totals and refunds are immune to later
// price changes. Items are immutable once created.
type Item struct {
	id        int64
	productID int64
	quantity  int
	price     kernel.Money

	isConstructed bool
}

// NewItem creates an order line with validation.
// The identifier is assigned by the repository on insert.
func NewItem(productID int64, quantity int, price kernel.Money) (*Item, error) {
	if productID <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"productID",
			fmt.Errorf("%d is not a positive identifier", productID),
		)
	}
	if quantity <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}
	if err := price.Validate(); err != nil {
		return nil, err
	}

	return &Item{
		productID:     productID,
		quantity:      quantity,
		price:         price,
		isConstructed: true,
	}, nil
}

// RestoreItem reconstructs an order line from persistence.
func RestoreItem(id, productID int64, quantity int, price kernel.Money) (*Item, error) {
	item, err := NewItem(productID, quantity, price)
	if err != nil {
		return nil, err
	}
	item.id = id
	return item, nil
}

// AssignID records the database-assigned identifier after insert.
// Returns an error if an identifier is already assigned.
func (i *Item) AssignID(id int64) error {
	if i.id != 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"id",
			fmt.Errorf("order item already has identifier %d", i.id),
		)
	}
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"id",
			fmt.Errorf("%d is not a positive identifier", id),
		)
	}
	i.id = id
	return nil
}

// Validate ensures the Item instance was properly constructed.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ID returns the item's identifier. Zero until persisted.
func (i *Item) ID() int64 {
	return i.id
}

// ProductID returns the referenced product's identifier.
func (i *Item) ProductID() int64 {
	return i.productID
}

// Quantity returns the ordered quantity.
func (i *Item) Quantity() int {
	return i.quantity
}

// Price returns the unit price snapshotted at checkout.
func (i *Item) Price() kernel.Money {
	return i.price
}

// Subtotal returns price multiplied by quantity.
func (i *Item) Subtotal() kernel.Money {
	return i.price.MulInt(i.quantity)
}
