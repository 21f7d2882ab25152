package returns

import (
	"fmt"

	"shop/internal/pkg/errs"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through the NewItem or RestoreItem factory functions.
var ErrItemIsNotConstructed = errs.NewValueIsRequiredError(
	"Item must be created via NewItem or RestoreItem",
)

// Item is one line of a return request. It references a line of the original
// order without owning it; the snapshot price used for the refund stays on the
// order side.
type Item struct {
	id          int64
	orderItemID int64
	quantity    int
	reason      string
	condition   ItemCondition

	isConstructed bool
}

// NewItem creates a return line with validation.
//
// orderedQuantity is the quantity of the referenced order line; the returned
// quantity may not exceed it. The check runs per request: earlier returns
// against the same line are not summed. The identifier is assigned by the
// repository on insert.
func NewItem(orderItemID int64, quantity, orderedQuantity int, reason string, condition ItemCondition) (*Item, error) {
	if orderItemID <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"orderItemID",
			fmt.Errorf("%d is not a positive identifier", orderItemID),
		)
	}
	if quantity <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}
	if quantity > orderedQuantity {
		return nil, errs.NewValueIsOutOfRangeError("quantity", quantity, 1, orderedQuantity)
	}
	if err := condition.Validate(); err != nil {
		return nil, err
	}

	return &Item{
		orderItemID:   orderItemID,
		quantity:      quantity,
		reason:        reason,
		condition:     condition,
		isConstructed: true,
	}, nil
}

// RestoreItem reconstructs a return line from persistence.
func RestoreItem(id, orderItemID int64, quantity int, reason string, condition ItemCondition) (*Item, error) {
	if quantity <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}
	if err := condition.Validate(); err != nil {
		return nil, err
	}

	return &Item{
		id:            id,
		orderItemID:   orderItemID,
		quantity:      quantity,
		reason:        reason,
		condition:     condition,
		isConstructed: true,
	}, nil
}

// AssignID records the database-assigned identifier after insert.
// Returns an error if an identifier is already assigned.
func (i *Item) AssignID(id int64) error {
	if i.id != 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"id",
			fmt.Errorf("return item already has identifier %d", i.id),
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

// ID returns the line's identifier. Zero until persisted.
func (i *Item) ID() int64 {
	return i.id
}

// OrderItemID returns the identifier of the referenced order line.
func (i *Item) OrderItemID() int64 {
	return i.orderItemID
}

// Quantity returns the quantity being returned.
func (i *Item) Quantity() int {
	return i.quantity
}

// Reason returns the per-line reason, possibly empty.
func (i *Item) Reason() string {
	return i.reason
}

// Condition returns the declared condition of the item.
func (i *Item) Condition() ItemCondition {
	return i.condition
}
