package returns

import (
	"fmt"
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/errs"
)

// ErrReturnIsNotConstructed is returned when a Return instance was not created
// through the NewReturn or RestoreReturn factory functions.
var ErrReturnIsNotConstructed = errs.NewValueIsRequiredError(
	"Return must be created via NewReturn or RestoreReturn",
)

// Return is the aggregate root for a return request against a delivered order.
//
// Return follows these invariants:
//   - Must reference the order being returned and its owning user
//   - A reason is required
//   - At least one line is required; lines are immutable once created
//   - Status transitions follow the rules in Status, with no operator override
//   - The refund amount is computed once from order-side snapshot prices
//   - Admin comments are appended to the comment trail, never replacing it
type Return struct {
	id           int64
	orderID      int64
	userID       int64
	status       Status
	reason       string
	comments     string
	refundAmount kernel.Money
	createdAt    time.Time
	updatedAt    time.Time

	items []*Item

	isConstructed bool
}

// NewReturn opens a return request in Pending status.
//
// The caller is responsible for verifying the order is delivered and owned by
// the user; the aggregate validates its own shape only. The refund amount is
// set afterwards once pricing has run. The identifier is assigned by the
// repository on insert.
func NewReturn(orderID, userID int64, reason, comments string, items []*Item, now time.Time) (*Return, error) {
	if orderID <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"orderID",
			fmt.Errorf("%d is not a positive identifier", orderID),
		)
	}
	if userID <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"userID",
			fmt.Errorf("%d is not a positive identifier", userID),
		)
	}
	if reason == "" {
		return nil, errs.NewValueIsRequiredError("reason")
	}
	if len(items) == 0 {
		return nil, errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
	}

	return &Return{
		orderID:       orderID,
		userID:        userID,
		status:        StatusPending,
		reason:        reason,
		comments:      comments,
		refundAmount:  kernel.Zero(),
		createdAt:     now,
		updatedAt:     now,
		items:         items,
		isConstructed: true,
	}, nil
}

// RestoreReturn reconstructs a Return aggregate from persistence, including
// its lines.
func RestoreReturn(
	id, orderID, userID int64,
	status Status,
	reason, comments string,
	refundAmount kernel.Money,
	createdAt, updatedAt time.Time,
	items []*Item,
) (*Return, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if err := refundAmount.Validate(); err != nil {
		return nil, err
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
	}

	return &Return{
		id:            id,
		orderID:       orderID,
		userID:        userID,
		status:        status,
		reason:        reason,
		comments:      comments,
		refundAmount:  refundAmount,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		items:         items,
		isConstructed: true,
	}, nil
}

// Validate ensures the Return instance was properly constructed.
func (r *Return) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrReturnIsNotConstructed
	}
	return nil
}

// AssignID records the database-assigned identifier after insert.
// Returns an error if an identifier is already assigned.
func (r *Return) AssignID(id int64) error {
	if r.id != 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"id",
			fmt.Errorf("return already has identifier %d", r.id),
		)
	}
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"id",
			fmt.Errorf("%d is not a positive identifier", id),
		)
	}
	r.id = id
	return nil
}

// ID returns the return's identifier. Zero until persisted.
func (r *Return) ID() int64 {
	return r.id
}

// OrderID returns the identifier of the order being returned.
func (r *Return) OrderID() int64 {
	return r.orderID
}

// UserID returns the requesting user's identifier.
func (r *Return) UserID() int64 {
	return r.userID
}

// Status returns the current status of the request.
func (r *Return) Status() Status {
	return r.status
}

// Reason returns the customer's stated reason.
func (r *Return) Reason() string {
	return r.reason
}

// Comments returns the comment trail, customer note first and admin comments
// appended after.
func (r *Return) Comments() string {
	return r.comments
}

// RefundAmount returns the refund owed if the return completes.
func (r *Return) RefundAmount() kernel.Money {
	return r.refundAmount
}

// CreatedAt returns when the request was opened.
func (r *Return) CreatedAt() time.Time {
	return r.createdAt
}

// UpdatedAt returns when the request was last mutated.
func (r *Return) UpdatedAt() time.Time {
	return r.updatedAt
}

// Items returns the request's lines in insertion order.
func (r *Return) Items() []*Item {
	return r.items
}

// SetRefundAmount records the computed refund.
func (r *Return) SetRefundAmount(amount kernel.Money) error {
	if err := amount.Validate(); err != nil {
		return err
	}
	r.refundAmount = amount
	return nil
}

// UpdateStatus moves the request into the target status if the transition
// table allows it. There is no operator override for returns.
func (r *Return) UpdateStatus(target Status, now time.Time) error {
	newStatus, err := r.status.TransitionTo(target)
	if err != nil {
		return err
	}

	r.status = newStatus
	r.updatedAt = now
	return nil
}

// AppendAdminComment appends an operator note to the comment trail.
// Empty comments are ignored.
func (r *Return) AppendAdminComment(comment string, now time.Time) {
	if comment == "" {
		return
	}

	note := fmt.Sprintf("Admin comment: %s", comment)
	if r.comments == "" {
		r.comments = note
	} else {
		r.comments = r.comments + "\n" + note
	}
	r.updatedAt = now
}
