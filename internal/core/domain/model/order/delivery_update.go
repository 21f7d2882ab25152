package order

import (
	"fmt"
	"time"

	"shop/internal/pkg/errs"
)

// ErrDeliveryUpdateIsNotConstructed is returned when a DeliveryUpdate was not
// created through the NewDeliveryUpdate or RestoreDeliveryUpdate factory functions.
var ErrDeliveryUpdateIsNotConstructed = errs.NewValueIsRequiredError(
	"DeliveryUpdate must be created via NewDeliveryUpdate or RestoreDeliveryUpdate",
)

// DeliveryUpdate is one immutable record of the order's delivery audit trail:
// a status label, a location, a timestamp, and a free-text description.
//
// The trail is append-only. Records are never mutated or deleted; a correction
// is made by appending a new record. The status label is free text rather than
// an order Status because the trail also carries courier-side events
// ("in transit") that are not order lifecycle states.
type DeliveryUpdate struct {
	id          int64
	status      string
	location    string
	timestamp   time.Time
	description string

	isConstructed bool
}

// NewDeliveryUpdate creates a delivery trail record with validation.
// The identifier is assigned by the repository on insert.
func NewDeliveryUpdate(status, location, description string, timestamp time.Time) (*DeliveryUpdate, error) {
	if status == "" {
		return nil, errs.NewValueIsRequiredError("status")
	}
	if timestamp.IsZero() {
		return nil, errs.NewValueIsRequiredError("timestamp")
	}

	return &DeliveryUpdate{
		status:        status,
		location:      location,
		timestamp:     timestamp,
		description:   description,
		isConstructed: true,
	}, nil
}

// RestoreDeliveryUpdate reconstructs a delivery trail record from persistence.
func RestoreDeliveryUpdate(id int64, status, location, description string, timestamp time.Time) (*DeliveryUpdate, error) {
	du, err := NewDeliveryUpdate(status, location, description, timestamp)
	if err != nil {
		return nil, err
	}
	du.id = id
	return du, nil
}

// AssignID records the database-assigned identifier after insert.
// Returns an error if an identifier is already assigned.
func (du *DeliveryUpdate) AssignID(id int64) error {
	if du.id != 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"id",
			fmt.Errorf("delivery update already has identifier %d", du.id),
		)
	}
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"id",
			fmt.Errorf("%d is not a positive identifier", id),
		)
	}
	du.id = id
	return nil
}

// Validate ensures the DeliveryUpdate instance was properly constructed.
func (du *DeliveryUpdate) Validate() error {
	if du == nil || !du.isConstructed {
		return ErrDeliveryUpdateIsNotConstructed
	}
	return nil
}

// ID returns the record's identifier. Zero until persisted.
func (du *DeliveryUpdate) ID() int64 {
	return du.id
}

// Status returns the status label of the record.
func (du *DeliveryUpdate) Status() string {
	return du.status
}

// Location returns the recorded location.
func (du *DeliveryUpdate) Location() string {
	return du.location
}

// Timestamp returns when the record was made.
func (du *DeliveryUpdate) Timestamp() time.Time {
	return du.timestamp
}

// Description returns the free-text description.
func (du *DeliveryUpdate) Description() string {
	return du.description
}
