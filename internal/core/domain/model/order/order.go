package order

import (
	"fmt"
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder or RestoreOrder factory functions. This ensures all
// orders are properly validated.
var ErrOrderIsNotConstructed = errs.NewValueIsRequiredError(
	"Order must be created via NewOrder or RestoreOrder",
)

const (
	// EstimatedDeliveryDays is how far out the estimated-delivery timestamp is
	// set at checkout.
	EstimatedDeliveryDays = 5

	// TrackingPrefix is prepended to generated tracking numbers.
	TrackingPrefix = "TRK"

	// InitialLocation is recorded on the first delivery trail entry.
	InitialLocation = "Order Processing Center"

	// DefaultWarehouseLocation is used for admin transitions that do not
	// supply a location.
	DefaultWarehouseLocation = "Central Warehouse"
)

// Order is the aggregate root for a customer purchase. It owns its line items
// and its delivery audit trail and manages the order lifecycle from checkout
// through delivery or cancellation.
//
// Order follows these invariants:
//   - Must reference an owning user
//   - Shipping address and delivery method are required
//   - Status transitions follow the rules in Status
//   - Items are immutable once added; the trail is append-only
//   - The total is the sum of item subtotals plus the delivery surcharge,
//     computed once at checkout
//   - Orders are never physically deleted; terminal states are soft-terminal
//
// The struct uses private fields to ensure encapsulation and maintains its
// invariants through validated methods.
type Order struct {
	id                int64
	userID            int64
	status            Status
	createdAt         time.Time
	updatedAt         time.Time
	shippingAddress   string
	deliveryMethod    string
	totalAmount       kernel.Money
	trackingNumber    string
	currentLocation   string
	estimatedDelivery *time.Time

	items           []*Item
	deliveryUpdates []*DeliveryUpdate

	isConstructed bool
}

// NewOrder creates a new Order at checkout time with validation.
//
// The order starts in Pending status with an estimated delivery
// EstimatedDeliveryDays out and an initial delivery trail entry recorded at
// the processing center. Line items are added afterwards with AddItem, and the
// total is set once pricing has run. The identifier is assigned by the
// repository on insert.
func NewOrder(userID int64, shippingAddress, deliveryMethod string, now time.Time) (*Order, error) {
	if userID <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"userID",
			fmt.Errorf("%d is not a positive identifier", userID),
		)
	}
	if shippingAddress == "" {
		return nil, errs.NewValueIsRequiredError("shippingAddress")
	}
	if deliveryMethod == "" {
		return nil, errs.NewValueIsRequiredError("deliveryMethod")
	}

	estimated := now.AddDate(0, 0, EstimatedDeliveryDays)

	o := &Order{
		userID:            userID,
		status:            Pending,
		createdAt:         now,
		updatedAt:         now,
		shippingAddress:   shippingAddress,
		deliveryMethod:    deliveryMethod,
		totalAmount:       kernel.Zero(),
		currentLocation:   InitialLocation,
		estimatedDelivery: &estimated,
		isConstructed:     true,
	}

	if err := o.RecordDeliveryUpdate(
		Pending.String(), InitialLocation, "Order received and pending processing", now,
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order aggregate from persistence, including its
// items and delivery trail.
func RestoreOrder(
	id, userID int64,
	status Status,
	createdAt, updatedAt time.Time,
	shippingAddress, deliveryMethod string,
	totalAmount kernel.Money,
	trackingNumber, currentLocation string,
	estimatedDelivery *time.Time,
	items []*Item,
	deliveryUpdates []*DeliveryUpdate,
) (*Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if err := totalAmount.Validate(); err != nil {
		return nil, err
	}

	o := &Order{
		id:                id,
		userID:            userID,
		status:            status,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
		shippingAddress:   shippingAddress,
		deliveryMethod:    deliveryMethod,
		totalAmount:       totalAmount,
		trackingNumber:    trackingNumber,
		currentLocation:   currentLocation,
		estimatedDelivery: estimatedDelivery,
		items:             items,
		deliveryUpdates:   deliveryUpdates,
		isConstructed:     true,
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
	}
	for _, du := range deliveryUpdates {
		if err := du.Validate(); err != nil {
			return nil, err
		}
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// AssignID records the database-assigned identifier after insert.
// Returns an error if an identifier is already assigned.
func (o *Order) AssignID(id int64) error {
	if o.id != 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"id",
			fmt.Errorf("order already has identifier %d", o.id),
		)
	}
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"id",
			fmt.Errorf("%d is not a positive identifier", id),
		)
	}
	o.id = id
	return nil
}

// ID returns the order's identifier. Zero until persisted.
func (o *Order) ID() int64 {
	return o.id
}

// UserID returns the owning user's identifier.
func (o *Order) UserID() int64 {
	return o.userID
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns when the order was created.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns when the order was last mutated.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// ShippingAddress returns the destination address.
func (o *Order) ShippingAddress() string {
	return o.shippingAddress
}

// DeliveryMethod returns the chosen delivery method.
func (o *Order) DeliveryMethod() string {
	return o.deliveryMethod
}

// TotalAmount returns the order total (item subtotals plus delivery surcharge).
func (o *Order) TotalAmount() kernel.Money {
	return o.totalAmount
}

// TrackingNumber returns the tracking identifier, empty until the order ships.
func (o *Order) TrackingNumber() string {
	return o.trackingNumber
}

// CurrentLocation returns the last known location of the shipment.
func (o *Order) CurrentLocation() string {
	return o.currentLocation
}

// EstimatedDelivery returns the estimated delivery timestamp, if set.
func (o *Order) EstimatedDelivery() *time.Time {
	return o.estimatedDelivery
}

// Items returns the order's line items in insertion order.
func (o *Order) Items() []*Item {
	return o.items
}

// DeliveryUpdates returns the delivery trail in insertion order.
func (o *Order) DeliveryUpdates() []*DeliveryUpdate {
	return o.deliveryUpdates
}

// Item returns the order's line item with the given identifier.
// Returns an ObjectNotFoundError when the item does not belong to this order.
func (o *Order) Item(itemID int64) (*Item, error) {
	for _, item := range o.items {
		if item.ID() == itemID {
			return item, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("orderItemID", itemID)
}

// AddItem appends a line item with the unit price snapshotted at checkout.
// Items may only be added while the order is still pending.
func (o *Order) AddItem(productID int64, quantity int, price kernel.Money) error {
	if o.status != Pending {
		return errs.NewInvalidTransitionError("order", o.status.String(), "add item")
	}

	item, err := NewItem(productID, quantity, price)
	if err != nil {
		return err
	}

	o.items = append(o.items, item)
	return nil
}

// SetTotalAmount records the computed order total.
func (o *Order) SetTotalAmount(total kernel.Money) error {
	if err := total.Validate(); err != nil {
		return err
	}
	o.totalAmount = total
	return nil
}

// RecordDeliveryUpdate appends one immutable record to the delivery trail.
// Existing records are never touched.
func (o *Order) RecordDeliveryUpdate(status, location, description string, at time.Time) error {
	du, err := NewDeliveryUpdate(status, location, description, at)
	if err != nil {
		return err
	}

	o.deliveryUpdates = append(o.deliveryUpdates, du)
	return nil
}

// Cancel cancels the order on behalf of the customer.
//
// Permitted only while the status is Pending or Confirmed, per the transition
// table. Appends a cancellation record carrying the order's last known
// location. Releasing the reserved stock is the caller's responsibility, since
// stock lives on the product side of the ledger.
func (o *Order) Cancel(now time.Time) error {
	newStatus, err := o.status.TransitionTo(Cancelled)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.updatedAt = now

	return o.RecordDeliveryUpdate(
		Cancelled.String(), o.currentLocation, "Order cancelled by customer", now,
	)
}

// AdminSetStatus moves the order into any valid status on behalf of an
// operator.
//
// Unlike customer-facing transitions this does not consult the transition
// table: an operator may need to correct an order into any state. The first
// transition into Shipped generates a tracking number if none is set. Every
// transition appends a delivery trail record, using the warehouse default when
// no location is supplied and a generated description when none is supplied.
func (o *Order) AdminSetStatus(newStatus Status, location, description string, now time.Time) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}

	o.status = newStatus
	o.updatedAt = now

	if newStatus == Shipped && o.trackingNumber == "" {
		o.trackingNumber = fmt.Sprintf("%s%d%s", TrackingPrefix, o.id, now.Format("200601021504"))
	}

	if location == "" {
		location = DefaultWarehouseLocation
	}
	if description == "" {
		description = fmt.Sprintf("Order status updated to %s", newStatus)
	}
	o.currentLocation = location

	return o.RecordDeliveryUpdate(newStatus.String(), location, description, now)
}

// RecordTransitEvent appends a courier-side movement record without changing
// the lifecycle status. Used for synthetic in-transit checkpoints while the
// order is shipped.
func (o *Order) RecordTransitEvent(location, description string, now time.Time) error {
	if o.status != Shipped {
		return errs.NewInvalidTransitionError("order", o.status.String(), "in transit")
	}

	o.currentLocation = location
	o.updatedAt = now

	return o.RecordDeliveryUpdate("in transit", location, description, now)
}
