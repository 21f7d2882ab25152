package order

import (
	"fmt"

	"shop/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// The happy path is forward-only:
//
//	Pending ──> Confirmed ──> Processing ──> Shipped ──> Delivered
//	   │            │
//	   └────────────┴──> Cancelled
//
// Delivered and Cancelled are terminal. Cancellation is reachable only from
// Pending or Confirmed; once goods are being prepared or are on the road the
// customer can no longer cancel.
//
// The transition table below is the single definition of these rules.
// Customer-driven transitions consult it; admin transitions validate enum
// membership only, since an operator may need to correct an order into any
// state.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status assigned at checkout.
	Pending

	// Confirmed indicates the order has been accepted for fulfillment.
	Confirmed

	// Processing indicates the order is being picked and packed.
	Processing

	// Shipped indicates the order has left the warehouse.
	// The first transition into Shipped assigns a tracking number.
	Shipped

	// Delivered indicates the order reached the customer. Terminal.
	// Only delivered orders are eligible for returns.
	Delivered

	// Cancelled indicates the order was cancelled and its stock released. Terminal.
	Cancelled
)

// getStatusStrings returns a map of Status values to their wire names.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		Pending:    "pending",
		Confirmed:  "confirmed",
		Processing: "processing",
		Shipped:    "shipped",
		Delivered:  "delivered",
		Cancelled:  "cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "pending",
		Confirmed:  "confirmed",
		Processing: "processing",
		Shipped:    "shipped",
		Delivered:  "delivered",
		Cancelled:  "cancelled",
	}
}

// getDisplayStrings returns human-readable labels for valid statuses.
func getDisplayStrings() map[Status]string {
	//nolint:exhaustive // Unknown has no display label
	return map[Status]string{
		Pending:    "Pending Confirmation",
		Confirmed:  "Confirmed",
		Processing: "Processing",
		Shipped:    "Shipped",
		Delivered:  "Delivered",
		Cancelled:  "Cancelled",
	}
}

// allowedFrom is the central transition table: for each target status, the set
// of predecessor statuses a customer-facing operation may come from.
func allowedFrom() map[Status][]Status {
	return map[Status][]Status{
		Confirmed:  {Pending},
		Processing: {Pending, Confirmed},
		Shipped:    {Confirmed, Processing},
		Delivered:  {Shipped},
		Cancelled:  {Pending, Confirmed},
	}
}

// ParseStatus converts a wire name into a Status.
// Returns an error for anything outside the closed set of valid statuses.
func ParseStatus(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid order status", s),
	)
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Pending, Confirmed, Processing, Shipped, Delivered,
// Cancelled. Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the lowercase wire name of the status.
// Implements the fmt.Stringer interface and is safe to call on any value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Display returns the human-readable label of the status for projections.
func (s Status) Display() string {
	if str, ok := getDisplayStrings()[s]; ok {
		return str
	}
	return s.String()
}

// IsTerminal reports whether no further customer-facing transition is
// permitted from this status.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// CanTransitionTo reports whether the transition table permits moving from the
// current status to the target.
func (s Status) CanTransitionTo(target Status) bool {
	for _, from := range allowedFrom()[target] {
		if from == s {
			return true
		}
	}
	return false
}

// TransitionTo moves to the target status if the transition table allows it.
//
// Returns:
//   - (target, nil) on a permitted transition
//   - (0, InvalidTransitionError) otherwise
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return 0, err
	}
	if !s.CanTransitionTo(target) {
		return 0, errs.NewInvalidTransitionError("order", s.String(), target.String())
	}
	return target, nil
}
