package returns

import (
	"fmt"

	"shop/internal/pkg/errs"
)

// Status represents the state of a return request.
//
//	Pending ──> Approved ──> Completed
//	   │
//	   └──────> Rejected
//
// Rejected and Completed are terminal. Unlike order statuses there is no
// operator override: every transition, admin-driven included, must follow
// this table. A completed return means the refund has been issued.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusPending is the initial status of a freshly opened return request.
	StatusPending

	// StatusApproved indicates an operator accepted the request.
	StatusApproved

	// StatusRejected indicates an operator declined the request. Terminal.
	StatusRejected

	// StatusCompleted indicates the refund was issued. Terminal.
	StatusCompleted
)

// getStatusStrings returns a map of Status values to their wire names.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "unknown",
		StatusPending:   "pending",
		StatusApproved:  "approved",
		StatusRejected:  "rejected",
		StatusCompleted: "completed",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusPending:   "pending",
		StatusApproved:  "approved",
		StatusRejected:  "rejected",
		StatusCompleted: "completed",
	}
}

// allowedFrom is the transition table: for each target status, the set of
// predecessor statuses a transition may come from.
func allowedFrom() map[Status][]Status {
	return map[Status][]Status{
		StatusApproved:  {StatusPending},
		StatusRejected:  {StatusPending},
		StatusCompleted: {StatusApproved},
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
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid return status", s),
	)
}

// Validate checks if the Status value is valid.
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

// IsTerminal reports whether no further transition is permitted from this
// status.
func (s Status) IsTerminal() bool {
	return s == StatusRejected || s == StatusCompleted
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
		return 0, errs.NewInvalidTransitionError("return", s.String(), target.String())
	}
	return target, nil
}
