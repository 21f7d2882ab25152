// Package identity models the caller identity attached to every request.
//
// Authentication and token issuance happen outside this system; requests
// arrive with an already-verified user reference and role. The Actor value
// object carries that pair, and the role check here is the single
// authorization gate used before any admin operation.
package identity

import (
	"fmt"

	"shop/internal/pkg/errs"
	"shop/internal/pkg/guard"
)

// Role is the closed set of caller roles known to the system.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota

	// RoleCustomer is a regular shopper operating on their own resources.
	RoleCustomer

	// RoleAdmin may operate on any resource and drive admin-only transitions.
	RoleAdmin
)

func getValidRoleStrings() map[Role]string {
	return map[Role]string{
		RoleCustomer: "customer",
		RoleAdmin:    "admin",
	}
}

// ParseRole converts a role string into a Role.
// Returns an error for anything outside the closed set.
func ParseRole(s string) (Role, error) {
	for role, str := range getValidRoleStrings() {
		if str == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause(
		"role",
		fmt.Errorf("%q is not a valid role", s),
	)
}

// Validate checks if the Role value is valid.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"role",
			fmt.Errorf("%d is not a valid role", r),
		)
	}
	return nil
}

// String returns the lowercase wire name of the role.
func (r Role) String() string {
	if str, ok := getValidRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}

// ErrActorIsNotConstructed is returned when an Actor instance was not created
// through the NewActor constructor.
var ErrActorIsNotConstructed = errs.NewValueIsRequiredError("Actor must be created via NewActor")

// Actor is the verified identity of the caller issuing a request.
// It is an opaque input to this system: who verified it and how is out of scope.
type Actor struct {
	userID int64
	role   Role

	guard guard.ConstructorGuard
}

// NewActor creates an Actor from a user reference and role.
// The user ID must be positive and the role must be valid.
func NewActor(userID int64, role Role) (Actor, error) {
	if userID <= 0 {
		return Actor{}, errs.NewValueIsInvalidErrorWithCause(
			"userID",
			fmt.Errorf("%d is not a positive identifier", userID),
		)
	}
	if err := role.Validate(); err != nil {
		return Actor{}, err
	}

	return Actor{
		userID: userID,
		role:   role,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Actor was created through NewActor.
func (a Actor) Validate() error {
	return a.guard.Validate(ErrActorIsNotConstructed)
}

// UserID returns the caller's user reference.
func (a Actor) UserID() int64 {
	return a.userID
}

// Role returns the caller's role.
func (a Actor) Role() Role {
	return a.role
}

// IsAdmin reports whether the caller carries the admin role.
func (a Actor) IsAdmin() bool {
	return a.role == RoleAdmin
}

// RequireAdmin is the authorization gate for admin operations.
// Returns an UnauthorizedError naming the operation when the caller is not an admin.
func (a Actor) RequireAdmin(operation string) error {
	if err := a.Validate(); err != nil {
		return err
	}
	if !a.IsAdmin() {
		return errs.NewUnauthorizedError(operation)
	}
	return nil
}

// Owns reports whether the caller owns a resource belonging to the given user.
func (a Actor) Owns(userID int64) bool {
	return a.userID == userID
}
