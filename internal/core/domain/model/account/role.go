package account

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// Role identifies which of the four concrete account kinds an account is.
// Every account belongs to exactly one role; the role decides which record
// store holds it and which fields its profile carries.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	// This value (0) helps catch uninitialized Role values.
	RoleUnknown Role = iota

	// RoleCustomer places orders and owns at most one basket.
	RoleCustomer

	// RoleAdmin approves catalog entries and oversees accounts.
	RoleAdmin

	// RoleCourier fulfills orders.
	RoleCourier

	// RoleServiceOfferor owns and publishes catalog entries.
	RoleServiceOfferor
)

// getRoleStrings returns a map of Role values to their string representations.
func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:        "unknown",
		RoleCustomer:       "customer",
		RoleAdmin:          "admin",
		RoleCourier:        "courier",
		RoleServiceOfferor: "serviceOfferor",
	}
}

// getValidRoleStrings returns a map of only valid Role values.
func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // RoleUnknown is intentionally excluded as it's invalid
	return map[Role]string{
		RoleCustomer:       "customer",
		RoleAdmin:          "admin",
		RoleCourier:        "courier",
		RoleServiceOfferor: "serviceOfferor",
	}
}

// RoleFromString parses the wire representation of a role.
// Accepted values: "customer", "admin", "courier", "serviceOfferor".
func RoleFromString(s string) (Role, error) {
	for role, str := range getValidRoleStrings() {
		if str == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role",
		fmt.Errorf("%q is not a valid role", s))
}

// Validate checks if the Role value is one of the four concrete kinds.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the wire name of the role, or "unknown" for invalid values.
// This method implements the fmt.Stringer interface.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}
