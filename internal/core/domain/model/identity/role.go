// Package identity holds the caller identity types consumed by transition
// guards. Authentication happens upstream; the core only trusts the
// (username, role) pair handed to it and never compares raw role strings.
package identity

import (
	"fmt"
	"strings"

	"cafe/internal/pkg/errs"
)

// Role represents the authorization level of an authenticated caller.
// It is a closed enum normalized at the trust boundary; loosely formatted
// role strings such as "ROLE_STAFF" never reach the core.
type Role int

const (
	// Unknown represents an invalid or undefined role.
	// This value (0) helps catch uninitialized Role values.
	Unknown Role = iota

	// Customer places and picks up orders.
	Customer

	// Staff fulfills orders and manages the catalog.
	Staff

	// Admin has full access, including the tax rate.
	Admin
)

// getRoleStrings returns a map of Role values to their string representations.
func getRoleStrings() map[Role]string {
	return map[Role]string{
		Unknown:  "UNKNOWN",
		Customer: "CUSTOMER",
		Staff:    "STAFF",
		Admin:    "ADMIN",
	}
}

// getValidRoleStrings returns a map of only valid Role values.
func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Role]string{
		Customer: "CUSTOMER",
		Staff:    "STAFF",
		Admin:    "ADMIN",
	}
}

// ParseRole normalizes a raw role string into the closed Role enum.
// It accepts both bare names ("STAFF") and Spring-style authority strings
// ("ROLE_STAFF"), case-insensitively. Returns an error for anything else.
func ParseRole(raw string) (Role, error) {
	normalized := strings.ToUpper(strings.TrimSpace(raw))
	normalized = strings.TrimPrefix(normalized, "ROLE_")

	for role, str := range getValidRoleStrings() {
		if str == normalized {
			return role, nil
		}
	}

	return Unknown, errs.NewValueIsInvalidErrorWithCause("role",
		fmt.Errorf("%q is not a valid role", raw))
}

// Validate checks if the Role value is valid.
// Valid roles are: Customer, Staff, Admin. Unknown (0) and any other values are invalid.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the canonical name of the role.
// This method implements the fmt.Stringer interface and is safe
// to call on any Role value, including invalid ones.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "UNKNOWN"
}

// CanFulfill reports whether the role is allowed to fulfill orders.
// Only staff and admins may fulfill.
func (r Role) CanFulfill() bool {
	return r == Staff || r == Admin
}

// CanManageOrders reports whether the role may edit or delete any customer's
// order. Customers only act on their own orders through the lifecycle guards.
func (r Role) CanManageOrders() bool {
	return r == Staff || r == Admin
}

// CanManageCatalog reports whether the role may create, update, or delete items.
func (r Role) CanManageCatalog() bool {
	return r == Staff || r == Admin
}

// CanSetTaxRate reports whether the role may change the tax rate.
func (r Role) CanSetTaxRate() bool {
	return r == Admin
}
